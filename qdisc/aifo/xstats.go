package aifo

import (
	"fmt"
	"io"

	"go.uber.org/multierr"

	"github.com/openschedlab/tcaifo/nlattr"
)

// XStats is the statistics export of the AIFO-STFQ qdisc. The layout mirrors
// struct tc_aifo_xstats, including the alignment hole before the 64-bit
// field.
type XStats struct {
	Flows       uint32 // number of flows
	FlowsGC     uint64 // number of flows garbage collected
	AllocErrors uint32 // failed flow allocations
	NoMark      uint32 // packets not dropped
	DropMark    uint32 // packets dropped
	QlenPeak    uint32 // maximum queue length
	BacklogPeak uint32 // maximum backlog
	QuantAvg1K  uint32 // average quantile * 1024
}

// xstatsSize is sizeof(struct tc_aifo_xstats): the u64 at offset 8 forces a
// 4-octet hole after Flows, for 40 octets total.
const xstatsSize = 40

// decodeXStats reads the fixed-layout statistics structure. Shorter input is
// rejected outright: with no per-field tags there is no way to tell a
// truncated buffer from an absent field.
func decodeXStats(buf []byte) (st XStats, e error) {
	if len(buf) < xstatsSize {
		return XStats{}, nlattr.ErrTruncated
	}
	st.Flows = nlattr.Uint[uint32](buf[0:])
	st.FlowsGC = nlattr.Uint[uint64](buf[8:])
	st.AllocErrors = nlattr.Uint[uint32](buf[16:])
	st.NoMark = nlattr.Uint[uint32](buf[20:])
	st.DropMark = nlattr.Uint[uint32](buf[24:])
	st.QlenPeak = nlattr.Uint[uint32](buf[28:])
	st.BacklogPeak = nlattr.Uint[uint32](buf[32:])
	st.QuantAvg1K = nlattr.Uint[uint32](buf[36:])
	return st, nil
}

// PrintXStats renders the statistics export. A nil buffer prints nothing.
// The peak fields are printed only when at least one is non-zero: both zero
// means the peaks were never measured, not that they were measured as zero.
func (Codec) PrintXStats(buf []byte, w io.Writer) error {
	if buf == nil {
		return nil
	}
	st, e := decodeXStats(buf)
	if e != nil {
		return e
	}

	var errs []error
	emit := func(format string, args ...any) {
		if _, e := fmt.Fprintf(w, format, args...); e != nil {
			errs = append(errs, e)
		}
	}

	emit("  flows %d gc %d alloc_errors %d\n", st.Flows, st.FlowsGC, st.AllocErrors)
	emit("  no_mark %d drop_mark %d quant_avg %.3f", st.NoMark, st.DropMark, float64(st.QuantAvg1K)/1024.0)
	if st.BacklogPeak != 0 || st.QlenPeak != 0 {
		emit("  backlog_peak %db qlen_peak %dp", st.BacklogPeak, st.QlenPeak)
	}
	return multierr.Combine(errs...)
}
