package aifo

import (
	"fmt"
	"io"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/openschedlab/tcaifo/nlattr"
)

// PrintOptions renders an options block in fixed field order. An attribute
// whose payload is shorter than the field width is skipped, as is any
// attribute type this codec does not know; both tolerate kernels newer or
// older than this program. Only an unusable outer header is an error.
func (Codec) PrintOptions(block []byte, w io.Writer) error {
	if len(block) == 0 {
		return nil
	}
	tb, e := nlattr.ParseNested(block)
	if e != nil {
		return e
	}
	if logger.Core().Enabled(zapcore.DebugLevel) {
		for typ := range tb {
			if typ > attrMax {
				logger.Debug("ignoring unknown attribute", zap.Uint16("type", typ))
			}
		}
	}

	var errs []error
	emit := func(format string, args ...any) {
		if _, e := fmt.Fprintf(w, format, args...); e != nil {
			errs = append(errs, e)
		}
	}

	if v, ok := nlattr.GetUint[uint32](tb, attrPLimit); ok {
		emit("limit %dp ", v)
	}
	if v, ok := nlattr.GetUint[uint32](tb, attrBurst); ok {
		emit("burst %d ", v)
	}
	if v, ok := nlattr.GetUint[uint32](tb, attrBucketsLog); ok {
		emit("buckets %d ", uint64(1)<<v)
	}
	if v, ok := nlattr.GetUint[uint32](tb, attrHashMask); ok {
		emit("hash_mask %d ", v)
	}
	if v, ok := nlattr.GetUint[uint32](tb, attrFlowPLimit); ok {
		emit("flow_limit %dp ", v)
	}
	if v, ok := nlattr.GetUint[uint16](tb, attrSampleSize); ok {
		emit("samples %d ", v)
	}
	if v, ok := nlattr.GetUint[uint16](tb, attrSamplePeriod); ok {
		emit("speriod %d ", v)
	}
	if v, ok := nlattr.GetUint[uint32](tb, attrFlags); ok {
		emit("flags 0x%X ", v)
	}
	return multierr.Combine(errs...)
}
