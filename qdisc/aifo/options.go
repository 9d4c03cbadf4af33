package aifo

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	binutils "github.com/jfoster/binary-utilities"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"

	"github.com/openschedlab/tcaifo/nlattr"
	"github.com/openschedlab/tcaifo/qdisc"
)

const usage = "Usage: ... aifo_stfq [ limit PACKETS ] [ burst PACKETS ] [ buckets NUMBER ] [ hash_mask MASK ] [ flow_limit PACKETS ] [ samples NUMBER ] [ speriod PACKETS ] [ flags FLAGS ]"

// Usage returns the option synopsis.
func (Codec) Usage() string {
	return usage
}

// optional is an explicit presence wrapper for one option. The classic
// sentinel encoding (0xFFFFFFFF meaning unset) cannot represent a
// user-requested maximal value; a presence flag can.
type optional[T constraints.Unsigned] struct {
	value T
	ok    bool
}

func (o *optional[T]) set(v T) {
	o.value, o.ok = v, true
}

// config is the parsed intent of one invocation. An unset field leaves the
// scheduler's current value for that field unchanged.
type config struct {
	plimit       optional[uint32]
	burst        optional[uint32]
	buckets      optional[uint32]
	hashMask     optional[uint32]
	flowPLimit   optional[uint32]
	sampleSize   optional[uint16]
	samplePeriod optional[uint16]
	flags        optional[uint32]
}

// parseUint parses an option value as an unsigned integer of the width of T.
// The base follows strtoul(3) with base 0: decimal, 0x hex, leading-0 octal.
func parseUint[T constraints.Unsigned](name, s string) (T, error) {
	v, e := strconv.ParseUint(s, 0, nlattr.Width[T]()*8)
	if e != nil {
		return 0, fmt.Errorf("%q: %w", name, ErrInvalidInteger)
	}
	return T(v), nil
}

// bucketsLog returns the smallest k such that 1<<k >= buckets.
func bucketsLog(buckets uint32) uint32 {
	return uint32(bits.TrailingZeros64(uint64(binutils.NextPowerOfTwo(int64(buckets)))))
}

// ParseOptions consumes option tokens left to right and appends the encoded
// options block to msg. Each option takes exactly one value token. Options
// not supplied produce no attribute, so the kernel keeps its current values.
func (c Codec) ParseOptions(tokens []string, msg *nlattr.MessageBuffer) error {
	var cfg config
	for i := 0; i < len(tokens); i++ {
		name := tokens[i]
		nextArg := func() (string, error) {
			if i+1 >= len(tokens) {
				return "", fmt.Errorf("%q: %w", name, ErrMissingArgument)
			}
			i++
			return tokens[i], nil
		}
		value := func() (uint32, error) {
			s, e := nextArg()
			if e != nil {
				return 0, e
			}
			return parseUint[uint32](name, s)
		}
		value16 := func() (uint16, error) {
			s, e := nextArg()
			if e != nil {
				return 0, e
			}
			return parseUint[uint16](name, s)
		}

		switch {
		case name == "limit":
			v, e := value()
			if e != nil {
				return e
			}
			cfg.plimit.set(v)
		case name == "burst":
			v, e := value()
			if e != nil {
				return e
			}
			cfg.burst.set(v)
		case name == "buckets":
			v, e := value()
			if e != nil {
				return e
			}
			cfg.buckets.set(v)
		case name == "hash_mask":
			v, e := value()
			if e != nil {
				return e
			}
			cfg.hashMask.set(v)
		case name == "flow_limit":
			v, e := value()
			if e != nil {
				return e
			}
			cfg.flowPLimit.set(v)
		case name == "samples":
			v, e := value16()
			if e != nil {
				return e
			}
			if v > SampleSizeMax {
				return fmt.Errorf("%q: %w", name, ErrValueTooLarge)
			}
			cfg.sampleSize.set(v)
		case name == "speriod":
			v, e := value16()
			if e != nil {
				return e
			}
			cfg.samplePeriod.set(v)
		case strings.EqualFold(name, "flags"):
			v, e := value()
			if e != nil {
				return e
			}
			cfg.flags.set(v)
		case name == "help":
			logger.Info("help requested", zap.String("usage", usage))
			return fmt.Errorf("%w\n%s", ErrHelpRequested, usage)
		default:
			logger.Warn("unknown option", zap.String("token", name), zap.String("usage", usage))
			return fmt.Errorf("%q: %w\n%s", name, ErrUnknownOption, usage)
		}
	}

	handle := msg.Nest(qdisc.OptionsAttr)
	if cfg.plimit.ok {
		nlattr.AppendUint(msg, attrPLimit, cfg.plimit.value)
	}
	if cfg.burst.ok {
		nlattr.AppendUint(msg, attrBurst, cfg.burst.value)
	}
	// buckets 0 means "omit", not "zero buckets"
	if cfg.buckets.ok && cfg.buckets.value != 0 {
		nlattr.AppendUint(msg, attrBucketsLog, bucketsLog(cfg.buckets.value))
	}
	if cfg.hashMask.ok {
		nlattr.AppendUint(msg, attrHashMask, cfg.hashMask.value)
	}
	if cfg.flowPLimit.ok {
		nlattr.AppendUint(msg, attrFlowPLimit, cfg.flowPLimit.value)
	}
	if cfg.sampleSize.ok {
		nlattr.AppendUint(msg, attrSampleSize, cfg.sampleSize.value)
	}
	if cfg.samplePeriod.ok {
		nlattr.AppendUint(msg, attrSamplePeriod, cfg.samplePeriod.value)
	}
	if cfg.flags.ok {
		nlattr.AppendUint(msg, attrFlags, cfg.flags.value)
	}
	msg.EndNest(handle)
	return msg.Err()
}
