package aifo

// Attribute types understood by the AIFO-STFQ qdisc, matching TCA_AIFO_* in
// the kernel header. Declaration order is also the serialization and
// presentation order of the options block.
const (
	attrUnspec uint16 = iota
	attrPLimit        // limit of total number of packets in queue (u32)
	attrBurst         // headroom before dropping packets (u32)
	attrBucketsLog    // log2(number of flow buckets) (u32)
	attrHashMask      // mask applied to skb hashes (u32)
	attrFlowPLimit    // limit of packets per flow (u32)
	attrSampleSize    // quantile sample window size (u16)
	attrSamplePeriod  // packets between quantile samples (u16)
	attrFlags         // option bits (u32)

	attrMax = attrFlags
)

// Bits accepted in the flags option.
const (
	FlagPeakNoReset uint32 = 0x0020 // don't reset peak statistics
	FlagQuantFixed  uint32 = 0x0000 // quantile: fixed computations
	FlagQuantAdd1   uint32 = 0x0100 // quantile: add current packet
	FlagQuantOrig   uint32 = 0x0200 // quantile: original computations
)

// SampleSizeMax is the ceiling of the samples option.
const SampleSizeMax = 1024
