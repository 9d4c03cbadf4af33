// Package aifo implements the option codec for the AIFO-STFQ queueing
// discipline (admission-in-first-out with start-time fair queueing).
package aifo

import (
	"github.com/openschedlab/tcaifo/core/logging"
	"github.com/openschedlab/tcaifo/qdisc"
)

var logger = logging.New("aifo")

// ID is the qdisc name this codec registers under.
const ID = "aifo_stfq"

func init() {
	qdisc.Register(ID, Codec{})
}

// Codec translates AIFO-STFQ options between text and attribute block.
type Codec struct{}

var _ qdisc.Codec = Codec{}
