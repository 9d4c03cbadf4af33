// Package qdisc provides a registry of queueing discipline option codecs.
//
// A codec translates between the textual options of one queueing discipline
// and the kernel's binary attribute block. Codecs register themselves under
// the qdisc name; a control program looks up the codec for the qdisc it is
// configuring or inspecting.
package qdisc

import (
	"io"
	"sort"

	"go.uber.org/zap"

	"github.com/openschedlab/tcaifo/core/logging"
	"github.com/openschedlab/tcaifo/nlattr"
)

var logger = logging.New("qdisc")

// OptionsAttr is the attribute type wrapping a qdisc options block
// (TCA_OPTIONS in linux/rtnetlink.h).
const OptionsAttr uint16 = 2

// Codec translates one qdisc's options between text and attribute block.
type Codec interface {
	// ParseOptions consumes option tokens and appends the encoded options
	// block to msg. A token error leaves msg untouched; an encoding error
	// sticks to msg and is also returned.
	ParseOptions(tokens []string, msg *nlattr.MessageBuffer) error

	// PrintOptions renders an options block returned by the kernel.
	// A nil block prints nothing and is not an error.
	PrintOptions(block []byte, w io.Writer) error

	// PrintXStats renders the qdisc's statistics export.
	// A nil buffer prints nothing and is not an error.
	PrintXStats(buf []byte, w io.Writer) error

	// Usage returns a one-line option synopsis.
	Usage() string
}

var codecs = map[string]Codec{}

// Register adds a codec to the registry.
// Panics if the name is already taken.
func Register(name string, c Codec) {
	if _, ok := codecs[name]; ok {
		logger.Panic("duplicate codec registration", zap.String("qdisc", name))
	}
	codecs[name] = c
	logger.Debug("codec registered", zap.String("qdisc", name))
}

// Get retrieves a codec by qdisc name.
func Get(name string) (c Codec, ok bool) {
	c, ok = codecs[name]
	return
}

// List returns registered qdisc names, sorted.
func List() (names []string) {
	for name := range codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
