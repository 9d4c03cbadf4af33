package qdisc_test

import (
	"github.com/openschedlab/tcaifo/core/testenv"
)

var makeAR = testenv.MakeAR
