package clicommon

import (
	"fmt"
	"strconv"
)

// Verbosity counts repeated -v flags. "--verbose=false" steps one level back
// down and "--verbose=N" sets the level directly.
type Verbosity int

const (
	VerbosityDebug Verbosity = 1
	// VerbosityHTTP additionally shows each AWS request.
	VerbosityHTTP Verbosity = 2
)

func (v *Verbosity) Set(s string) error {
	if b, err := strconv.ParseBool(s); err == nil {
		if b {
			*v++
		} else if *v > 0 {
			*v--
		}
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fmt.Errorf("verbosity must be a boolean or a non-negative level, got %q", s)
	}
	*v = Verbosity(n)
	return nil
}

func (v *Verbosity) Type() string {
	return "verbosity"
}

func (v *Verbosity) String() string {
	return strconv.Itoa(int(*v))
}

func (v Verbosity) Debug() bool {
	return v >= VerbosityDebug
}

func (v Verbosity) HTTP() bool {
	return v >= VerbosityHTTP
}
