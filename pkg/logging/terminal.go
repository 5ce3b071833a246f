package logging

import (
	"sync"

	tsize "github.com/kopoli/go-terminal-size"
	"go.uber.org/atomic"
)

const defaultTermWidth = 80

var (
	termWidth     = atomic.NewInt64(defaultTermWidth)
	termWidthOnce sync.Once
)

// TermWidth is the current width of the terminal on stdout, or 80 when stdout is
// not a terminal. The first call starts tracking resizes.
func TermWidth() int {
	termWidthOnce.Do(watchTermSize)
	return int(termWidth.Load())
}

func watchTermSize() {
	size, err := tsize.GetSize()
	if err != nil {
		return
	}
	termWidth.Store(int64(size.Width))

	l, err := tsize.NewSizeListener()
	if err != nil {
		return
	}
	go func() {
		for newSize := range l.Change {
			termWidth.Store(int64(newSize.Width))
		}
	}()
}

// Truncate shortens s to at most width runes, marking the cut with "…".
func Truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
