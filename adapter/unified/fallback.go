package unified

import (
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/trickstertwo/xclock"
)

const fallbackTimeFormat = "2006-01-02 15:04:05.000000"

// WriterFallback prints lines prefixed with a timestamp and the process
// identity, one line per write:
//
//	2025-01-01 00:00:00.000000 myapp[4242] ⚠️ disk low -- pct=5
type WriterFallback struct {
	mu     sync.Mutex
	w      io.Writer
	prefix string // " appID[pid] "
	buf    []byte
}

// NewWriterFallback writes to w (os.Stderr when nil) tagging lines with appID.
func NewWriterFallback(w io.Writer, appID string) *WriterFallback {
	if w == nil {
		w = os.Stderr
	}
	return &WriterFallback{
		w:      w,
		prefix: " " + appID + "[" + strconv.Itoa(os.Getpid()) + "] ",
	}
}

// Print writes line. Write errors are dropped; there is nowhere left to
// report them.
func (f *WriterFallback) Print(line string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b := f.buf[:0]
	b = xclock.Now().AppendFormat(b, fallbackTimeFormat)
	b = append(b, f.prefix...)
	b = append(b, line...)
	b = append(b, '\n')
	_, _ = f.w.Write(b)

	// keep the buffer unless a single huge line inflated it
	if cap(b) <= 64*1024 {
		f.buf = b
	}
}
