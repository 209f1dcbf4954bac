package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// AsyncHook formats entries on the caller goroutine and writes them from a background goroutine,
// so slow file I/O never blocks request handling.
type AsyncHook struct {
	writers []io.Writer
	lines   chan []byte
	wg      sync.WaitGroup
	mu      sync.RWMutex
	closed  bool
	dropped atomic.Uint64
}

// NewAsyncHookWithWriters starts a hook with a buffer of bufferSize formatted lines
func NewAsyncHookWithWriters(writers []io.Writer, bufferSize int) *AsyncHook {
	if bufferSize <= 0 {
		bufferSize = 1000
	}

	hook := &AsyncHook{
		writers: writers,
		lines:   make(chan []byte, bufferSize),
	}

	hook.wg.Add(1)
	go hook.process()

	return hook
}

// Levels handles every level
func (h *AsyncHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire never blocks: a full buffer drops the line
func (h *AsyncHook) Fire(entry *logrus.Entry) error {
	if filtered, ok := entry.Data[filteredKey].(bool); ok && filtered {
		return nil
	}

	line, err := format(entry)
	if err != nil {
		return err
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		h.write(line)
		return nil
	}

	select {
	case h.lines <- line:
	default:
		h.dropped.Add(1)
	}
	return nil
}

func format(entry *logrus.Entry) ([]byte, error) {
	if _, ok := entry.Data[filteredKey]; ok {
		clean := *entry
		clean.Data = make(logrus.Fields, len(entry.Data))
		for k, v := range entry.Data {
			if k != filteredKey {
				clean.Data[k] = v
			}
		}
		entry = &clean
	}
	if entry.Logger != nil && entry.Logger.Formatter != nil {
		return entry.Logger.Formatter.Format(entry)
	}
	s, err := entry.String()
	return []byte(s), err
}

func (h *AsyncHook) process() {
	defer h.wg.Done()
	for line := range h.lines {
		h.write(line)
	}
}

func (h *AsyncHook) write(line []byte) {
	defer func() {
		if r := recover(); r != nil {
			// the logger cannot log its own failure
			fmt.Fprintf(os.Stderr, "[LOGGER PANIC] %v\n", r)
		}
	}()
	for _, w := range h.writers {
		_, _ = w.Write(line)
	}
}

// Dropped returns how many lines were discarded because the buffer was full
func (h *AsyncHook) Dropped() uint64 {
	return h.dropped.Load()
}

// Close flushes pending lines and stops the goroutine
func (h *AsyncHook) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	close(h.lines)
	h.mu.Unlock()

	h.wg.Wait()
	return nil
}
