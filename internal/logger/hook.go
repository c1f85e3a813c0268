package logger

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/sirupsen/logrus"
)

// AsyncHook 비동기 로그 기록 hook.
// 로그 entry를 버퍼 채널에 넣고 별도 goroutine에서 writer들에 기록해
// 요청 처리를 블로킹하지 않는다.
type AsyncHook struct {
	writers    []io.Writer // 기록 대상 writer 목록 (파일, stdout 등)
	entries    chan *logrus.Entry
	wg         sync.WaitGroup
	mu         sync.Mutex
	closed     bool
	bufferSize int
}

// NewAsyncHook writer 하나로 async hook을 생성한다.
func NewAsyncHook(writer io.Writer, bufferSize int) *AsyncHook {
	return NewAsyncHookWithWriters([]io.Writer{writer}, bufferSize)
}

// NewAsyncHookWithWriters 여러 writer로 async hook을 생성한다.
// bufferSize 가 0 이하이면 1000으로 둔다.
func NewAsyncHookWithWriters(writers []io.Writer, bufferSize int) *AsyncHook {
	if bufferSize <= 0 {
		bufferSize = 1000
	}

	hook := &AsyncHook{
		writers:    writers,
		entries:    make(chan *logrus.Entry, bufferSize),
		bufferSize: bufferSize,
	}

	hook.wg.Add(1)
	go hook.processEntries()

	return hook
}

// Levels 이 hook이 처리할 로그 레벨
func (h *AsyncHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire 로그 entry 발생 시 호출된다. 채널에 넣기만 하고 블로킹하지 않는다.
func (h *AsyncHook) Fire(entry *logrus.Entry) error {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()

	if closed {
		// hook이 이미 닫힌 경우 writer에 직접 기록 (fallback)
		var data []byte
		var err error

		if entry.Logger.Formatter != nil {
			data, err = entry.Logger.Formatter.Format(entry)
		} else {
			line, strErr := entry.String()
			if strErr != nil {
				return strErr
			}
			data = []byte(line)
		}

		if err != nil {
			return err
		}

		for _, writer := range h.writers {
			_, _ = writer.Write(data)
		}
		return nil
	}

	// 채널이 가득 차면 해당 entry는 버린다. 요청 처리가 우선이다.
	select {
	case h.entries <- entry:
	default:
	}

	return nil
}

// processEntries 별도 goroutine에서 entry를 기록한다.
// panic이 발생해도 서버가 죽지 않도록 recover 한다.
func (h *AsyncHook) processEntries() {
	defer h.wg.Done()

	for entry := range h.entries {
		func() {
			defer func() {
				if r := recover(); r != nil {
					// 여기서 logger를 쓰면 무한 루프가 되므로 stderr에 직접 기록
					fmt.Fprintf(os.Stderr, "[LOGGER PANIC] logger goroutine panic recovered: %v\n", r)
					debug.PrintStack()
				}
			}()

			var data []byte
			var err error

			if entry.Logger.Formatter != nil {
				data, err = entry.Logger.Formatter.Format(entry)
			} else {
				line, strErr := entry.String()
				if strErr != nil {
					return
				}
				data = []byte(line)
			}

			if err != nil {
				return
			}

			for _, writer := range h.writers {
				_, err = writer.Write(data)
				if err != nil {
					continue
				}
			}
		}()
	}
}

// Close hook을 닫고 남은 entry가 모두 기록될 때까지 대기한다.
func (h *AsyncHook) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	h.mu.Unlock()

	close(h.entries)
	h.wg.Wait()
	return nil
}
