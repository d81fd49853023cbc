package app

import (
	"context"
	"errors"
	iofs "io/fs"
	"sync"
	"testing"
	"time"

	"github.com/bft-labs/numstat/internal/domain"
	"github.com/bft-labs/numstat/internal/parser"
	"github.com/bft-labs/numstat/internal/ports"
)

// mockLogger implements ports.Logger for testing.
type mockLogger struct{}

func (mockLogger) Debug(msg string, fields ...ports.Field) {}
func (mockLogger) Info(msg string, fields ...ports.Field)  {}
func (mockLogger) Warn(msg string, fields ...ports.Field)  {}
func (mockLogger) Error(msg string, fields ...ports.Field) {}

// mockReader implements ports.FileReader with swappable content.
type mockReader struct {
	mu    sync.Mutex
	data  string
	err   error
	calls int
}

func (m *mockReader) ReadFile(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return []byte(m.data), nil
}

func (m *mockReader) set(data string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = data
}

func (m *mockReader) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func newRunner(reader ports.FileReader) *Runner {
	return NewRunner(parser.New(reader, mockLogger{}), mockLogger{})
}

func TestRunner_Run(t *testing.T) {
	reader := &mockReader{data: "1 4 2 3\n"}

	rep, err := newRunner(reader).Run(context.Background(), "testFile.txt")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if rep.Path != "testFile.txt" || rep.Count != 4 {
		t.Errorf("Path/Count = %s/%d, want testFile.txt/4", rep.Path, rep.Count)
	}
	if rep.Min != 1 || rep.Max != 4 || rep.Sum != 10 || rep.Product.Int64() != 24 {
		t.Errorf("Report = %+v, want min=1 max=4 sum=10 product=24", rep)
	}
	if reader.Calls() != 1 {
		t.Errorf("ReadFile calls = %d, want 1", reader.Calls())
	}
}

func TestRunner_Run_Errors(t *testing.T) {
	tests := []struct {
		name   string
		reader *mockReader
		check  func(error) bool
	}{
		{
			name:   "empty input",
			reader: &mockReader{data: " \n"},
			check:  func(err error) bool { return errors.Is(err, domain.ErrEmptySequence) },
		},
		{
			name:   "invalid token",
			reader: &mockReader{data: "1 2 3 a"},
			check: func(err error) bool {
				var fe *domain.FormatError
				return errors.As(err, &fe) && fe.Token == "a"
			},
		},
		{
			name:   "missing file",
			reader: &mockReader{err: iofs.ErrNotExist},
			check: func(err error) bool {
				var fe *domain.FileError
				return errors.As(err, &fe) && errors.Is(err, iofs.ErrNotExist)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep, err := newRunner(tt.reader).Run(context.Background(), "in.txt")
			if !tt.check(err) {
				t.Fatalf("unexpected error: %v", err)
			}
			if rep.Product != nil || rep.Count != 0 {
				t.Errorf("expected zero Report on error, got %+v", rep)
			}
		})
	}
}

// mockWatcher implements ports.FileWatcher; each value sent on changes
// becomes one onChange call.
type mockWatcher struct {
	changes chan struct{}
	err     error
}

func (m *mockWatcher) Watch(ctx context.Context, path string, onChange func()) error {
	if m.err != nil {
		return m.err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-m.changes:
			onChange()
		}
	}
}

type result struct {
	rep Report
	err error
}

func TestRunner_Watch_RerunsOnChange(t *testing.T) {
	reader := &mockReader{data: "1 2"}
	watcher := &mockWatcher{changes: make(chan struct{})}
	results := make(chan result, 8)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- newRunner(reader).Watch(ctx, "in.txt", watcher, 50*time.Millisecond, func(r Report, err error) {
			results <- result{r, err}
		})
	}()

	first := <-results
	if first.err != nil || first.rep.Sum != 3 {
		t.Fatalf("initial run = %+v, %v; want sum 3", first.rep, first.err)
	}

	// A burst of notifications collapses into one run.
	reader.set("1 2 3 x")
	for i := 0; i < 3; i++ {
		watcher.changes <- struct{}{}
	}
	second := <-results
	var fe *domain.FormatError
	if !errors.As(second.err, &fe) || fe.Token != "x" {
		t.Fatalf("second run error = %v, want FormatError for x", second.err)
	}

	// A failed run does not stop the loop.
	reader.set("5 5")
	watcher.changes <- struct{}{}
	third := <-results
	if third.err != nil || third.rep.Product.Int64() != 25 {
		t.Fatalf("third run = %+v, %v; want product 25", third.rep, third.err)
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Watch returned %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}

	if got := reader.Calls(); got != 3 {
		t.Errorf("ReadFile calls = %d, want 3", got)
	}
}

func TestRunner_Watch_WatcherFailure(t *testing.T) {
	reader := &mockReader{data: "1"}
	wantErr := errors.New("no inotify")
	watcher := &mockWatcher{err: wantErr}

	err := newRunner(reader).Watch(context.Background(), "in.txt", watcher, 0, func(Report, error) {})
	if !errors.Is(err, wantErr) {
		t.Fatalf("Watch returned %v, want %v", err, wantErr)
	}
}
