package testdoubles

import (
	"context"
	"sync"

	"github.com/AntonStoeckl/todolist-go/todostore"
)

// ContextualLoggerSpy records calls to both the plain and the context-aware logging methods.
type ContextualLoggerSpy struct {
	records     []SpyLogRecord
	mu          sync.Mutex
	recordCalls bool
}

// SpyLogRecord is one captured log call.
type SpyLogRecord struct {
	Level   string
	Message string
	Args    []any
	Context context.Context
}

// NewContextualLoggerSpy creates a new ContextualLoggerSpy.
// With recordCalls false, every call is ignored.
func NewContextualLoggerSpy(recordCalls bool) *ContextualLoggerSpy {
	return &ContextualLoggerSpy{recordCalls: recordCalls}
}

func (s *ContextualLoggerSpy) Debug(msg string, args ...any) {
	s.record(context.Background(), "debug", msg, args)
}

func (s *ContextualLoggerSpy) Info(msg string, args ...any) {
	s.record(context.Background(), "info", msg, args)
}

func (s *ContextualLoggerSpy) Warn(msg string, args ...any) {
	s.record(context.Background(), "warn", msg, args)
}

func (s *ContextualLoggerSpy) Error(msg string, args ...any) {
	s.record(context.Background(), "error", msg, args)
}

func (s *ContextualLoggerSpy) DebugContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "debug", msg, args)
}

func (s *ContextualLoggerSpy) InfoContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "info", msg, args)
}

func (s *ContextualLoggerSpy) WarnContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "warn", msg, args)
}

func (s *ContextualLoggerSpy) ErrorContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "error", msg, args)
}

func (s *ContextualLoggerSpy) record(ctx context.Context, level, msg string, args []any) {
	if !s.recordCalls {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, SpyLogRecord{
		Level:   level,
		Message: msg,
		Args:    append([]any(nil), args...),
		Context: ctx,
	})
}

// GetRecords returns a copy of all captured records in call order.
func (s *ContextualLoggerSpy) GetRecords() []SpyLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpyLogRecord(nil), s.records...)
}

// Reset clears all recorded log calls.
func (s *ContextualLoggerSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = s.records[:0]
}

// HasDebugLog checks if a debug log with the specified message exists.
func (s *ContextualLoggerSpy) HasDebugLog(message string) bool {
	return s.hasLog("debug", message)
}

// HasInfoLog checks if an info log with the specified message exists.
func (s *ContextualLoggerSpy) HasInfoLog(message string) bool {
	return s.hasLog("info", message)
}

// HasWarnLog checks if a warn log with the specified message exists.
func (s *ContextualLoggerSpy) HasWarnLog(message string) bool {
	return s.hasLog("warn", message)
}

// HasErrorLog checks if an error log with the specified message exists.
func (s *ContextualLoggerSpy) HasErrorLog(message string) bool {
	return s.hasLog("error", message)
}

// ArgValue returns the value logged under key by the first record with the given message.
func (s *ContextualLoggerSpy) ArgValue(message, key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.records {
		if record.Message != message {
			continue
		}

		for i := 0; i+1 < len(record.Args); i += 2 {
			if k, ok := record.Args[i].(string); ok && k == key {
				return record.Args[i+1], true
			}
		}
	}

	return nil, false
}

func (s *ContextualLoggerSpy) hasLog(level, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.records {
		if record.Level == level && record.Message == message {
			return true
		}
	}

	return false
}

var (
	_ todostore.Logger           = (*ContextualLoggerSpy)(nil)
	_ todostore.ContextualLogger = (*ContextualLoggerSpy)(nil)
)
