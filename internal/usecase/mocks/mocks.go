package mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/jokobim12/tefanote/internal/domain"
)

// MockStateRepository is an in-memory implementation of
// usecase.StateRepository. Default behavior round-trips state through
// JSON, the same way the real backends do; individual methods can be
// overridden through the Func fields.
type MockStateRepository struct {
	mu       sync.Mutex
	records  []byte
	snapshot []byte
	presets  []byte

	SaveRecordCalls   int
	SaveSnapshotCalls int

	LoadRecordsFunc  func(ctx context.Context) ([]domain.Record, error)
	SaveRecordsFunc  func(ctx context.Context, records []domain.Record) error
	LoadSnapshotFunc func(ctx context.Context) (domain.ArchiveSnapshot, error)
	SaveSnapshotFunc func(ctx context.Context, snapshot domain.ArchiveSnapshot) error
	LoadPresetsFunc  func(ctx context.Context) ([]domain.PresetItem, bool, error)
	SavePresetsFunc  func(ctx context.Context, presets []domain.PresetItem) error
}

func NewMockStateRepository() *MockStateRepository {
	return &MockStateRepository{}
}

func (m *MockStateRepository) LoadRecords(ctx context.Context) ([]domain.Record, error) {
	if m.LoadRecordsFunc != nil {
		return m.LoadRecordsFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.records == nil {
		return nil, nil
	}
	var records []domain.Record
	if err := json.Unmarshal(m.records, &records); err != nil {
		return nil, nil
	}
	return records, nil
}

func (m *MockStateRepository) SaveRecords(ctx context.Context, records []domain.Record) error {
	if m.SaveRecordsFunc != nil {
		return m.SaveRecordsFunc(ctx, records)
	}
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = data
	m.SaveRecordCalls++
	return nil
}

func (m *MockStateRepository) LoadSnapshot(ctx context.Context) (domain.ArchiveSnapshot, error) {
	if m.LoadSnapshotFunc != nil {
		return m.LoadSnapshotFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var snapshot domain.ArchiveSnapshot
	if m.snapshot == nil {
		return snapshot, nil
	}
	if err := json.Unmarshal(m.snapshot, &snapshot); err != nil {
		return domain.ArchiveSnapshot{}, nil
	}
	return snapshot, nil
}

func (m *MockStateRepository) SaveSnapshot(ctx context.Context, snapshot domain.ArchiveSnapshot) error {
	if m.SaveSnapshotFunc != nil {
		return m.SaveSnapshotFunc(ctx, snapshot)
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshot = data
	m.SaveSnapshotCalls++
	return nil
}

func (m *MockStateRepository) LoadPresets(ctx context.Context) ([]domain.PresetItem, bool, error) {
	if m.LoadPresetsFunc != nil {
		return m.LoadPresetsFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.presets == nil {
		return nil, false, nil
	}
	var presets []domain.PresetItem
	if err := json.Unmarshal(m.presets, &presets); err != nil {
		return nil, false, nil
	}
	return presets, true, nil
}

func (m *MockStateRepository) SavePresets(ctx context.Context, presets []domain.PresetItem) error {
	if m.SavePresetsFunc != nil {
		return m.SavePresetsFunc(ctx, presets)
	}
	data, err := json.Marshal(presets)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.presets = data
	return nil
}

// MockIDGenerator hands out sequential ids.
type MockIDGenerator struct {
	mu   sync.Mutex
	next int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return fmt.Sprintf("id-%d", m.next)
}

// MockClock returns a pinned instant so "today" is deterministic.
type MockClock struct {
	Instant time.Time

	NowFunc func() time.Time
}

// NewMockClock pins the clock to the given RFC 3339 instant.
func NewMockClock(instant string) *MockClock {
	t, err := time.Parse(time.RFC3339, instant)
	if err != nil {
		panic(err)
	}
	return &MockClock{Instant: t}
}

func (m *MockClock) Now() time.Time {
	if m.NowFunc != nil {
		return m.NowFunc()
	}
	return m.Instant
}

// MockChatCompleter records the last prompt and echoes a canned reply.
type MockChatCompleter struct {
	mu         sync.Mutex
	LastSystem string
	LastUser   string
	Reply      string

	CompleteFunc func(ctx context.Context, system, user string) (string, error)
}

func NewMockChatCompleter(reply string) *MockChatCompleter {
	return &MockChatCompleter{Reply: reply}
}

func (m *MockChatCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, system, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastSystem = system
	m.LastUser = user
	return m.Reply, nil
}
