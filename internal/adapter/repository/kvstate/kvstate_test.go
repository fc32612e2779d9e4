package kvstate

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jokobim12/tefanote/internal/domain"
)

type memKV struct {
	data map[string][]byte
	err  error
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string][]byte)}
}

func (m *memKV) Get(ctx context.Context, key string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	data, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return data, nil
}

func (m *memKV) Set(ctx context.Context, key string, value []byte) error {
	if m.err != nil {
		return m.err
	}
	m.data[key] = value
	return nil
}

func (m *memKV) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func newRepo(kv KV) *Repository {
	return NewRepository(kv, zerolog.Nop())
}

func TestRecordsRoundTrip(t *testing.T) {
	repo := newRepo(newMemKV())
	ctx := context.Background()

	records := []domain.Record{
		{ID: "r-1", Kind: domain.KindSimple, Date: "2024-06-01T08:00:00Z", ItemName: "Fotocopy", Price: domain.NewAmount(250), Qty: 4, Total: domain.NewAmount(1000)},
		{ID: "r-2", Kind: domain.KindGroup, Date: "2024-06-01T09:00:00Z", BuyerName: "Sari", TotalPrice: domain.NewAmount(8000)},
	}
	require.NoError(t, repo.SaveRecords(ctx, records))

	loaded, err := repo.LoadRecords(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "r-1", loaded[0].ID)
	assert.True(t, loaded[1].Value().Equal(domain.NewAmount(8000).Decimal))
}

func TestAbsentDocumentsLoadEmpty(t *testing.T) {
	repo := newRepo(newMemKV())
	ctx := context.Background()

	records, err := repo.LoadRecords(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	snapshot, err := repo.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.True(t, snapshot.TotalIncome.IsZero())
	assert.Zero(t, snapshot.TotalCount)

	presets, present, err := repo.LoadPresets(ctx)
	require.NoError(t, err)
	assert.False(t, present)
	assert.Nil(t, presets)
}

func TestUnparseableDocumentLoadsEmpty(t *testing.T) {
	kv := newMemKV()
	kv.data[recordsKey] = []byte("{not json")
	kv.data[snapshotKey] = []byte(`"also wrong"`)
	repo := newRepo(kv)
	ctx := context.Background()

	records, err := repo.LoadRecords(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	snapshot, err := repo.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.True(t, snapshot.TotalIncome.IsZero())
}

func TestBackendErrorSurfaces(t *testing.T) {
	kv := newMemKV()
	kv.err = errors.New("backend down")
	repo := newRepo(kv)
	ctx := context.Background()

	_, err := repo.LoadRecords(ctx)
	assert.ErrorContains(t, err, "backend down")
	assert.Error(t, repo.SaveSnapshot(ctx, domain.ArchiveSnapshot{}))
}

func TestSnapshotRoundTrip(t *testing.T) {
	repo := newRepo(newMemKV())
	ctx := context.Background()

	snapshot := domain.ArchiveSnapshot{
		TotalIncome: domain.NewAmount(125000),
		TotalCount:  17,
		TodayBucket: domain.DayBucket{Date: "2024-06-01", Amount: domain.NewAmount(13000)},
	}
	require.NoError(t, repo.SaveSnapshot(ctx, snapshot))

	loaded, err := repo.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.True(t, loaded.TotalIncome.Equal(domain.NewAmount(125000).Decimal))
	assert.Equal(t, int64(17), loaded.TotalCount)
	assert.Equal(t, "2024-06-01", loaded.TodayBucket.Date)
}

func TestEmptyPresetCatalogStaysPresent(t *testing.T) {
	repo := newRepo(newMemKV())
	ctx := context.Background()

	require.NoError(t, repo.SavePresets(ctx, nil))

	presets, present, err := repo.LoadPresets(ctx)
	require.NoError(t, err)
	assert.True(t, present)
	assert.Empty(t, presets)
}
