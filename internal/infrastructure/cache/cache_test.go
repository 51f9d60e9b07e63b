package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"caza_backend/internal/domain/entities"
	"caza_backend/internal/usecase/interfaces"
	mock_interfaces "caza_backend/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testClock struct{ t time.Time }

func (c *testClock) now() time.Time          { return c.t }
func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestMemoryStore_Expiry(t *testing.T) {
	clock := &testClock{t: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)}
	store := NewMemoryStore().WithClock(clock.now)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Minute))
	v, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", string(v))

	clock.advance(time.Minute)
	_, ok, _ = store.Get(ctx, "k")
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Minute))
	require.NoError(t, store.Delete(ctx, "k", "missing"))
	_, ok, _ = store.Get(ctx, "k")
	assert.False(t, ok)
}

func TestGetOrLoad(t *testing.T) {
	clock := &testClock{t: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)}
	store := NewMemoryStore().WithClock(clock.now)
	ctx := context.Background()
	calls := 0
	load := func(context.Context) ([]string, error) {
		calls++
		return []string{"a", "b"}, nil
	}

	for i := 0; i < 3; i++ {
		got, err := GetOrLoad(ctx, store, "list", time.Minute, load)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, got)
	}
	assert.Equal(t, 1, calls)

	clock.advance(2 * time.Minute)
	_, _ = GetOrLoad(ctx, store, "list", time.Minute, load)
	assert.Equal(t, 2, calls)
}

func TestGetOrLoad_ErrorsAreNotCached(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	boom := errors.New("sheet unavailable")

	_, err := GetOrLoad(ctx, store, "k", time.Minute, func(context.Context) (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)

	got, err := GetOrLoad(ctx, store, "k", time.Minute, func(context.Context) (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestGetOrLoad_DisabledWithoutTTL(t *testing.T) {
	calls := 0
	load := func(context.Context) (int, error) { calls++; return calls, nil }

	_, _ = GetOrLoad(context.Background(), NewMemoryStore(), "k", 0, load)
	_, _ = GetOrLoad(context.Background(), nil, "k", time.Minute, load)
	assert.Equal(t, 2, calls)
}

func TestCachedRecordStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := mock_interfaces.NewMockIRecordStore(ctrl)
	cached := NewCachedRecordStore(inner, NewMemoryStore(), time.Minute)
	ctx := context.Background()
	rows := []entities.Record{{"ID": "15"}}

	gomock.InOrder(
		inner.EXPECT().ReadRows(gomock.Any(), "sheet-1", "permisos").Return(rows, nil),
		inner.EXPECT().UpdateCell(gomock.Any(), "sheet-1", "permisos", "ID", "15", "Estado de Pago", "Paid").Return(nil),
		inner.EXPECT().ReadRows(gomock.Any(), "sheet-1", "permisos").Return(rows, nil),
	)

	for i := 0; i < 2; i++ {
		got, err := cached.ReadRows(ctx, "sheet-1", "permisos")
		require.NoError(t, err)
		assert.Equal(t, rows, got)
	}
	require.NoError(t, cached.UpdateCell(ctx, "sheet-1", "permisos", "ID", "15", "Estado de Pago", "Paid"))
	_, err := cached.ReadRows(ctx, "sheet-1", "permisos")
	require.NoError(t, err)
}

func TestCachedRecordStore_FailedWriteKeepsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := mock_interfaces.NewMockIRecordStore(ctrl)
	cached := NewCachedRecordStore(inner, NewMemoryStore(), time.Minute)
	ctx := context.Background()

	inner.EXPECT().ReadRows(gomock.Any(), "s", "logs").Return([]entities.Record{}, nil).Times(1)
	inner.EXPECT().AppendRows(gomock.Any(), "s", "logs", gomock.Any()).Return(errors.New("quota"))

	_, _ = cached.ReadRows(ctx, "s", "logs")
	assert.Error(t, cached.AppendRows(ctx, "s", "logs", [][]string{{"x"}}))
	_, err := cached.ReadRows(ctx, "s", "logs")
	assert.NoError(t, err)
}

func TestCachedBlobStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := mock_interfaces.NewMockIBlobStore(ctrl)
	cached := NewCachedBlobStore(inner, NewMemoryStore(), time.Minute)
	ctx := context.Background()
	files := []interfaces.BlobFile{{ID: "f1", Name: "15.pdf"}}

	inner.EXPECT().ListPDFs(gomock.Any()).Return(files, nil).Times(1)
	inner.EXPECT().Download(gomock.Any(), "f1").Return([]byte("pdf"), nil).Times(2)

	for i := 0; i < 2; i++ {
		got, err := cached.ListPDFs(ctx)
		require.NoError(t, err)
		assert.Equal(t, files, got)
		_, err = cached.Download(ctx, "f1")
		require.NoError(t, err)
	}
}
