package cache

import (
	"context"
	"time"

	"caza_backend/internal/domain/entities"
	"caza_backend/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

// CachedRecordStore serves ReadRows from the cache. Writes go to the inner store
// and then evict the collection.
type CachedRecordStore struct {
	inner interfaces.IRecordStore
	store Store
	ttl   time.Duration
}

var _ interfaces.IRecordStore = (*CachedRecordStore)(nil)

func NewCachedRecordStore(inner interfaces.IRecordStore, store Store, ttl time.Duration) *CachedRecordStore {
	return &CachedRecordStore{inner: inner, store: store, ttl: ttl}
}

func recordsKey(sourceID, collection string) string {
	return "records:" + sourceID + ":" + collection
}

func (c *CachedRecordStore) ReadRows(ctx context.Context, sourceID, collection string) ([]entities.Record, error) {
	return GetOrLoad(ctx, c.store, recordsKey(sourceID, collection), c.ttl, func(ctx context.Context) ([]entities.Record, error) {
		return c.inner.ReadRows(ctx, sourceID, collection)
	})
}

func (c *CachedRecordStore) AppendRows(ctx context.Context, sourceID, collection string, rows [][]string) error {
	if err := c.inner.AppendRows(ctx, sourceID, collection, rows); err != nil {
		return err
	}
	c.evict(ctx, recordsKey(sourceID, collection))
	return nil
}

func (c *CachedRecordStore) UpdateCell(ctx context.Context, sourceID, collection, keyColumn, key, column, value string) error {
	if err := c.inner.UpdateCell(ctx, sourceID, collection, keyColumn, key, column, value); err != nil {
		return err
	}
	c.evict(ctx, recordsKey(sourceID, collection))
	return nil
}

func (c *CachedRecordStore) evict(ctx context.Context, key string) {
	if c.store == nil {
		return
	}
	if err := c.store.Delete(ctx, key); err != nil {
		log.Warnf("[cache] evict failed key=%s err=%v", key, err)
	}
}

// CachedBlobStore caches the folder listing; downloads always hit the inner store.
type CachedBlobStore struct {
	inner interfaces.IBlobStore
	store Store
	ttl   time.Duration
}

var _ interfaces.IBlobStore = (*CachedBlobStore)(nil)

const blobListKey = "blobs:pdfs"

func NewCachedBlobStore(inner interfaces.IBlobStore, store Store, ttl time.Duration) *CachedBlobStore {
	return &CachedBlobStore{inner: inner, store: store, ttl: ttl}
}

func (c *CachedBlobStore) ListPDFs(ctx context.Context) ([]interfaces.BlobFile, error) {
	return GetOrLoad(ctx, c.store, blobListKey, c.ttl, c.inner.ListPDFs)
}

func (c *CachedBlobStore) Download(ctx context.Context, fileID string) ([]byte, error) {
	return c.inner.Download(ctx, fileID)
}
