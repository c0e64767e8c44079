// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package kvdb

import (
	"context"
	"encoding/json"

	bolt "go.etcd.io/bbolt"
	"go.opentelemetry.io/otel/trace"

	"github.com/jaythomasv29/tablego-sub001/internal/model"
)

const bucketMenu = "menu"

func NewMenuStore(bdb *bolt.DB) (*MenuStore, error) {
	return &MenuStore{db: bdb}, bdb.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketMenu))
		return err
	})
}

type MenuStore struct {
	db *bolt.DB
}

// CreateMenuItem keys by item name, which also gives the seeder its
// duplicate check for free.
func (s *MenuStore) CreateMenuItem(ctx context.Context, item *model.MenuItem) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "CreateMenuItem")
	defer span.End()

	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketMenu))
		j, err := json.Marshal(item)
		if err != nil {
			span.RecordError(err)
			return err
		}
		return bucket.Put([]byte(item.Name), j)
	})
}

func (s *MenuStore) ListMenuItems(ctx context.Context) ([]*model.MenuItem, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "ListMenuItems")
	defer span.End()

	var out []*model.MenuItem
	return out, s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketMenu))
		return bucket.ForEach(func(_, v []byte) error {
			item := &model.MenuItem{}
			if err := json.Unmarshal(v, item); err != nil {
				return err
			}
			out = append(out, item)
			return nil
		})
	})
}
