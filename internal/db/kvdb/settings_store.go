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

const (
	bucketSettings = "settings"

	keyBanner  = "banner"
	keyGeneral = "general"
)

func NewSettingsStore(bdb *bolt.DB) (*SettingsStore, error) {
	return &SettingsStore{db: bdb}, bdb.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketSettings))
		return err
	})
}

type SettingsStore struct {
	db *bolt.DB
}

func (s *SettingsStore) GetBanner(ctx context.Context) (*model.Banner, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "GetBanner")
	defer span.End()

	// A fresh database has no banner yet; that is not an error.
	banner := &model.Banner{}
	return banner, s.db.View(func(tx *bolt.Tx) error {
		res := tx.Bucket([]byte(bucketSettings)).Get([]byte(keyBanner))
		if res == nil {
			return nil
		}
		return json.Unmarshal(res, banner)
	})
}

func (s *SettingsStore) SetBanner(ctx context.Context, banner *model.Banner) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "SetBanner")
	defer span.End()

	return s.db.Update(func(tx *bolt.Tx) error {
		j, err := json.Marshal(banner)
		if err != nil {
			span.RecordError(err)
			return err
		}
		return tx.Bucket([]byte(bucketSettings)).Put([]byte(keyBanner), j)
	})
}

func (s *SettingsStore) GetSettings(ctx context.Context) (*model.Settings, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "GetSettings")
	defer span.End()

	settings := &model.Settings{Timezone: "America/Los_Angeles"}
	return settings, s.db.View(func(tx *bolt.Tx) error {
		res := tx.Bucket([]byte(bucketSettings)).Get([]byte(keyGeneral))
		if res == nil {
			return nil
		}
		return json.Unmarshal(res, settings)
	})
}

func (s *SettingsStore) SetSettings(ctx context.Context, settings *model.Settings) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "SetSettings")
	defer span.End()

	return s.db.Update(func(tx *bolt.Tx) error {
		j, err := json.Marshal(settings)
		if err != nil {
			span.RecordError(err)
			return err
		}
		return tx.Bucket([]byte(bucketSettings)).Put([]byte(keyGeneral), j)
	})
}
