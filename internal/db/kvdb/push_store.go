// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package kvdb

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
	"go.opentelemetry.io/otel/trace"

	"github.com/jaythomasv29/tablego-sub001/internal/db"
	"github.com/jaythomasv29/tablego-sub001/internal/model"
)

const (
	bucketSubscriptions = "push_subscriptions"
	bucketNotifications = "notifications"
)

func NewSubscriptionStore(bdb *bolt.DB) (*SubscriptionStore, error) {
	return &SubscriptionStore{db: bdb}, bdb.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketSubscriptions))
		return err
	})
}

type SubscriptionStore struct {
	db *bolt.DB
}

// CreateSubscription keys by endpoint, so a resubscribing browser
// replaces its previous entry instead of accumulating duplicates.
func (s *SubscriptionStore) CreateSubscription(ctx context.Context, sub *model.PushSubscription) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "CreateSubscription")
	defer span.End()

	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketSubscriptions))
		j, err := json.Marshal(sub)
		if err != nil {
			span.RecordError(err)
			return err
		}
		return bucket.Put([]byte(sub.Endpoint), j)
	})
}

func (s *SubscriptionStore) ListSubscriptions(ctx context.Context) ([]*model.PushSubscription, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "ListSubscriptions")
	defer span.End()

	var out []*model.PushSubscription
	return out, s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketSubscriptions))
		return bucket.ForEach(func(_, v []byte) error {
			sub := &model.PushSubscription{}
			if err := json.Unmarshal(v, sub); err != nil {
				return err
			}
			out = append(out, sub)
			return nil
		})
	})
}

func NewNotificationStore(bdb *bolt.DB) (*NotificationStore, error) {
	return &NotificationStore{db: bdb}, bdb.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketNotifications))
		return err
	})
}

type NotificationStore struct {
	db *bolt.DB
}

// CreateNotification keys records by creation time so the cursor's last
// entry is always the most recent batch marker.
func (s *NotificationStore) CreateNotification(ctx context.Context, n *model.NotificationRecord) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "CreateNotification")
	defer span.End()

	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketNotifications))
		j, err := json.Marshal(n)
		if err != nil {
			span.RecordError(err)
			return err
		}
		key := append([]byte(n.CreatedAt.UTC().Format(time.RFC3339Nano)), n.ID[:]...)
		return bucket.Put(key, j)
	})
}

func (s *NotificationStore) LatestNotification(ctx context.Context) (*model.NotificationRecord, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "LatestNotification")
	defer span.End()

	n := &model.NotificationRecord{}
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketNotifications))
		_, v := bucket.Cursor().Last()
		if v == nil {
			return db.ErrNotFound
		}
		return json.Unmarshal(v, n)
	})
	if err != nil {
		return nil, err
	}
	return n, nil
}
