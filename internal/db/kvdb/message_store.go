// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package kvdb

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
	"go.opentelemetry.io/otel/trace"

	"github.com/jaythomasv29/tablego-sub001/internal/db"
	"github.com/jaythomasv29/tablego-sub001/internal/model"
)

const bucketMessages = "messages"

func NewMessageStore(bdb *bolt.DB) (*MessageStore, error) {
	return &MessageStore{db: bdb}, bdb.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketMessages))
		return err
	})
}

type MessageStore struct {
	db *bolt.DB
}

func (s *MessageStore) CreateMessage(ctx context.Context, m *model.Message) (uuid.UUID, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "CreateMessage")
	defer span.End()

	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return m.ID, s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketMessages))
		j, err := json.Marshal(m)
		if err != nil {
			span.RecordError(err)
			return err
		}
		return bucket.Put(m.ID[:], j)
	})
}

func (s *MessageStore) GetMessageByID(ctx context.Context, id uuid.UUID) (*model.Message, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "GetMessageByID")
	defer span.End()

	m := &model.Message{}
	return m, s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketMessages))
		res := bucket.Get(id[:])
		if res == nil {
			span.RecordError(db.ErrNotFound)
			return db.ErrNotFound
		}
		return json.Unmarshal(res, m)
	})
}

func (s *MessageStore) UpdateMessage(ctx context.Context, m *model.Message) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "UpdateMessage")
	defer span.End()

	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketMessages))
		if bucket.Get(m.ID[:]) == nil {
			span.RecordError(db.ErrNotFound)
			return db.ErrNotFound
		}
		j, err := json.Marshal(m)
		if err != nil {
			span.RecordError(err)
			return err
		}
		return bucket.Put(m.ID[:], j)
	})
}

func (s *MessageStore) ListMessages(ctx context.Context) ([]*model.Message, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "ListMessages")
	defer span.End()

	var out []*model.Message
	return out, s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketMessages))
		return bucket.ForEach(func(_, v []byte) error {
			m := &model.Message{}
			if err := json.Unmarshal(v, m); err != nil {
				return err
			}
			out = append(out, m)
			return nil
		})
	})
}
