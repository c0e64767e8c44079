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

const bucketCatering = "catering"

func NewCateringStore(bdb *bolt.DB) (*CateringStore, error) {
	return &CateringStore{db: bdb}, bdb.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketCatering))
		return err
	})
}

type CateringStore struct {
	db *bolt.DB
}

func (s *CateringStore) CreateInquiry(ctx context.Context, in *model.CateringInquiry) (uuid.UUID, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "CreateInquiry")
	defer span.End()

	if in.ID == uuid.Nil {
		in.ID = uuid.New()
	}
	return in.ID, s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketCatering))
		j, err := json.Marshal(in)
		if err != nil {
			span.RecordError(err)
			return err
		}
		return bucket.Put(in.ID[:], j)
	})
}

func (s *CateringStore) GetInquiryByID(ctx context.Context, id uuid.UUID) (*model.CateringInquiry, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "GetInquiryByID")
	defer span.End()

	in := &model.CateringInquiry{}
	return in, s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketCatering))
		res := bucket.Get(id[:])
		if res == nil {
			span.RecordError(db.ErrNotFound)
			return db.ErrNotFound
		}
		return json.Unmarshal(res, in)
	})
}

func (s *CateringStore) ListInquiries(ctx context.Context) ([]*model.CateringInquiry, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "ListInquiries")
	defer span.End()

	var out []*model.CateringInquiry
	return out, s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketCatering))
		return bucket.ForEach(func(_, v []byte) error {
			in := &model.CateringInquiry{}
			if err := json.Unmarshal(v, in); err != nil {
				return err
			}
			out = append(out, in)
			return nil
		})
	})
}
