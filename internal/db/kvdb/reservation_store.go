// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package kvdb

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jaythomasv29/tablego-sub001/internal/db"
	"github.com/jaythomasv29/tablego-sub001/internal/model"
)

const bucketReservations = "reservations"

func NewReservationStore(bdb *bolt.DB) (*ReservationStore, error) {
	return &ReservationStore{db: bdb}, bdb.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketReservations))
		return err
	})
}

type ReservationStore struct {
	db *bolt.DB
}

func (s *ReservationStore) CreateReservation(ctx context.Context, r *model.Reservation) (uuid.UUID, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "CreateReservation")
	defer span.End()

	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return r.ID, s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketReservations))
		j, err := json.Marshal(r)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
		return bucket.Put(r.ID[:], j)
	})
}

func (s *ReservationStore) GetReservationByID(ctx context.Context, id uuid.UUID) (*model.Reservation, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "GetReservationByID")
	defer span.End()

	r := &model.Reservation{}
	return r, s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketReservations))
		res := bucket.Get(id[:])
		if res == nil {
			span.RecordError(db.ErrNotFound)
			return db.ErrNotFound
		}
		return json.Unmarshal(res, r)
	})
}

func (s *ReservationStore) UpdateReservation(ctx context.Context, r *model.Reservation) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "UpdateReservation")
	defer span.End()

	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketReservations))
		if bucket.Get(r.ID[:]) == nil {
			span.RecordError(db.ErrNotFound)
			return db.ErrNotFound
		}
		j, err := json.Marshal(r)
		if err != nil {
			span.RecordError(err)
			return err
		}
		return bucket.Put(r.ID[:], j)
	})
}

func (s *ReservationStore) ListReservations(ctx context.Context) ([]*model.Reservation, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "ListReservations")
	defer span.End()

	var out []*model.Reservation
	return out, s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketReservations))
		return bucket.ForEach(func(_, v []byte) error {
			r := &model.Reservation{}
			if err := json.Unmarshal(v, r); err != nil {
				return err
			}
			out = append(out, r)
			return nil
		})
	})
}

func (s *ReservationStore) ListReservationsByStatus(ctx context.Context, status model.ReservationStatus) ([]*model.Reservation, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "ListReservationsByStatus")
	defer span.End()

	all, err := s.ListReservations(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	out := make([]*model.Reservation, 0, len(all))
	for _, r := range all {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out, nil
}
