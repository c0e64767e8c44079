// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package kvdb

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
	"go.opentelemetry.io/otel/trace"

	"github.com/jaythomasv29/tablego-sub001/internal/model"
)

const bucketEmployees = "employees"

func NewEmployeeStore(bdb *bolt.DB) (*EmployeeStore, error) {
	return &EmployeeStore{db: bdb}, bdb.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketEmployees))
		return err
	})
}

type EmployeeStore struct {
	db *bolt.DB
}

func (s *EmployeeStore) CreateEmployee(ctx context.Context, e *model.Employee) (uuid.UUID, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "CreateEmployee")
	defer span.End()

	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return e.ID, s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketEmployees))
		j, err := json.Marshal(e)
		if err != nil {
			span.RecordError(err)
			return err
		}
		return bucket.Put(e.ID[:], j)
	})
}

func (s *EmployeeStore) ListEmployees(ctx context.Context) ([]*model.Employee, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "ListEmployees")
	defer span.End()

	var out []*model.Employee
	return out, s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketEmployees))
		return bucket.ForEach(func(_, v []byte) error {
			e := &model.Employee{}
			if err := json.Unmarshal(v, e); err != nil {
				return err
			}
			out = append(out, e)
			return nil
		})
	})
}
