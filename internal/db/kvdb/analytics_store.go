// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package kvdb

import (
	"context"
	"encoding/json"
	"strconv"

	bolt "go.etcd.io/bbolt"
	"go.opentelemetry.io/otel/trace"
)

const bucketAnalytics = "analytics"

func NewAnalyticsStore(bdb *bolt.DB) (*AnalyticsStore, error) {
	return &AnalyticsStore{db: bdb}, bdb.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketAnalytics))
		return err
	})
}

// AnalyticsStore keeps one counter per page+date under the composite
// key "<page>\x00<date>". Increments ride the bucket's write transaction.
type AnalyticsStore struct {
	db *bolt.DB
}

func (s *AnalyticsStore) RecordVisit(ctx context.Context, page, date string) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "RecordVisit")
	defer span.End()

	key := append(append([]byte(page), 0), []byte(date)...)
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketAnalytics))
		count := 0
		if res := bucket.Get(key); res != nil {
			if err := json.Unmarshal(res, &count); err != nil {
				span.RecordError(err)
				return err
			}
		}
		return bucket.Put(key, []byte(strconv.Itoa(count+1)))
	})
}

func (s *AnalyticsStore) VisitCounts(ctx context.Context) (map[string]map[string]int, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "VisitCounts")
	defer span.End()

	out := make(map[string]map[string]int)
	return out, s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketAnalytics))
		return bucket.ForEach(func(k, v []byte) error {
			page, date, ok := cutByte(k, 0)
			if !ok {
				return nil
			}
			count, err := strconv.Atoi(string(v))
			if err != nil {
				span.RecordError(err)
				return err
			}
			if out[string(page)] == nil {
				out[string(page)] = make(map[string]int)
			}
			out[string(page)][string(date)] = count
			return nil
		})
	})
}

func cutByte(b []byte, sep byte) (before, after []byte, found bool) {
	for i, c := range b {
		if c == sep {
			return b[:i], b[i+1:], true
		}
	}
	return b, nil, false
}
