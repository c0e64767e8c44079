// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jaythomasv29/tablego-sub001/internal/config"
	"github.com/jaythomasv29/tablego-sub001/internal/db"
	"github.com/jaythomasv29/tablego-sub001/internal/model"
)

// Cooldown is the minimum gap between push batches.
const Cooldown = 5 * time.Minute

// PushResult reports the outcome of one Send call. RateLimited is a
// control result, not an error: the cooldown had not elapsed and no
// subscription was contacted.
type PushResult struct {
	RateLimited bool `json:"rateLimited,omitempty"`
	Delivered   int  `json:"delivered"`
	Failed      int  `json:"failed"`
}

type sendFunc func(sub *model.PushSubscription, payload []byte) error

func NewPushDispatcher(subs db.SubscriptionStore, records db.NotificationStore, vapid config.VAPID) *PushDispatcher {
	return &PushDispatcher{
		subs:    subs,
		records: records,
		send:    webpushSender(vapid),
		now:     time.Now,
		logger:  slog.Default().WithGroup("push"),
	}
}

type PushDispatcher struct {
	subs    db.SubscriptionStore
	records db.NotificationStore
	send    sendFunc
	now     func() time.Time
	logger  *slog.Logger
}

// Subscribe stores a browser registration. The store supersedes any
// earlier entry with the same endpoint.
func (d *PushDispatcher) Subscribe(ctx context.Context, sub *model.PushSubscription) error {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "PushDispatcher.Subscribe")
	defer span.End()

	if sub.Endpoint == "" {
		return errors.New("subscription endpoint is empty")
	}
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	sub.CreatedAt = d.now()
	return d.subs.CreateSubscription(ctx, sub)
}

// Send fans one notification out to every stored subscription.
//
// The cooldown marker is written before fan-out, so the rate limit holds
// even when individual deliveries fail afterwards. Per-subscription
// failures are logged and never abort the batch.
func (d *PushDispatcher) Send(ctx context.Context, title, body string) (*PushResult, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "PushDispatcher.Send")
	defer span.End()

	last, err := d.records.LatestNotification(ctx)
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		span.RecordError(err)
		return nil, fmt.Errorf("read latest notification: %w", err)
	}
	if last != nil && d.now().Sub(last.CreatedAt) < Cooldown {
		span.AddEvent("rate limited")
		return &PushResult{RateLimited: true}, nil
	}

	if err := d.records.CreateNotification(ctx, &model.NotificationRecord{
		Title:     title,
		Body:      body,
		CreatedAt: d.now(),
	}); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("write notification record: %w", err)
	}

	subs, err := d.subs.ListSubscriptions(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	span.SetAttributes(attribute.Int("subscriptions", len(subs)))

	payload, err := json.Marshal(map[string]string{"title": title, "body": body})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	failures := make([]error, len(subs))
	var wg sync.WaitGroup
	for i, sub := range subs {
		wg.Add(1)
		go func(i int, sub *model.PushSubscription) {
			defer wg.Done()
			failures[i] = d.send(sub, payload)
		}(i, sub)
	}
	wg.Wait()

	result := &PushResult{}
	for i, sendErr := range failures {
		if sendErr != nil {
			result.Failed++
			d.logger.WarnContext(ctx, "push delivery failed", "endpoint", subs[i].Endpoint, "error", sendErr)
			continue
		}
		result.Delivered++
	}
	return result, nil
}

func webpushSender(vapid config.VAPID) sendFunc {
	return func(sub *model.PushSubscription, payload []byte) error {
		resp, err := webpush.SendNotification(payload, &webpush.Subscription{
			Endpoint: sub.Endpoint,
			Keys: webpush.Keys{
				P256dh: sub.Keys.P256dh,
				Auth:   sub.Keys.Auth,
			},
		}, &webpush.Options{
			Subscriber:      vapid.Subject,
			VAPIDPublicKey:  vapid.PublicKey,
			VAPIDPrivateKey: vapid.PrivateKey,
			TTL:             30,
		})
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode >= 400 {
			return fmt.Errorf("push endpoint returned %d", resp.StatusCode)
		}
		return nil
	}
}
