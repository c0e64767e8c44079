// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package model

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionKeys struct {
	P256dh string `json:"p256dh"`
	Auth   string `json:"auth"`
}

// PushSubscription holds a browser push registration. The endpoint and
// keys are opaque to this system and passed through to the push transport.
type PushSubscription struct {
	ID        uuid.UUID        `json:"id"`
	Endpoint  string           `json:"endpoint"`
	Keys      SubscriptionKeys `json:"keys"`
	CreatedAt time.Time        `json:"createdAt"`
}

// NotificationRecord marks one push batch. Its timestamp drives the
// cooldown between batches.
type NotificationRecord struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}
