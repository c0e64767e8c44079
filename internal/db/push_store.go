// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package db

import (
	"context"

	"github.com/jaythomasv29/tablego-sub001/internal/model"
)

// SubscriptionStore keeps browser push registrations. Creating a
// subscription supersedes any stored entry with the same endpoint.
type SubscriptionStore interface {
	CreateSubscription(context.Context, *model.PushSubscription) error
	ListSubscriptions(context.Context) ([]*model.PushSubscription, error)
}

// NotificationStore keeps one record per push batch; the latest record's
// timestamp drives the send cooldown.
type NotificationStore interface {
	CreateNotification(context.Context, *model.NotificationRecord) error
	LatestNotification(context.Context) (*model.NotificationRecord, error)
}
