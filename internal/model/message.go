// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package model

import (
	"time"

	"github.com/google/uuid"
)

type MessageStatus string

const (
	MessageStatusUnread MessageStatus = "unread"
	MessageStatusRead   MessageStatus = "read"
)

// Message is a contact form submission. Messages are never deleted,
// only flipped from unread to read by an admin.
type Message struct {
	ID        uuid.UUID     `json:"id" form:"-"`
	Name      string        `json:"name" form:"name"`
	Email     string        `json:"email" form:"email"`
	Body      string        `json:"body" form:"body"`
	Status    MessageStatus `json:"status" form:"-"`
	CreatedAt time.Time     `json:"createdAt" form:"-"`
}
