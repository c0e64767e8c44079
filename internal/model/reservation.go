// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package model

import (
	"time"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

type Reservation struct {
	ID             uuid.UUID         `json:"id" form:"-"`
	Name           string            `json:"name" form:"name"`
	Email          string            `json:"email" form:"email"`
	Phone          string            `json:"phone" form:"phone"`
	Guests         int               `json:"guests" form:"guests"`
	Date           string            `json:"date" form:"date"`
	Time           string            `json:"time" form:"time"`
	Comments       string            `json:"comments,omitempty" form:"comments"`
	Status         ReservationStatus `json:"status" form:"-"`
	CreatedAt      time.Time         `json:"createdAt" form:"-"`
	ConfirmedAt    *time.Time        `json:"confirmedAt,omitempty" form:"-"`
	CancelledAt    *time.Time        `json:"cancelledAt,omitempty" form:"-"`
	ReminderSent   bool              `json:"reminderSent,omitempty" form:"-"`
	ReminderSentAt *time.Time        `json:"reminderSentAt,omitempty" form:"-"`
}

// Terminal reports whether the reservation reached a state that no
// further guest action is expected from.
func (r *Reservation) Terminal() bool {
	return r.Status == ReservationStatusCancelled
}
