// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package model

import (
	"time"

	"github.com/google/uuid"
)

type Dish struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description,omitempty" form:"description"`
	ImageURL    string `json:"imageUrl,omitempty" form:"image_url"`
}

type CateringInquiry struct {
	ID        uuid.UUID         `json:"id" form:"-"`
	Name      string            `json:"name" form:"name"`
	Email     string            `json:"email" form:"email"`
	Phone     string            `json:"phone" form:"phone"`
	EventDate string            `json:"eventDate" form:"event_date"`
	EventTime string            `json:"eventTime" form:"event_time"`
	Guests    int               `json:"guests" form:"guests"`
	Venue     string            `json:"venue" form:"venue"`
	Budget    string            `json:"budget,omitempty" form:"budget"`
	Dishes    []Dish            `json:"dishes,omitempty" form:"-"`
	Status    ReservationStatus `json:"status" form:"-"`
	CreatedAt time.Time         `json:"createdAt" form:"-"`
}
