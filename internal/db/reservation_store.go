// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package db

import (
	"context"

	"github.com/google/uuid"

	"github.com/jaythomasv29/tablego-sub001/internal/model"
)

type ReservationStore interface {
	CreateReservation(context.Context, *model.Reservation) (uuid.UUID, error)
	GetReservationByID(context.Context, uuid.UUID) (*model.Reservation, error)
	UpdateReservation(context.Context, *model.Reservation) error
	ListReservations(context.Context) ([]*model.Reservation, error)
	ListReservationsByStatus(context.Context, model.ReservationStatus) ([]*model.Reservation, error)
}
