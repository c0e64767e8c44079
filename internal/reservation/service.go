// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package reservation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jaythomasv29/tablego-sub001/internal/db"
	"github.com/jaythomasv29/tablego-sub001/internal/model"
	"github.com/jaythomasv29/tablego-sub001/internal/notify"
)

// Mailer is the slice of the notification dispatcher the lifecycle needs.
type Mailer interface {
	SendReservationConfirmation(context.Context, *model.Reservation) error
	SendCancellation(context.Context, *model.Reservation) error
	SendReschedule(context.Context, *model.Reservation) error
	SendReminder(context.Context, *model.Reservation) error
}

func NewService(store db.ReservationStore, mailer Mailer) *Service {
	return &Service{
		store:  store,
		mailer: mailer,
		now:    time.Now,
		logger: slog.Default().WithGroup("reservation"),
	}
}

// Service owns the reservation status transitions and their email side
// effects. Concurrent mutations of the same reservation race at the
// store level; last write wins.
type Service struct {
	store  db.ReservationStore
	mailer Mailer
	now    func() time.Time
	logger *slog.Logger
}

// CreateResult echoes the booked slot back for client display.
type CreateResult struct {
	ID     uuid.UUID `json:"id"`
	Date   string    `json:"date"`
	Time   string    `json:"time"`
	Guests int       `json:"guests"`
}

// Create writes the reservation with status confirmed, then mails the
// confirmation. The store write happens first and is not rolled back
// when mail delivery fails, so the document may exist with no email
// ever sent.
func (s *Service) Create(ctx context.Context, r *model.Reservation) (*CreateResult, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "Service.Create")
	defer span.End()

	r.Status = model.ReservationStatusConfirmed
	r.CreatedAt = s.now()

	id, err := s.store.CreateReservation(ctx, r)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	if err := s.mailer.SendReservationConfirmation(ctx, r); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("confirmation mail for %s: %w", id, err)
	}

	return &CreateResult{
		ID:     id,
		Date:   notify.FormatLongDate(r.Date),
		Time:   notify.FormatClock(r.Time),
		Guests: r.Guests,
	}, nil
}

// Confirm sets the reservation confirmed. Re-confirming is a no-op
// write that keeps the original confirmation timestamp. No email is
// sent on this transition.
func (s *Service) Confirm(ctx context.Context, id uuid.UUID) (*model.Reservation, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "Service.Confirm")
	defer span.End()

	r, err := s.store.GetReservationByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if r.Status != model.ReservationStatusConfirmed {
		now := s.now()
		r.Status = model.ReservationStatusConfirmed
		r.ConfirmedAt = &now
	}
	if err := s.store.UpdateReservation(ctx, r); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("confirm reservation %s: %w", id, err)
	}
	return r, nil
}

// Cancel sets the reservation cancelled and mails the guest. The email
// is best-effort: the status write has already succeeded, so a mail
// failure is logged and not reverted.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (*model.Reservation, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "Service.Cancel")
	defer span.End()

	r, err := s.cancel(ctx, span, id)
	if err != nil {
		return nil, err
	}
	if err := s.mailer.SendCancellation(ctx, r); err != nil {
		span.RecordError(err)
		s.logger.ErrorContext(ctx, "cancellation mail failed", "id", id.String(), "error", err)
	}
	return r, nil
}

// AdminCancel is the back-office cancel: the store update only, no email.
func (s *Service) AdminCancel(ctx context.Context, id uuid.UUID) (*model.Reservation, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "Service.AdminCancel")
	defer span.End()

	return s.cancel(ctx, span, id)
}

func (s *Service) cancel(ctx context.Context, span trace.Span, id uuid.UUID) (*model.Reservation, error) {
	r, err := s.store.GetReservationByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	now := s.now()
	r.Status = model.ReservationStatusCancelled
	r.CancelledAt = &now
	if err := s.store.UpdateReservation(ctx, r); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("cancel reservation %s: %w", id, err)
	}
	return r, nil
}

// Reschedule moves the reservation to a new date/time and mails the
// guest an echo of the new slot.
func (s *Service) Reschedule(ctx context.Context, id uuid.UUID, newDate, newTime string) (*model.Reservation, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "Service.Reschedule")
	defer span.End()

	r, err := s.store.GetReservationByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	r.Date = newDate
	r.Time = newTime
	if err := s.store.UpdateReservation(ctx, r); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("reschedule reservation %s: %w", id, err)
	}
	if err := s.mailer.SendReschedule(ctx, r); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("reschedule mail for %s: %w", id, err)
	}
	return r, nil
}

// SendReminder mails the deep link and marks the reservation reminded,
// independent of its status.
func (s *Service) SendReminder(ctx context.Context, id uuid.UUID) (*model.Reservation, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "Service.SendReminder")
	defer span.End()

	r, err := s.store.GetReservationByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if err := s.mailer.SendReminder(ctx, r); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("reminder mail for %s: %w", id, err)
	}
	now := s.now()
	r.ReminderSent = true
	r.ReminderSentAt = &now
	if err := s.store.UpdateReservation(ctx, r); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("mark reminder sent for %s: %w", id, err)
	}
	return r, nil
}

// Pending returns all reservations still awaiting a decision.
func (s *Service) Pending(ctx context.Context) ([]*model.Reservation, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "Service.Pending")
	defer span.End()

	return s.store.ListReservationsByStatus(ctx, model.ReservationStatusPending)
}

// List returns every reservation for the admin overview.
func (s *Service) List(ctx context.Context) ([]*model.Reservation, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "Service.List")
	defer span.End()

	return s.store.ListReservations(ctx)
}
