// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package catering

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jaythomasv29/tablego-sub001/internal/db"
	"github.com/jaythomasv29/tablego-sub001/internal/model"
)

var tracer = otel.GetTracerProvider().Tracer("github.com/jaythomasv29/tablego-sub001/internal/catering")

type Mailer interface {
	SendCateringConfirmation(context.Context, *model.CateringInquiry) error
}

func NewService(store db.CateringStore, mailer Mailer) *Service {
	return &Service{
		store:  store,
		mailer: mailer,
		now:    time.Now,
		logger: slog.Default().WithGroup("catering"),
	}
}

// Service handles catering inquiries: a single create-and-notify step,
// no further transitions.
type Service struct {
	store  db.CateringStore
	mailer Mailer
	now    func() time.Time
	logger *slog.Logger
}

func (s *Service) Submit(ctx context.Context, in *model.CateringInquiry) (uuid.UUID, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "Service.Submit")
	defer span.End()

	in.Status = model.ReservationStatusPending
	in.CreatedAt = s.now()

	id, err := s.store.CreateInquiry(ctx, in)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return uuid.Nil, fmt.Errorf("create catering inquiry: %w", err)
	}

	if err := s.mailer.SendCateringConfirmation(ctx, in); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return uuid.Nil, fmt.Errorf("catering mail for %s: %w", id, err)
	}
	return id, nil
}

func (s *Service) List(ctx context.Context) ([]*model.CateringInquiry, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "Service.List")
	defer span.End()

	return s.store.ListInquiries(ctx)
}
