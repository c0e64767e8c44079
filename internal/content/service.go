// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jeremywohl/flatten/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jaythomasv29/tablego-sub001/internal/db"
	"github.com/jaythomasv29/tablego-sub001/internal/model"
)

var tracer = otel.GetTracerProvider().Tracer("github.com/jaythomasv29/tablego-sub001/internal/content")

func NewService(
	settings db.SettingsStore,
	menu db.MenuStore,
	messages db.MessageStore,
	employees db.EmployeeStore,
	analytics db.AnalyticsStore,
) *Service {
	return &Service{
		settings:  settings,
		menu:      menu,
		messages:  messages,
		employees: employees,
		analytics: analytics,
		now:       time.Now,
		logger:    slog.Default().WithGroup("content"),
	}
}

// Service bundles the simple key-value style content operations that
// share the store adapter but carry no transition logic.
type Service struct {
	settings  db.SettingsStore
	menu      db.MenuStore
	messages  db.MessageStore
	employees db.EmployeeStore
	analytics db.AnalyticsStore
	now       func() time.Time
	logger    *slog.Logger
}

func (s *Service) Banner(ctx context.Context) (*model.Banner, error) {
	return s.settings.GetBanner(ctx)
}

func (s *Service) SetBanner(ctx context.Context, banner *model.Banner) error {
	return s.settings.SetBanner(ctx, banner)
}

func (s *Service) Settings(ctx context.Context) (*model.Settings, error) {
	return s.settings.GetSettings(ctx)
}

// ErrInvalidTimezone rejects settings whose timezone is not a known
// IANA location name.
var ErrInvalidTimezone = errors.New("invalid timezone")

func (s *Service) SetSettings(ctx context.Context, settings *model.Settings) error {
	if _, err := time.LoadLocation(settings.Timezone); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimezone, settings.Timezone)
	}
	return s.settings.SetSettings(ctx, settings)
}

// SeedMenu inserts every item whose name is not already present.
// Running it twice with the same list is a no-op the second time.
func (s *Service) SeedMenu(ctx context.Context, items []model.MenuItem) (int, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "Service.SeedMenu")
	defer span.End()

	existing, err := s.menu.ListMenuItems(ctx)
	if err != nil {
		span.RecordError(err)
		return 0, fmt.Errorf("list menu items: %w", err)
	}
	known := make(map[string]bool, len(existing))
	for _, item := range existing {
		known[item.Name] = true
	}

	inserted := 0
	for i := range items {
		if known[items[i].Name] {
			continue
		}
		if err := s.menu.CreateMenuItem(ctx, &items[i]); err != nil {
			span.RecordError(err)
			return inserted, fmt.Errorf("seed %q: %w", items[i].Name, err)
		}
		known[items[i].Name] = true
		inserted++
	}
	span.SetAttributes(attribute.Int("inserted", inserted))
	return inserted, nil
}

func (s *Service) MenuItems(ctx context.Context) ([]*model.MenuItem, error) {
	return s.menu.ListMenuItems(ctx)
}

func (s *Service) SubmitMessage(ctx context.Context, m *model.Message) (uuid.UUID, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "Service.SubmitMessage")
	defer span.End()

	m.Status = model.MessageStatusUnread
	m.CreatedAt = s.now()
	return s.messages.CreateMessage(ctx, m)
}

func (s *Service) MarkMessageRead(ctx context.Context, id uuid.UUID) error {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "Service.MarkMessageRead")
	defer span.End()

	m, err := s.messages.GetMessageByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return err
	}
	m.Status = model.MessageStatusRead
	return s.messages.UpdateMessage(ctx, m)
}

func (s *Service) Messages(ctx context.Context) ([]*model.Message, error) {
	return s.messages.ListMessages(ctx)
}

func (s *Service) CreateEmployee(ctx context.Context, e *model.Employee) (uuid.UUID, error) {
	e.CreatedAt = s.now()
	return s.employees.CreateEmployee(ctx, e)
}

func (s *Service) Employees(ctx context.Context) ([]*model.Employee, error) {
	return s.employees.ListEmployees(ctx)
}

// RecordVisit bumps the page counter for today.
func (s *Service) RecordVisit(ctx context.Context, page string) error {
	return s.analytics.RecordVisit(ctx, page, s.now().Format("2006-01-02"))
}

// VisitCounts returns the analytics counters flattened to "page.date"
// keys for the admin dashboard.
func (s *Service) VisitCounts(ctx context.Context) (map[string]int, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "Service.VisitCounts")
	defer span.End()

	nested, err := s.analytics.VisitCounts(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("read visit counts: %w", err)
	}
	out, err := json.Marshal(nested)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	flattened, err := flatten.FlattenString(string(out), "", flatten.DotStyle)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("flatten visit counts: %w", err)
	}
	result := make(map[string]int)
	if err := json.Unmarshal([]byte(flattened), &result); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return result, nil
}
