// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package notify

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gopkg.in/gomail.v2"

	"github.com/jaythomasv29/tablego-sub001/internal/config"
	"github.com/jaythomasv29/tablego-sub001/internal/model"
)

//go:embed templates/*.html
var templates embed.FS

// Sender is the SMTP transport; *gomail.Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

func NewMailer(cfg config.SMTP, restaurantEmail, baseURL string) *Mailer {
	return &Mailer{
		sender:     gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:       cfg.From,
		restaurant: restaurantEmail,
		baseURL:    baseURL,
		tmpl:       template.Must(template.ParseFS(templates, "templates/*.html")),
		logger:     slog.Default().WithGroup("mail"),
	}
}

type Mailer struct {
	sender     Sender
	from       string
	restaurant string
	baseURL    string
	tmpl       *template.Template
	logger     *slog.Logger
}

type reservationMail struct {
	Name      string
	DateLong  string
	TimeClock string
	Guests    int
	Comments  string
	ManageURL string
}

func (m *Mailer) reservationData(r *model.Reservation) reservationMail {
	return reservationMail{
		Name:      r.Name,
		DateLong:  FormatLongDate(r.Date),
		TimeClock: FormatClock(r.Time),
		Guests:    r.Guests,
		Comments:  r.Comments,
		ManageURL: fmt.Sprintf("%s/reservation/%s", m.baseURL, r.ID),
	}
}

// SendReservationConfirmation mails the guest and the restaurant inbox.
func (m *Mailer) SendReservationConfirmation(ctx context.Context, r *model.Reservation) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "Mailer.SendReservationConfirmation")
	defer span.End()

	body, err := m.render("confirmation.html", m.reservationData(r))
	if err != nil {
		span.RecordError(err)
		return err
	}

	guestMsg := m.message(r.Email, "Your reservation is confirmed", body)
	houseMsg := m.message(m.restaurant, fmt.Sprintf("New reservation: %s, party of %d", r.Name, r.Guests), body)
	if err := m.sender.DialAndSend(guestMsg, houseMsg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("send confirmation mail: %w", err)
	}
	return nil
}

func (m *Mailer) SendCancellation(ctx context.Context, r *model.Reservation) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "Mailer.SendCancellation")
	defer span.End()

	body, err := m.render("cancellation.html", m.reservationData(r))
	if err != nil {
		span.RecordError(err)
		return err
	}
	if err := m.sender.DialAndSend(m.message(r.Email, "Your reservation has been cancelled", body)); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("send cancellation mail: %w", err)
	}
	return nil
}

func (m *Mailer) SendReschedule(ctx context.Context, r *model.Reservation) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "Mailer.SendReschedule")
	defer span.End()

	body, err := m.render("reschedule.html", m.reservationData(r))
	if err != nil {
		span.RecordError(err)
		return err
	}
	if err := m.sender.DialAndSend(m.message(r.Email, "Your reservation has been rescheduled", body)); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("send reschedule mail: %w", err)
	}
	return nil
}

// SendReminder mails the guest a deep link to the reservation's
// self-service management page.
func (m *Mailer) SendReminder(ctx context.Context, r *model.Reservation) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "Mailer.SendReminder")
	defer span.End()

	body, err := m.render("reminder.html", m.reservationData(r))
	if err != nil {
		span.RecordError(err)
		return err
	}
	if err := m.sender.DialAndSend(m.message(r.Email, "Reminder: your upcoming reservation", body)); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("send reminder mail: %w", err)
	}
	return nil
}

// SendCateringConfirmation mails the inquirer and the restaurant inbox
// with one shared template. The restaurant copy carries Reply-To so
// staff can answer the inquirer directly.
func (m *Mailer) SendCateringConfirmation(ctx context.Context, in *model.CateringInquiry) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "Mailer.SendCateringConfirmation")
	defer span.End()

	body, err := m.render("catering.html", struct {
		Name      string
		DateLong  string
		TimeClock string
		Guests    int
		Venue     string
		Budget    string
		Dishes    []model.Dish
	}{
		Name:      in.Name,
		DateLong:  FormatLongDate(in.EventDate),
		TimeClock: FormatClock(in.EventTime),
		Guests:    in.Guests,
		Venue:     in.Venue,
		Budget:    in.Budget,
		Dishes:    in.Dishes,
	})
	if err != nil {
		span.RecordError(err)
		return err
	}

	inquirerMsg := m.message(in.Email, "We received your catering inquiry", body)
	houseMsg := m.message(m.restaurant, fmt.Sprintf("New catering inquiry: %s, %d guests", in.Name, in.Guests), body)
	houseMsg.SetHeader("Reply-To", in.Email)
	if err := m.sender.DialAndSend(inquirerMsg, houseMsg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("send catering mail: %w", err)
	}
	return nil
}

func (m *Mailer) message(to, subject, htmlBody string) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	return msg
}

func (m *Mailer) render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := m.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
