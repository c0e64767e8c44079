// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/jaythomasv29/tablego-sub001/internal/catering"
	"github.com/jaythomasv29/tablego-sub001/internal/config"
	"github.com/jaythomasv29/tablego-sub001/internal/content"
	"github.com/jaythomasv29/tablego-sub001/internal/db"
	"github.com/jaythomasv29/tablego-sub001/internal/db/kvdb"
	"github.com/jaythomasv29/tablego-sub001/internal/model"
	"github.com/jaythomasv29/tablego-sub001/internal/notify"
	"github.com/jaythomasv29/tablego-sub001/internal/reservation"
)

const testAdminPassword = "letmein"

type fakeMailer struct {
	confirmations int
	cancellations int
	reschedules   int
	reminders     int
	caterings     int
}

func (f *fakeMailer) SendReservationConfirmation(context.Context, *model.Reservation) error {
	f.confirmations++
	return nil
}

func (f *fakeMailer) SendCancellation(context.Context, *model.Reservation) error {
	f.cancellations++
	return nil
}

func (f *fakeMailer) SendReschedule(context.Context, *model.Reservation) error {
	f.reschedules++
	return nil
}

func (f *fakeMailer) SendReminder(context.Context, *model.Reservation) error {
	f.reminders++
	return nil
}

func (f *fakeMailer) SendCateringConfirmation(context.Context, *model.CateringInquiry) error {
	f.caterings++
	return nil
}

type harness struct {
	server       *Server
	mailer       *fakeMailer
	reservations db.ReservationStore
}

func newTestHarness(t *testing.T) *harness {
	t.Helper()

	bdb, err := bolt.Open(filepath.Join(t.TempDir(), "test.db"), 0o600, nil)
	require.NoError(t, err)
	t.Cleanup(func() { bdb.Close() })

	rStore, err := kvdb.NewReservationStore(bdb)
	require.NoError(t, err)
	cStore, err := kvdb.NewCateringStore(bdb)
	require.NoError(t, err)
	mStore, err := kvdb.NewMessageStore(bdb)
	require.NoError(t, err)
	subStore, err := kvdb.NewSubscriptionStore(bdb)
	require.NoError(t, err)
	nStore, err := kvdb.NewNotificationStore(bdb)
	require.NoError(t, err)
	sStore, err := kvdb.NewSettingsStore(bdb)
	require.NoError(t, err)
	menuStore, err := kvdb.NewMenuStore(bdb)
	require.NoError(t, err)
	aStore, err := kvdb.NewAnalyticsStore(bdb)
	require.NoError(t, err)
	eStore, err := kvdb.NewEmployeeStore(bdb)
	require.NoError(t, err)

	mailer := &fakeMailer{}
	cfg := &config.Config{
		AdminPassword: testAdminPassword,
		SessionSecret: "test-secret",
	}
	cfg.VAPID.PublicKey = "test-public-key"

	srv := NewServer(
		"tablego-test",
		cfg,
		reservation.NewService(rStore, mailer),
		catering.NewService(cStore, mailer),
		content.NewService(sStore, menuStore, mStore, eStore, aStore),
		notify.NewPushDispatcher(subStore, nStore, cfg.VAPID),
	)
	return &harness{server: srv, mailer: mailer, reservations: rStore}
}

func (h *harness) loginCookie(t *testing.T) *http.Cookie {
	t.Helper()

	form := url.Values{"password": {testAdminPassword}, "callbackUrl": {"/admin/api/reservations"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.server.ServeHTTP(rec, req)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == sessionCookie {
			return cookie
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func postForm(h *harness, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.server.ServeHTTP(rec, req)
	return rec
}

func postJSON(h *harness, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	h.server.ServeHTTP(rec, req)
	return rec
}

func TestBookingFlow(t *testing.T) {
	h := newTestHarness(t)

	rec := postForm(h, "/api/send-confirmation", url.Values{
		"name":     {"Jane Doe"},
		"email":    {"jane@example.com"},
		"phone":    {"555-0100"},
		"guests":   {"2"},
		"date":     {"2025-04-01"},
		"time":     {"18:30"},
		"comments": {"window seat please"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Success     bool `json:"success"`
		Reservation struct {
			ID     string `json:"id"`
			Date   string `json:"date"`
			Guests int    `json:"guests"`
		} `json:"reservation"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Reservation.Guests)
	assert.Equal(t, "Tuesday, April 1, 2025", resp.Reservation.Date)
	assert.Equal(t, 1, h.mailer.confirmations)

	stored, err := h.reservations.ListReservations(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, model.ReservationStatusConfirmed, stored[0].Status)
	assert.Equal(t, "Jane Doe", stored[0].Name)
}

func TestBookingFlow_RejectsZeroGuests(t *testing.T) {
	h := newTestHarness(t)

	rec := postForm(h, "/api/send-confirmation", url.Values{
		"name":   {"Jane Doe"},
		"email":  {"jane@example.com"},
		"guests": {"0"},
		"date":   {"2025-04-01"},
		"time":   {"18:30"},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, h.mailer.confirmations)
}

func TestCancellation_UnknownReservation(t *testing.T) {
	h := newTestHarness(t)

	rec := postForm(h, "/api/send-cancellation", url.Values{
		"id": {"6a5e0f31-9f2c-4cd8-a9ce-000000000000"},
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminCancel_SendsNoEmail(t *testing.T) {
	h := newTestHarness(t)
	cookie := h.loginCookie(t)

	postForm(h, "/api/send-confirmation", url.Values{
		"name":   {"Jane Doe"},
		"email":  {"jane@example.com"},
		"guests": {"2"},
		"date":   {"2025-04-01"},
		"time":   {"18:30"},
	})
	stored, err := h.reservations.ListReservations(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)

	req := httptest.NewRequest(http.MethodPost,
		"/admin/api/reservations/"+stored[0].ID.String()+"/cancel", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	h.server.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	updated, err := h.reservations.GetReservationByID(context.Background(), stored[0].ID)
	require.NoError(t, err)
	assert.Equal(t, model.ReservationStatusCancelled, updated.Status)
	assert.Equal(t, 0, h.mailer.cancellations)
}

func TestContactAndAdminMessages(t *testing.T) {
	h := newTestHarness(t)
	cookie := h.loginCookie(t)

	rec := postForm(h, "/api/contact", url.Values{
		"name":  {"Sam"},
		"email": {"sam@example.com"},
		"body":  {"Do you have vegan options?"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/admin/api/messages", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	h.server.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success  bool             `json:"success"`
		Messages []*model.Message `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, model.MessageStatusUnread, resp.Messages[0].Status)

	req = httptest.NewRequest(http.MethodPost,
		"/admin/api/messages/"+resp.Messages[0].ID.String()+"/read", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	h.server.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestMenuSeed_DefaultsAndIdempotence(t *testing.T) {
	h := newTestHarness(t)
	cookie := h.loginCookie(t)

	seed := func() int {
		req := httptest.NewRequest(http.MethodPost, "/admin/api/menu/seed", nil)
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		h.server.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Inserted int `json:"inserted"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp.Inserted
	}

	first := seed()
	assert.Equal(t, len(content.DefaultMenu()), first)
	assert.Equal(t, 0, seed(), "second run inserts nothing")

	rec := httptest.NewRecorder()
	h.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/menu", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var menu struct {
		Items []*model.MenuItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &menu))
	assert.Len(t, menu.Items, len(content.DefaultMenu()))
}

func TestBannerRoundTrip(t *testing.T) {
	h := newTestHarness(t)
	cookie := h.loginCookie(t)

	rec := postJSON(h, "/admin/api/banner",
		model.Banner{Text: "Closed July 4th", Enabled: true}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/banner", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Banner model.Banner `json:"banner"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Closed July 4th", resp.Banner.Text)
	assert.True(t, resp.Banner.Enabled)
}

func TestSetSettings_InvalidTimezone(t *testing.T) {
	h := newTestHarness(t)
	cookie := h.loginCookie(t)

	rec := postJSON(h, "/admin/api/settings",
		model.Settings{Timezone: "Mars/Olympus_Mons"}, cookie)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCateringInquiry(t *testing.T) {
	h := newTestHarness(t)

	rec := postJSON(h, "/api/catering", model.CateringInquiry{
		Name:      "Acme Corp",
		Email:     "events@acme.example",
		EventDate: "2025-06-15",
		Guests:    40,
		Dishes:    []model.Dish{{Name: "Pad Thai"}},
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 1, h.mailer.caterings)
}

func TestVAPIDPublicKey(t *testing.T) {
	h := newTestHarness(t)

	rec := httptest.NewRecorder()
	h.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/vapid-public-key", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test-public-key")
}

func TestAnalyticsRoundTrip(t *testing.T) {
	h := newTestHarness(t)

	rec := postJSON(h, "/api/analytics", map[string]string{"page": "home"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = postJSON(h, "/api/analytics", map[string]string{"page": "home"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/analytics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Visits map[string]int `json:"visits"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	total := 0
	for key, n := range resp.Visits {
		if strings.HasPrefix(key, "home.") {
			total += n
		}
	}
	assert.Equal(t, 2, total)
}
