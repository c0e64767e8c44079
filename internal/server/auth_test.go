// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package server

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_SignAndVerify(t *testing.T) {
	now := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	token := signSession("secret", now.Add(time.Hour))

	assert.True(t, verifySession("secret", token, now))
	assert.False(t, verifySession("secret", token, now.Add(2*time.Hour)), "expired token")
	assert.False(t, verifySession("other", token, now), "wrong secret")
	assert.False(t, verifySession("secret", token+"0", now), "tampered mac")
	assert.False(t, verifySession("secret", "garbage", now))
}

func TestAdminArea_RedirectsToLoginWithCallback(t *testing.T) {
	h := newTestHarness(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/api/reservations?status=pending", nil)
	rec := httptest.NewRecorder()
	h.server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t,
		"/login?callbackUrl="+url.QueryEscape("/admin/api/reservations?status=pending"),
		rec.Header().Get("Location"))
}

func TestLogin_WrongPassword(t *testing.T) {
	h := newTestHarness(t)

	form := url.Values{"password": {"nope"}, "callbackUrl": {"/admin/api/reservations"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestLogin_SetsCookieAndOpensAdminArea(t *testing.T) {
	h := newTestHarness(t)

	form := url.Values{"password": {testAdminPassword}, "callbackUrl": {"/admin/api/reservations"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/admin/api/reservations", rec.Header().Get("Location"))

	var session *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == sessionCookie {
			session = cookie
		}
	}
	require.NotNil(t, session, "login must set the session cookie")
	assert.True(t, session.HttpOnly)
	assert.True(t, session.Secure)

	req = httptest.NewRequest(http.MethodGet, "/admin/api/reservations", nil)
	req.AddCookie(session)
	rec = httptest.NewRecorder()
	h.server.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestLogin_RejectsExternalCallback(t *testing.T) {
	h := newTestHarness(t)

	form := url.Values{"password": {testAdminPassword}, "callbackUrl": {"https://evil.example"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/admin/api/reservations", rec.Header().Get("Location"))
}
