// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package server

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

const (
	sessionCookie   = "admin_session"
	sessionLifetime = 24 * time.Hour
)

// signSession builds an "expiryUnix.mac" token. The mac covers only the
// expiry, there is no per-user payload because the admin area has a
// single shared credential.
func signSession(secret string, expiry time.Time) string {
	exp := strconv.FormatInt(expiry.Unix(), 10)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(exp))
	return fmt.Sprintf("%s.%s", exp, hex.EncodeToString(mac.Sum(nil)))
}

func verifySession(secret, token string, now time.Time) bool {
	exp, macHex, ok := strings.Cut(token, ".")
	if !ok {
		return false
	}
	unix, err := strconv.ParseInt(exp, 10, 64)
	if err != nil || now.After(time.Unix(unix, 0)) {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(exp))
	want, err := hex.DecodeString(macHex)
	if err != nil {
		return false
	}
	return hmac.Equal(mac.Sum(nil), want)
}

// requireSession gates the admin area. A request without a valid cookie
// is redirected to the login page with the original path and query
// preserved in callbackUrl.
func (s *Server) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		var span trace.Span
		_, span = tracer.Start(c.Request.Context(), "Middleware.requireSession")
		defer span.End()

		token, err := c.Cookie(sessionCookie)
		if err == nil && verifySession(s.sessionSecret, token, time.Now()) {
			c.Next()
			return
		}
		span.AddEvent("session rejected")
		target := c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			target += "?" + q
		}
		c.Redirect(http.StatusSeeOther, "/login?callbackUrl="+url.QueryEscape(target))
		c.Abort()
	}
}

func (s *Server) renderLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"CallbackURL": c.Query("callbackUrl"),
	})
}

func (s *Server) handleLogin(c *gin.Context) {
	callback := c.PostForm("callbackUrl")
	if !strings.HasPrefix(callback, "/") || strings.HasPrefix(callback, "//") {
		callback = "/admin/api/reservations"
	}

	if c.PostForm("password") != s.adminPassword {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"CallbackURL": callback,
			"Error":       "incorrect password",
		})
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		sessionCookie,
		signSession(s.sessionSecret, time.Now().Add(sessionLifetime)),
		int(sessionLifetime/time.Second),
		"/",
		"",
		true,
		true,
	)
	c.Redirect(http.StatusSeeOther, callback)
}
