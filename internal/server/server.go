// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package server

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jaythomasv29/tablego-sub001/internal/catering"
	"github.com/jaythomasv29/tablego-sub001/internal/config"
	"github.com/jaythomasv29/tablego-sub001/internal/content"
	"github.com/jaythomasv29/tablego-sub001/internal/notify"
	"github.com/jaythomasv29/tablego-sub001/internal/reservation"
)

//go:embed templates/login.html
var templateFS embed.FS

func NewServer(
	serviceName string,
	cfg *config.Config,
	reservations *reservation.Service,
	caterings *catering.Service,
	contents *content.Service,
	push *notify.PushDispatcher,
) *Server {
	return &Server{
		logger:         slog.Default().WithGroup("http"),
		serviceName:    serviceName,
		adminPassword:  cfg.AdminPassword,
		sessionSecret:  cfg.SessionSecret,
		vapidPublicKey: cfg.VAPID.PublicKey,
		reservations:   reservations,
		catering:       caterings,
		content:        contents,
		push:           push,
	}
}

type Server struct {
	serviceName    string
	logger         *slog.Logger
	adminPassword  string
	sessionSecret  string
	vapidPublicKey string
	reservations   *reservation.Service
	catering       *catering.Service
	content        *content.Service
	push           *notify.PushDispatcher
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	mux := gin.New()
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	mux.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/login.html")))

	middlewares := []gin.HandlerFunc{
		sloggin.NewWithConfig(s.logger,
			sloggin.Config{
				DefaultLevel:     slog.LevelInfo,
				ClientErrorLevel: slog.LevelWarn,
				ServerErrorLevel: slog.LevelError,
			},
		),
		gin.Recovery(), otelgin.Middleware(s.serviceName), slogAddTraceAttributes,
	}
	mux.Use(middlewares...)

	mux.GET("/login", s.renderLogin)
	mux.POST("/login", s.handleLogin)

	api := mux.Group("/api")
	api.POST("/send-confirmation", s.handleSendConfirmation)
	api.POST("/send-cancellation", s.handleSendCancellation)
	api.POST("/send-reschedule", s.handleSendReschedule)
	api.POST("/send-reminder", s.handleSendReminder)
	api.POST("/catering", s.handleCatering)
	api.POST("/contact", s.handleContact)
	api.POST("/push", s.handlePush)
	api.POST("/subscribe", s.handleSubscribe)
	api.GET("/vapid-public-key", s.handleVAPIDPublicKey)
	api.GET("/check-reservations", s.handleCheckReservations)
	api.GET("/analytics", s.handleVisitCounts)
	api.POST("/analytics", s.handleRecordVisit)
	api.GET("/banner", s.handleBanner)
	api.GET("/menu", s.handleMenu)

	adminArea := mux.Group("/admin", s.requireSession())
	adminArea.GET("/api/reservations", s.handleAdminReservations)
	adminArea.POST("/api/reservations/:id/confirm", s.handleAdminConfirm)
	adminArea.POST("/api/reservations/:id/cancel", s.handleAdminCancel)
	adminArea.GET("/api/catering", s.handleAdminCatering)
	adminArea.GET("/api/messages", s.handleAdminMessages)
	adminArea.POST("/api/messages/:id/read", s.handleAdminMessageRead)
	adminArea.GET("/api/banner", s.handleBanner)
	adminArea.POST("/api/banner", s.handleSetBanner)
	adminArea.GET("/api/settings", s.handleSettings)
	adminArea.POST("/api/settings", s.handleSetSettings)
	adminArea.POST("/api/menu/seed", s.handleMenuSeed)
	adminArea.GET("/api/employees", s.handleEmployees)
	adminArea.POST("/api/employees", s.handleCreateEmployee)

	mux.NoRoute(notFound)

	mux.ServeHTTP(w, r)
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "not found"})
}

func slogAddTraceAttributes(c *gin.Context) {
	sloggin.AddCustomAttributes(c,
		slog.String("trace-id", trace.SpanFromContext(c.Request.Context()).SpanContext().TraceID().String()),
	)
	sloggin.AddCustomAttributes(c,
		slog.String("span-id", trace.SpanFromContext(c.Request.Context()).SpanContext().SpanID().String()),
	)
	c.Next()
}
