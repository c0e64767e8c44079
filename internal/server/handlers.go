// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jaythomasv29/tablego-sub001/internal/content"
	"github.com/jaythomasv29/tablego-sub001/internal/db"
	"github.com/jaythomasv29/tablego-sub001/internal/model"
	"github.com/jaythomasv29/tablego-sub001/internal/parser/form"
)

// fail converts any downstream error into the generic failure envelope.
// Store, mail, and push errors all land here; details go to the log,
// never to the client.
func (s *Server) fail(c *gin.Context, err error) {
	if errors.Is(err, db.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "not found"})
		return
	}
	s.logger.ErrorContext(c.Request.Context(), "request failed",
		"path", c.Request.URL.Path, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "something went wrong"})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
}

func paramID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

func formID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.PostForm("id"))
	if err != nil {
		badRequest(c, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

func (s *Server) handleSendConfirmation(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		badRequest(c, "malformed form")
		return
	}
	var r model.Reservation
	if err := form.Unmarshal(c.Request.PostForm, &r); err != nil {
		badRequest(c, "malformed form")
		return
	}
	if r.Name == "" || r.Email == "" || r.Date == "" || r.Time == "" {
		badRequest(c, "name, email, date and time are required")
		return
	}
	if r.Guests < 1 {
		badRequest(c, "party size must be at least one")
		return
	}

	result, err := s.reservations.Create(c.Request.Context(), &r)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reservation": result})
}

func (s *Server) handleSendCancellation(c *gin.Context) {
	id, ok := formID(c)
	if !ok {
		return
	}
	r, err := s.reservations.Cancel(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reservation": r})
}

func (s *Server) handleSendReschedule(c *gin.Context) {
	id, ok := formID(c)
	if !ok {
		return
	}
	newDate := c.PostForm("date")
	newTime := c.PostForm("time")
	if newDate == "" || newTime == "" {
		badRequest(c, "date and time are required")
		return
	}
	r, err := s.reservations.Reschedule(c.Request.Context(), id, newDate, newTime)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reservation": r})
}

func (s *Server) handleSendReminder(c *gin.Context) {
	id, ok := formID(c)
	if !ok {
		return
	}
	r, err := s.reservations.SendReminder(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reservation": r})
}

func (s *Server) handleCatering(c *gin.Context) {
	var in model.CateringInquiry
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "malformed body")
		return
	}
	if in.Name == "" || in.Email == "" || in.EventDate == "" {
		badRequest(c, "name, email and event date are required")
		return
	}
	id, err := s.catering.Submit(c.Request.Context(), &in)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

func (s *Server) handleContact(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		badRequest(c, "malformed form")
		return
	}
	var m model.Message
	if err := form.Unmarshal(c.Request.PostForm, &m); err != nil {
		badRequest(c, "malformed form")
		return
	}
	if m.Email == "" || m.Body == "" {
		badRequest(c, "email and message body are required")
		return
	}
	id, err := s.content.SubmitMessage(c.Request.Context(), &m)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

func (s *Server) handlePush(c *gin.Context) {
	var body struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Title == "" {
		badRequest(c, "title is required")
		return
	}
	result, err := s.push.Send(c.Request.Context(), body.Title, body.Body)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": result})
}

func (s *Server) handleSubscribe(c *gin.Context) {
	var sub model.PushSubscription
	if err := c.ShouldBindJSON(&sub); err != nil {
		badRequest(c, "malformed body")
		return
	}
	if sub.Endpoint == "" {
		badRequest(c, "endpoint is required")
		return
	}
	if err := s.push.Subscribe(c.Request.Context(), &sub); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleVAPIDPublicKey(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "publicKey": s.vapidPublicKey})
}

func (s *Server) handleCheckReservations(c *gin.Context) {
	pending, err := s.reservations.Pending(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "pending": len(pending)})
}

func (s *Server) handleVisitCounts(c *gin.Context) {
	counts, err := s.content.VisitCounts(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "visits": counts})
}

func (s *Server) handleRecordVisit(c *gin.Context) {
	var body struct {
		Page string `json:"page"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Page == "" {
		badRequest(c, "page is required")
		return
	}
	if err := s.content.RecordVisit(c.Request.Context(), body.Page); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleBanner(c *gin.Context) {
	banner, err := s.content.Banner(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "banner": banner})
}

func (s *Server) handleMenu(c *gin.Context) {
	items, err := s.content.MenuItems(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"items":      items,
		"categories": model.MenuCategoryOrder,
	})
}

func (s *Server) handleAdminReservations(c *gin.Context) {
	reservations, err := s.reservations.List(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reservations": reservations})
}

func (s *Server) handleAdminConfirm(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	r, err := s.reservations.Confirm(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reservation": r})
}

func (s *Server) handleAdminCancel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	r, err := s.reservations.AdminCancel(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reservation": r})
}

func (s *Server) handleAdminCatering(c *gin.Context) {
	inquiries, err := s.catering.List(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "inquiries": inquiries})
}

func (s *Server) handleAdminMessages(c *gin.Context) {
	messages, err := s.content.Messages(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "messages": messages})
}

func (s *Server) handleAdminMessageRead(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := s.content.MarkMessageRead(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleSetBanner(c *gin.Context) {
	var banner model.Banner
	if err := c.ShouldBindJSON(&banner); err != nil {
		badRequest(c, "malformed body")
		return
	}
	if err := s.content.SetBanner(c.Request.Context(), &banner); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "banner": banner})
}

func (s *Server) handleSettings(c *gin.Context) {
	settings, err := s.content.Settings(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "settings": settings})
}

func (s *Server) handleSetSettings(c *gin.Context) {
	var settings model.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		badRequest(c, "malformed body")
		return
	}
	if err := s.content.SetSettings(c.Request.Context(), &settings); err != nil {
		if errors.Is(err, content.ErrInvalidTimezone) {
			badRequest(c, "invalid timezone")
			return
		}
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "settings": settings})
}

func (s *Server) handleMenuSeed(c *gin.Context) {
	var body struct {
		Items []model.MenuItem `json:"items"`
	}
	// An empty body seeds the built-in menu.
	if err := c.ShouldBindJSON(&body); err != nil && c.Request.ContentLength > 0 {
		badRequest(c, "malformed body")
		return
	}
	items := body.Items
	if len(items) == 0 {
		items = content.DefaultMenu()
	}
	inserted, err := s.content.SeedMenu(c.Request.Context(), items)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "inserted": inserted})
}

func (s *Server) handleEmployees(c *gin.Context) {
	employees, err := s.content.Employees(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "employees": employees})
}

func (s *Server) handleCreateEmployee(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		badRequest(c, "malformed form")
		return
	}
	var e model.Employee
	if err := form.Unmarshal(c.Request.PostForm, &e); err != nil {
		badRequest(c, "malformed form")
		return
	}
	if e.Name == "" {
		badRequest(c, "name is required")
		return
	}
	id, err := s.content.CreateEmployee(c.Request.Context(), &e)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}
