// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package content

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jaythomasv29/tablego-sub001/internal/db"
	"github.com/jaythomasv29/tablego-sub001/internal/model"
)

type mockMenuStore struct {
	items map[string]*model.MenuItem
}

func newMockMenuStore() *mockMenuStore {
	return &mockMenuStore{items: make(map[string]*model.MenuItem)}
}

func (m *mockMenuStore) CreateMenuItem(ctx context.Context, item *model.MenuItem) error {
	cp := *item
	m.items[item.Name] = &cp
	return nil
}

func (m *mockMenuStore) ListMenuItems(ctx context.Context) ([]*model.MenuItem, error) {
	out := make([]*model.MenuItem, 0, len(m.items))
	for _, item := range m.items {
		out = append(out, item)
	}
	return out, nil
}

type mockMessageStore struct {
	docs map[uuid.UUID]*model.Message
}

func newMockMessageStore() *mockMessageStore {
	return &mockMessageStore{docs: make(map[uuid.UUID]*model.Message)}
}

func (m *mockMessageStore) CreateMessage(ctx context.Context, msg *model.Message) (uuid.UUID, error) {
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	cp := *msg
	m.docs[msg.ID] = &cp
	return msg.ID, nil
}

func (m *mockMessageStore) GetMessageByID(ctx context.Context, id uuid.UUID) (*model.Message, error) {
	msg, ok := m.docs[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	cp := *msg
	return &cp, nil
}

func (m *mockMessageStore) UpdateMessage(ctx context.Context, msg *model.Message) error {
	if _, ok := m.docs[msg.ID]; !ok {
		return db.ErrNotFound
	}
	cp := *msg
	m.docs[msg.ID] = &cp
	return nil
}

func (m *mockMessageStore) ListMessages(ctx context.Context) ([]*model.Message, error) {
	out := make([]*model.Message, 0, len(m.docs))
	for _, msg := range m.docs {
		out = append(out, msg)
	}
	return out, nil
}

type mockAnalyticsStore struct {
	counts map[string]map[string]int
}

func newMockAnalyticsStore() *mockAnalyticsStore {
	return &mockAnalyticsStore{counts: make(map[string]map[string]int)}
}

func (m *mockAnalyticsStore) RecordVisit(ctx context.Context, page, date string) error {
	if m.counts[page] == nil {
		m.counts[page] = make(map[string]int)
	}
	m.counts[page][date]++
	return nil
}

func (m *mockAnalyticsStore) VisitCounts(ctx context.Context) (map[string]map[string]int, error) {
	return m.counts, nil
}

func newTestContentService(menu *mockMenuStore, messages *mockMessageStore, analytics *mockAnalyticsStore) *Service {
	return &Service{
		menu:      menu,
		messages:  messages,
		analytics: analytics,
		now:       func() time.Time { return time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC) },
		logger:    slog.Default(),
	}
}

func TestService_SeedMenu_Idempotent(t *testing.T) {
	menu := newMockMenuStore()
	svc := newTestContentService(menu, newMockMessageStore(), newMockAnalyticsStore())

	items := []model.MenuItem{
		{Name: "Spring Rolls", Category: model.MenuCategoryAppetizer, Price: 7},
		{Name: "Pad Thai", Category: model.MenuCategoryNoodle, Price: 14.5},
		{Name: "Mango Sticky Rice", Category: model.MenuCategoryDessert, Price: 8},
	}

	inserted, err := svc.SeedMenu(context.Background(), items)
	require.NoError(t, err)
	require.Equal(t, 3, inserted)

	inserted, err = svc.SeedMenu(context.Background(), items)
	require.NoError(t, err)
	require.Equal(t, 0, inserted, "second seed run must skip every known name")

	stored, err := svc.MenuItems(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 3, "exactly one document per distinct item name")
}

func TestService_SeedMenu_DuplicateNamesWithinOneRun(t *testing.T) {
	menu := newMockMenuStore()
	svc := newTestContentService(menu, newMockMessageStore(), newMockAnalyticsStore())

	inserted, err := svc.SeedMenu(context.Background(), []model.MenuItem{
		{Name: "Pad Thai"},
		{Name: "Pad Thai"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, inserted)
}

func TestService_MessageLifecycle(t *testing.T) {
	messages := newMockMessageStore()
	svc := newTestContentService(newMockMenuStore(), messages, newMockAnalyticsStore())

	id, err := svc.SubmitMessage(context.Background(), &model.Message{
		Name:  "Jane",
		Email: "jane@example.com",
		Body:  "Do you take walk-ins?",
	})
	require.NoError(t, err)

	stored, err := messages.GetMessageByID(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, model.MessageStatusUnread, stored.Status)

	require.NoError(t, svc.MarkMessageRead(context.Background(), id))
	stored, err = messages.GetMessageByID(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, model.MessageStatusRead, stored.Status)
}

func TestService_VisitCounts_Flattened(t *testing.T) {
	analytics := newMockAnalyticsStore()
	svc := newTestContentService(newMockMenuStore(), newMockMessageStore(), analytics)

	ctx := context.Background()
	require.NoError(t, svc.RecordVisit(ctx, "home"))
	require.NoError(t, svc.RecordVisit(ctx, "home"))
	require.NoError(t, svc.RecordVisit(ctx, "menu"))

	counts, err := svc.VisitCounts(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, counts["home.2025-04-01"])
	require.Equal(t, 1, counts["menu.2025-04-01"])
}
