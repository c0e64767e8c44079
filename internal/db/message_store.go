// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package db

import (
	"context"

	"github.com/google/uuid"

	"github.com/jaythomasv29/tablego-sub001/internal/model"
)

type MessageStore interface {
	CreateMessage(context.Context, *model.Message) (uuid.UUID, error)
	GetMessageByID(context.Context, uuid.UUID) (*model.Message, error)
	UpdateMessage(context.Context, *model.Message) error
	ListMessages(context.Context) ([]*model.Message, error)
}
