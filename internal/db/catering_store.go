// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package db

import (
	"context"

	"github.com/google/uuid"

	"github.com/jaythomasv29/tablego-sub001/internal/model"
)

type CateringStore interface {
	CreateInquiry(context.Context, *model.CateringInquiry) (uuid.UUID, error)
	GetInquiryByID(context.Context, uuid.UUID) (*model.CateringInquiry, error)
	ListInquiries(context.Context) ([]*model.CateringInquiry, error)
}
