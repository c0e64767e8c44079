// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package model

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID        uuid.UUID `json:"id" form:"-"`
	Name      string    `json:"name" form:"name"`
	Email     string    `json:"email" form:"email"`
	Role      string    `json:"role" form:"role"`
	CreatedAt time.Time `json:"createdAt" form:"-"`
}
