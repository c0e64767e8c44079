// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package db

import (
	"context"

	"github.com/google/uuid"

	"github.com/jaythomasv29/tablego-sub001/internal/model"
)

type EmployeeStore interface {
	CreateEmployee(context.Context, *model.Employee) (uuid.UUID, error)
	ListEmployees(context.Context) ([]*model.Employee, error)
}
