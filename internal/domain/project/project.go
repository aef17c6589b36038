// Package project defines the Project entity, a named container that tasks
// belong to.
package project

import (
	"strings"
	"time"

	"github.com/taskboard-dev/taskboard/internal/domain"
)

// Project represents a collection of related tasks. Projects are immutable
// after creation and are never deleted.
type Project struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// Validate checks business rules for the Project entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (p *Project) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(p.Name) == "" {
		fields["name"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
