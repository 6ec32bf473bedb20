package domain

import (
	"errors"
	"strings"
	"time"
)

// Profile is a named, saved UserFinancialContext.
type Profile struct {
	ID        string
	Name      string
	Context   UserFinancialContext
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the fields a profile needs before it can be stored.
func (p *Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("profile name is required")
	}
	return nil
}
