// Package leads records contact details captured by the registration
// gate. The store is append-only: no dedup, no email validation beyond
// presence (enforced at the API boundary).
package leads

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Lead struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	School   string    `json:"school,omitempty"`
	PlanType string    `json:"planType"`
	SavedAt  time.Time `json:"timestamp"`
}

type Store interface {
	Append(ctx context.Context, l Lead) (Lead, error)
	All(ctx context.Context) ([]Lead, error)
}

// normalize fills defaults before a lead is persisted: generated id,
// "pdf" plan type, current UTC timestamp.
func normalize(l Lead, now time.Time) Lead {
	if strings.TrimSpace(l.ID) == "" {
		l.ID = uuid.NewString()
	}
	if strings.TrimSpace(l.PlanType) == "" {
		l.PlanType = "pdf"
	}
	if l.SavedAt.IsZero() {
		l.SavedAt = now.UTC()
	}
	return l
}
