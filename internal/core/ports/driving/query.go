package driving

import (
	"context"

	"github.com/custodia-labs/teampulse/internal/core/domain"
)

// Report is the aggregate payload returned to API consumers.
type Report struct {
	domain.WindowStats

	// ByRole breaks the window down per roster role. Empty when no
	// roster is configured.
	ByRole []domain.RoleStats

	// SubmittedToday lists roster members who already submitted on the
	// current civil day. Nil when no roster is configured.
	SubmittedToday []string
}

// QueryService computes rolling statistics over the log. Read-only;
// an absent backing file reports an empty window, not an error.
type QueryService interface {
	Stats(ctx context.Context, windowDays int) (Report, error)
}
