package analyses

import (
	"context"

	"github.com/google/uuid"

	"github.com/navigatehome/waypoint/internal/gateway"
	"github.com/navigatehome/waypoint/pkg/pagination"
)

// System defines the public contract for analysis domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Analysis], error)

	Find(ctx context.Context, id uuid.UUID) (*Analysis, error)
	FindByDocument(ctx context.Context, documentID uuid.UUID) (*Analysis, error)

	// Analyze runs the full analysis pipeline against a document, answers
	// any supplied questions in order, and persists the result, replacing
	// any prior analysis for it.
	Analyze(ctx context.Context, documentID uuid.UUID, questions []string) (*Analysis, error)

	Ask(ctx context.Context, documentID uuid.UUID, question string) (*gateway.ServiceResult, error)
	Translate(ctx context.Context, documentID uuid.UUID, language string) (*gateway.ServiceResult, error)
	Simplify(ctx context.Context, documentID uuid.UUID) (*gateway.ServiceResult, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
