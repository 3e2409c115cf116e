package ports

import (
	"context"

	"github.com/acadreview/reviewhub/internal/core/domain"
)

// ReviewRepository defines the interface for review persistence across both
// entity variants. Modules and programs live in separate collections but are
// always replaced together during an academic-year transition.
type ReviewRepository interface {
	ListModules(ctx context.Context) ([]domain.ModuleReview, error)
	ListPrograms(ctx context.Context) ([]domain.ProgramReview, error)
	ListModulesByStatus(ctx context.Context, status domain.ReviewStatus) ([]domain.ModuleReview, error)
	ListProgramsByStatus(ctx context.Context, status domain.ReviewStatus) ([]domain.ProgramReview, error)
	GetModule(ctx context.Context, id string) (*domain.ModuleReview, error)
	GetProgram(ctx context.Context, id string) (*domain.ProgramReview, error)
	UpdateModule(ctx context.Context, id string, patch domain.ModulePatch) (*domain.ModuleReview, error)
	UpdateProgram(ctx context.Context, id string, patch domain.ProgramPatch) (*domain.ProgramReview, error)

	// CountAll returns the combined number of module and program documents.
	CountAll(ctx context.Context) (int64, error)

	// ReplaceAll deletes every module and program document and inserts the
	// given fresh sets as a single atomic swap. A failure anywhere must leave
	// the prior roster intact.
	ReplaceAll(ctx context.Context, modules []domain.ModuleReview, programs []domain.ProgramReview) error
}
