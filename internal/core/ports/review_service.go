package ports

import (
	"context"

	"github.com/acadreview/reviewhub/internal/core/domain"
)

// NotStartedReviews groups both variants filtered to "Not Started".
type NotStartedReviews struct {
	Modules  []domain.ModuleReview  `json:"modules"`
	Programs []domain.ProgramReview `json:"programs"`
}

type ReviewService interface {
	ListModules(ctx context.Context) ([]domain.ModuleReview, error)
	ListPrograms(ctx context.Context) ([]domain.ProgramReview, error)
	GetModule(ctx context.Context, id string) (*domain.ModuleReview, error)
	GetProgram(ctx context.Context, id string) (*domain.ProgramReview, error)
	UpdateModule(ctx context.Context, id string, patch domain.ModulePatch) (*domain.ModuleReview, error)
	UpdateProgram(ctx context.Context, id string, patch domain.ProgramPatch) (*domain.ProgramReview, error)
	NotStarted(ctx context.Context) (*NotStartedReviews, error)
}
