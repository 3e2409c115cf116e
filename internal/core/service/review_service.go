package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/acadreview/reviewhub/internal/core/domain"
	"github.com/acadreview/reviewhub/internal/core/ports"
)

// ReviewService is thin CRUD over the review store. Status is taken as given
// from the caller; the backend does not derive it from field completeness.
type ReviewService struct {
	repo   ports.ReviewRepository
	logger zerolog.Logger
}

func NewReviewService(repo ports.ReviewRepository, logger zerolog.Logger) *ReviewService {
	return &ReviewService{repo: repo, logger: logger}
}

func (s *ReviewService) ListModules(ctx context.Context) ([]domain.ModuleReview, error) {
	return s.repo.ListModules(ctx)
}

func (s *ReviewService) ListPrograms(ctx context.Context) ([]domain.ProgramReview, error) {
	return s.repo.ListPrograms(ctx)
}

func (s *ReviewService) GetModule(ctx context.Context, id string) (*domain.ModuleReview, error) {
	return s.repo.GetModule(ctx, id)
}

func (s *ReviewService) GetProgram(ctx context.Context, id string) (*domain.ProgramReview, error) {
	return s.repo.GetProgram(ctx, id)
}

func (s *ReviewService) UpdateModule(ctx context.Context, id string, patch domain.ModulePatch) (*domain.ModuleReview, error) {
	updated, err := s.repo.UpdateModule(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("id", id).Str("status", string(updated.Status)).Msg("module review updated")
	return updated, nil
}

func (s *ReviewService) UpdateProgram(ctx context.Context, id string, patch domain.ProgramPatch) (*domain.ProgramReview, error) {
	updated, err := s.repo.UpdateProgram(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("id", id).Str("status", string(updated.Status)).Msg("program review updated")
	return updated, nil
}

func (s *ReviewService) NotStarted(ctx context.Context) (*ports.NotStartedReviews, error) {
	modules, err := s.repo.ListModulesByStatus(ctx, domain.StatusNotStarted)
	if err != nil {
		return nil, err
	}
	programs, err := s.repo.ListProgramsByStatus(ctx, domain.StatusNotStarted)
	if err != nil {
		return nil, err
	}
	return &ports.NotStartedReviews{Modules: modules, Programs: programs}, nil
}
