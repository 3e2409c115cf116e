package service

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/acadreview/reviewhub/internal/core/domain"
	"github.com/acadreview/reviewhub/internal/core/ports"
)

// ExportService renders individual completed reviews as formatted documents.
type ExportService struct {
	repo      ports.ReviewRepository
	renderer  ports.ReviewDocumentRenderer
	exportDir string
}

func NewExportService(repo ports.ReviewRepository, renderer ports.ReviewDocumentRenderer, exportDir string) *ExportService {
	return &ExportService{repo: repo, renderer: renderer, exportDir: exportDir}
}

func (s *ExportService) ExportDocument(ctx context.Context, typ domain.ReviewType, id string) (string, error) {
	if !domain.ValidReviewType(typ) {
		return "", domain.ErrReviewNotFound
	}

	path := filepath.Join(s.exportDir, fmt.Sprintf("%s_review_%s.docx", typ, id))

	switch typ {
	case domain.TypeModule:
		m, err := s.repo.GetModule(ctx, id)
		if err != nil {
			return "", err
		}
		if err := s.renderer.RenderModule(m, path); err != nil {
			return "", fmt.Errorf("render module document: %w", err)
		}
	case domain.TypeProgram:
		p, err := s.repo.GetProgram(ctx, id)
		if err != nil {
			return "", err
		}
		if err := s.renderer.RenderProgram(p, path); err != nil {
			return "", fmt.Errorf("render program document: %w", err)
		}
	}

	return path, nil
}
