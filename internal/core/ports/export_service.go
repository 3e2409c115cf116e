package ports

import (
	"context"

	"github.com/acadreview/reviewhub/internal/core/domain"
)

type ExportService interface {
	// ExportDocument renders a single review as a formatted document and
	// returns the path of the written file.
	ExportDocument(ctx context.Context, typ domain.ReviewType, id string) (string, error)
}

// ReviewDocumentRenderer writes one review as a fixed-order label/value
// document to the given path.
type ReviewDocumentRenderer interface {
	RenderModule(m *domain.ModuleReview, path string) error
	RenderProgram(p *domain.ProgramReview, path string) error
}
