package ports

import (
	"context"
	"io"

	"github.com/acadreview/reviewhub/internal/core/domain"
)

// ImportResult reports the outcome of an academic-year transition. FilePath is
// the download path of the pre-transition snapshot, empty when the store was
// empty and nothing needed archiving.
type ImportResult struct {
	Message         string `json:"message"`
	FilePath        string `json:"filePath,omitempty"`
	ModulesCreated  int    `json:"modulesCreated"`
	ProgramsCreated int    `json:"programsCreated"`
}

type RosterService interface {
	// ImportRoster archives the current roster (when non-empty), then replaces
	// it with fresh "Not Started" reviews built from the two uploads.
	ImportRoster(ctx context.Context, modules, programs io.Reader) (*ImportResult, error)

	// ExportCurrent writes an on-demand snapshot of the live store and returns
	// its download path. Each call produces a distinct file.
	ExportCurrent(ctx context.Context) (string, error)
}

// RosterRow is one parsed line of an uploaded roster sheet. Absent columns
// surface as empty strings; no schema validation happens before row creation.
type RosterRow struct {
	Code        string
	FullName    string
	FacultyCode string
	Email       string
}

// RosterParser reads the first sheet of a tabular upload into roster rows,
// locating columns by header name. codeColumn selects the per-variant
// identifier header ("moduleCode" or "routeCode").
type RosterParser interface {
	Parse(r io.Reader, codeColumn string) ([]RosterRow, error)
}

// SnapshotWriter serializes the full store content to a two-sheet workbook in
// the export directory and returns the written file's path. Filenames are
// timestamped and never reused within a run.
type SnapshotWriter interface {
	Write(modules []domain.ModuleReview, programs []domain.ProgramReview) (string, error)
}
