package spreadsheet

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/acadreview/reviewhub/internal/core/domain"
)

const (
	modulesSheet  = "Modules"
	programsSheet = "Programs"
)

var moduleHeader = []interface{}{
	"id", "moduleCode", "fullName", "facultyCode", "academicYear",
	"moduleLeader", "studentNumbers", "evaluationOperation", "evaluationApproach",
	"inclusiveCurriculum", "effectPastChanges", "proposedFutureChanges",
	"qualityAndImprovementPlans", "otherComments", "author", "date", "status", "email",
}

var programHeader = []interface{}{
	"id", "routeCode", "fullName", "facultyCode", "academicYear",
	"programLeader", "programTeam", "changesFromLastYear", "studentFeedback",
	"evaluation", "futurePlanning", "otherComments", "author", "date", "status", "email",
}

// SnapshotWriter serializes the whole store to a two-sheet workbook under dir.
type SnapshotWriter struct {
	dir string
}

func NewSnapshotWriter(dir string) *SnapshotWriter {
	return &SnapshotWriter{dir: dir}
}

// Write creates `academic_year_<timestamp>.xlsx` in the export directory and
// returns its path. The timestamp carries nanosecond precision, so successive
// calls within one run never collide or overwrite.
func (w *SnapshotWriter) Write(modules []domain.ModuleReview, programs []domain.ProgramReview) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", modulesSheet); err != nil {
		return "", err
	}
	if _, err := f.NewSheet(programsSheet); err != nil {
		return "", err
	}

	if err := f.SetSheetRow(modulesSheet, "A1", &moduleHeader); err != nil {
		return "", err
	}
	for i, m := range modules {
		row := []interface{}{
			m.ID, m.ModuleCode, m.FullName, m.FacultyCode, m.AcademicYear,
			m.ModuleLeader, m.StudentNumbers, m.EvaluationOperation, m.EvaluationApproach,
			m.InclusiveCurriculum, m.EffectPastChanges, m.ProposedFutureChanges,
			m.QualityAndImprovementPlans, m.OtherComments, m.Author, formatDate(m.Date), string(m.Status), m.Email,
		}
		if err := f.SetSheetRow(modulesSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return "", err
		}
	}

	if err := f.SetSheetRow(programsSheet, "A1", &programHeader); err != nil {
		return "", err
	}
	for i, p := range programs {
		row := []interface{}{
			p.ID, p.RouteCode, p.FullName, p.FacultyCode, p.AcademicYear,
			p.ProgramLeader, p.ProgramTeam, p.ChangesFromLastYear, p.StudentFeedback,
			p.Evaluation, p.FuturePlanning, p.OtherComments, p.Author, formatDate(p.Date), string(p.Status), p.Email,
		}
		if err := f.SetSheetRow(programsSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return "", err
		}
	}

	path := filepath.Join(w.dir, snapshotFilename(time.Now().UTC()))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save snapshot: %w", err)
	}
	return path, nil
}

func snapshotFilename(t time.Time) string {
	ts := t.Format(time.RFC3339Nano)
	ts = strings.ReplaceAll(ts, ":", "-")
	ts = strings.ReplaceAll(ts, ".", "-")
	return "academic_year_" + ts + ".xlsx"
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
