// Package document renders a single review as a Word document: a bold title
// followed by label/value lines in a fixed order.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"baliance.com/gooxml/document"
	"baliance.com/gooxml/measurement"

	"github.com/acadreview/reviewhub/internal/core/domain"
)

const (
	titleSize = 14 * measurement.Point
	bodySize  = 12 * measurement.Point
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (Renderer) RenderModule(m *domain.ModuleReview, path string) error {
	doc := document.New()
	addTitle(doc, "Review of "+m.FullName)

	lines := []labelled{
		{"Academic Year", m.AcademicYear},
		{"Author", m.Author},
		{"Date", formatDate(m.Date)},
		{"Module Leader", m.ModuleLeader},
		{"Student Numbers", fmt.Sprintf("%d", m.StudentNumbers)},
		{"Evaluation Operation", m.EvaluationOperation},
		{"Evaluation Approach", m.EvaluationApproach},
		{"Inclusive Curriculum", m.InclusiveCurriculum},
		{"Effect of Past Changes", m.EffectPastChanges},
		{"Proposed Future Changes", m.ProposedFutureChanges},
		{"Quality and Improvement Plans", m.QualityAndImprovementPlans},
		{"Other Comments", m.OtherComments},
	}
	addLines(doc, lines)

	return save(doc, path)
}

func (Renderer) RenderProgram(p *domain.ProgramReview, path string) error {
	doc := document.New()
	addTitle(doc, "Review of "+p.FullName)

	lines := []labelled{
		{"Academic Year", p.AcademicYear},
		{"Author", p.Author},
		{"Date", formatDate(p.Date)},
		{"Program Leader", p.ProgramLeader},
		{"Program Team", p.ProgramTeam},
		{"Changes From Last Year", p.ChangesFromLastYear},
		{"Student Feedback", p.StudentFeedback},
		{"Evaluation", p.Evaluation},
		{"Future Planning", p.FuturePlanning},
		{"Other Comments", p.OtherComments},
	}
	addLines(doc, lines)

	return save(doc, path)
}

type labelled struct {
	label string
	value string
}

func addTitle(doc *document.Document, text string) {
	para := doc.AddParagraph()
	run := para.AddRun()
	run.Properties().SetBold(true)
	run.Properties().SetSize(titleSize)
	run.AddText(text)
}

func addLines(doc *document.Document, lines []labelled) {
	for _, line := range lines {
		para := doc.AddParagraph()
		run := para.AddRun()
		run.Properties().SetSize(bodySize)
		run.AddText(line.label + ": " + line.value)
	}
}

func save(doc *document.Document, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	if err := doc.SaveToFile(path); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02/01/2006")
}
