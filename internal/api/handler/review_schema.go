package handler

import (
	"time"

	"github.com/acadreview/reviewhub/internal/core/domain"
)

// Update payloads are partial: only supplied fields are patched. The status is
// taken exactly as sent (any of the three values, in any order); unknown
// status strings are rejected.

type moduleUpdateRequest struct {
	AcademicYear               *string    `json:"academicYear"`
	ModuleLeader               *string    `json:"moduleLeader"`
	StudentNumbers             *int       `json:"studentNumbers"`
	EvaluationOperation        *string    `json:"evaluationOperation"`
	EvaluationApproach         *string    `json:"evaluationApproach"`
	InclusiveCurriculum        *string    `json:"inclusiveCurriculum"`
	EffectPastChanges          *string    `json:"effectPastChanges"`
	ProposedFutureChanges      *string    `json:"proposedFutureChanges"`
	QualityAndImprovementPlans *string    `json:"qualityAndImprovementPlans"`
	OtherComments              *string    `json:"otherComments"`
	Author                     *string    `json:"author"`
	Date                       *time.Time `json:"date"`
	Status                     *string    `json:"status"`
	Email                      *string    `json:"email"`
}

func (r moduleUpdateRequest) toPatch() domain.ModulePatch {
	return domain.ModulePatch{
		AcademicYear:               r.AcademicYear,
		ModuleLeader:               r.ModuleLeader,
		StudentNumbers:             r.StudentNumbers,
		EvaluationOperation:        r.EvaluationOperation,
		EvaluationApproach:         r.EvaluationApproach,
		InclusiveCurriculum:        r.InclusiveCurriculum,
		EffectPastChanges:          r.EffectPastChanges,
		ProposedFutureChanges:      r.ProposedFutureChanges,
		QualityAndImprovementPlans: r.QualityAndImprovementPlans,
		OtherComments:              r.OtherComments,
		Author:                     r.Author,
		Date:                       r.Date,
		Status:                     toStatus(r.Status),
		Email:                      r.Email,
	}
}

type programUpdateRequest struct {
	AcademicYear        *string    `json:"academicYear"`
	ProgramLeader       *string    `json:"programLeader"`
	ProgramTeam         *string    `json:"programTeam"`
	ChangesFromLastYear *string    `json:"changesFromLastYear"`
	StudentFeedback     *string    `json:"studentFeedback"`
	Evaluation          *string    `json:"evaluation"`
	FuturePlanning      *string    `json:"futurePlanning"`
	OtherComments       *string    `json:"otherComments"`
	Author              *string    `json:"author"`
	Date                *time.Time `json:"date"`
	Status              *string    `json:"status"`
	Email               *string    `json:"email"`
}

func (r programUpdateRequest) toPatch() domain.ProgramPatch {
	return domain.ProgramPatch{
		AcademicYear:        r.AcademicYear,
		ProgramLeader:       r.ProgramLeader,
		ProgramTeam:         r.ProgramTeam,
		ChangesFromLastYear: r.ChangesFromLastYear,
		StudentFeedback:     r.StudentFeedback,
		Evaluation:          r.Evaluation,
		FuturePlanning:      r.FuturePlanning,
		OtherComments:       r.OtherComments,
		Author:              r.Author,
		Date:                r.Date,
		Status:              toStatus(r.Status),
		Email:               r.Email,
	}
}

func toStatus(s *string) *domain.ReviewStatus {
	if s == nil {
		return nil
	}
	st := domain.ReviewStatus(*s)
	return &st
}
