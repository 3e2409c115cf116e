package domain

import (
	"errors"
	"time"
)

// ReviewStatus represents the lifecycle state of an annual review form.
type ReviewStatus string

const (
	StatusNotStarted ReviewStatus = "Not Started"
	StatusInProgress ReviewStatus = "In Progress"
	StatusCompleted  ReviewStatus = "Completed"
)

// ReviewType selects one of the two reviewable entity variants.
type ReviewType string

const (
	TypeModule  ReviewType = "module"
	TypeProgram ReviewType = "program"
)

var (
	ErrReviewNotFound   = errors.New("review not found")
	ErrMissingUpload    = errors.New("upload file missing from request")
	ErrUnparsableUpload = errors.New("upload file is not a readable workbook")
	ErrMailDelivery     = errors.New("mail delivery failed")
)

// ValidStatus reports whether s is one of the three review statuses.
// Transitions between them stay unrestricted: any update may set any status.
func ValidStatus(s ReviewStatus) bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// ValidReviewType reports whether t names a known entity variant.
func ValidReviewType(t ReviewType) bool {
	return t == TypeModule || t == TypeProgram
}

// ModuleReview is the annual review form for a taught module.
// A fresh roster import creates these with every review field empty
// and status "Not Started"; leaders fill them in over the year.
type ModuleReview struct {
	ID                         string       `json:"id"`
	ModuleCode                 string       `json:"moduleCode"`
	FullName                   string       `json:"fullName"`
	FacultyCode                string       `json:"facultyCode"`
	AcademicYear               string       `json:"academicYear"`
	ModuleLeader               string       `json:"moduleLeader"`
	StudentNumbers             int          `json:"studentNumbers"`
	EvaluationOperation        string       `json:"evaluationOperation"`
	EvaluationApproach         string       `json:"evaluationApproach"`
	InclusiveCurriculum        string       `json:"inclusiveCurriculum"`
	EffectPastChanges          string       `json:"effectPastChanges"`
	ProposedFutureChanges      string       `json:"proposedFutureChanges"`
	QualityAndImprovementPlans string       `json:"qualityAndImprovementPlans"`
	OtherComments              string       `json:"otherComments"`
	Author                     string       `json:"author"`
	Date                       *time.Time   `json:"date"`
	Status                     ReviewStatus `json:"status"`
	Email                      string       `json:"email"`
}

// ProgramReview is the annual review form for a degree programme (route).
type ProgramReview struct {
	ID                  string       `json:"id"`
	RouteCode           string       `json:"routeCode"`
	FullName            string       `json:"fullName"`
	FacultyCode         string       `json:"facultyCode"`
	AcademicYear        string       `json:"academicYear"`
	ProgramLeader       string       `json:"programLeader"`
	ProgramTeam         string       `json:"programTeam"`
	ChangesFromLastYear string       `json:"changesFromLastYear"`
	StudentFeedback     string       `json:"studentFeedback"`
	Evaluation          string       `json:"evaluation"`
	FuturePlanning      string       `json:"futurePlanning"`
	OtherComments       string       `json:"otherComments"`
	Author              string       `json:"author"`
	Date                *time.Time   `json:"date"`
	Status              ReviewStatus `json:"status"`
	Email               string       `json:"email"`
}

// NewModuleReview builds a blank "Not Started" module review from roster data.
func NewModuleReview(code, fullName, facultyCode, email string) ModuleReview {
	return ModuleReview{
		ModuleCode:  code,
		FullName:    fullName,
		FacultyCode: facultyCode,
		Status:      StatusNotStarted,
		Email:       email,
	}
}

// NewProgramReview builds a blank "Not Started" program review from roster data.
func NewProgramReview(code, fullName, facultyCode, email string) ProgramReview {
	return ProgramReview{
		RouteCode:   code,
		FullName:    fullName,
		FacultyCode: facultyCode,
		Status:      StatusNotStarted,
		Email:       email,
	}
}

// ModulePatch carries a partial module review update. Nil fields are left
// untouched; the status, like every other field, is caller-supplied.
type ModulePatch struct {
	AcademicYear               *string       `json:"academicYear"`
	ModuleLeader               *string       `json:"moduleLeader"`
	StudentNumbers             *int          `json:"studentNumbers"`
	EvaluationOperation        *string       `json:"evaluationOperation"`
	EvaluationApproach         *string       `json:"evaluationApproach"`
	InclusiveCurriculum        *string       `json:"inclusiveCurriculum"`
	EffectPastChanges          *string       `json:"effectPastChanges"`
	ProposedFutureChanges      *string       `json:"proposedFutureChanges"`
	QualityAndImprovementPlans *string       `json:"qualityAndImprovementPlans"`
	OtherComments              *string       `json:"otherComments"`
	Author                     *string       `json:"author"`
	Date                       *time.Time    `json:"date"`
	Status                     *ReviewStatus `json:"status"`
	Email                      *string       `json:"email"`
}

// ProgramPatch carries a partial program review update.
type ProgramPatch struct {
	AcademicYear        *string       `json:"academicYear"`
	ProgramLeader       *string       `json:"programLeader"`
	ProgramTeam         *string       `json:"programTeam"`
	ChangesFromLastYear *string       `json:"changesFromLastYear"`
	StudentFeedback     *string       `json:"studentFeedback"`
	Evaluation          *string       `json:"evaluation"`
	FuturePlanning      *string       `json:"futurePlanning"`
	OtherComments       *string       `json:"otherComments"`
	Author              *string       `json:"author"`
	Date                *time.Time    `json:"date"`
	Status              *ReviewStatus `json:"status"`
	Email               *string       `json:"email"`
}
