package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadreview/reviewhub/internal/core/domain"
	"github.com/acadreview/reviewhub/internal/core/ports"
)

// stubReviewRepo keeps both collections in memory and mimics the atomic swap.
type stubReviewRepo struct {
	modules  []domain.ModuleReview
	programs []domain.ProgramReview

	replaceErr error
}

func (r *stubReviewRepo) ListModules(context.Context) ([]domain.ModuleReview, error) {
	return append([]domain.ModuleReview{}, r.modules...), nil
}

func (r *stubReviewRepo) ListPrograms(context.Context) ([]domain.ProgramReview, error) {
	return append([]domain.ProgramReview{}, r.programs...), nil
}

func (r *stubReviewRepo) ListModulesByStatus(_ context.Context, status domain.ReviewStatus) ([]domain.ModuleReview, error) {
	var out []domain.ModuleReview
	for _, m := range r.modules {
		if m.Status == status {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *stubReviewRepo) ListProgramsByStatus(_ context.Context, status domain.ReviewStatus) ([]domain.ProgramReview, error) {
	var out []domain.ProgramReview
	for _, p := range r.programs {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubReviewRepo) GetModule(_ context.Context, id string) (*domain.ModuleReview, error) {
	for i := range r.modules {
		if r.modules[i].ID == id {
			m := r.modules[i]
			return &m, nil
		}
	}
	return nil, domain.ErrReviewNotFound
}

func (r *stubReviewRepo) GetProgram(_ context.Context, id string) (*domain.ProgramReview, error) {
	for i := range r.programs {
		if r.programs[i].ID == id {
			p := r.programs[i]
			return &p, nil
		}
	}
	return nil, domain.ErrReviewNotFound
}

func (r *stubReviewRepo) UpdateModule(_ context.Context, id string, patch domain.ModulePatch) (*domain.ModuleReview, error) {
	for i := range r.modules {
		if r.modules[i].ID == id {
			if patch.Status != nil {
				r.modules[i].Status = *patch.Status
			}
			if patch.Author != nil {
				r.modules[i].Author = *patch.Author
			}
			m := r.modules[i]
			return &m, nil
		}
	}
	return nil, domain.ErrReviewNotFound
}

func (r *stubReviewRepo) UpdateProgram(_ context.Context, id string, patch domain.ProgramPatch) (*domain.ProgramReview, error) {
	for i := range r.programs {
		if r.programs[i].ID == id {
			if patch.Status != nil {
				r.programs[i].Status = *patch.Status
			}
			if patch.Author != nil {
				r.programs[i].Author = *patch.Author
			}
			p := r.programs[i]
			return &p, nil
		}
	}
	return nil, domain.ErrReviewNotFound
}

func (r *stubReviewRepo) CountAll(context.Context) (int64, error) {
	return int64(len(r.modules) + len(r.programs)), nil
}

func (r *stubReviewRepo) ReplaceAll(_ context.Context, modules []domain.ModuleReview, programs []domain.ProgramReview) error {
	if r.replaceErr != nil {
		return r.replaceErr
	}
	r.modules = append([]domain.ModuleReview{}, modules...)
	r.programs = append([]domain.ProgramReview{}, programs...)
	return nil
}

// fakeParser returns canned rows regardless of reader content, keyed by the
// requested code column.
type fakeParser struct {
	rows map[string][]ports.RosterRow
	err  error
}

func (p *fakeParser) Parse(_ io.Reader, codeColumn string) ([]ports.RosterRow, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.rows[codeColumn], nil
}

// fakeSnapshot records what it was asked to archive and yields unique paths.
type fakeSnapshot struct {
	calls    int
	modules  [][]domain.ModuleReview
	programs [][]domain.ProgramReview
}

func (s *fakeSnapshot) Write(modules []domain.ModuleReview, programs []domain.ProgramReview) (string, error) {
	s.calls++
	s.modules = append(s.modules, modules)
	s.programs = append(s.programs, programs)
	return fmt.Sprintf("exports/academic_year_%d.xlsx", s.calls), nil
}

func rosterFixture() *fakeParser {
	return &fakeParser{rows: map[string][]ports.RosterRow{
		"moduleCode": {
			{Code: "AC31008", FullName: "Systems Programming", FacultyCode: "SCI", Email: "sp@dundee.ac.uk"},
			{Code: "AC32009", FullName: "Databases", FacultyCode: "SCI"},
			{Code: "AC33010", FullName: "Networks", FacultyCode: "SCI", Email: "net@dundee.ac.uk"},
		},
		"routeCode": {
			{Code: "CS-BSC", FullName: "BSc Computing", FacultyCode: "SCI", Email: "bsc@dundee.ac.uk"},
			{Code: "CS-MSC", FullName: "MSc Computing", FacultyCode: "SCI"},
		},
	}}
}

func TestRosterService_ImportRoster_EmptyStore(t *testing.T) {
	repo := &stubReviewRepo{}
	snap := &fakeSnapshot{}
	svc := NewRosterService(repo, rosterFixture(), snap, zerolog.Nop())

	res, err := svc.ImportRoster(context.Background(), strings.NewReader("m"), strings.NewReader("p"))
	require.NoError(t, err)

	assert.Empty(t, res.FilePath, "first-ever import has nothing to archive")
	assert.Equal(t, 0, snap.calls)
	assert.Equal(t, 3, res.ModulesCreated)
	assert.Equal(t, 2, res.ProgramsCreated)

	require.Len(t, repo.modules, 3)
	require.Len(t, repo.programs, 2)
	for _, m := range repo.modules {
		assert.Equal(t, domain.StatusNotStarted, m.Status)
		assert.Empty(t, m.AcademicYear)
		assert.Empty(t, m.Author)
		assert.Nil(t, m.Date)
	}
	assert.Equal(t, "sp@dundee.ac.uk", repo.modules[0].Email)
	assert.Empty(t, repo.modules[1].Email)
}

func TestRosterService_ImportRoster_ArchivesOutgoingYear(t *testing.T) {
	repo := &stubReviewRepo{
		modules: []domain.ModuleReview{
			{ID: "1", ModuleCode: "OLD1", Status: domain.StatusCompleted},
			{ID: "2", ModuleCode: "OLD2", Status: domain.StatusInProgress},
			{ID: "3", ModuleCode: "OLD3", Status: domain.StatusNotStarted},
		},
		programs: []domain.ProgramReview{
			{ID: "4", RouteCode: "OLDP", Status: domain.StatusCompleted},
		},
	}
	snap := &fakeSnapshot{}
	svc := NewRosterService(repo, rosterFixture(), snap, zerolog.Nop())

	res, err := svc.ImportRoster(context.Background(), strings.NewReader("m"), strings.NewReader("p"))
	require.NoError(t, err)

	assert.Equal(t, "/api/download/academic_year_1.xlsx", res.FilePath)
	require.Equal(t, 1, snap.calls)
	assert.Len(t, snap.modules[0], 3, "snapshot must hold the prior roster")
	assert.Len(t, snap.programs[0], 1)

	assert.Len(t, repo.modules, 3)
	assert.Len(t, repo.programs, 2)
	assert.Equal(t, "AC31008", repo.modules[0].ModuleCode)
}

func TestRosterService_ImportRoster_NotIdempotent(t *testing.T) {
	repo := &stubReviewRepo{}
	snap := &fakeSnapshot{}
	svc := NewRosterService(repo, rosterFixture(), snap, zerolog.Nop())

	_, err := svc.ImportRoster(context.Background(), strings.NewReader("m"), strings.NewReader("p"))
	require.NoError(t, err)

	res, err := svc.ImportRoster(context.Background(), strings.NewReader("m"), strings.NewReader("p"))
	require.NoError(t, err)

	assert.NotEmpty(t, res.FilePath, "second import archives the freshly imported roster")
	assert.Equal(t, 1, snap.calls)
	assert.Len(t, repo.modules, 3, "roster replaced, not appended")
}

func TestRosterService_ImportRoster_MissingFile(t *testing.T) {
	svc := NewRosterService(&stubReviewRepo{}, rosterFixture(), &fakeSnapshot{}, zerolog.Nop())

	_, err := svc.ImportRoster(context.Background(), nil, strings.NewReader("p"))
	require.ErrorIs(t, err, domain.ErrMissingUpload)
}

func TestRosterService_ImportRoster_ParseFailureLeavesStoreIntact(t *testing.T) {
	repo := &stubReviewRepo{
		modules: []domain.ModuleReview{{ID: "1", ModuleCode: "KEEP"}},
	}
	parser := &fakeParser{err: errors.New("not a workbook")}
	snap := &fakeSnapshot{}
	svc := NewRosterService(repo, parser, snap, zerolog.Nop())

	_, err := svc.ImportRoster(context.Background(), strings.NewReader("m"), strings.NewReader("p"))
	require.ErrorIs(t, err, domain.ErrUnparsableUpload)

	assert.Equal(t, 0, snap.calls, "no snapshot before a failed parse")
	require.Len(t, repo.modules, 1)
	assert.Equal(t, "KEEP", repo.modules[0].ModuleCode)
}

func TestRosterService_ImportRoster_SwapFailureSurfaces(t *testing.T) {
	repo := &stubReviewRepo{replaceErr: errors.New("transaction aborted")}
	svc := NewRosterService(repo, rosterFixture(), &fakeSnapshot{}, zerolog.Nop())

	_, err := svc.ImportRoster(context.Background(), strings.NewReader("m"), strings.NewReader("p"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "replace roster")
}

func TestRosterService_ExportCurrent_DistinctFiles(t *testing.T) {
	repo := &stubReviewRepo{
		modules: []domain.ModuleReview{{ID: "1", ModuleCode: "AC31008"}},
	}
	snap := &fakeSnapshot{}
	svc := NewRosterService(repo, rosterFixture(), snap, zerolog.Nop())

	first, err := svc.ExportCurrent(context.Background())
	require.NoError(t, err)
	second, err := svc.ExportCurrent(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, 2, snap.calls)
	assert.Len(t, snap.modules[0], 1)
	assert.Len(t, snap.modules[1], 1)
}
