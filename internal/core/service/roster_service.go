package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/acadreview/reviewhub/internal/core/domain"
	"github.com/acadreview/reviewhub/internal/core/ports"
)

const downloadPrefix = "/api/download/"

// RosterService runs the academic-year transition: archive the outgoing
// roster, then atomically swap in fresh reviews built from the uploads.
type RosterService struct {
	repo     ports.ReviewRepository
	parser   ports.RosterParser
	snapshot ports.SnapshotWriter
	logger   zerolog.Logger
}

func NewRosterService(repo ports.ReviewRepository, parser ports.RosterParser, snapshot ports.SnapshotWriter, logger zerolog.Logger) *RosterService {
	return &RosterService{repo: repo, parser: parser, snapshot: snapshot, logger: logger}
}

// ImportRoster replaces the whole roster from the two uploaded sheets.
//
// When the store already holds documents, a snapshot workbook is written
// first; it is the only recovery path once the swap commits. Both sheets are
// parsed before anything is deleted, so an unreadable upload aborts the
// transition with the old roster untouched. The delete-and-insert itself runs
// inside a single repository transaction.
func (s *RosterService) ImportRoster(ctx context.Context, modules, programs io.Reader) (*ports.ImportResult, error) {
	if modules == nil || programs == nil {
		return nil, domain.ErrMissingUpload
	}

	moduleRows, err := s.parser.Parse(modules, "moduleCode")
	if err != nil {
		return nil, fmt.Errorf("%w: modules: %v", domain.ErrUnparsableUpload, err)
	}
	programRows, err := s.parser.Parse(programs, "routeCode")
	if err != nil {
		return nil, fmt.Errorf("%w: programs: %v", domain.ErrUnparsableUpload, err)
	}

	count, err := s.repo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count current roster: %w", err)
	}

	var downloadPath string
	if count > 0 {
		filePath, err := s.writeSnapshot(ctx)
		if err != nil {
			return nil, err
		}
		downloadPath = downloadPrefix + path.Base(filepath.ToSlash(filePath))
		s.logger.Info().Str("file", filePath).Int64("archived_docs", count).Msg("outgoing academic year archived")
	}

	newModules := make([]domain.ModuleReview, 0, len(moduleRows))
	for _, row := range moduleRows {
		newModules = append(newModules, domain.NewModuleReview(row.Code, row.FullName, row.FacultyCode, row.Email))
	}
	newPrograms := make([]domain.ProgramReview, 0, len(programRows))
	for _, row := range programRows {
		newPrograms = append(newPrograms, domain.NewProgramReview(row.Code, row.FullName, row.FacultyCode, row.Email))
	}

	if err := s.repo.ReplaceAll(ctx, newModules, newPrograms); err != nil {
		return nil, fmt.Errorf("replace roster: %w", err)
	}

	s.logger.Info().
		Int("modules", len(newModules)).
		Int("programs", len(newPrograms)).
		Msg("academic year created")

	return &ports.ImportResult{
		Message:         "Academic year created successfully",
		FilePath:        downloadPath,
		ModulesCreated:  len(newModules),
		ProgramsCreated: len(newPrograms),
	}, nil
}

// ExportCurrent snapshots the live store on demand. Successive calls always
// yield distinct files; nothing is ever overwritten.
func (s *RosterService) ExportCurrent(ctx context.Context) (string, error) {
	filePath, err := s.writeSnapshot(ctx)
	if err != nil {
		return "", err
	}
	return downloadPrefix + path.Base(filepath.ToSlash(filePath)), nil
}

func (s *RosterService) writeSnapshot(ctx context.Context) (string, error) {
	modules, err := s.repo.ListModules(ctx)
	if err != nil {
		return "", fmt.Errorf("read modules for snapshot: %w", err)
	}
	programs, err := s.repo.ListPrograms(ctx)
	if err != nil {
		return "", fmt.Errorf("read programs for snapshot: %w", err)
	}

	filePath, err := s.snapshot.Write(modules, programs)
	if err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	return filePath, nil
}
