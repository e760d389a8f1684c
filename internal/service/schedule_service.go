package service

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yasmin-center/tanseeq-backend/internal/allocation"
	"github.com/yasmin-center/tanseeq-backend/internal/config"
	"github.com/yasmin-center/tanseeq-backend/internal/model"
	"github.com/yasmin-center/tanseeq-backend/internal/repository"
	"github.com/yasmin-center/tanseeq-backend/internal/response"
	"github.com/yasmin-center/tanseeq-backend/internal/roster"
)

// RosterError reports which uploaded roster failed to parse.
type RosterError struct {
	Roster string
	Err    error
}

func (e *RosterError) Error() string { return e.Roster + " roster: " + e.Err.Error() }
func (e *RosterError) Unwrap() error { return e.Err }

// RosterFile is one uploaded roster stream plus its original filename, which
// decides the parse format.
type RosterFile struct {
	Reader   io.Reader
	Filename string
}

// RunOptions overrides the run configuration; zero values fall back to the
// configured defaults.
type RunOptions struct {
	StudentsPerExaminer int
	Shifts              string
}

// ScheduleService orchestrates roster parsing, the allocation pipeline, and
// run persistence.
type ScheduleService struct {
	cfg     *config.Config
	runRepo *repository.ScheduleRunRepository
	log     zerolog.Logger
}

// NewScheduleService creates a new ScheduleService.
func NewScheduleService(cfg *config.Config, runRepo *repository.ScheduleRunRepository, log zerolog.Logger) *ScheduleService {
	return &ScheduleService{cfg: cfg, runRepo: runRepo, log: log}
}

// ExecuteRun parses the three rosters, runs the pipeline once, and persists
// the result. The pipeline itself is a pure function of the parsed snapshot;
// persistence exists for history only and never feeds back into a later run.
func (s *ScheduleService) ExecuteRun(ctx context.Context, coordinatorID int, groupsFile, examinersFile, roomsFile RosterFile, opts RunOptions) (*model.ScheduleRun, error) {
	groups, err := parseRoster(groupsFile, roster.ParseGroups)
	if err != nil {
		return nil, &RosterError{Roster: "groups", Err: err}
	}
	examiners, err := parseRoster(examinersFile, roster.ParseExaminers)
	if err != nil {
		return nil, &RosterError{Roster: "examiners", Err: err}
	}
	rooms, err := parseRoster(roomsFile, roster.ParseRooms)
	if err != nil {
		return nil, &RosterError{Roster: "rooms", Err: err}
	}

	studentsPerExaminer := opts.StudentsPerExaminer
	if studentsPerExaminer == 0 {
		studentsPerExaminer = s.cfg.DefaultStudentsPerExaminer
	}
	shiftsRaw := opts.Shifts
	if shiftsRaw == "" {
		shiftsRaw = s.cfg.DefaultShifts
	}
	shifts := model.ParseShiftList(shiftsRaw)

	result, err := allocation.Run(allocation.Input{
		Groups:              groups,
		Examiners:           examiners,
		Rooms:               rooms,
		Shifts:              shifts,
		StudentsPerExaminer: studentsPerExaminer,
	})
	if err != nil {
		return nil, err
	}

	run := &model.ScheduleRun{
		CoordinatorID:       coordinatorID,
		StudentsPerExaminer: studentsPerExaminer,
		ShiftConfig:         shifts,
		Feasible:            result.Feasible,
		Capacity:            result.Capacity,
		Violations:          result.Violations,
		Timetable:           result.Timetable,
	}

	if err := s.runRepo.Create(ctx, run, CountViolations(result.Violations)); err != nil {
		return nil, fmt.Errorf("persist run: %w", err)
	}

	s.log.Info().
		Str("run_id", run.ID.String()).
		Int("coordinator_id", coordinatorID).
		Bool("feasible", run.Feasible).
		Int("groups", result.Capacity.GroupCount).
		Int("examiners", result.Capacity.ExaminerCount).
		Int("scheduled", len(run.Timetable)).
		Msg("Allocation run completed")

	return run, nil
}

// GetRun fetches one stored run owned by the coordinator.
func (s *ScheduleService) GetRun(ctx context.Context, coordinatorID int, id uuid.UUID) (*model.ScheduleRun, error) {
	return s.runRepo.GetByID(ctx, coordinatorID, id)
}

// ListRuns returns paginated run summaries, newest first.
func (s *ScheduleService) ListRuns(ctx context.Context, coordinatorID, page, perPage int) ([]model.ScheduleRunSummary, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 10
	}

	summaries, total, err := s.runRepo.List(ctx, coordinatorID, (page-1)*perPage, perPage)
	if err != nil {
		return nil, nil, err
	}

	pagination := &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: (total + perPage - 1) / perPage,
	}
	return summaries, pagination, nil
}

// CountViolations counts real violation lines, treating the all-assigned
// success message as zero.
func CountViolations(violations []string) int {
	if len(violations) == 1 && violations[0] == allocation.SuccessMessage {
		return 0
	}
	return len(violations)
}

func parseRoster[T any](file RosterFile, parse func(io.Reader, roster.Format) ([]T, error)) ([]T, error) {
	format, err := roster.DetectFormat(file.Filename)
	if err != nil {
		return nil, err
	}
	return parse(file.Reader, format)
}
