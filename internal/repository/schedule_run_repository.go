package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yasmin-center/tanseeq-backend/internal/model"
)

// ScheduleRunRepository persists allocation pipeline runs.
type ScheduleRunRepository struct {
	pool *pgxpool.Pool
}

// NewScheduleRunRepository creates a new ScheduleRunRepository.
func NewScheduleRunRepository(pool *pgxpool.Pool) *ScheduleRunRepository {
	return &ScheduleRunRepository{pool: pool}
}

// Create inserts a finished run. Reports and the timetable are stored as
// JSONB snapshots; a run is never updated after insertion.
func (r *ScheduleRunRepository) Create(ctx context.Context, run *model.ScheduleRun, violationCount int) error {
	shifts, err := json.Marshal(run.ShiftConfig)
	if err != nil {
		return fmt.Errorf("marshal shifts: %w", err)
	}
	capacity, err := json.Marshal(run.Capacity)
	if err != nil {
		return fmt.Errorf("marshal capacity report: %w", err)
	}
	violations, err := json.Marshal(run.Violations)
	if err != nil {
		return fmt.Errorf("marshal violations: %w", err)
	}
	timetable, err := json.Marshal(run.Timetable)
	if err != nil {
		return fmt.Errorf("marshal timetable: %w", err)
	}

	return r.pool.QueryRow(ctx,
		`INSERT INTO schedule_runs
		   (coordinator_id, students_per_examiner, shift_config, feasible,
		    capacity, violations, violation_count, timetable)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		run.CoordinatorID, run.StudentsPerExaminer, shifts, run.Feasible,
		capacity, violations, violationCount, timetable,
	).Scan(&run.ID, &run.CreatedAt)
}

// GetByID retrieves one run owned by the given coordinator.
func (r *ScheduleRunRepository) GetByID(ctx context.Context, coordinatorID int, id uuid.UUID) (*model.ScheduleRun, error) {
	run := &model.ScheduleRun{}
	var shifts, capacity, violations, timetable []byte

	err := r.pool.QueryRow(ctx,
		`SELECT id, coordinator_id, students_per_examiner, shift_config,
		        feasible, capacity, violations, timetable, created_at
		 FROM schedule_runs WHERE id = $1 AND coordinator_id = $2`,
		id, coordinatorID,
	).Scan(&run.ID, &run.CoordinatorID, &run.StudentsPerExaminer, &shifts,
		&run.Feasible, &capacity, &violations, &timetable, &run.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(shifts, &run.ShiftConfig); err != nil {
		return nil, fmt.Errorf("unmarshal shifts: %w", err)
	}
	if err := json.Unmarshal(capacity, &run.Capacity); err != nil {
		return nil, fmt.Errorf("unmarshal capacity report: %w", err)
	}
	if err := json.Unmarshal(violations, &run.Violations); err != nil {
		return nil, fmt.Errorf("unmarshal violations: %w", err)
	}
	if err := json.Unmarshal(timetable, &run.Timetable); err != nil {
		return nil, fmt.Errorf("unmarshal timetable: %w", err)
	}
	return run, nil
}

// List returns run summaries for a coordinator, newest first, plus the total
// row count for pagination.
func (r *ScheduleRunRepository) List(ctx context.Context, coordinatorID, offset, limit int) ([]model.ScheduleRunSummary, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM schedule_runs WHERE coordinator_id = $1`,
		coordinatorID,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, feasible,
		        (capacity->>'group_count')::int,
		        (capacity->>'examiner_count')::int,
		        (capacity->>'total_students')::int,
		        violation_count, created_at
		 FROM schedule_runs
		 WHERE coordinator_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		coordinatorID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var summaries []model.ScheduleRunSummary
	for rows.Next() {
		var s model.ScheduleRunSummary
		if err := rows.Scan(&s.ID, &s.Feasible, &s.GroupCount, &s.ExaminerCount,
			&s.TotalStudents, &s.ViolationCount, &s.CreatedAt); err != nil {
			return nil, 0, err
		}
		summaries = append(summaries, s)
	}
	return summaries, total, rows.Err()
}
