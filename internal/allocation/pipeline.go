// Package allocation implements the committee allocation pipeline: a capacity
// feasibility gate, a two-pass best-fit matcher of study groups to examiners,
// and a room/shift packing stage. The pipeline is a pure function of its
// input; nothing persists between runs.
package allocation

import (
	"errors"
	"fmt"

	"github.com/yasmin-center/tanseeq-backend/internal/model"
)

// Configuration errors. Both halt the pipeline before any matching.
var (
	ErrNoShifts   = errors.New("no shifts configured")
	ErrInvalidCap = errors.New("students per examiner must be positive")
)

// Input is one full snapshot of roster data and run configuration.
type Input struct {
	Groups              []model.StudyGroup
	Examiners           []model.Examiner
	Rooms               []model.Room
	Shifts              []model.Shift
	StudentsPerExaminer int
}

// Result is everything a single pipeline run produces.
type Result struct {
	Capacity   model.CapacityReport
	Feasible   bool
	Violations []string
	Timetable  []model.ExaminerSchedule
}

// SuccessMessage is emitted when both stages finish with zero violations.
const SuccessMessage = "no violations: all groups were fully assigned"

// Run executes the three pipeline stages in order. An infeasible capacity
// gate is not an error: the result carries the report, a single explanatory
// violation, and no timetable. Errors are returned only for invalid run
// configuration.
func Run(in Input) (*Result, error) {
	if in.StudentsPerExaminer <= 0 {
		return nil, ErrInvalidCap
	}
	if len(in.Shifts) == 0 {
		return nil, ErrNoShifts
	}

	report := buildCapacityReport(in.Groups, in.Examiners, in.StudentsPerExaminer)
	res := &Result{Capacity: report, Feasible: report.Feasible}
	if !report.Feasible {
		res.Violations = []string{fmt.Sprintf(
			"allocation skipped: total students (%d) exceed total examiner capacity (%d)",
			report.TotalStudents, report.AvailableCapacity)}
		return res, nil
	}

	ledger := newLedger(in.Examiners)
	violations := matchGroups(in.Groups, ledger, in.StudentsPerExaminer)

	timetable, roomViolations := allocateRoomsAndShifts(ledger, in.Rooms, in.Shifts)
	res.Timetable = timetable

	// Matcher lines first, then allocator lines, never interleaved.
	violations = append(violations, roomViolations...)
	if len(violations) == 0 {
		violations = []string{SuccessMessage}
	}
	res.Violations = violations
	return res, nil
}
