package model

import (
	"time"

	"github.com/google/uuid"
)

// CapacityReport is the output of the capacity feasibility gate.
type CapacityReport struct {
	GroupCount           int  `json:"group_count"`
	MaleGroups           int  `json:"male_groups"`
	FemaleGroups         int  `json:"female_groups"`
	MixedGroups          int  `json:"mixed_groups"`
	AdultGroups          int  `json:"adult_groups"`
	KidsGroups           int  `json:"kids_groups"`
	TotalStudents        int  `json:"total_students"`
	ExaminerCount        int  `json:"examiner_count"`
	UnmatchableExaminers int  `json:"unmatchable_examiners"`
	StudentsPerExaminer  int  `json:"students_per_examiner"`
	AvailableCapacity    int  `json:"available_capacity"`
	Feasible             bool `json:"feasible"`
}

// ShiftBucket holds the groups packed into one shift for one examiner.
type ShiftBucket struct {
	Label        string       `json:"label"`
	Groups       []StudyGroup `json:"groups"`
	StudentCount int          `json:"student_count"`
}

// ExaminerSchedule is the final timetable row for one active examiner.
type ExaminerSchedule struct {
	ExaminerName string        `json:"examiner_name"`
	Room         Room          `json:"room"`
	Shifts       []ShiftBucket `json:"shifts"`
	StudentCount int           `json:"student_count"`
}

// ScheduleRun is one persisted invocation of the allocation pipeline.
type ScheduleRun struct {
	ID                  uuid.UUID          `json:"id"`
	CoordinatorID       int                `json:"coordinator_id"`
	StudentsPerExaminer int                `json:"students_per_examiner"`
	ShiftConfig         []Shift            `json:"shift_config"`
	Feasible            bool               `json:"feasible"`
	Capacity            CapacityReport     `json:"capacity"`
	Violations          []string           `json:"violations"`
	Timetable           []ExaminerSchedule `json:"timetable"`
	CreatedAt           time.Time          `json:"created_at"`
}

// ScheduleRunSummary is the list-view projection of a run.
type ScheduleRunSummary struct {
	ID             uuid.UUID `json:"id"`
	Feasible       bool      `json:"feasible"`
	GroupCount     int       `json:"group_count"`
	ExaminerCount  int       `json:"examiner_count"`
	TotalStudents  int       `json:"total_students"`
	ViolationCount int       `json:"violation_count"`
	CreatedAt      time.Time `json:"created_at"`
}
