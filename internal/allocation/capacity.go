package allocation

import (
	"fmt"

	"github.com/yasmin-center/tanseeq-backend/internal/model"
)

// buildCapacityReport aggregates demand and supply before any matching runs.
// It is a precondition check only: a feasible report does not guarantee the
// matcher can place every group once eligibility rules apply.
func buildCapacityReport(groups []model.StudyGroup, examiners []model.Examiner, studentsPerExaminer int) model.CapacityReport {
	report := model.CapacityReport{
		GroupCount:          len(groups),
		ExaminerCount:       len(examiners),
		StudentsPerExaminer: studentsPerExaminer,
	}

	for _, g := range groups {
		report.TotalStudents += g.StudentCount
		switch g.Gender {
		case model.GroupGenderMale:
			report.MaleGroups++
		case model.GroupGenderFemale:
			report.FemaleGroups++
		case model.GroupGenderMixed:
			report.MixedGroups++
		}
		switch g.Size {
		case model.GroupSizeAdults:
			report.AdultGroups++
		case model.GroupSizeKids:
			report.KidsGroups++
		}
	}

	// Every examiner counts toward aggregate capacity, including ones with no
	// type category. Those are surfaced separately because the matcher will
	// never hand them a group.
	for _, e := range examiners {
		if e.Type == model.ExaminerTypeUnspecified {
			report.UnmatchableExaminers++
		}
	}

	report.AvailableCapacity = len(examiners) * studentsPerExaminer
	report.Feasible = report.TotalStudents <= report.AvailableCapacity
	return report
}

// FormatCapacityReport renders the report as the plain-text summary shown to
// coordinators.
func FormatCapacityReport(r model.CapacityReport) string {
	verdict := "yes"
	if !r.Feasible {
		verdict = "no - capacity shortfall"
	}
	text := fmt.Sprintf(
		"## Capacity Report ##\n"+
			"- Study groups: %d (male: %d, female: %d, mixed: %d)\n"+
			"- Group sizes: %d adults, %d kids\n"+
			"- Total students: %d\n"+
			"- Available examiners: %d\n"+
			"- Total available capacity: %d students (%d per examiner)\n"+
			"- Is total demand (%d) within capacity (%d)? %s",
		r.GroupCount, r.MaleGroups, r.FemaleGroups, r.MixedGroups,
		r.AdultGroups, r.KidsGroups,
		r.TotalStudents,
		r.ExaminerCount,
		r.AvailableCapacity, r.StudentsPerExaminer,
		r.TotalStudents, r.AvailableCapacity, verdict,
	)
	if r.UnmatchableExaminers > 0 {
		text += fmt.Sprintf("\n- Note: %d examiner(s) have no type category and cannot be assigned groups", r.UnmatchableExaminers)
	}
	return text
}
