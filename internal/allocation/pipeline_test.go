package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yasmin-center/tanseeq-backend/internal/model"
)

func group(name, teacher string, students int, gender model.GroupGender, size model.GroupSize) model.StudyGroup {
	return model.StudyGroup{Name: name, TeacherName: teacher, StudentCount: students, Gender: gender, Size: size}
}

func examiner(name string, gender model.ExaminerGender, typ model.ExaminerType) model.Examiner {
	return model.Examiner{Name: name, Gender: gender, Type: typ}
}

func twoShifts() []model.Shift {
	return []model.Shift{
		{Start: "09:00", End: "11:00"},
		{Start: "11:00", End: "13:00"},
	}
}

func rooms(numbers ...string) []model.Room {
	rs := make([]model.Room, len(numbers))
	for i, n := range numbers {
		rs[i] = model.Room{Number: n, Floor: "1"}
	}
	return rs
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	_, err := Run(Input{Shifts: twoShifts(), StudentsPerExaminer: 0})
	assert.ErrorIs(t, err, ErrInvalidCap)

	_, err = Run(Input{StudentsPerExaminer: 50})
	assert.ErrorIs(t, err, ErrNoShifts)
}

func TestRunHaltsWhenCapacityInfeasible(t *testing.T) {
	res, err := Run(Input{
		Groups: []model.StudyGroup{
			group("G1", "T9", 60, model.GroupGenderMixed, model.GroupSizeAdults),
		},
		Examiners: []model.Examiner{
			examiner("E1", model.ExaminerGenderMale, model.ExaminerTypeAdults),
		},
		Rooms:               rooms("1"),
		Shifts:              twoShifts(),
		StudentsPerExaminer: 50,
	})
	require.NoError(t, err)

	assert.False(t, res.Feasible)
	assert.Empty(t, res.Timetable)
	require.Len(t, res.Violations, 1)
	assert.Contains(t, res.Violations[0], "exceed total examiner capacity")
}

func TestRunExcludesSelfAssignedExaminer(t *testing.T) {
	res, err := Run(Input{
		Groups: []model.StudyGroup{
			group("G1", "T1", 30, model.GroupGenderMixed, model.GroupSizeAdults),
		},
		Examiners: []model.Examiner{
			examiner("T1", model.ExaminerGenderMale, model.ExaminerTypeAdults),
			examiner("E2", model.ExaminerGenderMale, model.ExaminerTypeAdults),
		},
		Rooms:               rooms("1", "2"),
		Shifts:              twoShifts(),
		StudentsPerExaminer: 50,
	})
	require.NoError(t, err)

	require.Len(t, res.Timetable, 1)
	assert.Equal(t, "E2", res.Timetable[0].ExaminerName)
	assert.Equal(t, []string{SuccessMessage}, res.Violations)
}

func TestRunSuccessMessageOnCleanRun(t *testing.T) {
	res, err := Run(Input{
		Groups: []model.StudyGroup{
			group("G1", "T1", 10, model.GroupGenderMixed, model.GroupSizeAdults),
		},
		Examiners: []model.Examiner{
			examiner("E1", model.ExaminerGenderFemale, model.ExaminerTypeAdults),
		},
		Rooms:               rooms("1"),
		Shifts:              twoShifts(),
		StudentsPerExaminer: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{SuccessMessage}, res.Violations)
}

func TestRunIsDeterministic(t *testing.T) {
	in := Input{
		Groups: []model.StudyGroup{
			group("G1", "T1", 20, model.GroupGenderMixed, model.GroupSizeAdults),
			group("G2", "T2", 20, model.GroupGenderMale, model.GroupSizeAdults),
			group("G3", "T3", 15, model.GroupGenderFemale, model.GroupSizeKids),
			group("G4", "T4", 15, model.GroupGenderMixed, model.GroupSizeKids),
		},
		Examiners: []model.Examiner{
			examiner("E1", model.ExaminerGenderMale, model.ExaminerTypeAdults),
			examiner("E2", model.ExaminerGenderFemale, model.ExaminerTypeAdults),
			examiner("E3", model.ExaminerGenderFemale, model.ExaminerTypeKids),
		},
		Rooms:               rooms("1", "2", "3", "4"),
		Shifts:              twoShifts(),
		StudentsPerExaminer: 50,
	}

	first, err := Run(in)
	require.NoError(t, err)
	second, err := Run(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunNeverMutatesInputGroups(t *testing.T) {
	groups := []model.StudyGroup{
		group("small", "T1", 5, model.GroupGenderMixed, model.GroupSizeAdults),
		group("big", "T2", 40, model.GroupGenderMixed, model.GroupSizeAdults),
	}
	in := Input{
		Groups: groups,
		Examiners: []model.Examiner{
			examiner("E1", model.ExaminerGenderMale, model.ExaminerTypeAdults),
		},
		Rooms:               rooms("1"),
		Shifts:              twoShifts(),
		StudentsPerExaminer: 50,
	}

	_, err := Run(in)
	require.NoError(t, err)

	// The matcher sorts copies; caller order must survive.
	assert.Equal(t, "small", groups[0].Name)
	assert.Equal(t, "big", groups[1].Name)
}
