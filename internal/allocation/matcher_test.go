package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yasmin-center/tanseeq-backend/internal/model"
)

func TestMatcherRespectsLoadCap(t *testing.T) {
	ledger := newLedger([]model.Examiner{
		examiner("E1", model.ExaminerGenderMale, model.ExaminerTypeAdults),
	})
	groups := []model.StudyGroup{
		group("G1", "T1", 30, model.GroupGenderMixed, model.GroupSizeAdults),
		group("G2", "T2", 25, model.GroupGenderMixed, model.GroupSizeAdults),
	}

	violations := matchGroups(groups, ledger, 50)

	// Only the larger group fits; the second would push the load to 55.
	assert.Equal(t, 30, ledger[0].load)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], `"G2"`)
	assert.LessOrEqual(t, ledger[0].load, 50)
}

func TestMatcherGenderCompatibility(t *testing.T) {
	ledger := newLedger([]model.Examiner{
		examiner("M", model.ExaminerGenderMale, model.ExaminerTypeAdults),
		examiner("F", model.ExaminerGenderFemale, model.ExaminerTypeAdults),
	})
	groups := []model.StudyGroup{
		group("girls", "T1", 20, model.GroupGenderFemale, model.GroupSizeAdults),
		group("boys", "T2", 20, model.GroupGenderMale, model.GroupSizeAdults),
		group("open", "T3", 5, model.GroupGenderMixed, model.GroupSizeAdults),
	}

	violations := matchGroups(groups, ledger, 50)
	assert.Empty(t, violations)

	require.Len(t, ledger[0].groups, 2) // boys + open (mixed goes to lowest load, tie broken by order)
	assert.Equal(t, "boys", ledger[0].groups[0].Name)
	require.Len(t, ledger[1].groups, 1)
	assert.Equal(t, "girls", ledger[1].groups[0].Name)
}

func TestMatcherKidsOnlyExaminerNeverTakesAdultGroup(t *testing.T) {
	ledger := newLedger([]model.Examiner{
		examiner("K", model.ExaminerGenderMale, model.ExaminerTypeKids),
	})
	groups := []model.StudyGroup{
		group("adults", "T1", 10, model.GroupGenderMixed, model.GroupSizeAdults),
	}

	violations := matchGroups(groups, ledger, 50)

	// Adult groups only run against the adult-priority pool, so the kids-only
	// examiner is never even a candidate.
	assert.Empty(t, ledger[0].groups)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], `"adults"`)
}

func TestMatcherKidsPassUsesBothPools(t *testing.T) {
	ledger := newLedger([]model.Examiner{
		examiner("A", model.ExaminerGenderMale, model.ExaminerTypeAdults),
		examiner("K", model.ExaminerGenderMale, model.ExaminerTypeKids),
	})
	groups := []model.StudyGroup{
		group("kids1", "T1", 30, model.GroupGenderMixed, model.GroupSizeKids),
		group("kids2", "T2", 30, model.GroupGenderMixed, model.GroupSizeKids),
	}

	violations := matchGroups(groups, ledger, 50)
	assert.Empty(t, violations)
	assert.Len(t, ledger[0].groups, 1)
	assert.Len(t, ledger[1].groups, 1)
}

func TestMatcherUntypedExaminerGetsNothing(t *testing.T) {
	ledger := newLedger([]model.Examiner{
		examiner("U", model.ExaminerGenderMale, model.ExaminerTypeUnspecified),
	})
	groups := []model.StudyGroup{
		group("adults", "T1", 10, model.GroupGenderMixed, model.GroupSizeAdults),
		group("kids", "T2", 10, model.GroupGenderMixed, model.GroupSizeKids),
	}

	violations := matchGroups(groups, ledger, 50)

	assert.Empty(t, ledger[0].groups)
	assert.Len(t, violations, 2)
}

func TestMatcherReportsUnsizedGroups(t *testing.T) {
	ledger := newLedger([]model.Examiner{
		examiner("E1", model.ExaminerGenderMale, model.ExaminerTypeAdults),
	})
	groups := []model.StudyGroup{
		group("nosize", "T1", 10, model.GroupGenderMixed, model.GroupSizeUnspecified),
	}

	violations := matchGroups(groups, ledger, 50)

	assert.Empty(t, ledger[0].groups)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "no size category")
}

func TestMatcherBestFitPicksLowestLoad(t *testing.T) {
	ledger := newLedger([]model.Examiner{
		examiner("E1", model.ExaminerGenderMale, model.ExaminerTypeAdults),
		examiner("E2", model.ExaminerGenderMale, model.ExaminerTypeAdults),
	})
	groups := []model.StudyGroup{
		group("big", "T1", 40, model.GroupGenderMixed, model.GroupSizeAdults),
		group("mid", "T2", 20, model.GroupGenderMixed, model.GroupSizeAdults),
		group("tiny", "T3", 5, model.GroupGenderMixed, model.GroupSizeAdults),
	}

	violations := matchGroups(groups, ledger, 50)
	assert.Empty(t, violations)

	// big → E1 (tie, first wins), mid → E2, tiny → E2 (20 < 40).
	assert.Equal(t, 40, ledger[0].load)
	assert.Equal(t, 25, ledger[1].load)
}

func TestMatcherDuplicateNamesKeepSeparateLedgers(t *testing.T) {
	ledger := newLedger([]model.Examiner{
		examiner("E1", model.ExaminerGenderMale, model.ExaminerTypeAdults),
		examiner("E1", model.ExaminerGenderMale, model.ExaminerTypeAdults),
	})
	groups := []model.StudyGroup{
		group("a", "T1", 10, model.GroupGenderMixed, model.GroupSizeAdults),
		group("b", "T2", 10, model.GroupGenderMixed, model.GroupSizeAdults),
	}

	violations := matchGroups(groups, ledger, 50)
	assert.Empty(t, violations)
	assert.Len(t, ledger[0].groups, 1)
	assert.Len(t, ledger[1].groups, 1)
}
