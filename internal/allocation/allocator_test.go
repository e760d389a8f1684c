package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yasmin-center/tanseeq-backend/internal/model"
)

func activeLedger(names ...string) []*ledgerEntry {
	ledger := newLedger(nil)
	for _, name := range names {
		e := &ledgerEntry{examiner: examiner(name, model.ExaminerGenderMale, model.ExaminerTypeAdults)}
		e.groups = []model.StudyGroup{group(name+"-g", "T", 10, model.GroupGenderMixed, model.GroupSizeAdults)}
		e.load = 10
		ledger = append(ledger, e)
	}
	return ledger
}

func TestAllocatorRoomShortfallAbortsStage(t *testing.T) {
	ledger := activeLedger("E1", "E2", "E3")

	schedules, violations := allocateRoomsAndShifts(ledger, rooms("1", "2"), twoShifts())

	assert.Nil(t, schedules)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "3 active examiners but only 2 rooms")
}

func TestAllocatorAssignsRoomsFromEndOfList(t *testing.T) {
	ledger := activeLedger("E1", "E2")

	schedules, violations := allocateRoomsAndShifts(ledger, rooms("101", "102", "103"), twoShifts())
	require.Empty(t, violations)
	require.Len(t, schedules, 2)

	// Last-listed room goes to the first active examiner.
	assert.Equal(t, "103", schedules[0].Room.Number)
	assert.Equal(t, "102", schedules[1].Room.Number)
}

func TestAllocatorEachRoomUsedAtMostOnce(t *testing.T) {
	ledger := activeLedger("E1", "E2", "E3")

	schedules, violations := allocateRoomsAndShifts(ledger, rooms("1", "2", "3"), twoShifts())
	require.Empty(t, violations)

	seen := map[string]bool{}
	for _, s := range schedules {
		assert.False(t, seen[s.Room.Number], "room %s assigned twice", s.Room.Number)
		seen[s.Room.Number] = true
	}
	assert.Len(t, seen, 3)
}

func TestAllocatorSkipsInactiveExaminers(t *testing.T) {
	ledger := newLedger([]model.Examiner{
		examiner("idle", model.ExaminerGenderMale, model.ExaminerTypeAdults),
	})
	ledger = append(ledger, activeLedger("busy")...)

	schedules, violations := allocateRoomsAndShifts(ledger, rooms("1"), twoShifts())
	require.Empty(t, violations)
	require.Len(t, schedules, 1)
	assert.Equal(t, "busy", schedules[0].ExaminerName)
}

func TestPackShiftsBalancesGreedily(t *testing.T) {
	groups := []model.StudyGroup{
		group("a", "T", 10, model.GroupGenderMixed, model.GroupSizeAdults),
		group("b", "T", 10, model.GroupGenderMixed, model.GroupSizeAdults),
		group("c", "T", 20, model.GroupGenderMixed, model.GroupSizeAdults),
	}

	buckets := packShifts(groups, twoShifts())
	require.Len(t, buckets, 2)

	// The 20-group lands first in the first bucket, then the two 10-groups
	// even both buckets out at 20.
	assert.Equal(t, 20, buckets[0].StudentCount)
	assert.Equal(t, 20, buckets[1].StudentCount)
	assert.Equal(t, "09:00 - 11:00", buckets[0].Label)
	assert.Equal(t, "11:00 - 13:00", buckets[1].Label)
}

func TestPackShiftsTieGoesToEarliestShift(t *testing.T) {
	groups := []model.StudyGroup{
		group("only", "T", 15, model.GroupGenderMixed, model.GroupSizeAdults),
	}

	buckets := packShifts(groups, twoShifts())
	require.Len(t, buckets, 2)
	assert.Equal(t, 15, buckets[0].StudentCount)
	assert.Empty(t, buckets[1].Groups)
}

func TestPackShiftsSingleShiftTakesEverything(t *testing.T) {
	groups := []model.StudyGroup{
		group("a", "T", 10, model.GroupGenderMixed, model.GroupSizeAdults),
		group("b", "T", 30, model.GroupGenderMixed, model.GroupSizeAdults),
	}

	buckets := packShifts(groups, []model.Shift{{Start: "09:00", End: "13:00"}})
	require.Len(t, buckets, 1)
	assert.Equal(t, 40, buckets[0].StudentCount)
	assert.Len(t, buckets[0].Groups, 2)
}
