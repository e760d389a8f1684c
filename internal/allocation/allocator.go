package allocation

import (
	"fmt"

	"github.com/yasmin-center/tanseeq-backend/internal/model"
)

// allocateRoomsAndShifts gives each active examiner one room and balances
// their groups across the configured shifts. If there are fewer rooms than
// active examiners the whole stage aborts with a single violation; the
// matcher's assignments stay intact either way.
func allocateRoomsAndShifts(ledger []*ledgerEntry, rooms []model.Room, shifts []model.Shift) ([]model.ExaminerSchedule, []string) {
	var active []*ledgerEntry
	for _, entry := range ledger {
		if len(entry.groups) > 0 {
			active = append(active, entry)
		}
	}
	if len(active) == 0 {
		return nil, nil
	}

	if len(active) > len(rooms) {
		return nil, []string{fmt.Sprintf(
			"room allocation failed: %d active examiners but only %d rooms available",
			len(active), len(rooms))}
	}

	schedules := make([]model.ExaminerSchedule, 0, len(active))
	nextRoom := len(rooms) - 1 // Rooms are handed out from the end of the list.
	for _, entry := range active {
		schedules = append(schedules, model.ExaminerSchedule{
			ExaminerName: entry.examiner.Name,
			Room:         rooms[nextRoom],
			Shifts:       packShifts(entry.groups, shifts),
			StudentCount: entry.load,
		})
		nextRoom--
	}
	return schedules, nil
}

// packShifts spreads an examiner's groups across the shifts, largest group
// first, always into the currently lightest bucket. Ties go to the
// earliest-declared shift.
func packShifts(groups []model.StudyGroup, shifts []model.Shift) []model.ShiftBucket {
	buckets := make([]model.ShiftBucket, len(shifts))
	for i, s := range shifts {
		buckets[i] = model.ShiftBucket{Label: s.Label()}
	}

	sorted := append([]model.StudyGroup{}, groups...)
	sortBySizeDesc(sorted)

	for _, g := range sorted {
		lightest := 0
		for i := 1; i < len(buckets); i++ {
			if buckets[i].StudentCount < buckets[lightest].StudentCount {
				lightest = i
			}
		}
		buckets[lightest].Groups = append(buckets[lightest].Groups, g)
		buckets[lightest].StudentCount += g.StudentCount
	}
	return buckets
}
