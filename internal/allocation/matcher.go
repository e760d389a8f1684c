package allocation

import (
	"fmt"
	"sort"

	"github.com/yasmin-center/tanseeq-backend/internal/model"
)

// ledgerEntry tracks one examiner's running assignment state. Entries are
// index-addressed, one per examiner roster row, so two examiners who happen to
// share a name keep separate ledgers.
type ledgerEntry struct {
	examiner model.Examiner
	groups   []model.StudyGroup
	load     int
}

func newLedger(examiners []model.Examiner) []*ledgerEntry {
	ledger := make([]*ledgerEntry, len(examiners))
	for i, e := range examiners {
		ledger[i] = &ledgerEntry{examiner: e}
	}
	return ledger
}

// matchGroups runs the two matching passes over the ledger and returns the
// violation lines for groups it could not place. The ledger is mutated in
// place; a group's placement is never revisited.
func matchGroups(groups []model.StudyGroup, ledger []*ledgerEntry, studentsPerExaminer int) []string {
	var adultGroups, kidsGroups []model.StudyGroup
	var violations []string

	for _, g := range groups {
		switch g.Size {
		case model.GroupSizeAdults:
			adultGroups = append(adultGroups, g)
		case model.GroupSizeKids:
			kidsGroups = append(kidsGroups, g)
		default:
			// No size category means no pass can take the group. Surfaced as a
			// warning so the roster row is not silently lost.
			violations = append(violations,
				fmt.Sprintf("group %q has no size category and was not scheduled", g.Name))
		}
	}

	var adultPool, kidsPool []*ledgerEntry
	for _, entry := range ledger {
		switch entry.examiner.Type {
		case model.ExaminerTypeAdults:
			adultPool = append(adultPool, entry)
		case model.ExaminerTypeKids:
			kidsPool = append(kidsPool, entry)
		}
	}

	// Largest-first packing. Stable so equal-sized groups keep roster order.
	sortBySizeDesc(adultGroups)
	sortBySizeDesc(kidsGroups)

	// Pass 1: adult groups may only go to adult-priority examiners.
	var unplaced []model.StudyGroup
	for _, g := range adultGroups {
		if !placeBestFit(g, adultPool, studentsPerExaminer) {
			unplaced = append(unplaced, g)
		}
	}

	// Pass 2: kids groups may go to any typed examiner.
	allPool := append(append([]*ledgerEntry{}, adultPool...), kidsPool...)
	for _, g := range kidsGroups {
		if !placeBestFit(g, allPool, studentsPerExaminer) {
			unplaced = append(unplaced, g)
		}
	}

	for _, g := range unplaced {
		violations = append(violations,
			fmt.Sprintf("could not assign group %q: no examiner satisfies the gender, type, capacity, and self-assignment rules", g.Name))
	}
	return violations
}

func sortBySizeDesc(groups []model.StudyGroup) {
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].StudentCount > groups[j].StudentCount
	})
}

// placeBestFit assigns the group to the eligible examiner with the strictly
// lowest current load. Ties go to the earliest candidate. Returns false when
// no candidate is eligible.
func placeBestFit(g model.StudyGroup, candidates []*ledgerEntry, studentsPerExaminer int) bool {
	var best *ledgerEntry
	for _, entry := range candidates {
		if !eligible(g, entry, studentsPerExaminer) {
			continue
		}
		if best == nil || entry.load < best.load {
			best = entry
		}
	}
	if best == nil {
		return false
	}
	best.groups = append(best.groups, g)
	best.load += g.StudentCount
	return true
}

func eligible(g model.StudyGroup, entry *ledgerEntry, studentsPerExaminer int) bool {
	e := entry.examiner

	// A teacher never proctors their own group.
	if g.TeacherName == e.Name {
		return false
	}

	genderOK := g.Gender == model.GroupGenderMixed ||
		(g.Gender == model.GroupGenderMale && e.Gender == model.ExaminerGenderMale) ||
		(g.Gender == model.GroupGenderFemale && e.Gender == model.ExaminerGenderFemale)
	if !genderOK {
		return false
	}

	if entry.load+g.StudentCount > studentsPerExaminer {
		return false
	}

	// Kids-only examiners cannot take adult groups.
	if e.Type == model.ExaminerTypeKids && g.Size == model.GroupSizeAdults {
		return false
	}

	return true
}
