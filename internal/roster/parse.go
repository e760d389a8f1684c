package roster

import (
	"io"
	"strconv"

	"github.com/yasmin-center/tanseeq-backend/internal/model"
)

// Canonical column names, matched case-insensitively against the header row.
const (
	colGroupName    = "group name"
	colTeacherName  = "teacher name"
	colStudentCount = "student count"
	colGroupGender  = "group gender"
	colGroupSize    = "group size"

	colExaminerName   = "examiner name"
	colExaminerGender = "gender"
	colExaminerType   = "type"

	colRoomNumber = "room number"
	colRoomFloor  = "floor"
)

// ParseGroups reads the study-group roster.
func ParseGroups(r io.Reader, format Format) ([]model.StudyGroup, error) {
	rows, err := readRows(r, format)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrEmptyRoster
	}

	index := headerIndex(rows[0])
	if err := requireHeaders(index, colGroupName, colTeacherName, colStudentCount, colGroupGender, colGroupSize); err != nil {
		return nil, err
	}

	var groups []model.StudyGroup
	for _, row := range rows[1:] {
		name := cell(row, index, colGroupName)
		if name == "" {
			continue
		}
		groups = append(groups, model.StudyGroup{
			Name:         name,
			TeacherName:  cell(row, index, colTeacherName),
			StudentCount: parseCount(cell(row, index, colStudentCount)),
			Gender:       model.ParseGroupGender(cell(row, index, colGroupGender)),
			Size:         model.ParseGroupSize(cell(row, index, colGroupSize)),
		})
	}
	if len(groups) == 0 {
		return nil, ErrEmptyRoster
	}
	return groups, nil
}

// ParseExaminers reads the examiner roster.
func ParseExaminers(r io.Reader, format Format) ([]model.Examiner, error) {
	rows, err := readRows(r, format)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrEmptyRoster
	}

	index := headerIndex(rows[0])
	if err := requireHeaders(index, colExaminerName, colExaminerGender, colExaminerType); err != nil {
		return nil, err
	}

	var examiners []model.Examiner
	for _, row := range rows[1:] {
		name := cell(row, index, colExaminerName)
		if name == "" {
			continue
		}
		examiners = append(examiners, model.Examiner{
			Name:   name,
			Gender: model.ParseExaminerGender(cell(row, index, colExaminerGender)),
			Type:   model.ParseExaminerType(cell(row, index, colExaminerType)),
		})
	}
	if len(examiners) == 0 {
		return nil, ErrEmptyRoster
	}
	return examiners, nil
}

// ParseRooms reads the room roster.
func ParseRooms(r io.Reader, format Format) ([]model.Room, error) {
	rows, err := readRows(r, format)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrEmptyRoster
	}

	index := headerIndex(rows[0])
	if err := requireHeaders(index, colRoomNumber, colRoomFloor); err != nil {
		return nil, err
	}

	var rooms []model.Room
	for _, row := range rows[1:] {
		number := cell(row, index, colRoomNumber)
		if number == "" {
			continue
		}
		rooms = append(rooms, model.Room{
			Number: number,
			Floor:  cell(row, index, colRoomFloor),
		})
	}
	if len(rooms) == 0 {
		return nil, ErrEmptyRoster
	}
	return rooms, nil
}

// parseCount treats absent or malformed student counts as zero and clamps
// negatives, matching the upstream roster policy.
func parseCount(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
