package roster

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"github.com/yasmin-center/tanseeq-backend/internal/model"
)

func TestDetectFormat(t *testing.T) {
	f, err := DetectFormat("groups.CSV")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = DetectFormat("rooms.xlsx")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	_, err = DetectFormat("rooms.pdf")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParseGroupsCSV(t *testing.T) {
	csvData := strings.Join([]string{
		"Group Name,Teacher Name,Student Count,Group Gender,Group Size",
		"Al-Noor,Ahmed,25,male,adults",
		"Al-Huda,Fatima,not-a-number,female,kids only",
		",ignored,10,mixed,adults",
		"Al-Fajr,Sara,-3,unknown,",
	}, "\n")

	groups, err := ParseGroups(strings.NewReader(csvData), FormatCSV)
	require.NoError(t, err)
	require.Len(t, groups, 3)

	assert.Equal(t, model.StudyGroup{
		Name: "Al-Noor", TeacherName: "Ahmed", StudentCount: 25,
		Gender: model.GroupGenderMale, Size: model.GroupSizeAdults,
	}, groups[0])

	// Malformed count degrades to zero rather than failing the roster.
	assert.Equal(t, 0, groups[1].StudentCount)
	assert.Equal(t, model.GroupSizeKids, groups[1].Size)

	// Negative counts clamp, unknown categories map to unspecified.
	assert.Equal(t, 0, groups[2].StudentCount)
	assert.Equal(t, model.GroupGenderUnspecified, groups[2].Gender)
	assert.Equal(t, model.GroupSizeUnspecified, groups[2].Size)
}

func TestParseGroupsMissingColumn(t *testing.T) {
	csvData := "Group Name,Teacher Name\nAl-Noor,Ahmed\n"

	_, err := ParseGroups(strings.NewReader(csvData), FormatCSV)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "student count")
}

func TestParseExaminersCSV(t *testing.T) {
	csvData := strings.Join([]string{
		"Examiner Name,Gender,Type",
		"Ahmed,male,adults",
		"Mona,female,kids only",
		"Khaled,,",
	}, "\n")

	examiners, err := ParseExaminers(strings.NewReader(csvData), FormatCSV)
	require.NoError(t, err)
	require.Len(t, examiners, 3)

	assert.Equal(t, model.ExaminerTypeAdults, examiners[0].Type)
	assert.Equal(t, model.ExaminerTypeKids, examiners[1].Type)
	assert.Equal(t, model.ExaminerGenderUnspecified, examiners[2].Gender)
	assert.Equal(t, model.ExaminerTypeUnspecified, examiners[2].Type)
}

func TestParseRoomsXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]string{"Room Number", "Floor"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]string{"101", "Floor 1"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]string{"202", "Floor 2"}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	rooms, err := ParseRooms(&buf, FormatXLSX)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "101 (Floor 1)", rooms[0].Label())
	assert.Equal(t, "202", rooms[1].Number)
}

func TestParseEmptyRoster(t *testing.T) {
	_, err := ParseRooms(strings.NewReader("Room Number,Floor\n"), FormatCSV)
	assert.ErrorIs(t, err, ErrEmptyRoster)
}
