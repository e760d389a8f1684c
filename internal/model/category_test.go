package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategoriesMapUnknownToUnspecified(t *testing.T) {
	assert.Equal(t, GroupGenderMale, ParseGroupGender("  Male "))
	assert.Equal(t, GroupGenderFemale, ParseGroupGender("GIRLS"))
	assert.Equal(t, GroupGenderMixed, ParseGroupGender("mixed"))
	assert.Equal(t, GroupGenderUnspecified, ParseGroupGender("???"))
	assert.Equal(t, GroupGenderUnspecified, ParseGroupGender(""))

	assert.Equal(t, GroupSizeAdults, ParseGroupSize("Adults"))
	assert.Equal(t, GroupSizeKids, ParseGroupSize("kids only"))
	assert.Equal(t, GroupSizeUnspecified, ParseGroupSize("teens"))

	assert.Equal(t, ExaminerGenderMale, ParseExaminerGender("M"))
	assert.Equal(t, ExaminerGenderFemale, ParseExaminerGender("female"))
	assert.Equal(t, ExaminerGenderUnspecified, ParseExaminerGender("x"))

	assert.Equal(t, ExaminerTypeAdults, ParseExaminerType("adult"))
	assert.Equal(t, ExaminerTypeKids, ParseExaminerType("Children"))
	assert.Equal(t, ExaminerTypeUnspecified, ParseExaminerType(""))
}

func TestParseShiftList(t *testing.T) {
	shifts := ParseShiftList("09:00-11:00, 11:00-13:00, bogus,")
	assert.Len(t, shifts, 2)
	assert.Equal(t, "09:00 - 11:00", shifts[0].Label())
	assert.Equal(t, "11:00 - 13:00", shifts[1].Label())

	assert.Empty(t, ParseShiftList(""))
}

func TestRoomLabel(t *testing.T) {
	assert.Equal(t, "12 (Floor 2)", Room{Number: "12", Floor: "Floor 2"}.Label())
	assert.Equal(t, "12", Room{Number: "12"}.Label())
}
