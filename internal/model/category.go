package model

import "strings"

// GroupGender classifies the student composition of a study group.
type GroupGender string

const (
	GroupGenderMale        GroupGender = "MALE"
	GroupGenderFemale      GroupGender = "FEMALE"
	GroupGenderMixed       GroupGender = "MIXED"
	GroupGenderUnspecified GroupGender = "UNSPECIFIED"
)

// GroupSize classifies the age bracket of a study group.
type GroupSize string

const (
	GroupSizeAdults      GroupSize = "ADULTS"
	GroupSizeKids        GroupSize = "KIDS"
	GroupSizeUnspecified GroupSize = "UNSPECIFIED"
)

// ExaminerGender is the examiner's own gender.
type ExaminerGender string

const (
	ExaminerGenderMale        ExaminerGender = "MALE"
	ExaminerGenderFemale      ExaminerGender = "FEMALE"
	ExaminerGenderUnspecified ExaminerGender = "UNSPECIFIED"
)

// ExaminerType distinguishes adult-priority examiners from kids-only ones.
type ExaminerType string

const (
	ExaminerTypeAdults      ExaminerType = "ADULTS"
	ExaminerTypeKids        ExaminerType = "KIDS"
	ExaminerTypeUnspecified ExaminerType = "UNSPECIFIED"
)

// normalize lowercases and trims a raw roster cell before enum mapping.
func normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ParseGroupGender maps a raw roster value to a GroupGender.
// Unrecognized values map to GroupGenderUnspecified rather than erroring,
// so one bad cell never blocks a whole roster.
func ParseGroupGender(raw string) GroupGender {
	switch normalize(raw) {
	case "male", "males", "boys":
		return GroupGenderMale
	case "female", "females", "girls":
		return GroupGenderFemale
	case "mixed":
		return GroupGenderMixed
	default:
		return GroupGenderUnspecified
	}
}

// ParseGroupSize maps a raw roster value to a GroupSize.
func ParseGroupSize(raw string) GroupSize {
	switch normalize(raw) {
	case "adults", "adult":
		return GroupSizeAdults
	case "kids", "kids only", "children":
		return GroupSizeKids
	default:
		return GroupSizeUnspecified
	}
}

// ParseExaminerGender maps a raw roster value to an ExaminerGender.
func ParseExaminerGender(raw string) ExaminerGender {
	switch normalize(raw) {
	case "male", "m":
		return ExaminerGenderMale
	case "female", "f":
		return ExaminerGenderFemale
	default:
		return ExaminerGenderUnspecified
	}
}

// ParseExaminerType maps a raw roster value to an ExaminerType.
func ParseExaminerType(raw string) ExaminerType {
	switch normalize(raw) {
	case "adults", "adult":
		return ExaminerTypeAdults
	case "kids", "kids only", "children":
		return ExaminerTypeKids
	default:
		return ExaminerTypeUnspecified
	}
}
