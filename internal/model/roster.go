package model

import "strings"

// StudyGroup is one instructional group that needs a proctor for the session.
type StudyGroup struct {
	Name         string      `json:"name"`
	TeacherName  string      `json:"teacher_name"`
	StudentCount int         `json:"student_count"`
	Gender       GroupGender `json:"gender"`
	Size         GroupSize   `json:"size"`
}

// Examiner is a proctor candidate from the examiner roster.
type Examiner struct {
	Name   string         `json:"name"`
	Gender ExaminerGender `json:"gender"`
	Type   ExaminerType   `json:"type"`
}

// Room is a physical committee location.
type Room struct {
	Number string `json:"number"`
	Floor  string `json:"floor"`
}

// Label renders the room as shown on the final timetable, e.g. "12 (Floor 2)".
func (r Room) Label() string {
	if r.Floor == "" {
		return r.Number
	}
	return r.Number + " (" + r.Floor + ")"
}

// Shift is one configured examination time window.
type Shift struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Label renders the shift as shown on the timetable, e.g. "09:00 - 11:00".
func (s Shift) Label() string {
	return s.Start + " - " + s.End
}

// ParseShift parses a "start-end" pair such as "09:00-11:00".
// Returns false if the value has no separator.
func ParseShift(raw string) (Shift, bool) {
	start, end, ok := strings.Cut(strings.TrimSpace(raw), "-")
	if !ok {
		return Shift{}, false
	}
	return Shift{Start: strings.TrimSpace(start), End: strings.TrimSpace(end)}, true
}

// ParseShiftList parses a comma-separated shift list, e.g.
// "09:00-11:00,11:00-13:00". Malformed entries are skipped.
func ParseShiftList(raw string) []Shift {
	var shifts []Shift
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part == "" {
			continue
		}
		if s, ok := ParseShift(part); ok {
			shifts = append(shifts, s)
		}
	}
	return shifts
}
