package service

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"github.com/yasmin-center/tanseeq-backend/internal/allocation"
	"github.com/yasmin-center/tanseeq-backend/internal/model"
)

const timetableSheet = "Timetable"

// ExportTimetable renders a stored run as an XLSX workbook: one timetable
// sheet plus the capacity and violation reports. The caller owns closing the
// returned file.
func ExportTimetable(run *model.ScheduleRun) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(0), timetableSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := []interface{}{"Examiner", "Room", "Shift", "Assigned Groups", "Students"}
	if err := f.SetSheetRow(timetableSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetCellStyle(timetableSheet, "A1", "E1", bold)
	}

	rowNum := 2
	for _, schedule := range run.Timetable {
		for i, bucket := range schedule.Shifts {
			row := []interface{}{"", "", bucket.Label, formatGroupList(bucket.Groups), bucket.StudentCount}
			if i == 0 {
				row[0] = schedule.ExaminerName
				row[1] = schedule.Room.Label()
			}
			cell := fmt.Sprintf("A%d", rowNum)
			if err := f.SetSheetRow(timetableSheet, cell, &row); err != nil {
				return nil, fmt.Errorf("write row %d: %w", rowNum, err)
			}
			rowNum++
		}
	}

	if err := writeReportSheet(f, run); err != nil {
		return nil, err
	}
	return f, nil
}

// writeReportSheet adds the capacity report and violation lines on a second
// sheet so an exported workbook is self-contained.
func writeReportSheet(f *excelize.File, run *model.ScheduleRun) error {
	const sheet = "Reports"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create report sheet: %w", err)
	}

	rowNum := 1
	writeLine := func(line string) error {
		cell := fmt.Sprintf("A%d", rowNum)
		rowNum++
		return f.SetCellValue(sheet, cell, line)
	}

	for _, line := range strings.Split(allocation.FormatCapacityReport(run.Capacity), "\n") {
		if err := writeLine(line); err != nil {
			return err
		}
	}
	if err := writeLine(""); err != nil {
		return err
	}
	for _, line := range run.Violations {
		if err := writeLine(line); err != nil {
			return err
		}
	}
	return nil
}

func formatGroupList(groups []model.StudyGroup) string {
	if len(groups) == 0 {
		return "-"
	}
	parts := make([]string, len(groups))
	for i, g := range groups {
		parts[i] = fmt.Sprintf("%s (%d students)", g.Name, g.StudentCount)
	}
	return strings.Join(parts, "; ")
}
