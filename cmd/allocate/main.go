package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/yasmin-center/tanseeq-backend/internal/allocation"
	"github.com/yasmin-center/tanseeq-backend/internal/config"
	"github.com/yasmin-center/tanseeq-backend/internal/model"
	"github.com/yasmin-center/tanseeq-backend/internal/roster"
)

// allocate runs the allocation pipeline once against local roster files and
// prints the reports, without the server, the database, or authentication.
func main() {
	var (
		groupsPath    = flag.String("groups", "", "Path to the study-group roster (.csv or .xlsx)")
		examinersPath = flag.String("examiners", "", "Path to the examiner roster (.csv or .xlsx)")
		roomsPath     = flag.String("rooms", "", "Path to the room roster (.csv or .xlsx)")
		capFlag       = flag.Int("cap", 0, "Students per examiner (default from STUDENTS_PER_EXAMINER)")
		shiftsFlag    = flag.String("shifts", "", "Comma-separated shifts, e.g. 09:00-11:00,11:00-13:00")
	)
	flag.Parse()

	if *groupsPath == "" || *examinersPath == "" || *roomsPath == "" {
		fmt.Fprintln(os.Stderr, "all three roster paths are required: -groups, -examiners, -rooms")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg := config.Load()
	studentsPerExaminer := *capFlag
	if studentsPerExaminer == 0 {
		studentsPerExaminer = cfg.DefaultStudentsPerExaminer
	}
	shiftsRaw := *shiftsFlag
	if shiftsRaw == "" {
		shiftsRaw = cfg.DefaultShifts
	}

	groups, err := parseFile(*groupsPath, roster.ParseGroups)
	if err != nil {
		fatalf("groups roster: %v", err)
	}
	examiners, err := parseFile(*examinersPath, roster.ParseExaminers)
	if err != nil {
		fatalf("examiners roster: %v", err)
	}
	rooms, err := parseFile(*roomsPath, roster.ParseRooms)
	if err != nil {
		fatalf("rooms roster: %v", err)
	}

	result, err := allocation.Run(allocation.Input{
		Groups:              groups,
		Examiners:           examiners,
		Rooms:               rooms,
		Shifts:              model.ParseShiftList(shiftsRaw),
		StudentsPerExaminer: studentsPerExaminer,
	})
	if err != nil {
		fatalf("allocation: %v", err)
	}

	fmt.Println(allocation.FormatCapacityReport(result.Capacity))
	fmt.Println()

	fmt.Println("## Violations ##")
	for _, v := range result.Violations {
		fmt.Println("- " + v)
	}

	if len(result.Timetable) > 0 {
		fmt.Println()
		fmt.Println("## Timetable ##")
		for _, schedule := range result.Timetable {
			fmt.Printf("%s - room %s (%d students)\n", schedule.ExaminerName, schedule.Room.Label(), schedule.StudentCount)
			for _, bucket := range schedule.Shifts {
				fmt.Printf("  %s: %d students\n", bucket.Label, bucket.StudentCount)
				for _, g := range bucket.Groups {
					fmt.Printf("    - %s (%d students)\n", g.Name, g.StudentCount)
				}
			}
		}
	}

	if !result.Feasible {
		os.Exit(1)
	}
}

func parseFile[T any](path string, parse func(r io.Reader, format roster.Format) ([]T, error)) ([]T, error) {
	format, err := roster.DetectFormat(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return parse(f, format)
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
