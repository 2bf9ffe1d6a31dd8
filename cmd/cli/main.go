package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/debarchito/time-table-generator/internal/engine"
	"github.com/debarchito/time-table-generator/internal/model"
	"github.com/debarchito/time-table-generator/internal/view"
)

var fileNameReplacer = strings.NewReplacer(" ", "_", ".", "", ",", "")

func main() {
	// Define arguments
	filePtr := flag.String("file", "", "Path to the input model file")
	outPtr := flag.String("out", "solution", "Directory where the outputs will be written")
	sortPtr := flag.Bool("sort-by-size", false, "Place requests with larger enrollment first. Reordering changes which requests may be dropped")
	xlsxPtr := flag.Bool("xlsx", false, "Also write the pivot timetables into a single .xlsx workbook")
	flag.Parse()

	// Validate arguments
	if *filePtr == "" {
		log.Fatal("an input file must be specified")
	}

	// Extract input
	input, err := model.InputFromJson(*filePtr)
	if err != nil {
		log.Fatalf("cannot load input file: %v", err)
	}

	// Build timetable
	scheduler := engine.NewScheduler(engine.SchedulerOptions{SortBySize: *sortPtr})
	schedule, unassigned, err := scheduler.Build(input)
	if err != nil {
		log.Fatalf("an error occurred during timetable construction: %v", err)
	}

	rows := view.Flatten(schedule, input)

	if err := os.MkdirAll(*outPtr, 0o755); err != nil {
		log.Fatalf("cannot create output directory: %v", err)
	}

	if err := writeRowsCSV(filepath.Join(*outPtr, "solution.csv"), rows); err != nil {
		log.Fatalf("cannot write solution: %v", err)
	}
	if err := writeJson(filepath.Join(*outPtr, "unassigned.json"), unassigned); err != nil {
		log.Fatalf("cannot write unassigned requests: %v", err)
	}
	fmt.Printf("[+] Placed %v of %v requested sessions.\n", len(schedule), len(schedule)+len(unassigned))
	if len(unassigned) > 0 {
		fmt.Printf("[!] %v requests could not be placed! Check `unassigned.json` for reasons.\n", len(unassigned))
	}

	sheets := []view.Sheet{}
	writePivots := func(directory, prefix string, names []string, build func(string) view.Timetable) {
		if err := os.MkdirAll(filepath.Join(*outPtr, directory), 0o755); err != nil {
			log.Fatalf("cannot create output directory: %v", err)
		}
		for _, name := range names {
			table := build(name)
			base := filepath.Join(*outPtr, directory, fmt.Sprintf("timetable_%v_%v", prefix, fileNameReplacer.Replace(name)))
			if err := writeTimetableCSV(base+".csv", table); err != nil {
				log.Fatalf("cannot write timetable: %v", err)
			}
			if err := writeJson(base+".json", table.Dicts()); err != nil {
				log.Fatalf("cannot write timetable: %v", err)
			}
			sheets = append(sheets, view.Sheet{Name: fmt.Sprintf("%v %v", strings.ToTitle(prefix[:1])+prefix[1:], name), Table: table})
		}
		fmt.Printf("[+] Wrote timetables for %v as both CSV and JSON.\n", directory)
	}

	writePivots("groups", "group", view.Groups(rows), func(group string) view.Timetable {
		return view.ForGroup(rows, input, group)
	})
	writePivots("teachers", "teacher", view.Teachers(rows), func(teacher string) view.Timetable {
		return view.ForTeacher(rows, input, teacher)
	})
	writePivots("rooms", "room", view.Rooms(rows), func(room string) view.Timetable {
		return view.ForRoom(rows, input, room)
	})

	if err := writeJson(filepath.Join(*outPtr, "summary.json"), view.Summarize(rows, input)); err != nil {
		log.Fatalf("cannot write summary: %v", err)
	}
	fmt.Println("[+] Wrote summary as JSON.")

	// Audit the produced schedule
	auditor := engine.NewAuditor(input)
	conflicts := auditor.DetectConflicts(schedule)
	violations := auditor.DetectCapacityViolations(schedule)
	if err := writeJson(filepath.Join(*outPtr, "conflicts.json"), conflicts); err != nil {
		log.Fatalf("cannot write conflicts: %v", err)
	}
	if err := writeJson(filepath.Join(*outPtr, "capacity_violations.json"), violations); err != nil {
		log.Fatalf("cannot write capacity violations: %v", err)
	}

	if len(conflicts) > 0 {
		fmt.Printf("[!] %v conflicts detected! Check `conflicts.json` for reports.\n", len(conflicts))
	} else {
		fmt.Println("[+] No conflicts detected in the timetable(s).")
	}
	if len(violations) > 0 {
		fmt.Printf("[!] %v capacity violations detected! Check `capacity_violations.json` for reports.\n", len(violations))
	} else {
		fmt.Println("[+] No capacity violations detected in the timetable(s).")
	}

	if *xlsxPtr {
		if err := view.WriteWorkbook(filepath.Join(*outPtr, "timetables.xlsx"), sheets); err != nil {
			log.Fatalf("cannot write workbook: %v", err)
		}
		fmt.Println("[+] Wrote timetables as XLSX.")
	}
}

func writeRowsCSV(path string, rows []view.Row) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return view.WriteCSV(file, rows)
}

func writeTimetableCSV(path string, table view.Timetable) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return view.WriteTimetableCSV(file, table)
}

func writeJson(path string, value any) error {
	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, encoded, 0o644)
}
