package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/samber/lo"

	"github.com/debarchito/time-table-generator/internal/engine"
	"github.com/debarchito/time-table-generator/internal/model"
)

// The benchmark solves a ladder of synthetically generated instances and
// reports placement rate and wall time per instance as CSV. Instances are
// built deterministically from their dimensions, so repeated runs measure the
// same workloads.

type benchmarkCase struct {
	Name             string
	Groups           int
	SubjectsPerGroup int
	Teachers         int
	Rooms            int
	Days             int
	Times            int
}

var cases = []benchmarkCase{
	{Name: "tiny", Groups: 2, SubjectsPerGroup: 3, Teachers: 3, Rooms: 2, Days: 5, Times: 4},
	{Name: "small", Groups: 5, SubjectsPerGroup: 5, Teachers: 8, Rooms: 4, Days: 5, Times: 6},
	{Name: "medium", Groups: 15, SubjectsPerGroup: 7, Teachers: 20, Rooms: 10, Days: 5, Times: 8},
	{Name: "large", Groups: 40, SubjectsPerGroup: 8, Teachers: 50, Rooms: 25, Days: 6, Times: 8},
	{Name: "huge", Groups: 100, SubjectsPerGroup: 10, Teachers: 120, Rooms: 60, Days: 6, Times: 10},
}

func main() {
	outPtr := flag.String("out", "benchmark.csv", "Path to the CSV report")
	flag.Parse()

	file, err := os.Create(*outPtr)
	if err != nil {
		log.Fatalf("cannot create report: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	header := []string{"case", "requests", "placed", "dropped", "conflicts", "duration_ms"}
	if err := writer.Write(header); err != nil {
		log.Fatalf("cannot write report: %v", err)
	}

	scheduler := engine.NewScheduler(engine.SchedulerOptions{})
	for _, benchmark := range cases {
		input := buildInput(benchmark)

		start := time.Now()
		schedule, unassigned, err := scheduler.Build(input)
		duration := time.Since(start)
		if err != nil {
			log.Fatalf("cannot build %v: %v", benchmark.Name, err)
		}

		conflicts := engine.NewAuditor(input).DetectConflicts(schedule)

		record := []string{
			benchmark.Name,
			fmt.Sprint(len(schedule) + len(unassigned)),
			fmt.Sprint(len(schedule)),
			fmt.Sprint(len(unassigned)),
			fmt.Sprint(len(conflicts)),
			fmt.Sprint(duration.Milliseconds()),
		}
		if err := writer.Write(record); err != nil {
			log.Fatalf("cannot write report: %v", err)
		}

		fmt.Printf("%v: %v placed, %v dropped in %v\n", benchmark.Name, len(schedule), len(unassigned), duration)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Fatalf("cannot write report: %v", err)
	}
}

// buildInput expands the case dimensions into a model: subjects are shared
// round-robin across groups, every teacher covers a fixed slice of subjects
// and room capacities alternate so the capacity-ordered search is exercised.
func buildInput(benchmark benchmarkCase) model.ModelInput {
	totalSubjects := benchmark.Groups * benchmark.SubjectsPerGroup

	subjects := lo.RepeatBy(totalSubjects, func(i int) model.Subject {
		return model.Subject{
			Id:   fmt.Sprintf("subject_%v", i),
			Name: fmt.Sprintf("Subject %v", i),
			Type: model.KindLecture,
		}
	})

	groups := lo.RepeatBy(benchmark.Groups, func(i int) model.Group {
		required := lo.RepeatBy(benchmark.SubjectsPerGroup, func(j int) string {
			return subjects[(i*benchmark.SubjectsPerGroup+j)%totalSubjects].Id
		})
		return model.Group{
			Id:       fmt.Sprintf("group_%v", i),
			Size:     uint64(20 + i%30),
			Subjects: required,
		}
	})

	teachers := lo.RepeatBy(benchmark.Teachers, func(i int) model.Teacher {
		coverage := max(totalSubjects/benchmark.Teachers, 1) + 1
		taught := lo.RepeatBy(coverage, func(j int) string {
			return subjects[(i*coverage+j)%totalSubjects].Id
		})
		return model.Teacher{
			Id:       fmt.Sprintf("teacher_%v", i),
			Name:     fmt.Sprintf("Teacher %v", i),
			Subjects: lo.Uniq(taught),
		}
	})

	rooms := lo.RepeatBy(benchmark.Rooms, func(i int) model.Room {
		return model.Room{
			Id:       fmt.Sprintf("room_%v", i),
			Type:     model.KindLecture,
			Capacity: uint64(30 + (i%4)*20),
		}
	})

	return model.ModelInput{
		Rooms:    rooms,
		Teachers: teachers,
		Subjects: subjects,
		Groups:   groups,
		Slots: model.Slots{
			Days: lo.RepeatBy(benchmark.Days, func(i int) string {
				return fmt.Sprintf("day_%v", i)
			}),
			Times: lo.RepeatBy(benchmark.Times, func(i int) string {
				return fmt.Sprintf("time_%v", i)
			}),
		},
	}
}
