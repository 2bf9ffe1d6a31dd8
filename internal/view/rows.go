// Package view turns a solved schedule into the shapes downstream consumers
// want: flat records, per-entity pivot grids, a summary, and CSV/JSON/XLSX
// renderings. It only reshapes data; every invariant lives in the engine.
package view

import (
	"cmp"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/debarchito/time-table-generator/internal/engine"
	"github.com/debarchito/time-table-generator/internal/model"
)

// Row is one flat record of the solved timetable. Subject and Teacher carry
// display names; Room and Groups carry ids, groups comma-joined.
type Row struct {
	Day     string `json:"Day"`
	Time    string `json:"Time"`
	Subject string `json:"Subject"`
	Teacher string `json:"Teacher"`
	Room    string `json:"Room"`
	Groups  string `json:"Groups"`
}

// Flatten resolves ids to display names and orders the rows day-major,
// time-minor following the declared slot order.
func Flatten(schedule engine.Schedule, input model.ModelInput) []Row {
	subjectNames := lo.SliceToMap(input.Subjects, func(subject model.Subject) (string, string) {
		return subject.Id, subject.Name
	})
	teacherNames := lo.SliceToMap(input.Teachers, func(teacher model.Teacher) (string, string) {
		return teacher.Id, teacher.Name
	})
	dayOrder := positionsOf(input.Slots.Days)
	timeOrder := positionsOf(input.Slots.Times)

	rows := lo.Map(schedule, func(session engine.ScheduledSession, _ int) Row {
		return Row{
			Day:     session.Day,
			Time:    session.Time,
			Subject: displayName(subjectNames, session.Subject),
			Teacher: displayName(teacherNames, session.Teacher),
			Room:    session.Room,
			Groups:  strings.Join(session.Groups, ", "),
		}
	})

	slices.SortStableFunc(rows, func(a, b Row) int {
		if comparison := cmp.Compare(dayOrder[a.Day], dayOrder[b.Day]); comparison != 0 {
			return comparison
		}
		return cmp.Compare(timeOrder[a.Time], timeOrder[b.Time])
	})
	return rows
}

// Groups returns the distinct group lists appearing in the rows, sorted.
func Groups(rows []Row) []string {
	return distinct(rows, func(row Row) string { return row.Groups })
}

// Teachers returns the distinct teacher names appearing in the rows, sorted.
func Teachers(rows []Row) []string {
	return distinct(rows, func(row Row) string { return row.Teacher })
}

// Rooms returns the distinct room ids appearing in the rows, sorted.
func Rooms(rows []Row) []string {
	return distinct(rows, func(row Row) string { return row.Room })
}

func distinct(rows []Row, key func(Row) string) []string {
	values := lo.Uniq(lo.Map(rows, func(row Row, _ int) string {
		return key(row)
	}))
	values = lo.Filter(values, func(value string, _ int) bool {
		return value != ""
	})
	slices.Sort(values)
	return values
}

func positionsOf(labels []string) map[string]int {
	positions := make(map[string]int)
	for i, label := range labels {
		positions[label] = i
	}
	return positions
}

func displayName(names map[string]string, id string) string {
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return id
}
