package view

import (
	"slices"

	"github.com/samber/lo"

	"github.com/debarchito/time-table-generator/internal/model"
)

type Stats struct {
	ClassesPerGroup   map[string]int `json:"classes_per_group"`
	ClassesPerTeacher map[string]int `json:"classes_per_teacher"`
	ClassesPerRoom    map[string]int `json:"classes_per_room"`
	ClassesPerDay     map[string]int `json:"classes_per_day"`
}

type Summary struct {
	TotalClasses   int               `json:"total_classes"`
	Groups         []string          `json:"groups"`
	Teachers       []string          `json:"teachers"`
	Rooms          []string          `json:"rooms"`
	Days           []string          `json:"days"`
	Times          []string          `json:"times"`
	Subjects       []string          `json:"subjects"`
	Stats          Stats             `json:"stats"`
	RoomCapacities map[string]uint64 `json:"room_capacities"`
	GroupSizes     map[string]uint64 `json:"group_sizes"`
}

// Summarize aggregates the flat rows into headline counts plus the declared
// capacities and sizes the counts should be read against.
func Summarize(rows []Row, input model.ModelInput) Summary {
	subjects := distinct(rows, func(row Row) string { return row.Subject })
	days := lo.Filter(input.Slots.Days, func(day string, _ int) bool {
		return lo.SomeBy(rows, func(row Row) bool { return row.Day == day })
	})
	times := distinct(rows, func(row Row) string { return row.Time })
	slices.Sort(times)

	return Summary{
		TotalClasses: len(rows),
		Groups:       Groups(rows),
		Teachers:     Teachers(rows),
		Rooms:        Rooms(rows),
		Days:         days,
		Times:        times,
		Subjects:     subjects,
		Stats: Stats{
			ClassesPerGroup:   lo.CountValuesBy(rows, func(row Row) string { return row.Groups }),
			ClassesPerTeacher: lo.CountValuesBy(rows, func(row Row) string { return row.Teacher }),
			ClassesPerRoom:    lo.CountValuesBy(rows, func(row Row) string { return row.Room }),
			ClassesPerDay:     lo.CountValuesBy(rows, func(row Row) string { return row.Day }),
		},
		RoomCapacities: lo.SliceToMap(input.Rooms, func(room model.Room) (string, uint64) {
			return room.Id, room.Capacity
		}),
		GroupSizes: lo.SliceToMap(input.Groups, func(group model.Group) (string, uint64) {
			return group.Id, group.Size
		}),
	}
}
