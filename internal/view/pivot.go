package view

import "github.com/debarchito/time-table-generator/internal/model"

// Cell is one pivot-grid entry.
type Cell struct {
	Subject string `json:"subject"`
	Teacher string `json:"teacher"`
	Room    string `json:"room"`
	Group   string `json:"group"`
}

// Timetable is a grid view of the schedule: one row per declared day, one
// column per declared time. A nil cell is a free slot.
type Timetable struct {
	Days  []string
	Times []string
	Cells map[string]map[string]*Cell // day -> time -> cell
}

// ForGroup pivots the rows whose group list equals the given one.
func ForGroup(rows []Row, input model.ModelInput, group string) Timetable {
	return pivot(rows, input, func(row Row) bool {
		return row.Groups == group
	})
}

// ForTeacher pivots the rows taught by the given teacher.
func ForTeacher(rows []Row, input model.ModelInput, teacher string) Timetable {
	return pivot(rows, input, func(row Row) bool {
		return row.Teacher == teacher
	})
}

// ForRoom pivots the rows hosted by the given room.
func ForRoom(rows []Row, input model.ModelInput, room string) Timetable {
	return pivot(rows, input, func(row Row) bool {
		return row.Room == room
	})
}

// pivot keeps the first matching row per (day, time). The scheduler never
// books a resource twice into one slot, so later matches only occur on
// schedules that would fail the audit anyway.
func pivot(rows []Row, input model.ModelInput, match func(Row) bool) Timetable {
	table := Timetable{
		Days:  input.Slots.Days,
		Times: input.Slots.Times,
		Cells: make(map[string]map[string]*Cell),
	}
	for _, day := range table.Days {
		table.Cells[day] = make(map[string]*Cell)
	}

	for _, row := range rows {
		if !match(row) {
			continue
		}
		if table.Cells[row.Day][row.Time] != nil {
			continue
		}
		table.Cells[row.Day][row.Time] = &Cell{
			Subject: row.Subject,
			Teacher: row.Teacher,
			Room:    row.Room,
			Group:   row.Groups,
		}
	}
	return table
}

// Dicts renders the grid as one record per day, keyed "Day" plus one key per
// declared time, mirroring the shape of the JSON timetable files.
func (table Timetable) Dicts() []map[string]any {
	records := []map[string]any{}
	for _, day := range table.Days {
		record := map[string]any{"Day": day}
		for _, time := range table.Times {
			var value any
			if cell := table.Cells[day][time]; cell != nil {
				value = cell
			}
			record[time] = value
		}
		records = append(records, record)
	}
	return records
}
