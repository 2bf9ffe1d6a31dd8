package view

import (
	"encoding/csv"
	"encoding/json"
	"io"
)

var csvHeader = []string{"Day", "Time", "Subject", "Teacher", "Room", "Groups"}

// WriteCSV writes the flat rows with a fixed header.
func WriteCSV(writer io.Writer, rows []Row) error {
	csvWriter := csv.NewWriter(writer)
	if err := csvWriter.Write(csvHeader); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{row.Day, row.Time, row.Subject, row.Teacher, row.Room, row.Groups}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

// WriteTimetableCSV writes a pivot grid: one line per day, one column per
// declared time, occupied cells rendered as compact JSON.
func WriteTimetableCSV(writer io.Writer, table Timetable) error {
	csvWriter := csv.NewWriter(writer)
	if err := csvWriter.Write(append([]string{"Day"}, table.Times...)); err != nil {
		return err
	}

	for _, day := range table.Days {
		record := []string{day}
		for _, time := range table.Times {
			cell := table.Cells[day][time]
			if cell == nil {
				record = append(record, "")
				continue
			}
			encoded, err := json.Marshal(cell)
			if err != nil {
				return err
			}
			record = append(record, string(encoded))
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}
	csvWriter.Flush()
	return csvWriter.Error()
}
