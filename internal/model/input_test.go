package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validInput() ModelInput {
	return ModelInput{
		Rooms: []Room{
			{Id: "r1", Type: KindLecture, Capacity: 30},
			{Id: "lab1", Type: KindLab, Capacity: 12, For: []string{"chemistry"}},
		},
		Teachers: []Teacher{
			{Id: "t1", Name: "Curie", Subjects: []string{"chemistry"}},
		},
		Subjects: []Subject{
			{Id: "chemistry", Name: "Chemistry", Type: KindLab},
		},
		Groups: []Group{
			{Id: "g1", Size: 10, Subjects: []string{"chemistry"}},
		},
		Slots: Slots{
			Days:   []string{"Mon", "Tue"},
			Times:  []string{"08:00", "09:00"},
			Breaks: []Break{{Day: "*", Time: "09:00"}},
		},
	}
}

func TestNormalize(t *testing.T) {
	// Arrange
	input := ModelInput{
		Rooms:    []Room{{Id: "r1", Type: KindLecture}},
		Subjects: []Subject{{Id: "math", Type: KindLecture}},
	}

	// Act
	input.Normalize()

	// Assert
	assert.Equal(t, DefaultRoomCapacity, input.Rooms[0].Capacity)
	assert.Equal(t, DefaultClassesPerWeek, input.Subjects[0].ClassesPerWeek)
	assert.Equal(t, DefaultMaxConsecutive, input.Constraints.MaxConsecutiveClasses)
	assert.Nil(t, input.Constraints.MaxSlotsPerGroupPerDay)

	// Declared values survive
	input.Rooms[0].Capacity = 80
	input.Normalize()
	assert.Equal(t, uint64(80), input.Rooms[0].Capacity)
}

func TestValidate(t *testing.T) {
	t.Run("accepts a well-formed input", func(t *testing.T) {
		assert.Nil(t, validInput().Validate())
	})

	scenarios := []struct {
		name   string
		mutate func(*ModelInput)
	}{
		{"room without id", func(input *ModelInput) { input.Rooms[0].Id = "" }},
		{"room with unrecognized type", func(input *ModelInput) { input.Rooms[0].Type = "auditorium" }},
		{"lab equipped for unknown subject", func(input *ModelInput) { input.Rooms[1].For = []string{"alchemy"} }},
		{"subject with unrecognized type", func(input *ModelInput) { input.Subjects[0].Type = "seminar" }},
		{"teacher qualified for unknown subject", func(input *ModelInput) { input.Teachers[0].Subjects = []string{"alchemy"} }},
		{"group requiring unknown subject", func(input *ModelInput) { input.Groups[0].Subjects = []string{"alchemy"} }},
		{"no days", func(input *ModelInput) { input.Slots.Days = nil }},
		{"no times", func(input *ModelInput) { input.Slots.Times = nil }},
		{"break on unknown day", func(input *ModelInput) { input.Slots.Breaks = []Break{{Day: "Sun", Time: "08:00"}} }},
		{"break at unknown time", func(input *ModelInput) { input.Slots.Breaks = []Break{{Day: "Mon", Time: "23:00"}} }},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			// Arrange
			input := validInput()
			scenario.mutate(&input)

			// Act
			err := input.Validate()

			// Assert
			var configurationError ConfigurationError
			assert.ErrorAs(t, err, &configurationError)
		})
	}
}

func TestInputFromJson(t *testing.T) {
	t.Run("decodes, defaults and validates", func(t *testing.T) {
		// Arrange
		document := `{
			"rooms": [
				{"id": "r1", "type": "lecture"},
				{"id": "lab1", "type": "lab", "capacity": 12, "for": ["chemistry"]}
			],
			"teachers": [
				{"id": "t1", "name": "Curie", "subjects": ["chemistry", "math"]}
			],
			"subjects": [
				{"id": "chemistry", "name": "Chemistry", "type": "lab"},
				{"id": "math", "name": "Math", "type": "lecture", "classes_per_week": 3, "size": 25}
			],
			"groups": [
				{"id": "g1", "size": 10, "subjects": ["math"]}
			],
			"slots": {
				"days": ["Mon", "Tue"],
				"times": ["08:00", "09:00"],
				"breaks": [{"day": "*", "time": "09:00"}]
			},
			"constraints": {
				"maximum_consecutive_classes": 3,
				"maximum_slot_per_group_per_day": 4
			}
		}`
		file := filepath.Join(t.TempDir(), "model.json")
		assert.Nil(t, os.WriteFile(file, []byte(document), 0o644))

		// Act
		input, err := InputFromJson(file)

		// Assert
		assert.Nil(t, err)
		assert.Equal(t, DefaultRoomCapacity, input.Rooms[0].Capacity)
		assert.Equal(t, uint64(12), input.Rooms[1].Capacity)
		assert.Equal(t, []string{"chemistry"}, input.Rooms[1].For)
		assert.Equal(t, DefaultClassesPerWeek, input.Subjects[0].ClassesPerWeek)
		assert.Equal(t, uint64(3), input.Subjects[1].ClassesPerWeek)
		assert.Equal(t, uint64(25), input.Subjects[1].Size)
		assert.Equal(t, uint64(3), input.Constraints.MaxConsecutiveClasses)
		if assert.NotNil(t, input.Constraints.MaxSlotsPerGroupPerDay) {
			assert.Equal(t, uint64(4), *input.Constraints.MaxSlotsPerGroupPerDay)
		}
		assert.Equal(t, []Break{{Day: "*", Time: "09:00"}}, input.Slots.Breaks)
	})

	t.Run("surfaces configuration errors", func(t *testing.T) {
		// Arrange
		document := `{
			"rooms": [{"id": "r1", "type": "auditorium"}],
			"subjects": [],
			"teachers": [],
			"slots": {"days": ["Mon"], "times": ["08:00"]}
		}`
		file := filepath.Join(t.TempDir(), "model.json")
		assert.Nil(t, os.WriteFile(file, []byte(document), 0o644))

		// Act
		_, err := InputFromJson(file)

		// Assert
		var configurationError ConfigurationError
		assert.ErrorAs(t, err, &configurationError)
	})

	t.Run("fails on a missing file", func(t *testing.T) {
		_, err := InputFromJson(filepath.Join(t.TempDir(), "absent.json"))
		assert.NotNil(t, err)
	})
}
