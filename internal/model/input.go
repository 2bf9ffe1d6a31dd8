package model

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

type ModelInput struct {
	Rooms       []Room
	Teachers    []Teacher
	Subjects    []Subject
	Groups      []Group
	Slots       Slots
	Constraints Constraints
}

// InputFromJson loads, defaults and validates a declarative model file. The
// returned input is fully populated: no downstream consumer re-derives
// defaults.
func InputFromJson(file string) (ModelInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return ModelInput{}, err
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return ModelInput{}, err
	}

	var input ModelInput
	if err := mapstructure.Decode(inputJson, &input); err != nil {
		return ModelInput{}, fmt.Errorf("cannot decode input: %w", err)
	}

	input.Normalize()
	if err := input.Validate(); err != nil {
		return ModelInput{}, err
	}

	return input, nil
}

// Normalize applies the documented defaults in one pass: room capacity 50,
// subject weekly occurrences 1, max consecutive classes 2. Group size
// defaults to 0, which is already the zero value.
func (input *ModelInput) Normalize() {
	for i := range input.Rooms {
		if input.Rooms[i].Capacity == 0 {
			input.Rooms[i].Capacity = DefaultRoomCapacity
		}
	}
	for i := range input.Subjects {
		if input.Subjects[i].ClassesPerWeek == 0 {
			input.Subjects[i].ClassesPerWeek = DefaultClassesPerWeek
		}
	}
	if input.Constraints.MaxConsecutiveClasses == 0 {
		input.Constraints.MaxConsecutiveClasses = DefaultMaxConsecutive
	}
}

// Validate checks structural soundness after defaulting. It returns a
// ConfigurationError describing the first problem found.
func (input ModelInput) Validate() error {
	if len(input.Slots.Days) == 0 {
		return ConfigurationError{Entity: "slots", Reason: "no days declared"}
	}
	if len(input.Slots.Times) == 0 {
		return ConfigurationError{Entity: "slots", Reason: "no times declared"}
	}

	subjectIds := lo.Map(input.Subjects, func(subject Subject, _ int) string {
		return subject.Id
	})

	for _, room := range input.Rooms {
		if room.Id == "" {
			return ConfigurationError{Entity: "room", Reason: "missing id"}
		}
		if room.Type != KindLecture && room.Type != KindLab {
			return ConfigurationError{Entity: "room", Id: room.Id, Reason: fmt.Sprintf("unrecognized type %q", room.Type)}
		}
		for _, subject := range room.For {
			if !slices.Contains(subjectIds, subject) {
				return ConfigurationError{Entity: "room", Id: room.Id, Reason: fmt.Sprintf("unknown subject %q", subject)}
			}
		}
	}

	for _, subject := range input.Subjects {
		if subject.Id == "" {
			return ConfigurationError{Entity: "subject", Reason: "missing id"}
		}
		if subject.Type != KindLecture && subject.Type != KindLab {
			return ConfigurationError{Entity: "subject", Id: subject.Id, Reason: fmt.Sprintf("unrecognized type %q", subject.Type)}
		}
	}

	for _, teacher := range input.Teachers {
		if teacher.Id == "" {
			return ConfigurationError{Entity: "teacher", Reason: "missing id"}
		}
		for _, subject := range teacher.Subjects {
			if !slices.Contains(subjectIds, subject) {
				return ConfigurationError{Entity: "teacher", Id: teacher.Id, Reason: fmt.Sprintf("unknown subject %q", subject)}
			}
		}
	}

	for _, group := range input.Groups {
		if group.Id == "" {
			return ConfigurationError{Entity: "group", Reason: "missing id"}
		}
		for _, subject := range group.Subjects {
			if !slices.Contains(subjectIds, subject) {
				return ConfigurationError{Entity: "group", Id: group.Id, Reason: fmt.Sprintf("unknown subject %q", subject)}
			}
		}
	}

	for _, brk := range input.Slots.Breaks {
		if brk.Day != "*" && !slices.Contains(input.Slots.Days, brk.Day) {
			return ConfigurationError{Entity: "break", Reason: fmt.Sprintf("unknown day %q", brk.Day)}
		}
		if !slices.Contains(input.Slots.Times, brk.Time) {
			return ConfigurationError{Entity: "break", Reason: fmt.Sprintf("unknown time %q", brk.Time)}
		}
	}

	return nil
}
