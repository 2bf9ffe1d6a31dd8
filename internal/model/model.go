package model

import "fmt"

const (
	KindLecture = "lecture"
	KindLab     = "lab"
)

const (
	DefaultRoomCapacity   uint64 = 50
	DefaultGroupSize      uint64 = 0
	DefaultClassesPerWeek uint64 = 1
	DefaultMaxConsecutive uint64 = 2
)

type Room struct {
	Id       string
	Type     string
	Capacity uint64
	For      []string // subjects a lab is equipped for; empty for lecture rooms
}

type Teacher struct {
	Id       string
	Name     string
	Subjects []string
}

type Subject struct {
	Id             string
	Name           string
	Type           string
	ClassesPerWeek uint64 `mapstructure:"classes_per_week"`
	Size           uint64
}

type Group struct {
	Id       string
	Size     uint64
	Subjects []string
}

// Break blocks a time on one day, or on every day when Day is "*".
type Break struct {
	Day  string
	Time string
}

type Slots struct {
	Days   []string
	Times  []string
	Breaks []Break
}

type Constraints struct {
	MaxConsecutiveClasses  uint64  `mapstructure:"maximum_consecutive_classes"`
	MaxSlotsPerGroupPerDay *uint64 `mapstructure:"maximum_slot_per_group_per_day"` // nil means unlimited
}

// ConfigurationError signals a structurally invalid input. It is the only
// fatal error the engine produces and always precedes any placement.
type ConfigurationError struct {
	Entity string
	Id     string
	Reason string
}

func (err ConfigurationError) Error() string {
	if err.Id == "" {
		return fmt.Sprintf("invalid %v: %v", err.Entity, err.Reason)
	}
	return fmt.Sprintf("invalid %v %q: %v", err.Entity, err.Id, err.Reason)
}
