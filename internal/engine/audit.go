package engine

import (
	"github.com/samber/lo"

	"github.com/debarchito/time-table-generator/internal/model"
)

const (
	ConflictTeacher = "teacher"
	ConflictRoom    = "room"
	ConflictGroup   = "group"
)

// Conflict flags one resource booked into more than one session at a slot.
type Conflict struct {
	Day      string
	Time     string
	Kind     string // teacher, room or group
	Resource string
	Sessions []ScheduledSession // every session colliding on the resource
}

// CapacityViolation flags a session whose occupants exceed its room capacity.
type CapacityViolation struct {
	Session   ScheduledSession
	Capacity  uint64
	Occupants uint64
	Overflow  uint64
}

// Auditor verifies an already-built schedule against the double-booking and
// capacity invariants. It is independent of how the schedule was constructed
// and only reads it, so it serves as the correctness oracle for the
// scheduler. Findings are data, never errors.
type Auditor interface {
	// DetectConflicts groups sessions by (day, time) and reports every
	// teacher, room or group id appearing in more than one session of a slot,
	// one conflict per offending resource per slot
	DetectConflicts(schedule Schedule) []Conflict

	// DetectCapacityViolations reports every session whose summed group sizes
	// exceed its room's capacity, with the overflow amount
	DetectCapacityViolations(schedule Schedule) []CapacityViolation
}

func NewAuditor(input model.ModelInput) Auditor {
	return newScheduleAuditor(input)
}

type scheduleAuditor struct {
	roomCapacities map[string]uint64
	groupSizes     map[string]uint64
}

func newScheduleAuditor(input model.ModelInput) *scheduleAuditor {
	return &scheduleAuditor{
		roomCapacities: lo.SliceToMap(input.Rooms, func(room model.Room) (string, uint64) {
			return room.Id, room.Capacity
		}),
		groupSizes: lo.SliceToMap(input.Groups, func(group model.Group) (string, uint64) {
			return group.Id, group.Size
		}),
	}
}

func (auditor *scheduleAuditor) DetectConflicts(schedule Schedule) []Conflict {
	positions := []slot{}
	sessionsAt := make(map[slot]Schedule)
	for _, session := range schedule {
		position := slot{session.Day, session.Time}
		if _, seen := sessionsAt[position]; !seen {
			positions = append(positions, position)
		}
		sessionsAt[position] = append(sessionsAt[position], session)
	}

	conflicts := []Conflict{}
	for _, position := range positions {
		sessions := sessionsAt[position]
		conflicts = append(conflicts, collisions(position, ConflictTeacher, sessions, func(session ScheduledSession) []string {
			return []string{session.Teacher}
		})...)
		conflicts = append(conflicts, collisions(position, ConflictRoom, sessions, func(session ScheduledSession) []string {
			return []string{session.Room}
		})...)
		conflicts = append(conflicts, collisions(position, ConflictGroup, sessions, func(session ScheduledSession) []string {
			return session.Groups
		})...)
	}
	return conflicts
}

// collisions reports each resource id claimed by more than one session of the
// slot. Resources are emitted in first-appearance order so repeated audits of
// the same schedule yield identical reports. Empty ids belong to sessions
// that were never bound to the resource and cannot collide.
func collisions(position slot, kind string, sessions Schedule, resources func(ScheduledSession) []string) []Conflict {
	order := []string{}
	claims := make(map[string]Schedule)
	for _, session := range sessions {
		for _, id := range resources(session) {
			if id == "" {
				continue
			}
			if _, seen := claims[id]; !seen {
				order = append(order, id)
			}
			claims[id] = append(claims[id], session)
		}
	}

	conflicts := []Conflict{}
	for _, id := range order {
		if len(claims[id]) > 1 {
			conflicts = append(conflicts, Conflict{
				Day:      position.day,
				Time:     position.time,
				Kind:     kind,
				Resource: id,
				Sessions: claims[id],
			})
		}
	}
	return conflicts
}

func (auditor *scheduleAuditor) DetectCapacityViolations(schedule Schedule) []CapacityViolation {
	violations := []CapacityViolation{}
	for _, session := range schedule {
		capacity, known := auditor.roomCapacities[session.Room]
		if !known {
			capacity = model.DefaultRoomCapacity
		}

		occupants := lo.SumBy(session.Groups, func(group string) uint64 {
			return auditor.groupSizes[group]
		})

		if occupants > capacity {
			violations = append(violations, CapacityViolation{
				Session:   session,
				Capacity:  capacity,
				Occupants: occupants,
				Overflow:  occupants - capacity,
			})
		}
	}
	return violations
}
