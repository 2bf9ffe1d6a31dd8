package engine

import "github.com/debarchito/time-table-generator/internal/model"

// PredicateEvaluator holds the pure admissibility checks the scheduler runs
// against every candidate placement. Predicates never mutate state and never
// fail with an error: an inadmissible candidate simply makes the scheduler
// try the next one.
type PredicateEvaluator interface {
	// Checks whether the room can host the subject: matching kinds, and labs
	// must additionally be equipped for the subject
	RoomSubjectCompatible(room, subject string) bool

	// Checks whether (day, time) is not blocked by a break window (exact day
	// or wildcard)
	NoBreak(day, time string) bool

	// Checks whether the occupants fit the room's capacity. Occupants are the
	// summed sizes of the groups when known, else the subject's declared
	// enrollment
	CapacitySufficient(room string, groups []string, subject string) bool

	// Checks whether placing the teacher at (day, time) keeps their longest
	// consecutive run on that day within the configured maximum
	MaxConsecutiveOK(availability *AvailabilityIndex, teacher, day, time string) bool

	// Checks whether the group is still below its configured daily session
	// maximum; an unconfigured maximum never rejects
	MaxDailyLoadOK(availability *AvailabilityIndex, group, day string) bool

	// Returns the time's position in the declared time order
	TimeIndex(time string) int
}

func NewPredicateEvaluator(input model.ModelInput) PredicateEvaluator {
	return newStandardPredicateEvaluator(input)
}
