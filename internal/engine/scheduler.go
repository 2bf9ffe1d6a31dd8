package engine

import "github.com/debarchito/time-table-generator/internal/model"

// ScheduledSession is one placed occurrence of a subject. Sessions are
// appended by the scheduler and never mutated afterwards. Groups may hold
// more than one id for a joint session sharing the teacher and the room.
type ScheduledSession struct {
	EventId string
	Subject string
	Teacher string
	Room    string
	Day     string
	Time    string
	Groups  []string
}

// Schedule is the ordered sequence of placed sessions.
type Schedule []ScheduledSession

// UnassignedRequest pairs a dropped request with why the search gave up:
// a terminal reason plus per-predicate rejection counts over the whole
// search space, kept for diagnostics.
type UnassignedRequest struct {
	Request    SessionRequest
	Reason     string
	Rejections map[string]uint64
}

const (
	ReasonNoQualifiedTeacher = "no qualified teacher"
	ReasonExhaustedSearch    = "exhausted search space"
)

// Rejection tally keys, one per predicate the search runs.
const (
	PredicateNoBreak               = "NoBreak"
	PredicateTeacherFree           = "TeacherFree"
	PredicateGroupFree             = "GroupFree"
	PredicateMaxConsecutive        = "MaxConsecutiveOK"
	PredicateMaxDailyLoad          = "MaxDailyLoadOK"
	PredicateRoomSubjectCompatible = "RoomSubjectCompatible"
	PredicateRoomFree              = "RoomFree"
	PredicateCapacitySufficient    = "CapacitySufficient"
)

type Scheduler interface {
	// Build generates the session requests and places them one by one,
	// returning the schedule together with every request no admissible tuple
	// was found for. |schedule| + |unassigned| always equals the number of
	// generated requests. The only error is a model.ConfigurationError, which
	// precedes any placement.
	Build(input model.ModelInput) (Schedule, []UnassignedRequest, error)
}

type SchedulerOptions struct {
	// SortBySize places requests with larger enrollment first. Reordering
	// changes which requests get dropped, so it is explicit configuration and
	// off by default.
	SortBySize bool
}

func NewScheduler(options SchedulerOptions) Scheduler {
	return newGreedyScheduler(options)
}
