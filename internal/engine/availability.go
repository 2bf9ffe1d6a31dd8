package engine

import "slices"

type slot struct {
	day  string
	time string
}

// AvailabilityIndex tracks the occupied (day, time) pairs of every teacher,
// room and group with O(1) membership checks, plus the per-day occupancy the
// consecutive-run and daily-load predicates need. It is exclusively owned and
// mutated by the scheduler during a single solve pass.
type AvailabilityIndex struct {
	teacherBusy map[string]map[slot]bool
	roomBusy    map[string]map[slot]bool
	groupBusy   map[string]map[slot]bool

	teacherDayTimes map[[2]string][]int // sorted occupied time indices per (teacher, day)
	groupDayCount   map[[2]string]uint64
}

func NewAvailabilityIndex() *AvailabilityIndex {
	return &AvailabilityIndex{
		teacherBusy:     make(map[string]map[slot]bool),
		roomBusy:        make(map[string]map[slot]bool),
		groupBusy:       make(map[string]map[slot]bool),
		teacherDayTimes: make(map[[2]string][]int),
		groupDayCount:   make(map[[2]string]uint64),
	}
}

func (index *AvailabilityIndex) TeacherFree(teacher, day, time string) bool {
	return !index.teacherBusy[teacher][slot{day, time}]
}

func (index *AvailabilityIndex) RoomFree(room, day, time string) bool {
	return !index.roomBusy[room][slot{day, time}]
}

func (index *AvailabilityIndex) GroupFree(group, day, time string) bool {
	return !index.groupBusy[group][slot{day, time}]
}

// TeacherDayTimes returns the sorted time indices already occupied by the
// teacher on the day. Callers must not mutate the returned slice.
func (index *AvailabilityIndex) TeacherDayTimes(teacher, day string) []int {
	return index.teacherDayTimes[[2]string{teacher, day}]
}

// GroupDayCount returns how many sessions the group already has on the day.
func (index *AvailabilityIndex) GroupDayCount(group, day string) uint64 {
	return index.groupDayCount[[2]string{group, day}]
}

// Occupy marks the session's slot as taken for its teacher, its room and all
// of its groups atomically. timeIndex is the session time's position in the
// declared time order.
func (index *AvailabilityIndex) Occupy(session ScheduledSession, timeIndex int) {
	position := slot{session.Day, session.Time}
	occupy(index.teacherBusy, session.Teacher, position)
	occupy(index.roomBusy, session.Room, position)
	for _, group := range session.Groups {
		occupy(index.groupBusy, group, position)
		index.groupDayCount[[2]string{group, session.Day}]++
	}

	key := [2]string{session.Teacher, session.Day}
	times := index.teacherDayTimes[key]
	at, _ := slices.BinarySearch(times, timeIndex)
	index.teacherDayTimes[key] = slices.Insert(times, at, timeIndex)
}

func occupy(busy map[string]map[slot]bool, id string, position slot) {
	if busy[id] == nil {
		busy[id] = make(map[slot]bool)
	}
	busy[id][position] = true
}
