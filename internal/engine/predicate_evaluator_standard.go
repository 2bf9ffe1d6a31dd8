package engine

import (
	"slices"

	"github.com/samber/lo"

	"github.com/debarchito/time-table-generator/internal/model"
)

type standardPredicateEvaluator struct {
	roomTypes      map[string]string
	roomCapacities map[string]uint64
	labFor         map[string]map[string]bool // lab room -> subjects it is equipped for
	subjectTypes   map[string]string
	subjectSizes   map[string]uint64
	groupSizes     map[string]uint64
	blockedTimes   map[string]map[string]bool // day -> times blocked by a break
	timeIndices    map[string]int
	maxConsecutive uint64
	maxDailyLoad   *uint64
}

func newStandardPredicateEvaluator(input model.ModelInput) *standardPredicateEvaluator {
	evaluator := standardPredicateEvaluator{
		roomTypes:      make(map[string]string),
		roomCapacities: make(map[string]uint64),
		labFor:         make(map[string]map[string]bool),
		subjectTypes:   make(map[string]string),
		subjectSizes:   make(map[string]uint64),
		groupSizes:     make(map[string]uint64),
		blockedTimes:   make(map[string]map[string]bool),
		timeIndices:    make(map[string]int),
		maxConsecutive: input.Constraints.MaxConsecutiveClasses,
		maxDailyLoad:   input.Constraints.MaxSlotsPerGroupPerDay,
	}

	for _, room := range input.Rooms {
		evaluator.roomTypes[room.Id] = room.Type
		evaluator.roomCapacities[room.Id] = room.Capacity
		if room.Type == model.KindLab {
			evaluator.labFor[room.Id] = lo.SliceToMap(room.For, func(subject string) (string, bool) {
				return subject, true
			})
		}
	}

	for _, subject := range input.Subjects {
		evaluator.subjectTypes[subject.Id] = subject.Type
		evaluator.subjectSizes[subject.Id] = subject.Size
	}

	for _, group := range input.Groups {
		evaluator.groupSizes[group.Id] = group.Size
	}

	// Expand wildcard breaks over the declared days once, so NoBreak is a
	// plain lookup.
	for _, brk := range input.Slots.Breaks {
		days := []string{brk.Day}
		if brk.Day == "*" {
			days = input.Slots.Days
		}
		for _, day := range days {
			if evaluator.blockedTimes[day] == nil {
				evaluator.blockedTimes[day] = make(map[string]bool)
			}
			evaluator.blockedTimes[day][brk.Time] = true
		}
	}

	for i, time := range input.Slots.Times {
		evaluator.timeIndices[time] = i
	}

	return &evaluator
}

func (evaluator *standardPredicateEvaluator) RoomSubjectCompatible(room, subject string) bool {
	roomType := evaluator.roomTypes[room]
	subjectType := evaluator.subjectTypes[subject]
	if roomType == model.KindLecture && subjectType == model.KindLecture {
		return true
	}
	return roomType == model.KindLab && subjectType == model.KindLab && evaluator.labFor[room][subject]
}

func (evaluator *standardPredicateEvaluator) NoBreak(day, time string) bool {
	return !evaluator.blockedTimes[day][time]
}

func (evaluator *standardPredicateEvaluator) CapacitySufficient(room string, groups []string, subject string) bool {
	occupants := lo.SumBy(groups, func(group string) uint64 {
		return evaluator.groupSizes[group]
	})
	if len(groups) == 0 {
		occupants = evaluator.subjectSizes[subject]
	}

	capacity, ok := evaluator.roomCapacities[room]
	if !ok {
		capacity = model.DefaultRoomCapacity
	}
	return occupants <= capacity
}

func (evaluator *standardPredicateEvaluator) MaxConsecutiveOK(availability *AvailabilityIndex, teacher, day, time string) bool {
	candidate, ok := evaluator.timeIndices[time]
	if !ok {
		panic("time not found")
	}

	occupied := availability.TeacherDayTimes(teacher, day)
	at, _ := slices.BinarySearch(occupied, candidate)
	merged := slices.Insert(slices.Clone(occupied), at, candidate)

	longest, current := 1, 1
	for i := 1; i < len(merged); i++ {
		if merged[i] == merged[i-1]+1 {
			current++
			longest = max(longest, current)
		} else {
			current = 1
		}
	}
	return uint64(longest) <= evaluator.maxConsecutive
}

func (evaluator *standardPredicateEvaluator) MaxDailyLoadOK(availability *AvailabilityIndex, group, day string) bool {
	if evaluator.maxDailyLoad == nil {
		return true
	}
	return availability.GroupDayCount(group, day) < *evaluator.maxDailyLoad
}

func (evaluator *standardPredicateEvaluator) TimeIndex(time string) int {
	index, ok := evaluator.timeIndices[time]
	if !ok {
		panic("time not found")
	}
	return index
}
