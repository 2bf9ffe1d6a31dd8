package engine

import (
	"cmp"
	"slices"

	"github.com/debarchito/time-table-generator/internal/model"
)

// greedyScheduler is a single-pass first-fit constructor: requests are placed
// in order and never revisited, so it may leave some requests unplaced. It
// searches teachers in declared order, (day, time) pairs day-major and
// time-minor in declared order, and rooms smallest-first so large rooms stay
// free for large groups.
type greedyScheduler struct {
	options SchedulerOptions
}

func newGreedyScheduler(options SchedulerOptions) *greedyScheduler {
	return &greedyScheduler{options: options}
}

func (scheduler *greedyScheduler) Build(input model.ModelInput) (Schedule, []UnassignedRequest, error) {
	// Normalize defaults on copies so the caller's entities stay untouched.
	input.Rooms = slices.Clone(input.Rooms)
	input.Subjects = slices.Clone(input.Subjects)
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, nil, err
	}

	evaluator := NewPredicateEvaluator(input)
	availability := NewAvailabilityIndex()
	requests := GenerateRequests(input)

	if scheduler.options.SortBySize {
		requests = sortBySize(requests, input)
	}

	rooms := slices.Clone(input.Rooms)
	slices.SortStableFunc(rooms, func(a, b model.Room) int {
		return cmp.Compare(a.Capacity, b.Capacity)
	})

	schedule := Schedule{}
	unassigned := []UnassignedRequest{}

	for _, request := range requests {
		session, rejections, placed := place(request, input.Slots, rooms, evaluator, availability)
		if !placed {
			reason := ReasonExhaustedSearch
			if len(request.Teachers) == 0 {
				reason = ReasonNoQualifiedTeacher
			}
			unassigned = append(unassigned, UnassignedRequest{
				Request:    request,
				Reason:     reason,
				Rejections: rejections,
			})
			continue
		}

		schedule = append(schedule, session)
		availability.Occupy(session, evaluator.TimeIndex(session.Time))
	}

	return schedule, unassigned, nil
}

// place searches for the first fully-admissible (teacher, day, time, room)
// tuple. It commits nothing itself; the caller marks the availability index.
func place(
	request SessionRequest,
	slots model.Slots,
	rooms []model.Room,
	evaluator PredicateEvaluator,
	availability *AvailabilityIndex,
) (ScheduledSession, map[string]uint64, bool) {
	rejections := make(map[string]uint64)

	var groups []string
	if request.Group != "" {
		groups = []string{request.Group}
	}

	for _, teacher := range request.Teachers {
		for _, day := range slots.Days {
			for _, time := range slots.Times {
				if !evaluator.NoBreak(day, time) {
					rejections[PredicateNoBreak]++
					continue
				}
				if !availability.TeacherFree(teacher, day, time) {
					rejections[PredicateTeacherFree]++
					continue
				}
				if request.Group != "" && !availability.GroupFree(request.Group, day, time) {
					rejections[PredicateGroupFree]++
					continue
				}
				if !evaluator.MaxConsecutiveOK(availability, teacher, day, time) {
					rejections[PredicateMaxConsecutive]++
					continue
				}
				if request.Group != "" && !evaluator.MaxDailyLoadOK(availability, request.Group, day) {
					rejections[PredicateMaxDailyLoad]++
					continue
				}

				for _, room := range rooms {
					if !evaluator.RoomSubjectCompatible(room.Id, request.Subject) {
						rejections[PredicateRoomSubjectCompatible]++
						continue
					}
					if !availability.RoomFree(room.Id, day, time) {
						rejections[PredicateRoomFree]++
						continue
					}
					if !evaluator.CapacitySufficient(room.Id, groups, request.Subject) {
						rejections[PredicateCapacitySufficient]++
						continue
					}

					return ScheduledSession{
						EventId: request.EventId,
						Subject: request.Subject,
						Teacher: teacher,
						Room:    room.Id,
						Day:     day,
						Time:    time,
						Groups:  groups,
					}, rejections, true
				}
			}
		}
	}

	return ScheduledSession{}, rejections, false
}

// sortBySize orders requests by enrollment, largest first. The sort is stable
// so equally-sized requests keep their declared relative order.
func sortBySize(requests []SessionRequest, input model.ModelInput) []SessionRequest {
	groupSizes := make(map[string]uint64)
	for _, group := range input.Groups {
		groupSizes[group.Id] = group.Size
	}
	subjectSizes := make(map[string]uint64)
	for _, subject := range input.Subjects {
		subjectSizes[subject.Id] = subject.Size
	}

	enrollment := func(request SessionRequest) uint64 {
		if request.Group != "" {
			return groupSizes[request.Group]
		}
		return subjectSizes[request.Subject]
	}

	sorted := slices.Clone(requests)
	slices.SortStableFunc(sorted, func(a, b SessionRequest) int {
		return cmp.Compare(enrollment(b), enrollment(a))
	})
	return sorted
}
