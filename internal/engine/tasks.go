package engine

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/debarchito/time-table-generator/internal/model"
)

// SessionRequest is one not-yet-placed demand for a session.
type SessionRequest struct {
	EventId  string
	Subject  string
	Group    string   // empty when demand is declared per subject
	Teachers []string // candidate teachers in declared order
}

// GenerateRequests expands declared demand into an ordered request list.
// When any group declares required subjects, each (group, subject) pair
// contributes one request in declared group-major order; otherwise each
// subject contributes one request per weekly occurrence. The returned order
// is exactly the declared iteration order, since it determines placement
// priority and therefore the final schedule shape.
func GenerateRequests(input model.ModelInput) []SessionRequest {
	perGroup := lo.SomeBy(input.Groups, func(group model.Group) bool {
		return len(group.Subjects) > 0
	})
	if perGroup {
		return generateGroupRequests(input)
	}
	return generateWeeklyRequests(input)
}

func generateGroupRequests(input model.ModelInput) []SessionRequest {
	qualified := qualifiedTeachers(input.Teachers)

	requests := []SessionRequest{}
	for _, group := range input.Groups {
		for _, subject := range group.Subjects {
			requests = append(requests, SessionRequest{
				EventId:  fmt.Sprintf("%v__%v", subject, group.Id),
				Subject:  subject,
				Group:    group.Id,
				Teachers: qualified[subject],
			})
		}
	}
	return requests
}

func generateWeeklyRequests(input model.ModelInput) []SessionRequest {
	qualified := qualifiedTeachers(input.Teachers)

	requests := []SessionRequest{}
	for _, subject := range input.Subjects {
		for occurrence := uint64(1); occurrence <= subject.ClassesPerWeek; occurrence++ {
			requests = append(requests, SessionRequest{
				EventId:  fmt.Sprintf("%v__%v", subject.Id, occurrence),
				Subject:  subject.Id,
				Teachers: qualified[subject.Id],
			})
		}
	}
	return requests
}

// qualifiedTeachers maps each subject to the teachers qualified for it,
// preserving the declared teacher order.
func qualifiedTeachers(teachers []model.Teacher) map[string][]string {
	qualified := make(map[string][]string)
	for _, teacher := range teachers {
		for _, subject := range teacher.Subjects {
			qualified[subject] = append(qualified[subject], teacher.Id)
		}
	}
	return qualified
}
