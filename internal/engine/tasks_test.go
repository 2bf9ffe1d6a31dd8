package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/debarchito/time-table-generator/internal/model"
)

func TestGenerateRequests(t *testing.T) {
	t.Run("per-group demand preserves declared order", func(t *testing.T) {
		// Arrange
		input := model.ModelInput{
			Teachers: []model.Teacher{
				{Id: "t1", Subjects: []string{"math", "physics"}},
				{Id: "t2", Subjects: []string{"math"}},
			},
			Subjects: []model.Subject{
				{Id: "math", Type: model.KindLecture},
				{Id: "physics", Type: model.KindLecture},
			},
			Groups: []model.Group{
				{Id: "g1", Subjects: []string{"math", "physics"}},
				{Id: "g2", Subjects: []string{"physics"}},
			},
		}

		// Act
		requests := GenerateRequests(input)

		// Assert
		assert.Len(t, requests, 3)
		assert.Equal(t, "math__g1", requests[0].EventId)
		assert.Equal(t, "physics__g1", requests[1].EventId)
		assert.Equal(t, "physics__g2", requests[2].EventId)
		assert.Equal(t, "g1", requests[0].Group)
		assert.Equal(t, []string{"t1", "t2"}, requests[0].Teachers)
		assert.Equal(t, []string{"t1"}, requests[1].Teachers)
	})

	t.Run("per-subject demand expands weekly occurrences", func(t *testing.T) {
		// Arrange
		input := model.ModelInput{
			Teachers: []model.Teacher{
				{Id: "t1", Subjects: []string{"math"}},
			},
			Subjects: []model.Subject{
				{Id: "math", Type: model.KindLecture, ClassesPerWeek: 3},
				{Id: "art", Type: model.KindLecture, ClassesPerWeek: 1},
			},
		}

		// Act
		requests := GenerateRequests(input)

		// Assert
		assert.Len(t, requests, 4)
		assert.Equal(t, "math__1", requests[0].EventId)
		assert.Equal(t, "math__2", requests[1].EventId)
		assert.Equal(t, "math__3", requests[2].EventId)
		assert.Equal(t, "art__1", requests[3].EventId)
		assert.Empty(t, requests[0].Group)
		assert.Empty(t, requests[3].Teachers)
	})

	t.Run("group demand wins over weekly counts", func(t *testing.T) {
		// Arrange
		input := model.ModelInput{
			Subjects: []model.Subject{
				{Id: "math", Type: model.KindLecture, ClassesPerWeek: 5},
			},
			Groups: []model.Group{
				{Id: "g1", Subjects: []string{"math"}},
			},
		}

		// Act
		requests := GenerateRequests(input)

		// Assert
		assert.Len(t, requests, 1)
		assert.Equal(t, "math__g1", requests[0].EventId)
	})

	t.Run("empty demand yields an empty request list", func(t *testing.T) {
		// Act
		requests := GenerateRequests(model.ModelInput{})

		// Assert
		assert.Empty(t, requests)
	})
}
