package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeQuestions() []Question {
	return []Question{
		{ID: 10, Type: Realistic},
		{ID: 20, Type: Social},
		{ID: 30, Type: Realistic},
	}
}

func TestReduce_FullRun(t *testing.T) {
	questions := threeQuestions()
	s := NewQuizSession()

	s = Reduce(s, QuizEvent{Kind: EventStart}, questions)
	require.Equal(t, PhaseQuiz, s.Phase)
	require.Equal(t, 0, s.Current)

	s = Reduce(s, QuizEvent{Kind: EventNext}, questions)
	assert.Equal(t, 0, s.Current, "next without a selection is ignored")

	s = Reduce(s, QuizEvent{Kind: EventSelect, Value: 4}, questions)
	s = Reduce(s, QuizEvent{Kind: EventNext}, questions)
	assert.Equal(t, 1, s.Current)
	assert.Equal(t, 0, s.Pending)

	s = Reduce(s, QuizEvent{Kind: EventSelect, Value: 2}, questions)
	s = Reduce(s, QuizEvent{Kind: EventNext}, questions)
	s = Reduce(s, QuizEvent{Kind: EventSelect, Value: 5}, questions)
	s = Reduce(s, QuizEvent{Kind: EventNext}, questions)

	require.Equal(t, PhaseResults, s.Phase)
	require.NotNil(t, s.Scores)
	assert.Equal(t, Scores{R: 9, S: 2}, *s.Scores)
	assert.Equal(t, Answers{10: 4, 20: 2, 30: 5}, s.Answers)
}

func TestReduce_PrevRestoresPreviousAnswer(t *testing.T) {
	questions := threeQuestions()
	s := Reduce(NewQuizSession(), QuizEvent{Kind: EventStart}, questions)
	s = Reduce(s, QuizEvent{Kind: EventSelect, Value: 3}, questions)
	s = Reduce(s, QuizEvent{Kind: EventNext}, questions)

	s = Reduce(s, QuizEvent{Kind: EventPrev}, questions)

	assert.Equal(t, 0, s.Current)
	assert.Equal(t, 3, s.Pending)

	s = Reduce(s, QuizEvent{Kind: EventPrev}, questions)
	assert.Equal(t, 0, s.Current, "prev on the first question is ignored")

	s = Reduce(s, QuizEvent{Kind: EventNext}, questions)
	assert.Equal(t, 1, s.Current)
}

func TestReduce_IgnoresInvalidSelections(t *testing.T) {
	questions := threeQuestions()
	s := Reduce(NewQuizSession(), QuizEvent{Kind: EventStart}, questions)

	for _, v := range []int{0, 6, -1} {
		s = Reduce(s, QuizEvent{Kind: EventSelect, Value: v}, questions)
		assert.Equal(t, 0, s.Pending, "value %d", v)
	}
}

func TestReduce_StartWithoutQuestionsStaysOnIntro(t *testing.T) {
	s := Reduce(NewQuizSession(), QuizEvent{Kind: EventStart}, nil)

	assert.Equal(t, PhaseIntro, s.Phase)
}

func TestReduce_RetakeResets(t *testing.T) {
	questions := threeQuestions()
	s := Reduce(NewQuizSession(), QuizEvent{Kind: EventStart}, questions)
	s = Reduce(s, QuizEvent{Kind: EventSelect, Value: 5}, questions)
	s = Reduce(s, QuizEvent{Kind: EventNext}, questions)

	s = Reduce(s, QuizEvent{Kind: EventRetake}, questions)

	assert.Equal(t, NewQuizSession(), s)
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	questions := threeQuestions()
	s := Reduce(NewQuizSession(), QuizEvent{Kind: EventStart}, questions)
	s = Reduce(s, QuizEvent{Kind: EventSelect, Value: 1}, questions)
	before := Reduce(s, QuizEvent{Kind: "noop"}, questions)

	_ = Reduce(s, QuizEvent{Kind: EventNext}, questions)

	assert.Equal(t, before, s)
	assert.Empty(t, s.Answers)
}
