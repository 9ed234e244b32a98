package domain

// QuizPhase is the screen the quiz flow is on.
type QuizPhase string

const (
	PhaseIntro   QuizPhase = "intro"
	PhaseQuiz    QuizPhase = "quiz"
	PhaseResults QuizPhase = "results"
)

// QuizSession is the client-held state of one quiz run. Pending is the value
// selected for the current question and not yet confirmed (0 when none).
type QuizSession struct {
	Phase   QuizPhase `json:"phase"`
	Current int       `json:"current"`
	Answers Answers   `json:"answers"`
	Pending int       `json:"pending"`
	Scores  *Scores   `json:"scores,omitempty"`
}

// QuizEventKind enumerates the transitions of QuizSession.
type QuizEventKind string

const (
	EventStart  QuizEventKind = "start"
	EventSelect QuizEventKind = "select"
	EventNext   QuizEventKind = "next"
	EventPrev   QuizEventKind = "prev"
	EventRetake QuizEventKind = "retake"
)

// QuizEvent is one user action. Value is only read for EventSelect.
type QuizEvent struct {
	Kind  QuizEventKind `json:"kind"`
	Value int           `json:"value,omitempty"`
}

// NewQuizSession returns the intro state.
func NewQuizSession() QuizSession {
	return QuizSession{Phase: PhaseIntro, Answers: Answers{}}
}

// Reduce applies event to state and returns the next state. state is not
// modified. Events that do not apply to the current phase are ignored.
func Reduce(state QuizSession, event QuizEvent, questions []Question) QuizSession {
	next := state.clone()

	switch event.Kind {
	case EventStart:
		if next.Phase != PhaseIntro || len(questions) == 0 {
			return next
		}
		return QuizSession{Phase: PhaseQuiz, Answers: Answers{}}

	case EventRetake:
		return NewQuizSession()

	case EventSelect:
		if next.Phase != PhaseQuiz || event.Value < MinAnswer || event.Value > MaxAnswer {
			return next
		}
		next.Pending = event.Value
		return next

	case EventNext:
		if next.Phase != PhaseQuiz || next.Pending == 0 || !next.inRange(questions) {
			return next
		}
		next.Answers[questions[next.Current].ID] = next.Pending
		if next.Current == len(questions)-1 {
			scores := Aggregate(questions, next.Answers)
			next.Phase = PhaseResults
			next.Scores = &scores
			next.Pending = 0
			return next
		}
		next.Current++
		next.Pending = next.Answers[questions[next.Current].ID]
		return next

	case EventPrev:
		if next.Phase != PhaseQuiz || next.Current == 0 || !next.inRange(questions) {
			return next
		}
		next.Current--
		next.Pending = next.Answers[questions[next.Current].ID]
		return next
	}

	return next
}

func (s QuizSession) inRange(questions []Question) bool {
	return s.Current >= 0 && s.Current < len(questions)
}

func (s QuizSession) clone() QuizSession {
	out := s
	out.Answers = make(Answers, len(s.Answers))
	for k, v := range s.Answers {
		out.Answers[k] = v
	}
	if s.Scores != nil {
		scores := *s.Scores
		out.Scores = &scores
	}
	if out.Phase == "" {
		out.Phase = PhaseIntro
	}
	return out
}
