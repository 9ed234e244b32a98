package application

import (
	"context"
	"time"

	"github.com/sngm3741/unikz/api/internal/public/domain"
)

// QuestionBank is the static quiz reference data.
type QuestionBank interface {
	Questions() []domain.Question
	Descriptions() []domain.RiasecDescription
	DescriptionsByType() map[domain.RiasecType]domain.RiasecDescription
	QuestionsPerCategory() int
}

// CareerResult is the evaluated outcome of one quiz.
type CareerResult struct {
	Scores         domain.Scores
	Profile        domain.Profile
	Recommendation domain.Recommendation
}

// CareerService describes the career orientation use-cases.
type CareerService interface {
	Questions() []domain.Question
	Types() []domain.RiasecDescription
	Evaluate(ctx context.Context, userID string, answers domain.Answers) (CareerResult, error)
	Advance(state domain.QuizSession, event domain.QuizEvent) domain.QuizSession
}

// CareerConfig provides dependencies for CareerService.
type CareerConfig struct {
	Bank                 QuestionBank
	Majors               MajorRepository
	Results              QuizResultRepository
	Recorder             Recorder
	QuestionsPerCategory int
	Now                  func() time.Time
}

type careerService struct {
	bank     QuestionBank
	majors   MajorRepository
	results  QuizResultRepository
	recorder Recorder
	maxScore int
	now      func() time.Time
}

// NewCareerService creates the career service. A non-positive
// QuestionsPerCategory is derived from the bank.
func NewCareerService(cfg CareerConfig) CareerService {
	perCategory := cfg.QuestionsPerCategory
	if perCategory <= 0 {
		perCategory = cfg.Bank.QuestionsPerCategory()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &careerService{
		bank:     cfg.Bank,
		majors:   cfg.Majors,
		results:  cfg.Results,
		recorder: cfg.Recorder,
		maxScore: domain.MaxScoreFor(perCategory),
		now:      now,
	}
}

func (s *careerService) Questions() []domain.Question {
	return s.bank.Questions()
}

func (s *careerService) Types() []domain.RiasecDescription {
	return s.bank.Descriptions()
}

func (s *careerService) Evaluate(ctx context.Context, userID string, answers domain.Answers) (CareerResult, error) {
	scores := domain.Aggregate(s.bank.Questions(), answers)
	profile := domain.Classify(scores, s.maxScore)

	majors, err := s.majors.List(ctx)
	if err != nil {
		return CareerResult{}, err
	}

	result := CareerResult{
		Scores:         scores,
		Profile:        profile,
		Recommendation: domain.Recommend(profile, s.bank.DescriptionsByType(), majors),
	}

	if userID != "" && s.results != nil && s.recorder != nil {
		record := domain.QuizResult{UserID: userID, Scores: scores, CreatedAt: s.now().UTC()}
		s.recorder.Record("quiz_result", func(ctx context.Context) error {
			return s.results.Append(ctx, record)
		})
	}

	return result, nil
}

func (s *careerService) Advance(state domain.QuizSession, event domain.QuizEvent) domain.QuizSession {
	return domain.Reduce(state, event, s.bank.Questions())
}
