package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sngm3741/unikz/api/internal/public/domain"
)

// EstimateCommand carries the raw calculator input.
type EstimateCommand struct {
	Scores  domain.SubjectScores
	MajorID string
}

// Estimate is the calculator outcome. Threshold, Chance and Universities are
// only set when a major was selected.
type Estimate struct {
	Subjects     domain.SubjectScores
	Total        int
	MaxTotal     int
	Major        *domain.Major
	Threshold    *domain.GrantThreshold
	Chance       int
	Level        domain.ChanceLevel
	Gap          int
	Advice       string
	Universities []domain.University
}

// CalculatorService describes the ENT calculator use-cases.
type CalculatorService interface {
	Subjects() []domain.Subject
	Thresholds() map[domain.MajorCategory]domain.GrantThreshold
	Estimate(ctx context.Context, userID string, cmd EstimateCommand) (Estimate, error)
}

// CalculatorConfig provides dependencies for CalculatorService.
type CalculatorConfig struct {
	Majors       MajorRepository
	Universities UniversityRepository
	Scores       EntScoreRepository
	Recorder     Recorder
	Now          func() time.Time
}

type calculatorService struct {
	majors       MajorRepository
	universities UniversityRepository
	scores       EntScoreRepository
	recorder     Recorder
	now          func() time.Time
}

// NewCalculatorService creates the calculator service.
func NewCalculatorService(cfg CalculatorConfig) CalculatorService {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &calculatorService{
		majors:       cfg.Majors,
		universities: cfg.Universities,
		scores:       cfg.Scores,
		recorder:     cfg.Recorder,
		now:          now,
	}
}

func (s *calculatorService) Subjects() []domain.Subject {
	return append([]domain.Subject(nil), domain.EntSubjects...)
}

func (s *calculatorService) Thresholds() map[domain.MajorCategory]domain.GrantThreshold {
	out := make(map[domain.MajorCategory]domain.GrantThreshold, len(domain.GrantThresholds))
	for k, v := range domain.GrantThresholds {
		out[k] = v
	}
	return out
}

func (s *calculatorService) Estimate(ctx context.Context, userID string, cmd EstimateCommand) (Estimate, error) {
	subjects := domain.ClampSubjectScores(cmd.Scores)
	result := Estimate{
		Subjects: subjects,
		Total:    subjects.Total(),
		MaxTotal: domain.MaxEntScore,
	}

	if majorID := strings.TrimSpace(cmd.MajorID); majorID != "" {
		major, err := s.majors.FindByID(ctx, majorID)
		if err != nil {
			return Estimate{}, err
		}
		result.Major = major

		if threshold, ok := domain.ThresholdFor(major.Category); ok {
			result.Threshold = &threshold
			result.Chance = domain.EstimateChance(result.Total, threshold.Min)
			result.Level = domain.LevelFor(result.Chance)
			result.Gap = result.Total - threshold.Min
			result.Advice = gapAdvice(result.Gap)
		}

		if result.Total >= domain.MinMatchingScore {
			catalog, err := s.universities.List(ctx)
			if err != nil {
				return Estimate{}, err
			}
			result.Universities = domain.MatchUniversities(result.Total, major, catalog)
		}
	}

	if userID != "" && s.scores != nil && s.recorder != nil {
		record := domain.EntScoreRecord{
			UserID:     userID,
			Scores:     subjects,
			TotalScore: result.Total,
			CreatedAt:  s.now().UTC(),
		}
		if result.Major != nil {
			record.Category = result.Major.Category
		}
		s.recorder.Record("ent_score", func(ctx context.Context) error {
			return s.scores.Append(ctx, record)
		})
	}

	return result, nil
}

func gapAdvice(gap int) string {
	if gap >= 0 {
		return fmt.Sprintf("Ваш балл выше минимального на %d баллов. Хорошие шансы на грант!", gap)
	}
	return fmt.Sprintf("Вам не хватает %d баллов до минимального порога для гранта.", -gap)
}
