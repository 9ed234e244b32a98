package application

import (
	"context"
	"strings"
	"time"

	"github.com/sngm3741/unikz/api/internal/public/domain"
)

// DefaultHistoryWindow is how many trailing turns are sent to the model.
const DefaultHistoryWindow = 20

// DefaultHistoryLimit caps the stored conversation returned to the client.
const DefaultHistoryLimit = 200

// SystemPrompt sets the assistant persona.
const SystemPrompt = `Ты — uni.kz, умный помощник для казахстанских абитуриентов. Ты помогаешь с:
- Выбором университета в Казахстане (Назарбаев Университет, КазНУ, КБТУ, КИМЭП и другие)
- Выбором специальности (IT, медицина, инженерия, бизнес и т.д.)
- Подготовкой к ЕНТ (Единое национальное тестирование)
- Информацией о грантах и стипендиях
- Советами по поступлению

Отвечай на русском языке. Будь дружелюбным, кратким и полезным. Если не знаешь ответа — честно скажи об этом.
Используй информацию о казахстанских университетах: проходные баллы, специальности, города, стоимость обучения.`

// ChatService describes the assistant chat use-cases.
type ChatService interface {
	Stream(ctx context.Context, userID string, turns []domain.ChatMessage, emit func(fragment string) error) error
	History(ctx context.Context, userID string) ([]domain.ChatMessage, error)
}

// ChatConfig provides dependencies for ChatService.
type ChatConfig struct {
	Completion    CompletionStreamer
	Repo          ChatRepository
	Recorder      Recorder
	HistoryWindow int
	HistoryLimit  int
	SystemPrompt  string
	Now           func() time.Time
}

type chatService struct {
	completion CompletionStreamer
	repo       ChatRepository
	recorder   Recorder
	window     int
	limit      int
	system     string
	now        func() time.Time
}

// NewChatService creates the chat service.
func NewChatService(cfg ChatConfig) ChatService {
	window := cfg.HistoryWindow
	if window <= 0 {
		window = DefaultHistoryWindow
	}
	limit := cfg.HistoryLimit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	system := cfg.SystemPrompt
	if strings.TrimSpace(system) == "" {
		system = SystemPrompt
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &chatService{
		completion: cfg.Completion,
		repo:       cfg.Repo,
		recorder:   cfg.Recorder,
		window:     window,
		limit:      limit,
		system:     system,
		now:        now,
	}
}

func (s *chatService) Stream(ctx context.Context, userID string, turns []domain.ChatMessage, emit func(string) error) error {
	cleaned := make([]domain.ChatMessage, 0, len(turns))
	for _, t := range turns {
		if !t.Role.Valid() || strings.TrimSpace(t.Content) == "" {
			continue
		}
		cleaned = append(cleaned, t)
	}
	if len(cleaned) == 0 {
		return ErrMessagesRequired
	}
	if len(cleaned) > s.window {
		cleaned = cleaned[len(cleaned)-s.window:]
	}

	askedAt := s.now().UTC()
	var reply strings.Builder
	err := s.completion.StreamCompletion(ctx, CompletionRequest{System: s.system, Turns: cleaned}, func(fragment string) error {
		reply.WriteString(fragment)
		return emit(fragment)
	})
	if err != nil {
		return err
	}

	if userID != "" && s.repo != nil && s.recorder != nil {
		s.persistExchange(userID, lastUserTurn(cleaned), askedAt, reply.String())
	}
	return nil
}

func (s *chatService) persistExchange(userID string, question *domain.ChatMessage, askedAt time.Time, answer string) {
	answeredAt := s.now().UTC()
	s.recorder.Record("chat_history", func(ctx context.Context) error {
		if question != nil {
			if err := s.repo.Append(ctx, domain.ChatMessage{
				UserID:    userID,
				Role:      domain.ChatRoleUser,
				Content:   question.Content,
				CreatedAt: askedAt,
			}); err != nil {
				return err
			}
		}
		if answer == "" {
			return nil
		}
		return s.repo.Append(ctx, domain.ChatMessage{
			UserID:    userID,
			Role:      domain.ChatRoleAssistant,
			Content:   answer,
			CreatedAt: answeredAt,
		})
	})
}

func (s *chatService) History(ctx context.Context, userID string) ([]domain.ChatMessage, error) {
	if userID == "" {
		return nil, ErrNotFound
	}
	return s.repo.History(ctx, userID, s.limit)
}

func lastUserTurn(turns []domain.ChatMessage) *domain.ChatMessage {
	for i := len(turns) - 1; i >= 0; i-- {
		if turns[i].Role == domain.ChatRoleUser {
			t := turns[i]
			return &t
		}
	}
	return nil
}
