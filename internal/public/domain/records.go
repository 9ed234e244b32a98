package domain

import "time"

// UserProfile is the public profile stored per account.
type UserProfile struct {
	UserID      string
	Email       string
	DisplayName string
	CreatedAt   time.Time
}

// QuizResult is a historical record of one finished quiz.
type QuizResult struct {
	ID        string
	UserID    string
	Scores    Scores
	CreatedAt time.Time
}

// EntScoreRecord is a historical record of one calculator run.
type EntScoreRecord struct {
	ID         string
	UserID     string
	Scores     SubjectScores
	TotalScore int
	Category   MajorCategory
	CreatedAt  time.Time
}

// ChatRole identifies the author of a chat turn.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// Valid reports whether r is a role a client may send.
func (r ChatRole) Valid() bool {
	return r == ChatRoleUser || r == ChatRoleAssistant
}

// ChatMessage is one turn of the assistant conversation.
type ChatMessage struct {
	ID        string
	UserID    string
	Role      ChatRole
	Content   string
	CreatedAt time.Time
}
