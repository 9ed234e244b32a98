package application

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sngm3741/unikz/api/internal/public/domain"
)

// MinPasswordLength is the shortest accepted password, in characters.
const MinPasswordLength = 6

// MaxPasswordBytes is the longest password bcrypt can hash.
const MaxPasswordBytes = 72

// TokenSigner issues a session token for the account.
type TokenSigner func(userID, email, displayName string) (token string, expiresAt time.Time, err error)

// Session is returned after a successful login or registration.
type Session struct {
	Token       string
	ExpiresAt   time.Time
	UserID      string
	Email       string
	DisplayName string
}

// RegisterCommand carries the sign-up form.
type RegisterCommand struct {
	Email           string
	Password        string
	ConfirmPassword string
	DisplayName     string
}

// AuthService describes identity use-cases. Failures are *AuthError.
type AuthService interface {
	Register(ctx context.Context, cmd RegisterCommand) (*Session, error)
	Login(ctx context.Context, email, password string) (*Session, error)
	Profile(ctx context.Context, userID string) (*domain.UserProfile, error)
}

// AuthConfig provides dependencies for AuthService.
type AuthConfig struct {
	Credentials CredentialRepository
	Users       UserRepository
	Recorder    Recorder
	Signer      TokenSigner
	Now         func() time.Time
	NewID       func() string
	HashCost    int
}

type authService struct {
	credentials CredentialRepository
	users       UserRepository
	recorder    Recorder
	signer      TokenSigner
	now         func() time.Time
	newID       func() string
	hashCost    int
}

// NewAuthService creates the identity service.
func NewAuthService(cfg AuthConfig) AuthService {
	s := &authService{
		credentials: cfg.Credentials,
		users:       cfg.Users,
		recorder:    cfg.Recorder,
		signer:      cfg.Signer,
		now:         cfg.Now,
		newID:       cfg.NewID,
		hashCost:    cfg.HashCost,
	}
	if s.now == nil {
		s.now = func() time.Time { return time.Now().UTC() }
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	if s.hashCost == 0 {
		s.hashCost = bcrypt.DefaultCost
	}
	return s
}

func (s *authService) Register(ctx context.Context, cmd RegisterCommand) (*Session, error) {
	email := normalizeEmail(cmd.Email)

	if cmd.ConfirmPassword != "" && cmd.Password != cmd.ConfirmPassword {
		return nil, authError(opRegister, AuthPasswordMismatch, nil)
	}
	if utf8.RuneCountInString(cmd.Password) < MinPasswordLength {
		return nil, authError(opRegister, AuthWeakPassword, nil)
	}
	if len(cmd.Password) > MaxPasswordBytes {
		return nil, authError(opRegister, AuthPasswordTooLong, nil)
	}
	if !validEmail(email) {
		return nil, authError(opRegister, AuthInvalidEmail, nil)
	}

	existing, err := s.credentials.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, authError(opRegister, AuthUnknown, err)
	}
	if existing != nil {
		return nil, authError(opRegister, AuthEmailAlreadyRegistered, nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), s.hashCost)
	if err != nil {
		return nil, authError(opRegister, AuthUnknown, err)
	}

	now := s.now()
	credential := Credential{
		UserID:       s.newID(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
	}
	if err := s.credentials.Create(ctx, credential); err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return nil, authError(opRegister, AuthEmailAlreadyRegistered, err)
		}
		return nil, authError(opRegister, AuthUnknown, err)
	}

	displayName := strings.TrimSpace(cmd.DisplayName)
	if displayName == "" {
		displayName = email[:strings.Index(email, "@")]
	}
	profile := domain.UserProfile{
		UserID:      credential.UserID,
		Email:       email,
		DisplayName: displayName,
		CreatedAt:   now,
	}
	if s.users != nil && s.recorder != nil {
		s.recorder.Record("user_profile", func(ctx context.Context) error {
			return s.users.SaveProfile(ctx, profile)
		})
	}

	return s.issue(opRegister, profile)
}

func (s *authService) Login(ctx context.Context, email, password string) (*Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, authError(opLogin, AuthInvalidCredentials, nil)
	}

	credential, err := s.credentials.FindByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return nil, authError(opLogin, AuthInvalidCredentials, err)
	}
	if err != nil {
		return nil, authError(opLogin, AuthUnknown, err)
	}
	if err := bcrypt.CompareHashAndPassword(credential.PasswordHash, []byte(password)); err != nil {
		return nil, authError(opLogin, AuthInvalidCredentials, err)
	}

	profile := domain.UserProfile{UserID: credential.UserID, Email: credential.Email}
	if s.users != nil {
		stored, err := s.users.FindProfile(ctx, credential.UserID)
		switch {
		case err == nil:
			profile.DisplayName = stored.DisplayName
			profile.CreatedAt = stored.CreatedAt
		case !errors.Is(err, ErrNotFound):
			return nil, authError(opLogin, AuthUnknown, err)
		}
	}

	return s.issue(opLogin, profile)
}

func (s *authService) Profile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	if userID == "" || s.users == nil {
		return nil, ErrNotFound
	}
	return s.users.FindProfile(ctx, userID)
}

func (s *authService) issue(op string, profile domain.UserProfile) (*Session, error) {
	if s.signer == nil {
		return nil, authError(op, AuthUnknown, errors.New("token signer not configured"))
	}
	token, expiresAt, err := s.signer(profile.UserID, profile.Email, profile.DisplayName)
	if err != nil {
		return nil, authError(op, AuthUnknown, err)
	}
	return &Session{
		Token:       token,
		ExpiresAt:   expiresAt,
		UserID:      profile.UserID,
		Email:       profile.Email,
		DisplayName: profile.DisplayName,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	at := strings.LastIndex(email, "@")
	return at > 0 && strings.Contains(email[at+1:], ".")
}
