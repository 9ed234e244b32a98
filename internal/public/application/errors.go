package application

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned for unknown slugs, ids and accounts.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned by repositories on unique key conflicts.
	ErrAlreadyExists = errors.New("already exists")
	// ErrMessagesRequired rejects a chat request without turns.
	ErrMessagesRequired = errors.New("messages required")
)

// AuthErrorKind is the stable classification of identity failures.
type AuthErrorKind int

const (
	AuthUnknown AuthErrorKind = iota
	AuthInvalidCredentials
	AuthEmailAlreadyRegistered
	AuthInvalidEmail
	AuthWeakPassword
	AuthPasswordMismatch
	AuthPasswordTooLong
)

func (k AuthErrorKind) String() string {
	switch k {
	case AuthInvalidCredentials:
		return "invalid_credentials"
	case AuthEmailAlreadyRegistered:
		return "email_already_registered"
	case AuthInvalidEmail:
		return "invalid_email"
	case AuthWeakPassword:
		return "weak_password"
	case AuthPasswordMismatch:
		return "password_mismatch"
	case AuthPasswordTooLong:
		return "password_too_long"
	default:
		return "unknown"
	}
}

// AuthError is returned by AuthService. Err keeps the underlying cause for
// logs; it never reaches the client.
type AuthError struct {
	Kind AuthErrorKind
	Op   string
	Err  error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *AuthError) Unwrap() error { return e.Err }

// Message returns the fixed user-facing text for the error.
func (e *AuthError) Message() string {
	return AuthErrorMessage(e.Op, e.Kind)
}

const (
	opLogin    = "login"
	opRegister = "register"
)

// AuthErrorMessage maps a kind to its Russian user-facing message. Unknown
// failures get an operation-specific fallback.
func AuthErrorMessage(op string, kind AuthErrorKind) string {
	switch kind {
	case AuthInvalidCredentials:
		return "Неверный email или пароль"
	case AuthEmailAlreadyRegistered:
		return "Этот email уже зарегистрирован"
	case AuthInvalidEmail:
		return "Некорректный email"
	case AuthWeakPassword:
		return "Пароль должен содержать минимум 6 символов"
	case AuthPasswordMismatch:
		return "Пароли не совпадают"
	case AuthPasswordTooLong:
		return "Пароль слишком длинный"
	}
	if op == opRegister {
		return "Ошибка регистрации. Попробуйте ещё раз."
	}
	return "Ошибка входа. Попробуйте ещё раз."
}

func authError(op string, kind AuthErrorKind, err error) *AuthError {
	return &AuthError{Kind: kind, Op: op, Err: err}
}
