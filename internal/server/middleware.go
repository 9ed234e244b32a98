package server

import (
	"crypto/subtle"
	"log"
	"net/http"
	"strings"

	commonhttp "github.com/sngm3741/unikz/api/internal/interfaces/http/common"
)

const bearerPrefix = "Bearer "

// withCORS returns a middleware that echoes allowed origins back.
func withCORS(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{})
	allowAll := false
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin == "" || (!allowAll && !originAllowed(origin, allowed)) {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PATCH,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization,Content-Type,X-Admin-Token")
			w.Header().Set("Access-Control-Max-Age", "300")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(origin string, allowed map[string]struct{}) bool {
	if len(allowed) == 0 {
		return true
	}
	_, ok := allowed[origin]
	return ok
}

// bearerToken extracts the token of an "Authorization: Bearer" header.
// A non-empty message describes why no token could be read.
func bearerToken(r *http.Request) (token, message string) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return "", "Требуется авторизация"
	}
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", "Укажите Bearer токен"
	}
	token = strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" {
		return "", "Токен доступа пуст"
	}
	return token, ""
}

func userFromClaims(claims *authClaims) commonhttp.AuthenticatedUser {
	return commonhttp.AuthenticatedUser{
		ID:          claims.Subject,
		Email:       claims.Email,
		DisplayName: claims.Name,
	}
}

// requireAuth rejects requests without a valid session token.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, message := bearerToken(r)
		if message != "" {
			commonhttp.WriteError(s.logger, w, http.StatusUnauthorized, message)
			return
		}

		claims, err := s.tokens.Parse(token)
		if err != nil {
			commonhttp.WriteError(s.logger, w, http.StatusUnauthorized, "Недействительный токен")
			return
		}

		ctx := commonhttp.ContextWithUser(r.Context(), userFromClaims(claims))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// optionalAuth attaches the user when a valid token is present and
// otherwise serves the request anonymously.
func (s *Server) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, message := bearerToken(r)
		if message != "" {
			next.ServeHTTP(w, r)
			return
		}
		claims, err := s.tokens.Parse(token)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		ctx := commonhttp.ContextWithUser(r.Context(), userFromClaims(claims))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// adminGuard compares the shared admin token from "Authorization: Bearer"
// or X-Admin-Token in constant time.
func adminGuard(expected string, logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := strings.TrimSpace(r.Header.Get("X-Admin-Token"))
			if provided == "" {
				provided, _ = bearerToken(r)
			}
			if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
				commonhttp.WriteError(logger, w, http.StatusUnauthorized, "unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
