// Package middleware provides HTTP middleware that resolves the builder session of a request.
package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-builder/internal/session"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// sessionKey is the context key for storing the resolved session.
const sessionKey ContextKey = "session"

// SessionParam is the path wildcard holding the session id.
const SessionParam = "id"

// SessionLookup finds a live session by id.
type SessionLookup interface {
	Get(id string) (*session.Session, error)
}

// RequireSession creates middleware that resolves the {id} path value to a
// session and adds it to the request context. Requests for unknown or expired
// sessions are passed to notFound with the lookup error.
// It must wrap a handler registered on a pattern that names {id}.
func RequireSession(store SessionLookup, notFound func(http.ResponseWriter, *http.Request, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.PathValue(SessionParam)
			if id == "" {
				notFound(w, r, session.ErrSessionNotFound)
				return
			}

			sess, err := store.Get(id)
			if err != nil {
				notFound(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSession extracts the resolved session from the request context.
func GetSession(r *http.Request) (*session.Session, error) {
	sess, ok := r.Context().Value(sessionKey).(*session.Session)
	if !ok || sess == nil {
		return nil, fmt.Errorf("session not found in request context")
	}
	return sess, nil
}

// SessionKey returns the context key for the session (for testing purposes).
func SessionKey() ContextKey {
	return sessionKey
}
