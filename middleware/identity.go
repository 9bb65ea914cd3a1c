// Copyright (c) 2025 Felipe Kuhne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/fkuhne/full-stack-react-site/auth"
	"github.com/fkuhne/full-stack-react-site/models"
)

// TokenHeader is the request header carrying the opaque credential token.
const TokenHeader = "authtoken"

type contextKey int

const identityKey contextKey = iota

// ContextWithIdentity returns a context carrying the resolved identity.
func ContextWithIdentity(ctx context.Context, id models.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFrom returns the identity resolved for this request, or the
// anonymous identity if none was attached.
func IdentityFrom(ctx context.Context) models.Identity {
	id, _ := ctx.Value(identityKey).(models.Identity)
	return id
}

// resolveIdentity is the auth stage of the request pipeline. It returns
// the identity to continue with, or a non-zero status to short-circuit
// the request.
func resolveIdentity(v auth.Verifier, r *http.Request) (models.Identity, int) {
	token := r.Header.Get(TokenHeader)
	if token == "" {
		// Missing credential is not an error: anonymous access is valid
		// on public routes.
		return models.Identity{}, 0
	}

	id, err := v.Verify(r.Context(), token)
	if errors.Is(err, auth.ErrInvalidToken) {
		// A present-but-invalid credential is rejected outright, never
		// silently downgraded to anonymous.
		return models.Identity{}, http.StatusBadRequest
	}
	if err != nil {
		slog.Error("identity verification failed", "error", err)
		return models.Identity{}, http.StatusInternalServerError
	}

	return id, 0
}

// WithIdentity resolves the request's credential token and attaches the
// resulting identity (or the anonymous identity) to the request context.
// It rejects invalid credentials itself but never rejects their absence.
func WithIdentity(v auth.Verifier, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, status := resolveIdentity(v, r)
		switch status {
		case 0:
			next(w, r.WithContext(ContextWithIdentity(r.Context(), id)))
		case http.StatusBadRequest:
			ErrorResponse(w, status, "Invalid credential token")
		default:
			ErrorResponse(w, status, "Identity verification unavailable")
		}
	}
}

// RequireIdentity is the access gate for identity-required routes. It
// must run after WithIdentity; anonymous requests are halted with 401.
func RequireIdentity(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if IdentityFrom(r.Context()).IsAnonymous() {
			ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		next(w, r)
	}
}
