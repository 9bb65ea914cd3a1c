// Copyright (c) 2025 Felipe Kuhne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fkuhne/full-stack-react-site/models"
)

var (
	// ErrInvalidToken marks a credential that is present but unverifiable.
	// Middleware maps it to a 400; any other verification error is treated
	// as a provider fault and maps to a 500.
	ErrInvalidToken = errors.New("invalid token")
)

// Verifier resolves an opaque credential token to verified identity
// claims, or fails. Implementations must return an error wrapping
// ErrInvalidToken for tokens that are malformed, tampered, or rejected
// by the provider.
type Verifier interface {
	Verify(ctx context.Context, token string) (models.Identity, error)
}

const tokenPrefix = "v1"

// HMACVerifier verifies locally minted tokens of the form
//
//	v1.<base64url(uid|email)>.<base64url(hmac-sha256)>
//
// signed with a shared salt. The same salt mints and verifies, so no
// token state is stored anywhere.
type HMACVerifier struct {
	salt string
}

func NewHMACVerifier(salt string) *HMACVerifier {
	return &HMACVerifier{salt: salt}
}

// MintToken creates a signed token for the given claims. Used by dev
// tooling and tests; a production deployment normally fronts a real
// identity provider via RemoteVerifier instead.
func (v *HMACVerifier) MintToken(uid, email string) string {
	payload := base64.RawURLEncoding.EncodeToString([]byte(uid + "|" + email))
	return tokenPrefix + "." + payload + "." + v.sign(payload)
}

// Verify checks the token signature and extracts the claims.
func (v *HMACVerifier) Verify(_ context.Context, token string) (models.Identity, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 || parts[0] != tokenPrefix {
		return models.Identity{}, ErrInvalidToken
	}

	expected := v.sign(parts[1])
	if !hmac.Equal([]byte(parts[2]), []byte(expected)) {
		return models.Identity{}, ErrInvalidToken
	}

	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return models.Identity{}, ErrInvalidToken
	}

	uid, email, ok := strings.Cut(string(raw), "|")
	if !ok || uid == "" {
		return models.Identity{}, ErrInvalidToken
	}

	return models.Identity{UID: uid, Email: email}, nil
}

func (v *HMACVerifier) sign(payload string) string {
	h := hmac.New(sha256.New, []byte(v.salt))
	h.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}

// RemoteVerifier delegates token verification to an external identity
// provider over HTTP. The provider is opaque: it either returns claims
// for the token or rejects it.
type RemoteVerifier struct {
	endpoint string
	client   *http.Client
}

func NewRemoteVerifier(endpoint string) *RemoteVerifier {
	return &RemoteVerifier{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type verifyRequest struct {
	Token string `json:"token"`
}

// Verify posts the token to the provider endpoint. A 2xx response with
// claims is a success; a 4xx response means the token was rejected.
// Anything else is a provider fault and surfaces as such.
func (v *RemoteVerifier) Verify(ctx context.Context, token string) (models.Identity, error) {
	body, err := json.Marshal(verifyRequest{Token: token})
	if err != nil {
		return models.Identity{}, fmt.Errorf("failed to encode verify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, bytes.NewReader(body))
	if err != nil {
		return models.Identity{}, fmt.Errorf("failed to build verify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return models.Identity{}, fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var id models.Identity
		if err := json.NewDecoder(resp.Body).Decode(&id); err != nil {
			return models.Identity{}, fmt.Errorf("failed to decode identity claims: %w", err)
		}
		if id.UID == "" {
			return models.Identity{}, ErrInvalidToken
		}
		return id, nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return models.Identity{}, ErrInvalidToken
	default:
		return models.Identity{}, fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}
}
