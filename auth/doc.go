// Copyright (c) 2025 Felipe Kuhne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides credential token verification.

# Verifier

All token verification goes through the Verifier interface:

	id, err := verifier.Verify(ctx, token)

A failed verification wraps ErrInvalidToken when the credential itself
is bad (malformed, tampered, expired, rejected). Any other error means
the verifier itself failed and is reported as a provider fault.

# Local HMAC Tokens

HMACVerifier verifies self-contained tokens signed with a shared salt:

	v1.<base64url(uid|email)>.<base64url(hmac-sha256)>

Minting and verifying use the same salt, so no token state is stored:

	v := auth.NewHMACVerifier(salt)
	token := v.MintToken("user-1", "user1@example.com")
	id, err := v.Verify(ctx, token)

Signature comparison uses hmac.Equal (constant time).

# Remote Verification

RemoteVerifier delegates to an external identity provider:

	v := auth.NewRemoteVerifier("https://idp.example.com/verify")

The token is posted as JSON and the provider answers with claims
({"uid": ..., "email": ...}) or a 4xx rejection. The provider is
treated as opaque; this package never inspects remote token contents.
*/
package auth
