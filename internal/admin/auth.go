package admin

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// adminScope is the only scope value the feed accepts. A token minted for
// some other purpose (e.g. gating the gRPC stream itself, if that's ever
// added) must not also grant admin-feed access just because it shares the
// same signing secret.
const adminScope = "admin:read"

var (
	// errInvalidAdminToken indicates the token failed signature, structure,
	// or scope checks.
	errInvalidAdminToken = errors.New("invalid admin token")
	// errExpiredAdminToken signals that the token's expiry is in the past.
	errExpiredAdminToken = errors.New("admin token expired")
)

// Authenticator gates access to the admin feed. A nil Authenticator leaves
// the feed open, matching the zero-config default.
type Authenticator interface {
	Authenticate(r *http.Request) error
}

// hmacAuthenticator requires a valid, unexpired HS256 token scoped for
// admin-feed access. A token with a valid signature but the wrong (or
// missing) scope claim is rejected, since the feed is a distinct audience
// from anything else this secret might sign.
type hmacAuthenticator struct {
	secret []byte
	leeway time.Duration
	now    func() time.Time
}

// NewHMACAuthenticator builds an admin-feed gate from a shared secret.
func NewHMACAuthenticator(secret string) (Authenticator, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, errors.New("admin auth secret must not be empty")
	}
	return &hmacAuthenticator{secret: []byte(secret), leeway: 2 * time.Second, now: time.Now}, nil
}

// Authenticate reads the token from the auth_token query parameter or the
// X-Auth-Token header and validates it.
func (a *hmacAuthenticator) Authenticate(r *http.Request) error {
	token := strings.TrimSpace(r.URL.Query().Get("auth_token"))
	if token == "" {
		token = strings.TrimSpace(r.Header.Get("X-Auth-Token"))
	}
	if token == "" {
		return errors.New("missing auth token")
	}
	return a.verify(token)
}

func (a *hmacAuthenticator) verify(token string) error {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return errInvalidAdminToken
	}
	headerPayload := parts[0] + "." + parts[1]

	headerBytes, err := decodeSegment(parts[0])
	if err != nil {
		return errInvalidAdminToken
	}
	var header struct {
		Algorithm string `json:"alg"`
	}
	if err := json.Unmarshal(headerBytes, &header); err != nil {
		return errInvalidAdminToken
	}
	if header.Algorithm != "HS256" {
		return fmt.Errorf("%w: unexpected algorithm %q", errInvalidAdminToken, header.Algorithm)
	}

	expectedSig, err := a.sign([]byte(headerPayload))
	if err != nil {
		return err
	}
	signatureBytes, err := decodeSegment(parts[2])
	if err != nil {
		return errInvalidAdminToken
	}
	if !hmac.Equal(signatureBytes, expectedSig) {
		return errInvalidAdminToken
	}

	payloadBytes, err := decodeSegment(parts[1])
	if err != nil {
		return errInvalidAdminToken
	}
	var payload struct {
		Subject string `json:"sub"`
		Scope   string `json:"scope"`
		Expires int64  `json:"exp"`
	}
	if err := json.Unmarshal(payloadBytes, &payload); err != nil {
		return errInvalidAdminToken
	}
	if strings.TrimSpace(payload.Subject) == "" {
		return errInvalidAdminToken
	}
	if payload.Scope != adminScope {
		return fmt.Errorf("%w: wrong scope %q", errInvalidAdminToken, payload.Scope)
	}
	if payload.Expires <= 0 {
		return errInvalidAdminToken
	}

	expiresAt := time.Unix(payload.Expires, 0)
	if expiresAt.Add(a.leeway).Before(a.now()) {
		return errExpiredAdminToken
	}
	return nil
}

func (a *hmacAuthenticator) sign(payload []byte) ([]byte, error) {
	mac := hmac.New(sha256.New, a.secret)
	if _, err := mac.Write(payload); err != nil {
		return nil, err
	}
	return mac.Sum(nil), nil
}

func decodeSegment(segment string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(segment)
}
