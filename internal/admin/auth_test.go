package admin

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func makeAdminToken(t *testing.T, secret, subject, scope string, expires time.Time) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload := fmt.Sprintf(`{"sub":"%s","scope":"%s","exp":%d,"iat":%d}`, subject, scope, expires.Unix(), expires.Add(-time.Minute).Unix())
	encodedPayload := base64.RawURLEncoding.EncodeToString([]byte(payload))
	signingInput := header + "." + encodedPayload
	mac := hmac.New(sha256.New, []byte(secret))
	if _, err := mac.Write([]byte(signingInput)); err != nil {
		t.Fatalf("mac write: %v", err)
	}
	signature := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
	return signingInput + "." + signature
}

func TestFeedRejectsMissingAuthToken(t *testing.T) {
	authenticator, err := NewHMACAuthenticator("s3cret")
	if err != nil {
		t.Fatalf("NewHMACAuthenticator: %v", err)
	}
	feed := NewFeed(nil).WithAuth(authenticator)
	server := httptest.NewServer(feed)
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestFeedRejectsInvalidSignature(t *testing.T) {
	authenticator, err := NewHMACAuthenticator("s3cret")
	if err != nil {
		t.Fatalf("NewHMACAuthenticator: %v", err)
	}
	feed := NewFeed(nil).WithAuth(authenticator)
	server := httptest.NewServer(feed)
	t.Cleanup(server.Close)

	token := makeAdminToken(t, "wrong-secret", "operator", adminScope, time.Now().Add(time.Minute))
	resp, err := http.Get(server.URL + "?auth_token=" + token)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestFeedRejectsWrongScope(t *testing.T) {
	authenticator, err := NewHMACAuthenticator("s3cret")
	if err != nil {
		t.Fatalf("NewHMACAuthenticator: %v", err)
	}
	feed := NewFeed(nil).WithAuth(authenticator)
	server := httptest.NewServer(feed)
	t.Cleanup(server.Close)

	// Validly signed, but scoped for some other surface entirely - must
	// not also grant admin-feed access.
	token := makeAdminToken(t, "s3cret", "operator", "subscribe:write", time.Now().Add(time.Minute))
	resp, err := http.Get(server.URL + "?auth_token=" + token)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong scope, got %d", resp.StatusCode)
	}
}

func TestFeedRejectsExpiredToken(t *testing.T) {
	authenticator, err := NewHMACAuthenticator("s3cret")
	if err != nil {
		t.Fatalf("NewHMACAuthenticator: %v", err)
	}
	feed := NewFeed(nil).WithAuth(authenticator)
	server := httptest.NewServer(feed)
	t.Cleanup(server.Close)

	token := makeAdminToken(t, "s3cret", "operator", adminScope, time.Now().Add(-time.Hour))
	resp, err := http.Get(server.URL + "?auth_token=" + token)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", resp.StatusCode)
	}
}

func TestFeedAcceptsValidAuthTokenViaQuery(t *testing.T) {
	authenticator, err := NewHMACAuthenticator("s3cret")
	if err != nil {
		t.Fatalf("NewHMACAuthenticator: %v", err)
	}
	feed := NewFeed(nil).WithAuth(authenticator)
	server := httptest.NewServer(feed)
	t.Cleanup(server.Close)

	token := makeAdminToken(t, "s3cret", "operator", adminScope, time.Now().Add(time.Minute))
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "?auth_token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
}

func TestFeedAcceptsValidAuthTokenViaHeader(t *testing.T) {
	authenticator, err := NewHMACAuthenticator("s3cret")
	if err != nil {
		t.Fatalf("NewHMACAuthenticator: %v", err)
	}
	feed := NewFeed(nil).WithAuth(authenticator)
	server := httptest.NewServer(feed)
	t.Cleanup(server.Close)

	token := makeAdminToken(t, "s3cret", "operator", adminScope, time.Now().Add(time.Minute))
	url := "ws" + strings.TrimPrefix(server.URL, "http")
	headers := http.Header{"X-Auth-Token": []string{token}}
	conn, _, err := websocket.DefaultDialer.Dial(url, headers)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
}
