package adapter

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/gifcamp/gifcamp/internal/config"
	"github.com/gifcamp/gifcamp/internal/logger"
)

func TestGenerateState_NonEmptyAndUnique(t *testing.T) {
	a, err := GenerateState()
	require.NoError(t, err)
	b, err := GenerateState()
	require.NoError(t, err)

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestAuthorize_NotConfigured(t *testing.T) {
	g, err := NewGoogleAuthenticator(context.Background(), config.OAuth{}, logger.Nop())
	require.NoError(t, err)

	_, _, err = g.Authorize(context.Background(), func(string) {})
	assert.ErrorIs(t, err, ErrLoginNotConfigured)
}

// freeLoopbackURL reserves a loopback port and returns a redirect URL on it.
func freeLoopbackURL(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return "http://" + addr + "/oauth/callback"
}

func newCallbackAuthenticator(t *testing.T, redirectURL string) *GoogleAuthenticator {
	t.Helper()
	redirect, err := url.Parse(redirectURL)
	require.NoError(t, err)
	return &GoogleAuthenticator{
		config:   &oauth2.Config{RedirectURL: redirectURL},
		redirect: redirect,
		http:     resty.New().SetTimeout(time.Second),
		logger:   logger.Nop(),
	}
}

func TestAwaitCallback_DeliversCode(t *testing.T) {
	redirectURL := freeLoopbackURL(t)
	g := newCallbackAuthenticator(t, redirectURL)

	urlCh := make(chan string, 1)
	type result struct {
		code string
		err  error
	}
	results := make(chan result, 1)

	go func() {
		code, err := g.awaitCallback(context.Background(), "state-123", func(u string) { urlCh <- u })
		results <- result{code: code, err: err}
	}()

	select {
	case <-urlCh:
	case <-time.After(2 * time.Second):
		t.Fatal("consent URL never delivered")
	}

	resp, err := http.Get(fmt.Sprintf("%s?state=state-123&code=the-code", redirectURL))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	select {
	case res := <-results:
		require.NoError(t, res.err)
		assert.Equal(t, "the-code", res.code)
	case <-time.After(2 * time.Second):
		t.Fatal("callback result never arrived")
	}
}

func TestAwaitCallback_RejectsStateMismatch(t *testing.T) {
	redirectURL := freeLoopbackURL(t)
	g := newCallbackAuthenticator(t, redirectURL)

	urlCh := make(chan string, 1)
	errs := make(chan error, 1)

	go func() {
		_, err := g.awaitCallback(context.Background(), "expected-state", func(u string) { urlCh <- u })
		errs <- err
	}()

	<-urlCh
	resp, err := http.Get(fmt.Sprintf("%s?state=forged&code=the-code", redirectURL))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	select {
	case callbackErr := <-errs:
		assert.Error(t, callbackErr)
	case <-time.After(2 * time.Second):
		t.Fatal("callback result never arrived")
	}
}

func TestAwaitCallback_ContextCancel(t *testing.T) {
	redirectURL := freeLoopbackURL(t)
	g := newCallbackAuthenticator(t, redirectURL)

	ctx, cancel := context.WithCancel(context.Background())
	errs := make(chan error, 1)
	go func() {
		_, err := g.awaitCallback(ctx, "state", nil)
		errs <- err
	}()

	cancel()

	select {
	case err := <-errs:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("awaitCallback did not observe cancellation")
	}
}

func TestUserInfo_RequiresEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"name":"Alice","picture":"https://img/p.png"}`))
	}))
	defer srv.Close()

	g := &GoogleAuthenticator{http: resty.New(), userInfoURL: srv.URL, logger: logger.Nop()}

	_, err := g.UserInfo(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrNoEmail)
}

func TestUserInfo_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"Alice","email":"alice@example.com","picture":"https://img/p.png"}`))
	}))
	defer srv.Close()

	g := &GoogleAuthenticator{http: resty.New(), userInfoURL: srv.URL, logger: logger.Nop()}

	info, err := g.UserInfo(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", info.Email)
	assert.Equal(t, "Alice", info.Name)
}
