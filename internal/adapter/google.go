// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GifCamp Authors

package adapter

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/gifcamp/gifcamp/internal/config"
	"github.com/gifcamp/gifcamp/internal/logger"
	"github.com/gifcamp/gifcamp/models"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

// GoogleAuthenticator runs the Google OAuth 2.0 / OIDC authorization code
// flow for a desktop client: the consent URL is handed to the caller, the
// authorization code comes back on a loopback HTTP listener at the
// configured redirect URL.
type GoogleAuthenticator struct {
	config      *oauth2.Config
	verifier    *oidc.IDTokenVerifier
	redirect    *url.URL
	http        *resty.Client
	userInfoURL string
	logger      *logger.Logger
}

// NewGoogleAuthenticator discovers the Google OIDC provider and prepares
// the OAuth config. Fails when the redirect URL does not parse or the
// provider is unreachable.
func NewGoogleAuthenticator(ctx context.Context, cfg config.OAuth, log *logger.Logger) (*GoogleAuthenticator, error) {
	if cfg.GoogleClientID == "" {
		log.Warn().Msg("google oauth client id is not set, sign-in disabled")
		return &GoogleAuthenticator{
			userInfoURL: googleUserInfoURL,
			logger:      log,
		}, nil
	}

	redirect, err := url.Parse(cfg.RedirectURL)
	if err != nil {
		return nil, fmt.Errorf("parse redirect url: %w", err)
	}

	provider, err := oidc.NewProvider(ctx, "https://accounts.google.com")
	if err != nil {
		return nil, fmt.Errorf("oidc provider: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Endpoint:     google.Endpoint,
		Scopes:       []string{oidc.ScopeOpenID, "email", "profile"},
	}

	return &GoogleAuthenticator{
		config:      oauthConfig,
		verifier:    provider.Verifier(&oidc.Config{ClientID: cfg.GoogleClientID}),
		redirect:    redirect,
		http:        resty.New().SetTimeout(15 * time.Second),
		userInfoURL: googleUserInfoURL,
		logger:      log,
	}, nil
}

// AuthURL generates the Google consent URL with the given state.
func (g *GoogleAuthenticator) AuthURL(state string) string {
	return g.config.AuthCodeURL(
		state,
		oauth2.SetAuthURLParam("prompt", "select_account"),
	)
}

// Authorize runs the full authorization code flow. onURL receives the
// consent URL to present to the user, then Authorize blocks until the
// browser hits the loopback redirect or ctx is cancelled. The returned
// string is the Google access token.
func (g *GoogleAuthenticator) Authorize(ctx context.Context, onURL func(string)) (models.GoogleUserInfo, string, error) {
	if g.config == nil {
		return models.GoogleUserInfo{}, "", ErrLoginNotConfigured
	}

	state, err := GenerateState()
	if err != nil {
		return models.GoogleUserInfo{}, "", fmt.Errorf("generate state: %w", err)
	}

	code, err := g.awaitCallback(ctx, state, onURL)
	if err != nil {
		return models.GoogleUserInfo{}, "", err
	}

	return g.Exchange(ctx, code)
}

// awaitCallback serves a single request on the redirect URL's host and
// returns the authorization code once Google redirects the browser back.
func (g *GoogleAuthenticator) awaitCallback(ctx context.Context, state string, onURL func(string)) (string, error) {
	listener, err := net.Listen("tcp", g.redirect.Host)
	if err != nil {
		return "", fmt.Errorf("listen on %s: %w", g.redirect.Host, err)
	}
	defer listener.Close()

	type callbackResult struct {
		code string
		err  error
	}
	results := make(chan callbackResult, 1)

	mux := http.NewServeMux()
	path := g.redirect.Path
	if path == "" {
		path = "/"
	}
	mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch {
		case q.Get("state") != state:
			http.Error(w, "state mismatch", http.StatusBadRequest)
			results <- callbackResult{err: errors.New("oauth state mismatch")}
		case q.Get("error") != "":
			http.Error(w, q.Get("error"), http.StatusBadRequest)
			results <- callbackResult{err: fmt.Errorf("authorization refused: %s", q.Get("error"))}
		default:
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			fmt.Fprint(w, "<html><body>Signed in to GifCamp. You can close this window.</body></html>")
			results <- callbackResult{code: q.Get("code")}
		}
	})

	server := &http.Server{Handler: mux}
	go func() {
		if serveErr := server.Serve(listener); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			g.logger.Warn().Err(serveErr).Msg("oauth callback server stopped")
		}
	}()
	defer server.Close()

	if onURL != nil {
		onURL(g.AuthURL(state))
	}

	select {
	case res := <-results:
		return res.code, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Exchange trades the authorization code for tokens, verifies the ID
// token and extracts the user's profile from its claims. An account
// without an email address is rejected with [ErrNoEmail].
func (g *GoogleAuthenticator) Exchange(ctx context.Context, code string) (models.GoogleUserInfo, string, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return models.GoogleUserInfo{}, "", fmt.Errorf("token exchange: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return models.GoogleUserInfo{}, "", errors.New("no id_token in response")
	}

	idToken, err := g.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return models.GoogleUserInfo{}, "", fmt.Errorf("verify id_token: %w", err)
	}

	var info models.GoogleUserInfo
	if err = idToken.Claims(&info); err != nil {
		return models.GoogleUserInfo{}, "", fmt.Errorf("parse claims: %w", err)
	}

	if info.Email == "" {
		// Some accounts omit claims from the ID token, the userinfo
		// endpoint is the fallback source.
		info, err = g.UserInfo(ctx, token.AccessToken)
		if err != nil {
			return models.GoogleUserInfo{}, "", err
		}
	}

	return info, token.AccessToken, nil
}

// UserInfo fetches the user's profile from the Google userinfo endpoint
// with a bearer access token.
func (g *GoogleAuthenticator) UserInfo(ctx context.Context, accessToken string) (models.GoogleUserInfo, error) {
	resp, err := g.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		Get(g.userInfoURL)
	if err != nil {
		return models.GoogleUserInfo{}, fmt.Errorf("userinfo request: %w", err)
	}
	if !resp.IsSuccess() {
		return models.GoogleUserInfo{}, fmt.Errorf("userinfo: HTTP %d: %s", resp.StatusCode(), http.StatusText(resp.StatusCode()))
	}

	var info models.GoogleUserInfo
	if err = json.Unmarshal(resp.Body(), &info); err != nil {
		return models.GoogleUserInfo{}, fmt.Errorf("decode userinfo: %w", err)
	}

	if info.Email == "" {
		return models.GoogleUserInfo{}, ErrNoEmail
	}

	return info, nil
}

// GenerateState generates a cryptographically secure random state string.
func GenerateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
