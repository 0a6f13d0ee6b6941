// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GifCamp Authors

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/gifcamp/gifcamp/internal/adapter"
	"github.com/gifcamp/gifcamp/internal/logger"
	"github.com/gifcamp/gifcamp/internal/store"
	"github.com/gifcamp/gifcamp/models"
)

type sessionService struct {
	sessions store.KVRepository
	notify   *loginNotifyJob
	logger   *logger.Logger

	mu      sync.Mutex
	session models.Session
	loading bool
	// loginGen counts logins and logouts. A notification result is
	// applied only when its generation still matches, so answers to a
	// superseded login cannot resurrect or corrupt the current session.
	loginGen uint64

	recorded chan LoginRecordResult
}

// NewSessionService creates a SessionService persisting to sessions and
// notifying the backend through backend. Loading reports true until the
// first Restore call completes.
func NewSessionService(sessions store.KVRepository, backend adapter.BackendAdapter, log *logger.Logger) SessionService {
	return &sessionService{
		sessions: sessions,
		notify:   newLoginNotifyJob(backend, log, 0),
		logger:   log,
		loading:  true,
		recorded: make(chan LoginRecordResult, 1),
	}
}

func (s *sessionService) Restore(ctx context.Context) models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.loading = false }()

	rawUser, userErr := s.sessions.Get(ctx, models.SessionKeyUser)
	token, tokenErr := s.sessions.Get(ctx, models.SessionKeyAuthToken)

	if errors.Is(userErr, store.ErrKeyNotFound) && errors.Is(tokenErr, store.ErrKeyNotFound) {
		s.session = models.Session{}
		return s.session
	}
	if userErr != nil || tokenErr != nil {
		// A half-written or unreadable session is unusable, drop it.
		s.logger.Warn().AnErr("userErr", userErr).AnErr("tokenErr", tokenErr).Msg("stored session unreadable, clearing")
		s.clearStored(ctx)
		s.session = models.Session{}
		return s.session
	}

	var user models.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		s.logger.Warn().Err(err).Msg("stored user record corrupted, clearing session")
		s.clearStored(ctx)
		s.session = models.Session{}
		return s.session
	}

	s.session = models.Session{User: user, AuthToken: token}
	if !s.session.Valid() {
		s.clearStored(ctx)
		s.session = models.Session{}
	}

	return s.session
}

func (s *sessionService) Login(ctx context.Context, info models.GoogleUserInfo, token string) (models.Session, error) {
	user := info.ToUser()

	s.mu.Lock()
	if err := s.persist(ctx, user, token); err != nil {
		s.mu.Unlock()
		return models.Session{}, fmt.Errorf("%w: %v", ErrSessionCommit, err)
	}

	s.session = models.Session{User: user, AuthToken: token}
	s.loginGen++
	gen := s.loginGen
	session := s.session
	s.mu.Unlock()

	method := user.Method
	if method == "" {
		method = models.MethodOAuth
	}

	// The local commit is done; the backend only gets told afterwards
	// and its failure stays a log line.
	s.notify.Dispatch(models.RecordLoginRequest{
		Name:      user.Name,
		Email:     user.Email,
		Method:    method,
		AuthToken: token,
	}, func(remote *models.User, err error) {
		s.applyRecordResult(gen, remote, err)
	})

	return session, nil
}

// applyRecordResult folds the backend's answer to the login notification
// into the session, unless a newer login or a logout made it stale.
func (s *sessionService) applyRecordResult(gen uint64, remote *models.User, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.loginGen {
		return
	}

	result := LoginRecordResult{Err: err}
	if err == nil && remote != nil {
		merged := mergeUsers(s.session.User, *remote)
		s.session.User = merged
		result.User = &merged

		if persistErr := s.persist(context.Background(), merged, s.session.AuthToken); persistErr != nil {
			s.logger.Warn().Err(persistErr).Msg("could not persist merged user")
		}
	}

	select {
	case s.recorded <- result:
	default:
		// Listener is behind, replace the stale result.
		select {
		case <-s.recorded:
		default:
		}
		s.recorded <- result
	}
}

func (s *sessionService) Logout(ctx context.Context) error {
	s.notify.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loginGen++
	s.session = models.Session{}

	if err := s.sessions.Delete(ctx, models.SessionKeyUser, models.SessionKeyAuthToken); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}

func (s *sessionService) Current() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

func (s *sessionService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *sessionService) LoginRecorded() <-chan LoginRecordResult {
	return s.recorded
}

func (s *sessionService) Close() {
	s.notify.Stop()
}

// persist writes the user record and token under the session keys.
// Callers hold s.mu.
func (s *sessionService) persist(ctx context.Context, user models.User, token string) error {
	ctx = s.logger.WithContext(ctx)

	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err = s.sessions.Put(ctx, models.SessionKeyUser, string(raw)); err != nil {
		return fmt.Errorf("store user: %w", err)
	}
	if err = s.sessions.Put(ctx, models.SessionKeyAuthToken, token); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	return nil
}

func (s *sessionService) clearStored(ctx context.Context) {
	ctx = s.logger.WithContext(ctx)
	if err := s.sessions.Delete(ctx, models.SessionKeyUser, models.SessionKeyAuthToken); err != nil {
		s.logger.Warn().Err(err).Msg("could not clear stored session")
	}
}
