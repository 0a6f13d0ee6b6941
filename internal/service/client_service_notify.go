package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/gifcamp/gifcamp/internal/adapter"
	"github.com/gifcamp/gifcamp/internal/logger"
	"github.com/gifcamp/gifcamp/models"
)

const defaultNotifyTimeout = 30 * time.Second

// loginNotifyJob delivers the record-login notification in the
// background, detached from the caller's context so that the login
// completes locally no matter how the backend behaves.
type loginNotifyJob struct {
	adapter adapter.BackendAdapter
	logger  *logger.Logger
	timeout time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func newLoginNotifyJob(backend adapter.BackendAdapter, log *logger.Logger, timeout time.Duration) *loginNotifyJob {
	if timeout <= 0 {
		timeout = defaultNotifyTimeout
	}
	return &loginNotifyJob{adapter: backend, logger: log, timeout: timeout}
}

// Dispatch stops any in-flight notification, then sends req on a fresh
// detached context and reports the outcome through done. Only one
// notification is in flight at a time; a new login supersedes the old
// one.
func (j *loginNotifyJob) Dispatch(req models.RecordLoginRequest, done func(*models.User, error)) {
	j.Stop()

	log := j.logger.GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("email", req.Email)
	})

	j.mu.Lock()
	jobCtx, cancel := context.WithTimeout(log.WithContext(context.Background()), j.timeout)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		defer cancel()

		user, err := j.adapter.RecordLogin(jobCtx, req)
		if err != nil {
			log.Warn().Err(err).Msg("login notification failed")
		}
		if done != nil {
			done(user, err)
		}
	}()
}

// Stop cancels the in-flight notification, if any, and blocks until its
// goroutine has exited. Safe to call when nothing is running.
func (j *loginNotifyJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
