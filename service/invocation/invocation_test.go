package invocation

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/marketplace"
	mMarketplace "github.com/x-xyz/marketcore/domain/marketplace/mocks"
)

var mockCtx = ctx.Background()

// retrying runs fn twice, the way a transaction retried after a transient error does
type retrying struct{}

func (retrying) RunWithTransaction(c ctx.Ctx, fn func(ctx.Ctx) error) error {
	_ = fn(c)
	return fn(c)
}

type runnerSuite struct {
	suite.Suite
	notifier *mMarketplace.Notifier
	runner   Runner
}

func TestRunner(t *testing.T) {
	suite.Run(t, new(runnerSuite))
}

func (s *runnerSuite) SetupTest() {
	s.notifier = &mMarketplace.Notifier{}
	s.runner = NewRunner(Direct{}, s.notifier)
}

func (s *runnerSuite) TearDownTest() {
	s.notifier.AssertExpectations(s.T())
}

func (s *runnerSuite) TestEventsAfterCommit() {
	evt := marketplace.BalanceMoved(marketplace.EventDeposited, domain.Address("0xa"), domain.NewBalance(1))
	notified := false
	s.notifier.On("Notify", mock.Anything, evt).Run(func(mock.Arguments) { notified = true }).Once()

	err := s.runner.Run(mockCtx, func(c ctx.Ctx) error {
		Emit(c, evt)
		s.False(notified)
		return nil
	})
	s.NoError(err)
	s.True(notified)
}

func (s *runnerSuite) TestNoEventsOnFailure() {
	errFailed := errors.New("failed")
	hooked := false

	err := s.runner.Run(mockCtx, func(c ctx.Ctx) error {
		Emit(c, marketplace.BalanceMoved(marketplace.EventWithdrawn, domain.Address("0xa"), domain.NewBalance(1)))
		AfterCommit(c, func(ctx.Ctx) { hooked = true })
		return errFailed
	})
	s.Equal(errFailed, err)
	s.False(hooked)
	s.notifier.AssertNotCalled(s.T(), "Notify", mock.Anything, mock.Anything)
}

func (s *runnerSuite) TestNestedRunJoins() {
	evt := marketplace.CollectionRegistered(domain.Address("0xc"), domain.Address("0xa"))
	s.notifier.On("Notify", mock.Anything, evt).Once()

	done := make(chan error, 1)
	go func() {
		done <- s.runner.Run(mockCtx, func(c ctx.Ctx) error {
			return s.runner.Run(c, func(c ctx.Ctx) error {
				Emit(c, evt)
				return nil
			})
		})
	}()

	select {
	case err := <-done:
		s.NoError(err)
	case <-time.After(time.Second):
		s.FailNow("nested run deadlocked")
	}
}

func (s *runnerSuite) TestRetryResetsOutbox() {
	runner := NewRunner(retrying{}, s.notifier)
	evt := marketplace.CollectionRegistered(domain.Address("0xc"), domain.Address("0xa"))
	s.notifier.On("Notify", mock.Anything, evt).Once()
	hooks := 0

	s.NoError(runner.Run(mockCtx, func(c ctx.Ctx) error {
		Emit(c, evt)
		AfterCommit(c, func(ctx.Ctx) { hooks++ })
		return nil
	}))
	s.Equal(1, hooks)
}

func (s *runnerSuite) TestRollbackOnFailure() {
	errFailed := errors.New("failed")
	steps := []string{}

	err := s.runner.Run(mockCtx, func(c ctx.Ctx) error {
		OnRollback(c, func(ctx.Ctx) error {
			steps = append(steps, "first")
			return nil
		})
		// nested invocations add to the outer undo log
		s.NoError(s.runner.Run(c, func(c ctx.Ctx) error {
			OnRollback(c, func(c ctx.Ctx) error {
				OnRollback(c, func(ctx.Ctx) error {
					steps = append(steps, "registered while rolling back")
					return nil
				})
				steps = append(steps, "nested")
				return errors.New("undo failed")
			})
			return nil
		}))
		OnRollback(c, func(ctx.Ctx) error {
			steps = append(steps, "last")
			return nil
		})
		return errFailed
	})
	s.Equal(errFailed, err)
	s.Equal([]string{"last", "nested", "first"}, steps)
}

func (s *runnerSuite) TestNoRollbackOnSuccess() {
	rolledBack := false
	s.NoError(s.runner.Run(mockCtx, func(c ctx.Ctx) error {
		OnRollback(c, func(ctx.Ctx) error {
			rolledBack = true
			return nil
		})
		return nil
	}))
	s.False(rolledBack)
}

func (s *runnerSuite) TestSerialized() {
	var (
		mu      sync.Mutex
		running int
		maxSeen int
		wg      sync.WaitGroup
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.NoError(s.runner.Run(mockCtx, func(ctx.Ctx) error {
				mu.Lock()
				running++
				if running > maxSeen {
					maxSeen = running
				}
				mu.Unlock()
				time.Sleep(time.Millisecond)
				mu.Lock()
				running--
				mu.Unlock()
				return nil
			}))
		}()
	}
	wg.Wait()
	s.Equal(1, maxSeen)
}

func (s *runnerSuite) TestCancelledWhileWaiting() {
	started := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_ = s.runner.Run(mockCtx, func(ctx.Ctx) error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	c, cancel := ctx.WithCancel(mockCtx)
	cancel()
	s.Error(s.runner.Run(c, func(ctx.Ctx) error { return nil }))
	close(release)
}

func (s *runnerSuite) TestHookPanicDoesNotEscape() {
	s.NotPanics(func() {
		s.NoError(s.runner.Run(mockCtx, func(c ctx.Ctx) error {
			AfterCommit(c, func(ctx.Ctx) { panic("boom") })
			return nil
		}))
	})
}

func TestAfterCommitOutsideInvocation(t *testing.T) {
	ran := false
	AfterCommit(mockCtx, func(ctx.Ctx) { ran = true })
	require.True(t, ran)
}

func TestOnRollbackOutsideInvocation(t *testing.T) {
	ran := false
	OnRollback(mockCtx, func(ctx.Ctx) error {
		ran = true
		return nil
	})
	require.False(t, ran)
}

func TestGuard(t *testing.T) {
	req := require.New(t)
	g := &Guard{}

	release, err := g.Enter()
	req.NoError(err)

	_, err = g.Enter()
	req.ErrorIs(err, marketplace.ErrReentrantCall)

	release()
	release()

	release, err = g.Enter()
	req.NoError(err)
	release()
}
