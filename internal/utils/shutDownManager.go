package utils

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog"
)

// ShutdownManager runs registered release tasks, newest first, once a
// termination signal arrives or Shutdown is called.
type ShutdownManager struct {
	cancelFunc    context.CancelFunc
	shutdownTasks []func(context.Context) error
	mu            sync.Mutex
	once          sync.Once
	done          chan struct{}
	logger        zerolog.Logger
	timeout       time.Duration
}

func NewShutdownManager(ctx context.Context, logger zerolog.Logger) (context.Context, *ShutdownManager) {
	ctx, cancel := context.WithCancel(ctx)
	manager := &ShutdownManager{
		cancelFunc: cancel,
		done:       make(chan struct{}),
		logger:     logger,
		timeout:    15 * time.Second,
	}
	return ctx, manager
}

func (sm *ShutdownManager) Register(task func(context.Context) error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.shutdownTasks = append(sm.shutdownTasks, task)
}

func (sm *ShutdownManager) StartListening() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		sm.logger.Info().Stringer("signal", sig).Msg("[SHUTDOWN] received signal")
		sm.Shutdown()
	}()
}

// Shutdown cancels the root context and runs the registered tasks. Only the
// first call has an effect.
func (sm *ShutdownManager) Shutdown() {
	sm.once.Do(func() {
		defer close(sm.done)
		sm.cancelFunc()

		ctx, cancel := context.WithTimeout(context.Background(), sm.timeout)
		defer cancel()

		sm.mu.Lock()
		defer sm.mu.Unlock()
		for i := len(sm.shutdownTasks) - 1; i >= 0; i-- {
			if err := sm.shutdownTasks[i](ctx); err != nil {
				sm.logger.Error().Err(err).Msg("[SHUTDOWN] error during shutdown")
			}
		}

		sm.logger.Info().Msg("[SHUTDOWN] graceful shutdown complete")
	})
}

// Done is closed once all tasks have run.
func (sm *ShutdownManager) Done() <-chan struct{} {
	return sm.done
}
