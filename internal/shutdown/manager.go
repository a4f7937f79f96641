package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"notepad/internal/logger"
)

const defaultTimeout = 5 * time.Second

// Step is one named unit of shutdown work
type Step struct {
	Name string
	Run  func()
}

// Manager runs registered steps once, newest first, within a shared deadline
type Manager struct {
	logger  logger.Logger
	timeout time.Duration

	mu    sync.Mutex
	steps []Step

	once sync.Once
	done chan struct{}
}

func NewManager(log logger.Logger) *Manager {
	return &Manager{
		logger:  log,
		timeout: defaultTimeout,
		done:    make(chan struct{}),
	}
}

// SetTimeout bounds the whole shutdown sequence
func (m *Manager) SetTimeout(timeout time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timeout = timeout
}

func (m *Manager) Register(name string, run func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.steps = append(m.steps, Step{Name: name, Run: run})
}

// Listen runs Shutdown on SIGINT or SIGTERM until ctx is cancelled
func (m *Manager) Listen(ctx context.Context) {
	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer stop()
		<-sigCtx.Done()
		if ctx.Err() != nil {
			return
		}
		m.logger.Info("ShutdownManager", "shutdown signal received", nil)
		m.Shutdown()
	}()
}

// Shutdown runs the steps; only the first call does any work. Steps still
// pending when the deadline passes are skipped.
func (m *Manager) Shutdown() {
	m.once.Do(func() {
		defer close(m.done)

		m.mu.Lock()
		steps := append([]Step(nil), m.steps...)
		timeout := m.timeout
		m.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		m.logger.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
			"steps": len(steps),
		})

		for i := len(steps) - 1; i >= 0; i-- {
			if !m.runStep(ctx, steps[i]) {
				m.logger.Warning("ShutdownManager", "shutdown deadline exceeded", map[string]interface{}{
					"step":    steps[i].Name,
					"skipped": i,
				})
				return
			}
		}

		m.logger.Info("ShutdownManager", "shutdown sequence completed", nil)
	})
}

func (m *Manager) runStep(ctx context.Context, step Step) bool {
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		step.Run()
	}()

	select {
	case <-finished:
		m.logger.Debug("ShutdownManager", "shutdown step completed", map[string]interface{}{
			"step": step.Name,
		})
		return true
	case <-ctx.Done():
		return false
	}
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}
