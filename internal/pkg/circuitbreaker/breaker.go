package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/piresc/lleva/internal/pkg/logger"
)

// ErrOpen is returned without calling the protected function while the
// breaker is open or its half-open trial slots are taken
var ErrOpen = errors.New("circuit breaker is open")

// State represents the circuit breaker state
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	default:
		return "unknown"
	}
}

// Config holds circuit breaker configuration
type Config struct {
	Name             string
	FailureThreshold uint32        // consecutive failures that open the breaker
	OpenTimeout      time.Duration // time spent open before a trial request
	HalfOpenRequests uint32        // concurrent trial requests while half-open
	IsFailure        func(err error) bool
	Now              func() time.Time
}

// DefaultConfig returns a default circuit breaker configuration
func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		FailureThreshold: 5,
		OpenTimeout:      30 * time.Second,
		HalfOpenRequests: 1,
	}
}

// Breaker stops calling a failing dependency for a while after too many
// consecutive failures
type Breaker struct {
	config Config
	logger *logger.ZapLogger

	mu       sync.Mutex
	state    State
	failures uint32
	trials   uint32
	openedAt time.Time
}

// New creates a new circuit breaker. Zero config fields take the defaults.
func New(config Config, l *logger.ZapLogger) *Breaker {
	defaults := DefaultConfig(config.Name)
	if config.FailureThreshold == 0 {
		config.FailureThreshold = defaults.FailureThreshold
	}
	if config.OpenTimeout <= 0 {
		config.OpenTimeout = defaults.OpenTimeout
	}
	if config.HalfOpenRequests == 0 {
		config.HalfOpenRequests = defaults.HalfOpenRequests
	}
	if config.IsFailure == nil {
		config.IsFailure = func(err error) bool { return err != nil }
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	if l == nil {
		l = logger.NewNopLogger()
	}
	return &Breaker{config: config, logger: l}
}

// Execute runs fn unless the breaker is open
func (b *Breaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	trial, err := b.before()
	if err != nil {
		return err
	}

	err = fn(ctx)
	b.after(trial, b.config.IsFailure(err))
	return err
}

func (b *Breaker) before() (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen {
		if b.config.Now().Sub(b.openedAt) < b.config.OpenTimeout {
			return false, ErrOpen
		}
		b.setState(StateHalfOpen)
		b.trials = 0
	}

	if b.state == StateHalfOpen {
		if b.trials >= b.config.HalfOpenRequests {
			return false, ErrOpen
		}
		b.trials++
		return true, nil
	}
	return false, nil
}

func (b *Breaker) after(trial bool, failed bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if trial {
		b.trials--
		if b.state != StateHalfOpen {
			return
		}
		if failed {
			b.open()
			return
		}
		b.failures = 0
		b.setState(StateClosed)
		return
	}

	if !failed {
		b.failures = 0
		return
	}
	b.failures++
	if b.state == StateClosed && b.failures >= b.config.FailureThreshold {
		b.open()
	}
}

func (b *Breaker) open() {
	b.openedAt = b.config.Now()
	b.setState(StateOpen)
}

func (b *Breaker) setState(state State) {
	if b.state == state {
		return
	}
	prev := b.state
	b.state = state

	b.logger.Warn("Circuit breaker state changed",
		logger.String("name", b.config.Name),
		logger.String("from", prev.String()),
		logger.String("to", state.String()),
		logger.Int("consecutive_failures", int(b.failures)))
}

// State returns the current state of the circuit breaker
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Name returns the circuit breaker name
func (b *Breaker) Name() string {
	return b.config.Name
}

// CheckHealth reports the dependency as unhealthy while the breaker is open
func (b *Breaker) CheckHealth(ctx context.Context) error {
	if b.State() == StateOpen {
		return ErrOpen
	}
	return nil
}
