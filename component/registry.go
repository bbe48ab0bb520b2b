package component

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/wv0m56/http-client/logger"
)

const stopTimeout = 10 * time.Second

type entry struct {
	component Component
	started   bool
}

// Registry manages component lifecycle with deterministic ordering.
// Components start in registration order and stop in reverse order.
type Registry struct {
	mu      sync.Mutex
	entries []*entry
	lookup  map[string]*entry
	log     *logger.Logger
}

// NewRegistry creates an empty registry. A nil log disables logging.
func NewRegistry(log *logger.Logger) *Registry {
	if log == nil {
		log = logger.Nop()
	}
	return &Registry{
		lookup: make(map[string]*entry),
		log:    log,
	}
}

// Register adds a component. Register dependencies first; they start
// first and stop last. Names must be unique.
func (r *Registry) Register(c Component) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := c.Name()
	if _, exists := r.lookup[name]; exists {
		return fmt.Errorf("component: %q already registered", name)
	}
	e := &entry{component: c}
	r.entries = append(r.entries, e)
	r.lookup[name] = e
	return nil
}

// Get returns a registered component by name.
func (r *Registry) Get(name string) (Component, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.lookup[name]
	if !ok {
		return nil, false
	}
	return e.component, true
}

// StartAll starts components in registration order. The first failure
// aborts the sequence; already-started components stay started so the
// caller can StopAll.
func (r *Registry) StartAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.entries {
		name := e.component.Name()
		if err := e.component.Start(ctx); err != nil {
			r.log.Error("component start failed", map[string]any{
				logger.FieldComponent: name,
				logger.FieldError:     err.Error(),
			})
			return fmt.Errorf("component: start %s: %w", name, err)
		}
		e.started = true
		r.log.Debug("component started", map[string]any{logger.FieldComponent: name})
	}
	return nil
}

// StopAll stops started components in reverse registration order. Every
// component gets a stop attempt even if an earlier one fails.
func (r *Registry) StopAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for i := len(r.entries) - 1; i >= 0; i-- {
		e := r.entries[i]
		if !e.started {
			continue
		}
		name := e.component.Name()
		stopCtx, cancel := context.WithTimeout(ctx, stopTimeout)
		if err := e.component.Stop(stopCtx); err != nil {
			errs = append(errs, fmt.Errorf("component: stop %s: %w", name, err))
			r.log.Error("component stop failed", map[string]any{
				logger.FieldComponent: name,
				logger.FieldError:     err.Error(),
			})
		} else {
			r.log.Debug("component stopped", map[string]any{logger.FieldComponent: name})
		}
		e.started = false
		cancel()
	}
	if len(errs) > 0 {
		return fmt.Errorf("component: shutdown errors: %v", errs)
	}
	return nil
}

// HealthAll reports the health of every registered component.
func (r *Registry) HealthAll(ctx context.Context) []Health {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Health, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.component.Health(ctx))
	}
	return out
}
