package router

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// State is a snapshot of the navigation state.
type State struct {
	Screen        Screen
	Params        Params
	TabBarVisible bool
	// Resume is the state saved by the screen when it was last left,
	// only populated when returning through the history stack.
	Resume any
}

// Transition describes a completed navigation. Listeners receive one per
// screen change, including GoBack.
type Transition struct {
	ID     uuid.UUID
	From   Screen
	To     Screen
	Params Params
	Back   bool
	At     time.Time
}

// Listener is notified after every transition, outside the router lock.
type Listener func(Transition)

// Option configures a Router.
type Option func(*Router)

// WithFallback sets the screen GoBack returns to. Defaults to ScreenHome.
func WithFallback(screen Screen) Option {
	return func(r *Router) {
		if screen.Valid() {
			r.fallback = screen
		}
	}
}

// WithHistory makes GoBack pop a stack of previously visited screens
// instead of jumping to the fallback screen. limit bounds the stack depth;
// zero means unbounded.
func WithHistory(limit int) Option {
	return func(r *Router) {
		r.stack = NewStack(limit)
	}
}

// WithInitial sets the starting screen. Defaults to ScreenSplash.
func WithInitial(screen Screen) Option {
	return func(r *Router) {
		if screen.Valid() {
			r.current = screen
		}
	}
}

// WithLogger routes transition logging to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Router is the single source of truth for which screen is shown, the
// params it was opened with, and whether the tab bar is visible.
// It is safe for concurrent use.
type Router struct {
	mu        sync.RWMutex
	current   Screen
	params    Params
	resume    any
	returning any
	fallback  Screen
	stack     *Stack // nil unless WithHistory
	listeners []Listener

	tabBar *atomic.Bool
	logger *slog.Logger
	now    func() time.Time
}

// New creates a Router positioned on ScreenSplash with the tab bar visible.
func New(opts ...Option) *Router {
	r := &Router{
		current:  ScreenSplash,
		fallback: ScreenHome,
		tabBar:   atomic.NewBool(true),
		logger:   slog.New(slog.DiscardHandler),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Navigate replaces the current screen and params. Params are never merged
// with the previous bag. The tab bar is reset to visible; screens that need
// it hidden must hide it again once shown.
func (r *Router) Navigate(screen Screen, params Params) error {
	if !screen.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownScreen, int(screen))
	}
	if err := checkParams(screen, params); err != nil {
		return err
	}

	r.mu.Lock()
	from := r.current
	if r.stack != nil {
		switch {
		case screen.IsTab():
			// tab roots start a fresh history
			r.stack.Clear()
		case from != ScreenSplash:
			r.stack.Push(from, r.params, r.resume)
		}
	}
	r.current = screen
	r.params = params
	r.resume = nil
	r.returning = nil
	r.tabBar.Store(true)
	listeners := r.listeners
	r.mu.Unlock()

	r.notify(listeners, Transition{From: from, To: screen, Params: params})
	return nil
}

// GoBack leaves the current screen. Without history it moves to the
// fallback screen with empty params, and does nothing when already there.
// With history it restores the most recent frame, falling back when the
// stack is empty. The resulting state is returned.
func (r *Router) GoBack() State {
	r.mu.Lock()
	from := r.current
	var frame *Frame
	if r.stack != nil {
		frame = r.stack.Pop()
	}

	switch {
	case frame != nil:
		r.current = frame.Screen
		r.params = frame.Params
		r.resume = frame.Resume
		r.returning = frame.Resume
	case from == r.fallback:
		state := r.stateLocked()
		r.mu.Unlock()
		return state
	default:
		r.current = r.fallback
		r.params = nil
		r.resume = nil
		r.returning = nil
	}
	r.tabBar.Store(true)
	state := r.stateLocked()
	listeners := r.listeners
	r.mu.Unlock()

	r.notify(listeners, Transition{From: from, To: state.Screen, Params: state.Params, Back: true})
	return state
}

// SaveResume records state the current screen wants back if it is returned
// to through history, such as a scroll offset or reader index.
func (r *Router) SaveResume(resume any) {
	r.mu.Lock()
	r.resume = resume
	r.mu.Unlock()
}

// SetTabBarVisible sets the global tab bar visibility flag.
func (r *Router) SetTabBarVisible(visible bool) {
	r.tabBar.Store(visible)
}

// TabBarVisible reports the raw visibility flag.
func (r *Router) TabBarVisible() bool {
	return r.tabBar.Load()
}

// ShouldShowTabs reports whether the root layout mounts the tab bar:
// the flag is set and the splash screen is not showing.
func (r *Router) ShouldShowTabs() bool {
	return r.tabBar.Load() && r.Current() != ScreenSplash
}

// Current returns the current screen.
func (r *Router) Current() Screen {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Params returns the params the current screen was opened with.
func (r *Router) Params() Params {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.params
}

// State returns a snapshot of the whole navigation state.
func (r *Router) State() State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stateLocked()
}

// Depth returns the number of history frames, always zero without history.
func (r *Router) Depth() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.stack == nil {
		return 0
	}
	return r.stack.Len()
}

// Breadcrumbs returns the screens on the history stack followed by the
// current screen.
func (r *Router) Breadcrumbs() []Screen {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var crumbs []Screen
	if r.stack != nil {
		crumbs = r.stack.Screens()
	}
	return append(crumbs, r.current)
}

// OnTransition registers a listener for completed transitions.
func (r *Router) OnTransition(fn Listener) *Router {
	r.mu.Lock()
	r.listeners = append(r.listeners, fn)
	r.mu.Unlock()
	return r
}

func (r *Router) stateLocked() State {
	return State{
		Screen:        r.current,
		Params:        r.params,
		TabBarVisible: r.tabBar.Load(),
		Resume:        r.returning,
	}
}

func (r *Router) notify(listeners []Listener, t Transition) {
	t.ID = uuid.New()
	t.At = r.now()

	r.logger.Debug("navigation",
		"id", t.ID.String(),
		"from", t.From.String(),
		"to", t.To.String(),
		"back", t.Back,
	)

	for _, fn := range listeners {
		fn(t)
	}
}
