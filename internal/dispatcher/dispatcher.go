package dispatcher

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/dshills/cutline/internal/dispatcher/execctx"
	"github.com/dshills/cutline/internal/dispatcher/handler"
	"github.com/dshills/cutline/internal/input"
)

// Dispatcher routes actions to namespace handlers and runs them.
type Dispatcher struct {
	mu sync.RWMutex

	router *Router
	opts   options
	stats  *Stats

	preHooks  []PreDispatchHook
	postHooks []PostDispatchHook
}

// New creates a dispatcher with no handlers registered.
func New(opts ...Option) *Dispatcher {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	d := &Dispatcher{
		router: NewRouter(),
		opts:   o,
	}
	if o.stats {
		d.stats = newStats()
	}
	if o.maxCount > 0 {
		d.preHooks = append(d.preHooks, countLimit(o.maxCount))
	}
	return d
}

// Register installs h for its namespace.
func (d *Dispatcher) Register(h handler.Handler) {
	d.router.Register(h)
}

// CanDispatch returns true if some handler accepts the action.
func (d *Dispatcher) CanDispatch(actionName string) bool {
	_, err := d.router.Lookup(actionName)
	return err == nil
}

// Namespaces returns the registered namespaces, sorted.
func (d *Dispatcher) Namespaces() []string {
	return d.router.Namespaces()
}

// Dispatch executes an action synchronously against ctx.
// A nil ctx is treated as an empty context with no buffer open.
func (d *Dispatcher) Dispatch(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if action.Name == "" {
		return handler.Error(ErrEmptyAction)
	}
	if ctx == nil {
		ctx = execctx.New()
	}
	if action.Count > 0 {
		ctx.Count = action.Count
	}

	start := time.Now()
	if !d.runPreHooks(&action, ctx) {
		return handler.Error(fmt.Errorf("%w: %s", ErrCancelled, action.Name))
	}

	var result handler.Result
	if h, err := d.router.Lookup(action.Name); err != nil {
		result = handler.Error(err)
	} else {
		result = d.execute(h, action, ctx)
	}

	d.runPostHooks(&action, ctx, &result)

	if d.stats != nil {
		d.stats.record(action.Name, time.Since(start), result.Status)
	}
	return result
}

func (d *Dispatcher) execute(h handler.Handler, action input.Action, ctx *execctx.ExecutionContext) (result handler.Result) {
	if !d.opts.recoverPanics {
		return h.HandleAction(action, ctx)
	}

	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)
			result = handler.Error(fmt.Errorf("%w: %s: %v\n%s", ErrPanic, action.Name, r, stack[:n]))
			if d.stats != nil {
				d.stats.recordPanic()
			}
		}
	}()
	return h.HandleAction(action, ctx)
}

// AddPreHook registers a hook that runs before each dispatch.
func (d *Dispatcher) AddPreHook(hook PreDispatchHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.preHooks = append(d.preHooks, hook)
}

// AddPostHook registers a hook that runs after each dispatch.
func (d *Dispatcher) AddPostHook(hook PostDispatchHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.postHooks = append(d.postHooks, hook)
}

// UseLogger logs every dispatch to logger.
func (d *Dispatcher) UseLogger(logger Logger) {
	h := NewLoggingHook(logger)
	d.AddPreHook(h)
	d.AddPostHook(h)
}

func (d *Dispatcher) runPreHooks(action *input.Action, ctx *execctx.ExecutionContext) bool {
	d.mu.RLock()
	hooks := append([]PreDispatchHook(nil), d.preHooks...)
	d.mu.RUnlock()

	for _, h := range hooks {
		if !h.PreDispatch(action, ctx) {
			return false
		}
	}
	return true
}

func (d *Dispatcher) runPostHooks(action *input.Action, ctx *execctx.ExecutionContext, result *handler.Result) {
	d.mu.RLock()
	hooks := append([]PostDispatchHook(nil), d.postHooks...)
	d.mu.RUnlock()

	for _, h := range hooks {
		h.PostDispatch(action, ctx, result)
	}
}

// Stats returns the dispatch statistics, or nil unless WithStats was given.
func (d *Dispatcher) Stats() *Stats {
	return d.stats
}
