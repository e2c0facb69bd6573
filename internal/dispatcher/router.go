package dispatcher

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/cutline/internal/dispatcher/handler"
)

// Router maps action namespaces to their handlers.
type Router struct {
	mu       sync.RWMutex
	handlers map[string]handler.Handler
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{
		handlers: make(map[string]handler.Handler),
	}
}

// Register installs h for its namespace, replacing any previous handler.
func (r *Router) Register(h handler.Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[h.Namespace()] = h
}

// Unregister removes the handler for namespace.
func (r *Router) Unregister(namespace string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.handlers, namespace)
}

// Lookup returns the handler for actionName. It fails with
// ErrUnknownNamespace when no handler owns the prefix and with
// ErrUnknownAction when the owner does not accept the action.
func (r *Router) Lookup(actionName string) (handler.Handler, error) {
	ns, _ := handler.SplitName(actionName)

	r.mu.RLock()
	h, ok := r.handlers[ns]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNamespace, actionName)
	}
	if !h.CanHandle(actionName) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, actionName)
	}
	return h, nil
}

// Namespaces returns the registered namespaces, sorted.
func (r *Router) Namespaces() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
