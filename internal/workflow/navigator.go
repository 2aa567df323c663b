package workflow

import "sync"

// Navigator performs a navigation on behalf of business logic, so a
// workflow never reaches for the browsing context directly.
type Navigator interface {
	Navigate(target string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(target string)

func (f NavigatorFunc) Navigate(target string) { f(target) }

// Redirect records navigations for a view to act on later.
type Redirect struct {
	mu      sync.Mutex
	pending string
	history []string
}

func (r *Redirect) Navigate(target string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = target
	r.history = append(r.history, target)
}

// Pending returns the last requested target, or "" when none.
func (r *Redirect) Pending() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending
}

func (r *Redirect) History() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.history...)
}
