package components

import (
	"crypto/rand"
	"slices"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/alexisbeaulieu97/loom/internal/ui"
)

// Toast is a transient notification.
type Toast struct {
	ID        string
	Variant   ToastVariant
	Message   string
	CreatedAt time.Time
	// ExpiresAt is zero for toasts that stay until dismissed.
	ExpiresAt time.Time
}

// Expired reports whether the toast should be gone at now.
func (t Toast) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && !now.Before(t.ExpiresAt)
}

// Toaster queues toasts and renders the newest ones. Toast ids are ULIDs so
// they sort by creation time. It is safe for concurrent use.
type Toaster struct {
	BaseComponent
	mu      sync.Mutex
	toasts  []Toast
	limit   int
	now     func() time.Time
	entropy *ulid.MonotonicEntropy
}

// NewToaster creates a toaster that shows at most limit toasts at once.
func NewToaster(limit int) *Toaster {
	if limit <= 0 {
		limit = 3
	}
	return &Toaster{
		BaseComponent: NewBaseComponent(),
		limit:         limit,
		now:           time.Now,
		entropy:       ulid.Monotonic(rand.Reader, 0),
	}
}

// WithClock replaces the time source.
func (t *Toaster) WithClock(now func() time.Time) *Toaster {
	t.now = now
	return t
}

// Push queues a toast and returns its id. A ttl of zero or less keeps the
// toast until Dismiss.
func (t *Toaster) Push(variant ToastVariant, message string, ttl time.Duration) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	toast := Toast{
		ID:        ulid.MustNew(ulid.Timestamp(now), t.entropy).String(),
		Variant:   variant,
		Message:   message,
		CreatedAt: now,
	}
	if ttl > 0 {
		toast.ExpiresAt = now.Add(ttl)
	}
	t.toasts = append(t.toasts, toast)
	return toast.ID
}

// Dismiss removes the toast with id.
func (t *Toaster) Dismiss(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := slices.IndexFunc(t.toasts, func(toast Toast) bool { return toast.ID == id })
	if i < 0 {
		return false
	}
	t.toasts = slices.Delete(t.toasts, i, i+1)
	return true
}

// Prune removes toasts expired at now and returns how many were removed.
func (t *Toaster) Prune(now time.Time) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	before := len(t.toasts)
	t.toasts = slices.DeleteFunc(t.toasts, func(toast Toast) bool { return toast.Expired(now) })
	return before - len(t.toasts)
}

// Len returns the number of queued toasts.
func (t *Toaster) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.toasts)
}

// Visible returns up to limit toasts, newest first.
func (t *Toaster) Visible(limit int) []Toast {
	if limit <= 0 {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Toast, 0, min(limit, len(t.toasts)))
	for i := len(t.toasts) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, t.toasts[i])
	}
	return out
}

// View renders with the default theme.
func (t *Toaster) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the visible toasts stacked vertically.
func (t *Toaster) ViewWithContext(ctx RenderContext) string {
	visible := t.Visible(t.limit)
	if len(visible) == 0 {
		return ""
	}

	items := make([]ui.Renderable, 0, len(visible))
	for _, toast := range visible {
		text := NewText(toast.Message)
		if strategy := ctx.Theme.Variants.Get(toast.Variant); strategy != nil {
			text.WithStyle(strategy.Apply(text.ComputeStyle(ctx.Theme), ctx.Theme))
		}
		items = append(items, text)
	}
	return t.ComputeStyle(ctx.Theme).Render(VStack(items...).ViewWithContext(ctx))
}
