package components

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/winterarc/winterarc/internal/notify"
	"github.com/winterarc/winterarc/internal/ui/theme"
)

const (
	infoLifetime  = time.Second
	alertLifetime = 3 * time.Second

	// maxToasts is how many toasts are stacked at once; older ones are dropped.
	maxToasts = 3
)

// ToastExpiredMsg removes the toast with the given ID.
type ToastExpiredMsg struct {
	ID int
}

// Toast is one visible notification.
type Toast struct {
	ID      int
	Kind    notify.Kind
	Message string
}

// Toasts is a notify.Notifier that stacks notifications on screen and
// closes each one after a lifetime that depends on its kind.
//
// Notify is called from inside Update, where no command can be returned
// directly, so expiry timers are queued until the owner calls Flush.
type Toasts struct {
	items   []Toast
	nextID  int
	pending []tea.Cmd
}

var _ notify.Notifier = (*Toasts)(nil)

// NewToasts creates an empty toast stack.
func NewToasts() *Toasts {
	return &Toasts{}
}

// Lifetime returns how long a toast of kind stays open.
func Lifetime(kind notify.Kind) time.Duration {
	if kind == notify.Info {
		return infoLifetime
	}
	return alertLifetime
}

func (t *Toasts) Notify(kind notify.Kind, message string) {
	t.nextID++
	id := t.nextID
	t.items = append(t.items, Toast{ID: id, Kind: kind, Message: message})
	if len(t.items) > maxToasts {
		t.items = t.items[len(t.items)-maxToasts:]
	}
	t.pending = append(t.pending, tea.Tick(Lifetime(kind), func(time.Time) tea.Msg {
		return ToastExpiredMsg{ID: id}
	}))
}

// Flush returns the expiry timers queued since the last call.
func (t *Toasts) Flush() tea.Cmd {
	if len(t.pending) == 0 {
		return nil
	}
	cmds := t.pending
	t.pending = nil
	return tea.Batch(cmds...)
}

// Update handles expiry messages. It reports whether msg was consumed.
func (t *Toasts) Update(msg tea.Msg) bool {
	expired, ok := msg.(ToastExpiredMsg)
	if !ok {
		return false
	}
	for i, item := range t.items {
		if item.ID == expired.ID {
			t.items = append(t.items[:i:i], t.items[i+1:]...)
			break
		}
	}
	return true
}

// Items returns the open toasts, oldest first.
func (t *Toasts) Items() []Toast {
	return append([]Toast(nil), t.items...)
}

// View renders the open toasts stacked vertically, right-aligned in width.
func (t *Toasts) View(width int) string {
	if len(t.items) == 0 {
		return ""
	}
	rendered := make([]string, 0, len(t.items))
	for _, item := range t.items {
		rendered = append(rendered, toastStyle(item.Kind).Render(item.Message))
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, lipgloss.JoinVertical(lipgloss.Right, rendered...))
}

func toastStyle(kind notify.Kind) lipgloss.Style {
	switch kind {
	case notify.Warning:
		return theme.ToastWarning
	case notify.Error:
		return theme.ToastError
	default:
		return theme.ToastInfo
	}
}
