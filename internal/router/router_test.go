package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winterarc/winterarc/internal/screen"
)

type fakeScreen struct {
	title string
	inits int
	seen  []tea.Msg
}

func (s *fakeScreen) Init() tea.Cmd {
	s.inits++
	return nil
}

func (s *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.seen = append(s.seen, msg)
	return s, nil
}

func (s *fakeScreen) View(int, int) string { return "view:" + s.title }
func (s *fakeScreen) Title() string        { return s.title }

func TestNavigation(t *testing.T) {
	hero := &fakeScreen{}
	generator := &fakeScreen{title: "Generate Your Plan"}
	history := &fakeScreen{title: "History"}

	r := New(hero)
	assert.Equal(t, 1, r.Depth())

	r.Update(PushScreenMsg{Screen: generator})
	assert.Equal(t, 2, r.Depth())
	assert.Same(t, generator, r.Active())
	assert.Equal(t, 1, generator.inits)

	r.Update(ReplaceScreenMsg{Screen: history})
	assert.Equal(t, 2, r.Depth(), "replace keeps the depth")
	assert.Same(t, history, r.Active())
	assert.Equal(t, 1, history.inits)

	r.Update(PopScreenMsg{})
	assert.Same(t, hero, r.Active())

	r.Update(PopScreenMsg{})
	assert.Equal(t, 1, r.Depth(), "root is never popped")
	assert.Same(t, hero, r.Active())
}

func TestUpdateForwardsToActive(t *testing.T) {
	hero := &fakeScreen{}
	generator := &fakeScreen{title: "Generate Your Plan"}
	r := New(hero)
	r.Push(generator)

	key := tea.KeyPressMsg{Code: '+', Text: "+"}
	r.Update(key)

	require.Len(t, generator.seen, 1)
	assert.Equal(t, key, generator.seen[0])
	assert.Empty(t, hero.seen)

	r.Update(PushScreenMsg{Screen: &fakeScreen{}})
	assert.Len(t, generator.seen, 1, "navigation messages are not forwarded")
}

func TestBreadcrumb(t *testing.T) {
	r := New(&fakeScreen{})
	assert.Empty(t, r.Breadcrumb())

	r.Push(&fakeScreen{title: "History"})
	assert.Equal(t, []string{"History"}, r.Breadcrumb())
}

func TestView(t *testing.T) {
	r := New(&fakeScreen{title: "root"})
	assert.Equal(t, "view:root", r.View(80, 24))
}
