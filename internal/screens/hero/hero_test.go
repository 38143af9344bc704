package hero

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/winterarc/winterarc/internal/router"
	"github.com/winterarc/winterarc/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{ name string }

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.name }
func (s *stubScreen) Title() string                           { return s.name }

func newTestHero(withHistory bool) (*Screen, *int) {
	calls := 0
	begin := func() screen.Screen {
		calls++
		return &stubScreen{name: "generator"}
	}
	var history func() screen.Screen
	if withHistory {
		history = func() screen.Screen { return &stubScreen{name: "history"} }
	}
	return New(begin, history), &calls
}

func sendTicks(s *Screen, n int) {
	for range n {
		s.Update(tickMsg(time.Now()))
	}
}

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestRevealPhases(t *testing.T) {
	s, _ := newTestHero(true)

	view := s.View(100, 30)
	if !strings.Contains(view, tagline) {
		t.Error("tagline should be visible from the start")
	}
	if strings.Contains(view, "Accept and Begin") {
		t.Error("menu should not be visible at start")
	}

	sendTicks(s, int(bannerAt/tickInterval))
	if !strings.Contains(s.View(100, 30), "██") {
		t.Error("banner should be visible after the first phase")
	}

	sendTicks(s, int((menuAt-bannerAt)/tickInterval))
	if !strings.Contains(s.View(100, 30), "Accept and Begin") {
		t.Error("menu should be visible after the reveal")
	}
}

func TestTicksStopAfterReveal(t *testing.T) {
	s, _ := newTestHero(true)
	sendTicks(s, 20)
	if s.elapsed != menuAt {
		t.Errorf("expected elapsed capped at %v, got %v", menuAt, s.elapsed)
	}
	if _, cmd := s.Update(tickMsg(time.Now())); cmd != nil {
		t.Error("tick after reveal should not schedule another")
	}
}

func TestKeypressSkipsReveal(t *testing.T) {
	s, calls := newTestHero(true)

	_, cmd := s.Update(key(tea.KeyEnter))
	if cmd != nil {
		t.Error("first keypress should only skip the reveal")
	}
	if !s.revealed() {
		t.Fatal("keypress should finish the reveal")
	}
	if *calls != 0 {
		t.Errorf("generator built early: %d", *calls)
	}
}

func TestAcceptAndBeginPushesGenerator(t *testing.T) {
	s, calls := newTestHero(true)
	sendTicks(s, 20)

	_, cmd := s.Update(key(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if push.Screen.Title() != "generator" {
		t.Errorf("pushed %q", push.Screen.Title())
	}
	if *calls != 1 {
		t.Errorf("factory should be called once, got %d", *calls)
	}
}

func TestHistoryDisabledWithoutStore(t *testing.T) {
	s, _ := newTestHero(false)
	sendTicks(s, 20)

	s.Update(key(tea.KeyDown))
	if got := s.menu.Items[s.menu.Selected].Label; got != "Quit" {
		t.Errorf("cursor on %q, want Quit", got)
	}

	s2, _ := newTestHero(true)
	sendTicks(s2, 20)
	s2.Update(key(tea.KeyDown))
	_, cmd := s2.Update(key(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok || push.Screen.Title() != "history" {
		t.Errorf("expected history push, got %#v", cmd())
	}
}

func TestCompactBanner(t *testing.T) {
	if !strings.Contains(RenderBanner(40), "W I N T E R") {
		t.Error("narrow banner should use the compact form")
	}
	if strings.Contains(RenderBanner(100), "W I N T E R") {
		t.Error("wide banner should use block letters")
	}
}

func TestTitleEmpty(t *testing.T) {
	s, _ := newTestHero(true)
	if s.Title() != "" {
		t.Errorf("expected empty title, got %q", s.Title())
	}
}
