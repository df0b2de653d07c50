package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/atomicstack/panoscope/internal/object"
)

func TestHoverShowsPreviewAndHidesOffLink(t *testing.T) {
	h := startedHarness(t, newFakeSource())
	m := h.Model()

	// row 0 of window 1 ("core") is uncovered at (5,2)
	h.Send(motion(5, 2))
	if !m.hover.visible || m.hover.name != "core" {
		t.Fatalf("expected bubble for core, got %#v", m.hover)
	}
	if m.hover.loading {
		t.Fatalf("expected the lookup to finish")
	}
	if got := strings.Join(m.hover.lines, "|"); got != "core||Members: dmz, site" {
		t.Fatalf("unexpected preview %q", got)
	}
	if m.session.LastHovered() != "core" {
		t.Fatalf("expected last hovered core, got %q", m.session.LastHovered())
	}
	if !strings.Contains(h.View(), "Members: dmz, site") {
		t.Fatalf("expected bubble in view:\n%s", h.View())
	}

	h.Send(motion(100, 30))
	if m.hover.visible {
		t.Fatalf("expected bubble hidden off the link")
	}
	if m.session.LastHovered() != "" {
		t.Fatalf("expected last hovered cleared, got %q", m.session.LastHovered())
	}
	if m.wm.Len() != 2 {
		t.Fatalf("hovering must not open windows")
	}
}

func TestStaleHoverResultIsDropped(t *testing.T) {
	h := startedHarness(t, newFakeSource())
	m := h.Model()

	slow := m.showHover("core", 5, 2, false)
	fast := m.showHover("web", 5, 2, false)
	h.Run(fast)
	h.Run(slow)

	if m.hover.name != "web" {
		t.Fatalf("expected bubble to stay on web, got %q", m.hover.name)
	}
	if got := m.hover.lines[2]; got != "IP: 10.0.0.1/32" {
		t.Fatalf("expected web preview, got %q", got)
	}
	if _, ok := m.resolver.Cached("core"); !ok {
		t.Fatalf("expected the late result to be cached anyway")
	}
}

func TestHoverResultAfterHideIsDropped(t *testing.T) {
	h := startedHarness(t, newFakeSource())
	m := h.Model()

	cmd := m.showHover("dmz", 5, 3, false)
	m.hideHover()
	h.Run(cmd)
	if m.hover.visible {
		t.Fatalf("expected the bubble to stay hidden")
	}
}

func TestHoverCachedNameShowsImmediately(t *testing.T) {
	h := startedHarness(t, newFakeSource())
	m := h.Model()

	h.Run(m.open("web", 0))
	if cmd := m.showHover("web", 1, 1, false); cmd != nil {
		t.Fatalf("expected no lookup for a cached name")
	}
	if m.hover.lines[2] != "IP: 10.0.0.1/32" {
		t.Fatalf("unexpected preview %q", m.hover.lines)
	}
}

func TestHoverNotFound(t *testing.T) {
	h := startedHarness(t, newFakeSource())
	m := h.Model()

	h.Run(m.showHover("ghost", 5, 2, false))
	if got := m.hover.lines[2]; got != object.NotFoundMarker {
		t.Fatalf("expected not found preview, got %q", got)
	}
	if m.hover.failed {
		t.Fatalf("not found is not a failure")
	}
}

func TestHoverFailureShowsError(t *testing.T) {
	src := newFakeSource()
	src.findErr["core"] = errors.New("timeout")
	h := startedHarness(t, src)
	m := h.Model()

	h.Send(motion(5, 2))
	if !m.hover.failed || m.hover.lines[0] != "core" {
		t.Fatalf("expected failed bubble for core, got %#v", m.hover)
	}
	if !strings.Contains(m.hover.lines[2], "timeout") {
		t.Fatalf("expected error details in bubble, got %q", m.hover.lines)
	}
	if !strings.Contains(m.errMsg, "timeout") {
		t.Fatalf("expected status error, got %q", m.errMsg)
	}
	if m.wm.Len() != 2 {
		t.Fatalf("hover failures must not open windows")
	}
}

func TestPreviewKeyPinsBubble(t *testing.T) {
	h := startedHarness(t, newFakeSource())
	m := h.Model()

	h.Send(key("tab"))
	h.Send(key("p"))
	if !m.hover.visible || !m.hover.pinned || m.hover.name != "core" {
		t.Fatalf("expected pinned bubble for core, got %#v", m.hover)
	}
	h.Send(motion(100, 30))
	if !m.hover.visible {
		t.Fatalf("pointer motion must not hide a pinned bubble")
	}
	h.Send(key("p"))
	if m.hover.visible {
		t.Fatalf("expected p to toggle the bubble off")
	}

	h.Send(key("p"))
	h.Send(key("down"))
	if m.hover.visible {
		t.Fatalf("expected cursor movement to hide the bubble")
	}
}
