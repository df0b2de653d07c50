package wm

import (
	"math/rand"
	"testing"

	"github.com/atomicstack/panoscope/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(viewW, viewH int) *Manager {
	layout := DefaultLayout()
	m := New(session.New(layout.Origin()), layout)
	m.SetViewport(viewW, viewH)
	return m
}

func assertOnTop(t *testing.T, m *Manager, id int) {
	t.Helper()
	target := m.Get(id)
	require.NotNil(t, target)
	for _, w := range m.Stacked() {
		if w.ID == id {
			continue
		}
		require.Greater(t, target.Z, w.Z, "window %d should be above %d", id, w.ID)
	}
	assert.Equal(t, id, m.Top().ID)
}

func TestCreatedAndFocusedWindowIsTopmost(t *testing.T) {
	m := newTestManager(200, 80)
	rng := rand.New(rand.NewSource(7))
	var ids []int
	for i := 0; i < 40; i++ {
		if len(ids) == 0 || rng.Intn(3) == 0 {
			w := m.Create("w", false)
			ids = append(ids, w.ID)
			assertOnTop(t, m, w.ID)
			continue
		}
		id := ids[rng.Intn(len(ids))]
		require.True(t, m.Focus(id))
		assertOnTop(t, m, id)
	}
}

func TestFocusAlwaysAssignsFreshValue(t *testing.T) {
	m := newTestManager(200, 80)
	w := m.Create("a", false)
	before := w.Z
	m.Focus(w.ID)
	assert.Greater(t, w.Z, before)
}

func TestCascadeAdvancesThenResets(t *testing.T) {
	layout := DefaultLayout()
	// Room for the origin plus two steps vertically: maxY = 24-(16+2) = 6.
	m := newTestManager(120, 24)

	first := m.Create("1", false)
	second := m.Create("2", false)
	third := m.Create("3", false)
	fourth := m.Create("4", false)

	assert.Equal(t, [2]int{layout.OriginX, layout.OriginY}, [2]int{first.X, first.Y})
	assert.Equal(t, [2]int{layout.OriginX + layout.StepX, layout.OriginY + layout.StepY}, [2]int{second.X, second.Y})
	assert.Equal(t, [2]int{layout.OriginX + 2*layout.StepX, layout.OriginY + 2*layout.StepY}, [2]int{third.X, third.Y})
	assert.Equal(t, [2]int{layout.OriginX, layout.OriginY}, [2]int{fourth.X, fourth.Y})
}

func TestCascadeResetsOnHorizontalMargin(t *testing.T) {
	layout := DefaultLayout()
	// maxX = 64-(56+2) = 6, so only the origin and one step fit.
	m := newTestManager(64, 200)
	m.Create("1", false)
	m.Create("2", false)
	third := m.Create("3", false)
	assert.Equal(t, layout.OriginX, third.X)
	assert.Equal(t, layout.OriginY, third.Y)
}

func TestCascadeWithoutViewportNeverResets(t *testing.T) {
	m := newTestManager(0, 0)
	var last *Window
	for i := 0; i < 10; i++ {
		last = m.Create("w", false)
	}
	assert.Equal(t, 2+9*4, last.X)
	assert.Equal(t, 1+9*2, last.Y)
}

func TestWindowAtPrefersTopmost(t *testing.T) {
	m := newTestManager(200, 80)
	a := m.Create("a", false)
	b := m.Create("b", false)
	// b was cascaded onto a; the overlap belongs to b until a is focused.
	x, y := b.X+1, b.Y+1
	assert.Equal(t, b.ID, m.WindowAt(x, y).ID)
	m.Focus(a.ID)
	assert.Equal(t, a.ID, m.WindowAt(x, y).ID)
	assert.Nil(t, m.WindowAt(199, 79))
}

func TestStackedOrdersBottomToTop(t *testing.T) {
	m := newTestManager(200, 80)
	a := m.Create("a", false)
	b := m.Create("b", false)
	c := m.Create("c", false)
	m.Focus(a.ID)
	stacked := m.Stacked()
	require.Len(t, stacked, 3)
	assert.Equal(t, []int{b.ID, c.ID, a.ID}, []int{stacked[0].ID, stacked[1].ID, stacked[2].ID})
}

func TestDragMovesAdditively(t *testing.T) {
	m := newTestManager(200, 80)
	a := m.Create("a", false)
	b := m.Create("b", false)
	startX, startY := a.X, a.Y

	require.True(t, m.BeginDrag(a.ID, a.X+5, a.Y))
	assert.True(t, a.Dragging())
	assert.False(t, b.Dragging())
	assertOnTop(t, m, a.ID)

	assert.True(t, m.DragTo(a.X+5+10, a.Y+3))
	assert.Equal(t, startX+10, a.X)
	assert.Equal(t, startY+3, a.Y)
	assert.True(t, m.Dragging())

	m.EndDrag()
	assert.False(t, m.Dragging())
	assert.False(t, m.DragTo(0, 0))
	assert.Equal(t, startX+10, a.X)
}

func TestDragKeepsTitleBarReachable(t *testing.T) {
	m := newTestManager(100, 40)
	w := m.Create("a", false)
	m.BeginDrag(w.ID, w.X, w.Y)
	m.DragTo(-500, -500)
	assert.Equal(t, 0, w.Y)
	assert.Equal(t, 2-w.Width, w.X)
	m.DragTo(500, 500)
	assert.Equal(t, 39, w.Y)
	assert.Equal(t, 98, w.X)
}

func TestCloseRemovesWindowAndDrag(t *testing.T) {
	m := newTestManager(200, 80)
	a := m.Create("a", false)
	b := m.Create("b", true)
	m.BeginDrag(a.ID, a.X, a.Y)

	require.True(t, m.Close(a.ID))
	assert.Nil(t, m.Get(a.ID))
	assert.False(t, m.Dragging())
	assert.False(t, m.Close(a.ID))
	assert.False(t, m.Focus(a.ID))
	assert.False(t, m.MoveBy(a.ID, 1, 1))
	assert.False(t, m.BeginDrag(a.ID, 0, 0))
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, b.ID, m.Top().ID)
}

func TestCycleRotatesInCreationOrder(t *testing.T) {
	m := newTestManager(200, 80)
	a := m.Create("a", false)
	b := m.Create("b", false)
	c := m.Create("c", false)

	assert.Equal(t, a.ID, m.Cycle(true).ID)
	assert.Equal(t, b.ID, m.Cycle(true).ID)
	assert.Equal(t, a.ID, m.Cycle(false).ID)
	assert.Equal(t, c.ID, m.Cycle(false).ID)
	assertOnTop(t, m, c.ID)

	empty := newTestManager(10, 10)
	assert.Nil(t, empty.Cycle(true))
}

func TestWindowShrinksToViewport(t *testing.T) {
	m := newTestManager(30, 10)
	w := m.Create("tiny", false)
	assert.Equal(t, 30, w.Width)
	assert.Equal(t, 10, w.Height)
}
