package input

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestLatchPressIsEdgeTriggered(t *testing.T) {
	l := NewLatch(nil, 0)
	l.Press(ActionInteract)

	f := l.Snapshot()
	assert.True(t, f.Pressed(ActionInteract))
	assert.True(t, l.Pressed(ActionInteract))
	assert.False(t, f.Pressed(ActionJump))

	f = l.Snapshot()
	assert.False(t, f.Pressed(ActionInteract), "press must be consumed by a single frame")
	assert.False(t, l.Pressed(ActionInteract))
}

func TestLatchAxisHoldDecays(t *testing.T) {
	clk := &fakeClock{now: time.Unix(0, 0)}
	l := NewLatch(clk.Now, 100*time.Millisecond)

	l.Hold(AxisVertical, 1)
	assert.Equal(t, 1.0, l.Snapshot().Axis(AxisVertical))

	clk.Advance(50 * time.Millisecond)
	assert.Equal(t, 1.0, l.Snapshot().Axis(AxisVertical), "hold persists within window")

	clk.Advance(60 * time.Millisecond)
	assert.Equal(t, 0.0, l.Snapshot().Axis(AxisVertical))
}

func TestLatchClampsAxis(t *testing.T) {
	l := NewLatch(nil, time.Second)
	l.Hold(AxisLookX, -3)
	assert.Equal(t, -1.0, l.Snapshot().Axis(AxisLookX))
}

func TestLatchConcurrentProducers(t *testing.T) {
	l := NewLatch(nil, time.Second)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				l.Press(ActionJump)
				l.Hold(AxisHorizontal, 1)
			}
		}()
	}
	wg.Wait()
	f := l.Snapshot()
	assert.True(t, f.Pressed(ActionJump))
	assert.Equal(t, 1.0, f.Axis(AxisHorizontal))
}

func TestKeyTableFeed(t *testing.T) {
	table := DefaultKeyTable()
	l := NewLatch(nil, time.Second)

	assert.True(t, table.Feed(l, tcell.NewEventKey(tcell.KeyRune, 'E', tcell.ModNone)))
	assert.True(t, table.Feed(l, tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)))
	assert.True(t, table.Feed(l, tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)))
	assert.False(t, table.Feed(l, tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)))

	f := l.Snapshot()
	assert.True(t, f.Pressed(ActionInteract))
	assert.Equal(t, 1.0, f.Axis(AxisVertical))
	assert.Equal(t, -1.0, f.Axis(AxisLookX))
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction("Interact")
	require.NoError(t, err)
	assert.Equal(t, ActionInteract, a)

	a, err = ParseAction("")
	require.NoError(t, err)
	assert.Equal(t, ActionNone, a)

	_, err = ParseAction("teleport")
	assert.Error(t, err)

	assert.Equal(t, "jump", ActionJump.String())
}

func TestNilFrameIsInert(t *testing.T) {
	var f *Frame
	assert.False(t, f.Pressed(ActionInteract))
	assert.Zero(t, f.Axis(AxisVertical))
}

func TestPumpRoutesSimulatedKeys(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())

	l := NewLatch(nil, time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	actions := make(chan Action, 4)
	go func() {
		Pump(ctx, screen, DefaultKeyTable(), l, Hooks{OnAction: func(a Action) { actions <- a }})
		close(done)
	}()

	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)

	require.Eventually(t, func() bool {
		l.mu.Lock()
		defer l.mu.Unlock()
		return l.pressed[ActionJump]
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, ActionJump, <-actions, "unbound keys reach no hook")

	cancel()
	screen.Fini()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pump did not stop after screen finalized")
	}
}
