package input

import (
	"context"

	"github.com/gdamore/tcell/v2"
)

// Hooks receive events the tick loop cannot wait for
// Either may be nil
type Hooks struct {
	OnResize func()
	// OnAction runs on the event goroutine after the press is latched,
	// so pause and quit work while no ticks are delivered
	OnAction func(a Action)
}

// Pump reads terminal events until ctx is done or the screen is finalized
// Key events go through the table into the latch
func Pump(ctx context.Context, screen tcell.Screen, table *KeyTable, latch *Latch, hooks Hooks) {
	for {
		if ctx.Err() != nil {
			return
		}
		ev := screen.PollEvent()
		if ev == nil {
			// Screen finalized
			return
		}
		switch e := ev.(type) {
		case *tcell.EventKey:
			if !table.Feed(latch, e) {
				continue
			}
			if entry := table.Lookup(e); entry.Behavior == BehaviorAction && hooks.OnAction != nil {
				hooks.OnAction(entry.Action)
			}
		case *tcell.EventResize:
			if hooks.OnResize != nil {
				hooks.OnResize()
			}
		}
	}
}
