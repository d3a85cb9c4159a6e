package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snakeclaw/audio"
	"github.com/lixenwraith/snakeclaw/core"
	"github.com/lixenwraith/snakeclaw/engine"
	"github.com/lixenwraith/snakeclaw/input"
	"github.com/lixenwraith/snakeclaw/render"
)

// runLoop is the single driver loop: it alternates between pending
// input events and simulation ticks paced by the engine's reported
// interval, rendering a fresh snapshot after either. It returns when
// the engine reaches the quit state.
func runLoop(screen tcell.Screen, eng *engine.Engine, renderer *render.Renderer, sound *audio.Player) {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			events <- ev
		}
	}()

	timer := time.NewTimer(eng.TickInterval())
	defer timer.Stop()

	renderer.Draw(eng.Snapshot())

	for {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			} else {
				eng.HandleInput(input.Translate(ev))
			}

		case <-timer.C:
			out := eng.Tick()
			playOutcome(sound, out)
			// The interval tracks the current speed level
			timer.Reset(eng.TickInterval())
		}

		if eng.State() == core.StateQuit {
			return
		}
		renderer.Draw(eng.Snapshot())
	}
}

func playOutcome(sound *audio.Player, out engine.TickOutcome) {
	switch {
	case out.Died, out.Won:
		sound.GameOver()
	case out.AteBonus:
		sound.Bonus()
	case out.LeveledUp:
		sound.LevelUp()
	case out.AteFood:
		sound.Eat()
	}
}
