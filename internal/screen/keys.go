package screen

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Raycaster/internal/game"
)

// Key bindings. Movement keys are read as held; fire, quit and copy fire on
// the press edge only, so holding space fires once.
var (
	forwardKeys  = []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}
	backwardKeys = []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}
	leftKeys     = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	rightKeys    = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
	fireKey      = ebiten.KeySpace
	quitKey      = ebiten.KeyEscape
	copyKey      = ebiten.KeyC
)

// inputFor maps key state to one tick of game input. held reports keys that
// are down; pressed reports keys that went down this tick.
func inputFor(held, pressed func(ebiten.Key) bool) game.Input {
	return game.Input{
		Forward:   anyKey(held, forwardKeys),
		Backward:  anyKey(held, backwardKeys),
		TurnLeft:  anyKey(held, leftKeys),
		TurnRight: anyKey(held, rightKeys),
		Fire:      pressed(fireKey),
		Quit:      pressed(quitKey),
	}
}

func anyKey(held func(ebiten.Key) bool, keys []ebiten.Key) bool {
	for _, k := range keys {
		if held(k) {
			return true
		}
	}
	return false
}
