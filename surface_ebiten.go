package rowan

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenSurface is the windowed input surface: it polls ebiten's mouse and
// keyboard state once per frame and fires the bound click and key handlers.
// Call Update from the host's ebiten.Game.Update. Injected synthetic events
// (see Dispatcher.InjectClick) take priority over hardware input, one per
// frame, so scripted runs behave identically to real interaction.
type EbitenSurface struct {
	Dispatcher
}

// NewEbitenSurface creates a surface reading ebiten input state.
func NewEbitenSurface() *EbitenSurface {
	return &EbitenSurface{}
}

// Update polls input for this frame and dispatches events to bound handlers.
func (s *EbitenSurface) Update() {
	if s.DrainInjected() {
		return
	}

	var button MouseButton
	clicked := false
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		button, clicked = MouseButtonLeft, true
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		button, clicked = MouseButtonRight, true
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle):
		button, clicked = MouseButtonMiddle, true
	}
	if clicked {
		mx, my := ebiten.CursorPosition()
		s.DispatchClick(PointerEvent{X: float64(mx), Y: float64(my), Button: button})
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.DispatchKey(KeyEscape)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		s.DispatchKey(KeySpace)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		s.DispatchKey(KeyEnter)
	}
}
