// internal/state/menu_state.go
package state

import (
	"go-survivors/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// MenuState is the title screen.
type MenuState struct {
	sm  *StateMachine
	ctx *Context
}

func NewMenuState(sm *StateMachine, ctx *Context) *MenuState {
	return &MenuState{sm: sm, ctx: ctx}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	m.ctx.PollData()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm, m.ctx))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	drawCentered(screen, m.ctx, config.WindowTitle, -config.TextOffsetY*4)
	drawCentered(screen, m.ctx, "press SPACE to start", config.TextOffsetY*4)
}

func (m *MenuState) Exit() {}

func drawCentered(screen *ebiten.Image, ctx *Context, s string, dy int) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	x := (w - len(s)*config.TextCharWidth) / 2
	text.Draw(screen, s, ctx.Face, x, h/2+dy, config.TextLightColor)
}
