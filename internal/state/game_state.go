// internal/state/game_state.go
package state

import (
	"go-survivors/internal/app"
	"go-survivors/internal/config"
	"go-survivors/internal/ui"
	"go-survivors/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState runs one gameplay session.
type GameState struct {
	sm              *StateMachine
	ctx             *Context
	session         *app.Session
	renderer        *render.SpriteRenderer
	waveIndicator   *ui.WaveIndicator
	playerIndicator *ui.PlayerIndicator
}

func NewGameState(sm *StateMachine, ctx *Context) *GameState {
	opts := ctx.SessionOptions()
	renderer := render.NewSpriteRenderer(ctx.Assets, ctx.ScreenWidth, ctx.ScreenHeight, opts.Bounds,
		render.Colors{
			BackgroundColor: config.BackgroundColor,
			BoundsColor:     config.BoundsColor,
			StrokeWidth:     float32(config.StrokeWidth),
		}, config.CameraSmoothing)

	return &GameState{
		sm:              sm,
		ctx:             ctx,
		renderer:        renderer,
		waveIndicator:   ui.NewWaveIndicator(16, 24, ctx.Face),
		playerIndicator: ui.NewPlayerIndicator(ctx.ScreenWidth-200, 16, ctx.Face),
	}
}

// Enter starts the session on first entry. Returning from pause keeps it.
func (g *GameState) Enter() {
	if g.session != nil {
		return
	}
	g.waveIndicator.Subscribe(g.ctx.Dispatcher)
	g.session = app.NewSession(g.ctx.SessionOptions())
	if pos, ok := g.session.ECS.PlayerPosition(); ok {
		g.renderer.SnapTo(pos)
	}
}

func (g *GameState) Update(deltaTime float64) {
	g.ctx.PollData()

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.endRun()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g.ctx, g))
		return
	}

	g.session.Update(deltaTime, readInput())
	g.waveIndicator.Update(deltaTime)
	if pos, ok := g.session.ECS.PlayerPosition(); ok {
		g.renderer.Follow(pos, deltaTime)
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	if g.session == nil {
		return
	}
	g.renderer.Draw(screen, g.session.ECS)

	stats := g.session.Stats()
	g.waveIndicator.Draw(screen, stats.Elapsed, stats.Live)

	if id, ok := g.session.ECS.PlayerID(); ok {
		level := 0
		if p, ok := g.session.ECS.Players[id]; ok {
			level = p.Level
		}
		health := 0.0
		if h, ok := g.session.ECS.Healths[id]; ok {
			health = h.Value
		}
		maxHealth := g.ctx.Options.Player.Health
		g.playerIndicator.Draw(screen, health, maxHealth, level)
	}
}

func (g *GameState) Exit() {}

func (g *GameState) endRun() {
	stats := g.session.End()
	g.waveIndicator.Unsubscribe(g.ctx.Dispatcher)
	g.sm.SetState(NewGameOverState(g.sm, g.ctx, stats))
}
