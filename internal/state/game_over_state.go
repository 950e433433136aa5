// internal/state/game_over_state.go
package state

import (
	"fmt"

	"go-survivors/internal/app"
	"go-survivors/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameOverState shows the stats of the finished run until Space starts a
// new one.
type GameOverState struct {
	sm    *StateMachine
	ctx   *Context
	stats app.Stats
}

func NewGameOverState(sm *StateMachine, ctx *Context, stats app.Stats) *GameOverState {
	return &GameOverState{sm: sm, ctx: ctx, stats: stats}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	s.ctx.PollData()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.sm.SetState(NewGameState(s.sm, s.ctx))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	minutes := int(s.stats.Elapsed) / 60
	seconds := int(s.stats.Elapsed) % 60
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("survived %02d:%02d", minutes, seconds),
		fmt.Sprintf("reached stage %d, %d waves, %d enemies", s.stats.Stage+1, s.stats.Waves, s.stats.Spawned),
		"press SPACE to play again",
	}
	for i, line := range lines {
		drawCentered(screen, s.ctx, line, (i-len(lines)/2)*config.TextOffsetY*5)
	}
}

func (s *GameOverState) Exit() {}
