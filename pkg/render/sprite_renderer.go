// pkg/render/sprite_renderer.go
package render

import (
	"image"
	"sort"

	"go-survivors/internal/component"
	"go-survivors/internal/entity"
	"go-survivors/internal/types"
	"go-survivors/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
)

// ImageSource resolves sprite sheet handles to images.
type ImageSource interface {
	Image(h component.ImageHandle) *ebiten.Image
}

// SpriteRenderer draws sprite sheet frames with a camera centred on a target.
// World Y grows upward and is flipped to screen space.
type SpriteRenderer struct {
	images       ImageSource
	camera       cp.Vector
	screenWidth  int
	screenHeight int
	bounds       cp.BB
	colors       Colors
	smoothing    float64
	order        []types.EntityID
}

func NewSpriteRenderer(images ImageSource, screenWidth, screenHeight int, bounds cp.BB, colors Colors, smoothing float64) *SpriteRenderer {
	return &SpriteRenderer{
		images:       images,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		bounds:       bounds,
		colors:       colors,
		smoothing:    smoothing,
	}
}

// Follow eases the camera toward target.
func (r *SpriteRenderer) Follow(target cp.Vector, deltaTime float64) {
	t := utils.SmoothFactor(r.smoothing, deltaTime)
	r.camera.X = utils.Lerp(r.camera.X, target.X, t)
	r.camera.Y = utils.Lerp(r.camera.Y, target.Y, t)
}

// SnapTo moves the camera to target immediately.
func (r *SpriteRenderer) SnapTo(target cp.Vector) {
	r.camera = target
}

// WorldToScreen converts a world position to screen pixels.
func (r *SpriteRenderer) WorldToScreen(p cp.Vector) (float64, float64) {
	x := p.X - r.camera.X + float64(r.screenWidth)/2
	y := float64(r.screenHeight)/2 - (p.Y - r.camera.Y)
	return x, y
}

// Draw renders the world bounds and every sprite, lowest layer first.
func (r *SpriteRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	screen.Fill(r.colors.BackgroundColor)
	r.drawBounds(screen)

	r.order = r.order[:0]
	for id := range ecs.Sprites {
		if _, ok := ecs.Positions[id]; ok {
			r.order = append(r.order, id)
		}
	}
	sort.Slice(r.order, func(i, j int) bool {
		a, b := ecs.Sprites[r.order[i]], ecs.Sprites[r.order[j]]
		if a.Layer != b.Layer {
			return a.Layer < b.Layer
		}
		return r.order[i] < r.order[j]
	})

	for _, id := range r.order {
		r.drawSprite(screen, ecs.Sprites[id], ecs.Positions[id])
	}
}

func (r *SpriteRenderer) drawBounds(screen *ebiten.Image) {
	x, y := r.WorldToScreen(cp.Vector{X: r.bounds.L, Y: r.bounds.T})
	w := r.bounds.R - r.bounds.L
	h := r.bounds.T - r.bounds.B
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), r.colors.StrokeWidth, r.colors.BoundsColor, false)
}

func (r *SpriteRenderer) drawSprite(screen *ebiten.Image, sprite *component.Sprite, pos *component.Position) {
	sheet := r.images.Image(sprite.Sheet)
	if sheet == nil || sprite.Columns <= 0 {
		return
	}
	col := sprite.Index % sprite.Columns
	row := sprite.Index / sprite.Columns
	rect := image.Rect(col*sprite.FrameW, row*sprite.FrameH, (col+1)*sprite.FrameW, (row+1)*sprite.FrameH)
	frame, ok := sheet.SubImage(rect).(*ebiten.Image)
	if !ok {
		return
	}

	scale := sprite.Scale
	if scale == 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(sprite.FrameW)/2, -float64(sprite.FrameH)/2)
	if sprite.FlipX {
		op.GeoM.Scale(-1, 1)
	}
	op.GeoM.Scale(scale, scale)
	sx, sy := r.WorldToScreen(cp.Vector{X: pos.X, Y: pos.Y})
	op.GeoM.Translate(sx, sy)
	screen.DrawImage(frame, op)
}
