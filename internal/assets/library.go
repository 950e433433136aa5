// internal/assets/library.go
package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"go-survivors/internal/component"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"
)

// placeholderSize covers every sheet grid the game ships.
const placeholderSize = 256

type entry struct {
	path  string
	image *ebiten.Image
	// placeholder is set when decoding failed; Reload retries it.
	placeholder bool
}

// Library hands out handles for sprite sheets and decodes them on first use.
// Sheets that cannot be read are replaced with a solid placeholder so a
// missing file never stops the game.
type Library struct {
	root    string
	byPath  map[string]component.ImageHandle
	entries map[component.ImageHandle]*entry
	next    component.ImageHandle
	logger  *zap.Logger
}

// NewLibrary creates a library resolving paths under root.
func NewLibrary(root string, logger *zap.Logger) *Library {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Library{
		root:    root,
		byPath:  make(map[string]component.ImageHandle),
		entries: make(map[component.ImageHandle]*entry),
		next:    1,
		logger:  logger.With(zap.String("system", "assets")),
	}
}

// Load returns the handle for path, registering it on first request.
func (l *Library) Load(path string) component.ImageHandle {
	if h, ok := l.byPath[path]; ok {
		return h
	}
	h := l.next
	l.next++
	l.byPath[path] = h
	l.entries[h] = &entry{path: path}
	return h
}

// Image returns the decoded image for h, or nil for an unknown handle.
func (l *Library) Image(h component.ImageHandle) *ebiten.Image {
	e, ok := l.entries[h]
	if !ok {
		return nil
	}
	if e.image == nil {
		img, err := l.decode(e.path)
		if err != nil {
			l.logger.Warn("using placeholder sprite sheet", zap.String("path", e.path), zap.Error(err))
			img = placeholder()
			e.placeholder = true
		}
		e.image = img
	}
	return e.image
}

// Reload drops placeholders so the next Image call retries the file.
func (l *Library) Reload() int {
	n := 0
	for _, e := range l.entries {
		if e.placeholder {
			e.image.Dispose()
			e.image = nil
			e.placeholder = false
			n++
		}
	}
	return n
}

// Count returns the number of registered sheets.
func (l *Library) Count() int {
	return len(l.entries)
}

func (l *Library) decode(path string) (*ebiten.Image, error) {
	tried := []string{filepath.Join(l.root, filepath.FromSlash(path)), path}
	for _, p := range tried {
		b, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		im, _, err := image.Decode(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", p, err)
		}
		return ebiten.NewImageFromImage(im), nil
	}
	return nil, fmt.Errorf("sprite sheet %s not found under %s", path, l.root)
}

func placeholder() *ebiten.Image {
	img := ebiten.NewImage(placeholderSize, placeholderSize)
	img.Fill(colornames.Fuchsia)
	return img
}
