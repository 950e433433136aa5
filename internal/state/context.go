// internal/state/context.go
package state

import (
	"path/filepath"

	"go-survivors/internal/app"
	"go-survivors/internal/assets"
	"go-survivors/internal/defs"
	"go-survivors/internal/event"

	"go.uber.org/zap"
	"golang.org/x/image/font"
)

// Context is what every state shares: session options, loaded data and
// rendering resources.
type Context struct {
	Options      app.Options
	TableName    string
	ScreenWidth  int
	ScreenHeight int
	Assets       *assets.Library
	Watcher      *defs.Watcher // nil when hot reload is off
	Dispatcher   *event.Dispatcher
	Face         font.Face
	Logger       *zap.Logger
}

// SessionOptions returns the options for the next run.
func (c *Context) SessionOptions() app.Options {
	opts := c.Options
	if c.Assets != nil {
		opts.Assets = c.Assets
	}
	opts.Dispatcher = c.Dispatcher
	opts.Logger = c.Logger
	return opts
}

// PollData applies data files changed on disk. The new table and registry
// only reach sessions created afterwards. Files that fail to load are logged
// and the previous data kept.
func (c *Context) PollData() {
	if c.Watcher == nil {
		return
	}
	for _, name := range c.Watcher.Drain() {
		c.reload(filepath.Base(name))
	}
}

func (c *Context) reload(file string) {
	switch file {
	case defs.EnemiesFile:
		reg, err := defs.LoadRegistry(c.Logger)
		if err != nil {
			c.Logger.Warn("enemy templates not reloaded", zap.String("file", file), zap.Error(err))
			return
		}
		c.Options.Registry = reg
		c.Logger.Info("enemy templates reloaded", zap.Int("count", reg.Count()))
	case c.TableName + ".yaml", c.TableName + ".yml":
		table, err := defs.LoadSpawnTable(c.TableName)
		if err != nil {
			c.Logger.Warn("spawn table not reloaded", zap.String("file", file), zap.Error(err))
			return
		}
		c.Options.Table = table
		c.Logger.Info("spawn table reloaded",
			zap.String("table", table.Name),
			zap.Int("stages", table.Len()))
	}
	if c.Assets == nil {
		return
	}
	if n := c.Assets.Reload(); n > 0 {
		c.Logger.Debug("placeholder sheets queued for reload", zap.Int("count", n))
	}
}
