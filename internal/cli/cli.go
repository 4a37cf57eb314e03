// Package cli implements the vibegrid command-line interface.
//
// # Commands
//
//   - generate: one layout from flags or a request file
//   - best: best-of-N over independent seeds
//   - quick: defaults-filled layout for a vibe
//   - card: business card layout
//   - vibes: list or show the vibe catalog
//   - pick: choose a vibe interactively, then generate
//   - score: re-score a layout JSON file
//   - serve: run the HTTP API
//   - cache: manage the local layout cache
//
// All commands support --verbose (-v) for debug logging.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/vibegrid/pkg/buildinfo"
	"github.com/matzehuels/vibegrid/pkg/cache"
	"github.com/matzehuels/vibegrid/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName names the cache directory and the binary.
const appName = "vibegrid"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "vibegrid generates scored layouts from a style vibe",
		Long: `vibegrid places headings, text and decorations on a canvas so that they
follow a chosen vibe, and scores the result against design principles
(hierarchy, whitespace, alignment, balance, proximity, contrast, rule of thirds).`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}
	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.bestCommand())
	root.AddCommand(c.quickCommand())
	root.AddCommand(c.cardCommand())
	root.AddCommand(c.vibesCommand())
	root.AddCommand(c.pickCommand())
	root.AddCommand(c.scoreCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the local file cache.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	lc, err := c.newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(lc, nil, c.Logger), nil
}

func (c *CLI) newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Debug("no cache directory, caching disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns $XDG_CACHE_HOME/vibegrid, or ~/.cache/vibegrid.
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
