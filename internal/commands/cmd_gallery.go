package commands

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/urfave/cli/v3"

	"github.com/tuikit/veil/internal/gallery"
)

type GalleryCmd struct {
	flags *Flags
}

// NewGalleryCmd creates a new gallery command
func NewGalleryCmd(flags *Flags) *GalleryCmd {
	return &GalleryCmd{
		flags: flags,
	}
}

// Flags returns the gallery-specific flags for registration on the root command
func (cmd *GalleryCmd) Flags() []cli.Flag {
	return nil
}

// Run executes the gallery TUI. Exported for use as default command.
func (cmd *GalleryCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *GalleryCmd) run(_ context.Context, _ *cli.Command) error {
	m := gallery.New(cmd.flags.Config)
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run gallery: %w", err)
	}

	return nil
}
