package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/tuikit/veil/internal/core/config"
	"github.com/tuikit/veil/internal/printer"
)

type InitCmd struct {
	flags *Flags
	force bool
}

// NewInitCmd creates a new init command.
func NewInitCmd(flags *Flags) *InitCmd {
	return &InitCmd{flags: flags}
}

// Register adds the init command to the application.
func (cmd *InitCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "init",
		Usage:       "Create a config file interactively",
		UsageText:   "veil init [options]",
		Description: "Walks through the gallery options and writes a config file.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "force",
				Usage:       "overwrite an existing config file",
				Destination: &cmd.force,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *InitCmd) run(ctx context.Context, _ *cli.Command) error {
	p := printer.Ctx(ctx)
	path := cmd.flags.ConfigPath

	if _, err := os.Stat(path); err == nil && !cmd.force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}

	defaults := config.DefaultConfig()
	var (
		accent = defaults.Theme.Accent
		exitMs = strconv.Itoa(defaults.Motion.ExitMs)
		mouse  = defaults.Mouse
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Accent color").
				Options(
					huh.NewOption("Blue (#7aa2f7)", "#7aa2f7"),
					huh.NewOption("Green (#9ece6a)", "#9ece6a"),
					huh.NewOption("Yellow (#e0af68)", "#e0af68"),
				).
				Value(&accent),
			huh.NewInput().
				Title("Exit transition (ms)").
				Description("How long a closing dialog stays on screen. 0 disables it.").
				Validate(validateExitMs).
				Value(&exitMs),
			huh.NewConfirm().
				Title("Enable mouse support?").
				Value(&mouse),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("run init form: %w", err)
	}

	cfg := defaults
	cfg.Theme.Accent = accent
	cfg.Motion.ExitMs, _ = strconv.Atoi(exitMs)
	cfg.Mouse = mouse

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := writeConfig(path, &cfg); err != nil {
		return err
	}

	p.Successf("Wrote %s", path)
	return nil
}

func validateExitMs(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if n < 0 || n > 5000 {
		return fmt.Errorf("must be between 0 and 5000")
	}
	return nil
}

func writeConfig(path string, cfg *config.Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
