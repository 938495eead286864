package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"
)

type DocsCmd struct {
	flags *Flags
	raw   bool
	list  bool
	width int
}

func NewDocsCmd(flags *Flags) *DocsCmd {
	return &DocsCmd{flags: flags}
}

func (cmd *DocsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "docs",
		Usage:     "Render configured documentation files",
		UsageText: "veil docs [options] [file]",
		Description: `Renders a markdown file from the configured docs patterns.

With no argument, the first matching file is rendered.
Use --list to see every file the patterns match.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "raw",
				Usage:       "print the file without rendering",
				Destination: &cmd.raw,
			},
			&cli.BoolFlag{
				Name:        "list",
				Usage:       "list matching files and exit",
				Destination: &cmd.list,
			},
			&cli.IntFlag{
				Name:        "width",
				Usage:       "wrap width for rendered output",
				Value:       100,
				Destination: &cmd.width,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *DocsCmd) run(_ context.Context, c *cli.Command) error {
	w := c.Root().Writer

	files, err := cmd.flags.Config.DocFiles()
	if err != nil {
		return fmt.Errorf("expand docs patterns: %w", err)
	}

	if cmd.list {
		if len(files) == 0 {
			_, _ = fmt.Fprintln(w, "no files match the configured docs patterns")
			return nil
		}
		for _, f := range files {
			_, _ = fmt.Fprintln(w, f)
		}
		return nil
	}

	path, err := cmd.pick(files, c.Args().First())
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	if cmd.raw {
		_, _ = fmt.Fprint(w, string(data))
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(cmd.width),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	out, err := renderer.Render(string(data))
	if err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}

	_, _ = fmt.Fprint(w, out)
	return nil
}

// pick resolves which file to render. An explicit argument matches by
// exact path or base name against the configured files; otherwise the
// first match wins.
func (cmd *DocsCmd) pick(files []string, arg string) (string, error) {
	if arg == "" {
		if len(files) == 0 {
			return "", fmt.Errorf("no files match the configured docs patterns")
		}
		return files[0], nil
	}

	for _, f := range files {
		if f == arg || filepath.Base(f) == arg {
			return f, nil
		}
	}

	// Fall back to treating the argument as a plain path.
	if _, err := os.Stat(arg); err == nil {
		return arg, nil
	}

	return "", fmt.Errorf("no configured doc matches %q (try 'veil docs --list')", arg)
}
