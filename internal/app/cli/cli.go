//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/term"

	"artspace/internal/app/errors"
	"artspace/internal/app/gallery"
	"artspace/internal/app/generator"
	"artspace/internal/app/ui/wire"
	"artspace/internal/config"
	"artspace/internal/config/logger"
)

const defaultWrapWidth = 80

// CLI defines the interface for cli operations
type CLI interface {
	Execute() (exitCode int, err error)
}

// cli represents the command-line interface for the application
type cli struct {
	options    *Options
	cfg        *config.Config
	ui         wire.UI
	collection gallery.Collection
	generator  generator.Generator
	out        io.Writer
	log        logger.Logger
}

// NewCLI creates a new cli instance
func NewCLI(
	options *Options,
	cfg *config.Config,
	ui wire.UI,
	collection gallery.Collection,
	generator generator.Generator,
	log logger.Logger,
) CLI {
	return &cli{
		options:    options,
		cfg:        cfg,
		ui:         ui,
		collection: collection,
		generator:  generator,
		out:        os.Stdout,
		log:        log.WithComponent("CLI"),
	}
}

// Execute runs the parsed command and returns the process exit code
func (c *cli) Execute() (int, error) {
	switch c.options.Type {
	case CommandVersion:
		return c.handleVersion()
	case CommandHelp:
		return c.handleHelp()
	case CommandList:
		return c.handleList()
	case CommandInit:
		return c.handleInit()
	case CommandView:
		return c.handleView()
	default:
		return c.fail(errors.ErrUnknownCommand)
	}
}

// handleView opens the gallery and blocks until the user quits or a signal arrives
func (c *cli) handleView() (int, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c.log.Debug().Msgf("Opening gallery with %d artworks (animate: %t, tooltips: %t)", c.collection.Len(), c.cfg.UI.Animate, c.cfg.UI.Tooltips)

	p, err := c.ui(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("Failed to create UI")
		return c.fail(err)
	}

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		c.log.Error().Err(err).Msg("UI exited with error")
		return c.fail(err)
	}

	c.log.Debug().Msg("Gallery closed")

	return 0, nil
}

// handleList prints the collection as markdown
func (c *cli) handleList() (int, error) {
	renderer, err := c.newRenderer()
	if err != nil {
		return c.fail(err)
	}

	out, err := renderer.Render(listMarkdown(c.collection))
	if err != nil {
		c.log.Error().Err(err).Msg("Failed to render collection")
		return c.fail(err)
	}

	fmt.Fprint(c.out, out)

	return 0, nil
}

// handleInit writes the configuration template
func (c *cli) handleInit() (int, error) {
	opts := generator.DefaultOptions()

	if err := c.generator.Generate(opts, c.options.Force, c.options.DryRun); err != nil {
		return c.fail(err)
	}

	if !c.options.DryRun {
		fmt.Fprintln(c.out, commandName.Render("Created "+config.FileName))
	}

	return 0, nil
}

// handleVersion displays version information
func (c *cli) handleVersion() (int, error) {
	c.log.Debug().Msg("Displaying version information")
	fmt.Fprint(c.out, renderVersion())

	return 0, nil
}

// handleHelp displays help information
func (c *cli) handleHelp() (int, error) {
	c.log.Debug().Msg("Displaying help information")
	fmt.Fprint(c.out, renderHelp())

	return 0, nil
}

func (c *cli) fail(err error) (int, error) {
	fmt.Fprintln(c.out, RenderError(err))

	return 1, err
}

// newRenderer picks a glamour style depending on whether output is a terminal
func (c *cli) newRenderer() (*glamour.TermRenderer, error) {
	width, tty := c.terminalWidth()

	style := glamour.WithStandardStyle("notty")
	if tty {
		style = glamour.WithAutoStyle()
	}

	return glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
}

func (c *cli) terminalWidth() (int, bool) {
	f, ok := c.out.(*os.File)
	if !ok || !term.IsTerminal(f.Fd()) {
		return defaultWrapWidth, false
	}

	width, _, err := term.GetSize(f.Fd())
	if err != nil || width <= 0 {
		return defaultWrapWidth, true
	}

	return min(width, 120), true
}

// listMarkdown builds a numbered markdown document of the collection
func listMarkdown(collection gallery.Collection) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", config.AppName)

	for i, a := range collection.All() {
		fmt.Fprintf(&b, "## %d. %s\n\n", i+1, a.Title)
		fmt.Fprintf(&b, "*%s* · `%s`\n\n", a.Byline(), a.ImageRef)

		if a.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", a.Description)
		}
	}

	return b.String()
}
