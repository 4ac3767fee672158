//go:generate mockgen -source=generator.go -destination=generator_mock.go -package=generator
package generator

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"text/template"

	"artspace/internal/app/errors"
	"artspace/internal/config"
	"artspace/internal/config/logger"
)

const templatePath = "templates/artspace.yaml.tmpl"

//go:embed templates/artspace.yaml.tmpl
var templateFS embed.FS

// Options contains the configuration for generating artspace.yaml
type Options struct {
	LogLevel  string
	LongPress string
	Animate   bool
	AssetsDir string
	Watch     bool
}

// DefaultOptions returns sensible defaults for generation
func DefaultOptions() Options {
	return Options{
		LogLevel:  config.DefaultLogLevel,
		LongPress: config.DefaultLongPress.String(),
		Animate:   config.DefaultAnimate,
		AssetsDir: "./art",
		Watch:     true,
	}
}

// Generator defines the interface for generating artspace.yaml
type Generator interface {
	Generate(opts Options, force bool, dryRun bool) error
}

type generator struct {
	path string
	out  io.Writer
	log  logger.Logger
}

// NewGenerator creates a new generator writing artspace.yaml in the working directory
func NewGenerator(log logger.Logger) Generator {
	return &generator{
		path: config.FileName,
		out:  os.Stdout,
		log:  log,
	}
}

// Generate creates an artspace.yaml file from the template
func (g *generator) Generate(opts Options, force bool, dryRun bool) error {
	if !dryRun && !force {
		if _, err := os.Stat(g.path); err == nil {
			return fmt.Errorf("%w: %s", errors.ErrFileAlreadyExists, g.path)
		}
	}

	tmplContent, err := templateFS.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("failed to read template: %w", err)
	}

	tmpl, err := template.New(config.FileName).Parse(string(tmplContent))
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, opts); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	if dryRun {
		_, err := g.out.Write(buf.Bytes())
		return err
	}

	if err := os.WriteFile(g.path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	g.log.Info().Msgf("Generated %s", g.path)

	return nil
}
