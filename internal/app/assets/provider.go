//go:generate mockgen -source=provider.go -destination=provider_mock.go -package=assets
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"artspace/internal/app/errors"
	"artspace/internal/config"
	"artspace/internal/config/logger"
)

const (
	embeddedDir = "art"
	embeddedExt = ".txt"
)

//go:embed art/*.txt
var artFS embed.FS

// Provider turns an artwork's image ref into renderable terminal art
type Provider interface {
	// Load returns the art for ref, reading the override directory before the embedded set
	Load(ref string) (string, error)
	// Render returns the art for ref or a placeholder frame when it cannot be loaded
	Render(ref string) string
	// Invalidate drops the cached art for ref
	Invalidate(ref string)
}

type provider struct {
	dir     string
	matcher Matcher
	cache   map[string]string
	mu      sync.RWMutex
	log     logger.Logger
}

// NewProvider creates a Provider backed by the embedded art and the optional assets.dir override
func NewProvider(cfg *config.Config, log logger.Logger) (Provider, error) {
	m, err := NewMatcher(cfg.Assets.Patterns)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidAssetPattern, err)
	}

	log = log.WithComponent("ASSETS")

	dir := cfg.Assets.Dir
	if dir != "" {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			log.Warn().Msgf("Asset directory '%s' does not exist, using built-in art", dir)
			dir = ""
		}
	}

	return &provider{
		dir:     dir,
		matcher: m,
		cache:   make(map[string]string),
		log:     log,
	}, nil
}

func (p *provider) Load(ref string) (string, error) {
	p.mu.RLock()
	art, ok := p.cache[ref]
	p.mu.RUnlock()

	if ok {
		return art, nil
	}

	art, err := p.read(ref)
	if err != nil {
		return "", err
	}

	p.mu.Lock()
	p.cache[ref] = art
	p.mu.Unlock()

	return art, nil
}

func (p *provider) Render(ref string) string {
	art, err := p.Load(ref)
	if err != nil {
		p.log.Warn().Err(err).Msgf("Failed to load art for '%s'", ref)
		return Placeholder(ref)
	}

	return art
}

func (p *provider) Invalidate(ref string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.cache, ref)
}

// read looks for ref in the override directory first, then in the embedded set
func (p *provider) read(ref string) (string, error) {
	if p.dir != "" {
		art, err := p.readOverride(ref)
		if err == nil {
			return art, nil
		}

		if !errors.Is(err, errors.ErrAssetNotFound) {
			return "", err
		}
	}

	data, err := artFS.ReadFile(embeddedDir + "/" + ref + embeddedExt)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", errors.ErrAssetNotFound, ref)
		}

		return "", fmt.Errorf("%w: %w", errors.ErrFailedToReadAsset, err)
	}

	return normalize(string(data)), nil
}

func (p *provider) readOverride(ref string) (string, error) {
	entries, err := os.ReadDir(p.dir)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errors.ErrFailedToReadAsset, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name, ok := p.matcher.Ref(entry.Name())
		if !ok || name != ref {
			continue
		}

		data, err := os.ReadFile(filepath.Join(p.dir, entry.Name()))
		if err != nil {
			return "", fmt.Errorf("%w: %w", errors.ErrFailedToReadAsset, err)
		}

		p.log.Debug().Msgf("Loaded override art for '%s' from %s", ref, entry.Name())

		return normalize(string(data)), nil
	}

	return "", fmt.Errorf("%w: %s", errors.ErrAssetNotFound, ref)
}

// normalize strips carriage returns and trailing blank lines
func normalize(art string) string {
	art = strings.ReplaceAll(art, "\r\n", "\n")
	return strings.TrimRight(art, "\n ")
}

// Placeholder returns a framed stand-in for art that could not be loaded
func Placeholder(ref string) string {
	label := fmt.Sprintf(" %s ", ref)
	width := len(label) + 4
	border := "+" + strings.Repeat("-", width) + "+"
	blank := "|" + strings.Repeat(" ", width) + "|"

	return strings.Join([]string{
		border,
		blank,
		"|  " + label + "  |",
		"|" + centered("?", width) + "|",
		blank,
		border,
	}, "\n")
}

func centered(s string, width int) string {
	left := (width - len(s)) / 2
	right := width - len(s) - left

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
