// Package picker turns a directory of images into an ordered pool and writes
// one pool image per Create call to a caller-chosen destination. Images are
// handed out in scan order and never reused.
package picker

import (
	"fmt"
	"strings"
	"sync"

	"imgpick/internal/codec"
	"imgpick/internal/format"
	"imgpick/internal/scanner"
)

// Default advisory image sizes, used when the configuration leaves them
// unset.
const (
	DefaultWidth  = 1920
	DefaultHeight = 1080
)

// Config describes a picker. SourceDir is required. Format, when set, fixes
// the output format for every Create call; when empty the format is derived
// from each destination path. Width and Height are advisory: they are
// carried and reported but images are written at their decoded size.
type Config struct {
	SourceDir string
	Format    string
	Width     int
	Height    int
}

// Picker hands out images from a source directory, one per Create call.
// All methods are safe for concurrent use.
type Picker struct {
	mu     sync.Mutex
	pool   []string
	cursor int
	codec  codec.Codec
	format format.Format
	width  int
	height int
}

// New builds a picker over cfg using the bundled codec.
func New(cfg Config) (*Picker, error) {
	return NewWithCodec(cfg, codec.NewStd())
}

// NewWithCodec builds a picker over cfg using the given codec. The source
// directory is scanned once, up front; files added to it later are not seen.
// An empty directory is valid and yields a picker whose first Create fails.
func NewWithCodec(cfg Config, c codec.Codec) (*Picker, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil codec", ErrConfiguration)
	}
	if strings.TrimSpace(cfg.SourceDir) == "" {
		return nil, fmt.Errorf("%w: source directory is not set", ErrConfiguration)
	}
	if cfg.Width < 0 || cfg.Height < 0 {
		return nil, fmt.Errorf("%w: image sizes must be positive", ErrConfiguration)
	}

	var fixed format.Format
	if cfg.Format != "" {
		f, err := format.Parse(cfg.Format)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
		fixed = f
	}

	res, err := scanner.Scan(cfg.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	width, height := cfg.Width, cfg.Height
	if width == 0 {
		width = DefaultWidth
	}
	if height == 0 {
		height = DefaultHeight
	}

	return &Picker{
		pool:   res.Paths,
		codec:  c,
		format: fixed,
		width:  width,
		height: height,
	}, nil
}

// Create decodes the next pool image and writes it to dest, returning the
// format it was written in. The image is consumed once it decodes: a
// destination or write failure does not return it to the pool, but a decode
// failure leaves it as the next candidate. When the pool is empty the error
// matches ErrExhausted.
func (p *Picker) Create(dest string) (format.Format, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cursor >= len(p.pool) {
		return "", fmt.Errorf("%w: all %d images used", ErrExhausted, len(p.pool))
	}
	src := p.pool[p.cursor]

	img, err := p.codec.Decode(src)
	if err != nil {
		return "", fmt.Errorf("%s: %w", src, err)
	}
	p.cursor++

	f := p.format
	if f == "" {
		f, err = format.FromPath(dest)
		if err != nil {
			return "", err
		}
	}

	if err := p.codec.Encode(img, dest, f); err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrWrite, dest, err)
	}
	return f, nil
}

// Next returns the path of the image the next Create call will use. ok is
// false when the pool is exhausted.
func (p *Picker) Next() (path string, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cursor >= len(p.pool) {
		return "", false
	}
	return p.pool[p.cursor], true
}

// Len returns the total number of images found in the source directory.
func (p *Picker) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pool)
}

// Remaining returns how many images have not been used yet.
func (p *Picker) Remaining() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pool) - p.cursor
}

// Format returns the fixed output format, or "" when the format is derived
// from each destination path.
func (p *Picker) Format() format.Format {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.format
}

// SetFormat fixes the output format for subsequent Create calls. The name
// must be one of the supported formats; there is no way back to deriving the
// format from destination paths.
func (p *Picker) SetFormat(name string) error {
	f, err := format.Parse(name)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.format = f
	return nil
}

// Sizes returns the advisory output width and height.
func (p *Picker) Sizes() (width, height int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.width, p.height
}

// SetSizes updates the advisory output sizes. Both values must be positive.
// Images are still written at their decoded size.
func (p *Picker) SetSizes(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: image sizes must be positive", ErrConfiguration)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.width = width
	p.height = height
	return nil
}
