package imaging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// Config for image processing
type Config struct {
	MaxWidth  int // Max width after compression (default 1200)
	MaxHeight int // Max height after compression (default 1200)
	Quality   int // JPEG quality 1-100 (default 85)
}

// DefaultConfig returns default processing config
func DefaultConfig() Config {
	return Config{
		MaxWidth:  1200,
		MaxHeight: 1200,
		Quality:   85,
	}
}

// Processor handles image processing
type Processor struct {
	config Config
}

// NewProcessor creates image processor
func NewProcessor(config Config) *Processor {
	return &Processor{config: config}
}

// Compress re-encodes the image at path in place: downscaled to fit inside
// MaxWidth x MaxHeight (never enlarged) and re-saved as JPEG.
func (p *Processor) Compress(path string) error {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > p.config.MaxWidth || bounds.Dy() > p.config.MaxHeight {
		img = imaging.Fit(img, p.config.MaxWidth, p.config.MaxHeight, imaging.Lanczos)
	}

	// Encode next to the original, then swap atomically
	tmp := path + ".tmp.jpg"
	if err := imaging.Save(img, tmp, imaging.JPEGQuality(p.config.Quality)); err != nil {
		return fmt.Errorf("failed to encode compressed image: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace original: %w", err)
	}

	return nil
}

// ValidateType checks if filename carries an accepted image extension
func ValidateType(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	default:
		return false
	}
}

// MaxFileSize in bytes (10MB)
const MaxFileSize int64 = 10 * 1024 * 1024

// AllowedImageTypes for upload validation
var AllowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}
