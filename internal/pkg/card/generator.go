// Package card renders the two-pane greeting card: the transformed photo on
// the left, the wrapped story text on the right.
package card

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog/log"

	"github.com/supermom/supermom-api/internal/pkg/scene"
)

const (
	cardWidth       = 1200
	halfWidth       = cardWidth / 2
	minHeight       = 600
	topPadding      = 40
	titleAreaHeight = 120 // title + separator + spacing
	greetingHeight  = 40
	footerHeight    = 60 // hashtag + bottom padding
	bottomMargin    = 40
	footerFontSize  = 16
	jpegQuality     = 90
)

const (
	cardTitle = "HAPPY MOTHER'S DAY!"
	hashtag   = "#SuperMomMaker"

	// DefaultStory is used when the submitted story is empty
	DefaultStory = "To the world you are a mother, but to our family you are a superhero."
)

var (
	white       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	accentColor = color.NRGBA{R: 0xF6, G: 0x09, B: 0x45, A: 255}
	goldColor   = color.NRGBA{R: 0xFF, G: 0xC7, B: 0x00, A: 255}
	bodyColor   = color.NRGBA{R: 0x44, G: 0x44, B: 0x44, A: 255}
	cornerFill  = color.NRGBA{R: 0xF6, G: 0x09, B: 0x45, A: 51} // 20% opacity
)

// Greeting holds the optional "Dear <name> (<nickname>)," salutation
type Greeting struct {
	Name     string
	Nickname string
}

// Request describes one card to render
type Request struct {
	ImagePath  string
	Story      string
	OutputPath string
	Greeting   *Greeting
}

// Result reports where the finished image ended up. Degraded means the
// compositor failed and the source image was copied through verbatim; the
// caller must treat that as a usable result, not a failure.
type Result struct {
	Path     string
	Degraded bool
	Width    int
	Height   int
	Lines    int
}

// Generator composes greeting cards
type Generator struct{}

// NewGenerator creates a card generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the card to req.OutputPath. It never fails: any internal
// error falls back to copying the source image to the output path and
// reporting the source path as the result.
func (g *Generator) Generate(req Request) Result {
	res, err := g.compose(req)
	if err != nil {
		log.Error().Err(err).
			Str("image", req.ImagePath).
			Str("output", req.OutputPath).
			Msg("Card generation failed, falling back to source copy")

		if copyErr := copyFile(req.ImagePath, req.OutputPath); copyErr != nil {
			log.Error().Err(copyErr).Msg("Card fallback copy failed")
		}
		return Result{Path: req.ImagePath, Degraded: true}
	}
	return res
}

func (g *Generator) compose(req Request) (Result, error) {
	story := strings.TrimSpace(req.Story)
	if story == "" {
		story = DefaultStory
	}

	wordCount := len(strings.Fields(story))
	tier := TierFor(wordCount)
	lines := Wrap(story, tier.MaxChars)

	greetingH := 0
	greetingLine := ""
	if req.Greeting != nil && strings.TrimSpace(req.Greeting.Name) != "" {
		greetingH = greetingHeight
		greetingLine = "Dear " + strings.TrimSpace(req.Greeting.Name)
		if nick := strings.TrimSpace(req.Greeting.Nickname); nick != "" {
			greetingLine += " (" + nick + ")"
		}
		greetingLine += ","
	}

	// Height grows to exactly fit the wrapped content, never below the floor
	required := topPadding + titleAreaHeight + greetingH + len(lines)*tier.LineHeight + footerHeight
	height := required + bottomMargin
	if height < minHeight {
		height = minHeight
	}

	textPane, err := g.textPane(tier, lines, greetingLine, greetingH, height)
	if err != nil {
		return Result{}, err
	}

	photo, err := imaging.Open(req.ImagePath, imaging.AutoOrientation(true))
	if err != nil {
		return Result{}, fmt.Errorf("open source photo: %w", err)
	}
	photo = imaging.Fill(photo, halfWidth, height, imaging.Top, imaging.Lanczos)

	canvas := imaging.New(cardWidth, height, white)
	canvas = imaging.Paste(canvas, photo, image.Pt(0, 0))
	canvas = imaging.Paste(canvas, textPane, image.Pt(halfWidth, 0))

	if err := imaging.Save(canvas, req.OutputPath, imaging.JPEGQuality(jpegQuality)); err != nil {
		return Result{}, fmt.Errorf("encode card: %w", err)
	}

	log.Info().
		Str("output", req.OutputPath).
		Int("width", cardWidth).
		Int("height", height).
		Int("words", wordCount).
		Int("lines", len(lines)).
		Msg("Greeting card generated")

	return Result{
		Path:   req.OutputPath,
		Width:  cardWidth,
		Height: height,
		Lines:  len(lines),
	}, nil
}

// textPane builds the right half of the card as a vector scene and
// rasterizes it
func (g *Generator) textPane(tier Tier, lines []string, greetingLine string, greetingH, height int) (*image.NRGBA, error) {
	sc := scene.New(halfWidth, height, white)

	// Corner decorations
	fh := float64(height)
	sc.AddPolygon(scene.Polygon{
		Points: []scene.Point{{X: 540, Y: 0}, {X: 600, Y: 0}, {X: 600, Y: 60}},
		Fill:   cornerFill,
	})
	sc.AddPolygon(scene.Polygon{
		Points: []scene.Point{{X: 0, Y: fh}, {X: 0, Y: fh - 60}, {X: 60, Y: fh}},
		Fill:   cornerFill,
	})

	sc.AddText(scene.TextRun{
		X: halfWidth / 2, Y: topPadding + 50,
		Text:   cardTitle,
		Size:   float64(tier.TitleSize),
		Style:  scene.Bold,
		Fill:   accentColor,
		Anchor: scene.AnchorMiddle,
	})

	// Separator bar under the title
	sc.AddRect(scene.Rect{X: 270, Y: topPadding + 65, W: 60, H: 4, Fill: goldColor})

	startY := topPadding + titleAreaHeight
	if greetingH > 0 {
		sc.AddText(scene.TextRun{
			X: halfWidth / 2, Y: float64(startY),
			Text:   greetingLine,
			Size:   float64(tier.BodySize),
			Style:  scene.Italic,
			Fill:   bodyColor,
			Anchor: scene.AnchorMiddle,
		})
		startY += greetingH
	}

	// Story lines, quoted on the first and last wrapped line
	for i, line := range lines {
		display := line
		if i == 0 {
			display = `"` + display
		}
		if i == len(lines)-1 {
			display += `"`
		}
		sc.AddText(scene.TextRun{
			X: halfWidth / 2, Y: float64(startY + i*tier.LineHeight),
			Text:   display,
			Size:   float64(tier.BodySize),
			Style:  scene.Italic,
			Fill:   bodyColor,
			Anchor: scene.AnchorMiddle,
		})
	}

	footerY := startY + len(lines)*tier.LineHeight + 40
	if maxY := height - 30; footerY > maxY {
		footerY = maxY
	}
	sc.AddText(scene.TextRun{
		X: halfWidth / 2, Y: float64(footerY),
		Text:   hashtag,
		Size:   footerFontSize,
		Style:  scene.Bold,
		Fill:   accentColor,
		Anchor: scene.AnchorMiddle,
	})

	return sc.Render()
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
