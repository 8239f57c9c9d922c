// ABOUTME: Word-cloud image generator drawing ranked words on a fixed canvas with fogleman/gg
// ABOUTME: Words are sized by relative frequency and placed along a spiral without overlap

package wordcloud

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"math/rand"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/harper/newsroom/internal/config"
)

// Options configures a Generator.
type Options struct {
	Width            int
	Height           int
	Background       color.Color
	Colors           []color.Color
	MaxWords         int
	MinFontSize      float64
	MaxFontSize      float64
	PreferHorizontal float64
	Seed             int64
	Stopwords        map[string]struct{}
}

// Option mutates Options.
type Option func(*Options)

// Width sets the canvas width in pixels.
func Width(w int) Option {
	return func(o *Options) { o.Width = w }
}

// Height sets the canvas height in pixels.
func Height(h int) Option {
	return func(o *Options) { o.Height = h }
}

// Background sets the canvas color.
func Background(c color.Color) Option {
	return func(o *Options) { o.Background = c }
}

// MaxWords caps how many of the most frequent words are drawn.
func MaxWords(n int) Option {
	return func(o *Options) { o.MaxWords = n }
}

// Seed fixes the orientation choices so output is reproducible.
func Seed(s int64) Option {
	return func(o *Options) { o.Seed = s }
}

// FontSizes sets the smallest and largest font size in points.
func FontSizes(min, max float64) Option {
	return func(o *Options) {
		o.MinFontSize = min
		o.MaxFontSize = max
	}
}

// Stopwords replaces the built-in stopword set.
func Stopwords(words map[string]struct{}) Option {
	return func(o *Options) { o.Stopwords = words }
}

// viridis-like palette
var defaultColors = []color.Color{
	color.RGBA{68, 1, 84, 255},
	color.RGBA{72, 40, 120, 255},
	color.RGBA{62, 74, 137, 255},
	color.RGBA{49, 104, 142, 255},
	color.RGBA{38, 130, 142, 255},
	color.RGBA{31, 158, 137, 255},
	color.RGBA{53, 183, 121, 255},
	color.RGBA{109, 205, 89, 255},
	color.RGBA{180, 222, 44, 255},
}

func defaultOptions() Options {
	return Options{
		Width:            config.WordCloudWidth,
		Height:           config.WordCloudHeight,
		Background:       color.White,
		Colors:           defaultColors,
		MaxWords:         config.WordCloudMaxWords,
		MinFontSize:      6,
		MaxFontSize:      110,
		PreferHorizontal: 0.9,
		Seed:             1,
		Stopwords:        DefaultStopwords(),
	}
}

// Generator renders word clouds. It is safe for sequential use only.
type Generator struct {
	opts  Options
	font  *truetype.Font
	faces map[float64]font.Face
}

// New creates a Generator using the Go regular font.
func New(opts ...Option) (*Generator, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Width <= 0 || o.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", o.Width, o.Height)
	}
	if o.MinFontSize <= 0 || o.MaxFontSize < o.MinFontSize {
		return nil, fmt.Errorf("invalid font sizes %.1f..%.1f", o.MinFontSize, o.MaxFontSize)
	}
	if len(o.Colors) == 0 {
		o.Colors = defaultColors
	}

	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	return &Generator{opts: o, font: f, faces: map[float64]font.Face{}}, nil
}

// Options returns the generator's effective options.
func (g *Generator) Options() Options {
	return g.opts
}

// box is an axis-aligned rectangle in canvas pixels.
type box struct {
	x, y, w, h float64
}

func (b box) overlaps(o box) bool {
	return b.x < o.x+o.w && o.x < b.x+b.w && b.y < o.y+o.h && o.y < b.y+b.h
}

// Placement is one word drawn on the canvas.
type Placement struct {
	Word     string
	Size     float64
	X, Y     float64
	Vertical bool
}

// Generate draws a word cloud for text. Text without any countable word
// yields a blank canvas.
func (g *Generator) Generate(text string) (image.Image, error) {
	words := Frequencies(text, g.opts.Stopwords)
	if len(words) > g.opts.MaxWords {
		words = words[:g.opts.MaxWords]
	}

	dc := gg.NewContext(g.opts.Width, g.opts.Height)
	dc.SetColor(g.opts.Background)
	dc.Clear()

	for i, p := range g.Layout(dc, words) {
		dc.SetFontFace(g.face(p.Size))
		dc.SetColor(g.opts.Colors[i%len(g.opts.Colors)])
		if p.Vertical {
			dc.Push()
			dc.RotateAbout(gg.Radians(-90), p.X, p.Y)
			dc.DrawStringAnchored(p.Word, p.X, p.Y, 0.5, 0.5)
			dc.Pop()
			continue
		}
		dc.DrawStringAnchored(p.Word, p.X, p.Y, 0.5, 0.5)
	}

	return dc.Image(), nil
}

// Layout places words, most frequent first. Font size follows frequency
// relative to the previous word; a word that does not fit is shrunk until
// it does or dropped once it falls below the minimum size.
func (g *Generator) Layout(dc *gg.Context, words []WordCount) []Placement {
	if len(words) == 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(g.opts.Seed))
	width, height := float64(g.opts.Width), float64(g.opts.Height)

	var placed []box
	var out []Placement

	size := g.opts.MaxFontSize
	prevCount := words[0].Count
	for _, wc := range words {
		// Relative scaling of 0.5 between consecutive words
		size = size * (0.5*float64(wc.Count)/float64(prevCount) + 0.5)
		prevCount = wc.Count
		vertical := rng.Float64() > g.opts.PreferHorizontal

		for s := size; s >= g.opts.MinFontSize; s *= 0.85 {
			dc.SetFontFace(g.face(s))
			w, h := dc.MeasureString(wc.Word)
			if vertical {
				w, h = h, w
			}
			if w > width || h > height {
				continue
			}

			if b, ok := findSpot(placed, w, h, width, height); ok {
				placed = append(placed, b)
				out = append(out, Placement{
					Word:     wc.Word,
					Size:     s,
					X:        b.x + b.w/2,
					Y:        b.y + b.h/2,
					Vertical: vertical,
				})
				size = s
				break
			}
		}
	}
	return out
}

// findSpot walks an Archimedean spiral out from the canvas center and returns
// the first box of size w x h that stays on the canvas and overlaps nothing.
func findSpot(placed []box, w, h, width, height float64) (box, bool) {
	cx, cy := width/2, height/2
	aspect := width / height
	maxRadius := math.Hypot(width, height) / 2

	for t := 0.0; ; t += 0.3 {
		r := t
		if r > maxRadius {
			return box{}, false
		}
		x := cx + r*math.Cos(t)*aspect - w/2
		y := cy + r*math.Sin(t) - h/2
		if x < 0 || y < 0 || x+w > width || y+h > height {
			continue
		}

		candidate := box{x: x, y: y, w: w, h: h}
		free := true
		for _, p := range placed {
			if candidate.overlaps(p) {
				free = false
				break
			}
		}
		if free {
			return candidate, true
		}
	}
}

func (g *Generator) face(size float64) font.Face {
	if f, ok := g.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(g.font, &truetype.Options{Size: size})
	g.faces[size] = f
	return f
}

// EncodePNG encodes img as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// DataURI encodes img as a base64 PNG data URI for inline display.
func DataURI(img image.Image) (string, error) {
	data, err := EncodePNG(img)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data), nil
}
