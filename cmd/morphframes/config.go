package main

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"

	"honnef.co/go/morph"
	"honnef.co/go/morph/glyph"
	"honnef.co/go/morph/render"

	"github.com/pelletier/go-toml/v2"
)

// Shape is a source shape, either text or SVG path data.
type Shape struct {
	Text string `toml:"text"`
	SVG  string `toml:"svg"`
}

// Path returns the shape's outline. Text is set in face.
func (s Shape) Path(face *glyph.Face) (morph.Path, error) {
	switch {
	case s.Text != "" && s.SVG != "":
		return nil, errors.New("shape can't have both text and svg")
	case s.Text != "":
		return face.Text(s.Text)
	case s.SVG != "":
		return morph.ParseSVG(s.SVG)
	default:
		return nil, nil
	}
}

type ColorConfig struct {
	From           []string `toml:"from"`
	To             []string `toml:"to"`
	Offset         float64  `toml:"offset"`
	RelativeOffset float64  `toml:"relative_offset"`
	SectionLength  float64  `toml:"section_length"`
	RepeatCount    int      `toml:"repeat_count"`
	ColorCount     int      `toml:"color_count"`
}

func (c ColorConfig) options() render.ColorOptions {
	return render.ColorOptions{
		Offset:         c.Offset,
		RelativeOffset: c.RelativeOffset,
		SectionLength:  c.SectionLength,
		RepeatCount:    c.RepeatCount,
		ColorCount:     c.ColorCount,
	}
}

type MatchConfig struct {
	// Corner threshold in degrees. Zero uses the default, a negative value
	// disables corner tagging.
	CornerThreshold float64 `toml:"corner_threshold"`
	CornerWeight    float64 `toml:"corner_weight"`
	// "never" or "nearest".
	Reorient string `toml:"reorient"`
}

func (c MatchConfig) options() (*morph.MorphOptions, error) {
	opts := &morph.MorphOptions{
		Corners: &morph.CornerOptions{Threshold: c.CornerThreshold * math.Pi / 180},
		Match:   &morph.MatchOptions{CornerWeight: c.CornerWeight},
	}
	if c.CornerThreshold < 0 {
		opts.NoCorners = true
	}
	switch c.Reorient {
	case "", morph.ReorientNever.String():
		opts.Match.Reorient = morph.ReorientNever
	case morph.ReorientNearest.String():
		opts.Match.Reorient = morph.ReorientNearest
	default:
		return nil, fmt.Errorf("invalid reorient policy %q", c.Reorient)
	}
	return opts, nil
}

// Config describes an animation. The zero values of most fields are replaced
// by defaults; see defaultConfig.
type Config struct {
	From Shape `toml:"from"`
	To   Shape `toml:"to"`

	Width  int `toml:"width"`
	Height int `toml:"height"`
	// Margin around the shapes, in pixels.
	Margin float64 `toml:"margin"`
	// Font size in pixels per em, before fitting to the frame.
	FontSize float64 `toml:"font_size"`
	// Font file to use instead of Go Regular.
	Font string `toml:"font"`

	// Number of frames that write out the first shape before morphing.
	WriteFrames int `toml:"write_frames"`
	// Number of frames of the morph itself.
	Frames int `toml:"frames"`

	Background  string  `toml:"background"`
	Fill        string  `toml:"fill"`
	StrokeWidth float64 `toml:"stroke_width"`
	Tolerance   float64 `toml:"tolerance"`

	Colors ColorConfig `toml:"colors"`
	Match  MatchConfig `toml:"match"`
}

func defaultConfig() Config {
	return Config{
		From:        Shape{Text: "morph"},
		To:          Shape{Text: "shape"},
		Width:       640,
		Height:      240,
		Margin:      20,
		FontSize:    100,
		Frames:      60,
		Background:  "white",
		StrokeWidth: 3,
	}
}

// loadConfig reads a configuration file on top of the defaults. Unknown keys
// are an error.
func loadConfig(name string) (Config, error) {
	cfg := defaultConfig()
	if name == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return Config{}, err
	}
	if err := decodeConfig(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

func decodeConfig(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

func (cfg *Config) validate() error {
	switch {
	case cfg.Width <= 0 || cfg.Height <= 0:
		return fmt.Errorf("invalid frame size %dx%d", cfg.Width, cfg.Height)
	case cfg.Frames < 2:
		return fmt.Errorf("need at least 2 frames, got %d", cfg.Frames)
	case cfg.WriteFrames < 0:
		return fmt.Errorf("invalid write_frames %d", cfg.WriteFrames)
	case cfg.FontSize <= 0:
		return fmt.Errorf("invalid font_size %g", cfg.FontSize)
	case cfg.StrokeWidth < 0:
		return fmt.Errorf("invalid stroke_width %g", cfg.StrokeWidth)
	case 2*cfg.Margin >= float64(min(cfg.Width, cfg.Height)):
		return fmt.Errorf("margin %g leaves no room in a %dx%d frame", cfg.Margin, cfg.Width, cfg.Height)
	}
	return nil
}

// scene holds everything derived from a configuration that frames need.
type scene struct {
	cfg        Config
	transform  morph.Affine
	from       *morph.Splitter
	interp     *morph.Interpolator
	background color.Color
	fill       color.Color
	fromColors []color.Color
	toColors   []color.Color
	colorOpts  render.ColorOptions
}

func (cfg *Config) scene() (*scene, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	var face *glyph.Face
	var err error
	if cfg.Font != "" {
		data, err := os.ReadFile(cfg.Font)
		if err != nil {
			return nil, err
		}
		face, err = glyph.Parse(data, cfg.FontSize)
		if err != nil {
			return nil, err
		}
	} else {
		face, err = glyph.Default(cfg.FontSize)
		if err != nil {
			return nil, err
		}
	}

	a, err := cfg.From.Path(face)
	if err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}
	b, err := cfg.To.Path(face)
	if err != nil {
		return nil, fmt.Errorf("to: %w", err)
	}
	opts, err := cfg.Match.options()
	if err != nil {
		return nil, err
	}
	ip, err := morph.Morph(a, b, opts)
	if err != nil {
		return nil, err
	}

	sc := &scene{
		cfg:       *cfg,
		from:      morph.NewSplitter(a),
		interp:    ip,
		colorOpts: cfg.Colors.options(),
	}

	bbox := a.BoundingBox().Union(b.BoundingBox())
	switch {
	case len(a) == 0:
		bbox = b.BoundingBox()
	case len(b) == 0:
		bbox = a.BoundingBox()
	}
	dst := morph.Rect{X0: 0, Y0: 0, X1: float64(cfg.Width), Y1: float64(cfg.Height)}.Inflate(-cfg.Margin, -cfg.Margin)
	sc.transform = morph.Fit(bbox, dst)
	if sc.transform.IsNaN() {
		return nil, fmt.Errorf("can't fit shapes with bounding box %v into the frame", bbox)
	}

	if sc.background, err = render.ParseColor(cfg.Background); err != nil {
		return nil, err
	}
	if cfg.Fill != "" {
		if sc.fill, err = render.ParseColor(cfg.Fill); err != nil {
			return nil, err
		}
	}
	if sc.fromColors, err = palette(cfg.Colors.From); err != nil {
		return nil, err
	}
	if sc.toColors, err = palette(cfg.Colors.To); err != nil {
		return nil, err
	}
	// Catch conflicting options before rendering any frames.
	if _, err := render.Sections(1, len(sc.fromColors), sc.colorOpts); err != nil {
		return nil, err
	}
	return sc, nil
}

func palette(names []string) ([]color.Color, error) {
	if len(names) == 0 {
		return render.DefaultPalette, nil
	}
	return render.ParsePalette(names)
}

// numFrames returns the total number of frames.
func (sc *scene) numFrames() int {
	return sc.cfg.WriteFrames + sc.cfg.Frames
}

// frame renders frame i.
func (sc *scene) frame(i int) (*render.Canvas, error) {
	c := render.NewCanvas(sc.cfg.Width, sc.cfg.Height)
	c.Tolerance = sc.cfg.Tolerance
	c.Clear(sc.background)
	c.SetTransform(sc.transform)

	if i < sc.cfg.WriteFrames {
		l := sc.from.Length() * float64(i+1) / float64(sc.cfg.WriteFrames)
		c.StrokePartial(sc.from, l, sc.cfg.StrokeWidth, sc.fromColors[0])
		return c, nil
	}

	p := float64(i-sc.cfg.WriteFrames) / float64(sc.cfg.Frames-1)
	path := sc.interp.At(p)
	if sc.fill != nil {
		c.Fill(path, sc.fill)
	}
	colors := render.BlendPalette(sc.fromColors, sc.toColors, p)
	if err := c.StrokeColors(morph.NewSplitter(path), sc.cfg.StrokeWidth, colors, sc.colorOpts); err != nil {
		return nil, err
	}
	return c, nil
}
