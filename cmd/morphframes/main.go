// Command morphframes renders an animation of one shape morphing into another
// as a sequence of PNG images. Shapes are text or SVG path data, described by
// a TOML configuration file.
//
// Usage:
//
//	morphframes render [flags]
//	morphframes match [flags]
//
// The frames can be combined into a video with a tool such as ffmpeg:
//
//	ffmpeg -i out/frame_%05d.png morph.mp4
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"honnef.co/go/morph"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type flags struct {
	config   string
	logLevel string

	from, to      string
	width, height int
	frames        int
}

func (f *flags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.config, "config", "c", "", "TOML configuration file")
	fs.StringVar(&f.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	fs.StringVar(&f.from, "from", "", "text to morph from, overrides the configuration")
	fs.StringVar(&f.to, "to", "", "text to morph to, overrides the configuration")
	fs.IntVar(&f.width, "width", 0, "frame width in pixels, overrides the configuration")
	fs.IntVar(&f.height, "height", 0, "frame height in pixels, overrides the configuration")
	fs.IntVar(&f.frames, "frames", 0, "number of morph frames, overrides the configuration")
}

// load reads the configuration and applies flag overrides.
func (f *flags) load() (Config, error) {
	cfg, err := loadConfig(f.config)
	if err != nil {
		return Config{}, err
	}
	if f.from != "" {
		cfg.From = Shape{Text: f.from}
	}
	if f.to != "" {
		cfg.To = Shape{Text: f.to}
	}
	if f.width > 0 {
		cfg.Width = f.width
	}
	if f.height > 0 {
		cfg.Height = f.height
	}
	if f.frames > 0 {
		cfg.Frames = f.frames
	}
	return cfg, nil
}

func (f *flags) setupLogging(w io.Writer) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(f.logLevel)); err != nil {
		return fmt.Errorf("invalid log level %q", f.logLevel)
	}
	morph.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return nil
}

func newRenderCmd() *cobra.Command {
	var f flags
	var out string
	var workers int
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the frames of a morph as PNG files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := f.setupLogging(cmd.ErrOrStderr()); err != nil {
				return err
			}
			cfg, err := f.load()
			if err != nil {
				return err
			}
			sc, err := cfg.scene()
			if err != nil {
				return err
			}
			if err := os.MkdirAll(out, 0o755); err != nil {
				return err
			}
			return renderFrames(cmd.Context(), sc, out, workers)
		},
	}
	f.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "frames", "output directory")
	cmd.Flags().IntVarP(&workers, "workers", "j", runtime.GOMAXPROCS(0), "number of frames to render concurrently")
	return cmd
}

// renderFrames renders all frames of sc into dir, at most workers at a time.
func renderFrames(ctx context.Context, sc *scene, dir string, workers int) error {
	log := morph.Logger()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	n := sc.numFrames()
	for i := range n {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c, err := sc.frame(i)
			if err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
			name := filepath.Join(dir, fmt.Sprintf("frame_%05d.png", i))
			fd, err := os.Create(name)
			if err != nil {
				return err
			}
			if err := c.EncodePNG(fd); err != nil {
				fd.Close()
				return fmt.Errorf("frame %d: %w", i, err)
			}
			if err := fd.Close(); err != nil {
				return err
			}
			log.Debug("wrote frame", "frame", i, "file", name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	log.Info("rendered frames", "frames", n, "dir", dir)
	return nil
}

func newMatchCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Print the matched shapes as SVG path data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := f.setupLogging(cmd.ErrOrStderr()); err != nil {
				return err
			}
			cfg, err := f.load()
			if err != nil {
				return err
			}
			sc, err := cfg.scene()
			if err != nil {
				return err
			}
			return writeMatch(cmd.OutOrStdout(), sc.interp)
		},
	}
	f.register(cmd)
	return cmd
}

func writeMatch(w io.Writer, ip *morph.Interpolator) error {
	opts := morph.SVGOptions{MaxPrecision: 3}
	from, to := ip.From(), ip.To()
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %d pieces, %d commands, %d corners\n", from.NumPieces(), len(from), from.NumVertices())
	sb.WriteString(from.SVG(opts))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "# %d pieces, %d commands, %d corners\n", to.NumPieces(), len(to), to.NumVertices())
	sb.WriteString(to.SVG(opts))
	sb.WriteString("\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "morphframes",
		Short:         "Render shape morphing animations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRenderCmd(), newMatchCmd())
	return root
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "morphframes:", err)
		os.Exit(1)
	}
}
