// Command zplane visualizes a complex function of one variable.
//
// In a window, drag with the left mouse button to trace a path and its image;
// press P to stamp derivative rings instead. With -script the same input is
// replayed headless and the final frame is written as a PNG.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/gg"

	"github.com/gogpu/zplane"
	"github.com/gogpu/zplane/integration/ebitencanvas"
	"github.com/gogpu/zplane/render"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("zplane: %v", err)
	}
}

// options are the command-line settings that are not part of zplane.Config.
type options struct {
	configPath string
	script     string
	output     string
	fontPath   string
	noText     bool
	verbose    bool
	list       bool
	version    bool
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("zplane", flag.ContinueOnError)
	var (
		opts     options
		function = fs.String("function", "", "function under study (see -list)")
		scale    = fs.Int("scale", 0, "pixels per complex unit")
		segments = fs.Int("segments", 0, "sampled directions per ring")
		epsilon  = fs.Float64("epsilon", 0, "forward-difference step")
		colormap = fs.String("colormap", "", "wedge colormap: hsv or viridis")
		lang     = fs.String("lang", "", "HUD language: en or zh")
		width    = fs.Int("width", 0, "canvas width")
		height   = fs.Int("height", 0, "canvas height")
		label    = fs.String("label", "", "PNG shown instead of the formula caption")
	)
	fs.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&opts.script, "script", "", "replay an event script headless")
	fs.StringVar(&opts.output, "output", "zplane.png", "PNG written in -script mode")
	fs.StringVar(&opts.output, "o", "zplane.png", "shorthand for -output")
	fs.StringVar(&opts.fontPath, "font", "", "TTF/OTF font for the HUD")
	fs.BoolVar(&opts.noText, "no-text", false, "draw no text")
	fs.BoolVar(&opts.verbose, "v", false, "debug logging")
	fs.BoolVar(&opts.list, "list", false, "list functions and exit")
	fs.BoolVar(&opts.version, "version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if opts.verbose {
		zplane.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if opts.version {
		_, err := fmt.Fprintf(stdout, "zplane %s\n", zplane.Version)
		return err
	}
	if opts.list {
		return listFunctions(stdout)
	}

	cfg := zplane.DefaultConfig()
	if opts.configPath != "" {
		var err error
		if cfg, err = zplane.LoadConfig(opts.configPath); err != nil {
			return err
		}
	}

	// Flags given explicitly override the file.
	var over []zplane.Option
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "function":
			over = append(over, zplane.WithFunction(*function))
		case "scale":
			over = append(over, zplane.WithScale(*scale))
		case "segments":
			over = append(over, zplane.WithSegments(*segments))
		case "epsilon":
			over = append(over, zplane.WithEpsilon(*epsilon))
		case "colormap":
			over = append(over, zplane.WithColormap(*colormap))
		case "width", "height":
			over = append(over, func(c *zplane.Config) {
				if *width > 0 {
					c.Width = *width
				}
				if *height > 0 {
					c.Height = *height
				}
			})
		case "lang":
			over = append(over, func(c *zplane.Config) { c.Language = *lang })
		case "label":
			over = append(over, func(c *zplane.Config) { c.LabelImage = *label })
		}
	})

	s, err := zplane.NewSession(cfg, over...)
	if err != nil {
		return err
	}
	ropts := render.OptionsFor(s.Config())
	ropts.FontPath = opts.fontPath
	ropts.NoText = opts.noText
	r := render.New(ropts)

	if opts.script != "" {
		return renderScript(s, r, opts.script, opts.output)
	}
	return ebitencanvas.Run(s, r, "zplane: "+s.Function().Label)
}

// renderScript replays the script file at path and saves the last frame.
func renderScript(s *zplane.Session, r *render.Renderer, path, output string) error {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer f.Close()
	if err := zplane.Replay(s, f); err != nil {
		return err
	}

	w, h := s.Viewport().Size()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: final canvas %dx%d", zplane.ErrInvalidDimensions, w, h)
	}
	dc := gg.NewContext(w, h)
	defer dc.Close()
	r.Render(dc, s)
	if err := dc.SavePNG(output); err != nil {
		return fmt.Errorf("save %s: %w", output, err)
	}
	log.Printf("Frame saved to %s (%dx%d, %d trail points, %d rings)\n",
		output, w, h, s.Trails().Input().Points(), s.Rings().Len())
	return nil
}

func listFunctions(w io.Writer) error {
	for _, name := range zplane.FunctionNames() {
		fn, err := zplane.Lookup(name)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%-12s %s\n", name, strings.TrimSpace(fn.Label)); err != nil {
			return err
		}
	}
	return nil
}
