// Demo of the range slider widget, on X11 or on a terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/jmigpin/rangeslider/driver"
	"github.com/jmigpin/rangeslider/util/fontutil"
	"github.com/jmigpin/rangeslider/util/imageutil"
	"github.com/jmigpin/rangeslider/util/uiutil"
	"github.com/jmigpin/rangeslider/util/uiutil/widget"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type options struct {
	min, max, value, extent int
	vertical, inverted      bool
	labels                  bool
	driver                  string
	palette                 string
	logLevel                string
	fps                     int
	pad                     int

	colors        map[string]string
	palettePrefix string
	fontSize      float64
	dumpPalette   bool
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opt := &options{}
	cmd := &cobra.Command{
		Use:          "rangeslider",
		Short:        "Range slider demo",
		Long:         `Shows a slider selecting the [value, value+extent] sub-range of [min, max]. Changes are logged.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opt.dumpPalette {
				return dumpPalette(cmd.OutOrStdout(), opt)
			}
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()
			return run(ctx, opt)
		},
	}
	fs := cmd.Flags()
	fs.IntVar(&opt.min, "min", 0, "range minimum")
	fs.IntVar(&opt.max, "max", 100, "range maximum")
	fs.IntVar(&opt.value, "value", 20, "initial value (low thumb)")
	fs.IntVar(&opt.extent, "extent", 30, "initial extent (high thumb is value+extent)")
	fs.BoolVar(&opt.vertical, "vertical", false, "vertical orientation")
	fs.BoolVar(&opt.inverted, "inverted", false, "values grow in the opposite direction")
	fs.BoolVar(&opt.labels, "labels", false, "show the value labels")
	fs.StringVar(&opt.driver, "driver", string(driver.X11), "window driver: x11|term")
	fs.StringVar(&opt.palette, "palette", "", "yaml palette file, reloaded on change")
	fs.StringVar(&opt.logLevel, "log-level", "info", "trace|debug|info|warn|error")
	fs.IntVar(&opt.fps, "fps", 60, "max pointer motion events per second")
	fs.IntVar(&opt.pad, "pad", 10, "padding around the slider")
	fs.StringToStringVar(&opt.colors, "color", nil, "palette color override, name=#rrggbb (repeatable)")
	fs.StringVar(&opt.palettePrefix, "palette-prefix", "", "try prefixed palette names first (ex: \"dark_\" for dark_rangeslider_range)")
	fs.Float64Var(&opt.fontSize, "font-size", 0, "labels font size (0: default)")
	fs.BoolVar(&opt.dumpPalette, "dump-palette", false, "print the effective palette as yaml and exit")
	return cmd
}

func newLogger(level string, kind driver.Kind) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Logger{}, errors.Wrap(err, "log level")
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	if kind == driver.Terminal {
		// the terminal is taken by the screen
		w.Out = io.Discard
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

func run(ctx context.Context, opt *options) error {
	if opt.max < opt.min {
		return errors.Errorf("max (%d) < min (%d)", opt.max, opt.min)
	}
	kind := driver.Kind(opt.driver)
	log, err := newLogger(opt.logLevel, kind)
	if err != nil {
		return err
	}

	pal, err := loadPalette(opt)
	if err != nil {
		return err
	}

	win, err := driver.NewWindow(kind, log)
	if err != nil {
		return err
	}
	win.SetWindowName("rangeslider")

	ui := uiutil.NewBasicUI(win, opt.fps, log)
	defer ui.Close()

	rs := widget.NewRangeSlider(ui, opt.min, opt.max, opt.value, opt.extent)
	if opt.vertical {
		rs.SetOrientation(widget.Vertical)
	}
	rs.SetInverted(opt.inverted)
	rs.SetShowLabels(opt.labels)
	rs.AddChangeListener(func(ev *widget.RangeChangeEvent) {
		log.Info().
			Int("value", ev.New.Value).
			Int("extent", ev.New.Extent).
			Int("second", ev.New.SecondValue()).
			Bool("adjusting", ev.New.ValueIsAdjusting).
			Msg("range")
	})

	pad := widget.NewPad(ui, rs)
	pad.SetAll(opt.pad)
	applyTheme(pad, pal, opt)
	ui.SetRootNode(pad)

	if opt.palette != "" {
		pw, err := NewPaletteWatcher(opt.palette, log, func(p widget.Palette) {
			ui.RunOnUIThread(func() { applyTheme(pad, p, opt) })
		})
		if err != nil {
			log.Warn().Err(err).Msg("palette reload disabled")
		} else {
			defer pw.Close()
		}
	}

	ui.Run(ctx)
	return nil
}

//----------

// Palette file (if any) with the --color overrides on top.
func loadPalette(opt *options) (widget.Palette, error) {
	pal := widget.MakePalette()
	if opt.palette != "" {
		p, err := LoadPalette(opt.palette)
		if err != nil {
			return nil, err
		}
		pal.Merge(p)
	}
	for name, hex := range opt.colors {
		c, err := imageutil.ParseHexColor(hex)
		if err != nil {
			return nil, errors.Wrapf(err, "color %q", name)
		}
		pal[name] = c
	}
	return pal, nil
}

func applyTheme(root *widget.Pad, pal widget.Palette, opt *options) {
	root.SetThemePalette(pal)
	// overrides also win over a reloaded palette file
	for name, hex := range opt.colors {
		if c, err := imageutil.ParseHexColor(hex); err == nil {
			root.SetThemePaletteColor(name, c)
		}
	}
	root.SetThemePaletteNamePrefix(opt.palettePrefix)
	if opt.fontSize > 0 {
		root.SetThemeFontFace(fontutil.DefaultFont().FontFace2(opt.fontSize))
	}
}

func dumpPalette(w io.Writer, opt *options) error {
	pal, err := loadPalette(opt)
	if err != nil {
		return err
	}
	all := widget.DefaultPalette.Copy()
	all.Merge(pal)
	b, err := EncodePalette(all)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
