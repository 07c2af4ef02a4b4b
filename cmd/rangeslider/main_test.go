package main

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmigpin/rangeslider/driver"
	"github.com/jmigpin/rangeslider/util/uiutil/widget"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdFlags(t *testing.T) {
	cmd := rootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--min", "-50", "--max", "50", "--vertical", "--driver", "term"}))
	fs := cmd.Flags()
	min, err := fs.GetInt("min")
	require.NoError(t, err)
	assert.Equal(t, -50, min)
	v, err := fs.GetBool("vertical")
	require.NoError(t, err)
	assert.True(t, v)
	d, err := fs.GetString("driver")
	require.NoError(t, err)
	assert.Equal(t, string(driver.Terminal), d)
}

func TestNewLogger(t *testing.T) {
	log, err := newLogger("DEBUG", driver.X11)
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())

	_, err = newLogger("loud", driver.X11)
	assert.Error(t, err)
}

func TestRunBadOptions(t *testing.T) {
	opt := &options{min: 10, max: 0, logLevel: "info", driver: "x11"}
	assert.Error(t, run(context.Background(), opt))

	opt = &options{max: 100, logLevel: "info", driver: "nosuchdriver"}
	err := run(context.Background(), opt)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown driver")
}

type testImageCtx struct{ img draw.Image }

func (ctx *testImageCtx) Image() draw.Image { return ctx.img }

func TestLoadPaletteColorOverrides(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "p.yaml")
	require.NoError(t, os.WriteFile(filename, []byte("bg: \"#000000\"\nrangeslider_range: \"#000000\"\n"), 0o644))

	opt := &options{palette: filename, colors: map[string]string{"bg": "#ffffff"}}
	pal, err := loadPalette(opt)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, pal["bg"], "override wins")
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, pal["rangeslider_range"])

	opt.colors = map[string]string{"bg": "white"}
	_, err = loadPalette(opt)
	assert.Error(t, err)
}

func TestApplyTheme(t *testing.T) {
	ctx := &testImageCtx{img: image.NewRGBA(image.Rect(0, 0, 100, 100))}
	rs := widget.NewRangeSlider(ctx, 0, 100, 20, 30)
	pad := widget.NewPad(ctx, rs)
	pad.SetWrapperForRoot(pad)

	red := color.RGBA{255, 0, 0, 255}
	pal := widget.Palette{"dark_rangeslider_range": red}
	opt := &options{
		palettePrefix: "dark_",
		fontSize:      20,
		colors:        map[string]string{"rangeslider_track": "#00ff00"},
	}
	applyTheme(pad, pal, opt)

	assert.Equal(t, red, rs.TreeThemePaletteColor("rangeslider_range"), "prefixed name first")
	assert.Equal(t, widget.DefaultPalette["rangeslider_thumb"], rs.TreeThemePaletteColor("rangeslider_thumb"), "unprefixed fallback")
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, rs.TreeThemePaletteColor("rangeslider_track"))
	assert.Equal(t, 20.0, rs.TreeThemeFontFace().Size)
	assert.True(t, pad.TreeNeedsLayout())
}

func TestDumpPalette(t *testing.T) {
	cmd := rootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"--dump-palette", "--color", "bg=#010203"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "bg: \"#010203\"\n")
	assert.Contains(t, out.String(), "rangeslider_range: \"#3b6fb6\"\n")
}
