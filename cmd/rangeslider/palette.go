package main

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/fsnotify/fsnotify"
	"github.com/jmigpin/rangeslider/util/imageutil"
	"github.com/jmigpin/rangeslider/util/uiutil/widget"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Palette file: a yaml mapping of palette names to hex colors.
//
//	rangeslider_range: "#3b6fb6"
//	rangeslider_thumb: "#707070"
func ParsePalette(b []byte) (widget.Palette, error) {
	m := map[string]string{}
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, errors.Wrap(err, "palette yaml")
	}
	pal := widget.MakePalette()
	for k, v := range m {
		c, err := imageutil.ParseHexColor(v)
		if err != nil {
			return nil, errors.Wrapf(err, "palette %q", k)
		}
		pal[k] = c
	}
	return pal, nil
}

func LoadPalette(filename string) (widget.Palette, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParsePalette(b)
}

func EncodePalette(pal widget.Palette) ([]byte, error) {
	keys := make([]string, 0, len(pal))
	for k := range pal {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range keys {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Style: yaml.DoubleQuotedStyle, Value: imageutil.SprintHexColor(pal[k])},
		)
	}
	return yaml.Marshal(node)
}

//----------

// Reloads a palette file when it changes. The directory is watched since editors often replace the file instead of writing it.
type PaletteWatcher struct {
	filename string
	w        *fsnotify.Watcher
	log      zerolog.Logger
	onLoad   func(widget.Palette)
	done     chan struct{}
}

func NewPaletteWatcher(filename string, log zerolog.Logger, onLoad func(widget.Palette)) (*PaletteWatcher, error) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, err
	}
	w0, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "palette watcher")
	}
	if err := w0.Add(filepath.Dir(abs)); err != nil {
		w0.Close()
		return nil, errors.Wrap(err, "palette watcher")
	}
	pw := &PaletteWatcher{
		filename: abs,
		w:        w0,
		log:      log.With().Str("palette", abs).Logger(),
		onLoad:   onLoad,
		done:     make(chan struct{}),
	}
	go pw.eventLoop()
	return pw, nil
}

func (pw *PaletteWatcher) Close() error {
	err := pw.w.Close()
	<-pw.done
	return err
}

func (pw *PaletteWatcher) eventLoop() {
	defer close(pw.done)
	for {
		select {
		case err, ok := <-pw.w.Errors:
			if !ok {
				return
			}
			pw.log.Warn().Err(err).Msg("watch")
		case ev, ok := <-pw.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != pw.filename {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			pal, err := LoadPalette(pw.filename)
			if err != nil {
				// keep the current palette
				pw.log.Warn().Err(err).Msg("reload")
				continue
			}
			pw.log.Info().Int("colors", len(pal)).Msg("reload")
			pw.onLoad(pal)
		}
	}
}
