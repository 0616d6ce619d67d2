package render

import (
	"bufio"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/ordtree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config holds the parameters for console output.
type Config struct {
	LineWidth int                    // maximum width of a line in fixed-width positions
	Context   *uax11.Context         // context for East Asian character widths
	Colors    map[Style]*color.Color // palette; styles missing from it are printed plain
	NoColor   bool                   // suppress colors altogether
}

// DefaultPalette is the palette used if Config.Colors is nil.
func DefaultPalette() map[Style]*color.Color {
	return map[Style]*color.Color{
		BranchStyle:   color.New(color.FgBlue, color.Bold),
		SelectedStyle: color.New(color.FgRed),
		NoteStyle:     color.New(color.FgHiBlack),
	}
}

// ConfigFromTerminal is a simple helper for creating a Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width and sets Config.LineWidth accordingly. Config.Context is derived from
// the user environment.
func ConfigFromTerminal() *Config {
	config := &Config{LineWidth: 80}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 20 {
			config.LineWidth = w
		}
	} else {
		config.NoColor = true
	}
	config.Context = uax11.ContextFromEnvironment()
	tracer().P("render", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}

var setupGraphemes sync.Once

// width returns the number of fixed-width positions needed to display s.
func width(s string, context *uax11.Context) int {
	if s == "" { // grapheme strings must not be empty
		return 0
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// truncate shortens s to fit into w positions, marking the cut with an
// ellipsis.
func truncate(s string, w int, context *uax11.Context) string {
	if width(s, context) <= w {
		return s
	}
	runes := []rune(s)
	for n := len(runes) - 1; n > 0; n-- {
		t := string(runes[:n]) + "…"
		if width(t, context) <= w {
			return t
		}
	}
	return ""
}

type consoleLine struct {
	prefix string
	label  Label
	width  int // width of prefix and label text
}

// Print outputs a tree to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (see ConfigFromTerminal).
func Print[T any](t ordtree.Tree[T], label Labeler[T], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	return Console(os.Stdout, t, label, config)
}

// Console outputs a tree as an indented list with branch glyphs:
//
//	data/
//	├── raw/
//	│   └── sample1.fastq      1.5GiB
//	└── README                 412B
//
// Notes are aligned in a column to the right of the labels. Lines longer
// than config.LineWidth are truncated. Nodes with a collapsed label are shown
// without their descendants.
func Console[T any](w io.Writer, t ordtree.Tree[T], label Labeler[T], config *Config) error {
	if w == nil || config == nil {
		return ordtree.ErrIllegalArguments
	}
	context := config.Context
	if context == nil {
		context = uax11.LatinContext
	}
	palette := config.Colors
	if palette == nil {
		palette = DefaultPalette()
	}
	var lines []consoleLine
	var indent []string
	maxw := 0
	visible(t, label.orDefault(), func(node *ordtree.Node[T], l Label, depth int, last bool) func() {
		glyph, cont := "├── ", "│   "
		if last {
			glyph, cont = "└── ", "    "
		}
		prefix := strings.Join(indent, "")
		if depth > 0 {
			prefix += glyph
		}
		line := consoleLine{prefix: prefix, label: l}
		line.width = width(prefix+l.Text, context)
		maxw = max(maxw, line.width)
		lines = append(lines, line)
		if depth == 0 {
			return nil
		}
		indent = append(indent, cont)
		return func() { indent = indent[:len(indent)-1] }
	})
	column := maxw + 2
	if config.LineWidth > 0 {
		column = min(column, config.LineWidth)
	}
	bw := bufio.NewWriter(w)
	styled := func(s string, style Style) {
		if c, ok := palette[style]; ok && !config.NoColor {
			c.Fprint(bw, s)
			return
		}
		bw.WriteString(s)
	}
	for _, line := range lines {
		text := line.label.Text
		if config.LineWidth > 0 && line.width > config.LineWidth {
			text = truncate(text, config.LineWidth-width(line.prefix, context), context)
			line.width = width(line.prefix+text, context)
		}
		bw.WriteString(line.prefix)
		styled(text, line.label.Style)
		if note := line.label.Note; note != "" {
			pad := column - line.width
			room := config.LineWidth - column
			if config.LineWidth <= 0 || room > 0 {
				bw.WriteString(strings.Repeat(" ", max(pad, 1)))
				if config.LineWidth > 0 {
					note = truncate(note, room, context)
				}
				styled(note, NoteStyle)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
