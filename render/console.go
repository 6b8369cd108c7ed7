package render

import (
	"bufio"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/bst"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config configures console output of trees.
type Config struct {
	LineWidth int            // target line length in fixed width ‘en’s; 0 means unlimited
	Context   *uax11.Context // context for measuring label widths; nil means uax11.LatinContext
	Colorize  bool           // use Leaf and Inner colors
	Leaf      *color.Color   // color for leaf labels; nil means default palette
	Inner     *color.Color   // color for labels of inner nodes; nil means default palette
}

var setupGraphemes sync.Once

// Print outputs the subtree headed by root sideways: every node is printed on a
// line of its own, indented by its depth, with the right subtree above and the
// left subtree below the node. Reading the lines bottom-up yields the values in
// ascending order.
//
// If parameter config is nil, a heuristic will create a config from the current
// terminal's properties (if stdout is interactive).
func Print[V any](w io.Writer, root *bst.Node[V], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	ctx := config.Context
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	labels := make(map[*bst.Node[V]]string)
	widest := 0
	collectLabels(root, labels, ctx, &widest)
	step := widest + 2
	if height := root.Height(); config.LineWidth > 0 && height > 1 {
		// the deepest level has to fit into a line
		if fit := (config.LineWidth - widest) / (height - 1); fit < step {
			step = max(fit, 1)
		}
	}
	leafColor, innerColor := config.Leaf, config.Inner
	if leafColor == nil {
		leafColor = color.New(color.FgBlue)
	}
	if innerColor == nil {
		innerColor = color.New(color.FgRed)
	}
	p := &printer[V]{
		out:    bufio.NewWriter(w),
		labels: labels,
		step:   step,
	}
	if config.Colorize {
		p.leaf, p.inner = leafColor, innerColor
	}
	p.node(root, 0)
	return p.out.Flush()
}

func collectLabels[V any](n *bst.Node[V], labels map[*bst.Node[V]]string, ctx *uax11.Context, widest *int) {
	if n == nil {
		return
	}
	l := label(n.Value())
	labels[n] = l
	if width := labelWidth(l, ctx); width > *widest {
		*widest = width
	}
	collectLabels(n.Left(), labels, ctx, widest)
	collectLabels(n.Right(), labels, ctx, widest)
}

// labelWidth measures l in fixed width 'en's. Labels consisting of printable
// ASCII only are one en per byte; uax11 measures everything else.
func labelWidth(l string, ctx *uax11.Context) int {
	for i := 0; i < len(l); i++ {
		if l[i] < 0x20 || l[i] >= 0x7f {
			setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
			return uax11.StringWidth(grapheme.StringFromString(l), ctx)
		}
	}
	return len(l)
}

type printer[V any] struct {
	out         *bufio.Writer
	labels      map[*bst.Node[V]]string
	step        int
	leaf, inner *color.Color // nil if not colorizing
}

func (p *printer[V]) node(n *bst.Node[V], depth int) {
	if n == nil {
		return
	}
	p.node(n.Right(), depth+1)
	p.out.WriteString(strings.Repeat(" ", depth*p.step))
	c := p.inner
	if n.IsLeaf() {
		c = p.leaf
	}
	if c != nil {
		c.Fprint(p.out, p.labels[n])
	} else {
		p.out.WriteString(p.labels[n])
	}
	p.out.WriteByte('\n')
	p.node(n.Left(), depth+1)
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a console Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Colors are used for
// terminals only.
func ConfigFromTerminal() *Config {
	config := &Config{
		Context: uax11.ContextFromEnvironment(),
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Colorize = true
		w, _, err := term.GetSize(fd)
		if err != nil || w < 10 {
			config.LineWidth = 80
		} else {
			config.LineWidth = w
		}
	}
	tracer().P("render", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
