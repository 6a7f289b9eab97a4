package logger

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

var (
	trailingNewLines = regexp.MustCompile(`(\r?\n){1,2}$`)
	lineBreak        = regexp.MustCompile(`\r?\n`)
	ansiSequence     = regexp.MustCompile("[\u001B\u009B][[\\]()#;?]*(?:(?:(?:(?:;[-a-zA-Z\\d\\/#&.:=?%@~_]+)*|[a-zA-Z\\d]+(?:;[-a-zA-Z\\d\\/#&.:=?%@~_]*)*)?\u0007)|(?:(?:\\d{1,4}(?:;\\d{0,4})*)?[\\dA-PR-TZcf-nq-uy=><~]))")
)

// StripANSI removes ANSI escape sequences from s.
func StripANSI(s string) string {
	return ansiSequence.ReplaceAllString(s, "")
}

// FormatterOptions controls how output lines are decorated.
type FormatterOptions struct {
	// TimeStampFormat is written in front of each line when set, see
	// TimeStampLayout for the accepted syntax.
	TimeStampFormat string
	// StripANSI removes escape sequences from the output.
	StripANSI bool
	// Color enables colored output.
	Color bool
	// Now returns the time of the time stamps, time.Now if nil.
	Now func() time.Time
}

// Formatter writes script output line by line, decorating each line with a
// time stamp and color. It's safe to write from multiple goroutines, lines
// from different writers aren't interleaved.
type Formatter struct {
	layout    string
	stripANSI bool
	now       func() time.Time

	grey  *color.Color
	red   *color.Color
	green *color.Color

	mu sync.Mutex
}

// NewFormatter creates a Formatter.
func NewFormatter(opts FormatterOptions) *Formatter {
	f := &Formatter{
		layout:    TimeStampLayout(opts.TimeStampFormat),
		stripANSI: opts.StripANSI,
		now:       opts.Now,
		grey:      color.New(color.FgHiBlack),
		red:       color.New(color.FgRed),
		green:     color.New(color.FgGreen),
	}
	if f.now == nil {
		f.now = time.Now
	}

	for _, c := range []*color.Color{f.grey, f.red, f.green} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return f
}

// Log writes text to w. Up to two trailing line terminators are dropped,
// then every remaining line is written separately. Nothing is written for
// empty text.
func (f *Formatter) Log(w io.Writer, text string, c *color.Color) error {
	text = trailingNewLines.ReplaceAllString(text, "")
	if text == "" {
		return nil
	}

	var out strings.Builder
	for _, line := range lineBreak.Split(text, -1) {
		if f.layout != "" {
			fmt.Fprintf(&out, "[%s] ", f.grey.Sprint(f.now().Format(f.layout)))
		}
		if f.stripANSI {
			line = StripANSI(line)
		}
		if c != nil {
			line = c.Sprint(line)
		}
		out.WriteString(line)
		out.WriteByte('\n')
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	_, err := io.WriteString(w, out.String())
	return err
}

// Stdout returns a writer for regular output.
func (f *Formatter) Stdout(w io.Writer) io.Writer {
	return &formattedWriter{formatter: f, out: w}
}

// Stderr returns a writer for error output, lines are colored red.
func (f *Formatter) Stderr(w io.Writer) io.Writer {
	return &formattedWriter{formatter: f, out: w, color: f.red}
}

// Command logs a command line about to run in green.
func (f *Formatter) Command(w io.Writer, commandLine string) error {
	return f.Log(w, commandLine, f.green)
}

// Error logs an error in red.
func (f *Formatter) Error(w io.Writer, err error) error {
	return f.Log(w, err.Error(), f.red)
}

type formattedWriter struct {
	formatter *Formatter
	out       io.Writer
	color     *color.Color
}

func (w *formattedWriter) Write(p []byte) (int, error) {
	if err := w.formatter.Log(w.out, string(p), w.color); err != nil {
		return 0, err
	}
	return len(p), nil
}
