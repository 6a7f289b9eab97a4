package commands

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/josephlewis42/juokse/core/interp"
)

var (
	echoOption      = regexp.MustCompile(`^-[nseE]+$`)
	unescapeOctal   = regexp.MustCompile(`\\0[0-7][0-7]?[0-7]?`)
	unescapeHex     = regexp.MustCompile(`\\x[0-9a-fA-F][0-9a-fA-F]?`)
	unescapeUnicode = regexp.MustCompile(`\\u[0-9a-fA-F]{4}`)
	unescapeReplace = strings.NewReplacer(
		`\\`, `\`, // backslash literal
		`\n`, "\n", // newline
		`\r`, "\r", // carriage return
		`\t`, "\t", // horizontal tab
		`\b`, "\b", // backspace
		`\a`, "\a", // alert
		`\f`, "\f", // form feed
		`\v`, "\v", // vertical tab
		`\"`, `"`,
		`\'`, `'`,
	)
)

func unescape(s string) string {
	s = unescapeUnicode.ReplaceAllStringFunc(s, func(arg string) string {
		out, err := strconv.ParseUint(arg[2:], 16, 32)
		if err != nil {
			return arg
		}
		return string(rune(out))
	})
	s = unescapeOctal.ReplaceAllStringFunc(s, func(arg string) string {
		out, err := strconv.ParseUint(arg[2:], 8, 8)
		if err != nil {
			return arg
		}
		return string(rune(out))
	})
	s = unescapeHex.ReplaceAllStringFunc(s, func(arg string) string {
		out, err := strconv.ParseUint(arg[2:], 16, 8)
		if err != nil {
			return arg
		}
		return string(rune(out))
	})
	return unescapeReplace.Replace(s)
}

// Echo writes its arguments to stdout. Options are only read from the
// leading arguments made of known flags, anything else starting with a dash
// is printed.
func Echo(c *interp.Context, name string, args []string) (interp.Result, error) {
	n := 0
	for n < len(args) && echoOption.MatchString(args[n]) {
		n++
	}
	if n < len(args) && args[n] == "--" {
		n++
	}
	operands := args[n:]

	cmd := &SimpleCommand{
		Use:   "echo [-nseE] [STRING]...",
		Short: "Display a line of text.",
	}

	opt := cmd.Flags()
	noNewline := opt.Bool('n', "do not output a newline")
	noSeparator := opt.Bool('s', "do not separate arguments with spaces")
	opt.Bool('E', "disable interpretation of backslash escapes (default)")
	escaped := opt.Bool('e', "enable interpretation of backslash escapes")

	return cmd.Run(c, name, args[:n], func([]string) int {
		separator := " "
		if *noSeparator {
			separator = ""
		}

		w := c.Stdout()
		for i, arg := range operands {
			if i > 0 {
				fmt.Fprint(w, separator)
			}

			if *escaped {
				arg = unescape(arg)
			}

			fmt.Fprint(w, arg)
		}

		if !*noNewline {
			fmt.Fprintln(w)
		}

		return interp.StatusOK
	}), nil
}
