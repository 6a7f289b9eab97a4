package commands

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/josephlewis42/juokse/core/interp"
)

// Printf writes its arguments formatted with FORMAT. Missing arguments are
// treated as empty strings and extra ones are ignored.
func Printf(c *interp.Context, name string, args []string) (interp.Result, error) {
	cmd := &SimpleCommand{
		Use:     "printf FORMAT [ARGUMENT]...",
		Short:   "Format and print data.",
		MinArgs: 1,
	}

	return cmd.Run(c, name, args, func(operands []string) int {
		out, err := sprintf(operands[0], operands[1:])
		fmt.Fprint(c.Stdout(), out)
		if err != nil {
			fmt.Fprintf(c.Stderr(), "%s: %s\n", name, err)
			return interp.StatusError
		}
		return interp.StatusOK
	}), nil
}

const printfFlags = "+-# 0123456789."

// sprintf formats the string arguments according to the verbs in format,
// converting each one to the type its verb expects. Conversion failures use
// the zero value and are reported in the returned error.
func sprintf(format string, args []string) (string, error) {
	var (
		out      strings.Builder
		firstErr error
	)
	next := func() string {
		if len(args) == 0 {
			return ""
		}
		arg := args[0]
		args = args[1:]
		return arg
	}
	fail := func(err error) {
		if firstErr == nil {
			firstErr = err
		}
	}

	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			out.WriteByte(format[i])
			continue
		}

		start := i
		i++
		for i < len(format) && strings.IndexByte(printfFlags, format[i]) >= 0 {
			i++
		}
		if i >= len(format) {
			out.WriteString(format[start:])
			fail(fmt.Errorf("missing format character"))
			break
		}

		spec := format[start:i]
		switch verb := format[i]; verb {
		case '%':
			out.WriteByte('%')
		case 's':
			fmt.Fprintf(&out, spec+"s", next())
		case 'c':
			r, _ := utf8.DecodeRuneInString(next())
			if r != utf8.RuneError {
				fmt.Fprintf(&out, spec+"c", r)
			}
		case 'd', 'i', 'u':
			fmt.Fprintf(&out, spec+"d", parseInt(next(), fail))
		case 'x', 'X', 'o', 'b':
			fmt.Fprintf(&out, spec+string(verb), parseInt(next(), fail))
		case 'f', 'F', 'e', 'E', 'g', 'G':
			arg := next()
			value, err := strconv.ParseFloat(arg, 64)
			if err != nil && arg != "" {
				fail(fmt.Errorf("invalid number: %s", arg))
			}
			fmt.Fprintf(&out, spec+string(verb), value)
		default:
			out.WriteString(format[start : i+1])
			fail(fmt.Errorf("invalid format character: %c", verb))
		}
	}

	return out.String(), firstErr
}

func parseInt(arg string, fail func(error)) int64 {
	if arg == "" {
		return 0
	}
	value, err := strconv.ParseInt(arg, 0, 64)
	if err != nil {
		fail(fmt.Errorf("invalid number: %s", arg))
	}
	return value
}
