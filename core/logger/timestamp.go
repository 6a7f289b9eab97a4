package logger

import "strings"

// Go layout elements, their presence means the format is already a layout.
var goLayoutElements = []string{"2006", "15", "04", "05", "Jan", "Mon", "MST"}

// Tokens in the style of date-fns, longest first so the longest match wins.
var dateFnsTokens = []struct {
	token  string
	layout string
}{
	{"yyyy", "2006"},
	{"yy", "06"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"M", "1"},
	{"dd", "02"},
	{"d", "2"},
	{"EEEE", "Monday"},
	{"EEE", "Mon"},
	{"HH", "15"},
	{"H", "15"},
	{"hh", "03"},
	{"h", "3"},
	{"mm", "04"},
	{"m", "4"},
	{"ss", "05"},
	{"s", "5"},
	{"SSS", "000"},
	{"aa", "PM"},
	{"a", "PM"},
	{"xxx", "-07:00"},
	{"xx", "-0700"},
	{"XXX", "Z07:00"},
	{"z", "MST"},
}

// TimeStampLayout converts a time stamp format into a Go time layout.
// Formats using date-fns tokens such as "HH:mm:ss" are translated, text in
// single quotes is copied literally. Formats that already contain Go layout
// elements are returned unchanged.
func TimeStampLayout(format string) string {
	for _, element := range goLayoutElements {
		if strings.Contains(format, element) {
			return format
		}
	}

	var out strings.Builder
	for i := 0; i < len(format); {
		if format[i] == '\'' {
			end := strings.IndexByte(format[i+1:], '\'')
			if end < 0 {
				out.WriteString(format[i+1:])
				break
			}
			if end == 0 {
				out.WriteByte('\'')
			} else {
				out.WriteString(format[i+1 : i+1+end])
			}
			i += end + 2
			continue
		}

		matched := false
		for _, t := range dateFnsTokens {
			if strings.HasPrefix(format[i:], t.token) {
				out.WriteString(t.layout)
				i += len(t.token)
				matched = true
				break
			}
		}
		if !matched {
			out.WriteByte(format[i])
			i++
		}
	}
	return out.String()
}
