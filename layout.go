package globalization

import "strings"

// momentToGo maps moment-style pattern tokens to Go reference layout
// fragments. Ordered longest-first so the scanner never splits a token.
var momentToGo = []struct {
	token  string
	layout string
}{
	{"YYYY", "2006"},
	{"YY", "06"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"M", "1"},
	{"DD", "02"},
	{"D", "2"},
	{"dddd", "Monday"},
	{"ddd", "Mon"},
	{"HH", "15"},
	{"H", "15"},
	{"hh", "03"},
	{"h", "3"},
	{"mm", "04"},
	{"m", "4"},
	{"ss", "05"},
	{"s", "5"},
	{"A", "PM"},
	{"a", "pm"},
	{"ZZ", "-0700"},
	{"Z", "-07:00"},
}

// GoLayout converts a moment-style display pattern into a Go reference
// layout. Bracketed segments ([de]) pass through as literals; bytes that
// match no token are copied verbatim.
func GoLayout(pattern string) string {
	var b strings.Builder

	for i := 0; i < len(pattern); {
		if pattern[i] == '[' {
			end := strings.IndexByte(pattern[i:], ']')
			if end < 0 {
				b.WriteString(pattern[i+1:])
				break
			}
			b.WriteString(pattern[i+1 : i+end])
			i += end + 1
			continue
		}

		matched := false
		for _, m := range momentToGo {
			if strings.HasPrefix(pattern[i:], m.token) {
				b.WriteString(m.layout)
				i += len(m.token)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(pattern[i])
			i++
		}
	}

	return b.String()
}
