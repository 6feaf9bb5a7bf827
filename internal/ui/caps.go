package ui

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// DefaultWidth is the conservative fallback when the terminal width
// cannot be determined.
const DefaultWidth = 80

// Profile describes the terminal's rendering capabilities for this
// session. It is computed once at startup, is immutable, and is passed
// into every rendering call; nothing reads ambient environment state
// at render time.
type Profile struct {
	// Color enables ANSI color output.
	Color bool
	// Unicode selects the Unicode glyph set (spinner frames, charge
	// marks, dashes); false means plain ASCII.
	Unicode bool
	// Width is the terminal column count.
	Width int
}

// DetectProfile queries the terminal and locale once. Every
// indeterminate query degrades to the conservative default (no color,
// ASCII glyphs, width 80) rather than failing.
func DetectProfile() Profile {
	fd := int(os.Stdout.Fd())
	isTTY := term.IsTerminal(fd)
	width := 0
	if isTTY {
		if w, _, err := term.GetSize(fd); err == nil {
			width = w
		}
	}
	return profileFrom(isTTY, width, os.Getenv)
}

// profileFrom is the pure core of DetectProfile, split out for tests.
func profileFrom(isTTY bool, width int, getenv func(string) string) Profile {
	p := Profile{Width: DefaultWidth}
	if width > 0 {
		p.Width = width
	}

	if isTTY {
		termName := getenv("TERM")
		p.Color = getenv("NO_COLOR") == "" && termName != "" && termName != "dumb"
	}

	// First locale variable that is set wins, mirroring libc lookup order.
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		v := getenv(key)
		if v == "" {
			continue
		}
		v = strings.ToUpper(v)
		p.Unicode = strings.Contains(v, "UTF-8") || strings.Contains(v, "UTF8")
		break
	}

	return p
}
