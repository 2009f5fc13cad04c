package terminal

import "strings"

// EnvMode forces the detected capabilities: "ascii" or "unicode".
const EnvMode = "SHAPEGRID_TERMINAL_MODE"

// Capabilities represents the features supported by the current terminal.
type Capabilities struct {
	Name          string
	UTF8          bool
	SupportsColor bool
	ColorDepth    int // 0, 8, 256 or 24-bit
}

// DetectCapabilities inspects the environment through getenv.
func DetectCapabilities(getenv func(string) string) Capabilities {
	switch getenv(EnvMode) {
	case "ascii":
		return ForceASCII()
	case "unicode":
		return ForceUnicode()
	}

	term := getenv("TERM")
	caps := Capabilities{Name: term}

	if term != "" && !strings.Contains(term, "dumb") {
		if strings.Contains(term, "256color") {
			caps.SupportsColor = true
			caps.ColorDepth = 256
		} else if strings.Contains(term, "color") {
			caps.SupportsColor = true
			caps.ColorDepth = 8
		}
		// xterm and variants usually support color
		if strings.HasPrefix(term, "xterm") || strings.HasPrefix(term, "screen") || strings.HasPrefix(term, "tmux") {
			caps.SupportsColor = true
			if caps.ColorDepth == 0 {
				caps.ColorDepth = 256
			}
		}
	}
	if ct := getenv("COLORTERM"); ct == "truecolor" || ct == "24bit" {
		caps.SupportsColor = true
		caps.ColorDepth = 24
	}

	// https://no-color.org/
	if getenv("NO_COLOR") != "" {
		caps.SupportsColor = false
		caps.ColorDepth = 0
	}

	caps.UTF8 = detectUTF8Locale(getenv) && term != "linux" && term != "dumb"
	return caps
}

// detectUTF8Locale checks if the locale supports UTF-8.
func detectUTF8Locale(getenv func(string) string) bool {
	for _, env := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		value := getenv(env)
		if value == "" {
			continue
		}
		// C.UTF-8, en_US.UTF-8, en_US.utf8@euro ...
		upper := strings.ToUpper(value)
		return strings.Contains(upper, "UTF-8") || strings.Contains(upper, "UTF8")
	}
	return false
}

// ForceASCII returns capabilities for a plain ASCII terminal.
func ForceASCII() Capabilities {
	return Capabilities{Name: "ascii"}
}

// ForceUnicode returns capabilities for a full Unicode, true colour terminal.
func ForceUnicode() Capabilities {
	return Capabilities{Name: "unicode", UTF8: true, SupportsColor: true, ColorDepth: 24}
}

// CanShow reports whether every rune of rows can be displayed. Without a
// UTF-8 locale only ASCII is safe.
func (c Capabilities) CanShow(rows [][]rune) bool {
	if c.UTF8 {
		return true
	}
	for _, row := range rows {
		for _, r := range row {
			if r > 0x7f {
				return false
			}
		}
	}
	return true
}
