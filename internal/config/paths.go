package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// expandPath expands $VAR (and %VAR% on Windows) then a leading ~.
func expandPath(p string) string {
	if p == "" {
		return p
	}

	expanded := os.ExpandEnv(p)
	if runtime.GOOS == "windows" {
		expanded = expandPercentVars(expanded)
	}

	rest, ok := cutHome(expanded)
	if !ok {
		return expanded
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return expanded
	}
	return filepath.Join(home, rest)
}

// cutHome strips a leading "~", "~/" or (on Windows) "~\".
func cutHome(p string) (string, bool) {
	if p == "~" {
		return "", true
	}
	if rest, ok := strings.CutPrefix(p, "~/"); ok {
		return rest, true
	}
	if runtime.GOOS == "windows" {
		if rest, ok := strings.CutPrefix(p, `~\`); ok {
			return rest, true
		}
	}
	return p, false
}

// expandPercentVars replaces %NAME% with its value. Unknown names and
// unmatched percent signs are left as they are.
func expandPercentVars(p string) string {
	var b strings.Builder
	for {
		before, after, found := strings.Cut(p, "%")
		b.WriteString(before)
		if !found {
			return b.String()
		}
		name, tail, closed := strings.Cut(after, "%")
		if !closed {
			b.WriteString("%" + after)
			return b.String()
		}
		if val, ok := os.LookupEnv(name); ok && name != "" {
			b.WriteString(val)
			p = tail
			continue
		}
		// Keep the opening percent and retry from the closing one.
		b.WriteString("%" + name)
		p = "%" + tail
		if tail == "" {
			b.WriteString("%")
			return b.String()
		}
	}
}
