package kenv

import (
	"os"
	"strings"
)

// DefaultCmdlinePath is where Linux exposes the kernel command line.
const DefaultCmdlinePath = "/proc/cmdline"

// ReadCmdline reads a kernel command line from path (typically
// DefaultCmdlinePath) and returns its parameters, see ParseCmdline.
func ReadCmdline(path string) (Map, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCmdline(string(b)), nil
}

// ParseCmdline splits a kernel command line into its parameters. Words of the
// form key=value set key to value; bare words are set with an empty value.
// Double quotes group words containing blanks and are removed, e.g.
// ibft.initiator="iqn.2010-01.example:host one". A later occurrence of a key
// overrides an earlier one, as it would in the kernel.
func ParseCmdline(cmdline string) Map {
	m := make(Map)
	for _, word := range splitCmdline(cmdline) {
		key, value, _ := strings.Cut(word, "=")
		if key == "" {
			continue
		}
		m[key] = value
	}
	return m
}

func splitCmdline(cmdline string) []string {
	var (
		words  []string
		cur    strings.Builder
		quoted bool
		inWord bool
	)
	for _, r := range cmdline {
		switch {
		case r == '"':
			quoted = !quoted
			inWord = true
		case !quoted && (r == ' ' || r == '\t' || r == '\n'):
			if inWord {
				words = append(words, cur.String())
				cur.Reset()
				inWord = false
			}
		default:
			cur.WriteRune(r)
			inWord = true
		}
	}
	if inWord {
		words = append(words, cur.String())
	}
	return words
}
