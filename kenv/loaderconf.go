package kenv

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadLoaderConf reads a FreeBSD loader.conf(5) style file, see
// ParseLoaderConf.
func LoadLoaderConf(path string) (Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := ParseLoaderConf(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ParseLoaderConf parses lines of the form
//
//	ibft.initiator="iqn.2010-01.example:host"   # comment
//	ibft.nic_mask=24
//
// Blank lines and lines starting with # are skipped.
func ParseLoaderConf(r io.Reader) (Map, error) {
	m := make(Map)
	sc := bufio.NewScanner(r)
	for lineno := 1; sc.Scan(); lineno++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, rest, ok := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("line %d: expected key=value, got %q", lineno, line)
		}
		value, err := loaderConfValue(strings.TrimSpace(rest))
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", lineno, err)
		}
		m[key] = value
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

func loaderConfValue(s string) (string, error) {
	if strings.HasPrefix(s, `"`) {
		end := strings.IndexByte(s[1:], '"')
		if end == -1 {
			return "", fmt.Errorf("unterminated quote in %q", s)
		}
		return s[1 : 1+end], nil
	}
	if idx := strings.IndexAny(s, " \t#"); idx > -1 {
		s = s[:idx]
	}
	return s, nil
}
