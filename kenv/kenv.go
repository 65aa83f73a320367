// Package kenv provides read-only access to early-boot key/value settings, in
// the spirit of the FreeBSD kernel environment: the kernel command line,
// loader.conf files, YAML files and per-key files in a configuration
// directory.
package kenv

// Store looks up a single setting. A Store never fails: sources which cannot
// be read are treated as not containing the key.
type Store interface {
	// Lookup returns the value of key and whether it is set. A set key may
	// carry an empty value.
	Lookup(key string) (string, bool)
}

// Map is a Store backed by a Go map.
type Map map[string]string

func (m Map) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Chain consults each Store in order and returns the first hit, so earlier
// stores override later ones.
type Chain []Store

func (c Chain) Lookup(key string) (string, bool) {
	for _, s := range c {
		if s == nil {
			continue
		}
		if v, ok := s.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}
