// Package env resolves environment variables through a primary key,
// an optional alternate key and a typed default, without touching the
// process environment directly.
package env

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// LookupFunc reports the value of a variable and whether it is set.
type LookupFunc func(key string) (string, bool)

// Resolver reads variables via a pluggable lookup.
type Resolver struct {
	lookup LookupFunc
}

// NewResolver builds a resolver on top of lookup. A nil lookup falls
// back to os.LookupEnv.
func NewResolver(lookup LookupFunc) Resolver {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return Resolver{lookup: lookup}
}

// Value is a resolved variable. A set-but-empty variable counts as unset.
type Value struct {
	Key string
	raw string
	ok  bool
}

// Get resolves a single key.
func (r Resolver) Get(key string) Value {
	raw, ok := r.lookup(key)
	return Value{Key: key, raw: raw, ok: ok && raw != ""}
}

// GetAlt resolves key, falling back to altKey when key is unset.
// The primary key always wins when both are set.
func (r Resolver) GetAlt(key, altKey string) Value {
	if v := r.Get(key); v.ok {
		return v
	}
	alt := r.Get(altKey)
	alt.Key = key
	return alt
}

// Required returns the value or an error when it is unset or empty.
func (v Value) Required() (string, error) {
	if !v.ok {
		return "", fmt.Errorf("required environment variable %q not set", v.Key)
	}
	return v.raw, nil
}

// StringOr returns the value, or def when unset.
func (v Value) StringOr(def string) string {
	if !v.ok {
		return def
	}
	return v.raw
}

// IntOr parses the value as an integer. Unset returns def as-is.
func (v Value) IntOr(def int) (int, error) {
	if !v.ok {
		return def, nil
	}
	n, err := strconv.Atoi(v.raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s=%q as int: %w", v.Key, v.raw, err)
	}
	return n, nil
}

// BoolOr returns def when unset, otherwise true iff the lowercase value
// is one of: true, t, yes, y, on, 1.
func (v Value) BoolOr(def bool) bool {
	if !v.ok {
		return def
	}
	switch strings.ToLower(v.raw) {
	case "true", "t", "yes", "y", "on", "1":
		return true
	}
	return false
}

// DurationOr parses the value as a time.Duration. Unset returns def as-is.
func (v Value) DurationOr(def time.Duration) (time.Duration, error) {
	if !v.ok {
		return def, nil
	}
	d, err := time.ParseDuration(v.raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s=%q as duration: %w", v.Key, v.raw, err)
	}
	return d, nil
}

// List splits the value on sep. Unset yields an empty slice.
// Empty tokens are kept.
func (v Value) List(sep string) []string {
	if !v.ok {
		return []string{}
	}
	return strings.Split(v.raw, sep)
}
