// Package config reads typed settings from prefixed environment variables
package config

import (
	"strconv"
	"strings"
	"time"

	"stockboard/internal/platform/config/raw"
	"stockboard/internal/platform/logger"
)

// Conf is a namespaced view over env vars, e.g. New().Prefix("STOCKBOARD_BLOB_")
type Conf struct{ r raw.Conf }

// New returns an unprefixed Conf
func New() Conf { return Conf{r: raw.New()} }

// Prefix returns a child Conf with an additional prefix
func (c Conf) Prefix(p string) Conf { return Conf{r: c.r.Prefix(p)} }

// Key returns the fully-qualified env var name
func (c Conf) Key(k string) string { return c.r.Key(k) }

func (c Conf) lookup(key string) (string, bool) { return c.r.Lookup(key) }

func (c Conf) invalid(key, value, want string) {
	logger.Get().Warn().Str("key", c.Key(key)).Str("value", value).Msgf("invalid %s; using default", want)
}

// MustString panics when the key is missing or empty
func (c Conf) MustString(key string) string {
	v, ok := c.lookup(key)
	if !ok {
		logger.Get().Panic().Str("key", c.Key(key)).Msg("missing required env")
	}
	return v
}

// MustPort returns a listen addr like ":4000" after checking the range 1..65535
func (c Conf) MustPort(key string) string {
	s := c.MustString(key)
	if !validPort(s) {
		logger.Get().Panic().Str("key", c.Key(key)).Str("value", s).Msg("invalid TCP port; expected 1..65535")
	}
	return ":" + s
}

// MayPort is MustPort with a default port number when unset
func (c Conf) MayPort(key string, def int) string {
	s, ok := c.lookup(key)
	if !ok {
		return ":" + strconv.Itoa(def)
	}
	if !validPort(s) {
		c.invalid(key, s, "port")
		return ":" + strconv.Itoa(def)
	}
	return ":" + s
}

func validPort(s string) bool {
	p, err := strconv.Atoi(s)
	return err == nil && p >= 1 && p <= 65535
}

// MayString returns the value or def if missing/empty
func (c Conf) MayString(key, def string) string {
	if v, ok := c.lookup(key); ok {
		return v
	}
	return def
}

// MayInt returns the value or def; an unparseable value logs and returns def
func (c Conf) MayInt(key string, def int) int {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		c.invalid(key, s, "int")
		return def
	}
	return v
}

// MayInt64 returns the value or def; an unparseable value logs and returns def
func (c Conf) MayInt64(key string, def int64) int64 {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		c.invalid(key, s, "int64")
		return def
	}
	return v
}

// MayBool returns the value or def; an unparseable value logs and returns def
func (c Conf) MayBool(key string, def bool) bool {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		c.invalid(key, s, "bool")
		return def
	}
	return v
}

// MayDuration returns the value or def; an unparseable value logs and returns def
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		c.invalid(key, s, "duration")
		return def
	}
	return d
}

// MayCSV splits a comma-separated value, dropping blanks; def when nothing remains
func (c Conf) MayCSV(key string, def []string) []string {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum returns the lowercased value when it is one of allowed, def when unset,
// and panics on anything else
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := c.MayString(key, def)
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return strings.ToLower(v)
		}
	}
	logger.Get().Panic().Str("key", c.Key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}
