// Package normalize turns arbitrary header and label text into comparable ASCII tokens
// Pipeline order
// 1 Sanitize drop control chars and invalid UTF-8
// 2 Unicode NFKD decomposition
// 3 Remove combining marks (diacritics)
// 4 Case folding
// 5 Collapse every run of non [a-z0-9] into a single underscore
// 6 Trim leading and trailing underscores
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// pool of fresh transformer chains, a chain keeps state between calls so it is never shared
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKD,                          // split accents off their base letter, fold compat forms
			runes.Remove(runes.In(unicode.Mn)), // strip combining marks
			cases.Fold(),                       // unicode case folding
		)
	},
}

// Slug returns the token form of s, matching ^[a-z0-9]+(_[a-z0-9]+)*$ or the empty string
// Slug is pure and total: "Número de Cabeças" and "numero_de_cabecas" give the same token
func Slug(s string) string {
	if s == "" {
		return ""
	}
	s = Sanitize(s)

	tr := chainPool.Get().(transform.Transformer)
	folded, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		// the chain only fails on malformed input which Sanitize already removed
		folded = strings.ToLower(s)
	}

	return collapse(folded)
}

// Tokens splits the slug of s on underscores
func Tokens(s string) []string {
	sl := Slug(s)
	if sl == "" {
		return nil
	}
	return strings.Split(sl, "_")
}

// collapse keeps [a-z0-9] and replaces each run of anything else with one underscore
func collapse(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pending := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}
