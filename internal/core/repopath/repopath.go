// Package repopath normalizes requested repository paths for lookup
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFKC normalization
// 3 Width fold fullwidth to ASCII
// 4 Case folding
// 5 Trim surrounding whitespace and slashes
// 6 Strip a trailing .git suffix
package repopath

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		// order matters and mirrors the documented pipeline
		return transform.Chain(
			norm.NFKC,
			width.Fold,
			cases.Fold(),
		)
	},
}

// Normalize returns the canonical lookup form of a requested repository path
func Normalize(p string) string {
	if p == "" {
		return ""
	}

	p = strings.ToValidUTF8(p, "")

	tr := chainPool.Get().(transform.Transformer)
	np, _, _ := transform.String(tr, p)
	tr.Reset()
	chainPool.Put(tr)

	np = strings.TrimSpace(np)
	np = strings.Trim(np, "/")
	np = strings.TrimSuffix(np, ".git")
	return np
}

// Equivalent reports whether two paths normalize to the same project path
// used to decide whether a redirected lookup should raise a moved error
func Equivalent(a, b string) bool { return Normalize(a) == Normalize(b) }
