// Package gitref provides object id and ref name primitives for Git wire updates
package gitref

import "strings"

// ZeroOID is the all-zero object id Git sends for an absent side of an update
const ZeroOID = "0000000000000000000000000000000000000000"

// ObjectID is a 40-char hex Git object id as it appears on the wire
type ObjectID string

// IsZero reports whether the id is the all-zero sentinel
func (o ObjectID) IsZero() bool { return string(o) == ZeroOID }

// Valid reports whether the id is 40 lowercase hex characters
func (o ObjectID) Valid() bool {
	if len(o) != 40 {
		return false
	}
	for i := 0; i < len(o); i++ {
		c := o[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

const (
	branchPrefix = "refs/heads/"
	tagPrefix    = "refs/tags/"
)

// RefName is a fully qualified ref like refs/heads/main or refs/tags/v1.0.0
type RefName string

// IsBranch reports whether the ref lives under refs/heads/
func (r RefName) IsBranch() bool { return strings.HasPrefix(string(r), branchPrefix) }

// IsTag reports whether the ref lives under refs/tags/
func (r RefName) IsTag() bool { return strings.HasPrefix(string(r), tagPrefix) }

// BranchName returns the short branch name, or "" when the ref is not a branch
func (r RefName) BranchName() string {
	if !r.IsBranch() {
		return ""
	}
	return string(r[len(branchPrefix):])
}

// TagName returns the short tag name, or "" when the ref is not a tag
func (r RefName) TagName() string {
	if !r.IsTag() {
		return ""
	}
	return string(r[len(tagPrefix):])
}
