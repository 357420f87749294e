package gitref

import (
	"strings"

	perr "gitgate/internal/platform/errors"
)

// Kind is the semantic class of a single pushed ref update
type Kind uint8

const (
	// KindUnknown is the zero value for refs outside refs/heads and refs/tags
	KindUnknown Kind = iota
	// KindBranchCreate is a push of a new branch (old side all-zero)
	KindBranchCreate
	// KindBranchUpdate is a fast-forward or forced update of an existing branch
	KindBranchUpdate
	// KindBranchDelete removes a branch (new side all-zero)
	KindBranchDelete
	// KindTagCreate is a push of a new tag
	KindTagCreate
	// KindTagUpdate is a forced re-point of an existing tag
	KindTagUpdate
	// KindTagDelete removes a tag
	KindTagDelete
)

// String returns a stable lowercase label for logs and audit rows
func (k Kind) String() string {
	switch k {
	case KindBranchCreate:
		return "branch_create"
	case KindBranchUpdate:
		return "branch_update"
	case KindBranchDelete:
		return "branch_delete"
	case KindTagCreate:
		return "tag_create"
	case KindTagUpdate:
		return "tag_update"
	case KindTagDelete:
		return "tag_delete"
	default:
		return "unknown"
	}
}

// Change is one old/new/ref triple from a receive-pack command list
type Change struct {
	OldID ObjectID
	NewID ObjectID
	Ref   RefName
}

// Classify derives the semantic kind from the zero sides and ref namespace
func (c Change) Classify() Kind {
	switch {
	case c.Ref.IsBranch():
		switch {
		case c.OldID.IsZero():
			return KindBranchCreate
		case c.NewID.IsZero():
			return KindBranchDelete
		default:
			return KindBranchUpdate
		}
	case c.Ref.IsTag():
		switch {
		case c.OldID.IsZero():
			return KindTagCreate
		case c.NewID.IsZero():
			return KindTagDelete
		default:
			return KindTagUpdate
		}
	default:
		return KindUnknown
	}
}

// ParseChange parses one "oldrev newrev refname" line as sent by receive-pack
func ParseChange(line string) (Change, error) {
	parts := strings.Fields(line)
	if len(parts) != 3 {
		return Change{}, perr.InvalidArgf("malformed ref change %q", line)
	}
	ch := Change{OldID: ObjectID(parts[0]), NewID: ObjectID(parts[1]), Ref: RefName(parts[2])}
	if !ch.OldID.Valid() || !ch.NewID.Valid() {
		return Change{}, perr.InvalidArgf("malformed object id in %q", line)
	}
	return ch, nil
}

// ParseChanges splits a newline separated command list into changes
// blank lines are skipped; any malformed line fails the whole parse
func ParseChanges(raw string) ([]Change, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var out []Change
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		ch, err := ParseChange(line)
		if err != nil {
			return nil, err
		}
		out = append(out, ch)
	}
	return out, nil
}
