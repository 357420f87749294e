// Package protection evaluates protected branch and tag policy for pushed refs
package protection

// AccessLevel is the ordered project role tier for a member
type AccessLevel uint8

const (
	// NoAccess means no relationship with the project
	NoAccess AccessLevel = 0
	// Guest can see the project exists
	Guest AccessLevel = 10
	// Reporter can read and download code
	Reporter AccessLevel = 20
	// Developer can push unprotected refs
	Developer AccessLevel = 30
	// Master can manage protected refs within rule limits
	Master AccessLevel = 40
	// Admin is the site-wide override tier
	Admin AccessLevel = 50
)

// String returns a lowercase role name for logs and audit rows
func (l AccessLevel) String() string {
	switch l {
	case Guest:
		return "guest"
	case Reporter:
		return "reporter"
	case Developer:
		return "developer"
	case Master:
		return "master"
	case Admin:
		return "admin"
	default:
		return "none"
	}
}

// AtLeast reports whether the level meets the given floor
func (l AccessLevel) AtLeast(min AccessLevel) bool { return l >= min }

// PushTier says who a rule lets push (or create) a matching ref
type PushTier uint8

const (
	// PushNoOne denies every role, including master and admin
	PushNoOne PushTier = iota
	// PushDevelopers allows developer and up
	PushDevelopers
	// PushMasters allows master and up
	PushMasters
)

// Satisfied reports whether a role tier clears the push tier
// PushNoOne is an explicit deny that no role can clear
func (t PushTier) Satisfied(l AccessLevel) bool {
	switch t {
	case PushDevelopers:
		return l.AtLeast(Developer)
	case PushMasters:
		return l.AtLeast(Master)
	default:
		return false
	}
}

// MergeTier says who a rule lets land an in-progress merge on a matching ref
type MergeTier uint8

const (
	// MergeDevelopers allows developer and up
	MergeDevelopers MergeTier = iota
	// MergeMasters allows master and up
	MergeMasters
)

// Satisfied reports whether a role tier clears the merge tier
func (t MergeTier) Satisfied(l AccessLevel) bool {
	if t == MergeMasters {
		return l.AtLeast(Master)
	}
	return l.AtLeast(Developer)
}
