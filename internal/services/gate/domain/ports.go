package domain

import (
	"context"

	"gitgate/internal/core/gitref"
	"gitgate/internal/core/protection"
)

// ActorRef identifies the credential a protocol front-end authenticated,
// before the gate loads the backing record
type ActorRef struct {
	UserID int64
	KeyID  int64
	CI     bool
}

// CheckerPort answers one access check; a nil Check error means the
// operation may proceed. Failures are platform errors with the Unauthorized,
// NotFound, or ProjectMoved codes and are terminal, never retryable
type CheckerPort interface {
	// LookupActor loads the actor variant behind a credential reference
	LookupActor(ctx context.Context, ref ActorRef) (Actor, error)

	Check(ctx context.Context, in CheckInput) error
}

// IdentityPort loads credential records for actor resolution
type IdentityPort interface {
	// UserByID returns nil when no such account exists
	UserByID(ctx context.Context, id int64) (*User, error)
	// DeployKeyByID returns nil when no such key exists
	DeployKeyByID(ctx context.Context, id int64) (*DeployKey, error)
}

// ProjectPort resolves repository paths and membership state
type ProjectPort interface {
	// ResolveProject looks a normalized path up, following redirect routes
	// from renamed paths; redirectedFrom carries the stale path that matched
	// when resolution went through a redirect, otherwise ""
	// a missing project is (nil, "", nil), never an error
	ResolveProject(ctx context.Context, path string) (p *Project, redirectedFrom string, err error)

	// MaxAccessLevel returns the user's highest role on the project,
	// protection.NoAccess when the user is not a member
	MaxAccessLevel(ctx context.Context, userID, projectID int64) (protection.AccessLevel, error)
}

// ProtectionPort loads the protected ref policy snapshot for a project
type ProtectionPort interface {
	Rules(ctx context.Context, projectID int64) (protection.RuleSet, error)
}

// MergePort exposes in-progress merge state owned by the merge-request subsystem
type MergePort interface {
	// InProgressMergeCommit returns the merge commit id pinned by a locked
	// merge request targeting branch, or "" when no such merge is running
	InProgressMergeCommit(ctx context.Context, projectID int64, targetBranch string) (gitref.ObjectID, error)
}

// DeployKeyPort exposes the authorized project set of a deploy credential
type DeployKeyPort interface {
	KeyAuthorized(ctx context.Context, keyID, projectID int64) (bool, error)
}
