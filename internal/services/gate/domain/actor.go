package domain

// Actor is the closed set of caller identities the gate decides for.
// Dispatch is by type switch; the unexported method seals the set
type Actor interface {
	actor()
	// ActorKind returns a stable label for logs and audit rows
	ActorKind() string
}

// User is a person with an account
type User struct {
	ID       int64
	Username string
	Blocked  bool
	Admin    bool
}

func (User) actor() {}

// ActorKind implements Actor
func (User) ActorKind() string { return "user" }

// DeployKey is a non-human credential bound to an explicit project set
type DeployKey struct {
	ID      int64
	Title   string
	CanPush bool // credential-level write flag, independent of authorization
}

func (DeployKey) actor() {}

// ActorKind implements Actor
func (DeployKey) ActorKind() string { return "deploy_key" }

// CIBuilder is the legacy automation identity with no underlying account
type CIBuilder struct{}

func (CIBuilder) actor() {}

// ActorKind implements Actor
func (CIBuilder) ActorKind() string { return "ci" }

// Anonymous is an unauthenticated caller
type Anonymous struct{}

func (Anonymous) actor() {}

// ActorKind implements Actor
func (Anonymous) ActorKind() string { return "anonymous" }

// ActorID returns the numeric identity for audit rows, 0 for ci/anonymous
func ActorID(a Actor) int64 {
	switch v := a.(type) {
	case User:
		return v.ID
	case DeployKey:
		return v.ID
	default:
		return 0
	}
}
