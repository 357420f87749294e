package module

import (
	"context"

	"gitgate/internal/services/gate/domain"
	gatesvc "gitgate/internal/services/gate/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptCheckerPort struct{ svc gatesvc.Checker }

// LookupActor loads the actor variant behind a credential reference
func (a adaptCheckerPort) LookupActor(ctx context.Context, ref domain.ActorRef) (domain.Actor, error) {
	return a.svc.LookupActor(ctx, ref)
}

// Check answers one access decision for the given input
func (a adaptCheckerPort) Check(ctx context.Context, in domain.CheckInput) error {
	return a.svc.Check(ctx, in)
}
