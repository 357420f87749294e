package service

import (
	"context"

	"gitgate/internal/core/protection"
	"gitgate/internal/services/gate/domain"
)

// capabilities is the uniform view the gate asks questions of, derived once
// per check from the actor variant, the project snapshot, and the ability
// scope. Role tier and ability scope are independent gates: a fully
// privileged member with a narrow token scope stays restricted
type capabilities struct {
	level    protection.AccessLevel
	read     bool
	download bool
	push     bool
}

// resolveActor builds the capability view by variant dispatch
func (s *Svc) resolveActor(
	ctx context.Context,
	actor domain.Actor,
	project *domain.Project,
	scope domain.AbilitySet,
) (capabilities, error) {
	var caps capabilities

	switch v := actor.(type) {
	case domain.User:
		level, err := s.repo.MaxAccessLevel(ctx, v.ID, project.ID)
		if err != nil {
			return caps, err
		}
		if v.Admin {
			level = protection.Admin
		}
		caps.level = level
		visible := level.AtLeast(protection.Guest) || project.Visibility != domain.VisibilityPrivate
		caps.read = visible && scope.Has(domain.AbilityReadProject)
		caps.download = scope.CanDownloadCode() &&
			(level.AtLeast(protection.Reporter) || project.Visibility != domain.VisibilityPrivate)
		caps.push = level.AtLeast(protection.Developer)

	case domain.DeployKey:
		authorized, err := s.repo.KeyAuthorized(ctx, v.ID, project.ID)
		if err != nil {
			return caps, err
		}
		// unauthorized keys see only public projects, read-only
		visible := authorized || project.Visibility == domain.VisibilityPublic
		caps.read = visible && scope.Has(domain.AbilityReadProject)
		caps.download = visible && scope.CanDownloadCode()
		caps.push = authorized && v.CanPush
		if caps.push {
			caps.level = protection.Developer
		} else if authorized {
			caps.level = protection.Reporter
		}

	case domain.CIBuilder:
		// pull always works given the right scope; push never does
		ok := scope.Has(domain.AbilityReadProject) && scope.CanDownloadCode()
		caps.read = ok
		caps.download = ok

	case domain.Anonymous:
		visible := project.Visibility != domain.VisibilityPrivate
		caps.read = visible && scope.Has(domain.AbilityReadProject)
		caps.download = visible && scope.CanDownloadCode()
	}

	return caps, nil
}
