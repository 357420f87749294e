package service

import (
	"context"

	perr "gitgate/internal/platform/errors"
	"gitgate/internal/services/gate/domain"
)

// LookupActor implements domain.CheckerPort
// a credential reference that no longer resolves gets the generic not found
// response, hiding whether it was ever valid
func (s *Svc) LookupActor(ctx context.Context, ref domain.ActorRef) (domain.Actor, error) {
	switch {
	case ref.CI:
		return domain.CIBuilder{}, nil

	case ref.KeyID > 0:
		k, err := s.repo.DeployKeyByID(ctx, ref.KeyID)
		if err != nil {
			return nil, err
		}
		if k == nil {
			return nil, perr.NotFoundf(msgNotFound)
		}
		return *k, nil

	case ref.UserID > 0:
		u, err := s.repo.UserByID(ctx, ref.UserID)
		if err != nil {
			return nil, err
		}
		if u == nil {
			return nil, perr.NotFoundf(msgNotFound)
		}
		return *u, nil

	default:
		return domain.Anonymous{}, nil
	}
}
