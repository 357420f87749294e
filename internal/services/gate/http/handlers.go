// Package http provides the internal API transport for the access gate
package http

import (
	stdhttp "net/http"

	"gitgate/internal/core/gitref"
	"gitgate/internal/modkit/httpkit"
	"gitgate/internal/services/gate/domain"
	svc "gitgate/internal/services/gate/service"
)

// CheckRequest is the payload a protocol front-end posts per Git operation
// Changes carries the receive-pack command list, one "old new ref" per line
type CheckRequest struct {
	Project        string   `json:"project"  validate:"required"`
	Protocol       string   `json:"protocol" validate:"required,oneof=ssh http"`
	Action         string   `json:"action"   validate:"required"`
	Changes        string   `json:"changes,omitempty"`
	UserID         int64    `json:"user_id,omitempty"  validate:"omitempty,min=1"`
	KeyID          int64    `json:"key_id,omitempty"   validate:"omitempty,min=1"`
	CI             bool     `json:"ci,omitempty"`
	Abilities      []string `json:"abilities,omitempty"`
	RedirectedFrom string   `json:"redirected_from,omitempty"`
}

// CheckResponse is returned when the operation may proceed
type CheckResponse struct {
	Status bool `json:"status"`
}

// Register mounts gate endpoints on the given router
func Register(r httpkit.Router, s svc.Checker) {
	h := &handlers{svc: s}
	httpkit.PostJSON[CheckRequest](r, "/allowed", h.allowed)
}

type handlers struct{ svc svc.Checker }

// swagger:route POST /internal/allowed Gate gateAllowed
// @Summary Authorize a Git protocol operation
// @Tags Gate
// @Accept json
// @Produce json
// @Param payload body CheckRequest true "Operation"
// @Success 200 {object} CheckResponse "allowed"
// @Failure 401 {object} httpkit.Envelope "unauthorized"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Failure 409 {object} httpkit.Envelope "project moved"
// @Router /internal/allowed [post]
func (h *handlers) allowed(r *stdhttp.Request, in CheckRequest) (any, error) {
	actor, err := h.svc.LookupActor(r.Context(), domain.ActorRef{
		UserID: in.UserID,
		KeyID:  in.KeyID,
		CI:     in.CI,
	})
	if err != nil {
		return nil, err
	}

	changes, err := gitref.ParseChanges(in.Changes)
	if err != nil {
		return nil, err
	}

	scope := make(domain.AbilitySet, 0, len(in.Abilities))
	for _, a := range in.Abilities {
		scope = append(scope, domain.Ability(a))
	}

	if err := h.svc.Check(r.Context(), domain.CheckInput{
		Actor:          actor,
		Path:           in.Project,
		Protocol:       domain.Protocol(in.Protocol),
		Command:        domain.Command(in.Action),
		Changes:        changes,
		Scope:          scope,
		RedirectedFrom: in.RedirectedFrom,
	}); err != nil {
		return nil, err
	}
	return CheckResponse{Status: true}, nil
}
