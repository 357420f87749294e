package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"gitgate/internal/core/repopath"
	perr "gitgate/internal/platform/errors"
	auditdomain "gitgate/internal/services/audit/domain"
	"gitgate/internal/services/gate/domain"
)

// evaluate runs the short-circuit check order; the first failing step wins
func (s *Svc) evaluate(ctx context.Context, in domain.CheckInput) (*domain.Project, error) {
	if err := s.checkProtocol(in.Protocol); err != nil {
		return nil, err
	}
	if err := s.checkCommand(in.Protocol, in.Command); err != nil {
		return nil, err
	}

	// a blocked account fails every check regardless of role or visibility
	if u, ok := in.Actor.(domain.User); ok && u.Blocked {
		return nil, perr.Unauthorizedf(msgBlocked)
	}

	project, redirectedFrom, err := s.repo.ResolveProject(ctx, repopath.Normalize(in.Path))
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, perr.NotFoundf(msgNotFound)
	}

	caps, err := s.resolveActor(ctx, in.Actor, project, in.Scope)
	if err != nil {
		return project, err
	}
	if !caps.read {
		// CI pushes are denied Unauthorized, never NotFound, so operators
		// are not left guessing whether the project exists
		if _, isCI := in.Actor.(domain.CIBuilder); isCI && in.Command == domain.CommandReceivePack {
			return project, perr.Unauthorizedf(msgUploadDenied)
		}
		return project, perr.NotFoundf(msgNotFound)
	}

	// moved check runs after visibility is established and before any
	// operation-specific authorization
	if in.RedirectedFrom != "" {
		redirectedFrom = in.RedirectedFrom
	}
	if redirectedFrom != "" && !repopath.Equivalent(redirectedFrom, project.Path) {
		return project, s.movedError(in.Protocol, redirectedFrom, project.Path)
	}

	if in.Command == domain.CommandUploadPack {
		return project, s.checkDownload(caps, project)
	}
	return project, s.checkPush(ctx, caps, project, in)
}

// checkProtocol enforces the global per-protocol toggles
func (s *Svc) checkProtocol(p domain.Protocol) error {
	enabled := false
	switch p {
	case domain.ProtocolSSH:
		enabled = s.cfg.SSHEnabled
	case domain.ProtocolHTTP:
		enabled = s.cfg.HTTPEnabled
	}
	if !enabled {
		return perr.Unauthorizedf(msgProtocolDisabled, strings.ToUpper(string(p)))
	}
	return nil
}

// checkCommand enforces per-command toggles; only HTTP is gated at command
// granularity, SSH commands pass once the protocol itself is allowed
func (s *Svc) checkCommand(p domain.Protocol, c domain.Command) error {
	if c != domain.CommandUploadPack && c != domain.CommandReceivePack {
		return perr.Unauthorizedf(msgCommandUnknown)
	}
	if p != domain.ProtocolHTTP {
		return nil
	}
	if c == domain.CommandUploadPack && !s.cfg.HTTPUploadPackEnabled {
		return perr.Unauthorizedf(msgPullOverHTTP)
	}
	if c == domain.CommandReceivePack && !s.cfg.HTTPReceivePackEnabled {
		return perr.Unauthorizedf(msgPushOverHTTP)
	}
	return nil
}

// checkDownload authorizes upload-pack once basic visibility has passed
func (s *Svc) checkDownload(caps capabilities, project *domain.Project) error {
	if !caps.download || !project.RepositoryEnabled {
		return perr.Unauthorizedf(msgDownloadDenied)
	}
	return nil
}

// movedError builds the ProjectMoved failure with a protocol-correct remote
func (s *Svc) movedError(p domain.Protocol, oldPath, newPath string) error {
	var remote string
	if p == domain.ProtocolSSH {
		remote = fmt.Sprintf("git@%s:%s.git", s.cfg.SSHHost, newPath)
	} else {
		remote = fmt.Sprintf("%s/%s.git", strings.TrimRight(s.cfg.HTTPOrigin, "/"), newPath)
	}
	msg := fmt.Sprintf(
		"Project '%s' was moved to '%s'.\n\nPlease update your Git remote:\n\n  git remote set-url origin %s\n",
		oldPath, newPath, remote,
	)
	return perr.ProjectMoved(msg, oldPath, newPath, remote)
}

// record hands the verdict to the audit recorder when one is wired
func (s *Svc) record(ctx context.Context, in domain.CheckInput, project *domain.Project, err error) {
	if s.rec == nil {
		return
	}
	d := auditdomain.Decision{
		EventID:   uuid.NewString(),
		At:        time.Now().UTC(),
		Protocol:  string(in.Protocol),
		Command:   string(in.Command),
		ActorKind: in.Actor.ActorKind(),
		ActorID:   domain.ActorID(in.Actor),
		Path:      in.Path,
		Allowed:   err == nil,
		Changes:   len(in.Changes),
	}
	if project != nil {
		d.ProjectID = project.ID
	}
	if err != nil {
		d.Code = uint16(perr.CodeOf(err))
		d.Message = err.Error()
	}
	s.rec.Record(ctx, d)
}
