// Package service implements the access gate decision engine
package service

import (
	"context"

	"gitgate/internal/modkit/repokit"
	"gitgate/internal/platform/config"
	"gitgate/internal/platform/logger"
	auditdomain "gitgate/internal/services/audit/domain"
	"gitgate/internal/services/gate/domain"
	"gitgate/internal/services/gate/repo"
)

// Checker defines the gate service contract
type Checker interface {
	domain.CheckerPort
}

// Config carries the global protocol and command toggles plus the host
// identity used in remote rewrite hints. Read once per check, never mutated
type Config struct {
	SSHEnabled             bool
	HTTPEnabled            bool
	HTTPUploadPackEnabled  bool
	HTTPReceivePackEnabled bool

	SSHHost    string // e.g. "git.example.com"
	HTTPOrigin string // e.g. "https://git.example.com"
}

// FromConfig reads gate settings from a GATE_ scoped Conf
func FromConfig(cfg config.Conf) Config {
	return Config{
		SSHEnabled:             cfg.MayBool("SSH_ENABLED", true),
		HTTPEnabled:            cfg.MayBool("HTTP_ENABLED", true),
		HTTPUploadPackEnabled:  cfg.MayBool("HTTP_UPLOAD_PACK_ENABLED", true),
		HTTPReceivePackEnabled: cfg.MayBool("HTTP_RECEIVE_PACK_ENABLED", true),
		SSHHost:                cfg.MayString("SSH_HOST", "localhost"),
		HTTPOrigin:             cfg.MayString("HTTP_ORIGIN", "http://localhost"),
	}
}

// Svc implements the gate over read-only collaborator lookups
// it never mutates project or membership state
type Svc struct {
	cfg    Config
	repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	rec    auditdomain.RecorderPort
	log    logger.Logger
}

// Option tweaks optional service wiring
type Option func(*Svc)

// WithRecorder attaches the decision audit recorder
func WithRecorder(r auditdomain.RecorderPort) Option {
	return func(s *Svc) { s.rec = r }
}

// WithLogger sets the service logger
func WithLogger(l logger.Logger) Option {
	return func(s *Svc) { s.log = l }
}

// New constructs the gate service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], cfg Config, opts ...Option) *Svc {
	if db == nil {
		panic("gate.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("gate.Service requires a non nil Repo binder")
	}
	s := &Svc{cfg: cfg, repo: binder.Bind(db), binder: binder, db: db}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Check implements domain.CheckerPort
func (s *Svc) Check(ctx context.Context, in domain.CheckInput) error {
	project, err := s.evaluate(ctx, in)
	s.record(ctx, in, project, err)
	return err
}

var _ domain.CheckerPort = (*Svc)(nil)
