// Package module wires the access gate into the API using modkit
package module

import (
	"crypto/subtle"
	"net/http"

	modkit "gitgate/internal/modkit"
	"gitgate/internal/modkit/httpkit"
	perr "gitgate/internal/platform/errors"
	str "gitgate/internal/platform/strings"
	auditrepo "gitgate/internal/services/audit/repo"
	auditsvc "gitgate/internal/services/audit/service"
	gatehttp "gitgate/internal/services/gate/http"
	gaterepo "gitgate/internal/services/gate/repo"
	gatesvc "gitgate/internal/services/gate/service"
)

// Module implements the gate module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc gatesvc.Checker
}

// New constructs the gate module
// the decision audit recorder is attached when the ClickHouse seam is wired
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("gate"), modkit.WithPrefix("/internal")}, opts...)...)

	var svcOpts []gatesvc.Option
	svcOpts = append(svcOpts, gatesvc.WithLogger(deps.Log))
	if deps.CH != nil {
		rec := auditsvc.New(auditrepo.NewCH(deps.CH), deps.Log)
		svcOpts = append(svcOpts, gatesvc.WithRecorder(rec))
	}

	svc := gatesvc.New(deps.PG, gaterepo.NewPG(), gatesvc.FromConfig(deps.Cfg.Prefix("GATE_")), svcOpts...)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptCheckerPort{svc: svc}

	external := b.Register
	mount := func(r httpkit.Router) {
		gatehttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}

	// protocol front-ends authenticate with a shared bearer secret; an empty
	// secret leaves the internal endpoints open for local development
	secret := deps.Cfg.Prefix("GATE_").MayString("SECRET", "")
	m.register = func(r httpkit.Router) {
		if secret == "" {
			mount(r)
			return
		}
		httpkit.Protected(r, internalAuth(secret), mount)
	}
	return m
}

// internalAuth accepts exactly the configured shared secret as bearer token
func internalAuth(secret string) *httpkit.Port {
	return httpkit.NewPortFunc(func(token string) (string, string, error) {
		if subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			return "", "", perr.Unauthorizedf("invalid bearer token")
		}
		return "internal", "", nil
	})
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
