// Package repo provides postgres access for the gate's collaborator lookups
package repo

import (
	"context"

	"gitgate/internal/core/gitref"
	"gitgate/internal/core/protection"
	"gitgate/internal/modkit/repokit"
	"gitgate/internal/platform/store"
	"gitgate/internal/services/gate/domain"
)

// Repo is the full read-only lookup surface the gate consumes
type Repo interface {
	domain.ProjectPort
	domain.ProtectionPort
	domain.MergePort
	domain.DeployKeyPort
	domain.IdentityPort
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// ResolveProject implements domain.ProjectPort
func (r *queries) ResolveProject(ctx context.Context, path string) (*domain.Project, string, error) {
	const direct = `
select id, path, visibility_level, repository_enabled
from projects
where lower(path) = lower($1)
`
	var p domain.Project
	err := r.q.QueryRow(ctx, direct, path).Scan(&p.ID, &p.Path, &p.Visibility, &p.RepositoryEnabled)
	if err == nil {
		return &p, "", nil
	}
	if !isNoRows(err) {
		return nil, "", err
	}

	// stale path? follow redirect routes left behind by renames
	const redirected = `
select p.id, p.path, p.visibility_level, p.repository_enabled, r.path
from redirect_routes r
join projects p on p.id = r.project_id
where lower(r.path) = lower($1)
`
	var from string
	err = r.q.QueryRow(ctx, redirected, path).Scan(&p.ID, &p.Path, &p.Visibility, &p.RepositoryEnabled, &from)
	if isNoRows(err) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", err
	}
	return &p, from, nil
}

// MaxAccessLevel implements domain.ProjectPort
func (r *queries) MaxAccessLevel(ctx context.Context, userID, projectID int64) (protection.AccessLevel, error) {
	const sql = `
select coalesce(max(access_level), 0)
from members
where user_id = $1 and project_id = $2
`
	lvl, err := store.Scalar[int](ctx, r.q, sql, userID, projectID)
	if err != nil {
		return protection.NoAccess, err
	}
	return protection.AccessLevel(lvl), nil
}

// Rules implements domain.ProtectionPort
func (r *queries) Rules(ctx context.Context, projectID int64) (protection.RuleSet, error) {
	var rs protection.RuleSet

	const branches = `
select name, push_access, merge_access
from protected_branches
where project_id = $1
order by id
`
	branchRules, err := store.Many(ctx, r.q, func(row store.Row) (protection.BranchRule, error) {
		var pattern string
		var push, merge int
		if err := row.Scan(&pattern, &push, &merge); err != nil {
			return protection.BranchRule{}, err
		}
		return protection.BranchRule{
			Pattern: pattern,
			Push:    pushTierOf(push),
			Merge:   mergeTierOf(merge),
		}, nil
	}, branches, projectID)
	if err != nil {
		return rs, err
	}
	rs.Branches = branchRules

	const tags = `
select name, create_access
from protected_tags
where project_id = $1
order by id
`
	tagRules, err := store.Many(ctx, r.q, func(row store.Row) (protection.TagRule, error) {
		var pattern string
		var create int
		if err := row.Scan(&pattern, &create); err != nil {
			return protection.TagRule{}, err
		}
		return protection.TagRule{Pattern: pattern, Create: pushTierOf(create)}, nil
	}, tags, projectID)
	if err != nil {
		return rs, err
	}
	rs.Tags = tagRules
	return rs, nil
}

// InProgressMergeCommit implements domain.MergePort
func (r *queries) InProgressMergeCommit(
	ctx context.Context,
	projectID int64,
	targetBranch string,
) (gitref.ObjectID, error) {
	const sql = `
select coalesce(in_progress_merge_commit_sha, '')
from merge_requests
where target_project_id = $1 and target_branch = $2 and state = 'locked'
order by updated_at desc
limit 1
`
	var sha string
	err := r.q.QueryRow(ctx, sql, projectID, targetBranch).Scan(&sha)
	if isNoRows(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return gitref.ObjectID(sha), nil
}

// KeyAuthorized implements domain.DeployKeyPort
func (r *queries) KeyAuthorized(ctx context.Context, keyID, projectID int64) (bool, error) {
	const sql = `
select exists (
	select 1 from deploy_keys_projects
	where deploy_key_id = $1 and project_id = $2
)
`
	return store.Scalar[bool](ctx, r.q, sql, keyID, projectID)
}

// access level tier columns store the minimum role int; 0 means no one
func pushTierOf(v int) protection.PushTier {
	switch {
	case v <= 0:
		return protection.PushNoOne
	case v >= int(protection.Master):
		return protection.PushMasters
	default:
		return protection.PushDevelopers
	}
}

func mergeTierOf(v int) protection.MergeTier {
	if v >= int(protection.Master) {
		return protection.MergeMasters
	}
	return protection.MergeDevelopers
}
