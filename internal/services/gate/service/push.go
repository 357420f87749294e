package service

import (
	"context"

	"gitgate/internal/core/gitref"
	"gitgate/internal/core/protection"
	perr "gitgate/internal/platform/errors"
	"gitgate/internal/services/gate/domain"
)

// checkPush authorizes receive-pack: the basic push capability first, then
// every ref change in turn. Any single failing change aborts the whole push;
// nothing is partially applied
func (s *Svc) checkPush(
	ctx context.Context,
	caps capabilities,
	project *domain.Project,
	in domain.CheckInput,
) error {
	if !in.Scope.Has(domain.AbilityPushCode) || !caps.push {
		if _, isKey := in.Actor.(domain.DeployKey); isKey {
			return perr.Unauthorizedf(msgDeployKeyDenied)
		}
		return perr.Unauthorizedf(msgUploadDenied)
	}
	if len(in.Changes) == 0 {
		return nil
	}

	rules, err := s.repo.Rules(ctx, project.ID)
	if err != nil {
		return err
	}
	for _, ch := range in.Changes {
		if err := s.authorizeChange(ctx, project, caps.level, rules, ch); err != nil {
			return err
		}
	}
	return nil
}

// authorizeChange is the per-ref decision: unprotected refs pass, protected
// ones go through the rule matrix
func (s *Svc) authorizeChange(
	ctx context.Context,
	project *domain.Project,
	level protection.AccessLevel,
	rules protection.RuleSet,
	ch gitref.Change,
) error {
	kind := ch.Classify()
	switch kind {
	case gitref.KindBranchCreate, gitref.KindBranchUpdate:
		name := ch.Ref.BranchName()
		matched := rules.MatchingBranches(name)
		if len(matched) == 0 {
			return nil
		}
		if protection.CanPushBranch(level, matched) {
			return nil
		}
		// the one path by which a merge-but-not-push role lands a change on
		// a protected branch: the pushed commit is exactly the merge commit
		// of a locked merge request targeting this branch
		if kind == gitref.KindBranchUpdate && protection.CanMergeBranch(level, matched) {
			oid, err := s.repo.InProgressMergeCommit(ctx, project.ID, name)
			if err != nil {
				return err
			}
			if oid != "" && oid == ch.NewID {
				return nil
			}
		}
		return perr.Unauthorizedf(msgProtectedPush)

	case gitref.KindBranchDelete:
		matched := rules.MatchingBranches(ch.Ref.BranchName())
		if len(matched) == 0 {
			return nil
		}
		if protection.CanDeleteBranch(level, matched) {
			return nil
		}
		return perr.Unauthorizedf(msgProtectedDelete)

	case gitref.KindTagCreate, gitref.KindTagUpdate:
		matched := rules.MatchingTags(ch.Ref.TagName())
		if len(matched) == 0 {
			return nil
		}
		if protection.CanCreateTag(level, matched) {
			return nil
		}
		return perr.Unauthorizedf(msgProtectedTagPush)

	case gitref.KindTagDelete:
		matched := rules.MatchingTags(ch.Ref.TagName())
		if len(matched) == 0 {
			return nil
		}
		if protection.CanDeleteTag(level, matched) {
			return nil
		}
		return perr.Unauthorizedf(msgProtectedTagDelete)

	default:
		// refs outside refs/heads and refs/tags (notes, environments) ride
		// on the basic push capability already established
		return nil
	}
}
