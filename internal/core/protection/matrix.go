package protection

// Decision helpers over the set of rules matching one ref name.
// Multiple rules can match the same ref; any matching rule's permissive tier
// suffices to allow, but an explicit no-one tier on any rule always wins.

func anyNoOnePush(rules []BranchRule) bool {
	for _, r := range rules {
		if r.Push == PushNoOne {
			return true
		}
	}
	return false
}

// CanPushBranch reports whether a role may directly update a branch
// matched by rules (non-deletion)
func CanPushBranch(level AccessLevel, rules []BranchRule) bool {
	if anyNoOnePush(rules) {
		return false
	}
	for _, r := range rules {
		if r.Push.Satisfied(level) {
			return true
		}
	}
	return false
}

// CanMergeBranch reports whether a role clears any matching rule's merge tier
// This is the gate for the in-progress merge commit exception, so an explicit
// no-one push tier does not block it
func CanMergeBranch(level AccessLevel, rules []BranchRule) bool {
	for _, r := range rules {
		if r.Merge.Satisfied(level) {
			return true
		}
	}
	return false
}

// CanDeleteBranch reports whether a role may delete a branch matched by rules
// Deletion is master-and-up only regardless of a developers-can-push tier,
// and a no-one push tier denies deletion outright
func CanDeleteBranch(level AccessLevel, rules []BranchRule) bool {
	if anyNoOnePush(rules) {
		return false
	}
	return level.AtLeast(Master)
}

// CanDeleteTag reports whether a role may delete a tag matched by rules
// Like branch deletion this is master-and-up only, and a no-one create tier
// denies everyone
func CanDeleteTag(level AccessLevel, rules []TagRule) bool {
	for _, r := range rules {
		if r.Create == PushNoOne {
			return false
		}
	}
	return level.AtLeast(Master)
}

// CanCreateTag reports whether a role may push a tag matched by rules
func CanCreateTag(level AccessLevel, rules []TagRule) bool {
	for _, r := range rules {
		if r.Create == PushNoOne {
			return false
		}
	}
	for _, r := range rules {
		if r.Create.Satisfied(level) {
			return true
		}
	}
	return false
}
