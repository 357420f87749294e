package protection

import "strings"

// BranchRule protects branches whose name matches Pattern
// Push and Merge are independent allowance tiers
type BranchRule struct {
	Pattern string
	Push    PushTier
	Merge   MergeTier
}

// TagRule protects tags whose name matches Pattern with a create tier
type TagRule struct {
	Pattern string
	Create  PushTier
}

// Matches reports whether a ref short name matches a rule pattern
// patterns are exact strings unless they carry '*', which matches any run
// of characters including '/' (fnmatch without pathname semantics)
func Matches(pattern, name string) bool {
	if !strings.Contains(pattern, "*") {
		return pattern == name
	}
	parts := strings.Split(pattern, "*")
	if !strings.HasPrefix(name, parts[0]) {
		return false
	}
	rest := name[len(parts[0]):]
	last := len(parts) - 1
	for i := 1; i < last; i++ {
		idx := strings.Index(rest, parts[i])
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(parts[i]):]
	}
	return strings.HasSuffix(rest, parts[last])
}

// RuleSet is the project's protected ref policy snapshot
type RuleSet struct {
	Branches []BranchRule
	Tags     []TagRule
}

// MatchingBranches returns every branch rule whose pattern matches name
func (rs RuleSet) MatchingBranches(name string) []BranchRule {
	var out []BranchRule
	for _, r := range rs.Branches {
		if Matches(r.Pattern, name) {
			out = append(out, r)
		}
	}
	return out
}

// MatchingTags returns every tag rule whose pattern matches name
func (rs RuleSet) MatchingTags(name string) []TagRule {
	var out []TagRule
	for _, r := range rs.Tags {
		if Matches(r.Pattern, name) {
			out = append(out, r)
		}
	}
	return out
}

// BranchProtected reports whether any branch rule matches name
func (rs RuleSet) BranchProtected(name string) bool {
	return len(rs.MatchingBranches(name)) > 0
}

// TagProtected reports whether any tag rule matches name
func (rs RuleSet) TagProtected(name string) bool {
	return len(rs.MatchingTags(name)) > 0
}
