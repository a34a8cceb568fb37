package indicator

import "strings"

// Matcher locates a row label or column header by tolerant substring
// matching. Exact-key lookup is too brittle for DHS exports: wording
// shifts slightly between files, sheets and survey years, so a matcher
// trades strict schema validation for deterministic substring scans.
//
// A pattern is either a plain substring, or a simple wildcard form
// "A.*B" meaning "contains A followed eventually by B". The first
// candidate in source order that satisfies the pattern wins; there is
// no scoring or best-match heuristic.
type Matcher struct {
	Pattern  string
	FoldCase bool // case-insensitive comparison
}

// Contains builds a case-sensitive substring matcher.
func Contains(pattern string) Matcher {
	return Matcher{Pattern: pattern}
}

// ContainsFold builds a case-insensitive substring matcher.
func ContainsFold(pattern string) Matcher {
	return Matcher{Pattern: pattern, FoldCase: true}
}

// Match reports whether the candidate satisfies the pattern.
func (m Matcher) Match(candidate string) bool {
	pattern := m.Pattern
	if m.FoldCase {
		pattern = strings.ToLower(pattern)
		candidate = strings.ToLower(candidate)
	}

	parts := strings.Split(pattern, ".*")
	if len(parts) == 1 {
		return strings.Contains(candidate, pattern)
	}

	// Wildcard form: every part must appear, in order.
	rest := candidate
	for _, part := range parts {
		if part == "" {
			continue
		}
		i := strings.Index(rest, part)
		if i < 0 {
			return false
		}
		rest = rest[i+len(part):]
	}
	return true
}

func (m Matcher) String() string {
	return m.Pattern
}
