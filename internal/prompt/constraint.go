package prompt

import (
	"regexp"
	"slices"
	"strings"
)

// Kind tags the variant held by a Constraint.
type Kind int

const (
	FreeText Kind = iota
	PatternMatch
	MembershipSet
)

// String returns the name of the constraint kind.
func (k Kind) String() string {
	switch k {
	case FreeText:
		return "free-text"
	case PatternMatch:
		return "pattern"
	case MembershipSet:
		return "membership"
	default:
		return "unknown"
	}
}

// Constraint decides whether an answer is acceptable.
type Constraint struct {
	Kind    Kind
	pattern *regexp.Regexp
	tokens  []string
}

// Common answer patterns.
const (
	YesNoPattern  = `y|yes|n|no`
	NumberPattern = `\d+`
	SizePattern   = `\d+[bkmg]?`
)

// Match accepts answers that match expr in full, ignoring case.
// It panics if expr does not compile.
func Match(expr string) Constraint {
	return Constraint{
		Kind:    PatternMatch,
		pattern: regexp.MustCompile(`(?i)^(?:` + expr + `)$`),
	}
}

// OneOf accepts answers equal to one of tokens, ignoring case.
func OneOf(tokens ...string) Constraint {
	lowered := make([]string, len(tokens))
	for i, t := range tokens {
		lowered[i] = strings.ToLower(t)
	}
	return Constraint{Kind: MembershipSet, tokens: lowered}
}

// AnyText accepts any non-empty answer.
func AnyText() Constraint {
	return Constraint{Kind: FreeText}
}

// Accept reports whether answer satisfies the constraint and returns the
// normalized answer. Membership answers are lower-cased; others are returned
// unchanged.
func (c Constraint) Accept(answer string) (string, bool) {
	if answer == "" {
		return "", false
	}

	switch c.Kind {
	case PatternMatch:
		return answer, c.pattern.MatchString(answer)
	case MembershipSet:
		lower := strings.ToLower(answer)
		return lower, slices.Contains(c.tokens, lower)
	case FreeText:
		return answer, true
	default:
		return "", false
	}
}
