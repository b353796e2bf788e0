package filter

import (
	"strings"
	"unicode"
)

type Parsed struct {
	Cond     Condition
	Operands []string
}

type rule func(raw string) (Parsed, bool)

// Order matters: multi-char operators share prefixes with single-char ones.
var rules = []rule{
	prefixRule("!", "", NotEqual),
	prefixRule(">", "=", Greater),
	prefixRule("<", "=", Less),
	prefixRule(">=", "", GreaterOrEqual),
	prefixRule("<=", "", LessOrEqual),
	rangeRule(isWordRune),
	rangeRule(isExtendedRune),
}

// Rule that matches raw starting with prefix which isn't followed by notFollowedBy.
func prefixRule(prefix string, notFollowedBy string, cond Condition) rule {
	return func(raw string) (Parsed, bool) {
		rest, ok := strings.CutPrefix(raw, prefix)
		if !ok {
			return Parsed{}, false
		}
		if notFollowedBy != "" && strings.HasPrefix(rest, notFollowedBy) {
			return Parsed{}, false
		}
		return Parsed{Cond: cond, Operands: []string{rest}}, true
	}
}

// Rule that matches whole raw of form "a,b" where a and b are
// non-empty and consist only of runes accepted by allowed.
func rangeRule(allowed func(r rune) bool) rule {
	return func(raw string) (Parsed, bool) {
		a, b, found := strings.Cut(raw, ",")
		if !found || !isToken(a, allowed) || !isToken(b, allowed) {
			return Parsed{}, false
		}
		return Parsed{Cond: Between, Operands: []string{a, b}}, true
	}
}

func isToken(s string, allowed func(r rune) bool) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !allowed(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isExtendedRune(r rune) bool {
	return r == ':' || r == '-' ||
		('a' <= r && r <= 'z') ||
		('A' <= r && r <= 'Z') ||
		('0' <= r && r <= '9')
}

// Splits raw filter value into condition and operand(s).
//
// Recognized forms (checked in this order):
//
//	!x     not equal
//	>x     greater
//	<x     less
//	>=x    greater or equal
//	<=x    less or equal
//	a,b    between a and b, inclusive
//	x      equal
//
// Never fails: anything unrecognized is an equality test against the whole raw string.
func Parse(raw string) Parsed {
	for _, r := range rules {
		if p, ok := r(raw); ok {
			return p
		}
	}
	return Parsed{Cond: Equal, Operands: []string{raw}}
}
