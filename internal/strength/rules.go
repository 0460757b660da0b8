package strength

import (
	"strings"
	"unicode/utf8"
)

// rule is a single predicate over the raw password
type rule func(string) bool

func hasMinLength(l int) rule {
	return func(s string) bool {
		return utf8.RuneCountInString(s) >= l
	}
}

func hasRuneInRange(lo, hi rune) rule {
	return func(s string) bool {
		for _, r := range s {
			if r >= lo && r <= hi {
				return true
			}
		}
		return false
	}
}

func hasRuneInSet(set string) rule {
	return func(s string) bool {
		return strings.ContainsAny(s, set)
	}
}

func hasNoRune(forbidden rune) rule {
	return func(s string) bool {
		return !strings.ContainsRune(s, forbidden)
	}
}

func isNotInDenylist(denylist []string) rule {
	denied := map[string]struct{}{}
	for _, entry := range denylist {
		denied[entry] = struct{}{}
	}
	return func(s string) bool {
		_, ok := denied[strings.ToLower(s)]
		return !ok
	}
}
