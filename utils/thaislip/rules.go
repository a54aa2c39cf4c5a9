package thaislip

import "regexp"

// rule pairs a pattern with the check a match has to pass.
type rule[T any] struct {
	pattern *regexp.Regexp
	accept  func(groups []string) (T, bool)
}

// firstAccepted tries rules in order and, within a rule, matches left to
// right. The first accepted match wins; a rule with no accepted match falls
// through to the next one.
func firstAccepted[T any](text string, rules []rule[T]) (T, bool) {
	for _, r := range rules {
		for _, groups := range r.pattern.FindAllStringSubmatch(text, -1) {
			if v, ok := r.accept(groups); ok {
				return v, true
			}
		}
	}
	var zero T
	return zero, false
}

func firstGroup(groups []string) (string, bool) {
	if len(groups) < 2 || groups[1] == "" {
		return "", false
	}
	return groups[1], true
}
