package check

import (
	"fmt"
	"regexp"
)

// Filter decides whether an item takes part in the check based on its
// identifying strings. Deny patterns always win over allow patterns; with
// no allow patterns configured every item not denied is admitted.
type Filter struct {
	allow []*regexp.Regexp
	deny  []*regexp.Regexp
}

// NewFilter compiles the allow and deny pattern lists. A pattern that does
// not compile aborts the run: silently matching nothing would turn a typo
// into a filter that hides real problems.
func NewFilter(allow, deny []string) (*Filter, error) {
	f := &Filter{}
	for _, p := range allow {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid allow pattern %q: %w", p, err)
		}
		f.allow = append(f.allow, re)
	}
	for _, p := range deny {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid deny pattern %q: %w", p, err)
		}
		f.deny = append(f.deny, re)
	}
	return f, nil
}

// Allowed reports whether an item identified by the given candidate strings
// passes the filter. Deny and allow checks are evaluated independently per
// candidate: one deny hit on any candidate excludes the item, one allow hit
// on any candidate admits it.
func (f *Filter) Allowed(candidates ...string) bool {
	for _, re := range f.deny {
		for _, c := range candidates {
			if re.MatchString(c) {
				return false
			}
		}
	}
	if len(f.allow) == 0 {
		return true
	}
	for _, re := range f.allow {
		for _, c := range candidates {
			if re.MatchString(c) {
				return true
			}
		}
	}
	return false
}
