package services

import (
	"fmt"
	"regexp"
)

// Rule binds one classification label to its match patterns. A rule matches
// when any of its patterns matches the normalized name.
type Rule struct {
	Label    string
	Patterns []*regexp.Regexp
}

// RuleSet holds the ordered pattern tables for the four classification
// dimensions. Order is load-bearing: classifiers return the FIRST matching
// label, so earlier rules take priority on ambiguous names. A RuleSet is
// treated as immutable once handed to a ClassifyService.
type RuleSet struct {
	Device []Rule
	Module []Rule
	Page   []Rule
	State  []Rule
}

// compile builds a case-insensitive rule from pattern sources.
// Invalid patterns are a programmer error in the default tables.
func compile(label string, patterns ...string) Rule {
	rule := Rule{Label: label}
	for _, p := range patterns {
		rule.Patterns = append(rule.Patterns, regexp.MustCompile("(?i)"+p))
	}
	return rule
}

// DefaultRuleSet returns the built-in pattern tables. Callers may extend the
// module table (the only dimension with an open label set) before
// constructing a classifier.
func DefaultRuleSet() *RuleSet {
	return &RuleSet{
		Device: []Rule{
			compile("desktop", `desktop`, `web`, `\bpc\b`),
			compile("tablet", `tablet`, `ipad`, `\bpad\b`),
			compile("mobile", `mobile`, `phone`, `iphone`, `android`, `\bapp\b`),
		},
		Module: []Rule{
			compile("user-management", `usermgmt`, `user`, `member`, `account`),
			compile("order-management", `order`, `cart`, `checkout`, `payment`),
			compile("product", `product`, `goods`, `\bitem\b`, `\bsku\b`, `catalog`),
			compile("dashboard", `dashboard`, `analytics`, `report`, `chart`),
			compile("auth", `login`, `register`, `signin`, `signup`, `auth`, `password`),
			compile("settings", `setting`, `config`, `preference`),
			compile("content", `\bcms\b`, `content`, `article`, `banner`),
		},
		Page: []Rule{
			compile("list", `list`, `table`, `\bindex\b`, `overview`),
			compile("detail", `detail`, `\bview\b`, `\binfo\b`, `profile`),
			compile("form", `form`, `edit`, `create`, `\bnew\b`, `\badd\b`, `input`),
			compile("landing", `landing`, `\bhome\b`, `welcome`, `hero`),
		},
		State: []Rule{
			compile("default", `default`, `normal`),
			compile("hover", `hover`),
			compile("active", `active`, `pressed`, `selected`),
			compile("loading", `loading`, `skeleton`, `spinner`),
			compile("error", `error`, `\bfail\b`, `failed`, `invalid`),
			compile("success", `success`, `\bdone\b`, `complete`),
		},
	}
}

// AppendModuleRule adds a user-defined module rule after the built-in ones,
// so built-in priorities stay intact. Used for config-supplied vocabularies.
func (rs *RuleSet) AppendModuleRule(label string, patterns []string) error {
	if label == "" || len(patterns) == 0 {
		return fmt.Errorf("module rule needs a label and at least one pattern")
	}
	rule := Rule{Label: label}
	for _, p := range patterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return fmt.Errorf("invalid pattern %q for module rule %q: %w", p, label, err)
		}
		rule.Patterns = append(rule.Patterns, re)
	}
	rs.Module = append(rs.Module, rule)
	return nil
}

// matchFirst returns the first rule label whose pattern set matches name.
// Declaration order is the tie-break between rules.
func matchFirst(rules []Rule, name string) (string, bool) {
	for _, rule := range rules {
		for _, pattern := range rule.Patterns {
			if pattern.MatchString(name) {
				return rule.Label, true
			}
		}
	}
	return "", false
}
