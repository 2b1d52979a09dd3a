// Package rewrite implements literal text substitution rules over an
// in-memory buffer. Rules are exact-substring, not patterns: the input
// is never parsed, and every byte outside a match is preserved as is.
package rewrite

import (
	"fmt"
	"strings"

	"github.com/mhs-embed/srcpatch/debug"
)

// Rule replaces occurrences of Find with Replace. Count limits how many
// occurrences are replaced; zero means all. When, if non-empty, is a
// boolean expression gating the rule (see when.go).
type Rule struct {
	Find    string `yaml:"find"`
	Replace string `yaml:"replace"`
	Count   int    `yaml:"count,omitempty"`
	When    string `yaml:"when,omitempty"`
}

func (r *Rule) Validate() error {
	if r.Find == "" {
		return fmt.Errorf("rule has empty find")
	}
	if r.Count < 0 {
		return fmt.Errorf("rule %q: negative count %d", r.Find, r.Count)
	}
	if r.When != "" {
		if _, err := compileWhen(r.When); err != nil {
			return fmt.Errorf("rule %q: %w", r.Find, err)
		}
	}
	return nil
}

// Apply returns content with the rule applied and the number of
// occurrences replaced. Content without a match is returned unchanged
// with a zero count; absence of the target is not an error.
func (r *Rule) Apply(content string) (string, int, error) {
	if r.When != "" {
		ok, err := evalWhen(r.When, content)
		if err != nil {
			return "", 0, fmt.Errorf("rule %q: %w", r.Find, err)
		}
		if !ok {
			if debug.Rules() {
				debug.Logf("rule %q: when guard false, skipped\n", r.Find)
			}
			return content, 0, nil
		}
	}
	n := strings.Count(content, r.Find)
	if n == 0 {
		if debug.Rules() {
			debug.Logf("rule %q: no occurrences\n", r.Find)
		}
		return content, 0, nil
	}
	count := r.Count
	if count == 0 || count > n {
		count = n
	}
	res := strings.Replace(content, r.Find, r.Replace, count)
	if debug.Rules() {
		debug.Logf("rule %q: replaced %d of %d occurrences\n", r.Find, count, n)
	}
	return res, count, nil
}

// Rules applies in order, each rule seeing the previous rule's output.
type Rules []*Rule

func (rs Rules) Validate() error {
	for i, r := range rs {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("rule %d: %w", i, err)
		}
	}
	return nil
}

func (rs Rules) Apply(content string) (string, int, error) {
	total := 0
	for _, r := range rs {
		res, n, err := r.Apply(content)
		if err != nil {
			return "", total, err
		}
		content = res
		total += n
	}
	return content, total, nil
}
