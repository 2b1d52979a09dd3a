package rewrite

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Load reads a YAML list of rules, for callers that patch something
// other than the built-in xffi table line.
func Load(path string) (Rules, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read rules %s: %w", path, err)
	}
	var rs Rules
	if err := yaml.Unmarshal(d, &rs); err != nil {
		return nil, fmt.Errorf("unable to parse rules %s: %w", path, err)
	}
	if len(rs) == 0 {
		return nil, fmt.Errorf("rules %s: no rules defined", path)
	}
	if err := rs.Validate(); err != nil {
		return nil, fmt.Errorf("rules %s: %w", path, err)
	}
	return rs, nil
}
