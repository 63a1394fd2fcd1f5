package opt

import (
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// DefaultMaxPasses bounds the fixed-point loop when the session does not
// say otherwise. A well-behaved rule set converges in a handful of passes;
// the cap exists to turn rule bugs into NonConvergence errors instead of
// infinite loops.
const DefaultMaxPasses = 10

// Session carries the per-query optimizer settings: the iteration cap and
// the set of rules disabled by feature flags. Disabling a rule is the
// operational mitigation for a rule bug; the engine itself never skips a
// failing rule on its own.
type Session struct {
	MaxPasses int
	disabled  map[string]bool
}

func NewSession() *Session {
	return &Session{MaxPasses: DefaultMaxPasses}
}

// DisableRule turns the named rule off for this session.
func (s *Session) DisableRule(name string) *Session {
	if s.disabled == nil {
		s.disabled = make(map[string]bool)
	}
	s.disabled[name] = true
	return s
}

// RuleEnabled reports whether the named rule should run.
func (s *Session) RuleEnabled(name string) bool {
	return !s.disabled[name]
}

func (s *Session) maxPasses() int {
	if s.MaxPasses <= 0 {
		return DefaultMaxPasses
	}
	return s.MaxPasses
}

type sessionConfig struct {
	MaxPasses     int      `yaml:"max_passes"`
	DisabledRules []string `yaml:"disabled_rules"`
}

// LoadSession parses session settings from YAML:
//
//	max_passes: 16
//	disabled_rules:
//	  - MergeWindows
//
// Absent fields keep their defaults.
func LoadSession(data []byte) (*Session, error) {
	var cfg sessionConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "parsing session config")
	}
	s := NewSession()
	if cfg.MaxPasses > 0 {
		s.MaxPasses = cfg.MaxPasses
	}
	for _, name := range cfg.DisabledRules {
		s.DisableRule(name)
	}
	return s, nil
}
