// Package belt implements the rank ladder and the progression engine that
// unlocks ranks as training statistics grow.
package belt

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed ladder.yaml
var ladderYAML []byte

// Requirement is one tagged unlock condition on a rank. Kind selects the
// evaluator; the remaining fields carry that evaluator's parameters.
type Requirement struct {
	Kind  string  `yaml:"kind"`
	Hours float64 `yaml:"hours,omitempty"`
	Weeks int     `yaml:"weeks,omitempty"`
	Types int     `yaml:"types,omitempty"`
}

// Rank is one tier of the belt ladder.
type Rank struct {
	Name         string        `yaml:"name"`
	Title        string        `yaml:"title"`
	Requirements []Requirement `yaml:"requirements,omitempty"`
}

// HoursThreshold returns the rank's cumulative-hours requirement, or 0 if it
// has none (only the starting rank).
func (r Rank) HoursThreshold() float64 {
	for _, req := range r.Requirements {
		if req.Kind == KindHours {
			return req.Hours
		}
	}
	return 0
}

// Ledger is the static ordered rank sequence.
type Ledger struct {
	Ranks []Rank `yaml:"ranks"`
}

// DefaultLedger parses the embedded ladder definition. The embedded file is
// validated at load so a bad edit fails loudly at startup, not mid-advance.
func DefaultLedger() (*Ledger, error) {
	return ParseLedger(ladderYAML)
}

// ParseLedger parses and validates a ladder definition.
func ParseLedger(data []byte) (*Ledger, error) {
	var ledger Ledger
	if err := yaml.Unmarshal(data, &ledger); err != nil {
		return nil, fmt.Errorf("invalid ladder definition: %w", err)
	}
	if err := ledger.validate(); err != nil {
		return nil, err
	}
	return &ledger, nil
}

func (l *Ledger) validate() error {
	if len(l.Ranks) == 0 {
		return fmt.Errorf("ladder has no ranks")
	}
	if len(l.Ranks[0].Requirements) != 0 {
		return fmt.Errorf("starting rank %q must have no requirements", l.Ranks[0].Name)
	}

	seen := map[string]bool{}
	prevHours := 0.0
	for i, rank := range l.Ranks {
		if rank.Name == "" {
			return fmt.Errorf("rank %d has no name", i)
		}
		if seen[rank.Name] {
			return fmt.Errorf("duplicate rank name %q", rank.Name)
		}
		seen[rank.Name] = true

		for _, req := range rank.Requirements {
			if _, ok := evaluators[req.Kind]; !ok {
				return fmt.Errorf("rank %q: unknown requirement kind %q", rank.Name, req.Kind)
			}
		}

		if i == 0 {
			continue
		}
		hours := rank.HoursThreshold()
		if hours <= prevHours {
			return fmt.Errorf("rank %q: hours threshold %.1f must exceed previous rank's %.1f",
				rank.Name, hours, prevHours)
		}
		prevHours = hours
	}

	return nil
}

// IndexOf returns the position of a rank name in the ladder, or -1.
func (l *Ledger) IndexOf(name string) int {
	for i, r := range l.Ranks {
		if r.Name == name {
			return i
		}
	}
	return -1
}

// RankByName looks up a rank definition.
func (l *Ledger) RankByName(name string) (Rank, bool) {
	i := l.IndexOf(name)
	if i < 0 {
		return Rank{}, false
	}
	return l.Ranks[i], true
}

// Terminal reports whether the named rank is the last one in the ladder.
func (l *Ledger) Terminal(name string) bool {
	return l.IndexOf(name) == len(l.Ranks)-1
}

// RanksAfter returns the ranks strictly after the named one, in order.
func (l *Ledger) RanksAfter(name string) []Rank {
	i := l.IndexOf(name)
	if i < 0 {
		return nil
	}
	return l.Ranks[i+1:]
}
