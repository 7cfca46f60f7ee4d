package belt

import (
	"fmt"

	"github.com/kfutrack/kfu/internal/models"
)

// UnlockFunc is notified once per newly unlocked rank, in unlock order.
// Delivery is synchronous and fire-and-forget.
type UnlockFunc func(rank Rank)

// Engine advances the persisted belt state along the ladder. It holds no
// global state: the ledger and the current state are injected.
type Engine struct {
	ledger    *Ledger
	observers []UnlockFunc
}

// NewEngine creates a progression engine over a validated ledger.
func NewEngine(ledger *Ledger) *Engine {
	return &Engine{ledger: ledger}
}

// Ledger exposes the underlying rank sequence.
func (e *Engine) Ledger() *Ledger {
	return e.ledger
}

// Subscribe registers an unlock observer. Observers fire in registration
// order during Advance.
func (e *Engine) Subscribe(fn UnlockFunc) {
	e.observers = append(e.observers, fn)
}

// Advance repeatedly promotes the state to the next rank while that rank's
// requirements pass against the snapshot, so a large imported history can
// cascade through several ranks in one call. Running it again with the same
// snapshot is a no-op. Returns the ranks unlocked by this call.
func (e *Engine) Advance(state *models.BeltState, snap Snapshot) ([]Rank, error) {
	idx := e.ledger.IndexOf(state.CurrentBelt)
	if idx < 0 {
		return nil, fmt.Errorf("unknown current belt %q", state.CurrentBelt)
	}

	unlocked := state.UnlockedList()
	var newly []Rank

	for idx+1 < len(e.ledger.Ranks) {
		next := e.ledger.Ranks[idx+1]
		if !next.Satisfied(snap) {
			break
		}

		idx++
		unlocked = append(unlocked, next.Name)
		state.CurrentBelt = next.Name
		newly = append(newly, next)
	}

	if len(newly) > 0 {
		state.SetUnlockedList(unlocked)
		for _, rank := range newly {
			for _, fn := range e.observers {
				fn(rank)
			}
		}
	}

	return newly, nil
}

// CheckState verifies the prefix invariant: the unlocked set must be exactly
// the ladder prefix up to and including the current belt.
func (e *Engine) CheckState(state *models.BeltState) error {
	idx := e.ledger.IndexOf(state.CurrentBelt)
	if idx < 0 {
		return fmt.Errorf("unknown current belt %q", state.CurrentBelt)
	}

	unlocked := state.UnlockedList()
	if len(unlocked) != idx+1 {
		return fmt.Errorf("unlocked set has %d ranks, expected %d", len(unlocked), idx+1)
	}
	for i, name := range unlocked {
		if e.ledger.Ranks[i].Name != name {
			return fmt.Errorf("unlocked rank %q at position %d, expected %q",
				name, i, e.ledger.Ranks[i].Name)
		}
	}

	return nil
}
