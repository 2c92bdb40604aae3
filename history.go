package payments

import "errors"

// ErrDuplicateTransaction reports a deposit reusing an already recorded
// transaction id.
var ErrDuplicateTransaction = errors.New("duplicate transaction")

// DisputeStatus tracks where a recorded deposit stands in the dispute
// lifecycle.
type DisputeStatus int

const (
	// NotDisputed is the initial status of every recorded deposit.
	NotDisputed DisputeStatus = iota
	// UnderDispute marks a deposit whose funds are currently held.
	UnderDispute
	// DisputeResolved marks a deposit whose dispute was settled in the
	// client's favor. Terminal: the deposit cannot be disputed again.
	DisputeResolved
	// ChargedBack marks a deposit whose dispute was settled against the
	// client. Terminal.
	ChargedBack
)

func (s DisputeStatus) String() string {
	switch s {
	case NotDisputed:
		return "not disputed"
	case UnderDispute:
		return "under dispute"
	case DisputeResolved:
		return "resolved"
	case ChargedBack:
		return "charged back"
	default:
		return "unknown"
	}
}

// HistoryEntry is the recorded view of a past deposit: enough to settle a
// dispute without replaying the log.
type HistoryEntry struct {
	Client ClientID
	Amount Amount
	Status DisputeStatus
}

// History indexes past deposits by transaction id.
//
// Only deposits are recorded: a withdrawal moves funds out of the system and
// has nothing left to hold. Entries are never removed during a run, so a
// charged back deposit stays on record and cannot re-enter a dispute.
type History struct {
	entries map[TxID]HistoryEntry
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{entries: make(map[TxID]HistoryEntry)}
}

// Record registers a deposit under its transaction id with status
// NotDisputed. It returns ErrDuplicateTransaction if the id is already
// taken, leaving the existing entry untouched.
func (h *History) Record(id TxID, client ClientID, amount Amount) error {
	if _, ok := h.entries[id]; ok {
		return ErrDuplicateTransaction
	}
	h.entries[id] = HistoryEntry{Client: client, Amount: amount, Status: NotDisputed}
	return nil
}

// Lookup returns the entry recorded under id, if any.
func (h *History) Lookup(id TxID) (HistoryEntry, bool) {
	entry, ok := h.entries[id]
	return entry, ok
}

// Mark transitions the entry recorded under id to the given status. The
// caller checks the transition is legal; marking an unknown id does nothing.
func (h *History) Mark(id TxID, status DisputeStatus) {
	entry, ok := h.entries[id]
	if !ok {
		return
	}
	entry.Status = status
	h.entries[id] = entry
}

// Len returns the number of recorded deposits.
func (h *History) Len() int { return len(h.entries) }
