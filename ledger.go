package payments

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
	"slices"
)

// Business-rule rejections returned by Apply. A rejected transaction has no
// effect on any account; callers classify rejections with errors.Is.
var (
	// ErrAccountLocked rejects any transaction addressed to a frozen account.
	ErrAccountLocked = errors.New("account is locked")
	// ErrNonPositiveAmount rejects deposits and withdrawals of zero or less.
	ErrNonPositiveAmount = errors.New("amount must be positive")
	// ErrInsufficientFunds rejects withdrawals exceeding the available balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrUnknownTransaction rejects disputes referencing an unrecorded deposit.
	ErrUnknownTransaction = errors.New("unknown transaction")
	// ErrClientMismatch rejects disputes naming a deposit of another client.
	ErrClientMismatch = errors.New("transaction belongs to another client")
	// ErrAlreadyDisputed rejects disputing a deposit that left the NotDisputed status.
	ErrAlreadyDisputed = errors.New("transaction already disputed")
	// ErrNotDisputed rejects resolving or charging back a deposit not under dispute.
	ErrNotDisputed = errors.New("transaction is not under dispute")
)

// Ledger owns the account state of a single processing run.
//
// A Ledger is single-threaded by design: transactions arrive in a meaningful
// order and each one observes the effects of all previous ones.
type Ledger struct {
	accounts map[ClientID]*Account
	history  *History
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		accounts: make(map[ClientID]*Account),
		history:  NewHistory(),
	}
}

// account returns the state for the client, creating an empty unlocked
// account on first reference. Accounts exist from the first transaction that
// names them, even if that transaction is rejected.
func (l *Ledger) account(client ClientID) *Account {
	a, ok := l.accounts[client]
	if !ok {
		a = &Account{Client: client}
		l.accounts[client] = a
	}
	return a
}

// Apply applies a single transaction to the ledger. A non-nil error means
// the transaction was rejected by a business rule and had no effect; the
// error wraps one of the Err sentinels of this package.
//
// Transactions are atomic: every precondition is checked before the first
// balance changes.
func (l *Ledger) Apply(tx Transaction) error {
	account := l.account(tx.Client())

	var err error
	if account.Locked {
		// A frozen account accepts nothing, not even settling a dispute
		// opened before the freeze.
		err = ErrAccountLocked
	} else {
		switch v := tx.(type) {
		case Deposit:
			err = l.deposit(account, v)
		case Withdrawal:
			err = l.withdraw(account, v)
		case Dispute:
			err = l.dispute(account, v)
		case Resolve:
			err = l.resolve(account, v)
		case Chargeback:
			err = l.chargeback(account, v)
		default:
			err = fmt.Errorf("unsupported transaction type: %T", tx)
		}
	}
	if err != nil {
		return fmt.Errorf("%s tx %d for client %d: %w", tx.What(), tx.Tx(), tx.Client(), err)
	}
	return nil
}

// deposit credits the amount and records the deposit for later disputes.
func (l *Ledger) deposit(account *Account, tx Deposit) error {
	if !tx.Amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	if err := l.history.Record(tx.Tx(), tx.Client(), tx.Amount); err != nil {
		return err
	}
	account.Available = account.Available.Add(tx.Amount)
	account.Total = account.Total.Add(tx.Amount)
	return nil
}

// withdraw debits the amount if the available balance covers it.
func (l *Ledger) withdraw(account *Account, tx Withdrawal) error {
	if !tx.Amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	if account.Available.LessThan(tx.Amount) {
		return ErrInsufficientFunds
	}
	account.Available = account.Available.Sub(tx.Amount)
	account.Total = account.Total.Sub(tx.Amount)
	return nil
}

// dispute moves the referenced deposit's amount from available to held.
// The available balance may go negative when the funds were already spent;
// the eventual chargeback then leaves the account in debt, which is the
// honest outcome.
func (l *Ledger) dispute(account *Account, tx Dispute) error {
	entry, ok := l.history.Lookup(tx.Tx())
	if !ok {
		return ErrUnknownTransaction
	}
	if entry.Client != tx.Client() {
		return ErrClientMismatch
	}
	if entry.Status != NotDisputed {
		return ErrAlreadyDisputed
	}
	account.Available = account.Available.Sub(entry.Amount)
	account.Held = account.Held.Add(entry.Amount)
	l.history.Mark(tx.Tx(), UnderDispute)
	return nil
}

// resolve releases the held funds of a disputed deposit back to available.
func (l *Ledger) resolve(account *Account, tx Resolve) error {
	entry, ok := l.history.Lookup(tx.Tx())
	if !ok {
		return ErrUnknownTransaction
	}
	if entry.Client != tx.Client() {
		return ErrClientMismatch
	}
	if entry.Status != UnderDispute {
		return ErrNotDisputed
	}
	account.Held = account.Held.Sub(entry.Amount)
	account.Available = account.Available.Add(entry.Amount)
	l.history.Mark(tx.Tx(), DisputeResolved)
	return nil
}

// chargeback takes the held funds out of the account and freezes it.
func (l *Ledger) chargeback(account *Account, tx Chargeback) error {
	entry, ok := l.history.Lookup(tx.Tx())
	if !ok {
		return ErrUnknownTransaction
	}
	if entry.Client != tx.Client() {
		return ErrClientMismatch
	}
	if entry.Status != UnderDispute {
		return ErrNotDisputed
	}
	account.Held = account.Held.Sub(entry.Amount)
	account.Total = account.Total.Sub(entry.Amount)
	account.Locked = true
	l.history.Mark(tx.Tx(), ChargedBack)
	return nil
}

// Process consumes the transaction sequence in order. A sequence error is
// fatal and returned as is: the input cannot be trusted past that point.
// Business-rule rejections are logged and skipped.
func (l *Ledger) Process(txs iter.Seq2[Transaction, error]) error {
	for tx, err := range txs {
		if err != nil {
			return err
		}
		if err := l.Apply(tx); err != nil {
			log.Printf("skip %v", err)
		}
	}
	return nil
}

// Account returns a snapshot of the client's account state.
func (l *Ledger) Account(client ClientID) (Account, bool) {
	a, ok := l.accounts[client]
	if !ok {
		return Account{}, false
	}
	return *a, true
}

// Accounts iterates over snapshots of every account in ascending client
// order. Snapshots are copies; mutating one does not touch the ledger.
func (l *Ledger) Accounts() iter.Seq[Account] {
	return func(yield func(Account) bool) {
		clients := slices.Collect(maps.Keys(l.accounts))
		slices.Sort(clients)
		for _, client := range clients {
			if !yield(*l.accounts[client]) {
				return
			}
		}
	}
}

// Size returns the number of accounts the ledger has seen.
func (l *Ledger) Size() int { return len(l.accounts) }
