package renderer

import (
	"iter"

	payments "github.com/Janislav/project-diamond-hands"
)

// Statement is the renderable view of a final account snapshot. Every
// monetary value is preformatted: the templates only lay strings out.
type Statement struct {
	Currency     string `json:"currency,omitempty"`
	AccountCount int    `json:"accountCount"`
	LockedCount  int    `json:"lockedCount"`
	Available    string `json:"available"`
	Held         string `json:"held"`
	Total        string `json:"total"`

	Accounts []AccountRow `json:"accounts"`
}

// AccountRow holds the data for a single account line in a statement.
type AccountRow struct {
	Client    payments.ClientID `json:"client"`
	Available string            `json:"available"`
	Held      string            `json:"held"`
	Total     string            `json:"total"`
	Locked    bool              `json:"locked"`
}

// NewStatement builds a Statement from the accounts a ledger yields.
// With an empty currency amounts render as plain four-digit decimals;
// otherwise they are formatted in that ISO 4217 currency, for display only.
func NewStatement(accounts iter.Seq[payments.Account], currency string) *Statement {
	format := payments.Amount.Fixed
	if currency != "" {
		format = func(a payments.Amount) string { return a.Display(currency) }
	}

	s := &Statement{Currency: currency}
	var available, held, total payments.Amount
	for account := range accounts {
		s.AccountCount++
		if account.Locked {
			s.LockedCount++
		}
		available = available.Add(account.Available)
		held = held.Add(account.Held)
		total = total.Add(account.Total)
		s.Accounts = append(s.Accounts, AccountRow{
			Client:    account.Client,
			Available: format(account.Available),
			Held:      format(account.Held),
			Total:     format(account.Total),
			Locked:    account.Locked,
		})
	}
	s.Available = format(available)
	s.Held = format(held)
	s.Total = format(total)
	return s
}
