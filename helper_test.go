package payments

import "testing"

// amt is a test helper to build an exact amount from its decimal literal.
func amt(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// apply is a test helper to apply transactions that are expected to pass.
func apply(t *testing.T, l *Ledger, txs ...Transaction) {
	t.Helper()
	for _, tx := range txs {
		if err := l.Apply(tx); err != nil {
			t.Fatalf("Apply(%v) returned an unexpected error: %v", tx, err)
		}
	}
}

// checkAccount is a test helper asserting the full state of one account.
// Total is not a parameter: it must always equal available plus held.
func checkAccount(t *testing.T, l *Ledger, client ClientID, available, held string, locked bool) {
	t.Helper()
	account, ok := l.Account(client)
	if !ok {
		t.Fatalf("Account(%d) does not exist", client)
	}
	if want := amt(available); !account.Available.Equal(want) {
		t.Errorf("Account(%d).Available = %s, want %s", client, account.Available, want)
	}
	if want := amt(held); !account.Held.Equal(want) {
		t.Errorf("Account(%d).Held = %s, want %s", client, account.Held, want)
	}
	if want := account.Available.Add(account.Held); !account.Total.Equal(want) {
		t.Errorf("Account(%d).Total = %s, want available+held = %s", client, account.Total, want)
	}
	if account.Locked != locked {
		t.Errorf("Account(%d).Locked = %t, want %t", client, account.Locked, locked)
	}
}
