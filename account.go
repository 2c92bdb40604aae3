package payments

// Account is the state of one client account.
//
// Total always equals Available plus Held. Available and Total can go
// negative: disputing a deposit whose funds were already withdrawn holds
// more than the account has, and a chargeback then takes the held funds out
// for good. The snapshot reports such accounts as they are.
type Account struct {
	Client    ClientID
	Available Amount // Available is the balance usable for withdrawals.
	Held      Amount // Held is the balance frozen by open disputes.
	Total     Amount // Total is Available plus Held, maintained on every change.
	Locked    bool   // Locked is set by a chargeback and never cleared.
}
