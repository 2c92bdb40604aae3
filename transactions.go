package payments

import "fmt"

// ClientID identifies a client account. Identifiers are assigned upstream
// and fit in 16 bits.
type ClientID uint16

// TxID identifies a deposit or withdrawal. Identifiers are assigned
// upstream, fit in 32 bits, and are globally unique across clients.
type TxID uint32

// Kind is a typed string for identifying transaction kinds.
type Kind string

// Transaction kinds as they appear in the input log.
const (
	KindDeposit    Kind = "deposit"
	KindWithdrawal Kind = "withdrawal"
	KindDispute    Kind = "dispute"
	KindResolve    Kind = "resolve"
	KindChargeback Kind = "chargeback"
)

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindDeposit, KindWithdrawal, KindDispute, KindResolve, KindChargeback:
		return k, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Transaction defines the common interface for all records of the input log.
// The set of implementations is closed: Deposit, Withdrawal, Dispute,
// Resolve and Chargeback. The ledger type-switches over all five and treats
// any other implementation as an error.
type Transaction interface {
	What() Kind       // What returns the kind of the transaction (e.g. "deposit").
	Client() ClientID // Client returns the account the transaction applies to.
	Tx() TxID         // Tx returns the transaction id the record carries.
	Equal(Transaction) bool
}

// baseTx carries the fields shared by every transaction record.
type baseTx struct {
	command Kind
	client  ClientID
	id      TxID
}

// What returns the kind of the transaction.
func (t baseTx) What() Kind { return t.command }

// Client returns the client account the transaction applies to.
func (t baseTx) Client() ClientID { return t.client }

// Tx returns the transaction id. For deposits and withdrawals it names the
// record itself; for disputes, resolves and chargebacks it references the
// deposit under dispute.
func (t baseTx) Tx() TxID { return t.id }

// Deposit credits an amount to a client account.
type Deposit struct {
	baseTx
	Amount Amount // Amount is the value credited, must be positive.
}

// NewDeposit creates a new Deposit transaction.
func NewDeposit(client ClientID, id TxID, amount Amount) Deposit {
	return Deposit{baseTx: baseTx{command: KindDeposit, client: client, id: id}, Amount: amount}
}

func (t Deposit) Equal(other Transaction) bool {
	o, ok := other.(Deposit)
	return ok && t.baseTx == o.baseTx && t.Amount.Equal(o.Amount)
}

func (t Deposit) String() string {
	return fmt.Sprintf("deposit %s to client %d (tx %d)", t.Amount, t.client, t.id)
}

// Withdrawal debits an amount from a client account.
type Withdrawal struct {
	baseTx
	Amount Amount // Amount is the value debited, must be positive.
}

// NewWithdrawal creates a new Withdrawal transaction.
func NewWithdrawal(client ClientID, id TxID, amount Amount) Withdrawal {
	return Withdrawal{baseTx: baseTx{command: KindWithdrawal, client: client, id: id}, Amount: amount}
}

func (t Withdrawal) Equal(other Transaction) bool {
	o, ok := other.(Withdrawal)
	return ok && t.baseTx == o.baseTx && t.Amount.Equal(o.Amount)
}

func (t Withdrawal) String() string {
	return fmt.Sprintf("withdrawal %s from client %d (tx %d)", t.Amount, t.client, t.id)
}

// Dispute contests an earlier deposit. It carries no amount of its own: the
// disputed funds are the recorded amount of the referenced deposit.
type Dispute struct {
	baseTx
}

// NewDispute creates a new Dispute referencing the deposit id.
func NewDispute(client ClientID, id TxID) Dispute {
	return Dispute{baseTx: baseTx{command: KindDispute, client: client, id: id}}
}

func (t Dispute) Equal(other Transaction) bool {
	o, ok := other.(Dispute)
	return ok && t.baseTx == o.baseTx
}

func (t Dispute) String() string {
	return fmt.Sprintf("dispute of tx %d by client %d", t.id, t.client)
}

// Resolve settles a dispute in the client's favor, releasing the held funds.
type Resolve struct {
	baseTx
}

// NewResolve creates a new Resolve referencing the disputed deposit id.
func NewResolve(client ClientID, id TxID) Resolve {
	return Resolve{baseTx: baseTx{command: KindResolve, client: client, id: id}}
}

func (t Resolve) Equal(other Transaction) bool {
	o, ok := other.(Resolve)
	return ok && t.baseTx == o.baseTx
}

func (t Resolve) String() string {
	return fmt.Sprintf("resolve of tx %d by client %d", t.id, t.client)
}

// Chargeback settles a dispute against the client: the held funds leave the
// account and the account is frozen.
type Chargeback struct {
	baseTx
}

// NewChargeback creates a new Chargeback referencing the disputed deposit id.
func NewChargeback(client ClientID, id TxID) Chargeback {
	return Chargeback{baseTx: baseTx{command: KindChargeback, client: client, id: id}}
}

func (t Chargeback) Equal(other Transaction) bool {
	o, ok := other.(Chargeback)
	return ok && t.baseTx == o.baseTx
}

func (t Chargeback) String() string {
	return fmt.Sprintf("chargeback of tx %d by client %d", t.id, t.client)
}
