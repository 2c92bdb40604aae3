package payments

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strconv"
	"strings"
)

// Columns of the transaction log. The type, client and tx columns are
// mandatory; amount is optional because only deposits and withdrawals
// carry one.
const (
	colType   = "type"
	colClient = "client"
	colTx     = "tx"
	colAmount = "amount"
)

// DecodeTransactions lazily decodes a CSV transaction log into the sequence
// of transactions it contains, in file order.
//
// The first row must be a header naming at least the type, client and tx
// columns; column order is free, unknown columns are ignored, and rows may
// leave the amount cell out entirely. All cells are trimmed of surrounding
// whitespace.
//
// The sequence ends at the first malformed record, yielding a nil
// transaction and the error. There is no recovery: a log that cannot be
// parsed cannot be processed.
func DecodeTransactions(r io.Reader) iter.Seq2[Transaction, error] {
	return func(yield func(Transaction, error) bool) {
		cr := csv.NewReader(r)
		cr.FieldsPerRecord = -1
		cr.TrimLeadingSpace = true
		cr.ReuseRecord = true

		header, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			yield(nil, fmt.Errorf("reading header: %w", err))
			return
		}
		columns := make(map[string]int, len(header))
		for i, name := range header {
			columns[strings.TrimSpace(name)] = i
		}
		for _, name := range []string{colType, colClient, colTx} {
			if _, ok := columns[name]; !ok {
				yield(nil, fmt.Errorf("input header is missing the %q column", name))
				return
			}
		}

		for {
			record, err := cr.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			tx, err := decodeRecord(columns, record)
			if err != nil {
				line, _ := cr.FieldPos(0)
				yield(nil, fmt.Errorf("line %d: %w", line, err))
				return
			}
			if !yield(tx, nil) {
				return
			}
		}
	}
}

// ReadTransactionsFile opens a transaction log file and returns the lazy
// sequence of its transactions along with a close function to call once the
// sequence is consumed.
func ReadTransactionsFile(path string) (iter.Seq2[Transaction, error], func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening transaction log: %w", err)
	}
	return DecodeTransactions(f), f.Close, nil
}

// decodeRecord builds one transaction from a raw CSV record.
func decodeRecord(columns map[string]int, record []string) (Transaction, error) {
	field := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	kind, err := ParseKind(field(colType))
	if err != nil {
		return nil, err
	}
	client, err := strconv.ParseUint(field(colClient), 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid client id %q: %w", field(colClient), err)
	}
	id, err := strconv.ParseUint(field(colTx), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction id %q: %w", field(colTx), err)
	}

	// An absent amount decodes to zero. Disputes, resolves and chargebacks
	// ignore the value either way: they settle on the amount recorded for
	// the referenced deposit.
	var amount Amount
	if s := field(colAmount); s != "" {
		amount, err = ParseAmount(s)
		if err != nil {
			return nil, err
		}
	}

	switch kind {
	case KindDeposit:
		return NewDeposit(ClientID(client), TxID(id), amount), nil
	case KindWithdrawal:
		return NewWithdrawal(ClientID(client), TxID(id), amount), nil
	case KindDispute:
		return NewDispute(ClientID(client), TxID(id)), nil
	case KindResolve:
		return NewResolve(ClientID(client), TxID(id)), nil
	case KindChargeback:
		return NewChargeback(ClientID(client), TxID(id)), nil
	default:
		return nil, fmt.Errorf("unknown transaction type: %q", kind)
	}
}
