package payments

import (
	"reflect"
	"strings"
	"testing"
)

// collect drains a transaction sequence, failing the test on any error.
func collect(t *testing.T, input string) []Transaction {
	t.Helper()
	var txs []Transaction
	for tx, err := range DecodeTransactions(strings.NewReader(input)) {
		if err != nil {
			t.Fatalf("DecodeTransactions() returned an unexpected error: %v", err)
		}
		txs = append(txs, tx)
	}
	return txs
}

func TestDecodeTransactions(t *testing.T) {
	// A stream with every kind, uneven spacing, a short dispute row and an
	// amount left empty.
	input := strings.Join([]string{
		"type, client, tx, amount",
		"deposit,      1,  1,  100.0",
		"deposit,2,2,55.5",
		" withdrawal , 1 , 3 , 40.25 ",
		"dispute,2,2,",
		"resolve,2,2",
		"chargeback, 2, 2",
	}, "\n")

	got := collect(t, input)

	want := []Transaction{
		NewDeposit(1, 1, amt("100")),
		NewDeposit(2, 2, amt("55.5")),
		NewWithdrawal(1, 3, amt("40.25")),
		NewDispute(2, 2),
		NewResolve(2, 2),
		NewChargeback(2, 2),
	}
	if len(got) != len(want) {
		t.Fatalf("DecodeTransactions() yielded %d transactions, want %d", len(got), len(want))
	}
	for i := range want {
		if reflect.TypeOf(got[i]) != reflect.TypeOf(want[i]) {
			t.Errorf("transaction %d has wrong type. Got: %T, want: %T", i+1, got[i], want[i])
		}
		if !got[i].Equal(want[i]) {
			t.Errorf("transaction %d = %v, want %v", i+1, got[i], want[i])
		}
	}
}

func TestDecodeTransactions_ColumnOrder(t *testing.T) {
	// Columns may come in any order, and unknown columns are ignored.
	input := strings.Join([]string{
		"amount,tx,client,type,comment",
		"12.5,7,3,deposit,first deposit of the day",
	}, "\n")

	got := collect(t, input)
	if len(got) != 1 {
		t.Fatalf("DecodeTransactions() yielded %d transactions, want 1", len(got))
	}
	if want := NewDeposit(3, 7, amt("12.5")); !got[0].Equal(want) {
		t.Errorf("transaction = %v, want %v", got[0], want)
	}
}

func TestDecodeTransactions_EmptyAmount(t *testing.T) {
	// An absent amount decodes to zero; rejecting a zero deposit is the
	// ledger's call, not the decoder's.
	input := "type,client,tx,amount\ndeposit,1,1,\n"

	got := collect(t, input)
	if len(got) != 1 {
		t.Fatalf("DecodeTransactions() yielded %d transactions, want 1", len(got))
	}
	deposit, ok := got[0].(Deposit)
	if !ok {
		t.Fatalf("transaction is %T, want Deposit", got[0])
	}
	if !deposit.Amount.IsZero() {
		t.Errorf("Amount = %s, want zero", deposit.Amount)
	}
}

func TestDecodeTransactions_EmptyInput(t *testing.T) {
	if got := collect(t, ""); len(got) != 0 {
		t.Errorf("DecodeTransactions() on empty input yielded %d transactions, want 0", len(got))
	}
}

func TestDecodeTransactions_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "unknown type",
			input:   "type,client,tx,amount\nteleport,1,1,10\n",
			wantErr: "unknown transaction type",
		},
		{
			name:    "client id overflow",
			input:   "type,client,tx,amount\ndeposit,70000,1,10\n",
			wantErr: "invalid client id",
		},
		{
			name:    "transaction id overflow",
			input:   "type,client,tx,amount\ndeposit,1,5000000000,10\n",
			wantErr: "invalid transaction id",
		},
		{
			name:    "client id not a number",
			input:   "type,client,tx,amount\ndeposit,alice,1,10\n",
			wantErr: "invalid client id",
		},
		{
			name:    "unparseable amount",
			input:   "type,client,tx,amount\ndeposit,1,1,ten\n",
			wantErr: "invalid amount",
		},
		{
			name:    "unparseable amount on a dispute row",
			input:   "type,client,tx,amount\ndeposit,1,1,10\ndispute,1,1,garbage\n",
			wantErr: "invalid amount",
		},
		{
			name:    "missing tx column",
			input:   "type,client,amount\ndeposit,1,10\n",
			wantErr: "missing the \"tx\" column",
		},
		{
			name:    "missing type column",
			input:   "kind,client,tx,amount\ndeposit,1,1,10\n",
			wantErr: "missing the \"type\" column",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var firstErr error
			var decoded int
			for _, err := range DecodeTransactions(strings.NewReader(tc.input)) {
				if err != nil {
					firstErr = err
					break
				}
				decoded++
			}
			if firstErr == nil {
				t.Fatalf("DecodeTransactions() decoded %d transactions without error, want %q", decoded, tc.wantErr)
			}
			if !strings.Contains(firstErr.Error(), tc.wantErr) {
				t.Errorf("error = %v, want it to contain %q", firstErr, tc.wantErr)
			}
		})
	}
}

func TestDecodeTransactions_ErrorNamesLine(t *testing.T) {
	input := "type,client,tx,amount\ndeposit,1,1,10\ndeposit,1,2,bogus\n"

	var gotErr error
	for _, err := range DecodeTransactions(strings.NewReader(input)) {
		if err != nil {
			gotErr = err
			break
		}
	}
	if gotErr == nil {
		t.Fatal("DecodeTransactions() succeeded, want an error")
	}
	if !strings.Contains(gotErr.Error(), "line 3") {
		t.Errorf("error = %v, want it to name line 3", gotErr)
	}
}

func TestDecodeTransactions_StopsEarly(t *testing.T) {
	// The sequence is lazy: stopping after the first transaction must not
	// read or validate the rest of the stream.
	input := "type,client,tx,amount\ndeposit,1,1,10\nnot a valid record at all\n"

	var got []Transaction
	for tx, err := range DecodeTransactions(strings.NewReader(input)) {
		if err != nil {
			t.Fatalf("DecodeTransactions() returned an unexpected error: %v", err)
		}
		got = append(got, tx)
		break
	}
	if len(got) != 1 {
		t.Fatalf("collected %d transactions, want 1", len(got))
	}
}
