package payments

import (
	"encoding/csv"
	"io"
	"iter"
	"strconv"
)

// snapshotHeader is the column layout of the account snapshot.
var snapshotHeader = []string{"client", "available", "held", "total", "locked"}

// EncodeAccounts writes the account snapshot as CSV: one row per account in
// the order the sequence yields them, amounts with exactly four fractional
// digits. Call it only once the whole transaction log is consumed; until
// then any account can still change.
func EncodeAccounts(w io.Writer, accounts iter.Seq[Account]) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(snapshotHeader); err != nil {
		return err
	}
	for account := range accounts {
		record := []string{
			strconv.FormatUint(uint64(account.Client), 10),
			account.Available.Fixed(),
			account.Held.Fixed(),
			account.Total.Fixed(),
			strconv.FormatBool(account.Locked),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
