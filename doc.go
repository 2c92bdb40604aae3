// Package payments implements a small transaction processing engine for
// client accounts. It consumes an ordered log of transactions (deposits,
// withdrawals, disputes, resolves and chargebacks), applies each one to the
// per-client account state, and reports the final balances.
//
// The core functionalities include:
//   - Account Ledger: applying transactions one at a time, in input order,
//     to the available and held balances of each client account.
//   - Dispute Lifecycle: a deposit can be disputed once, and a disputed
//     deposit is either resolved (funds released) or charged back (funds
//     removed and the account frozen).
//   - Exact Arithmetic: all monetary values are exact decimals with four
//     fractional digits; no floating point is involved at any step.
//   - Data Interchange: decoding transaction logs from CSV streams and
//     encoding the final account snapshot back to CSV.
//
// This package serves as the foundational logic for the `pdh` command-line
// tool. Malformed input is a fatal error, while transactions that violate a
// business rule (overdrawing, disputing an unknown deposit, operating on a
// frozen account) are skipped without effect.
package payments
