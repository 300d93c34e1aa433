// Package ledger holds the account/transaction state machine that replays
// deposits, withdrawals and disputes into per-client balances.
package ledger

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Amount is the fixed-precision money type used throughout the ledger.
type Amount = decimal.Decimal

// ClientID identifies the owner of an account.
type ClientID uint16

func (c ClientID) String() string {
	return strconv.FormatUint(uint64(c), 10)
}

// TransactionID identifies a deposit or withdrawal. It is never reused.
type TransactionID uint32

func (t TransactionID) String() string {
	return strconv.FormatUint(uint64(t), 10)
}
