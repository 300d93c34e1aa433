package codec

import (
	"encoding/csv"
	"fmt"
	"io"
	"iter"
	"strconv"

	"github.com/grachmannico95/ledger-engine/internal/ledger"
)

var accountHeader = []string{"client", "available", "held", "total", "locked"}

// WriteAccounts writes one CSV row per account, in the order rows yields them.
func WriteAccounts(w io.Writer, rows iter.Seq[ledger.AccountData]) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(accountHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	record := make([]string, len(accountHeader))
	for row := range rows {
		record[0] = row.Client.String()
		record[1] = row.Available.String()
		record[2] = row.Held.String()
		record[3] = row.Total.String()
		record[4] = strconv.FormatBool(row.Locked)

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write client %s: %w", row.Client, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
