// Package codec reads action records from CSV and writes account reports
// back out.
package codec

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/grachmannico95/ledger-engine/internal/ledger"
	"github.com/grachmannico95/ledger-engine/internal/metrics"
	"github.com/grachmannico95/ledger-engine/pkg/logger"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidHeader = errors.New("invalid CSV header")
	ErrInvalidRecord = errors.New("invalid CSV record")
)

// DecodePolicy decides what happens to records that fail to decode.
type DecodePolicy int

const (
	// DecodeIgnore drops bad records silently.
	DecodeIgnore DecodePolicy = iota
	// DecodeLog drops bad records, logs them and keeps them for Rejected.
	DecodeLog
	// DecodeFail stops reading at the first bad record.
	DecodeFail
)

func ParseDecodePolicy(s string) (DecodePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ignore":
		return DecodeIgnore, nil
	case "log":
		return DecodeLog, nil
	case "fail", "crash":
		return DecodeFail, nil
	default:
		return DecodeIgnore, fmt.Errorf("invalid decode policy: %q", s)
	}
}

func (p DecodePolicy) String() string {
	switch p {
	case DecodeLog:
		return "log"
	case DecodeFail:
		return "fail"
	default:
		return "ignore"
	}
}

// RecordError is a record that could not be decoded.
type RecordError struct {
	Line int
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

const (
	columnType   = "type"
	columnClient = "client"
	columnTx     = "tx"
	columnAmount = "amount"
)

type ReaderOption func(*ActionReader)

func WithReaderLogger(log *logger.Logger) ReaderOption {
	return func(r *ActionReader) { r.logger = log }
}

func WithReaderMetrics(m metrics.Recorder) ReaderOption {
	return func(r *ActionReader) { r.metrics = m }
}

// ActionReader lazily decodes actions from a CSV stream with a header row
// naming the type, client, tx and amount columns.
type ActionReader struct {
	csv     *csv.Reader
	policy  DecodePolicy
	logger  *logger.Logger
	metrics metrics.Recorder

	columns  map[string]int
	line     int
	decoded  int
	skipped  int
	err      error
	rejected []*RecordError
}

func NewActionReader(r io.Reader, policy DecodePolicy, opts ...ReaderOption) *ActionReader {
	csvReader := csv.NewReader(r)
	csvReader.ReuseRecord = true
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1

	ar := &ActionReader{
		csv:     csvReader,
		policy:  policy,
		logger:  logger.NewNop(),
		metrics: metrics.NoOpRecorder{},
	}
	for _, opt := range opts {
		opt(ar)
	}
	return ar
}

// Actions yields decoded actions until the input ends or, under DecodeFail,
// the first bad record. Check Err afterwards.
func (r *ActionReader) Actions(ctx context.Context) iter.Seq[ledger.Action] {
	return func(yield func(ledger.Action) bool) {
		if r.columns == nil {
			if err := r.readHeader(); err != nil {
				r.err = err
				return
			}
		}

		for {
			record, err := r.csv.Read()
			if err == io.EOF {
				return
			}

			if err != nil {
				var parseErr *csv.ParseError
				if !errors.As(err, &parseErr) {
					r.err = fmt.Errorf("read CSV: %w", err)
					return
				}
				r.line = parseErr.StartLine
				if !r.reject(ctx, err) {
					return
				}
				continue
			}

			// Quoted fields may span lines, so ask the reader where the record began.
			r.line, _ = r.csv.FieldPos(0)
			action, err := r.decode(record)
			if err != nil {
				if !r.reject(ctx, err) {
					return
				}
				continue
			}

			r.decoded++
			if !yield(action) {
				return
			}
		}
	}
}

// Err returns the error that stopped decoding, if any.
func (r *ActionReader) Err() error {
	return r.err
}

// Rejected returns the records dropped under DecodeLog.
func (r *ActionReader) Rejected() []*RecordError {
	return r.rejected
}

// Decoded is the number of actions yielded so far.
func (r *ActionReader) Decoded() int {
	return r.decoded
}

// Skipped is the number of records that failed to decode, whatever the policy.
func (r *ActionReader) Skipped() int {
	return r.skipped
}

func (r *ActionReader) readHeader() error {
	header, err := r.csv.Read()
	if err == io.EOF {
		return fmt.Errorf("%w: empty input", ErrInvalidHeader)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidHeader, err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{columnType, columnClient, columnTx} {
		if _, ok := columns[required]; !ok {
			return fmt.Errorf("%w: missing column %q", ErrInvalidHeader, required)
		}
	}

	r.columns = columns
	r.line = 1
	return nil
}

// reject applies the decode policy and reports whether reading continues.
func (r *ActionReader) reject(ctx context.Context, err error) bool {
	recErr := &RecordError{Line: r.line, Err: err}
	r.skipped++
	r.metrics.RecordDecodeRejected()

	switch r.policy {
	case DecodeFail:
		r.err = fmt.Errorf("%w: %w", ErrInvalidRecord, recErr)
		return false
	case DecodeLog:
		r.rejected = append(r.rejected, recErr)
		r.logger.Warn(ctx, "Failed to decode action",
			"line", r.line,
			"error", err,
		)
	}
	return true
}

func (r *ActionReader) field(record []string, column string) string {
	i, ok := r.columns[column]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func (r *ActionReader) decode(record []string) (ledger.Action, error) {
	kind, err := ledger.ParseActionKind(r.field(record, columnType))
	if err != nil {
		return ledger.Action{}, err
	}

	client, err := strconv.ParseUint(r.field(record, columnClient), 10, 16)
	if err != nil {
		return ledger.Action{}, fmt.Errorf("invalid client: %w", err)
	}

	tx, err := strconv.ParseUint(r.field(record, columnTx), 10, 32)
	if err != nil {
		return ledger.Action{}, fmt.Errorf("invalid tx: %w", err)
	}

	action := ledger.Action{
		TransactionID: ledger.TransactionID(tx),
		ClientID:      ledger.ClientID(client),
		Kind:          kind,
	}

	if raw := r.field(record, columnAmount); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return ledger.Action{}, fmt.Errorf("invalid amount: %w", err)
		}
		action.Amount = &amount
	}

	return action, nil
}
