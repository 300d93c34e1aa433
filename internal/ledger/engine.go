package ledger

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
	"sync"

	"github.com/grachmannico95/ledger-engine/internal/metrics"
	"github.com/grachmannico95/ledger-engine/pkg/logger"
)

// ErrorPolicy decides what a driver does with structural errors from Apply.
type ErrorPolicy int

const (
	// PolicySkip drops the offending action and keeps going.
	PolicySkip ErrorPolicy = iota
	// PolicyStrict returns the first structural error to the caller.
	PolicyStrict
)

func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "skip", "ignore":
		return PolicySkip, nil
	case "strict", "fail":
		return PolicyStrict, nil
	default:
		return PolicySkip, fmt.Errorf("invalid error policy: %q", s)
	}
}

func (p ErrorPolicy) String() string {
	if p == PolicyStrict {
		return "strict"
	}
	return "skip"
}

// Processor feeds actions into a ledger and reports on it.
type Processor interface {
	Process(ctx context.Context, action Action) error
	ProcessAll(ctx context.Context, actions iter.Seq[Action]) error
	Accounts() []AccountData
	FailedTransactions() []Transaction
}

type Option func(*options)

type options struct {
	policy  ErrorPolicy
	places  int32
	logger  *logger.Logger
	metrics metrics.Recorder
}

func WithErrorPolicy(p ErrorPolicy) Option {
	return func(o *options) { o.policy = p }
}

// WithRoundPlaces sets the precision of reported figures; negative is raw.
func WithRoundPlaces(places int32) Option {
	return func(o *options) { o.places = places }
}

func WithLogger(log *logger.Logger) Option {
	return func(o *options) { o.logger = log }
}

func WithMetrics(m metrics.Recorder) Option {
	return func(o *options) { o.metrics = m }
}

func newOptions(opts []Option) options {
	o := options{
		policy:  PolicySkip,
		places:  DefaultRoundPlaces,
		logger:  logger.NewNop(),
		metrics: metrics.NoOpRecorder{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logger.NewNop()
	}
	if o.metrics == nil {
		o.metrics = metrics.NoOpRecorder{}
	}
	return o
}

// SequentialEngine applies actions one at a time in the order received. It
// must only be used from a single goroutine.
type SequentialEngine struct {
	state *State
	opts  options
}

func NewSequentialEngine(opts ...Option) *SequentialEngine {
	return &SequentialEngine{
		state: NewState(),
		opts:  newOptions(opts),
	}
}

func (e *SequentialEngine) State() *State {
	return e.state
}

func (e *SequentialEngine) Process(ctx context.Context, action Action) error {
	return apply(ctx, e.state, e.opts, action)
}

func (e *SequentialEngine) ProcessAll(ctx context.Context, actions iter.Seq[Action]) error {
	for action := range actions {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.Process(ctx, action); err != nil {
			return err
		}
	}
	return nil
}

func (e *SequentialEngine) Accounts() []AccountData {
	return slices.Collect(e.state.Accounts(e.opts.places))
}

func (e *SequentialEngine) FailedTransactions() []Transaction {
	return slices.Collect(e.state.FailedTransactions())
}

// SharedEngine lets several producers submit actions concurrently. A single
// lock covers the whole state, so actions still apply in one total order.
type SharedEngine struct {
	mu    sync.Mutex
	state *State
	opts  options
}

func NewSharedEngine(opts ...Option) *SharedEngine {
	return &SharedEngine{
		state: NewState(),
		opts:  newOptions(opts),
	}
}

func (e *SharedEngine) Process(ctx context.Context, action Action) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return apply(ctx, e.state, e.opts, action)
}

func (e *SharedEngine) ProcessAll(ctx context.Context, actions iter.Seq[Action]) error {
	for action := range actions {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.Process(ctx, action); err != nil {
			return err
		}
	}
	return nil
}

func (e *SharedEngine) Accounts() []AccountData {
	e.mu.Lock()
	defer e.mu.Unlock()

	return slices.Collect(e.state.Accounts(e.opts.places))
}

func (e *SharedEngine) FailedTransactions() []Transaction {
	e.mu.Lock()
	defer e.mu.Unlock()

	return slices.Collect(e.state.FailedTransactions())
}

// Len is the number of accounts in the ledger.
func (e *SharedEngine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state.Len()
}

// Account returns a copy of the client's account.
func (e *SharedEngine) Account(client ClientID) (Account, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state.Account(client)
}

func apply(ctx context.Context, state *State, opts options, action Action) error {
	outcome, err := state.Execute(action)
	if err != nil {
		var updateErr *UpdateError
		label := "rejected"
		if errors.As(err, &updateErr) {
			label = "rejected_" + updateErr.Kind.String()
		}
		opts.metrics.RecordAction(string(action.Kind), label)

		if opts.policy == PolicyStrict {
			return fmt.Errorf("apply %s tx %s: %w", action.Kind, action.TransactionID, err)
		}
		opts.logger.Debug(ctx, "Action skipped",
			"type", action.Kind,
			"client", action.ClientID,
			"tx", action.TransactionID,
			"error", err,
		)
		return nil
	}

	opts.metrics.RecordAction(string(action.Kind), outcome.String())

	return nil
}
