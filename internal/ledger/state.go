package ledger

import "iter"

// State owns every account and transaction. It is not safe for concurrent
// use; SharedEngine serializes access to it.
type State struct {
	accounts     map[ClientID]*Account
	transactions map[TransactionID]*Transaction
}

func NewState() *State {
	return &State{
		accounts:     make(map[ClientID]*Account),
		transactions: make(map[TransactionID]*Transaction),
	}
}

// Apply runs one action against the state. It returns an *UpdateError when
// the action does not fit the current state, in which case nothing changed.
// Account arithmetic failures are not errors here: they are recorded on the
// transaction.
func (s *State) Apply(action Action) error {
	_, err := s.Execute(action)
	return err
}

// Execute is Apply that also reports what the action did.
func (s *State) Execute(action Action) (Outcome, error) {
	switch action.Kind {
	case ActionDeposit:
		return s.record(action, func(acc *Account, amount Amount) (Amount, error) {
			return amount, acc.Deposit(amount)
		})
	case ActionWithdrawal:
		return s.record(action, func(acc *Account, amount Amount) (Amount, error) {
			return amount.Neg(), acc.Withdraw(amount)
		})
	case ActionDispute:
		return s.dispute(action)
	case ActionResolve:
		return s.settle(action, SucceededState(), func(acc *Account, tx *Transaction) error {
			return acc.Release(tx.Amount)
		})
	case ActionChargeback:
		return s.settle(action, CancelledState(), func(acc *Account, tx *Transaction) error {
			err := acc.Chargeback(tx.Amount)
			acc.Lock()
			return err
		})
	default:
		return Outcome{Kind: OutcomeIgnored}, nil
	}
}

// record creates the transaction for a deposit or withdrawal. The id is
// consumed even when the account operation fails.
func (s *State) record(action Action, op func(*Account, Amount) (Amount, error)) (Outcome, error) {
	if action.Amount == nil {
		return Outcome{}, &UpdateError{Kind: NoAmount, TransactionID: action.TransactionID, Client: action.ClientID}
	}
	if _, used := s.transactions[action.TransactionID]; used {
		return Outcome{}, &UpdateError{Kind: TransactionUsed, TransactionID: action.TransactionID, Client: action.ClientID}
	}

	acc := s.accountFor(action.ClientID)
	stored, err := op(acc, *action.Amount)

	s.transactions[action.TransactionID] = &Transaction{
		ID:     action.TransactionID,
		Client: action.ClientID,
		Amount: stored,
		State:  stateFrom(err, SucceededState()),
	}
	return outcomeOf(err), nil
}

func (s *State) dispute(action Action) (Outcome, error) {
	tx, acc, err := s.lookup(action)
	if err != nil {
		return Outcome{}, err
	}

	// Only deposits hold funds; disputing a withdrawal is accepted and ignored.
	if !tx.Amount.IsPositive() {
		return Outcome{Kind: OutcomeIgnored}, nil
	}
	err = acc.Hold(tx.Amount)
	tx.State = stateFrom(err, DisputedState())
	return outcomeOf(err), nil
}

// settle closes a dispute. Transactions that are not disputed are left alone.
func (s *State) settle(action Action, onSuccess TransactionState, op func(*Account, *Transaction) error) (Outcome, error) {
	tx, ok := s.transactions[action.TransactionID]
	if !ok {
		return Outcome{}, &UpdateError{Kind: TransactionMissing, TransactionID: action.TransactionID, Client: action.ClientID}
	}
	if tx.State.Kind != Disputed {
		return Outcome{Kind: OutcomeIgnored}, nil
	}

	tx, acc, err := s.lookup(action)
	if err != nil {
		return Outcome{}, err
	}
	err = op(acc, tx)
	tx.State = stateFrom(err, onSuccess)
	return outcomeOf(err), nil
}

func (s *State) lookup(action Action) (*Transaction, *Account, error) {
	tx, ok := s.transactions[action.TransactionID]
	if !ok {
		return nil, nil, &UpdateError{Kind: TransactionMissing, TransactionID: action.TransactionID, Client: action.ClientID}
	}
	if tx.Client != action.ClientID {
		return nil, nil, &UpdateError{
			Kind:          ClientMismatch,
			TransactionID: action.TransactionID,
			Client:        action.ClientID,
			Owner:         tx.Client,
		}
	}
	acc, ok := s.accounts[action.ClientID]
	if !ok {
		return nil, nil, &UpdateError{Kind: AccountMissing, TransactionID: action.TransactionID, Client: action.ClientID}
	}
	return tx, acc, nil
}

func (s *State) accountFor(client ClientID) *Account {
	acc, ok := s.accounts[client]
	if !ok {
		acc = &Account{}
		s.accounts[client] = acc
	}
	return acc
}

// Account returns a copy of the client's account.
func (s *State) Account(client ClientID) (Account, bool) {
	acc, ok := s.accounts[client]
	if !ok {
		return Account{}, false
	}
	return *acc, true
}

// Transaction returns a copy of the transaction record.
func (s *State) Transaction(id TransactionID) (Transaction, bool) {
	tx, ok := s.transactions[id]
	if !ok {
		return Transaction{}, false
	}
	return *tx, true
}

// Accounts yields one report row per client, in no particular order. Figures
// are rounded to places decimals; a negative places reports raw values.
func (s *State) Accounts(places int32) iter.Seq[AccountData] {
	return func(yield func(AccountData) bool) {
		for client, acc := range s.accounts {
			if !yield(NewAccountData(client, acc, places)) {
				return
			}
		}
	}
}

// FailedTransactions yields copies of every transaction whose last operation
// failed.
func (s *State) FailedTransactions() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range s.transactions {
			if tx.State.Kind != Failed {
				continue
			}
			if !yield(*tx) {
				return
			}
		}
	}
}

func (s *State) Len() int {
	return len(s.accounts)
}
