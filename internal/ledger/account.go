package ledger

// Account is a client's balance. The zero value is an empty, unlocked account.
type Account struct {
	available Amount
	held      Amount
	locked    bool
}

func (a *Account) Available() Amount { return a.available }

func (a *Account) Held() Amount { return a.held }

// Total is available plus held funds.
func (a *Account) Total() Amount { return a.available.Add(a.held) }

func (a *Account) Locked() bool { return a.locked }

// Deposit adds amount to the available funds.
func (a *Account) Deposit(amount Amount) error {
	if err := a.check(amount); err != nil {
		return err
	}
	a.available = a.available.Add(amount)
	return nil
}

// Withdraw removes amount from the available funds.
func (a *Account) Withdraw(amount Amount) error {
	if err := a.check(amount); err != nil {
		return err
	}
	if amount.GreaterThan(a.available) {
		return ErrInsufficientFunds
	}
	a.available = a.available.Sub(amount)
	return nil
}

// Hold moves amount from available to held funds.
func (a *Account) Hold(amount Amount) error {
	if err := a.check(amount); err != nil {
		return err
	}
	if amount.GreaterThan(a.available) {
		return ErrInsufficientFunds
	}
	a.available = a.available.Sub(amount)
	a.held = a.held.Add(amount)
	return nil
}

// Release moves amount from held back to available funds.
func (a *Account) Release(amount Amount) error {
	if err := a.check(amount); err != nil {
		return err
	}
	if amount.GreaterThan(a.held) {
		return ErrInsufficientFunds
	}
	a.held = a.held.Sub(amount)
	a.available = a.available.Add(amount)
	return nil
}

// Chargeback removes amount from held funds without returning it.
func (a *Account) Chargeback(amount Amount) error {
	if err := a.check(amount); err != nil {
		return err
	}
	if amount.GreaterThan(a.held) {
		return ErrInsufficientFunds
	}
	a.held = a.held.Sub(amount)
	return nil
}

func (a *Account) Lock() { a.locked = true }

func (a *Account) Unlock() { a.locked = false }

func (a *Account) check(amount Amount) error {
	if a.locked {
		return ErrLocked
	}
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}
