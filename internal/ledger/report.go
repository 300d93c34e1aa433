package ledger

// DefaultRoundPlaces is the precision used for reported figures.
const DefaultRoundPlaces int32 = 4

// AccountData is a read-only report row for one client.
type AccountData struct {
	Client    ClientID `json:"client"`
	Available Amount   `json:"available"`
	Held      Amount   `json:"held"`
	Total     Amount   `json:"total"`
	Locked    bool     `json:"locked"`
}

// NewAccountData rounds half away from zero to places decimals. A negative
// places keeps the raw values.
func NewAccountData(client ClientID, acc *Account, places int32) AccountData {
	return AccountData{
		Client:    client,
		Available: round(acc.Available(), places),
		Held:      round(acc.Held(), places),
		Total:     round(acc.Total(), places),
		Locked:    acc.Locked(),
	}
}

func round(a Amount, places int32) Amount {
	if places < 0 {
		return a
	}
	return a.Round(places)
}
