package model

// Base contains the fields every stored record shares. Both are set once
// at creation and never change.
type Base struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
}

// RecordID implements store.Record.
func (b Base) RecordID() string {
	return b.ID
}
