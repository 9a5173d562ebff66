// Package model defines the persisted entity records.
package model

// Todo is a single todo item. Description defaults to the empty string
// and Completed to false when omitted at creation.
type Todo struct {
	ID          int64  `db:"id" json:"id"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
	Completed   bool   `db:"completed" json:"completed"`
}

// Counter is a named integer counter. Name is unique across all
// counters; the store enforces the constraint. Values may go negative.
type Counter struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Value int64  `db:"value" json:"value"`
}
