package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

const ExpenseNameMaxLen = 128

type Expense struct {
	ID       uuid.UUID
	DocID    uuid.UUID // document-entity handle, attachments link to it
	Name     string    // short description
	Date     time.Time
	Value    decimal.Decimal
	Currency string
	Comments string
	RecordMeta
}

// ValueString renders the monetary value with exactly two decimal places.
func (e Expense) ValueString() string {
	return e.Value.StringFixed(2)
}

type ExpenseFilter struct {
	Name     *string
	Currency *string
	DateFrom *string
	Page     uint64
	Limit    uint64
	SortBy   ExpenseSortCol
	OrderBy  OrderByCol
}

type ExpenseSortCol string

func (c ExpenseSortCol) String() string {
	return string(c)
}

const (
	ExpenseSortByName      ExpenseSortCol = "name"
	ExpenseSortByDate      ExpenseSortCol = "date"
	ExpenseSortByValue     ExpenseSortCol = "value"
	ExpenseSortByCreatedAt ExpenseSortCol = "created_at"
)

func (c ExpenseSortCol) IsValid() bool {
	switch c {
	case ExpenseSortByName, ExpenseSortByDate, ExpenseSortByValue, ExpenseSortByCreatedAt:
		return true
	}

	return false
}
