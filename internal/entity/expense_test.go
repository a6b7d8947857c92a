package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/reliefops/finance/internal/entity"
)

func TestExpense_ValueString(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name  string
		value string
		want  string
	}{
		{
			name:  "integer input",
			value: "12",
			want:  "12.00",
		},
		{
			name:  "one decimal place",
			value: "0.4",
			want:  "0.40",
		},
		{
			name:  "two decimal places",
			value: "1524.20",
			want:  "1524.20",
		},
		{
			name:  "more than two decimal places",
			value: "3.14159",
			want:  "3.14",
		},
		{
			name:  "zero",
			value: "0",
			want:  "0.00",
		},
		{
			name:  "negative",
			value: "-7.5",
			want:  "-7.50",
		},
		{
			name:  "big amount",
			value: "1000000000.99",
			want:  "1000000000.99",
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := entity.Expense{
				Value: decimal.RequireFromString(tt.value),
			}

			if got := e.ValueString(); got != tt.want {
				t.Errorf("ValueString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpenseSortCol_IsValid(t *testing.T) {
	t.Parallel()

	for _, col := range []entity.ExpenseSortCol{
		entity.ExpenseSortByName,
		entity.ExpenseSortByDate,
		entity.ExpenseSortByValue,
		entity.ExpenseSortByCreatedAt,
	} {
		if !col.IsValid() {
			t.Errorf("IsValid() = false for %q", col)
		}
	}

	if entity.ExpenseSortCol("comments").IsValid() {
		t.Error("IsValid() = true for unknown column")
	}
}
