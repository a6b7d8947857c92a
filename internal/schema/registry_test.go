package schema_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reliefops/finance/internal/schema"
)

func TestRegistry_RegisterIdempotent(t *testing.T) {
	t.Parallel()

	r := schema.New(schema.Config{
		ExpenseEnabled:        true,
		PaymentServiceEnabled: true,
		DefaultCurrency:       "USD",
	})

	require.Len(t, r.Tables(), 2)

	// Registering again must not duplicate the tables.
	r.RegisterExpense()
	r.RegisterPaymentService()
	require.Len(t, r.Tables(), 2)

	table, ok := r.Table(schema.TableExpense)
	require.True(t, ok)
	require.Equal(t, schema.TableExpense, table.Name)
}

func TestRegistry_ExpenseDefinition(t *testing.T) {
	t.Parallel()

	r := schema.New(schema.Config{ExpenseEnabled: true, DefaultCurrency: "EUR"})

	table, ok := r.Table(schema.TableExpense)
	require.True(t, ok)
	require.Equal(t, "Add Expense", table.CRUD.LabelCreate)
	require.Equal(t, "No Expenses currently registered", table.CRUD.MsgListEmpty)

	var currency schema.Field

	for _, f := range table.Fields {
		if f.Name == "currency" {
			currency = f
		}
	}

	require.Equal(t, "EUR", currency.Default)

	ref, ok := r.Lookup(schema.RefExpense)
	require.True(t, ok)
	require.False(t, ref.Placeholder())
	require.Equal(t, schema.TableExpense, ref.Table)
	require.Equal(t, "CASCADE", ref.OnDelete)
	require.Equal(t, "name", ref.SortBy)
}

func TestRegistry_DisabledModelResolvesPlaceholder(t *testing.T) {
	t.Parallel()

	r := schema.New(schema.Config{
		ExpenseEnabled:        false,
		PaymentServiceEnabled: false,
	})

	require.Empty(t, r.Tables())

	for _, key := range []string{schema.RefExpense, schema.RefPaymentService} {
		ref, ok := r.Lookup(key)
		require.True(t, ok, "key %q must still resolve", key)
		require.True(t, ref.Placeholder())
		require.False(t, ref.Readable)
		require.False(t, ref.Writable)
	}
}

func TestRegistry_TokenFieldsWriteProtected(t *testing.T) {
	t.Parallel()

	r := schema.New(schema.Config{PaymentServiceEnabled: true})

	table, ok := r.Table(schema.TablePaymentService)
	require.True(t, ok)

	protected := map[string]bool{"token_type": true, "access_token": true, "token_expiry": true}

	for _, f := range table.Fields {
		if protected[f.Name] {
			require.False(t, f.Writable, "field %q must not be writable", f.Name)
		}
	}
}

func TestRegistry_UnknownKey(t *testing.T) {
	t.Parallel()

	r := schema.New(schema.Config{ExpenseEnabled: true})

	_, ok := r.Lookup("fin_unknown_id")
	require.False(t, ok)
}
