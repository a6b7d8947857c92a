// Package schema holds the declarative model metadata for the finance
// tables: field definitions, CRUD display strings, form and list layouts,
// and the reusable reference fields other modules resolve by key. The
// registry is built once at startup from explicit config instead of
// process-wide mutable state.
package schema

import (
	"github.com/reliefops/finance/internal/entity"
)

const (
	TableExpense        = "expenses"
	TablePaymentService = "payment_services"
)

// Reference keys resolvable by downstream schema modules.
const (
	RefExpense        = "fin_expense_id"
	RefPaymentService = "fin_service_id"
)

type Config struct {
	ExpenseEnabled        bool
	PaymentServiceEnabled bool
	DefaultCurrency       string
}

type FieldType string

const (
	FieldString    FieldType = "string"
	FieldText      FieldType = "text"
	FieldDecimal   FieldType = "decimal"
	FieldBoolean   FieldType = "boolean"
	FieldDate      FieldType = "date"
	FieldDateTime  FieldType = "datetime"
	FieldReference FieldType = "reference"
)

type Field struct {
	Name     string            `json:"name"`
	Type     FieldType         `json:"type"`
	Label    string            `json:"label"`
	Required bool              `json:"required,omitempty"`
	Readable bool              `json:"readable"`
	Writable bool              `json:"writable"`
	Default  string            `json:"default,omitempty"`
	Options  map[string]string `json:"options,omitempty"`
	RefTable string            `json:"refTable,omitempty"`
}

// CRUDStrings are the display strings for the generated CRUD interface of a
// table.
type CRUDStrings struct {
	LabelCreate       string `json:"labelCreate"`
	TitleDisplay      string `json:"titleDisplay"`
	TitleList         string `json:"titleList"`
	TitleUpdate       string `json:"titleUpdate"`
	TitleUpload       string `json:"titleUpload"`
	LabelListButton   string `json:"labelListButton"`
	LabelDeleteButton string `json:"labelDeleteButton"`
	MsgRecordCreated  string `json:"msgRecordCreated"`
	MsgRecordModified string `json:"msgRecordModified"`
	MsgRecordDeleted  string `json:"msgRecordDeleted"`
	MsgListEmpty      string `json:"msgListEmpty"`
}

// Table is the declarative definition a client needs to render generic CRUD
// forms and lists for one model.
type Table struct {
	Name       string      `json:"name"`
	Fields     []Field     `json:"fields"`
	CRUD       CRUDStrings `json:"crud"`
	FormFields []string    `json:"formFields"`
	ListFields []string    `json:"listFields"`
}

// Reference is a reusable foreign-key field definition keyed into the
// registry for consumption by other schemas. A disabled model still yields a
// placeholder reference so that the key always resolves.
type Reference struct {
	Field    string `json:"field"`
	Table    string `json:"table,omitempty"`
	Label    string `json:"label,omitempty"`
	OnDelete string `json:"onDelete,omitempty"`
	SortBy   string `json:"sortBy,omitempty"`
	Readable bool   `json:"readable"`
	Writable bool   `json:"writable"`
}

// Placeholder reports whether the reference is the inert stand-in produced
// for a deactivated model.
func (r Reference) Placeholder() bool {
	return r.Table == ""
}

type Registry struct {
	cfg    Config
	tables map[string]Table
	refs   map[string]Reference
	order  []string
}

func New(cfg Config) *Registry {
	r := &Registry{
		cfg:    cfg,
		tables: make(map[string]Table),
		refs:   make(map[string]Reference),
	}

	r.RegisterExpense()
	r.RegisterPaymentService()

	return r
}

// RegisterExpense declares the expense table. Registration is idempotent:
// repeated calls replace the previous definition under the same name.
func (r *Registry) RegisterExpense() {
	if !r.cfg.ExpenseEnabled {
		r.refs[RefExpense] = placeholder("expense_id")
		return
	}

	r.put(Table{
		Name: TableExpense,
		Fields: append([]Field{
			{Name: "name", Type: FieldString, Label: "Short Description", Required: true, Readable: true, Writable: true},
			{Name: "date", Type: FieldDate, Label: "Date", Readable: true, Writable: true},
			{Name: "value", Type: FieldDecimal, Label: "Value", Readable: true, Writable: true},
			{Name: "currency", Type: FieldString, Label: "Currency", Default: r.cfg.DefaultCurrency, Readable: true, Writable: true},
			{Name: "comments", Type: FieldText, Label: "Comments", Readable: true, Writable: true},
		}, metaFields()...),
		CRUD: CRUDStrings{
			LabelCreate:       "Add Expense",
			TitleDisplay:      "Expense Details",
			TitleList:         "Expenses",
			TitleUpdate:       "Edit Expense",
			TitleUpload:       "Import Expenses",
			LabelListButton:   "List Expenses",
			LabelDeleteButton: "Delete Expense",
			MsgRecordCreated:  "Expense added",
			MsgRecordModified: "Expense updated",
			MsgRecordDeleted:  "Expense removed",
			MsgListEmpty:      "No Expenses currently registered",
		},
		FormFields: []string{"name", "date", "value", "currency", "documents", "comments"},
		ListFields: []string{"date", "created_by", "name", "comments", "documents"},
	})

	r.refs[RefExpense] = Reference{
		Field:    "expense_id",
		Table:    TableExpense,
		Label:    "Expense",
		OnDelete: "CASCADE",
		SortBy:   "name",
		Readable: true,
		Writable: true,
	}
}

// RegisterPaymentService declares the payment-service table.
func (r *Registry) RegisterPaymentService() {
	if !r.cfg.PaymentServiceEnabled {
		r.refs[RefPaymentService] = placeholder("service_id")
		return
	}

	r.put(Table{
		Name: TablePaymentService,
		Fields: append([]Field{
			{Name: "name", Type: FieldString, Label: "Name", Required: true, Readable: true, Writable: true},
			{Name: "organisation_id", Type: FieldReference, Label: "Organization", Required: true, Readable: true, Writable: true, RefTable: "organisations"},
			{Name: "api_type", Type: FieldString, Label: "API Type", Default: entity.APITypePayPal.String(), Options: entity.APITypeOptions(), Readable: true, Writable: true},
			{Name: "base_url", Type: FieldString, Label: "Base URL", Readable: true, Writable: true},
			{Name: "use_proxy", Type: FieldBoolean, Label: "Use Proxy", Default: "false", Readable: true, Writable: true},
			{Name: "proxy", Type: FieldString, Label: "Proxy Server", Readable: true, Writable: true},
			{Name: "username", Type: FieldString, Label: "Username (Client ID)", Readable: true, Writable: true},
			{Name: "password", Type: FieldString, Label: "Password (Client Secret)", Readable: true, Writable: true},
			{Name: "token_type", Type: FieldString, Label: "Token Type", Readable: false, Writable: false},
			{Name: "access_token", Type: FieldString, Label: "Access Token", Readable: false, Writable: false},
			{Name: "token_expiry", Type: FieldDateTime, Label: "Token expires on", Readable: true, Writable: false},
		}, metaFields()...),
		CRUD: CRUDStrings{
			LabelCreate:       "Add Payment Service",
			TitleDisplay:      "Payment Service Details",
			TitleList:         "Payment Services",
			TitleUpdate:       "Edit Payment Service",
			TitleUpload:       "Import Payment Services",
			LabelListButton:   "List Payment Services",
			LabelDeleteButton: "Delete Payment Service",
			MsgRecordCreated:  "Payment Service added",
			MsgRecordModified: "Payment Service updated",
			MsgRecordDeleted:  "Payment Service removed",
			MsgListEmpty:      "No Payment Services currently registered",
		},
		FormFields: []string{
			"name", "organisation_id", "api_type", "base_url",
			"use_proxy", "proxy", "username", "password",
		},
		ListFields: []string{"name", "organisation_id", "api_type", "base_url"},
	})

	r.refs[RefPaymentService] = Reference{
		Field:    "service_id",
		Table:    TablePaymentService,
		Label:    "Payment Service",
		OnDelete: "RESTRICT",
		SortBy:   "name",
		Readable: true,
		Writable: true,
	}
}

// Table returns the definition of a registered table.
func (r *Registry) Table(name string) (Table, bool) {
	t, ok := r.tables[name]
	return t, ok
}

// Tables returns all registered tables in registration order.
func (r *Registry) Tables() []Table {
	tables := make([]Table, 0, len(r.order))
	for _, name := range r.order {
		tables = append(tables, r.tables[name])
	}

	return tables
}

// Lookup resolves a reference key. Keys of deactivated models resolve to an
// inert placeholder, so dependent modules never fail to resolve a known key.
func (r *Registry) Lookup(key string) (Reference, bool) {
	ref, ok := r.refs[key]
	return ref, ok
}

func (r *Registry) put(t Table) {
	if _, ok := r.tables[t.Name]; !ok {
		r.order = append(r.order, t.Name)
	}

	r.tables[t.Name] = t
}

func placeholder(field string) Reference {
	return Reference{
		Field:    field,
		Readable: false,
		Writable: false,
	}
}

func metaFields() []Field {
	return []Field{
		{Name: "created_by", Type: FieldReference, Label: "Created By", Readable: true, Writable: false},
		{Name: "created_at", Type: FieldDateTime, Label: "Created On", Readable: true, Writable: false},
		{Name: "modified_by", Type: FieldReference, Label: "Modified By", Readable: true, Writable: false},
		{Name: "modified_at", Type: FieldDateTime, Label: "Modified On", Readable: true, Writable: false},
	}
}
