package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-openapi/strfmt"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/reliefops/finance/internal/entity"
	"github.com/reliefops/finance/internal/schema"
)

// @title Finance API
// @version 1.0
// @description Expenses and payment-service registry for the response platform
// @BasePath /api/fin
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-Api-Key

const dateLayout = "2006-01-02"

type Service interface {
	CreateExpense(ctx context.Context, e entity.Expense) (entity.Expense, error)
	Expense(ctx context.Context, id uuid.UUID) (entity.Expense, error)
	Expenses(ctx context.Context, filter entity.ExpenseFilter) ([]entity.Expense, int, error)
	UpdateExpense(ctx context.Context, e entity.Expense) (entity.Expense, error)
	DeleteExpense(ctx context.Context, id uuid.UUID) error
	AttachDocument(ctx context.Context, expenseID uuid.UUID, d entity.Document) (entity.Document, error)
	ExpenseDocuments(ctx context.Context, expenseID uuid.UUID) ([]entity.Document, error)

	CreatePaymentService(ctx context.Context, s entity.PaymentService) (entity.PaymentService, error)
	PaymentService(ctx context.Context, id uuid.UUID) (entity.PaymentService, error)
	PaymentServices(ctx context.Context, filter entity.ServiceFilter) ([]entity.PaymentService, int, error)
	UpdatePaymentService(ctx context.Context, s entity.PaymentService) (entity.PaymentService, error)
	DeletePaymentService(ctx context.Context, id uuid.UUID) error
	UpdateServiceToken(ctx context.Context, id uuid.UUID, token entity.ServiceToken) error

	CreateOrganisation(ctx context.Context, o entity.Organisation) (entity.Organisation, error)
	Organisation(ctx context.Context, id uuid.UUID) (entity.Organisation, error)
	Organisations(ctx context.Context, filter entity.OrganisationFilter) ([]entity.Organisation, int, error)
}

type Handler struct {
	s        Service
	registry *schema.Registry
}

func NewHandler(s Service, registry *schema.Registry) *Handler {
	return &Handler{
		s:        s,
		registry: registry,
	}
}

type ExpenseRequest struct {
	Name     string          `json:"name"`
	Date     string          `json:"date,omitempty"` // YYYY-MM-DD
	Value    decimal.Decimal `json:"value"`
	Currency string          `json:"currency,omitempty"`
	Comments string          `json:"comments,omitempty"`
}

type ExpenseEntity struct {
	ID         string    `json:"id"`
	DocID      string    `json:"docID"`
	Name       string    `json:"name"`
	Date       string    `json:"date,omitempty"`
	Value      string    `json:"value"`
	Currency   string    `json:"currency,omitempty"`
	Comments   string    `json:"comments,omitempty"`
	CreatedBy  string    `json:"createdBy"`
	CreatedAt  time.Time `json:"createdAt"`
	ModifiedBy string    `json:"modifiedBy"`
	ModifiedAt time.Time `json:"modifiedAt"`
}

type ExpensesResponse struct {
	Expenses   []ExpenseEntity `json:"expenses"`
	TotalCount int             `json:"totalCount"`
}

// CreateExpense registers a new expense
// @Summary Create expense
// @Description Registers a new expense record
// @Tags expenses
// @Accept json
// @Produce json
// @Param ExpenseRequest body ExpenseRequest true "Expense creation request"
// @Success 201 {object} ExpenseEntity
// @Failure 400 {object} ErrorResponse "Invalid JSON or date"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Failure 500 {object} ErrorResponse "Failed to create expense"
// @Router /expenses [post]
// @Security BearerAuth
func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ExpenseRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	e, err := expenseFromAPI(req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD")
		return
	}

	e, err = h.s.CreateExpense(ctx, e)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrUnauthenticated):
			SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Not authenticated")
		case errors.Is(err, entity.ErrInvalidArgument):
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Validation failed")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to create expense")
		}

		return
	}

	SendJSON(ctx, w, http.StatusCreated, expenseToAPI(e))
}

// Expenses lists expenses with filters, sorting and pagination
// @Summary List expenses
// @Tags expenses
// @Produce json
// @Param name query string false "Filter by name substring"
// @Param currency query string false "Filter by currency code"
// @Param dateFrom query string false "Records dated on or after (YYYY-MM-DD)"
// @Param limit query int false "Page size (default 10)"
// @Param page query int false "Page number (default 1)"
// @Param sortBy query string false "Sort column (name, date, value, created_at)"
// @Param orderBy query string false "Sort order (asc, desc)"
// @Success 200 {object} ExpensesResponse
// @Failure 500 {object} ErrorResponse "Failed to list expenses"
// @Router /expenses [get]
// @Security BearerAuth
func (h *Handler) Expenses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := parseExpenseFilter(r.URL.Query())

	expenses, totalCount, err := h.s.Expenses(ctx, filter)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to list expenses")
		return
	}

	res := make([]ExpenseEntity, 0, len(expenses))
	for _, e := range expenses {
		res = append(res, expenseToAPI(e))
	}

	SendJSON(ctx, w, http.StatusOK, ExpensesResponse{Expenses: res, TotalCount: totalCount})
}

// Expense returns a single expense
// @Summary Get expense
// @Tags expenses
// @Produce json
// @Param id path string true "Expense ID (UUID)"
// @Success 200 {object} ExpenseEntity
// @Failure 400 {object} ErrorResponse "'id' must be a UUID"
// @Failure 404 {object} ErrorResponse "Expense not found"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /expenses/{id} [get]
// @Security BearerAuth
func (h *Handler) Expense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'id' must be a UUID")
		return
	}

	e, err := h.s.Expense(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Expense not found")
		} else {
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Internal error")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, expenseToAPI(e))
}

// UpdateExpense updates an expense
// @Summary Update expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Expense ID (UUID)"
// @Param ExpenseRequest body ExpenseRequest true "Expense update request"
// @Success 200 {object} ExpenseEntity
// @Failure 400 {object} ErrorResponse "Invalid JSON, date or id"
// @Failure 404 {object} ErrorResponse "Expense not found"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Failure 500 {object} ErrorResponse "Failed to update expense"
// @Router /expenses/{id} [put]
// @Security BearerAuth
func (h *Handler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'id' must be a UUID")
		return
	}

	var req ExpenseRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	e, err := expenseFromAPI(req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD")
		return
	}

	e.ID = id

	e, err = h.s.UpdateExpense(ctx, e)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Expense not found")
		case errors.Is(err, entity.ErrInvalidArgument):
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Validation failed")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to update expense")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, expenseToAPI(e))
}

type DeleteResponse struct{}

// DeleteExpense soft-deletes an expense
// @Summary Delete expense
// @Description Marks the expense deleted; the record is kept for the audit trail
// @Tags expenses
// @Produce json
// @Param id path string true "Expense ID (UUID)"
// @Success 200 {object} DeleteResponse
// @Failure 400 {object} ErrorResponse "'id' must be a UUID"
// @Failure 404 {object} ErrorResponse "Expense not found"
// @Failure 500 {object} ErrorResponse "Failed to delete expense"
// @Router /expenses/{id} [delete]
// @Security BearerAuth
func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'id' must be a UUID")
		return
	}

	err = h.s.DeleteExpense(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Expense not found")
		} else {
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to delete expense")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, DeleteResponse{})
}

type DocumentRequest struct {
	Name    string `json:"name"`
	FileURL string `json:"fileURL"`
}

type DocumentEntity struct {
	ID        string    `json:"id"`
	DocID     string    `json:"docID"`
	Name      string    `json:"name"`
	FileURL   string    `json:"fileURL"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

type DocumentsResponse struct {
	Documents []DocumentEntity `json:"documents"`
}

// AttachDocument attaches a document to an expense
// @Summary Attach document
// @Description Links an uploaded file to the expense through its document handle
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Expense ID (UUID)"
// @Param DocumentRequest body DocumentRequest true "Document attachment request"
// @Success 201 {object} DocumentEntity
// @Failure 400 {object} ErrorResponse "Invalid JSON or id"
// @Failure 404 {object} ErrorResponse "Expense not found"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Failure 500 {object} ErrorResponse "Failed to attach document"
// @Router /expenses/{id}/documents [post]
// @Security BearerAuth
func (h *Handler) AttachDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'id' must be a UUID")
		return
	}

	var req DocumentRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	d, err := h.s.AttachDocument(ctx, id, entity.Document{Name: req.Name, FileURL: req.FileURL})
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Expense not found")
		case errors.Is(err, entity.ErrInvalidArgument):
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Validation failed")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to attach document")
		}

		return
	}

	SendJSON(ctx, w, http.StatusCreated, documentToAPI(d))
}

// ExpenseDocuments lists the attachments of an expense
// @Summary List expense documents
// @Tags expenses
// @Produce json
// @Param id path string true "Expense ID (UUID)"
// @Success 200 {object} DocumentsResponse
// @Failure 400 {object} ErrorResponse "'id' must be a UUID"
// @Failure 404 {object} ErrorResponse "Expense not found"
// @Failure 500 {object} ErrorResponse "Failed to list documents"
// @Router /expenses/{id}/documents [get]
// @Security BearerAuth
func (h *Handler) ExpenseDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'id' must be a UUID")
		return
	}

	docs, err := h.s.ExpenseDocuments(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Expense not found")
		} else {
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to list documents")
		}

		return
	}

	res := make([]DocumentEntity, 0, len(docs))
	for _, d := range docs {
		res = append(res, documentToAPI(d))
	}

	SendJSON(ctx, w, http.StatusOK, DocumentsResponse{Documents: res})
}

type ServiceRequest struct {
	Name           string    `json:"name"`
	OrganisationID uuid.UUID `json:"organisationID"`
	APIType        string    `json:"apiType,omitempty"`
	BaseURL        string    `json:"baseURL,omitempty"`
	UseProxy       bool      `json:"useProxy,omitempty"`
	Proxy          string    `json:"proxy,omitempty"`
	Username       string    `json:"username,omitempty"`
	Password       string    `json:"password,omitempty"`
}

// ServiceEntity omits the credential and token secrets: password and
// access_token never leave the service through the public surface.
type ServiceEntity struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	OrganisationID string     `json:"organisationID"`
	APIType        string     `json:"apiType"`
	APITypeLabel   string     `json:"apiTypeLabel"`
	BaseURL        string     `json:"baseURL,omitempty"`
	UseProxy       string     `json:"useProxy"`
	Proxy          string     `json:"proxy,omitempty"`
	Username       string     `json:"username,omitempty"`
	TokenExpiry    *time.Time `json:"tokenExpiry,omitempty"`
	CreatedBy      string     `json:"createdBy"`
	CreatedAt      time.Time  `json:"createdAt"`
	ModifiedBy     string     `json:"modifiedBy"`
	ModifiedAt     time.Time  `json:"modifiedAt"`
}

type ServicesResponse struct {
	Services   []ServiceEntity `json:"services"`
	TotalCount int             `json:"totalCount"`
}

// CreatePaymentService registers a payment service
// @Summary Create payment service
// @Tags services
// @Accept json
// @Produce json
// @Param ServiceRequest body ServiceRequest true "Payment service creation request"
// @Success 201 {object} ServiceEntity
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Failure 500 {object} ErrorResponse "Failed to create payment service"
// @Router /services [post]
// @Security BearerAuth
func (h *Handler) CreatePaymentService(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ServiceRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	ps, err := h.s.CreatePaymentService(ctx, serviceFromAPI(req))
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrUnauthenticated):
			SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Not authenticated")
		case errors.Is(err, entity.ErrInvalidArgument):
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Validation failed")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to create payment service")
		}

		return
	}

	SendJSON(ctx, w, http.StatusCreated, serviceToAPI(ps))
}

// PaymentServices lists payment services
// @Summary List payment services
// @Tags services
// @Produce json
// @Param name query string false "Filter by name substring"
// @Param organisationID query string false "Filter by owning organisation"
// @Param apiType query string false "Filter by API type"
// @Param limit query int false "Page size (default 10)"
// @Param page query int false "Page number (default 1)"
// @Param sortBy query string false "Sort column (name, created_at)"
// @Param orderBy query string false "Sort order (asc, desc)"
// @Success 200 {object} ServicesResponse
// @Failure 500 {object} ErrorResponse "Failed to list payment services"
// @Router /services [get]
// @Security BearerAuth
func (h *Handler) PaymentServices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := parseServiceFilter(r.URL.Query())

	services, totalCount, err := h.s.PaymentServices(ctx, filter)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to list payment services")
		return
	}

	res := make([]ServiceEntity, 0, len(services))
	for _, ps := range services {
		res = append(res, serviceToAPI(ps))
	}

	SendJSON(ctx, w, http.StatusOK, ServicesResponse{Services: res, TotalCount: totalCount})
}

// PaymentService returns a single payment service
// @Summary Get payment service
// @Tags services
// @Produce json
// @Param id path string true "Service ID (UUID)"
// @Success 200 {object} ServiceEntity
// @Failure 400 {object} ErrorResponse "'id' must be a UUID"
// @Failure 404 {object} ErrorResponse "Payment service not found"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /services/{id} [get]
// @Security BearerAuth
func (h *Handler) PaymentService(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'id' must be a UUID")
		return
	}

	ps, err := h.s.PaymentService(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Payment service not found")
		} else {
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Internal error")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, serviceToAPI(ps))
}

// UpdatePaymentService updates a payment service
// @Summary Update payment service
// @Description Updates the writable fields; token bookkeeping is never touched here
// @Tags services
// @Accept json
// @Produce json
// @Param id path string true "Service ID (UUID)"
// @Param ServiceRequest body ServiceRequest true "Payment service update request"
// @Success 200 {object} ServiceEntity
// @Failure 400 {object} ErrorResponse "Invalid JSON or id"
// @Failure 404 {object} ErrorResponse "Payment service not found"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Failure 500 {object} ErrorResponse "Failed to update payment service"
// @Router /services/{id} [put]
// @Security BearerAuth
func (h *Handler) UpdatePaymentService(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'id' must be a UUID")
		return
	}

	var req ServiceRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	ps := serviceFromAPI(req)
	ps.ID = id

	ps, err = h.s.UpdatePaymentService(ctx, ps)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Payment service not found")
		case errors.Is(err, entity.ErrInvalidArgument):
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Validation failed")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to update payment service")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, serviceToAPI(ps))
}

// DeletePaymentService soft-deletes a payment service
// @Summary Delete payment service
// @Tags services
// @Produce json
// @Param id path string true "Service ID (UUID)"
// @Success 200 {object} DeleteResponse
// @Failure 400 {object} ErrorResponse "'id' must be a UUID"
// @Failure 404 {object} ErrorResponse "Payment service not found"
// @Failure 500 {object} ErrorResponse "Failed to delete payment service"
// @Router /services/{id} [delete]
// @Security BearerAuth
func (h *Handler) DeletePaymentService(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'id' must be a UUID")
		return
	}

	err = h.s.DeletePaymentService(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Payment service not found")
		} else {
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to delete payment service")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, DeleteResponse{})
}

type ServiceTokenRequest struct {
	TokenType   string           `json:"tokenType"`
	AccessToken string           `json:"accessToken"`
	Expiry      *strfmt.DateTime `json:"expiry,omitempty"`
}

type ServiceTokenResponse struct{}

// UpdateServiceToken stores OAuth token bookkeeping for a payment service
// @Summary Update service token
// @Description Private endpoint used by the external OAuth integration to store tokens
// @Tags services
// @Accept json
// @Produce json
// @Param id path string true "Service ID (UUID)"
// @Param ServiceTokenRequest body ServiceTokenRequest true "Token update request"
// @Success 200 {object} ServiceTokenResponse
// @Failure 400 {object} ErrorResponse "Invalid JSON or id"
// @Failure 404 {object} ErrorResponse "Payment service not found"
// @Failure 500 {object} ErrorResponse "Failed to update token"
// @Router /private/v1/services/{id}/token [put]
// @Security ApiKeyAuth
func (h *Handler) UpdateServiceToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'id' must be a UUID")
		return
	}

	var req ServiceTokenRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	token := entity.ServiceToken{
		TokenType:   req.TokenType,
		AccessToken: req.AccessToken,
	}

	if req.Expiry != nil {
		expiry := time.Time(*req.Expiry)
		token.Expiry = &expiry
	}

	err = h.s.UpdateServiceToken(ctx, id, token)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Payment service not found")
		} else {
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to update token")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, ServiceTokenResponse{})
}

type OrganisationRequest struct {
	Name    string `json:"name"`
	Acronym string `json:"acronym,omitempty"`
	Website string `json:"website,omitempty"`
}

type OrganisationEntity struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Acronym   string    `json:"acronym,omitempty"`
	Website   string    `json:"website,omitempty"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

type OrganisationsResponse struct {
	Organisations []OrganisationEntity `json:"organisations"`
	TotalCount    int                  `json:"totalCount"`
}

// CreateOrganisation registers an organisation
// @Summary Create organisation
// @Tags organisations
// @Accept json
// @Produce json
// @Param OrganisationRequest body OrganisationRequest true "Organisation creation request"
// @Success 201 {object} OrganisationEntity
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Failure 500 {object} ErrorResponse "Failed to create organisation"
// @Router /organisations [post]
// @Security BearerAuth
func (h *Handler) CreateOrganisation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req OrganisationRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	o, err := h.s.CreateOrganisation(ctx, entity.Organisation{
		Name:    req.Name,
		Acronym: req.Acronym,
		Website: req.Website,
	})
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrUnauthenticated):
			SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Not authenticated")
		case errors.Is(err, entity.ErrInvalidArgument):
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Validation failed")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to create organisation")
		}

		return
	}

	SendJSON(ctx, w, http.StatusCreated, organisationToAPI(o))
}

// Organisations lists organisations
// @Summary List organisations
// @Tags organisations
// @Produce json
// @Param name query string false "Filter by name substring"
// @Param limit query int false "Page size (default 10)"
// @Param page query int false "Page number (default 1)"
// @Success 200 {object} OrganisationsResponse
// @Failure 500 {object} ErrorResponse "Failed to list organisations"
// @Router /organisations [get]
// @Security BearerAuth
func (h *Handler) Organisations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := parseOrganisationFilter(r.URL.Query())

	orgs, totalCount, err := h.s.Organisations(ctx, filter)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to list organisations")
		return
	}

	res := make([]OrganisationEntity, 0, len(orgs))
	for _, o := range orgs {
		res = append(res, organisationToAPI(o))
	}

	SendJSON(ctx, w, http.StatusOK, OrganisationsResponse{Organisations: res, TotalCount: totalCount})
}

// Organisation returns a single organisation
// @Summary Get organisation
// @Tags organisations
// @Produce json
// @Param id path string true "Organisation ID (UUID)"
// @Success 200 {object} OrganisationEntity
// @Failure 400 {object} ErrorResponse "'id' must be a UUID"
// @Failure 404 {object} ErrorResponse "Organisation not found"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /organisations/{id} [get]
// @Security BearerAuth
func (h *Handler) Organisation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'id' must be a UUID")
		return
	}

	o, err := h.s.Organisation(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Organisation not found")
		} else {
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Internal error")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, organisationToAPI(o))
}

// TableSchema returns the declarative definition of a registered table
// @Summary Get table schema
// @Description Field definitions, CRUD strings and form/list layout for generic form rendering
// @Tags schema
// @Produce json
// @Param table path string true "Table name"
// @Success 200 {object} schema.Table
// @Failure 404 {object} ErrorResponse "Table not registered"
// @Router /schema/{table} [get]
// @Security BearerAuth
func (h *Handler) TableSchema(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	name := chi.URLParam(r, "table")

	table, ok := h.registry.Table(name)
	if !ok {
		SendJSONErr(ctx, w, http.StatusNotFound, entity.ErrNotFound, "Table not registered")
		return
	}

	SendJSON(ctx, w, http.StatusOK, table)
}

// ReferenceField resolves a reusable reference-field key
// @Summary Resolve reference field
// @Description Resolves a reference key; keys of deactivated models resolve to an inert placeholder
// @Tags schema
// @Produce json
// @Param key path string true "Reference key"
// @Success 200 {object} schema.Reference
// @Failure 404 {object} ErrorResponse "Unknown reference key"
// @Router /schema/refs/{key} [get]
// @Security BearerAuth
func (h *Handler) ReferenceField(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	key := chi.URLParam(r, "key")

	ref, ok := h.registry.Lookup(key)
	if !ok {
		SendJSONErr(ctx, w, http.StatusNotFound, entity.ErrNotFound, "Unknown reference key")
		return
	}

	SendJSON(ctx, w, http.StatusOK, ref)
}

// HealthHandler returns service health status
// @Summary Health check
// @Tags health
// @Produce text/plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("OK\n"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Service is not healthy")
		return
	}
}

func expenseFromAPI(req ExpenseRequest) (entity.Expense, error) {
	e := entity.Expense{
		Name:     req.Name,
		Value:    req.Value,
		Currency: req.Currency,
		Comments: req.Comments,
	}

	if req.Date != "" {
		date, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			return entity.Expense{}, err
		}

		e.Date = date
	}

	return e, nil
}

func expenseToAPI(e entity.Expense) ExpenseEntity {
	res := ExpenseEntity{
		ID:         e.ID.String(),
		DocID:      e.DocID.String(),
		Name:       e.Name,
		Value:      e.ValueString(),
		Currency:   e.Currency,
		Comments:   e.Comments,
		CreatedBy:  e.CreatedBy.String(),
		CreatedAt:  e.CreatedAt,
		ModifiedBy: e.ModifiedBy.String(),
		ModifiedAt: e.ModifiedAt,
	}

	if !e.Date.IsZero() {
		res.Date = e.Date.Format(dateLayout)
	}

	return res
}

func documentToAPI(d entity.Document) DocumentEntity {
	return DocumentEntity{
		ID:        d.ID.String(),
		DocID:     d.DocID.String(),
		Name:      d.Name,
		FileURL:   d.FileURL,
		CreatedBy: d.CreatedBy.String(),
		CreatedAt: d.CreatedAt,
	}
}

func serviceFromAPI(req ServiceRequest) entity.PaymentService {
	return entity.PaymentService{
		Name:           req.Name,
		OrganisationID: req.OrganisationID,
		APIType:        entity.APIType(req.APIType),
		BaseURL:        req.BaseURL,
		UseProxy:       req.UseProxy,
		Proxy:          req.Proxy,
		Username:       req.Username,
		Password:       req.Password,
	}
}

func serviceToAPI(ps entity.PaymentService) ServiceEntity {
	return ServiceEntity{
		ID:             ps.ID.String(),
		Name:           ps.Name,
		OrganisationID: ps.OrganisationID.String(),
		APIType:        ps.APIType.String(),
		APITypeLabel:   ps.APIType.Represent(),
		BaseURL:        ps.BaseURL,
		UseProxy:       yesNo(ps.UseProxy),
		Proxy:          ps.Proxy,
		Username:       ps.Username,
		TokenExpiry:    ps.TokenExpiry,
		CreatedBy:      ps.CreatedBy.String(),
		CreatedAt:      ps.CreatedAt,
		ModifiedBy:     ps.ModifiedBy.String(),
		ModifiedAt:     ps.ModifiedAt,
	}
}

func organisationToAPI(o entity.Organisation) OrganisationEntity {
	return OrganisationEntity{
		ID:        o.ID.String(),
		Name:      o.Name,
		Acronym:   o.Acronym,
		Website:   o.Website,
		CreatedBy: o.CreatedBy.String(),
		CreatedAt: o.CreatedAt,
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}

	return "no"
}

func parseExpenseFilter(url url.Values) entity.ExpenseFilter {
	name := url.Get("name")
	currency := url.Get("currency")
	dateFrom := url.Get("dateFrom")
	sortBy := entity.ExpenseSortCol(url.Get("sortBy"))
	orderBy := entity.OrderByCol(url.Get("orderBy"))

	if !sortBy.IsValid() {
		sortBy = entity.ExpenseSortByCreatedAt
	}

	if !orderBy.IsValid() {
		orderBy = entity.DESC
	}

	page, limit := parsePagination(url)

	filter := entity.ExpenseFilter{
		Page:    page,
		Limit:   limit,
		SortBy:  sortBy,
		OrderBy: orderBy,
	}

	if name != "" {
		filter.Name = &name
	}

	if currency != "" {
		filter.Currency = &currency
	}

	if dateFrom != "" {
		filter.DateFrom = &dateFrom
	}

	return filter
}

func parseServiceFilter(url url.Values) entity.ServiceFilter {
	name := url.Get("name")
	apiType := url.Get("apiType")
	sortBy := entity.ServiceSortCol(url.Get("sortBy"))
	orderBy := entity.OrderByCol(url.Get("orderBy"))

	if !sortBy.IsValid() {
		sortBy = entity.ServiceSortByName
	}

	if !orderBy.IsValid() {
		orderBy = entity.ASC
	}

	page, limit := parsePagination(url)

	filter := entity.ServiceFilter{
		Page:    page,
		Limit:   limit,
		SortBy:  sortBy,
		OrderBy: orderBy,
	}

	if name != "" {
		filter.Name = &name
	}

	if apiType != "" {
		filter.APIType = &apiType
	}

	if orgID, err := uuid.FromString(url.Get("organisationID")); err == nil {
		filter.OrganisationID = &orgID
	}

	return filter
}

func parseOrganisationFilter(url url.Values) entity.OrganisationFilter {
	name := url.Get("name")

	page, limit := parsePagination(url)

	filter := entity.OrganisationFilter{
		Page:  page,
		Limit: limit,
	}

	if name != "" {
		filter.Name = &name
	}

	return filter
}

func parsePagination(url url.Values) (page, limit uint64) {
	const (
		defaultLimit uint64 = 10
		maxLimit     uint64 = 100
		defaultPage  uint64 = 1
	)

	limit, err := strconv.ParseUint(url.Get("limit"), 10, 64)
	if err != nil {
		limit = defaultLimit
	}

	if limit > maxLimit {
		limit = maxLimit
	}

	page, err = strconv.ParseUint(url.Get("page"), 10, 64)
	if err != nil || page == 0 {
		page = defaultPage
	}

	return page, limit
}
