package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/reliefops/finance/internal/api"
	"github.com/reliefops/finance/internal/entity"
	"github.com/reliefops/finance/internal/mocks"
	"github.com/reliefops/finance/internal/schema"
	"github.com/reliefops/finance/internal/service"
)

type testAPI struct {
	server       *httptest.Server
	repoMock     *mocks.MockRepository
	producerMock *mocks.MockProducer
	authMock     *mocks.MockAuthService
}

func newTestAPI(t *testing.T, cfg schema.Config) *testAPI {
	t.Helper()

	ctrl := gomock.NewController(t)

	repoMock := mocks.NewMockRepository(ctrl)
	producerMock := mocks.NewMockProducer(ctrl)
	authMock := mocks.NewMockAuthService(ctrl)

	s := service.New(repoMock, producerMock, cfg.DefaultCurrency)

	handler := api.NewHandler(s, schema.New(cfg))
	mw := api.NewMiddleware(authMock, true, "dev")

	server := httptest.NewServer(api.NewRouter(handler, mw))
	t.Cleanup(server.Close)

	return &testAPI{
		server:       server,
		repoMock:     repoMock,
		producerMock: producerMock,
		authMock:     authMock,
	}
}

func defaultSchemaConfig() schema.Config {
	return schema.Config{
		ExpenseEnabled:        true,
		PaymentServiceEnabled: true,
		DefaultCurrency:       "EUR",
	}
}

func (c *testAPI) do(t *testing.T, method, path string, body any, headers map[string]string) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, c.server.URL+path, &buf)
	require.NoError(t, err)

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func bearer() map[string]string {
	return map[string]string{"Authorization": "Bearer dev-token"}
}

func TestHandler_CreateExpense(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t, defaultSchemaConfig())

	user := entity.User{ID: uuid.Must(uuid.NewV4()), Email: "user@example.com", Role: entity.RoleStaff}
	c.authMock.EXPECT().User(gomock.Any(), "dev-token").Return(user, nil)

	c.repoMock.EXPECT().CreateExpense(gomock.Any(), gomock.Any()).Return(nil)
	c.producerMock.EXPECT().RecordEvent(gomock.Any(), "expenses", gomock.Any(), "created")

	resp := c.do(t, http.MethodPost, "/api/fin/expenses", map[string]any{
		"name":  "Water trucking",
		"date":  "2026-03-01",
		"value": "1500.2",
	}, bearer())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got api.ExpenseEntity
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

	require.Equal(t, "Water trucking", got.Name)
	require.Equal(t, "1500.20", got.Value)
	require.Equal(t, "EUR", got.Currency)
	require.Equal(t, "2026-03-01", got.Date)
	require.NotEmpty(t, got.ID)
	require.NotEmpty(t, got.DocID)
	require.Equal(t, user.ID.String(), got.CreatedBy)
}

func TestHandler_CreateExpense_BadDate(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t, defaultSchemaConfig())

	user := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleStaff}
	c.authMock.EXPECT().User(gomock.Any(), "dev-token").Return(user, nil)

	resp := c.do(t, http.MethodPost, "/api/fin/expenses", map[string]any{
		"name":  "Water trucking",
		"date":  "01/03/2026",
		"value": "1500.2",
	}, bearer())
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_CreateExpense_NoToken(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t, defaultSchemaConfig())

	resp := c.do(t, http.MethodPost, "/api/fin/expenses", map[string]any{
		"name":  "Water trucking",
		"value": "1500.2",
	}, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandler_CreateExpense_InvalidToken(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t, defaultSchemaConfig())

	c.authMock.EXPECT().User(gomock.Any(), "bad-token").Return(entity.User{}, entity.ErrForbidden)

	resp := c.do(t, http.MethodPost, "/api/fin/expenses", map[string]any{
		"name":  "Water trucking",
		"value": "1500.2",
	}, map[string]string{"Authorization": "Bearer bad-token"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandler_Expense_NotFound(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t, defaultSchemaConfig())

	user := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleStaff}
	c.authMock.EXPECT().User(gomock.Any(), "dev-token").Return(user, nil)

	id := uuid.Must(uuid.NewV4())
	c.repoMock.EXPECT().Expense(gomock.Any(), id).Return(entity.Expense{}, entity.ErrNotFound)

	resp := c.do(t, http.MethodGet, "/api/fin/expenses/"+id.String(), nil, bearer())
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_TableSchema(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t, defaultSchemaConfig())

	user := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleStaff}
	c.authMock.EXPECT().User(gomock.Any(), "dev-token").Return(user, nil).Times(2)

	resp := c.do(t, http.MethodGet, "/api/fin/schema/expenses", nil, bearer())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var table schema.Table
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&table))

	require.Equal(t, "expenses", table.Name)
	require.Equal(t, "Add Expense", table.CRUD.LabelCreate)
	require.NotEmpty(t, table.Fields)

	resp = c.do(t, http.MethodGet, "/api/fin/schema/unknown", nil, bearer())
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_ReferenceField_DisabledModel(t *testing.T) {
	t.Parallel()

	cfg := defaultSchemaConfig()
	cfg.PaymentServiceEnabled = false

	c := newTestAPI(t, cfg)

	user := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleStaff}
	c.authMock.EXPECT().User(gomock.Any(), "dev-token").Return(user, nil).Times(2)

	resp := c.do(t, http.MethodGet, "/api/fin/schema/refs/fin_service_id", nil, bearer())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var ref schema.Reference
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ref))

	require.Empty(t, ref.Table)
	require.False(t, ref.Readable)
	require.False(t, ref.Writable)

	resp = c.do(t, http.MethodGet, "/api/fin/schema/refs/fin_unknown_id", nil, bearer())
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_PaymentService_HidesSecrets(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t, defaultSchemaConfig())

	user := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleStaff}
	c.authMock.EXPECT().User(gomock.Any(), "dev-token").Return(user, nil)

	id := uuid.Must(uuid.NewV4())
	c.repoMock.EXPECT().PaymentService(gomock.Any(), id).Return(entity.PaymentService{
		ID:             id,
		Name:           "HQ PayPal",
		OrganisationID: uuid.Must(uuid.NewV4()),
		APIType:        entity.APITypePayPal,
		UseProxy:       true,
		Username:       "client-id",
		Password:       "client-secret",
		TokenType:      "Bearer",
		AccessToken:    "stored-token",
	}, nil)

	resp := c.do(t, http.MethodGet, "/api/fin/services/"+id.String(), nil, bearer())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	require.Equal(t, "HQ PayPal", body["name"])
	require.Equal(t, "PayPal", body["apiTypeLabel"])
	require.Equal(t, "yes", body["useProxy"])
	require.NotContains(t, body, "password")
	require.NotContains(t, body, "accessToken")
}

func TestHandler_UpdateServiceToken(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t, defaultSchemaConfig())

	id := uuid.Must(uuid.NewV4())

	c.repoMock.EXPECT().UpdateServiceToken(gomock.Any(), id, gomock.Any(), gomock.Any()).Return(nil)
	c.producerMock.EXPECT().RecordEvent(gomock.Any(), "payment_services", id, "updated")

	resp := c.do(t, http.MethodPut, "/api/fin/private/v1/services/"+id.String()+"/token", map[string]any{
		"tokenType":   "Bearer",
		"accessToken": "fresh-token",
		"expiry":      "2026-09-01T00:00:00Z",
	}, map[string]string{"X-Api-Key": "dev"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandler_UpdateServiceToken_BadAPIKey(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t, defaultSchemaConfig())

	id := uuid.Must(uuid.NewV4())

	resp := c.do(t, http.MethodPut, "/api/fin/private/v1/services/"+id.String()+"/token", map[string]any{
		"tokenType":   "Bearer",
		"accessToken": "fresh-token",
	}, map[string]string{"X-Api-Key": "wrong"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = c.do(t, http.MethodPut, "/api/fin/private/v1/services/"+id.String()+"/token", nil, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t, defaultSchemaConfig())

	resp := c.do(t, http.MethodGet, "/api/fin/health", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
