package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"atelier-backoffice/internal/domain"
	"atelier-backoffice/internal/statustext"
)

var testLog = slog.New(slog.NewTextHandler(io.Discard, nil))

func init() {
	gin.SetMode(gin.TestMode)
}

// --- Моки сервисов ---

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockCatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

type MockShipmentService struct {
	mock.Mock
}

func (m *MockShipmentService) ListShipments(ctx context.Context) ([]domain.ShipmentWithItems, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShipmentWithItems), args.Error(1)
}

func (m *MockShipmentService) ShipmentRows(ctx context.Context, shipmentID string) ([]domain.ViewRow, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ViewRow), args.Error(1)
}

func (m *MockShipmentService) ListByYear(ctx context.Context) ([]domain.YearGroup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.YearGroup), args.Error(1)
}

type MockMoneyService struct {
	mock.Mock
}

func (m *MockMoneyService) Summary(ctx context.Context) (*domain.MoneySummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MoneySummary), args.Error(1)
}

func performRequest(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	router.ServeHTTP(w, req)
	return w
}

// --- Каталог ---

func TestCatalogHandler_GetProducts(t *testing.T) {
	svc := new(MockCatalogService)
	svc.On("ListProducts", mock.Anything).Return([]domain.Product{
		{
			ID:       "fur-coat",
			Name:     "Шуба норковая",
			Category: domain.CategoryFur,
			Price:    decimal.NewNullDecimal(decimal.NewFromInt(45970)),
		},
		{ID: "suede-jacket", Name: "Куртка", Category: domain.CategorySuede},
	}, nil)

	handler := NewCatalogHandler(testLog, svc)
	router := gin.New()
	router.GET("/api/products", handler.GetProducts)

	w := performRequest(router, http.MethodGet, "/api/products")

	require.Equal(t, http.StatusOK, w.Code)

	var body []ProductResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 2)
	require.NotNil(t, body[0].Price)
	assert.Equal(t, "45970", *body[0].Price)
	require.NotNil(t, body[0].PriceFormatted)
	assert.Equal(t, "$45\u2009970", *body[0].PriceFormatted)
	assert.Nil(t, body[1].Price)
}

func TestCatalogHandler_GetProductByID_NotFound(t *testing.T) {
	svc := new(MockCatalogService)
	svc.On("GetProduct", mock.Anything, "ghost").Return(nil, domain.ErrProductNotFound)

	handler := NewCatalogHandler(testLog, svc)
	router := gin.New()
	router.GET("/api/products/:productId", handler.GetProductByID)

	w := performRequest(router, http.MethodGet, "/api/products/ghost")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message": "Product not found"}`, w.Body.String())
}

// --- Партии ---

func TestShipmentHandler_GetShipments(t *testing.T) {
	svc := new(MockShipmentService)
	svc.On("ListShipments", mock.Anything).Return([]domain.ShipmentWithItems{
		{
			ShipmentConfig: domain.ShipmentConfig{ID: "shipment-1", Title: "Партия 1", Status: "intransit"},
			Batch:          domain.Batch{ID: "shipment-1"},
			TotalAmount:    decimal.NewFromInt(1200),
		},
	}, nil)

	handler := NewShipmentHandler(testLog, svc, statustext.DefaultVocabulary())
	router := gin.New()
	router.GET("/api/shipments", handler.GetShipments)

	w := performRequest(router, http.MethodGet, "/api/shipments")

	require.Equal(t, http.StatusOK, w.Code)

	var body []ShipmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "shipment-1", body[0].ID)
	assert.Equal(t, "уже в пути", body[0].Status.Label)
	assert.Equal(t, "🚚", body[0].Status.Icon)
	assert.Equal(t, "1200", body[0].TotalAmount)
	assert.Equal(t, "$1\u2009200", body[0].TotalAmountFormatted)
}

func TestShipmentHandler_GetShipmentRows(t *testing.T) {
	svc := new(MockShipmentService)
	svc.On("ShipmentRows", mock.Anything, "shipment-1").Return([]domain.ViewRow{
		{StatusLabel: "не оплачен", Items: []domain.Position{{StatusLabel: "не оплачен"}}},
		{StatusLabel: "оплачен", Items: []domain.Position{{StatusLabel: "оплачен"}}},
	}, nil)

	handler := NewShipmentHandler(testLog, svc, statustext.DefaultVocabulary())
	router := gin.New()
	router.GET("/api/shipments/:shipmentId/rows", handler.GetShipmentRows)

	w := performRequest(router, http.MethodGet, "/api/shipments/shipment-1/rows")

	require.Equal(t, http.StatusOK, w.Code)

	var body []ViewRowResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.False(t, body[0].Paid)
	assert.True(t, body[1].Paid)
}

func TestShipmentHandler_GetShipmentRows_NotFound(t *testing.T) {
	svc := new(MockShipmentService)
	svc.On("ShipmentRows", mock.Anything, "ghost").Return(nil, domain.ErrShipmentNotFound)

	handler := NewShipmentHandler(testLog, svc, statustext.DefaultVocabulary())
	router := gin.New()
	router.GET("/api/shipments/:shipmentId/rows", handler.GetShipmentRows)

	w := performRequest(router, http.MethodGet, "/api/shipments/ghost/rows")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message": "Shipment not found"}`, w.Body.String())
}

func TestShipmentHandler_GetShipmentYears(t *testing.T) {
	svc := new(MockShipmentService)
	svc.On("ListByYear", mock.Anything).Return([]domain.YearGroup{
		{Year: 2026, Turnover: decimal.NewFromInt(5000)},
		{Year: 2025, Turnover: decimal.NewFromInt(12000)},
	}, nil)

	handler := NewShipmentHandler(testLog, svc, statustext.DefaultVocabulary())
	router := gin.New()
	router.GET("/api/shipments/years", handler.GetShipmentYears)

	w := performRequest(router, http.MethodGet, "/api/shipments/years")

	require.Equal(t, http.StatusOK, w.Code)

	var body []YearGroupResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, 2026, body[0].Year)
	assert.Equal(t, "$12\u2009000", body[1].TurnoverFormatted)
}

// --- Деньги ---

func TestMoneyHandler_GetMoney(t *testing.T) {
	svc := new(MockMoneyService)
	svc.On("Summary", mock.Anything).Return(&domain.MoneySummary{
		Outstanding: decimal.NewFromInt(200),
		PerShipment: []domain.ShipmentDue{
			{ShipmentID: "shipment-2", Title: "Партия 2", Amount: decimal.NewFromInt(200)},
		},
		Deposits: []domain.Deposit{
			{ID: "dep-1", Title: "Депозит", Amount: decimal.NewFromInt(2500)},
		},
		DepositTotal: decimal.NewFromInt(2500),
		TotalPayment: decimal.NewFromInt(2700),
	}, nil)

	handler := NewMoneyHandler(testLog, svc)
	router := gin.New()
	router.GET("/api/money", handler.GetMoney)

	w := performRequest(router, http.MethodGet, "/api/money")

	require.Equal(t, http.StatusOK, w.Code)

	var body MoneySummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "200", body.Outstanding)
	assert.Equal(t, "$2\u2009700", body.TotalPaymentFormatted)
	require.Len(t, body.PerShipment, 1)
	assert.Equal(t, "shipment-2", body.PerShipment[0].ShipmentID)
	require.Len(t, body.Deposits, 1)
	assert.Equal(t, "$2\u2009500", body.Deposits[0].AmountFormatted)
}

func TestMoneyHandler_GetMoney_InternalError(t *testing.T) {
	svc := new(MockMoneyService)
	svc.On("Summary", mock.Anything).Return(nil, errors.New("boom"))

	handler := NewMoneyHandler(testLog, svc)
	router := gin.New()
	router.GET("/api/money", handler.GetMoney)

	w := performRequest(router, http.MethodGet, "/api/money")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message": "Internal server error"}`, w.Body.String())
}

// --- Маппинг ошибок ---

func TestBaseHandler_MapError(t *testing.T) {
	handler := NewBaseHandler(testLog)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantText   string
	}{
		{"изделие не найдено", domain.ErrProductNotFound, http.StatusNotFound, "Product not found"},
		{"партия не найдена", domain.ErrShipmentNotFound, http.StatusNotFound, "Shipment not found"},
		{"ресурс не найден", domain.ErrNotFound, http.StatusNotFound, "Resource not found"},
		{"ошибка валидации", domain.ErrValidation, http.StatusBadRequest, "Invalid request data"},
		{"ошибка данных", domain.ErrDataLoad, http.StatusInternalServerError, "Internal server error (static data)"},
		{"неизвестная ошибка", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := handler.mapError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantText, message)
		})
	}
}
