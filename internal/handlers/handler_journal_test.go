package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hqasem/small-biz-erp/internal/apperrors"
	"github.com/hqasem/small-biz-erp/internal/core/domain"
	portssvc "github.com/hqasem/small-biz-erp/internal/core/ports/services"
	"github.com/hqasem/small-biz-erp/internal/dto"
	"github.com/hqasem/small-biz-erp/internal/handlers"
	"github.com/hqasem/small-biz-erp/internal/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock JournalSvcFacade ---

type MockJournalService struct {
	mock.Mock
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

func (m *MockJournalService) PostEntry(ctx context.Context, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) GetEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) ListEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

// setupJournalRouter mounts the journal routes behind the same auth and
// permission middleware the real server uses.
func setupJournalRouter(authSvc *MockAuthService, journalSvc *MockJournalService) *gin.Engine {
	r := gin.New()
	h := handlers.NewJournalHandler(journalSvc)
	protected := r.Group("/api/v1", middleware.RequireAuth(authSvc))
	protected.POST("/journal", middleware.RequirePermission(authSvc, handlers.PermJournalWrite), h.PostEntry)
	protected.GET("/journal/:entryID", middleware.RequirePermission(authSvc, handlers.PermJournalRead), h.GetEntry)
	return r
}

func salesUser() *domain.User {
	return &domain.User{UserID: 7, Username: "sales1", RoleID: 2, IsActive: true}
}

func postJournal(r *gin.Engine, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/journal", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const balancedBody = `{
	"ref": "INV-001",
	"lines": [
		{"account_id": 10, "debit": "150.00"},
		{"account_id": 20, "credit": "150.00"}
	]
}`

func TestPostJournalEntrySuccess(t *testing.T) {
	authSvc := new(MockAuthService)
	journalSvc := new(MockJournalService)
	authSvc.On("VerifyToken", mock.Anything, "valid-token").Return(salesUser(), nil)
	authSvc.On("Authorize", mock.Anything, mock.Anything, handlers.PermJournalWrite).Return(nil)
	journalSvc.On("PostEntry", mock.Anything, mock.Anything).Return(&domain.JournalEntry{
		EntryID:  100,
		Ref:      "INV-001",
		PostedAt: time.Now().UTC(),
		Lines: []domain.JournalLine{
			{LineID: 200, AccountID: 10, Debit: decimal.RequireFromString("150.00"), Credit: decimal.Zero},
			{LineID: 201, AccountID: 20, Debit: decimal.Zero, Credit: decimal.RequireFromString("150.00")},
		},
	}, nil)
	r := setupJournalRouter(authSvc, journalSvc)

	w := postJournal(r, "valid-token", balancedBody)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp dto.JournalEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(100), resp.ID)
	assert.Len(t, resp.Lines, 2)
}

func TestPostJournalEntryUnbalanced(t *testing.T) {
	authSvc := new(MockAuthService)
	journalSvc := new(MockJournalService)
	authSvc.On("VerifyToken", mock.Anything, "valid-token").Return(salesUser(), nil)
	authSvc.On("Authorize", mock.Anything, mock.Anything, handlers.PermJournalWrite).Return(nil)
	journalSvc.On("PostEntry", mock.Anything, mock.Anything).Return(nil, apperrors.ErrUnbalancedEntry)
	r := setupJournalRouter(authSvc, journalSvc)

	w := postJournal(r, "valid-token", `{
		"lines": [
			{"account_id": 10, "debit": "100.00"},
			{"account_id": 20, "credit": "99.99"}
		]
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "debits must equal credits"}`, w.Body.String())
}

func TestPostJournalEntryNoToken(t *testing.T) {
	authSvc := new(MockAuthService)
	journalSvc := new(MockJournalService)
	r := setupJournalRouter(authSvc, journalSvc)

	w := postJournal(r, "", balancedBody)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	journalSvc.AssertNotCalled(t, "PostEntry", mock.Anything, mock.Anything)
}

func TestPostJournalEntryBadToken(t *testing.T) {
	authSvc := new(MockAuthService)
	authSvc.On("VerifyToken", mock.Anything, "expired-token").Return(nil, apperrors.ErrUnauthenticated)
	r := setupJournalRouter(authSvc, new(MockJournalService))

	w := postJournal(r, "expired-token", balancedBody)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error": "unauthorized"}`, w.Body.String())
}

func TestPostJournalEntryForbidden(t *testing.T) {
	// Authenticated viewer without journal.write gets 403, not 401.
	authSvc := new(MockAuthService)
	journalSvc := new(MockJournalService)
	viewer := &domain.User{UserID: 9, Username: "viewer1", RoleID: 3, IsActive: true}
	authSvc.On("VerifyToken", mock.Anything, "viewer-token").Return(viewer, nil)
	authSvc.On("Authorize", mock.Anything, mock.Anything, handlers.PermJournalWrite).
		Return(apperrors.ErrForbidden)
	r := setupJournalRouter(authSvc, journalSvc)

	w := postJournal(r, "viewer-token", balancedBody)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error": "forbidden"}`, w.Body.String())
	journalSvc.AssertNotCalled(t, "PostEntry", mock.Anything, mock.Anything)
}

func TestGetJournalEntryNotFound(t *testing.T) {
	authSvc := new(MockAuthService)
	journalSvc := new(MockJournalService)
	authSvc.On("VerifyToken", mock.Anything, "valid-token").Return(salesUser(), nil)
	authSvc.On("Authorize", mock.Anything, mock.Anything, handlers.PermJournalRead).Return(nil)
	journalSvc.On("GetEntryByID", mock.Anything, int64(404)).Return(nil, apperrors.ErrNotFound)
	r := setupJournalRouter(authSvc, journalSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/journal/404", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
