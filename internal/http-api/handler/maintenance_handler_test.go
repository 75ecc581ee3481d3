package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockMaintenanceService mocks the MaintenanceService interface
type MockMaintenanceService struct {
	mock.Mock
}

func (m *MockMaintenanceService) Backup(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func TestBackup_Success(t *testing.T) {
	mockSvc := new(MockMaintenanceService)
	router := setupRouter()
	NewMaintenanceHandler(mockSvc).RegisterRoutes(router.Group("/api"))

	mockSvc.On("Backup", mock.Anything).Return("names_backup_20260829_120000.db", nil)

	w := postJSON(router, "/api/backup", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBackup_CopyFailure(t *testing.T) {
	mockSvc := new(MockMaintenanceService)
	router := setupRouter()
	NewMaintenanceHandler(mockSvc).RegisterRoutes(router.Group("/api"))

	mockSvc.On("Backup", mock.Anything).Return("", errors.New("read-only filesystem"))

	w := postJSON(router, "/api/backup", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
