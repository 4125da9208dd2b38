package service

import (
	"context"

	"campushub/internal/dto"
	"campushub/internal/logger"
	"campushub/internal/models"
	"campushub/internal/repository"

	"github.com/stretchr/testify/mock"
)

func testLogger() (*logger.Logger, error) {
	return logger.New("error", "text")
}

// Shared repository mocks for the service tests.

type MockMaterialRepository struct {
	mock.Mock
}

func (m *MockMaterialRepository) Create(ctx context.Context, material *models.StudyMaterial) error {
	args := m.Called(ctx, material)
	return args.Error(0)
}

func (m *MockMaterialRepository) Update(ctx context.Context, material *models.StudyMaterial) error {
	args := m.Called(ctx, material)
	return args.Error(0)
}

func (m *MockMaterialRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMaterialRepository) GetByID(ctx context.Context, id int64) (*models.StudyMaterial, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StudyMaterial), args.Error(1)
}

func (m *MockMaterialRepository) List(ctx context.Context, filters dto.MaterialFilters, approvedOnly bool) ([]models.StudyMaterial, error) {
	args := m.Called(ctx, filters, approvedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StudyMaterial), args.Error(1)
}

func (m *MockMaterialRepository) ListByStatus(ctx context.Context, status string, departmentID *int64) ([]models.StudyMaterial, error) {
	args := m.Called(ctx, status, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StudyMaterial), args.Error(1)
}

func (m *MockMaterialRepository) Recent(ctx context.Context, approvedOnly bool, limit int) ([]models.StudyMaterial, error) {
	args := m.Called(ctx, approvedOnly, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StudyMaterial), args.Error(1)
}

func (m *MockMaterialRepository) IncrementViews(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMaterialRepository) IncrementDownloads(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMaterialRepository) AddFavoritesCount(ctx context.Context, id int64, delta int64) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

func (m *MockMaterialRepository) TopByEngagement(ctx context.Context, limit int) ([]models.StudyMaterial, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StudyMaterial), args.Error(1)
}

type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) Create(ctx context.Context, audit *models.UploadAudit) error {
	args := m.Called(ctx, audit)
	return args.Error(0)
}

func (m *MockAuditRepository) ListByMaterial(ctx context.Context, materialID int64) ([]models.UploadAudit, error) {
	args := m.Called(ctx, materialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UploadAudit), args.Error(1)
}

type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Exists(ctx context.Context, userID string, materialID int64) (bool, error) {
	args := m.Called(ctx, userID, materialID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) AddWithCount(ctx context.Context, userID string, materialID int64) error {
	args := m.Called(ctx, userID, materialID)
	return args.Error(0)
}

func (m *MockFavoriteRepository) RemoveWithCount(ctx context.Context, userID string, materialID int64) error {
	args := m.Called(ctx, userID, materialID)
	return args.Error(0)
}

func (m *MockFavoriteRepository) CountByMaterial(ctx context.Context, materialID int64) (int64, error) {
	args := m.Called(ctx, materialID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFavoriteRepository) ListByUser(ctx context.Context, userID string, approvedOnly bool, limit int) ([]models.UserFavoriteMaterial, error) {
	args := m.Called(ctx, userID, approvedOnly, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserFavoriteMaterial), args.Error(1)
}

type MockRecentViewRepository struct {
	mock.Mock
}

func (m *MockRecentViewRepository) Touch(ctx context.Context, userID string, materialID int64) error {
	args := m.Called(ctx, userID, materialID)
	return args.Error(0)
}

func (m *MockRecentViewRepository) ListByUser(ctx context.Context, userID string, approvedOnly bool, limit int) ([]models.RecentlyViewedMaterial, error) {
	args := m.Called(ctx, userID, approvedOnly, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RecentlyViewedMaterial), args.Error(1)
}

type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) Create(ctx context.Context, dept *models.Department) error {
	args := m.Called(ctx, dept)
	return args.Error(0)
}

func (m *MockDepartmentRepository) Update(ctx context.Context, dept *models.Department) error {
	args := m.Called(ctx, dept)
	return args.Error(0)
}

func (m *MockDepartmentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Department), args.Error(1)
}

func (m *MockDepartmentRepository) GetByShortCode(ctx context.Context, shortCode string) (*models.Department, error) {
	args := m.Called(ctx, shortCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Department), args.Error(1)
}

func (m *MockDepartmentRepository) List(ctx context.Context) ([]models.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Department), args.Error(1)
}

type MockSearchLogRepository struct {
	mock.Mock
}

func (m *MockSearchLogRepository) Create(ctx context.Context, log *models.SearchQueryLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockSearchLogRepository) TopTerms(ctx context.Context, limit int) ([]repository.SearchTermGroup, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.SearchTermGroup), args.Error(1)
}

type MockCoordinatorRepository struct {
	mock.Mock
}

func (m *MockCoordinatorRepository) Create(ctx context.Context, coordinator *models.Coordinator) error {
	args := m.Called(ctx, coordinator)
	return args.Error(0)
}

func (m *MockCoordinatorRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCoordinatorRepository) ListByDepartment(ctx context.Context, departmentID int64) ([]models.Coordinator, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Coordinator), args.Error(1)
}

func (m *MockCoordinatorRepository) HasAnyRole(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

// MockSearchService lets material service tests assert when a query
// gets logged without a real log repository.
type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) LogSearch(ctx context.Context, filters dto.MaterialFilters, departmentCode string, user *models.User) error {
	args := m.Called(ctx, filters, departmentCode, user)
	return args.Error(0)
}
