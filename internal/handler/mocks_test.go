package handler

import (
	"context"

	"campushub/internal/dto"
	"campushub/internal/models"
	"campushub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// asUser stands in for the auth middleware and injects the acting user.
func asUser(user *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user != nil {
			c.Set("currentUser", user)
		}
		c.Next()
	}
}

// MockAuthService mocks the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(name, username, email, password, role string) (*models.User, error) {
	args := m.Called(name, username, email, password, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(email, password string) (string, string, *models.User, error) {
	args := m.Called(email, password)
	if args.Get(2) == nil {
		return args.String(0), args.String(1), nil, args.Error(3)
	}
	return args.String(0), args.String(1), args.Get(2).(*models.User), args.Error(3)
}

func (m *MockAuthService) RefreshAccessToken(refreshToken string) (string, error) {
	args := m.Called(refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

// MockMaterialService mocks the MaterialService interface
type MockMaterialService struct {
	mock.Mock
}

func (m *MockMaterialService) Upload(ctx context.Context, material *models.StudyMaterial, uploader *models.User) error {
	args := m.Called(ctx, material, uploader)
	return args.Error(0)
}

func (m *MockMaterialService) List(ctx context.Context, filters dto.MaterialFilters, viewer *models.User) ([]models.StudyMaterial, error) {
	args := m.Called(ctx, filters, viewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StudyMaterial), args.Error(1)
}

func (m *MockMaterialService) Get(ctx context.Context, id int64, viewer *models.User) (*models.StudyMaterial, bool, error) {
	args := m.Called(ctx, id, viewer)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.StudyMaterial), args.Bool(1), args.Error(2)
}

func (m *MockMaterialService) Download(ctx context.Context, id int64, viewer *models.User) (*models.StudyMaterial, string, error) {
	args := m.Called(ctx, id, viewer)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.StudyMaterial), args.String(1), args.Error(2)
}

func (m *MockMaterialService) Recent(ctx context.Context, viewer *models.User) ([]models.StudyMaterial, error) {
	args := m.Called(ctx, viewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StudyMaterial), args.Error(1)
}

// MockFavoriteService mocks the FavoriteService interface
type MockFavoriteService struct {
	mock.Mock
}

func (m *MockFavoriteService) Toggle(ctx context.Context, userID string, materialID int64) (*dto.ToggleFavoriteResponse, error) {
	args := m.Called(ctx, userID, materialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ToggleFavoriteResponse), args.Error(1)
}

// MockModerationService mocks the ModerationService interface
type MockModerationService struct {
	mock.Mock
}

func (m *MockModerationService) Apply(ctx context.Context, materialID int64, actor *models.User, action, reason string) (*models.StudyMaterial, error) {
	args := m.Called(ctx, materialID, actor, action, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StudyMaterial), args.Error(1)
}

func (m *MockModerationService) Queue(ctx context.Context, actor *models.User, status string, departmentID *int64) ([]models.StudyMaterial, error) {
	args := m.Called(ctx, actor, status, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StudyMaterial), args.Error(1)
}

func (m *MockModerationService) AuditTrail(ctx context.Context, actor *models.User, materialID int64) ([]models.UploadAudit, error) {
	args := m.Called(ctx, actor, materialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UploadAudit), args.Error(1)
}
