package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"campushub/internal/dto"
	"campushub/internal/models"
	"campushub/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func newMaterialHandler() (*MaterialHandler, *MockMaterialService, *MockFavoriteService, *MockModerationService) {
	materialSvc := new(MockMaterialService)
	favoriteSvc := new(MockFavoriteService)
	moderationSvc := new(MockModerationService)
	return NewMaterialHandler(materialSvc, favoriteSvc, moderationSvc), materialSvc, favoriteSvc, moderationSvc
}

func TestListMaterials_LenientFilterParsing(t *testing.T) {
	handler, materialSvc, _, _ := newMaterialHandler()
	router := setupRouter()
	router.GET("/materials", handler.List)

	// the malformed semester is dropped, the rest still apply
	expected := dto.MaterialFilters{DepartmentID: int64Ptr(7), Year: intPtr(2026)}
	materialSvc.On("List", mock.Anything, expected, (*models.User)(nil)).
		Return([]models.StudyMaterial{}, nil)

	req, _ := http.NewRequest("GET", "/materials?department=7&semester=abc&year=2026", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.MaterialListResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, 0, response.Total)

	materialSvc.AssertExpectations(t)
}

func TestGetMaterial_NotFound(t *testing.T) {
	handler, materialSvc, _, _ := newMaterialHandler()
	router := setupRouter()
	router.GET("/materials/:material_id", handler.Get)

	materialSvc.On("Get", mock.Anything, int64(7), (*models.User)(nil)).
		Return(nil, false, gorm.ErrRecordNotFound)

	req, _ := http.NewRequest("GET", "/materials/7", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetMaterial_InvalidID(t *testing.T) {
	handler, materialSvc, _, _ := newMaterialHandler()
	router := setupRouter()
	router.GET("/materials/:material_id", handler.Get)

	req, _ := http.NewRequest("GET", "/materials/abc", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	materialSvc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
}

func TestDownloadMaterial_ReturnsRedirectTarget(t *testing.T) {
	handler, materialSvc, _, _ := newMaterialHandler()
	router := setupRouter()
	router.GET("/materials/:material_id/download", handler.Download)

	m := &models.StudyMaterial{ID: 7, DownloadsCount: 4}
	materialSvc.On("Download", mock.Anything, int64(7), (*models.User)(nil)).
		Return(m, "https://drive.google.com/file/d/abc123/view", nil)

	req, _ := http.NewRequest("GET", "/materials/7/download", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.DownloadResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, int64(7), response.MaterialID)
	assert.Equal(t, int64(4), response.DownloadsCount)
	assert.Equal(t, "https://drive.google.com/file/d/abc123/view", response.RedirectURL)
}

func TestToggleFavorite_Success(t *testing.T) {
	handler, _, favoriteSvc, _ := newMaterialHandler()
	router := setupRouter()
	user := &models.User{ID: "user-1"}
	router.POST("/materials/:material_id/favorite", asUser(user), handler.ToggleFavorite)

	favoriteSvc.On("Toggle", mock.Anything, "user-1", int64(7)).
		Return(&dto.ToggleFavoriteResponse{MaterialID: 7, Favorited: true, NewCount: 4}, nil)

	req, _ := http.NewRequest("POST", "/materials/7/favorite", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.ToggleFavoriteResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.True(t, response.Favorited)
	assert.Equal(t, int64(4), response.NewCount)
}

func TestToggleFavorite_RequiresUser(t *testing.T) {
	handler, _, favoriteSvc, _ := newMaterialHandler()
	router := setupRouter()
	router.POST("/materials/:material_id/favorite", handler.ToggleFavorite)

	req, _ := http.NewRequest("POST", "/materials/7/favorite", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	favoriteSvc.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything, mock.Anything)
}

func TestModerate_Success(t *testing.T) {
	handler, _, _, moderationSvc := newMaterialHandler()
	router := setupRouter()
	staff := &models.User{ID: "staff-1", IsStaff: true}
	router.POST("/materials/:material_id/moderation", asUser(staff), handler.Moderate)

	approved := &models.StudyMaterial{ID: 7, VerificationStatus: models.StatusApproved}
	moderationSvc.On("Apply", mock.Anything, int64(7), staff, "approve", "looks complete").
		Return(approved, nil)

	body, _ := json.Marshal(dto.ModerationRequest{Action: "approve", Reason: "looks complete"})
	req, _ := http.NewRequest("POST", "/materials/7/moderation", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.MaterialResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, models.StatusApproved, response.VerificationStatus)

	moderationSvc.AssertExpectations(t)
}

// Unknown actions never reach the workflow: binding rejects them first.
func TestModerate_UnknownActionFailsBinding(t *testing.T) {
	handler, _, _, moderationSvc := newMaterialHandler()
	router := setupRouter()
	router.POST("/materials/:material_id/moderation", handler.Moderate)

	body, _ := json.Marshal(map[string]string{"action": "publish"})
	req, _ := http.NewRequest("POST", "/materials/7/moderation", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	moderationSvc.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestModerate_NonVerifierForbidden(t *testing.T) {
	handler, _, _, moderationSvc := newMaterialHandler()
	router := setupRouter()
	user := &models.User{ID: "user-1"}
	router.POST("/materials/:material_id/moderation", asUser(user), handler.Moderate)

	moderationSvc.On("Apply", mock.Anything, int64(7), user, "reject", "").
		Return(nil, service.ErrNotVerifier)

	body, _ := json.Marshal(dto.ModerationRequest{Action: "reject"})
	req, _ := http.NewRequest("POST", "/materials/7/moderation", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestModerate_MissingMaterial(t *testing.T) {
	handler, _, _, moderationSvc := newMaterialHandler()
	router := setupRouter()
	staff := &models.User{ID: "staff-1", IsStaff: true}
	router.POST("/materials/:material_id/moderation", asUser(staff), handler.Moderate)

	moderationSvc.On("Apply", mock.Anything, int64(404), staff, "approve", "").
		Return(nil, gorm.ErrRecordNotFound)

	body, _ := json.Marshal(dto.ModerationRequest{Action: "approve"})
	req, _ := http.NewRequest("POST", "/materials/404/moderation", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestModerationQueue_PassesStatusAndDepartment(t *testing.T) {
	handler, _, _, moderationSvc := newMaterialHandler()
	router := setupRouter()
	staff := &models.User{ID: "staff-1", IsStaff: true}
	router.GET("/materials/moderation/queue", asUser(staff), handler.ModerationQueue)

	moderationSvc.On("Queue", mock.Anything, staff, "rejected", int64Ptr(3)).
		Return([]models.StudyMaterial{{ID: 7}}, nil)

	req, _ := http.NewRequest("GET", "/materials/moderation/queue?status=rejected&department=3", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.MaterialListResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, 1, response.Total)

	moderationSvc.AssertExpectations(t)
}

func TestModerationQueue_InvalidStatus(t *testing.T) {
	handler, _, _, moderationSvc := newMaterialHandler()
	router := setupRouter()
	staff := &models.User{ID: "staff-1", IsStaff: true}
	router.GET("/materials/moderation/queue", asUser(staff), handler.ModerationQueue)

	moderationSvc.On("Queue", mock.Anything, staff, "verified", (*int64)(nil)).
		Return(nil, service.ErrInvalidAction)

	req, _ := http.NewRequest("GET", "/materials/moderation/queue?status=verified", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadMaterial_Created(t *testing.T) {
	handler, materialSvc, _, _ := newMaterialHandler()
	router := setupRouter()
	user := &models.User{ID: "user-1"}
	router.POST("/materials", asUser(user), handler.Upload)

	materialSvc.On("Upload", mock.Anything, mock.AnythingOfType("*models.StudyMaterial"), user).
		Return(nil)

	body, _ := json.Marshal(dto.UploadMaterialRequest{
		DepartmentID: 1,
		Title:        "DSP Lab Manual",
		FileType:     "pdf",
		Semester:     4,
		Year:         2026,
	})
	req, _ := http.NewRequest("POST", "/materials", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response dto.MaterialResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "DSP Lab Manual", response.Title)
	assert.Equal(t, models.StatusPending, response.VerificationStatus)

	materialSvc.AssertExpectations(t)
}

func TestUploadMaterial_InvalidFileType(t *testing.T) {
	handler, materialSvc, _, _ := newMaterialHandler()
	router := setupRouter()
	user := &models.User{ID: "user-1"}
	router.POST("/materials", asUser(user), handler.Upload)

	body, _ := json.Marshal(map[string]any{
		"department_id": 1,
		"title":         "DSP Lab Manual",
		"file_type":     "docx",
		"semester":      4,
		"year":          2026,
	})
	req, _ := http.NewRequest("POST", "/materials", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	materialSvc.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}
