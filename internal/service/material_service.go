package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"campushub/internal/config"
	"campushub/internal/dto"
	"campushub/internal/models"
	"campushub/internal/repository"

	"gorm.io/gorm"
)

var ErrMaterialNotFound = errors.New("material not found")

const homeRecentLimit = 5

// MaterialService covers upload, visibility-filtered reads, and the
// view/download counters.
type MaterialService interface {
	Upload(ctx context.Context, material *models.StudyMaterial, uploader *models.User) error
	List(ctx context.Context, filters dto.MaterialFilters, viewer *models.User) ([]models.StudyMaterial, error)

	// Get increments views_count, touches the viewer's recent-view row
	// when authenticated, and reports whether the viewer favorited it.
	Get(ctx context.Context, id int64, viewer *models.User) (*models.StudyMaterial, bool, error)

	// Download increments downloads_count and returns the redirect
	// target: the stored link verbatim when it is already a URL, else a
	// drive viewer URL built from the stored id. Empty when no file is
	// attached.
	Download(ctx context.Context, id int64, viewer *models.User) (*models.StudyMaterial, string, error)

	Recent(ctx context.Context, viewer *models.User) ([]models.StudyMaterial, error)
}

type materialService struct {
	materialRepo   repository.MaterialRepository
	departmentRepo repository.DepartmentRepository
	auditRepo      repository.AuditRepository
	favoriteRepo   repository.FavoriteRepository
	recentViewRepo repository.RecentViewRepository
	search         SearchService
	access         AccessService
	driveViewerURL string
}

func NewMaterialService(
	materialRepo repository.MaterialRepository,
	departmentRepo repository.DepartmentRepository,
	auditRepo repository.AuditRepository,
	favoriteRepo repository.FavoriteRepository,
	recentViewRepo repository.RecentViewRepository,
	search SearchService,
	access AccessService,
	cfg *config.Config,
) MaterialService {
	return &materialService{
		materialRepo:   materialRepo,
		departmentRepo: departmentRepo,
		auditRepo:      auditRepo,
		favoriteRepo:   favoriteRepo,
		recentViewRepo: recentViewRepo,
		search:         search,
		access:         access,
		driveViewerURL: cfg.DriveViewerURL,
	}
}

// Upload stores a new pending material and appends the initial audit row.
func (s *materialService) Upload(ctx context.Context, material *models.StudyMaterial, uploader *models.User) error {
	if uploader == nil {
		return ErrUnauthenticated
	}
	if _, err := s.departmentRepo.GetByID(ctx, material.DepartmentID); err != nil {
		return fmt.Errorf("department lookup: %w", err)
	}

	material.UploaderUserID = uploader.ID
	material.VerificationStatus = models.StatusPending
	if err := s.materialRepo.Create(ctx, material); err != nil {
		return err
	}

	reason := "Initial upload"
	audit := &models.UploadAudit{
		MaterialID: material.ID,
		UploaderID: uploader.ID,
		Action:     models.AuditUpload,
		Reason:     &reason,
		Timestamp:  time.Now(),
	}
	return s.auditRepo.Create(ctx, audit)
}

// List applies the typed filters and the approved-only visibility rule,
// and logs the query when at least one filter is applied.
func (s *materialService) List(ctx context.Context, filters dto.MaterialFilters, viewer *models.User) ([]models.StudyMaterial, error) {
	departmentCode := ""
	if filters.DepartmentID != nil {
		dept, err := s.departmentRepo.GetByID(ctx, *filters.DepartmentID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			// Unknown department ids are dropped, matching the lenient
			// filtering policy for malformed values.
			filters.DepartmentID = nil
		} else {
			departmentCode = dept.ShortCode
		}
	}

	approvedOnly := !s.access.CanSeeUnapproved(viewer)
	list, err := s.materialRepo.List(ctx, filters, approvedOnly)
	if err != nil {
		return nil, err
	}

	if !filters.Empty() {
		if err := s.search.LogSearch(ctx, filters, departmentCode, viewer); err != nil {
			return nil, err
		}
	}

	return list, nil
}

func (s *materialService) Get(ctx context.Context, id int64, viewer *models.User) (*models.StudyMaterial, bool, error) {
	material, err := s.visibleMaterial(ctx, id, viewer)
	if err != nil {
		return nil, false, err
	}

	if err := s.materialRepo.IncrementViews(ctx, id); err != nil {
		return nil, false, err
	}
	material.ViewsCount++

	isFavorite := false
	if viewer != nil {
		isFavorite, err = s.favoriteRepo.Exists(ctx, viewer.ID, id)
		if err != nil {
			return nil, false, err
		}
		if err := s.recentViewRepo.Touch(ctx, viewer.ID, id); err != nil {
			return nil, false, err
		}
	}

	return material, isFavorite, nil
}

func (s *materialService) Download(ctx context.Context, id int64, viewer *models.User) (*models.StudyMaterial, string, error) {
	material, err := s.visibleMaterial(ctx, id, viewer)
	if err != nil {
		return nil, "", err
	}

	if err := s.materialRepo.IncrementDownloads(ctx, id); err != nil {
		return nil, "", err
	}
	material.DownloadsCount++

	return material, s.redirectTarget(material), nil
}

func (s *materialService) Recent(ctx context.Context, viewer *models.User) ([]models.StudyMaterial, error) {
	approvedOnly := !s.access.CanSeeUnapproved(viewer)
	return s.materialRepo.Recent(ctx, approvedOnly, homeRecentLimit)
}

// visibleMaterial hides unapproved materials from callers without the
// staff/superuser visibility privilege.
func (s *materialService) visibleMaterial(ctx context.Context, id int64, viewer *models.User) (*models.StudyMaterial, error) {
	material, err := s.materialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if material.VerificationStatus != models.StatusApproved && !s.access.CanSeeUnapproved(viewer) {
		return nil, gorm.ErrRecordNotFound
	}
	return material, nil
}

func (s *materialService) redirectTarget(material *models.StudyMaterial) string {
	if material.FileDriveID == nil || *material.FileDriveID == "" {
		return ""
	}
	if strings.HasPrefix(*material.FileDriveID, "http") {
		return *material.FileDriveID
	}
	return fmt.Sprintf(s.driveViewerURL, *material.FileDriveID)
}
