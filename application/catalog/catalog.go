package catalog

import (
	"bytes"
	"context"
	"crypto/subtle"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/kelasfoto/kelasfoto/cmd/config"
	"github.com/kelasfoto/kelasfoto/constant"
	"github.com/kelasfoto/kelasfoto/model"
	catalogrepo "github.com/kelasfoto/kelasfoto/repository/catalog"
	redisrepo "github.com/kelasfoto/kelasfoto/repository/redis"
	"github.com/kelasfoto/kelasfoto/thirdparty/storage"
	"github.com/kelasfoto/kelasfoto/utils/errors"
	"github.com/kelasfoto/kelasfoto/utils/logger"
	"go.uber.org/zap"
)

type CatalogApp interface {
	CreateInstitution(ctx context.Context, req *model.CreateInstitutionRequest) (uint64, error)
	ListInstitutions(ctx context.Context, includeDisabled bool) ([]model.InstitutionEntity, error)
	SetInstitutionEnabled(ctx context.Context, id uint64, enabled bool) error

	CreateAcademicYear(ctx context.Context, req *model.CreateAcademicYearRequest) (uint64, error)
	ListAcademicYears(ctx context.Context, institutionID uint64, includeDisabled bool) ([]model.AcademicYearEntity, error)
	SetAcademicYearEnabled(ctx context.Context, id uint64, enabled bool) error

	CreateCourse(ctx context.Context, req *model.CreateCourseRequest) (uint64, error)
	ListCourses(ctx context.Context, academicYearID uint64) ([]model.CourseEntity, error)
	SetCourseEnabled(ctx context.Context, id uint64, enabled bool) error
	VerifyCourseAccess(ctx context.Context, userID, courseID uint64, accessCode string) error

	CreateAlbum(ctx context.Context, req *model.CreateAlbumRequest) (uint64, error)
	ListAlbums(ctx context.Context, userID uint64, role string, courseID uint64) ([]model.AlbumEntity, error)
	SetAlbumEnabled(ctx context.Context, id uint64, enabled bool) error

	UploadPhoto(ctx context.Context, albumID uint64, filename, contentType string, body []byte) (uint64, error)
	ListPhotos(ctx context.Context, userID uint64, role string, albumID uint64) ([]model.PhotoView, error)
	DeletePhoto(ctx context.Context, photoID uint64) error

	CreateProductType(ctx context.Context, req *model.CreateProductTypeRequest) (uint64, error)
	ListProductTypes(ctx context.Context) ([]model.ProductTypeEntity, error)
	CreateVariation(ctx context.Context, req *model.CreateVariationRequest) (uint64, error)
	ListVariations(ctx context.Context, productTypeID uint64) ([]model.VariationEntity, error)

	CreatePackage(ctx context.Context, req *model.CreatePackageRequest) (uint64, error)
	ListPackages(ctx context.Context, institutionID uint64, includeDisabled bool) ([]model.PackageEntity, error)
	SetPackageEnabled(ctx context.Context, id uint64, enabled bool) error
}

type catalogAppImpl struct {
	config      *config.Config
	catalogRepo catalogrepo.CatalogRepository
	redisRepo   redisrepo.Repository
	storage     storage.ObjectStorage
}

func NewCatalogApp(config *config.Config, catalogRepo catalogrepo.CatalogRepository, redisRepo redisrepo.Repository, store storage.ObjectStorage) CatalogApp {
	return &catalogAppImpl{config: config, catalogRepo: catalogRepo, redisRepo: redisRepo, storage: store}
}

func (s *catalogAppImpl) CreateInstitution(ctx context.Context, req *model.CreateInstitutionRequest) (uint64, error) {
	id, err := s.catalogRepo.CreateInstitution(ctx, &model.InstitutionEntity{
		Name:    req.Name,
		Address: req.Address,
		Enabled: true,
	})
	if err != nil {
		logger.Error("[CreateInstitution] insert", zap.String("error", err.Error()))
		return 0, errors.FromDBError(err)
	}
	return id, nil
}

func (s *catalogAppImpl) ListInstitutions(ctx context.Context, includeDisabled bool) ([]model.InstitutionEntity, error) {
	out, err := s.catalogRepo.ListInstitutions(ctx, !includeDisabled)
	if err != nil {
		logger.Error("[ListInstitutions] select", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return out, nil
}

func (s *catalogAppImpl) SetInstitutionEnabled(ctx context.Context, id uint64, enabled bool) error {
	if err := s.catalogRepo.SetInstitutionEnabled(ctx, id, enabled); err != nil {
		logger.Error("[SetInstitutionEnabled] update", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *catalogAppImpl) CreateAcademicYear(ctx context.Context, req *model.CreateAcademicYearRequest) (uint64, error) {
	id, err := s.catalogRepo.CreateAcademicYear(ctx, &model.AcademicYearEntity{
		InstitutionID: req.InstitutionID,
		Name:          req.Name,
		Enabled:       true,
	})
	if err != nil {
		logger.Error("[CreateAcademicYear] insert", zap.String("error", err.Error()))
		return 0, errors.FromDBError(err)
	}
	return id, nil
}

func (s *catalogAppImpl) ListAcademicYears(ctx context.Context, institutionID uint64, includeDisabled bool) ([]model.AcademicYearEntity, error) {
	out, err := s.catalogRepo.ListAcademicYears(ctx, institutionID, !includeDisabled)
	if err != nil {
		logger.Error("[ListAcademicYears] select", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return out, nil
}

func (s *catalogAppImpl) SetAcademicYearEnabled(ctx context.Context, id uint64, enabled bool) error {
	if err := s.catalogRepo.SetAcademicYearEnabled(ctx, id, enabled); err != nil {
		logger.Error("[SetAcademicYearEnabled] update", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *catalogAppImpl) CreateCourse(ctx context.Context, req *model.CreateCourseRequest) (uint64, error) {
	id, err := s.catalogRepo.CreateCourse(ctx, &model.CourseEntity{
		InstitutionID:  req.InstitutionID,
		AcademicYearID: req.AcademicYearID,
		Name:           req.Name,
		AccessCode:     req.AccessCode,
		ValidFrom:      req.ValidFrom,
		ValidUntil:     req.ValidUntil,
		Enabled:        true,
	})
	if err != nil {
		logger.Error("[CreateCourse] insert", zap.String("error", err.Error()))
		return 0, errors.FromDBError(err)
	}
	return id, nil
}

func (s *catalogAppImpl) ListCourses(ctx context.Context, academicYearID uint64) ([]model.CourseEntity, error) {
	out, err := s.catalogRepo.ListCourses(ctx, academicYearID)
	if err != nil {
		logger.Error("[ListCourses] select", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return out, nil
}

func (s *catalogAppImpl) SetCourseEnabled(ctx context.Context, id uint64, enabled bool) error {
	if err := s.catalogRepo.SetCourseEnabled(ctx, id, enabled); err != nil {
		logger.Error("[SetCourseEnabled] update", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// VerifyCourseAccess unlocks a course for a parent: the course must be
// enabled, inside its validity window, belong to an enabled academic year and
// institution, and the access code must match. The unlock is recorded in
// redis with a TTL.
func (s *catalogAppImpl) VerifyCourseAccess(ctx context.Context, userID, courseID uint64, accessCode string) error {
	course, err := s.catalogRepo.GetCourse(ctx, courseID)
	if err != nil {
		logger.Error("[VerifyCourseAccess] get course", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if course == nil || !course.Enabled {
		return errors.SetCustomError(constant.ErrInvalidCourse)
	}

	now := time.Now()
	if now.Before(course.ValidFrom) || now.After(course.ValidUntil) {
		return errors.SetCustomError(constant.ErrCourseNotActive)
	}

	for _, parent := range []struct {
		count   func(context.Context, []uint64) (int64, error)
		id      uint64
		errType constant.ErrorType
	}{
		{s.catalogRepo.CountEnabledAcademicYears, course.AcademicYearID, constant.ErrInvalidAcademicYear},
		{s.catalogRepo.CountEnabledInstitutions, course.InstitutionID, constant.ErrInvalidInstitution},
	} {
		count, err := parent.count(ctx, []uint64{parent.id})
		if err != nil {
			logger.Error("[VerifyCourseAccess] count parent", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if count == 0 {
			return errors.SetCustomError(parent.errType)
		}
	}

	if subtle.ConstantTimeCompare([]byte(course.AccessCode), []byte(accessCode)) != 1 {
		return errors.SetCustomError(constant.ErrInvalidAccessCode)
	}

	if err := s.redisRepo.SetWithTTL(ctx, unlockKey(userID, courseID), "1", s.config.Auth.CourseUnlockTTL); err != nil {
		logger.Error("[VerifyCourseAccess] set unlock", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *catalogAppImpl) courseUnlocked(ctx context.Context, userID, courseID uint64) bool {
	val, err := s.redisRepo.Get(ctx, unlockKey(userID, courseID))
	if err != nil {
		return false
	}
	return val == "1"
}

func unlockKey(userID, courseID uint64) string {
	return fmt.Sprintf("unlock:%d:%d", userID, courseID)
}

func (s *catalogAppImpl) CreateAlbum(ctx context.Context, req *model.CreateAlbumRequest) (uint64, error) {
	id, err := s.catalogRepo.CreateAlbum(ctx, &model.AlbumEntity{
		CourseID:      req.CourseID,
		ProductTypeID: req.ProductTypeID,
		Name:          req.Name,
		Enabled:       true,
	})
	if err != nil {
		logger.Error("[CreateAlbum] insert", zap.String("error", err.Error()))
		return 0, errors.FromDBError(err)
	}
	return id, nil
}

func (s *catalogAppImpl) ListAlbums(ctx context.Context, userID uint64, role string, courseID uint64) ([]model.AlbumEntity, error) {
	if role != constant.RoleStaff && !s.courseUnlocked(ctx, userID, courseID) {
		return nil, errors.SetCustomError(constant.ErrCourseLocked)
	}
	out, err := s.catalogRepo.ListAlbums(ctx, courseID, role != constant.RoleStaff)
	if err != nil {
		logger.Error("[ListAlbums] select", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return out, nil
}

func (s *catalogAppImpl) SetAlbumEnabled(ctx context.Context, id uint64, enabled bool) error {
	if err := s.catalogRepo.SetAlbumEnabled(ctx, id, enabled); err != nil {
		logger.Error("[SetAlbumEnabled] update", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// UploadPhoto stores the original privately and a public watermarked preview.
// Watermarking itself happens in the storage pipeline; this service only owns
// the keys.
func (s *catalogAppImpl) UploadPhoto(ctx context.Context, albumID uint64, filename, contentType string, body []byte) (uint64, error) {
	album, err := s.catalogRepo.GetAlbum(ctx, albumID)
	if err != nil {
		logger.Error("[UploadPhoto] get album", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	if album == nil {
		return 0, errors.SetCustomError(constant.ErrInvalidAlbum)
	}

	photoUUID, _ := uuid.NewRandom()
	base := photoUUID.String() + path.Ext(filename)
	originalKey := fmt.Sprintf("originals/%d/%s", albumID, base)
	previewKey := fmt.Sprintf("previews/%d/%s", albumID, base)

	if _, err := s.storage.Upload(ctx, originalKey, bytes.NewReader(body), contentType, false); err != nil {
		logger.Error("[UploadPhoto] upload original", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	if _, err := s.storage.Upload(ctx, previewKey, bytes.NewReader(body), contentType, true); err != nil {
		logger.Error("[UploadPhoto] upload preview", zap.String("error", err.Error()))
		// best effort cleanup of the original before failing
		if delErr := s.storage.Delete(ctx, []string{originalKey}); delErr != nil {
			logger.Error("[UploadPhoto] cleanup original", zap.String("error", delErr.Error()))
		}
		return 0, errors.SetCustomError(constant.ErrInternal)
	}

	id, err := s.catalogRepo.CreatePhoto(ctx, &model.PhotoEntity{
		AlbumID:    albumID,
		Name:       filename,
		ObjectKey:  originalKey,
		PreviewKey: previewKey,
	})
	if err != nil {
		logger.Error("[UploadPhoto] insert photo", zap.String("error", err.Error()))
		if delErr := s.storage.Delete(ctx, []string{originalKey, previewKey}); delErr != nil {
			logger.Error("[UploadPhoto] cleanup objects", zap.String("error", delErr.Error()))
		}
		return 0, errors.FromDBError(err)
	}
	return id, nil
}

func (s *catalogAppImpl) ListPhotos(ctx context.Context, userID uint64, role string, albumID uint64) ([]model.PhotoView, error) {
	album, err := s.catalogRepo.GetAlbum(ctx, albumID)
	if err != nil {
		logger.Error("[ListPhotos] get album", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if album == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidAlbum)
	}
	if role != constant.RoleStaff {
		if !album.Enabled {
			return nil, errors.SetCustomError(constant.ErrInvalidAlbum)
		}
		if !s.courseUnlocked(ctx, userID, album.CourseID) {
			return nil, errors.SetCustomError(constant.ErrCourseLocked)
		}
	}

	photos, err := s.catalogRepo.ListPhotos(ctx, albumID)
	if err != nil {
		logger.Error("[ListPhotos] select", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	views := make([]model.PhotoView, 0, len(photos))
	for _, photo := range photos {
		views = append(views, model.PhotoView{
			ID:         photo.ID,
			AlbumID:    photo.AlbumID,
			Name:       photo.Name,
			PreviewURL: s.config.Storage.PublicBaseURL + "/" + photo.PreviewKey,
		})
	}
	return views, nil
}

func (s *catalogAppImpl) DeletePhoto(ctx context.Context, photoID uint64) error {
	photo, err := s.catalogRepo.DeletePhoto(ctx, photoID)
	if err != nil {
		logger.Error("[DeletePhoto] delete row", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if photo == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if err := s.storage.Delete(ctx, []string{photo.ObjectKey, photo.PreviewKey}); err != nil {
		// DB row is gone already; orphaned objects are logged, not fatal.
		logger.Error("[DeletePhoto] delete objects", zap.String("error", err.Error()), zap.Uint64("photo_id", photoID))
	}
	return nil
}

func (s *catalogAppImpl) CreateProductType(ctx context.Context, req *model.CreateProductTypeRequest) (uint64, error) {
	id, err := s.catalogRepo.CreateProductType(ctx, &model.ProductTypeEntity{
		Name:      req.Name,
		BasePrice: req.BasePrice,
	})
	if err != nil {
		logger.Error("[CreateProductType] insert", zap.String("error", err.Error()))
		return 0, errors.FromDBError(err)
	}
	return id, nil
}

func (s *catalogAppImpl) ListProductTypes(ctx context.Context) ([]model.ProductTypeEntity, error) {
	out, err := s.catalogRepo.ListProductTypes(ctx)
	if err != nil {
		logger.Error("[ListProductTypes] select", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return out, nil
}

func (s *catalogAppImpl) CreateVariation(ctx context.Context, req *model.CreateVariationRequest) (uint64, error) {
	id, err := s.catalogRepo.CreateVariation(ctx, &model.VariationEntity{
		ProductTypeID: req.ProductTypeID,
		Name:          req.Name,
		Price:         req.Price,
		Downloadable:  req.Downloadable,
	})
	if err != nil {
		logger.Error("[CreateVariation] insert", zap.String("error", err.Error()))
		return 0, errors.FromDBError(err)
	}
	return id, nil
}

func (s *catalogAppImpl) ListVariations(ctx context.Context, productTypeID uint64) ([]model.VariationEntity, error) {
	out, err := s.catalogRepo.ListVariations(ctx, productTypeID)
	if err != nil {
		logger.Error("[ListVariations] select", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return out, nil
}

func (s *catalogAppImpl) CreatePackage(ctx context.Context, req *model.CreatePackageRequest) (uint64, error) {
	id, err := s.catalogRepo.CreatePackage(ctx, &model.PackageEntity{
		InstitutionID:  req.InstitutionID,
		Name:           req.Name,
		Price:          req.Price,
		IsDownloadable: req.IsDownloadable,
		Enabled:        true,
	})
	if err != nil {
		logger.Error("[CreatePackage] insert", zap.String("error", err.Error()))
		return 0, errors.FromDBError(err)
	}
	return id, nil
}

func (s *catalogAppImpl) ListPackages(ctx context.Context, institutionID uint64, includeDisabled bool) ([]model.PackageEntity, error) {
	out, err := s.catalogRepo.ListPackages(ctx, institutionID, !includeDisabled)
	if err != nil {
		logger.Error("[ListPackages] select", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return out, nil
}

func (s *catalogAppImpl) SetPackageEnabled(ctx context.Context, id uint64, enabled bool) error {
	if err := s.catalogRepo.SetPackageEnabled(ctx, id, enabled); err != nil {
		logger.Error("[SetPackageEnabled] update", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
