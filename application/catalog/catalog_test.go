package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appcatalog "github.com/kelasfoto/kelasfoto/application/catalog"
	"github.com/kelasfoto/kelasfoto/cmd/config"
	"github.com/kelasfoto/kelasfoto/constant"
	catalogmocks "github.com/kelasfoto/kelasfoto/mocks/repository/catalog"
	redismocks "github.com/kelasfoto/kelasfoto/mocks/repository/redis"
	storagemocks "github.com/kelasfoto/kelasfoto/mocks/thirdparty/storage"
	"github.com/kelasfoto/kelasfoto/model"
	cerr "github.com/kelasfoto/kelasfoto/utils/errors"
	"github.com/stretchr/testify/mock"
)

func catalogConfig() *config.Config {
	return &config.Config{
		Auth:    config.AuthConfig{CourseUnlockTTL: 24 * time.Hour},
		Storage: config.StorageConfig{PublicBaseURL: "https://cdn.example.com"},
	}
}

func activeCourse() *model.CourseEntity {
	return &model.CourseEntity{
		ID:             3,
		InstitutionID:  1,
		AcademicYearID: 2,
		Name:           "5 Amanah",
		AccessCode:     "FOTO2026",
		ValidFrom:      time.Now().Add(-24 * time.Hour),
		ValidUntil:     time.Now().Add(24 * time.Hour),
		Enabled:        true,
	}
}

func TestCatalogApp_VerifyCourseAccess(t *testing.T) {
	type fields struct {
		catalogRepo *catalogmocks.CatalogRepository
		redisRepo   *redismocks.Repository
	}
	newFields := func(t *testing.T) fields {
		return fields{
			catalogRepo: catalogmocks.NewCatalogRepository(t),
			redisRepo:   redismocks.NewRepository(t),
		}
	}
	tests := []struct {
		name       string
		accessCode string
		mockCall   func(f fields)
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name:       "success: correct code unlocks course",
			accessCode: "FOTO2026",
			mockCall: func(f fields) {
				f.catalogRepo.On("GetCourse", mock.Anything, uint64(3)).Return(activeCourse(), nil).Once()
				f.catalogRepo.On("CountEnabledAcademicYears", mock.Anything, []uint64{2}).Return(int64(1), nil).Once()
				f.catalogRepo.On("CountEnabledInstitutions", mock.Anything, []uint64{1}).Return(int64(1), nil).Once()
				f.redisRepo.On("SetWithTTL", mock.Anything, "unlock:9:3", "1", 24*time.Hour).Return(nil).Once()
			},
		},
		{
			name:       "error: wrong access code",
			accessCode: "WRONG",
			mockCall: func(f fields) {
				f.catalogRepo.On("GetCourse", mock.Anything, uint64(3)).Return(activeCourse(), nil).Once()
				f.catalogRepo.On("CountEnabledAcademicYears", mock.Anything, []uint64{2}).Return(int64(1), nil).Once()
				f.catalogRepo.On("CountEnabledInstitutions", mock.Anything, []uint64{1}).Return(int64(1), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidAccessCode,
		},
		{
			name:       "error: course outside validity window",
			accessCode: "FOTO2026",
			mockCall: func(f fields) {
				course := activeCourse()
				course.ValidUntil = time.Now().Add(-time.Hour)
				f.catalogRepo.On("GetCourse", mock.Anything, uint64(3)).Return(course, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCourseNotActive,
		},
		{
			name:       "error: course disabled",
			accessCode: "FOTO2026",
			mockCall: func(f fields) {
				course := activeCourse()
				course.Enabled = false
				f.catalogRepo.On("GetCourse", mock.Anything, uint64(3)).Return(course, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidCourse,
		},
		{
			name:       "error: parent institution disabled",
			accessCode: "FOTO2026",
			mockCall: func(f fields) {
				f.catalogRepo.On("GetCourse", mock.Anything, uint64(3)).Return(activeCourse(), nil).Once()
				f.catalogRepo.On("CountEnabledAcademicYears", mock.Anything, []uint64{2}).Return(int64(1), nil).Once()
				f.catalogRepo.On("CountEnabledInstitutions", mock.Anything, []uint64{1}).Return(int64(0), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidInstitution,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appcatalog.NewCatalogApp(catalogConfig(), f.catalogRepo, f.redisRepo, storagemocks.NewObjectStorage(t))

			err := app.VerifyCourseAccess(context.Background(), 9, 3, tt.accessCode)
			if (err != nil) != tt.wantErr {
				t.Fatalf("VerifyCourseAccess() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}

func TestCatalogApp_ListPhotos(t *testing.T) {
	album := &model.AlbumEntity{ID: 4, CourseID: 3, ProductTypeID: 6, Name: "Portraits", Enabled: true}

	t.Run("locked course rejects parent", func(t *testing.T) {
		catalogRepo := catalogmocks.NewCatalogRepository(t)
		redisRepo := redismocks.NewRepository(t)

		catalogRepo.On("GetAlbum", mock.Anything, uint64(4)).Return(album, nil).Once()
		redisRepo.On("Get", mock.Anything, "unlock:9:3").Return("", errors.New("redis: nil")).Once()

		app := appcatalog.NewCatalogApp(catalogConfig(), catalogRepo, redisRepo, storagemocks.NewObjectStorage(t))

		_, err := app.ListPhotos(context.Background(), 9, constant.RoleParent, 4)
		var ce cerr.CustomError
		if !errors.As(err, &ce) || ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrCourseLocked] {
			t.Fatalf("ListPhotos() error = %v, want course locked", err)
		}
	})

	t.Run("unlocked course returns preview urls", func(t *testing.T) {
		catalogRepo := catalogmocks.NewCatalogRepository(t)
		redisRepo := redismocks.NewRepository(t)

		catalogRepo.On("GetAlbum", mock.Anything, uint64(4)).Return(album, nil).Once()
		redisRepo.On("Get", mock.Anything, "unlock:9:3").Return("1", nil).Once()
		catalogRepo.On("ListPhotos", mock.Anything, uint64(4)).Return([]model.PhotoEntity{
			{ID: 5, AlbumID: 4, Name: "a.jpg", ObjectKey: "originals/4/a.jpg", PreviewKey: "previews/4/a.jpg"},
		}, nil).Once()

		app := appcatalog.NewCatalogApp(catalogConfig(), catalogRepo, redisRepo, storagemocks.NewObjectStorage(t))

		views, err := app.ListPhotos(context.Background(), 9, constant.RoleParent, 4)
		if err != nil {
			t.Fatalf("ListPhotos() error = %v", err)
		}
		if len(views) != 1 {
			t.Fatalf("ListPhotos() len = %d, want 1", len(views))
		}
		if views[0].PreviewURL != "https://cdn.example.com/previews/4/a.jpg" {
			t.Fatalf("ListPhotos() preview url = %q", views[0].PreviewURL)
		}
	})

	t.Run("staff bypasses unlock", func(t *testing.T) {
		catalogRepo := catalogmocks.NewCatalogRepository(t)

		catalogRepo.On("GetAlbum", mock.Anything, uint64(4)).Return(album, nil).Once()
		catalogRepo.On("ListPhotos", mock.Anything, uint64(4)).Return([]model.PhotoEntity{}, nil).Once()

		app := appcatalog.NewCatalogApp(catalogConfig(), catalogRepo, redismocks.NewRepository(t), storagemocks.NewObjectStorage(t))

		if _, err := app.ListPhotos(context.Background(), 1, constant.RoleStaff, 4); err != nil {
			t.Fatalf("ListPhotos() error = %v", err)
		}
	})
}
