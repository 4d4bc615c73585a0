package user_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appuser "github.com/kelasfoto/kelasfoto/application/user"
	"github.com/kelasfoto/kelasfoto/cmd/config"
	"github.com/kelasfoto/kelasfoto/constant"
	catalogmocks "github.com/kelasfoto/kelasfoto/mocks/repository/catalog"
	redismocks "github.com/kelasfoto/kelasfoto/mocks/repository/redis"
	usermocks "github.com/kelasfoto/kelasfoto/mocks/repository/user"
	storagemocks "github.com/kelasfoto/kelasfoto/mocks/thirdparty/storage"
	"github.com/kelasfoto/kelasfoto/model"
	cerr "github.com/kelasfoto/kelasfoto/utils/errors"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func authConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret",
			JWTExpiration:  time.Hour,
			SessionExpTime: time.Hour,
		},
		Storage: config.StorageConfig{SignedURLTTL: time.Hour},
	}
}

func TestUserApp_Register(t *testing.T) {
	type fields struct {
		userRepo    *usermocks.UserRepository
		catalogRepo *catalogmocks.CatalogRepository
		redisRepo   *redismocks.Repository
		storage     *storagemocks.ObjectStorage
	}
	newFields := func(t *testing.T) fields {
		return fields{
			userRepo:    usermocks.NewUserRepository(t),
			catalogRepo: catalogmocks.NewCatalogRepository(t),
			redisRepo:   redismocks.NewRepository(t),
			storage:     storagemocks.NewObjectStorage(t),
		}
	}
	tests := []struct {
		name     string
		req      *model.RegisterRequest
		mockCall func(f fields)
		want     *model.RegisterResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: register new parent",
			req: &model.RegisterRequest{
				Name:     "Aina",
				Email:    "aina@example.com",
				Phone:    "0123456789",
				Password: "password123",
			},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "aina@example.com"}).Return(nil, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: "0123456789"}).Return(nil, nil).Once()
				f.userRepo.On("Create", mock.Anything, mock.MatchedBy(func(ent *model.UserEntity) bool {
					return ent.Name == "Aina" &&
						ent.Email == "aina@example.com" &&
						ent.Role == constant.RoleParent &&
						ent.PasswordHash != ""
				})).Return(&model.UserEntity{
					ID:    1,
					Name:  "Aina",
					Email: "aina@example.com",
					Role:  constant.RoleParent,
				}, nil).Once()
			},
			want: &model.RegisterResponse{Name: "Aina", Email: "aina@example.com"},
		},
		{
			name: "error: email already registered",
			req: &model.RegisterRequest{
				Name:     "Aina",
				Email:    "taken@example.com",
				Phone:    "0123456789",
				Password: "password123",
			},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "taken@example.com"}).Return(&model.UserEntity{ID: 2}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appuser.NewUserApp(authConfig(), f.userRepo, f.catalogRepo, f.redisRepo, f.storage)

			got, err := app.Register(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Register() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.Name != tt.want.Name || got.Email != tt.want.Email {
				t.Fatalf("Register() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUserApp_LoginAndValidateToken(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatal(err)
	}

	userRepo := usermocks.NewUserRepository(t)
	redisRepo := redismocks.NewRepository(t)

	userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "aina@example.com"}).Return(&model.UserEntity{
		ID:           9,
		Name:         "Aina",
		Email:        "aina@example.com",
		Role:         constant.RoleParent,
		PasswordHash: string(hashed),
	}, nil).Once()

	var sessionJTI string
	redisRepo.On("SetSession", mock.Anything, mock.MatchedBy(func(jti string) bool {
		sessionJTI = jti
		return jti != ""
	}), uint64(9), time.Hour).Return(nil).Once()

	app := appuser.NewUserApp(authConfig(), userRepo, catalogmocks.NewCatalogRepository(t), redisRepo, storagemocks.NewObjectStorage(t))

	res, err := app.Login(context.Background(), &model.LoginRequest{
		Identifier: "aina@example.com",
		Password:   "password123",
	})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if res.Token == "" {
		t.Fatal("Login() token should not be empty")
	}
	if res.Role != constant.RoleParent {
		t.Fatalf("Login() role = %q, want %q", res.Role, constant.RoleParent)
	}

	// The issued token must round-trip through validation with the session
	// still present.
	redisRepo.On("GetSession", mock.Anything, mock.MatchedBy(func(jti string) bool {
		return jti == sessionJTI
	})).Return(uint64(9), nil).Once()

	userID, role, err := app.ValidateToken(context.Background(), res.Token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if userID != 9 {
		t.Fatalf("ValidateToken() userID = %d, want 9", userID)
	}
	if role != constant.RoleParent {
		t.Fatalf("ValidateToken() role = %q, want %q", role, constant.RoleParent)
	}
}

func TestUserApp_Login_WrongPassword(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatal(err)
	}

	userRepo := usermocks.NewUserRepository(t)
	userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "aina@example.com"}).Return(&model.UserEntity{
		ID:           9,
		PasswordHash: string(hashed),
	}, nil).Once()

	app := appuser.NewUserApp(authConfig(), userRepo, catalogmocks.NewCatalogRepository(t), redismocks.NewRepository(t), storagemocks.NewObjectStorage(t))

	_, err = app.Login(context.Background(), &model.LoginRequest{
		Identifier: "aina@example.com",
		Password:   "wrong",
	})
	var ce cerr.CustomError
	if !errors.As(err, &ce) || ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrInvalidPassword] {
		t.Fatalf("Login() error = %v, want invalid password", err)
	}
}

func TestUserApp_ListDownloads(t *testing.T) {
	userRepo := usermocks.NewUserRepository(t)
	catalogRepo := catalogmocks.NewCatalogRepository(t)
	store := storagemocks.NewObjectStorage(t)

	userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 9}).Return(&model.UserEntity{
		ID: 9,
		DownloadImages: model.DownloadImages{
			{PhotoID: 5, PhotoName: "a.jpg", DownloadURL: "https://signed.example.com/stale"},
			{PhotoID: 6, PhotoName: "b.jpg", DownloadURL: "https://signed.example.com/orphan"},
		},
	}, nil).Once()

	// photo 6 was deleted from the catalog; its stored URL is kept as-is
	catalogRepo.On("GetPhotosByIDs", mock.Anything, []uint64{5, 6}).Return([]model.PhotoEntity{
		{ID: 5, ObjectKey: "originals/4/a.jpg"},
	}, nil).Once()

	store.On("SignedURL", mock.Anything, "originals/4/a.jpg", time.Hour).Return("https://signed.example.com/fresh", nil).Once()

	app := appuser.NewUserApp(authConfig(), userRepo, catalogRepo, redismocks.NewRepository(t), store)

	res, err := app.ListDownloads(context.Background(), 9)
	if err != nil {
		t.Fatalf("ListDownloads() error = %v", err)
	}
	if len(res.Downloads) != 2 {
		t.Fatalf("ListDownloads() len = %d, want 2", len(res.Downloads))
	}
	if res.Downloads[0].DownloadURL != "https://signed.example.com/fresh" {
		t.Fatalf("ListDownloads() photo 5 url = %q, want fresh signed url", res.Downloads[0].DownloadURL)
	}
	if res.Downloads[1].DownloadURL != "https://signed.example.com/orphan" {
		t.Fatalf("ListDownloads() photo 6 url = %q, want stored url", res.Downloads[1].DownloadURL)
	}
}
