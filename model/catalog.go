package model

import "time"

// InstitutionEntity is a school tenant owning academic years and courses.
type InstitutionEntity struct {
	ID        uint64     `db:"id" json:"id"`
	Name      string     `db:"name" json:"name"`
	Address   string     `db:"address" json:"address"`
	Enabled   bool       `db:"enabled" json:"enabled"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

type AcademicYearEntity struct {
	ID            uint64     `db:"id" json:"id"`
	InstitutionID uint64     `db:"institution_id" json:"institution_id"`
	Name          string     `db:"name" json:"name"`
	Enabled       bool       `db:"enabled" json:"enabled"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// CourseEntity is a class cohort, unlocked by an access code within its
// validity window.
type CourseEntity struct {
	ID             uint64     `db:"id" json:"id"`
	InstitutionID  uint64     `db:"institution_id" json:"institution_id"`
	AcademicYearID uint64     `db:"academic_year_id" json:"academic_year_id"`
	Name           string     `db:"name" json:"name"`
	AccessCode     string     `db:"access_code" json:"-"`
	ValidFrom      time.Time  `db:"valid_from" json:"valid_from"`
	ValidUntil     time.Time  `db:"valid_until" json:"valid_until"`
	Enabled        bool       `db:"enabled" json:"enabled"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

type AlbumEntity struct {
	ID            uint64     `db:"id" json:"id"`
	CourseID      uint64     `db:"course_id" json:"course_id"`
	ProductTypeID uint64     `db:"product_type_id" json:"product_type_id"`
	Name          string     `db:"name" json:"name"`
	Enabled       bool       `db:"enabled" json:"enabled"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// PhotoEntity stores object-storage keys only; URLs are signed on read.
type PhotoEntity struct {
	ID         uint64    `db:"id" json:"id"`
	AlbumID    uint64    `db:"album_id" json:"album_id"`
	Name       string    `db:"name" json:"name"`
	ObjectKey  string    `db:"object_key" json:"-"`
	PreviewKey string    `db:"preview_key" json:"-"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

type ProductTypeEntity struct {
	ID        uint64    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	BasePrice int64     `db:"base_price" json:"base_price"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type VariationEntity struct {
	ID            uint64 `db:"id" json:"id"`
	ProductTypeID uint64 `db:"product_type_id" json:"product_type_id"`
	Name          string `db:"name" json:"name"`
	Price         int64  `db:"price" json:"price"`
	Downloadable  bool   `db:"downloadable" json:"downloadable"`
}

// PackageEntity bundles albums sold as one unit at a fixed price.
type PackageEntity struct {
	ID             uint64     `db:"id" json:"id"`
	InstitutionID  uint64     `db:"institution_id" json:"institution_id"`
	Name           string     `db:"name" json:"name"`
	Price          int64      `db:"price" json:"price"`
	IsDownloadable bool       `db:"is_downloadable" json:"is_downloadable"`
	Enabled        bool       `db:"enabled" json:"enabled"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

type CreateInstitutionRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address"`
}

type CreateAcademicYearRequest struct {
	InstitutionID uint64 `json:"institution_id" validate:"required"`
	Name          string `json:"name" validate:"required"`
}

type CreateCourseRequest struct {
	InstitutionID  uint64    `json:"institution_id" validate:"required"`
	AcademicYearID uint64    `json:"academic_year_id" validate:"required"`
	Name           string    `json:"name" validate:"required"`
	AccessCode     string    `json:"access_code" validate:"required,min=4"`
	ValidFrom      time.Time `json:"valid_from" validate:"required"`
	ValidUntil     time.Time `json:"valid_until" validate:"required,gtfield=ValidFrom"`
}

type CreateAlbumRequest struct {
	CourseID      uint64 `json:"course_id" validate:"required"`
	ProductTypeID uint64 `json:"product_type_id" validate:"required"`
	Name          string `json:"name" validate:"required"`
}

type CreateProductTypeRequest struct {
	Name      string `json:"name" validate:"required"`
	BasePrice int64  `json:"base_price" validate:"gte=0"`
}

type CreateVariationRequest struct {
	ProductTypeID uint64 `json:"product_type_id" validate:"required"`
	Name          string `json:"name" validate:"required"`
	Price         int64  `json:"price" validate:"gte=0"`
	Downloadable  bool   `json:"downloadable"`
}

type CreatePackageRequest struct {
	InstitutionID  uint64 `json:"institution_id" validate:"required"`
	Name           string `json:"name" validate:"required"`
	Price          int64  `json:"price" validate:"gte=0"`
	IsDownloadable bool   `json:"is_downloadable"`
}

type SetEnabledRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

type VerifyCourseAccessRequest struct {
	AccessCode string `json:"access_code" validate:"required"`
}

// PhotoView is the parent-facing listing entry with a signed preview URL.
type PhotoView struct {
	ID         uint64 `json:"id"`
	AlbumID    uint64 `json:"album_id"`
	Name       string `json:"name"`
	PreviewURL string `json:"preview_url"`
}
