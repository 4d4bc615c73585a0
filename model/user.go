package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DownloadImage is one download entitlement a user holds for a photo.
type DownloadImage struct {
	PhotoID     uint64 `json:"photo_id"`
	PhotoURL    string `json:"photo_url"`
	PhotoName   string `json:"photo_name"`
	DownloadURL string `json:"download_url"`
}

// DownloadImages is the append-only entitlement list stored as a JSON column
// on the user row, unique by photo id.
type DownloadImages []DownloadImage

func (d DownloadImages) Value() (driver.Value, error) {
	if d == nil {
		return json.Marshal(DownloadImages{})
	}
	return json.Marshal(d)
}

func (d *DownloadImages) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	case nil:
		*d = nil
		return nil
	}
	return fmt.Errorf("unsupported download_images column type %T", src)
}

// Merge appends entries from add whose photo id is not already present.
// First-seen wins; existing entries are never replaced.
func (d DownloadImages) Merge(add []DownloadImage) DownloadImages {
	seen := make(map[uint64]struct{}, len(d))
	merged := make(DownloadImages, 0, len(d)+len(add))
	for _, img := range d {
		if _, ok := seen[img.PhotoID]; ok {
			continue
		}
		seen[img.PhotoID] = struct{}{}
		merged = append(merged, img)
	}
	for _, img := range add {
		if _, ok := seen[img.PhotoID]; ok {
			continue
		}
		seen[img.PhotoID] = struct{}{}
		merged = append(merged, img)
	}
	return merged
}

// UserEntity represents the user table entity
type UserEntity struct {
	ID             uint64         `db:"id" json:"id"`
	Name           string         `db:"name" json:"name"`
	Email          string         `db:"email" json:"email"`
	Phone          string         `db:"phone" json:"phone"`
	Role           string         `db:"role" json:"role"`
	PasswordHash   string         `db:"password_hash" json:"-"`
	DownloadImages DownloadImages `db:"download_images" json:"download_images"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt      *time.Time     `db:"updated_at" json:"updated_at,omitempty"`
}

// UserFilter for querying users
type UserFilter struct {
	ID    uint64
	Email string
	Phone string
}

// RegisterRequest for user registration
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest for user login (accepts email or phone)
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"` // email or phone
	Password   string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

type RegisterResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type DownloadsResponse struct {
	Downloads []DownloadImage `json:"downloads"`
}
