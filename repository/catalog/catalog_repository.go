package catalog

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/kelasfoto/kelasfoto/model"
)

type SQL struct {
	conn *sqlx.DB
}

type CatalogRepository interface {
	CountEnabledInstitutions(ctx context.Context, ids []uint64) (int64, error)
	CountEnabledAcademicYears(ctx context.Context, ids []uint64) (int64, error)
	CountEnabledCourses(ctx context.Context, ids []uint64) (int64, error)
	CountEnabledAlbums(ctx context.Context, ids []uint64) (int64, error)

	CreateInstitution(ctx context.Context, req *model.InstitutionEntity) (uint64, error)
	ListInstitutions(ctx context.Context, enabledOnly bool) ([]model.InstitutionEntity, error)
	SetInstitutionEnabled(ctx context.Context, id uint64, enabled bool) error

	CreateAcademicYear(ctx context.Context, req *model.AcademicYearEntity) (uint64, error)
	ListAcademicYears(ctx context.Context, institutionID uint64, enabledOnly bool) ([]model.AcademicYearEntity, error)
	SetAcademicYearEnabled(ctx context.Context, id uint64, enabled bool) error

	CreateCourse(ctx context.Context, req *model.CourseEntity) (uint64, error)
	GetCourse(ctx context.Context, id uint64) (*model.CourseEntity, error)
	ListCourses(ctx context.Context, academicYearID uint64) ([]model.CourseEntity, error)
	SetCourseEnabled(ctx context.Context, id uint64, enabled bool) error

	CreateAlbum(ctx context.Context, req *model.AlbumEntity) (uint64, error)
	GetAlbum(ctx context.Context, id uint64) (*model.AlbumEntity, error)
	ListAlbums(ctx context.Context, courseID uint64, enabledOnly bool) ([]model.AlbumEntity, error)
	SetAlbumEnabled(ctx context.Context, id uint64, enabled bool) error

	CreatePhoto(ctx context.Context, req *model.PhotoEntity) (uint64, error)
	GetPhotosByIDs(ctx context.Context, ids []uint64) ([]model.PhotoEntity, error)
	ListPhotos(ctx context.Context, albumID uint64) ([]model.PhotoEntity, error)
	DeletePhoto(ctx context.Context, id uint64) (*model.PhotoEntity, error)

	CreateProductType(ctx context.Context, req *model.ProductTypeEntity) (uint64, error)
	ListProductTypes(ctx context.Context) ([]model.ProductTypeEntity, error)
	CreateVariation(ctx context.Context, req *model.VariationEntity) (uint64, error)
	ListVariations(ctx context.Context, productTypeID uint64) ([]model.VariationEntity, error)

	CreatePackage(ctx context.Context, req *model.PackageEntity) (uint64, error)
	ListPackages(ctx context.Context, institutionID uint64, enabledOnly bool) ([]model.PackageEntity, error)
	SetPackageEnabled(ctx context.Context, id uint64, enabled bool) error
}

func NewCatalogRepository(conn *sqlx.DB) CatalogRepository {
	return &SQL{conn: conn}
}

// countEnabled runs the existence+enablement check the order builder relies
// on: a result smaller than len(ids) means at least one referenced row is
// missing or disabled.
func (s *SQL) countEnabled(ctx context.Context, table string, ids []uint64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query, args, err := sqlx.In("SELECT COUNT(*) FROM "+table+" WHERE enabled = 1 AND id IN (?)", ids)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := s.conn.QueryRowxContext(ctx, s.conn.Rebind(query), args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *SQL) CountEnabledInstitutions(ctx context.Context, ids []uint64) (int64, error) {
	return s.countEnabled(ctx, "institution", ids)
}

func (s *SQL) CountEnabledAcademicYears(ctx context.Context, ids []uint64) (int64, error) {
	return s.countEnabled(ctx, "academic_year", ids)
}

func (s *SQL) CountEnabledCourses(ctx context.Context, ids []uint64) (int64, error) {
	return s.countEnabled(ctx, "course", ids)
}

func (s *SQL) CountEnabledAlbums(ctx context.Context, ids []uint64) (int64, error) {
	return s.countEnabled(ctx, "album", ids)
}

func (s *SQL) CreateInstitution(ctx context.Context, req *model.InstitutionEntity) (uint64, error) {
	res, err := s.conn.ExecContext(ctx,
		"INSERT INTO institution (name, address, enabled, created_at) VALUES (?, ?, ?, NOW())",
		req.Name, req.Address, req.Enabled)
	if err != nil {
		return 0, err
	}
	return lastInsertID(res)
}

func (s *SQL) ListInstitutions(ctx context.Context, enabledOnly bool) ([]model.InstitutionEntity, error) {
	query := "SELECT id, name, address, enabled, created_at, updated_at FROM institution"
	if enabledOnly {
		query += " WHERE enabled = 1"
	}
	var out []model.InstitutionEntity
	if err := s.conn.SelectContext(ctx, &out, query); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQL) SetInstitutionEnabled(ctx context.Context, id uint64, enabled bool) error {
	return s.setEnabled(ctx, "institution", id, enabled)
}

func (s *SQL) CreateAcademicYear(ctx context.Context, req *model.AcademicYearEntity) (uint64, error) {
	res, err := s.conn.ExecContext(ctx,
		"INSERT INTO academic_year (institution_id, name, enabled, created_at) VALUES (?, ?, ?, NOW())",
		req.InstitutionID, req.Name, req.Enabled)
	if err != nil {
		return 0, err
	}
	return lastInsertID(res)
}

func (s *SQL) ListAcademicYears(ctx context.Context, institutionID uint64, enabledOnly bool) ([]model.AcademicYearEntity, error) {
	query := "SELECT id, institution_id, name, enabled, created_at, updated_at FROM academic_year WHERE institution_id = ?"
	if enabledOnly {
		query += " AND enabled = 1"
	}
	var out []model.AcademicYearEntity
	if err := s.conn.SelectContext(ctx, &out, query, institutionID); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQL) SetAcademicYearEnabled(ctx context.Context, id uint64, enabled bool) error {
	return s.setEnabled(ctx, "academic_year", id, enabled)
}

func (s *SQL) CreateCourse(ctx context.Context, req *model.CourseEntity) (uint64, error) {
	res, err := s.conn.ExecContext(ctx,
		"INSERT INTO course (institution_id, academic_year_id, name, access_code, valid_from, valid_until, enabled, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, NOW())",
		req.InstitutionID, req.AcademicYearID, req.Name, req.AccessCode, req.ValidFrom, req.ValidUntil, req.Enabled)
	if err != nil {
		return 0, err
	}
	return lastInsertID(res)
}

func (s *SQL) GetCourse(ctx context.Context, id uint64) (*model.CourseEntity, error) {
	var entity model.CourseEntity
	row := s.conn.QueryRowxContext(ctx,
		"SELECT id, institution_id, academic_year_id, name, access_code, valid_from, valid_until, enabled, created_at, updated_at FROM course WHERE id = ?", id)
	if err := row.StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) ListCourses(ctx context.Context, academicYearID uint64) ([]model.CourseEntity, error) {
	var out []model.CourseEntity
	err := s.conn.SelectContext(ctx, &out,
		"SELECT id, institution_id, academic_year_id, name, access_code, valid_from, valid_until, enabled, created_at, updated_at FROM course WHERE academic_year_id = ?",
		academicYearID)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQL) SetCourseEnabled(ctx context.Context, id uint64, enabled bool) error {
	return s.setEnabled(ctx, "course", id, enabled)
}

func (s *SQL) CreateAlbum(ctx context.Context, req *model.AlbumEntity) (uint64, error) {
	res, err := s.conn.ExecContext(ctx,
		"INSERT INTO album (course_id, product_type_id, name, enabled, created_at) VALUES (?, ?, ?, ?, NOW())",
		req.CourseID, req.ProductTypeID, req.Name, req.Enabled)
	if err != nil {
		return 0, err
	}
	return lastInsertID(res)
}

func (s *SQL) GetAlbum(ctx context.Context, id uint64) (*model.AlbumEntity, error) {
	var entity model.AlbumEntity
	row := s.conn.QueryRowxContext(ctx,
		"SELECT id, course_id, product_type_id, name, enabled, created_at, updated_at FROM album WHERE id = ?", id)
	if err := row.StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) ListAlbums(ctx context.Context, courseID uint64, enabledOnly bool) ([]model.AlbumEntity, error) {
	query := "SELECT id, course_id, product_type_id, name, enabled, created_at, updated_at FROM album WHERE course_id = ?"
	if enabledOnly {
		query += " AND enabled = 1"
	}
	var out []model.AlbumEntity
	if err := s.conn.SelectContext(ctx, &out, query, courseID); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQL) SetAlbumEnabled(ctx context.Context, id uint64, enabled bool) error {
	return s.setEnabled(ctx, "album", id, enabled)
}

func (s *SQL) CreatePhoto(ctx context.Context, req *model.PhotoEntity) (uint64, error) {
	res, err := s.conn.ExecContext(ctx,
		"INSERT INTO photo (album_id, name, object_key, preview_key, created_at) VALUES (?, ?, ?, ?, NOW())",
		req.AlbumID, req.Name, req.ObjectKey, req.PreviewKey)
	if err != nil {
		return 0, err
	}
	return lastInsertID(res)
}

func (s *SQL) GetPhotosByIDs(ctx context.Context, ids []uint64) ([]model.PhotoEntity, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In("SELECT id, album_id, name, object_key, preview_key, created_at FROM photo WHERE id IN (?)", ids)
	if err != nil {
		return nil, err
	}
	var out []model.PhotoEntity
	if err := s.conn.SelectContext(ctx, &out, s.conn.Rebind(query), args...); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQL) ListPhotos(ctx context.Context, albumID uint64) ([]model.PhotoEntity, error) {
	var out []model.PhotoEntity
	err := s.conn.SelectContext(ctx, &out,
		"SELECT id, album_id, name, object_key, preview_key, created_at FROM photo WHERE album_id = ?", albumID)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQL) DeletePhoto(ctx context.Context, id uint64) (*model.PhotoEntity, error) {
	var entity model.PhotoEntity
	row := s.conn.QueryRowxContext(ctx,
		"SELECT id, album_id, name, object_key, preview_key, created_at FROM photo WHERE id = ?", id)
	if err := row.StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if _, err := s.conn.ExecContext(ctx, "DELETE FROM photo WHERE id = ?", id); err != nil {
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) CreateProductType(ctx context.Context, req *model.ProductTypeEntity) (uint64, error) {
	res, err := s.conn.ExecContext(ctx,
		"INSERT INTO product_type (name, base_price, created_at) VALUES (?, ?, NOW())",
		req.Name, req.BasePrice)
	if err != nil {
		return 0, err
	}
	return lastInsertID(res)
}

func (s *SQL) ListProductTypes(ctx context.Context) ([]model.ProductTypeEntity, error) {
	var out []model.ProductTypeEntity
	if err := s.conn.SelectContext(ctx, &out, "SELECT id, name, base_price, created_at FROM product_type"); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQL) CreateVariation(ctx context.Context, req *model.VariationEntity) (uint64, error) {
	res, err := s.conn.ExecContext(ctx,
		"INSERT INTO variation (product_type_id, name, price, downloadable) VALUES (?, ?, ?, ?)",
		req.ProductTypeID, req.Name, req.Price, req.Downloadable)
	if err != nil {
		return 0, err
	}
	return lastInsertID(res)
}

func (s *SQL) ListVariations(ctx context.Context, productTypeID uint64) ([]model.VariationEntity, error) {
	var out []model.VariationEntity
	err := s.conn.SelectContext(ctx, &out,
		"SELECT id, product_type_id, name, price, downloadable FROM variation WHERE product_type_id = ?", productTypeID)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQL) CreatePackage(ctx context.Context, req *model.PackageEntity) (uint64, error) {
	res, err := s.conn.ExecContext(ctx,
		"INSERT INTO package (institution_id, name, price, is_downloadable, enabled, created_at) VALUES (?, ?, ?, ?, ?, NOW())",
		req.InstitutionID, req.Name, req.Price, req.IsDownloadable, req.Enabled)
	if err != nil {
		return 0, err
	}
	return lastInsertID(res)
}

func (s *SQL) ListPackages(ctx context.Context, institutionID uint64, enabledOnly bool) ([]model.PackageEntity, error) {
	query := "SELECT id, institution_id, name, price, is_downloadable, enabled, created_at, updated_at FROM package WHERE institution_id = ?"
	if enabledOnly {
		query += " AND enabled = 1"
	}
	var out []model.PackageEntity
	if err := s.conn.SelectContext(ctx, &out, query, institutionID); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQL) SetPackageEnabled(ctx context.Context, id uint64, enabled bool) error {
	return s.setEnabled(ctx, "package", id, enabled)
}

func (s *SQL) setEnabled(ctx context.Context, table string, id uint64, enabled bool) error {
	_, err := s.conn.ExecContext(ctx, "UPDATE "+table+" SET enabled = ?, updated_at = NOW() WHERE id = ?", enabled, id)
	return err
}

func lastInsertID(res sql.Result) (uint64, error) {
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}
