package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type CartUnitKind string

const (
	CartUnitProduct CartUnitKind = "product"
	CartUnitPackage CartUnitKind = "package"
)

// VariationOption is one chosen option of a product variation. Downloadable
// marks options that grant a digital copy of the photo on top of the print.
type VariationOption struct {
	VariationID  uint64 `json:"variation_id" validate:"required"`
	Name         string `json:"name"`
	Price        int64  `json:"price"`
	Downloadable bool   `json:"downloadable"`
}

// CartPhoto is the denormalized photo snapshot carried inside a cart unit.
// ObjectKey allows signed download URLs to be re-issued later.
type CartPhoto struct {
	PhotoID   uint64            `json:"photo_id" validate:"required"`
	PhotoName string            `json:"photo_name"`
	PhotoURL  string            `json:"photo_url"`
	ObjectKey string            `json:"object_key"`
	Options   []VariationOption `json:"options"`
}

// ProductSelection is the standalone single-photo purchase variant.
type ProductSelection struct {
	InstitutionID  uint64            `json:"institution_id" validate:"required"`
	AcademicYearID uint64            `json:"academic_year_id" validate:"required"`
	CourseID       uint64            `json:"course_id" validate:"required"`
	AlbumID        uint64            `json:"album_id" validate:"required"`
	PhotoID        uint64            `json:"photo_id" validate:"required"`
	PhotoName      string            `json:"photo_name"`
	PhotoURL       string            `json:"photo_url"`
	ObjectKey      string            `json:"object_key"`
	ProductTypeID  uint64            `json:"product_type_id" validate:"required"`
	UnitPrice      int64             `json:"unit_price" validate:"gte=0"`
	Options        []VariationOption `json:"options" validate:"required,min=1,dive"`
}

// PackageItem is one album's worth of photos inside a package selection.
type PackageItem struct {
	InstitutionID  uint64      `json:"institution_id" validate:"required"`
	AcademicYearID uint64      `json:"academic_year_id" validate:"required"`
	CourseID       uint64      `json:"course_id" validate:"required"`
	AlbumID        uint64      `json:"album_id" validate:"required"`
	Photos         []CartPhoto `json:"photos" validate:"required,min=1,dive"`
}

// PackageSelection is the bundled-albums purchase variant.
type PackageSelection struct {
	PackageID      uint64        `json:"package_id" validate:"required"`
	Name           string        `json:"name"`
	Price          int64         `json:"price" validate:"gte=0"`
	IsDownloadable bool          `json:"is_downloadable"`
	Items          []PackageItem `json:"items" validate:"required,min=1,dive"`
}

// CartUnit is a tagged union: exactly one of Product or Package is set,
// discriminated by Kind. The order's cart snapshot is a list of these units,
// frozen at submission time.
type CartUnit struct {
	Kind    CartUnitKind      `json:"type" validate:"required"`
	Product *ProductSelection `json:"product,omitempty"`
	Package *PackageSelection `json:"package,omitempty"`
}

type cartUnitWire CartUnit

// UnmarshalJSON enforces the variant invariant at decode time so malformed
// units never reach the order builder.
func (u *CartUnit) UnmarshalJSON(data []byte) error {
	var wire cartUnitWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	switch wire.Kind {
	case CartUnitProduct:
		if wire.Product == nil || wire.Package != nil {
			return fmt.Errorf("cart unit of type %q must carry exactly the product variant", wire.Kind)
		}
	case CartUnitPackage:
		if wire.Package == nil || wire.Product != nil {
			return fmt.Errorf("cart unit of type %q must carry exactly the package variant", wire.Kind)
		}
	default:
		return fmt.Errorf("unknown cart unit type %q", wire.Kind)
	}
	*u = CartUnit(wire)
	return nil
}

// Amount returns the price of this unit in cents.
func (u *CartUnit) Amount() int64 {
	switch u.Kind {
	case CartUnitProduct:
		total := u.Product.UnitPrice
		for _, opt := range u.Product.Options {
			total += opt.Price
		}
		return total
	case CartUnitPackage:
		return u.Package.Price
	}
	return 0
}

// Cart is the immutable denormalized snapshot embedded in an Order. It is
// stored as a JSON column; catalog changes after submission do not affect it.
type Cart []CartUnit

func (c Cart) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *Cart) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	case nil:
		*c = nil
		return nil
	}
	return fmt.Errorf("unsupported cart column type %T", src)
}

// InstitutionIDs returns the de-duplicated set of institution ids referenced
// anywhere in the cart. The other id-set accessors follow the same contract.
func (c Cart) InstitutionIDs() []uint64 {
	return c.collect(func(p *ProductSelection) uint64 { return p.InstitutionID },
		func(i *PackageItem) uint64 { return i.InstitutionID })
}

func (c Cart) AcademicYearIDs() []uint64 {
	return c.collect(func(p *ProductSelection) uint64 { return p.AcademicYearID },
		func(i *PackageItem) uint64 { return i.AcademicYearID })
}

func (c Cart) CourseIDs() []uint64 {
	return c.collect(func(p *ProductSelection) uint64 { return p.CourseID },
		func(i *PackageItem) uint64 { return i.CourseID })
}

func (c Cart) AlbumIDs() []uint64 {
	return c.collect(func(p *ProductSelection) uint64 { return p.AlbumID },
		func(i *PackageItem) uint64 { return i.AlbumID })
}

func (c Cart) collect(fromProduct func(*ProductSelection) uint64, fromItem func(*PackageItem) uint64) []uint64 {
	seen := make(map[uint64]struct{})
	ids := make([]uint64, 0, len(c))
	add := func(id uint64) {
		if id == 0 {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	for i := range c {
		switch c[i].Kind {
		case CartUnitProduct:
			add(fromProduct(c[i].Product))
		case CartUnitPackage:
			for j := range c[i].Package.Items {
				add(fromItem(&c[i].Package.Items[j]))
			}
		}
	}
	return ids
}
