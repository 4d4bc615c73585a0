package model_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/kelasfoto/kelasfoto/model"
)

func TestCartUnit_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name: "product unit with product variant",
			input: `{"type":"product","product":{
				"institution_id":1,"academic_year_id":2,"course_id":3,"album_id":4,
				"photo_id":5,"product_type_id":6,"unit_price":1500,
				"options":[{"variation_id":7,"price":500}]}}`,
		},
		{
			name: "package unit with package variant",
			input: `{"type":"package","package":{"package_id":20,"price":9900,
				"items":[{"institution_id":1,"academic_year_id":2,"course_id":3,"album_id":4,
				"photos":[{"photo_id":5}]}]}}`,
		},
		{
			name:    "product unit missing product variant",
			input:   `{"type":"product"}`,
			wantErr: true,
		},
		{
			name: "product unit carrying package variant",
			input: `{"type":"product","product":{"institution_id":1,"academic_year_id":2,
				"course_id":3,"album_id":4,"photo_id":5,"product_type_id":6,"unit_price":1500,
				"options":[{"variation_id":7}]},"package":{"package_id":20,"price":9900,"items":[]}}`,
			wantErr: true,
		},
		{
			name:    "package unit missing package variant",
			input:   `{"type":"package","product":{"photo_id":5}}`,
			wantErr: true,
		},
		{
			name:    "unknown unit type",
			input:   `{"type":"subscription"}`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var unit model.CartUnit
			err := json.Unmarshal([]byte(tt.input), &unit)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCartUnit_Amount(t *testing.T) {
	product := model.CartUnit{
		Kind: model.CartUnitProduct,
		Product: &model.ProductSelection{
			UnitPrice: 1500,
			Options: []model.VariationOption{
				{VariationID: 1, Price: 500},
				{VariationID: 2, Price: 300},
			},
		},
	}
	if got := product.Amount(); got != 2300 {
		t.Fatalf("product Amount() = %d, want 2300", got)
	}

	pkg := model.CartUnit{
		Kind:    model.CartUnitPackage,
		Package: &model.PackageSelection{Price: 9900},
	}
	if got := pkg.Amount(); got != 9900 {
		t.Fatalf("package Amount() = %d, want 9900", got)
	}
}

func TestCart_IDSets(t *testing.T) {
	cart := model.Cart{
		{
			Kind: model.CartUnitProduct,
			Product: &model.ProductSelection{
				InstitutionID: 1, AcademicYearID: 2, CourseID: 3, AlbumID: 4, PhotoID: 5,
			},
		},
		{
			Kind: model.CartUnitProduct,
			Product: &model.ProductSelection{
				// same album, different photo: id sets must de-duplicate
				InstitutionID: 1, AcademicYearID: 2, CourseID: 3, AlbumID: 4, PhotoID: 6,
			},
		},
		{
			Kind: model.CartUnitPackage,
			Package: &model.PackageSelection{
				PackageID: 20,
				Items: []model.PackageItem{
					{InstitutionID: 1, AcademicYearID: 2, CourseID: 3, AlbumID: 8},
					{InstitutionID: 1, AcademicYearID: 2, CourseID: 7, AlbumID: 9},
				},
			},
		},
	}

	if got := cart.InstitutionIDs(); !reflect.DeepEqual(got, []uint64{1}) {
		t.Fatalf("InstitutionIDs() = %v, want [1]", got)
	}
	if got := cart.AcademicYearIDs(); !reflect.DeepEqual(got, []uint64{2}) {
		t.Fatalf("AcademicYearIDs() = %v, want [2]", got)
	}
	if got := cart.CourseIDs(); !reflect.DeepEqual(got, []uint64{3, 7}) {
		t.Fatalf("CourseIDs() = %v, want [3 7]", got)
	}
	if got := cart.AlbumIDs(); !reflect.DeepEqual(got, []uint64{4, 8, 9}) {
		t.Fatalf("AlbumIDs() = %v, want [4 8 9]", got)
	}
}

func TestCart_ScanValueRoundTrip(t *testing.T) {
	cart := model.Cart{
		{
			Kind: model.CartUnitPackage,
			Package: &model.PackageSelection{
				PackageID: 20, Price: 9900, IsDownloadable: true,
				Items: []model.PackageItem{
					{InstitutionID: 1, AcademicYearID: 2, CourseID: 3, AlbumID: 4,
						Photos: []model.CartPhoto{{PhotoID: 5, PhotoName: "a.jpg"}}},
				},
			},
		},
	}

	value, err := cart.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}

	var scanned model.Cart
	if err := scanned.Scan(value); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if !reflect.DeepEqual(scanned, cart) {
		t.Fatalf("Scan() = %+v, want %+v", scanned, cart)
	}

	var empty model.Cart
	if err := empty.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) error = %v", err)
	}
	if empty != nil {
		t.Fatalf("Scan(nil) = %v, want nil", empty)
	}
}

func TestDownloadImages_Merge(t *testing.T) {
	existing := model.DownloadImages{
		{PhotoID: 1, PhotoName: "a.jpg", DownloadURL: "https://cdn.example.com/a"},
		{PhotoID: 2, PhotoName: "b.jpg", DownloadURL: "https://cdn.example.com/b"},
	}

	merged := existing.Merge([]model.DownloadImage{
		{PhotoID: 2, PhotoName: "b.jpg", DownloadURL: "https://cdn.example.com/b-new"},
		{PhotoID: 3, PhotoName: "c.jpg", DownloadURL: "https://cdn.example.com/c"},
	})

	if len(merged) != 3 {
		t.Fatalf("Merge() len = %d, want 3", len(merged))
	}
	// first-seen wins: the already-granted photo keeps its original URL
	if merged[1].DownloadURL != "https://cdn.example.com/b" {
		t.Fatalf("Merge() photo 2 url = %q, want original", merged[1].DownloadURL)
	}
	if merged[2].PhotoID != 3 {
		t.Fatalf("Merge() photo 3 missing, got %+v", merged)
	}
}
