package model

import (
	"time"

	"github.com/kelasfoto/kelasfoto/constant"
)

// OrderEntity is one checkout attempt. Orders are a financial record and are
// never deleted; Cart is the immutable snapshot frozen at submission.
type OrderEntity struct {
	ID               uint64               `db:"id" json:"id"`
	OrderNo          uint64               `db:"order_no" json:"order_no"`
	UserID           uint64               `db:"user_id" json:"user_id"`
	CustName         string               `db:"cust_name" json:"cust_name"`
	CustEmail        string               `db:"cust_email" json:"cust_email"`
	CustPhone        string               `db:"cust_phone" json:"cust_phone"`
	ShippingAddress  string               `db:"shipping_address" json:"shipping_address"`
	ShipmentMethod   string               `db:"shipment_method" json:"shipment_method"`
	PaymentMethod    string               `db:"payment_method" json:"payment_method"`
	Cart             Cart                 `db:"cart" json:"cart"`
	Price            int64                `db:"price" json:"price"`
	ShippingFee      int64                `db:"shipping_fee" json:"shipping_fee"`
	Remark           string               `db:"remark" json:"remark"`
	Status           constant.OrderStatus `db:"status" json:"status"`
	TrackingNo       *string              `db:"tracking_no" json:"tracking_no,omitempty"`
	TransactionNo    *string              `db:"transaction_no" json:"transaction_no,omitempty"`
	SuccessPaymentID *string              `db:"success_payment_id" json:"success_payment_id,omitempty"`
	Priority         int                  `db:"priority" json:"priority"`
	CreatedAt        time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt        *time.Time           `db:"updated_at" json:"updated_at,omitempty"`
}

// OrderCartRow is one flattened cart unit, denormalized for reporting.
type OrderCartRow struct {
	ID             uint64  `db:"id"`
	OrderID        uint64  `db:"order_id"`
	UnitKind       string  `db:"unit_kind"`
	InstitutionID  *uint64 `db:"institution_id"`
	AcademicYearID *uint64 `db:"academic_year_id"`
	CourseID       *uint64 `db:"course_id"`
	AlbumID        *uint64 `db:"album_id"`
	PhotoID        *uint64 `db:"photo_id"`
	PackageID      *uint64 `db:"package_id"`
	Description    string  `db:"description"`
	Amount         int64   `db:"amount"`
}

// CheckoutRequest is the checkout endpoint body. All fields are required and
// are checked before any database access.
type CheckoutRequest struct {
	ShippingAddress string `json:"shipping_address" validate:"required"`
	Cart            Cart   `json:"cart" validate:"required,min=1"`
	PaymentMethod   string `json:"payment_method" validate:"required"`
	ShipmentMethod  string `json:"shipment_method" validate:"required"`
	ShippingFee     int64  `json:"shipping_fee" validate:"gte=0"`
	Price           int64  `json:"price" validate:"required,gt=0"`
	Remark          string `json:"remark"`
	CustName        string `json:"cust_name" validate:"required"`
	CustEmail       string `json:"cust_email" validate:"required,email"`
	CustPhone       string `json:"cust_phone" validate:"required"`
	Priority        int    `json:"priority"`
}

// CheckoutResponse carries the gateway redirect payload plus internal ids.
type CheckoutResponse struct {
	OrderID   uint64         `json:"order_id"`
	OrderNo   uint64         `json:"order_no"`
	PaymentID string         `json:"payment_id"`
	Gateway   GatewayRequest `json:"gateway"`
}

type OrderFilter struct {
	Status *constant.OrderStatus
	UserID uint64
	Limit  int
	Offset int
}

type UpdateTrackingRequest struct {
	TrackingNo string `json:"tracking_no" validate:"required"`
}

type UpdatePriorityRequest struct {
	Priority *int `json:"priority" validate:"required,gte=0"`
}
