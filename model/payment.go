package model

import "time"

// PaymentEntity is one payment attempt, keyed 1:1 to an order through
// PaymentID ({order_no}_{timestamp}). RequestDetail holds the outbound signed
// request; PaymentDetail the raw gateway callback body, latest write wins.
type PaymentEntity struct {
	ID            uint64     `db:"id" json:"id"`
	OrderID       uint64     `db:"order_id" json:"order_id"`
	PaymentID     string     `db:"payment_id" json:"payment_id"`
	Amount        int64      `db:"amount" json:"amount"`
	CurrencyCode  string     `db:"currency_code" json:"currency_code"`
	RequestDetail string     `db:"request_detail" json:"request_detail"`
	PaymentDetail *string    `db:"payment_detail" json:"payment_detail,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// GatewayRequest is the outbound redirect payload. Field names and the
// 2-decimal amount string are part of the gateway's signature contract.
type GatewayRequest struct {
	PaymentURL   string `json:"payment_url"`
	ServiceID    string `json:"service_id"`
	PaymentID    string `json:"payment_id"`
	ReturnURL    string `json:"return_url"`
	CallbackURL  string `json:"callback_url"`
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currency_code"`
	CustIP       string `json:"cust_ip"`
	CustName     string `json:"cust_name"`
	CustEmail    string `json:"cust_email"`
	CustPhone    string `json:"cust_phone"`
	Signature    string `json:"signature"`
}

// GatewayCallback is the form-encoded POST the gateway sends after the user
// completes payment off-platform.
type GatewayCallback struct {
	OrderNumber string `json:"OrderNumber" validate:"required"`
	PaymentID   string `json:"PaymentID" validate:"required"`
	TxnStatus   string `json:"TxnStatus" validate:"required"`
	TxnID       string `json:"TxnID"`
	// RawBody is the full callback body persisted as payment_detail.
	RawBody string `json:"-"`
}

// CallbackResult is what the confirmation view renders.
type CallbackResult struct {
	OrderID uint64 `json:"order_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}
