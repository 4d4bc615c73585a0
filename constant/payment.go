package constant

// Gateway transaction status codes as posted back by the payment processor.
const (
	TxnStatusSuccess = "0"
	TxnStatusFailed  = "1"
)

// User-facing callback results rendered on the confirmation page.
const (
	CallbackResultSuccess = "SUCCESS"
	CallbackResultFailed  = "FAILED"
)
