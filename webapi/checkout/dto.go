package checkout

// User-facing messages on the checkout contract. These are part of the API
// surface; upstream failure details are logged server-side and never
// returned to the caller.
const (
	MsgMissingProductUID   = "Thiếu sản phẩm uid"
	MsgSessionCreateFailed = "Không thể tạo phiên Stripe"
)

// CheckoutResponse carries the processor-provided redirect URL.
type CheckoutResponse struct {
	URL string `json:"url"`
}

// ErrorResponse is the checkout route's error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}
