package domain

// Product is the storefront's read-only view of a product document in the
// content store. Price is in the smallest currency unit (cents for USD);
// Description and ImageURL are optional and empty when the document carries
// neither.
type Product struct {
	UID         string
	Name        string
	Price       int64
	Description string
	ImageURL    string
}

// Confirmation is the transient projection of a checkout session shown on
// the order confirmation page. Amount is a two-decimal string ("129.99")
// and empty when the session reports no total. Nothing here is persisted.
type Confirmation struct {
	SessionID     string
	CustomerEmail string
	Amount        string
}
