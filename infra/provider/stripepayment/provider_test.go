package stripepayment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaporkeys/storefront/pkg/provider/payment"
)

func TestBuildSessionParamsMinimal(t *testing.T) {
	params := buildSessionParams(&payment.SessionParams{
		Currency:    "usd",
		ProductName: "Vapor75 Keyboard",
		UnitAmount:  5000,
		Quantity:    1,
		SuccessURL:  "http://localhost:3000/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   "http://localhost:3000/",
	})

	require.Len(t, params.LineItems, 1)
	item := params.LineItems[0]
	assert.Equal(t, int64(1), *item.Quantity)
	assert.Equal(t, int64(5000), *item.PriceData.UnitAmount)
	assert.Equal(t, "usd", *item.PriceData.Currency)
	assert.Equal(t, "Vapor75 Keyboard", *item.PriceData.ProductData.Name)
	assert.Nil(t, item.PriceData.ProductData.Description)
	assert.Nil(t, item.PriceData.ProductData.Images)
	assert.Equal(t, "payment", *params.Mode)
	assert.Nil(t, params.IdempotencyKey)
}

func TestBuildSessionParamsOptionalFields(t *testing.T) {
	params := buildSessionParams(&payment.SessionParams{
		Currency:       "usd",
		ProductName:    "Vapor75 Keyboard",
		Description:    "Great switches",
		ImageURL:       "https://images.example.com/vapor75.png",
		UnitAmount:     5000,
		Quantity:       1,
		SuccessURL:     "http://localhost:3000/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:      "http://localhost:3000/",
		IdempotencyKey: "key-123",
	})

	item := params.LineItems[0]
	require.NotNil(t, item.PriceData.ProductData.Description)
	assert.Equal(t, "Great switches", *item.PriceData.ProductData.Description)
	require.Len(t, item.PriceData.ProductData.Images, 1)
	assert.Equal(t, "https://images.example.com/vapor75.png", *item.PriceData.ProductData.Images[0])
	require.NotNil(t, params.IdempotencyKey)
	assert.Equal(t, "key-123", *params.IdempotencyKey)
}
