package checkout_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaporkeys/storefront/infra/provider/mockcontent"
	"github.com/vaporkeys/storefront/infra/provider/mockpayment"
	"github.com/vaporkeys/storefront/pkg/domain"
	checkoutweb "github.com/vaporkeys/storefront/webapi/checkout"
	"github.com/vaporkeys/storefront/webapi/testutils"
)

func seededProduct() *domain.Product {
	return &domain.Product{
		UID:   "vapor75",
		Name:  "Vapor75 Keyboard",
		Price: 17999,
	}
}

func TestPostCheckoutReturnsSessionURL(t *testing.T) {
	payments := mockpayment.NewMockPaymentProvider()
	app := testutils.NewTestApp(
		mockcontent.NewMockContentStore(seededProduct()),
		payments,
		nil,
	)

	resp := testutils.MakeRequest(app, "POST", "/api/checkout/vapor75", "")
	defer resp.Body.Close() //nolint:errcheck

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body checkoutweb.CheckoutResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.URL)
}

func TestPostCheckoutUsesOriginHeader(t *testing.T) {
	payments := mockpayment.NewMockPaymentProvider()
	app := testutils.NewTestApp(
		mockcontent.NewMockContentStore(seededProduct()),
		payments,
		nil,
	)

	req := httptest.NewRequest("POST", "/api/checkout/vapor75", nil)
	req.Header.Set("Origin", "https://store.example.com")
	resp, err := app.Test(req, 1000000)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	require.Equal(t, http.StatusOK, resp.StatusCode)

	created := payments.CreatedParams()
	require.Len(t, created, 1)
	assert.Equal(
		t,
		"https://store.example.com/success?session_id={CHECKOUT_SESSION_ID}",
		created[0].SuccessURL,
	)
	assert.Equal(t, "https://store.example.com/", created[0].CancelURL)
}

func TestPostCheckoutMissingUID(t *testing.T) {
	payments := mockpayment.NewMockPaymentProvider()
	app := testutils.NewTestApp(
		mockcontent.NewMockContentStore(seededProduct()),
		payments,
		nil,
	)

	for _, path := range []string{"/api/checkout", "/api/checkout/"} {
		resp := testutils.MakeRequest(app, "POST", path, "")
		defer resp.Body.Close() //nolint:errcheck

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body checkoutweb.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Thiếu sản phẩm uid", body.Error)
	}
	assert.Empty(t, payments.CreatedParams())
}

func TestPostCheckoutContentLookupFails(t *testing.T) {
	store := mockcontent.NewMockContentStore()
	store.Err = errors.New("content store down")
	app := testutils.NewTestApp(store, mockpayment.NewMockPaymentProvider(), nil)

	resp := testutils.MakeRequest(app, "POST", "/api/checkout/vapor75", "")
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body checkoutweb.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Không thể tạo phiên Stripe", body.Error)
}

func TestPostCheckoutSessionCreateFails(t *testing.T) {
	payments := mockpayment.NewMockPaymentProvider()
	payments.CreateErr = errors.New("stripe unavailable")
	app := testutils.NewTestApp(
		mockcontent.NewMockContentStore(seededProduct()),
		payments,
		nil,
	)

	resp := testutils.MakeRequest(app, "POST", "/api/checkout/vapor75", "")
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body checkoutweb.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Không thể tạo phiên Stripe", body.Error)
}
