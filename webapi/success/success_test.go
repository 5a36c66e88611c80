package success_test

import (
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaporkeys/storefront/infra/provider/mockcontent"
	"github.com/vaporkeys/storefront/infra/provider/mockpayment"
	"github.com/vaporkeys/storefront/pkg/provider/payment"
	successweb "github.com/vaporkeys/storefront/webapi/success"
	"github.com/vaporkeys/storefront/webapi/testutils"
)

func TestGetSuccessRendersConfirmation(t *testing.T) {
	payments := mockpayment.NewMockPaymentProvider()
	payments.SeedSession(&payment.Session{
		ID:            "cs_test_42",
		Status:        "complete",
		AmountTotal:   12999,
		CustomerEmail: "buyer@example.com",
	})
	app := testutils.NewTestApp(mockcontent.NewMockContentStore(), payments, nil)

	resp := testutils.MakeRequest(app, "GET", "/success?session_id=cs_test_42", "")
	defer resp.Body.Close() //nolint:errcheck

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	page := string(body)
	assert.Contains(t, page, "cs_test_42")
	assert.Contains(t, page, "buyer@example.com")
	assert.Contains(t, page, "129.99")
	assert.Contains(t, page, "Thanh toán thành công")
}

func TestGetSuccessMissingSessionID(t *testing.T) {
	payments := mockpayment.NewMockPaymentProvider()
	app := testutils.NewTestApp(mockcontent.NewMockContentStore(), payments, nil)

	resp := testutils.MakeRequest(app, "GET", "/success", "")
	defer resp.Body.Close() //nolint:errcheck

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), successweb.MsgSessionIDNotFound)
	assert.Zero(t, payments.RetrieveCalls(), "missing session id must not hit the processor")
}

func TestGetSuccessRetrieveFails(t *testing.T) {
	payments := mockpayment.NewMockPaymentProvider()
	payments.RetrieveErr = errors.New("stripe unavailable")
	app := testutils.NewTestApp(mockcontent.NewMockContentStore(), payments, nil)

	resp := testutils.MakeRequest(app, "GET", "/success?session_id=cs_test_42", "")
	defer resp.Body.Close() //nolint:errcheck

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), successweb.MsgOrderLookupFailed)
}
