package revalidate_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infracache "github.com/vaporkeys/storefront/infra/cache"
	"github.com/vaporkeys/storefront/infra/provider/mockcontent"
	"github.com/vaporkeys/storefront/infra/provider/mockpayment"
	"github.com/vaporkeys/storefront/pkg/domain"
	"github.com/vaporkeys/storefront/webapi/revalidate"
	"github.com/vaporkeys/storefront/webapi/testutils"
)

func TestPostRevalidateClearsCache(t *testing.T) {
	productCache := infracache.NewMemoryCache()
	ctx := context.Background()
	require.NoError(t, productCache.Set(
		ctx,
		"vapor75",
		&domain.Product{UID: "vapor75", Name: "Vapor75 Keyboard", Price: 17999},
		time.Minute,
	))

	app := testutils.NewTestApp(
		mockcontent.NewMockContentStore(),
		mockpayment.NewMockPaymentProvider(),
		productCache,
	)

	resp := testutils.MakeRequest(app, "POST", "/api/revalidate", "")
	defer resp.Body.Close() //nolint:errcheck

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body revalidate.RevalidateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Revalidated)
	assert.NotZero(t, body.Now)

	got, err := productCache.Get(ctx, "vapor75")
	require.NoError(t, err)
	assert.Nil(t, got)
}
