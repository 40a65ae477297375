package stripeapi_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DanielPopoola/stripeapi-go/pkg/entity"
	"github.com/DanielPopoola/stripeapi-go/pkg/request"
	"github.com/DanielPopoola/stripeapi-go/pkg/stripeapi"
	"github.com/DanielPopoola/stripeapi-go/pkg/stripetest"
	"github.com/DanielPopoola/stripeapi-go/pkg/transport"
	"github.com/DanielPopoola/stripeapi-go/pkg/transport/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*stripeapi.Client, *stripetest.Server) {
	t.Helper()
	srv := stripetest.NewServer()
	t.Cleanup(srv.Close)

	cfg := transport.DefaultConfig("sk_test_123")
	cfg.BaseURL = srv.BaseURL()
	cfg.Timeout = 5 * time.Second

	session := transport.NewHTTPSession(cfg)
	t.Cleanup(func() { session.Close() })
	return stripeapi.New(session), srv
}

func TestCall_Do_DecodeErrorIsReported(t *testing.T) {
	session := mocks.NewMockSession(t)
	session.EXPECT().
		Do(mock.Anything, mock.AnythingOfType("request.Request")).
		Return([]byte(`{"id":"cus_1","object":"customer"}`), nil).
		Once()

	_, err := stripeapi.New(session).Customers.Retrieve("cus_1").Do(context.Background())

	decodeErr, ok := entity.IsDecodeError(err)
	require.True(t, ok)
	assert.Equal(t, "Customer", decodeErr.Entity)
	assert.True(t, errors.Is(err, entity.ErrMissingField))
	assert.Equal(t, transport.CategoryDecode, transport.Categorize(err))
}

func TestCall_Do_SessionRunsDecodeHook(t *testing.T) {
	session := mocks.NewMockSession(t)
	session.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, req request.Request) ([]byte, error) {
			body := []byte(`{"id":"cus_1","object":"customer"}`)
			require.NotNil(t, req.Decode)
			return body, req.Decode(body)
		}).
		Once()

	cus, err := stripeapi.New(session).Customers.Retrieve("cus_1").Do(context.Background())

	assert.Nil(t, cus)
	assert.Equal(t, transport.CategoryDecode, transport.Categorize(err))
}

func TestClient_DecodeFailureCountsAsDecodeOutcome(t *testing.T) {
	srv := stripetest.NewServer()
	defer srv.Close()
	srv.Respond(http.MethodGet, "customers/cus_broken", http.StatusOK, `{"id":"cus_broken","object":"customer"}`)

	cfg := transport.DefaultConfig("sk_test_123")
	cfg.BaseURL = srv.BaseURL()
	registry := prometheus.NewRegistry()
	session := transport.NewHTTPSession(cfg, transport.WithMetrics(transport.NewMetrics(registry)))
	defer session.Close()

	_, err := stripeapi.New(session).Customers.Retrieve("cus_broken").Do(context.Background())
	require.Error(t, err)

	count, err := testutil.GatherAndCount(registry, "stripe_client_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.NoError(t, testutil.GatherAndCompare(registry, strings.NewReader(`
# HELP stripe_client_requests_total The total number of Stripe API requests by operation and outcome
# TYPE stripe_client_requests_total counter
stripe_client_requests_total{method="GET",operation="customer.retrieve",outcome="decode"} 1
`), "stripe_client_requests_total"))
}

func TestCall_Do_PassesRequestToSession(t *testing.T) {
	session := mocks.NewMockSession(t)
	session.EXPECT().
		Do(mock.Anything, mock.MatchedBy(func(req request.Request) bool {
			return req.Method == http.MethodPost &&
				req.Path == "application_fees/fee_1/refunds" &&
				req.IdempotencyKey == "refund-fee_1" &&
				req.Params["amount"] == int64(25)
		})).
		Return([]byte(`{"id":"fr_1","object":"fee_refund"}`), nil).
		Once()

	refund, err := stripeapi.New(session).Connect.FeeRefunds.
		Create("fee_1", stripeapi.FeeRefundCreateParams{Amount: request.Some(int64(25))}).
		IdempotencyKey("refund-fee_1").
		Do(context.Background())

	require.NoError(t, err)
	require.NotNil(t, refund.ID)
	assert.Equal(t, "fr_1", *refund.ID)
}

func TestCall_Do_ArgumentErrorSkipsSession(t *testing.T) {
	session := mocks.NewMockSession(t)

	_, err := stripeapi.New(session).Customers.Retrieve("").Do(context.Background())

	_, ok := request.IsArgumentError(err)
	assert.True(t, ok)
	session.AssertNotCalled(t, "Do", mock.Anything, mock.Anything)
}

func TestCall_Send_NotEnqueued(t *testing.T) {
	session := mocks.NewMockSession(t)
	session.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	var gotErr error
	task := stripeapi.New(session).Products.All(request.ListParams{}).
		Send(context.Background(), func(_ *entity.ListResponse[entity.Product], err error) {
			gotErr = err
		})

	assert.Nil(t, task)
	assert.True(t, errors.Is(gotErr, transport.ErrNotEnqueued))
}

func TestCall_Send_ArgumentErrorRunsHandler(t *testing.T) {
	session := mocks.NewMockSession(t)

	calls := 0
	task := stripeapi.New(session).Connect.Fees.Retrieve("").
		Send(context.Background(), func(fee *entity.Fee, err error) {
			calls++
			assert.Nil(t, fee)
			_, ok := request.IsArgumentError(err)
			assert.True(t, ok)
		})

	assert.Nil(t, task)
	assert.Equal(t, 1, calls)
}

func TestClient_RetrieveCustomer(t *testing.T) {
	client, srv := newTestClient(t)

	cus, err := client.Customers.Retrieve("cus_123").Do(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "cus_123", cus.ID)
	assert.Equal(t, "customer", cus.Object)
	assert.Equal(t, int64(0), cus.AccountBalance)
	require.NotNil(t, cus.Email)
	assert.Equal(t, "jenny@example.com", *cus.Email)
	assert.Nil(t, cus.DefaultSource)

	got := srv.LastRequest()
	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/v1/customers/cus_123", got.Path)
}

func TestClient_CreateCustomerSendsMetadata(t *testing.T) {
	client, srv := newTestClient(t)

	cus, err := client.Customers.Create(stripeapi.CustomerCreateParams{
		Email:    request.Some("new@example.com"),
		Metadata: request.Some(map[string]string{"order": "42"}),
	}).Do(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cus_new", cus.ID)

	form := srv.LastRequest().Form
	assert.Equal(t, "new@example.com", form.Get("email"))
	assert.Equal(t, "42", form.Get("metadata[order]"))
	assert.False(t, form.Has("description"))
}

func TestClient_ListProducts(t *testing.T) {
	client, srv := newTestClient(t)

	products, err := client.Products.All(request.ListParams{Limit: request.Some(int64(2))}).Do(context.Background())
	require.NoError(t, err)

	require.Len(t, products.Data, 2)
	assert.Equal(t, "prod_1", products.Data[0].ID)
	require.Len(t, products.Data[0].SKUs.Data, 1)
	assert.Equal(t, entity.InventoryInfinite, products.Data[0].SKUs.Data[0].Inventory.Type)
	assert.Equal(t, "2", srv.LastRequest().Form.Get("limit"))
}

func TestClient_RetrieveOwnAccount(t *testing.T) {
	client, srv := newTestClient(t)

	acct, err := client.Connect.Accounts.Retrieve(request.None[string]()).Do(context.Background())
	require.NoError(t, err)
	require.NotNil(t, acct.ID)
	assert.Equal(t, "acct_self", *acct.ID)
	assert.Equal(t, "/v1/accounts", srv.LastRequest().Path)

	var country string
	require.NoError(t, acct.Field("country", &country))
	assert.Equal(t, "US", country)
}

func TestClient_CreateBankAccount(t *testing.T) {
	client, srv := newTestClient(t)

	ba, err := client.Connect.BankAccounts.Create("acct_1", stripeapi.BankAccountCreateParams{
		AccountNumber: "000123456789",
		Country:       "US",
		Currency:      "usd",
	}).Do(context.Background())
	require.NoError(t, err)
	require.NotNil(t, ba.ID)
	assert.Equal(t, "ba_new", *ba.ID)

	got := srv.LastRequest()
	assert.Equal(t, "/v1/accounts/acct_1/external_accounts", got.Path)
	assert.Equal(t, "000123456789", got.Form.Get("external_account[account_number]"))
	assert.Equal(t, "usd", got.Form.Get("external_account[currency]"))
	assert.NotEmpty(t, got.Header.Get("Idempotency-Key"))
}

func TestClient_APIErrorSurfaces(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Respond(http.MethodGet, "application_fees/fee_missing", http.StatusNotFound,
		`{"error":{"type":"invalid_request_error","code":"resource_missing","message":"No such application fee"}}`)

	_, err := client.Connect.Fees.Retrieve("fee_missing").Do(context.Background())

	apiErr, ok := transport.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "resource_missing", apiErr.Code)
	assert.Equal(t, http.StatusNotFound, transport.StatusCode(err))
}

func TestClient_SendAndWait(t *testing.T) {
	client, _ := newTestClient(t)

	var (
		mu    sync.Mutex
		fees  *entity.ListResponse[entity.Fee]
		calls int
	)
	task := client.Connect.Fees.All(stripeapi.FeeListParams{}).Send(context.Background(),
		func(got *entity.ListResponse[entity.Fee], err error) {
			mu.Lock()
			defer mu.Unlock()
			calls++
			assert.NoError(t, err)
			fees = got
		})
	require.NotNil(t, task)
	task.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, calls)
	require.NotNil(t, fees)
	assert.Len(t, fees.Data, 2)
}

func TestClient_SendCanceled(t *testing.T) {
	client, srv := newTestClient(t)
	release := make(chan struct{})
	srv.Handle(http.MethodGet, "customers/cus_slow", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	var (
		mu     sync.Mutex
		gotCus *entity.Customer
		gotErr error
	)
	task := client.Customers.Retrieve("cus_slow").Send(context.Background(), func(cus *entity.Customer, err error) {
		mu.Lock()
		defer mu.Unlock()
		gotCus, gotErr = cus, err
	})
	require.NotNil(t, task)
	task.Cancel()
	task.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Nil(t, gotCus)
	assert.True(t, errors.Is(gotErr, transport.ErrCanceled))
}
