package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/trendyfy/storefront/internal/middleware/auth"
	"github.com/trendyfy/storefront/internal/models"
	"github.com/trendyfy/storefront/internal/service"
	"github.com/trendyfy/storefront/internal/storage/memstore"
)

type testEnv struct {
	E       *echo.Echo
	Auth    *AuthHTTP
	Catalog *CatalogHTTP
	Cart    *CartHTTP
	Contact *ContactHTTP
	Store   *memstore.Store
	Secret  []byte
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := memstore.New()
	store.Load([]models.Product{
		{Name: "Oversized Tee", Description: "A roomy tee", Price: 88900, StockQty: 10, Category: "T-Shirts", IsFeatured: true},
		{Name: "Flannel Shirt", Description: "Brushed cotton", Price: 88900, StockQty: 5, Category: "Shirts"},
		{Name: "Linen Shirt", Description: "Summer weight", Price: 88900, StockQty: 0, Category: "Shirts"},
	})

	secret := []byte("test-jwt-secret")
	return &testEnv{
		E:       echo.New(),
		Auth:    &AuthHTTP{Svc: &service.AuthService{Users: store.Users(), JWTSecret: secret}},
		Catalog: &CatalogHTTP{Svc: &service.CatalogService{Catalog: store.Catalog()}},
		Cart:    &CartHTTP{Svc: &service.CartService{Catalog: store.Catalog(), Cart: store.Cart()}},
		Contact: &ContactHTTP{Svc: &service.ContactService{Contact: store.Contact()}},
		Store:   store,
		Secret:  secret,
	}
}

func (env *testEnv) doJSONRequest(t *testing.T, method, target string, body any, cookies ...*http.Cookie) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	return rec, env.E.NewContext(req, rec)
}

// signup registers a user directly through the service and returns the
// identity handlers expect in the context.
func (env *testEnv) signup(t *testing.T, email, password, name string) *auth.Identity {
	t.Helper()

	res, err := env.Auth.Svc.Signup(context.Background(), email, password, name)
	require.NoError(t, err)
	return &auth.Identity{ID: res.User.ID, Email: res.User.Email, Name: res.User.Name}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}
