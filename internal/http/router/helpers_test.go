package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/rogerio-castellano/retail-pos/internal/auth"
	"github.com/rogerio-castellano/retail-pos/internal/catalog"
	"github.com/rogerio-castellano/retail-pos/internal/config"
	"github.com/rogerio-castellano/retail-pos/internal/http/handlers"
	"github.com/rogerio-castellano/retail-pos/internal/http/router"
	"github.com/rogerio-castellano/retail-pos/internal/models"
	"github.com/rogerio-castellano/retail-pos/internal/repo"
)

const testPassword = "secret-pw"

type testEnv struct {
	t      *testing.T
	router http.Handler
	store  *repo.InMemoryStore
	shop   uuid.UUID
	other  uuid.UUID
	token  string
}

// setup wires every handler to a fresh in-memory store and logs in an admin
// who owns two shops.
func setup(t *testing.T) *testEnv {
	t.Helper()
	auth.Configure(config.JWTConfig{Secret: "test-secret"})

	store := repo.NewInMemoryStore()
	handlers.SetCatalogService(catalog.NewService(store))
	handlers.SetStockRepo(store)
	handlers.SetDimensionRepo(store)
	handlers.SetMovementRepo(store)
	handlers.SetMetricsRepo(store)
	handlers.SetUserRepo(store)
	handlers.SetRefreshStore(auth.NewMemoryRefreshStore(), 0)
	handlers.SetPagination(config.PaginationConfig{DefaultLimit: 20, MaxLimit: 100})

	ctx := context.Background()
	shop, _ := store.CreateShop(ctx, models.Shop{Name: "Downtown"})
	other, _ := store.CreateShop(ctx, models.Shop{Name: "Airport"})

	hash, _ := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if _, err := store.CreateUser(ctx, models.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		ShopIDs:      []uuid.UUID{shop.ID, other.ID},
	}); err != nil {
		t.Fatalf("create user: %v", err)
	}

	env := &testEnv{t: t, router: router.NewRouter(), store: store, shop: shop.ID, other: other.ID}
	env.token = env.login("admin", testPassword).Token
	if env.token == "" {
		t.Fatal("login returned no token")
	}
	return env
}

func (e *testEnv) login(username, password string) handlers.LoginResult {
	e.t.Helper()
	w := e.do(http.MethodPost, "/login", "", handlers.CredentialsRequest{Username: username, Password: password})
	var res handlers.LoginResult
	if w.Code == http.StatusOK {
		decode(e.t, w, &res)
	}
	return res
}

// do sends body as JSON; a nil body sends nothing.
func (e *testEnv) do(method, path, token string, body any) *httptest.ResponseRecorder {
	e.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			e.t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) authed(method, path string, body any) *httptest.ResponseRecorder {
	e.t.Helper()
	return e.do(method, path, e.token, body)
}

func (e *testEnv) upload(path, csvContent string) *httptest.ResponseRecorder {
	e.t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, _ := writer.CreateFormFile("file", "batches.csv")
	part.Write([]byte(csvContent))
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+e.token)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// variant creates a variant under brand and product, reusing either when a
// row with that name already exists in the shop.
func (e *testEnv) variant(shopID uuid.UUID, brand, product, name string) models.Variant {
	e.t.Helper()
	ctx := context.Background()
	b, err := e.brand(ctx, shopID, brand)
	if err != nil {
		e.t.Fatalf("create brand: %v", err)
	}
	p, err := e.product(ctx, shopID, b.ID, product)
	if err != nil {
		e.t.Fatalf("create product: %v", err)
	}
	v, err := e.store.CreateVariant(ctx, models.Variant{ProductID: p.ID, Name: name})
	if err != nil {
		e.t.Fatalf("create variant: %v", err)
	}
	return v
}

func (e *testEnv) brand(ctx context.Context, shopID uuid.UUID, name string) (models.Brand, error) {
	brands, err := e.store.ListBrands(ctx, []uuid.UUID{shopID})
	if err != nil {
		return models.Brand{}, err
	}
	for _, b := range brands {
		if b.Name == name {
			return b, nil
		}
	}
	return e.store.CreateBrand(ctx, models.Brand{ShopID: shopID, Name: name})
}

func (e *testEnv) product(ctx context.Context, shopID, brandID uuid.UUID, name string) (models.Product, error) {
	products, err := e.store.ListProducts(ctx, []uuid.UUID{shopID})
	if err != nil {
		return models.Product{}, err
	}
	for _, p := range products {
		if p.Name == name && p.BrandID != nil && *p.BrandID == brandID {
			return p, nil
		}
	}
	return e.store.CreateProduct(ctx, models.Product{ShopID: shopID, BrandID: &brandID, Name: name})
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, w.Code, w.Body.String())
	}
}
