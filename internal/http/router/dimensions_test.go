package router_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/rogerio-castellano/retail-pos/internal/http/handlers"
	"github.com/rogerio-castellano/retail-pos/internal/models"
)

func TestListShops(t *testing.T) {
	env := setup(t)

	w := env.authed(http.MethodGet, "/shops", nil)
	expectStatus(t, w, http.StatusOK)
	var shops []models.Shop
	decode(t, w, &shops)
	if len(shops) != 2 {
		t.Errorf("expected the caller's two shops, got %+v", shops)
	}
}

func TestBrandsAndCategories(t *testing.T) {
	env := setup(t)

	for _, path := range []string{"/brands", "/categories"} {
		w := env.authed(http.MethodPost, path, handlers.NamedDimensionRequest{ShopID: env.shop, Name: "Apple"})
		expectStatus(t, w, http.StatusCreated)

		w = env.authed(http.MethodPost, path, handlers.NamedDimensionRequest{ShopID: env.shop, Name: "Apple"})
		expectStatus(t, w, http.StatusConflict)

		w = env.authed(http.MethodPost, path, handlers.NamedDimensionRequest{ShopID: env.other, Name: "Xiaomi"})
		expectStatus(t, w, http.StatusCreated)

		w = env.authed(http.MethodPost, path, handlers.NamedDimensionRequest{ShopID: uuid.New(), Name: "Nokia"})
		expectStatus(t, w, http.StatusForbidden)

		w = env.authed(http.MethodPost, path, handlers.NamedDimensionRequest{ShopID: env.shop, Name: "  "})
		expectStatus(t, w, http.StatusBadRequest)

		var all []map[string]any
		w = env.authed(http.MethodGet, path, nil)
		expectStatus(t, w, http.StatusOK)
		decode(t, w, &all)
		if len(all) != 2 {
			t.Errorf("%s: expected 2 rows across shops, got %d", path, len(all))
		}

		w = env.authed(http.MethodGet, path+"?shopId="+env.other.String(), nil)
		expectStatus(t, w, http.StatusOK)
		decode(t, w, &all)
		if len(all) != 1 || all[0]["name"] != "Xiaomi" {
			t.Errorf("%s: expected only Xiaomi, got %v", path, all)
		}
	}
}

func TestProductsAndVariants(t *testing.T) {
	env := setup(t)

	w := env.authed(http.MethodPost, "/products", handlers.ProductRequest{ShopID: env.shop, Name: "Pixel 8"})
	expectStatus(t, w, http.StatusCreated)
	var product models.Product
	decode(t, w, &product)

	variantsPath := "/products/" + product.ID.String() + "/variants"
	w = env.authed(http.MethodPost, variantsPath, handlers.VariantRequest{Name: "128GB Obsidian", Color: "Obsidian", Storage: "128GB"})
	expectStatus(t, w, http.StatusCreated)

	w = env.authed(http.MethodPost, variantsPath, handlers.VariantRequest{})
	expectStatus(t, w, http.StatusBadRequest)

	w = env.authed(http.MethodGet, variantsPath, nil)
	expectStatus(t, w, http.StatusOK)
	var variants []models.Variant
	decode(t, w, &variants)
	if len(variants) != 1 || variants[0].Storage != "128GB" {
		t.Errorf("unexpected variants %+v", variants)
	}

	w = env.authed(http.MethodGet, "/products/"+uuid.NewString()+"/variants", nil)
	expectStatus(t, w, http.StatusNotFound)

	w = env.authed(http.MethodPost, "/products", handlers.ProductRequest{ShopID: uuid.New(), Name: "Pixel 9"})
	expectStatus(t, w, http.StatusForbidden)

	w = env.authed(http.MethodGet, "/products?shopId="+env.other.String(), nil)
	expectStatus(t, w, http.StatusOK)
	var products []models.Product
	decode(t, w, &products)
	if len(products) != 0 {
		t.Errorf("expected no products in the other shop, got %+v", products)
	}
}
