package router_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/retail-pos/internal/catalog"
	"github.com/rogerio-castellano/retail-pos/internal/http/handlers"
	"github.com/rogerio-castellano/retail-pos/internal/models"
)

func (e *testEnv) createUnit(req handlers.StockUnitRequest) models.StockUnit {
	e.t.Helper()
	w := e.authed(http.MethodPost, "/stock-units", req)
	expectStatus(e.t, w, http.StatusCreated)
	var u models.StockUnit
	decode(e.t, w, &u)
	return u
}

func unitRequest(shopID uuid.UUID, variantID *uuid.UUID, imei string) handlers.StockUnitRequest {
	return handlers.StockUnitRequest{
		ShopID:    shopID,
		VariantID: variantID,
		IMEI1:     imei,
		SalePrice: decimal.RequireFromString("899.90"),
	}
}

func (e *testEnv) listUnits(query string) catalog.Result[catalog.UnitRow] {
	e.t.Helper()
	w := e.authed(http.MethodGet, "/stock-units"+query, nil)
	expectStatus(e.t, w, http.StatusOK)
	var res catalog.Result[catalog.UnitRow]
	decode(e.t, w, &res)
	return res
}

func TestCreateStockUnit(t *testing.T) {
	env := setup(t)
	v := env.variant(env.shop, "Apple", "iPhone 15", "128GB Black")

	u := env.createUnit(unitRequest(env.shop, &v.ID, "356938035643809"))
	if u.Status != models.UnitInStock || u.Condition != models.ConditionNew || !u.IsActive || u.IsSold {
		t.Errorf("unexpected defaults: %+v", u)
	}

	w := env.authed(http.MethodPost, "/stock-units", unitRequest(env.shop, &v.ID, "356938035643809"))
	expectStatus(t, w, http.StatusConflict)

	missing := uuid.New()
	w = env.authed(http.MethodPost, "/stock-units", unitRequest(env.shop, &missing, "356938035643810"))
	expectStatus(t, w, http.StatusBadRequest)

	w = env.authed(http.MethodPost, "/stock-units", unitRequest(uuid.New(), nil, "356938035643811"))
	expectStatus(t, w, http.StatusForbidden)

	invalid := unitRequest(env.shop, nil, "")
	invalid.SalePrice = decimal.Zero
	w = env.authed(http.MethodPost, "/stock-units", invalid)
	expectStatus(t, w, http.StatusBadRequest)
	var errs []handlers.ValidationError
	decode(t, w, &errs)
	if len(errs) != 2 {
		t.Errorf("expected sale_price and identifier errors, got %+v", errs)
	}
}

func TestListStockUnits(t *testing.T) {
	env := setup(t)
	v := env.variant(env.shop, "Samsung", "Galaxy S24", "256GB Gray")
	env.createUnit(unitRequest(env.shop, &v.ID, "111111111111111"))
	env.createUnit(unitRequest(env.other, nil, "222222222222222"))

	res := env.listUnits("")
	if res.Total != 2 || len(res.Items) != 2 {
		t.Fatalf("expected both shops, got %+v", res)
	}

	res = env.listUnits("?shopId=" + env.shop.String())
	if res.Total != 1 || res.Items[0].IMEI1 != "111111111111111" {
		t.Fatalf("expected only the first shop, got %+v", res)
	}
	if res.Items[0].Brand == nil || res.Items[0].Brand.Name != "Samsung" {
		t.Errorf("expected brand to be joined, got %+v", res.Items[0].Dimensions)
	}

	// A shop outside the caller's set widens to everything they can see.
	res = env.listUnits("?shopId=" + uuid.NewString())
	if res.Total != 2 {
		t.Errorf("expected fallback to all shops, got total %d", res.Total)
	}

	res = env.listUnits("?search=galaxy")
	if res.Total != 1 {
		t.Errorf("expected search by product name, got total %d", res.Total)
	}

	res = env.listUnits("?limit=1&offset=1")
	if res.Total != 2 || len(res.Items) != 1 {
		t.Errorf("expected one row of two, got %d of %d", len(res.Items), res.Total)
	}
}

func TestListStockUnitsLowStock(t *testing.T) {
	env := setup(t)
	low := env.variant(env.shop, "Apple", "iPhone 15", "Blue")
	plenty := env.variant(env.shop, "Apple", "iPhone 15", "Pink")

	two := 2
	for _, imei := range []string{"100000000000001", "100000000000002"} {
		req := unitRequest(env.shop, &low.ID, imei)
		req.LowStockThreshold = &two
		env.createUnit(req)
	}
	for _, imei := range []string{"200000000000001", "200000000000002", "200000000000003"} {
		req := unitRequest(env.shop, &plenty.ID, imei)
		req.LowStockThreshold = &two
		env.createUnit(req)
	}

	res := env.listUnits("?lowStock=true")
	if res.Total != 2 {
		t.Fatalf("expected the two units of the low variant, got %+v", res)
	}
	for _, row := range res.Items {
		if row.Variant == nil || row.Variant.ID != low.ID {
			t.Errorf("unexpected row %+v", row)
		}
	}

	// Anything but the literal "true" leaves the filter off.
	for _, q := range []string{"?lowStock=1", "?lowStock=TRUE", "?lowStock=yes"} {
		if res := env.listUnits(q); res.Total != 5 {
			t.Errorf("%s: expected all 5 units, got %d", q, res.Total)
		}
	}
}

func TestListStockUnitsRejectsBadPaging(t *testing.T) {
	env := setup(t)

	for _, q := range []string{"?offset=-1", "?limit=0", "?limit=101", "?limit=abc", "?shopId=not-a-uuid"} {
		w := env.authed(http.MethodGet, "/stock-units"+q, nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", q, w.Code)
		}
	}
}

func TestEmptyListingEnvelope(t *testing.T) {
	env := setup(t)

	w := env.authed(http.MethodGet, "/stock-units", nil)
	expectStatus(t, w, http.StatusOK)
	if got := w.Body.String(); got != `{"products":[],"total":0}` {
		t.Errorf("unexpected body %q", got)
	}
}

func TestGetAndDeleteStockUnit(t *testing.T) {
	env := setup(t)
	u := env.createUnit(unitRequest(env.shop, nil, "333333333333333"))

	w := env.authed(http.MethodGet, "/stock-units/"+u.ID.String(), nil)
	expectStatus(t, w, http.StatusOK)

	w = env.authed(http.MethodGet, "/stock-units/not-a-uuid", nil)
	expectStatus(t, w, http.StatusBadRequest)

	w = env.authed(http.MethodGet, "/stock-units/"+uuid.NewString(), nil)
	expectStatus(t, w, http.StatusNotFound)

	w = env.authed(http.MethodDelete, "/stock-units/"+u.ID.String(), nil)
	expectStatus(t, w, http.StatusNoContent)

	if res := env.listUnits(""); res.Total != 0 {
		t.Errorf("retired unit still listed: %+v", res)
	}
	w = env.authed(http.MethodDelete, "/stock-units/"+u.ID.String(), nil)
	expectStatus(t, w, http.StatusNotFound)
}
