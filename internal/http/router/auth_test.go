package router_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/rogerio-castellano/retail-pos/internal/http/handlers"
	"github.com/rogerio-castellano/retail-pos/internal/models"
)

func TestLogin(t *testing.T) {
	env := setup(t)

	w := env.do(http.MethodPost, "/login", "", handlers.CredentialsRequest{Username: "admin", Password: "wrong"})
	expectStatus(t, w, http.StatusUnauthorized)

	w = env.do(http.MethodPost, "/login", "", handlers.CredentialsRequest{Username: "nobody", Password: testPassword})
	expectStatus(t, w, http.StatusUnauthorized)

	res := env.login("admin", testPassword)
	if res.Token == "" || res.RefreshToken == "" {
		t.Fatalf("expected a token pair, got %+v", res)
	}
}

func TestRefreshTokenIsSingleUse(t *testing.T) {
	env := setup(t)
	pair := env.login("admin", testPassword)

	w := env.do(http.MethodPost, "/refresh", "", handlers.RefreshRequest{RefreshToken: pair.RefreshToken})
	expectStatus(t, w, http.StatusOK)
	var rotated handlers.LoginResult
	decode(t, w, &rotated)
	if rotated.Token == "" || rotated.RefreshToken == pair.RefreshToken {
		t.Fatalf("expected a rotated pair, got %+v", rotated)
	}

	w = env.do(http.MethodPost, "/refresh", "", handlers.RefreshRequest{RefreshToken: pair.RefreshToken})
	expectStatus(t, w, http.StatusUnauthorized)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := setup(t)

	for _, path := range []string{"/stock-units", "/stock-batches", "/shops", "/metrics/dashboard"} {
		w := env.do(http.MethodGet, path, "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %d", path, w.Code)
		}
	}

	w := env.do(http.MethodGet, "/stock-units", "not-a-jwt", nil)
	expectStatus(t, w, http.StatusUnauthorized)
}

func TestCreateUser(t *testing.T) {
	env := setup(t)

	w := env.authed(http.MethodPost, "/admin/users", handlers.CreateUserRequest{
		Username: "clerk",
		Password: "clerk-pw",
		Role:     models.RoleStaff,
		ShopIDs:  []uuid.UUID{env.shop},
	})
	expectStatus(t, w, http.StatusCreated)

	w = env.authed(http.MethodPost, "/admin/users", handlers.CreateUserRequest{
		Username: "clerk",
		Password: "clerk-pw",
		Role:     models.RoleStaff,
	})
	expectStatus(t, w, http.StatusConflict)

	w = env.authed(http.MethodPost, "/admin/users", handlers.CreateUserRequest{
		Username: "intruder",
		Password: "intruder-pw",
		Role:     models.RoleStaff,
		ShopIDs:  []uuid.UUID{uuid.New()},
	})
	expectStatus(t, w, http.StatusForbidden)

	w = env.authed(http.MethodPost, "/admin/users", handlers.CreateUserRequest{Username: "x", Password: "y", Role: "boss"})
	expectStatus(t, w, http.StatusBadRequest)

	// A staff member cannot create users.
	clerk := env.login("clerk", "clerk-pw")
	w = env.do(http.MethodPost, "/admin/users", clerk.Token, handlers.CreateUserRequest{
		Username: "another",
		Password: "another-pw",
		Role:     models.RoleStaff,
	})
	expectStatus(t, w, http.StatusForbidden)
}
