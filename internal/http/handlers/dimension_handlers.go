package handlers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/rogerio-castellano/retail-pos/internal/catalog"
	"github.com/rogerio-castellano/retail-pos/internal/models"
)

// scopeFromQuery resolves the optional shopId parameter against the caller's shops.
func scopeFromQuery(w http.ResponseWriter, r *http.Request) ([]uuid.UUID, bool) {
	p, ok := principal(w, r)
	if !ok {
		return nil, false
	}
	shopID, err := optionalUUIDQuery(r, "shopId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return catalog.ResolveScope(p.ShopIDs, shopID), true
}

// decodeNamed reads a shop-scoped name and checks the caller may write to that shop.
func decodeNamed(w http.ResponseWriter, r *http.Request) (NamedDimensionRequest, bool) {
	p, ok := principal(w, r)
	if !ok {
		return NamedDimensionRequest{}, false
	}
	var req NamedDimensionRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return req, false
	}
	req.Name = strings.TrimSpace(req.Name)
	var errs []ValidationError
	if req.ShopID == uuid.Nil {
		errs = append(errs, ValidationError{Field: "shop_id", Description: "shop_id is required"})
	}
	if req.Name == "" {
		errs = append(errs, ValidationError{Field: "name", Description: "name is required"})
	}
	if len(errs) > 0 {
		respond(w, r, http.StatusBadRequest, errs)
		return req, false
	}
	return req, authorizeShop(w, p, req.ShopID)
}

// GetShopsHandler godoc
// @Summary List the caller's shops
// @Tags shops
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Shop
// @Router /shops [get]
func GetShopsHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	shops, err := dimensionRepo.ListShops(r.Context(), p.ShopIDs)
	if err != nil {
		writeRepoError(w, r, err, "could not fetch shops")
		return
	}
	respond(w, r, http.StatusOK, shops)
}

// CreateBrandHandler godoc
// @Summary Create a brand
// @Tags dimensions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param brand body NamedDimensionRequest true "Brand to add"
// @Success 201 {object} models.Brand
// @Failure 400 {array} ValidationError
// @Failure 403 {string} string "Forbidden"
// @Failure 409 {string} string "Duplicated"
// @Router /brands [post]
func CreateBrandHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeNamed(w, r)
	if !ok {
		return
	}
	created, err := dimensionRepo.CreateBrand(r.Context(), models.Brand{ShopID: req.ShopID, Name: req.Name})
	if err != nil {
		writeRepoError(w, r, err, "could not create brand")
		return
	}
	respond(w, r, http.StatusCreated, created)
}

// GetBrandsHandler godoc
// @Summary List brands in scope
// @Tags dimensions
// @Produce json
// @Security BearerAuth
// @Param shopId query string false "Shop to narrow to"
// @Success 200 {array} models.Brand
// @Router /brands [get]
func GetBrandsHandler(w http.ResponseWriter, r *http.Request) {
	scope, ok := scopeFromQuery(w, r)
	if !ok {
		return
	}
	brands, err := dimensionRepo.ListBrands(r.Context(), scope)
	if err != nil {
		writeRepoError(w, r, err, "could not fetch brands")
		return
	}
	respond(w, r, http.StatusOK, brands)
}

// CreateCategoryHandler godoc
// @Summary Create a category
// @Tags dimensions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category body NamedDimensionRequest true "Category to add"
// @Success 201 {object} models.Category
// @Failure 400 {array} ValidationError
// @Failure 403 {string} string "Forbidden"
// @Failure 409 {string} string "Duplicated"
// @Router /categories [post]
func CreateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeNamed(w, r)
	if !ok {
		return
	}
	created, err := dimensionRepo.CreateCategory(r.Context(), models.Category{ShopID: req.ShopID, Name: req.Name})
	if err != nil {
		writeRepoError(w, r, err, "could not create category")
		return
	}
	respond(w, r, http.StatusCreated, created)
}

// GetCategoriesHandler godoc
// @Summary List categories in scope
// @Tags dimensions
// @Produce json
// @Security BearerAuth
// @Param shopId query string false "Shop to narrow to"
// @Success 200 {array} models.Category
// @Router /categories [get]
func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	scope, ok := scopeFromQuery(w, r)
	if !ok {
		return
	}
	categories, err := dimensionRepo.ListCategories(r.Context(), scope)
	if err != nil {
		writeRepoError(w, r, err, "could not fetch categories")
		return
	}
	respond(w, r, http.StatusOK, categories)
}

// CreateProductHandler godoc
// @Summary Create a catalog product
// @Tags dimensions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} models.Product
// @Failure 400 {array} ValidationError
// @Failure 403 {string} string "Forbidden"
// @Router /products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	var errs []ValidationError
	if req.ShopID == uuid.Nil {
		errs = append(errs, ValidationError{Field: "shop_id", Description: "shop_id is required"})
	}
	if req.Name == "" {
		errs = append(errs, ValidationError{Field: "name", Description: "name is required"})
	}
	if len(errs) > 0 {
		respond(w, r, http.StatusBadRequest, errs)
		return
	}
	if !authorizeShop(w, p, req.ShopID) {
		return
	}

	created, err := dimensionRepo.CreateProduct(r.Context(), models.Product{
		ShopID:     req.ShopID,
		BrandID:    req.BrandID,
		CategoryID: req.CategoryID,
		Name:       req.Name,
	})
	if err != nil {
		writeRepoError(w, r, err, "could not create product")
		return
	}
	respond(w, r, http.StatusCreated, created)
}

// GetProductsHandler godoc
// @Summary List catalog products in scope
// @Tags dimensions
// @Produce json
// @Security BearerAuth
// @Param shopId query string false "Shop to narrow to"
// @Success 200 {array} models.Product
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	scope, ok := scopeFromQuery(w, r)
	if !ok {
		return
	}
	products, err := dimensionRepo.ListProducts(r.Context(), scope)
	if err != nil {
		writeRepoError(w, r, err, "could not fetch products")
		return
	}
	respond(w, r, http.StatusOK, products)
}

// productForCaller loads the product named in the path and checks shop access.
func productForCaller(w http.ResponseWriter, r *http.Request) (models.Product, bool) {
	p, ok := principal(w, r)
	if !ok {
		return models.Product{}, false
	}
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return models.Product{}, false
	}
	product, err := dimensionRepo.GetProduct(r.Context(), id)
	if err != nil {
		writeRepoError(w, r, err, "could not fetch product")
		return models.Product{}, false
	}
	return product, authorizeShop(w, p, product.ShopID)
}

// CreateVariantHandler godoc
// @Summary Add a variant to a product
// @Tags dimensions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param variant body VariantRequest true "Variant to add"
// @Success 201 {object} models.Variant
// @Failure 400 {array} ValidationError
// @Failure 404 {string} string "Not found"
// @Router /products/{id}/variants [post]
func CreateVariantHandler(w http.ResponseWriter, r *http.Request) {
	product, ok := productForCaller(w, r)
	if !ok {
		return
	}
	var req VariantRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		respond(w, r, http.StatusBadRequest, []ValidationError{{Field: "name", Description: "name is required"}})
		return
	}

	created, err := dimensionRepo.CreateVariant(r.Context(), models.Variant{
		ProductID: product.ID,
		Name:      req.Name,
		Color:     req.Color,
		Storage:   req.Storage,
		SKU:       req.SKU,
	})
	if err != nil {
		writeRepoError(w, r, err, "could not create variant")
		return
	}
	respond(w, r, http.StatusCreated, created)
}

// GetVariantsHandler godoc
// @Summary List the variants of a product
// @Tags dimensions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {array} models.Variant
// @Failure 404 {string} string "Not found"
// @Router /products/{id}/variants [get]
func GetVariantsHandler(w http.ResponseWriter, r *http.Request) {
	product, ok := productForCaller(w, r)
	if !ok {
		return
	}
	variants, err := dimensionRepo.ListVariants(r.Context(), product.ID)
	if err != nil {
		writeRepoError(w, r, err, "could not fetch variants")
		return
	}
	respond(w, r, http.StatusOK, variants)
}
