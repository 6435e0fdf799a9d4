package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rogerio-castellano/retail-pos/internal/auth"
	"github.com/rogerio-castellano/retail-pos/internal/catalog"
	"github.com/rogerio-castellano/retail-pos/internal/models"
	"github.com/rogerio-castellano/retail-pos/internal/repo"
)

// listQuery turns the wire parameters of a listing request into a catalog query.
// lowStock is on only for the literal string "true".
func listQuery(r *http.Request, p auth.Principal) (catalog.Query, error) {
	shopID, err := optionalUUIDQuery(r, "shopId")
	if err != nil {
		return catalog.Query{}, err
	}
	offset, limit, err := pageParams(r)
	if err != nil {
		return catalog.Query{}, err
	}
	return catalog.Query{
		UserShopIDs: p.ShopIDs,
		ShopID:      shopID,
		Search:      r.URL.Query().Get("search"),
		LowStock:    r.URL.Query().Get("lowStock") == "true",
		Offset:      offset,
		Limit:       limit,
	}, nil
}

// variantExists rejects a variant reference that does not resolve.
func variantExists(w http.ResponseWriter, r *http.Request, id *uuid.UUID) bool {
	if id == nil {
		return true
	}
	_, err := dimensionRepo.GetVariant(r.Context(), *id)
	if errors.Is(err, repo.ErrNotFound) {
		respond(w, r, http.StatusBadRequest, []ValidationError{{Field: "variant_id", Description: "variant " + id.String() + " does not exist"}})
		return false
	}
	if err != nil {
		writeRepoError(w, r, err, "could not fetch variant")
		return false
	}
	return true
}

// CreateStockUnitHandler godoc
// @Summary Register an individually tracked unit
// @Tags stock-units
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param unit body StockUnitRequest true "Unit to add"
// @Success 201 {object} models.StockUnit
// @Failure 400 {array} ValidationError
// @Failure 403 {string} string "Forbidden"
// @Failure 409 {string} string "Duplicated IMEI"
// @Router /stock-units [post]
func CreateStockUnitHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req StockUnitRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if validationErrors := validateStockUnit(req); len(validationErrors) > 0 {
		respond(w, r, http.StatusBadRequest, validationErrors)
		return
	}
	if !authorizeShop(w, p, req.ShopID) {
		return
	}
	if !variantExists(w, r, req.VariantID) {
		return
	}

	created, err := stockRepo.CreateUnit(r.Context(), unitFromRequest(req))
	if err != nil {
		writeRepoError(w, r, err, "could not create stock unit")
		return
	}
	respond(w, r, http.StatusCreated, created)
}

// GetStockUnitsHandler godoc
// @Summary List active stock units
// @Description Lists the caller's active units, newest first. An unauthorized shopId falls back to every shop the caller can see.
// @Tags stock-units
// @Produce json
// @Security BearerAuth
// @Param shopId query string false "Shop to narrow to"
// @Param search query string false "Case-insensitive match on barcode, IMEIs, serial number, variant, product or brand name"
// @Param lowStock query string false "Only units of low-stock variants when 'true'"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} StockUnitsPage
// @Failure 400 {string} string "Invalid input"
// @Failure 500 {string} string "Internal error"
// @Router /stock-units [get]
func GetStockUnitsHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	q, err := listQuery(r, p)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := catalogService.ListUnits(r.Context(), q)
	if err != nil {
		reqLogger(r).Error("could not list stock units", zap.Error(err))
		http.Error(w, "could not fetch stock units", http.StatusInternalServerError)
		return
	}
	respond(w, r, http.StatusOK, result)
}

// unitForCaller loads the unit named in the path and checks shop access.
func unitForCaller(w http.ResponseWriter, r *http.Request) (models.StockUnit, bool) {
	p, ok := principal(w, r)
	if !ok {
		return models.StockUnit{}, false
	}
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return models.StockUnit{}, false
	}
	unit, err := stockRepo.GetUnit(r.Context(), id)
	if err != nil {
		writeRepoError(w, r, err, "could not fetch stock unit")
		return models.StockUnit{}, false
	}
	return unit, authorizeShop(w, p, unit.ShopID)
}

// GetStockUnitHandler godoc
// @Summary Get stock unit by ID
// @Tags stock-units
// @Produce json
// @Security BearerAuth
// @Param id path string true "Unit ID"
// @Success 200 {object} models.StockUnit
// @Failure 400 {string} string "Invalid ID"
// @Failure 403 {string} string "Forbidden"
// @Failure 404 {string} string "Not found"
// @Router /stock-units/{id} [get]
func GetStockUnitHandler(w http.ResponseWriter, r *http.Request) {
	unit, ok := unitForCaller(w, r)
	if !ok {
		return
	}
	respond(w, r, http.StatusOK, unit)
}

// DeleteStockUnitHandler godoc
// @Summary Retire a stock unit
// @Description Marks the unit inactive; it disappears from listings.
// @Tags stock-units
// @Security BearerAuth
// @Param id path string true "Unit ID"
// @Success 204 "Retired successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 403 {string} string "Forbidden"
// @Failure 404 {string} string "Not found"
// @Router /stock-units/{id} [delete]
func DeleteStockUnitHandler(w http.ResponseWriter, r *http.Request) {
	unit, ok := unitForCaller(w, r)
	if !ok {
		return
	}
	if err := stockRepo.DeactivateUnit(r.Context(), unit.ID); err != nil {
		writeRepoError(w, r, err, "could not delete stock unit")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
