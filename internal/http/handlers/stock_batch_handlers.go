package handlers

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/retail-pos/internal/models"
	"github.com/rogerio-castellano/retail-pos/internal/repo"
)

func batchResponse(b models.StockBatch) StockBatchResponse {
	return StockBatchResponse{StockBatch: b, LowStock: b.LowStock()}
}

// CreateStockBatchHandler godoc
// @Summary Register a count-tracked batch
// @Tags stock-batches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param batch body StockBatchRequest true "Batch to add"
// @Success 201 {object} StockBatchResponse
// @Failure 400 {array} ValidationError
// @Failure 403 {string} string "Forbidden"
// @Failure 409 {string} string "Duplicated barcode"
// @Router /stock-batches [post]
func CreateStockBatchHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req StockBatchRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if validationErrors := validateStockBatch(req); len(validationErrors) > 0 {
		respond(w, r, http.StatusBadRequest, validationErrors)
		return
	}
	if !authorizeShop(w, p, req.ShopID) || !variantExists(w, r, req.VariantID) {
		return
	}

	created, err := stockRepo.CreateBatch(r.Context(), batchFromRequest(req))
	if err != nil {
		writeRepoError(w, r, err, "could not create stock batch")
		return
	}
	respond(w, r, http.StatusCreated, batchResponse(created))
}

// GetStockBatchesHandler godoc
// @Summary List active stock batches
// @Description Lists the caller's active batches, newest first. An unauthorized shopId falls back to every shop the caller can see.
// @Tags stock-batches
// @Produce json
// @Security BearerAuth
// @Param shopId query string false "Shop to narrow to"
// @Param search query string false "Case-insensitive match on barcode, variant, product or brand name"
// @Param lowStock query string false "Only batches at or below their threshold when 'true'"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} StockBatchesPage
// @Failure 400 {string} string "Invalid input"
// @Failure 500 {string} string "Internal error"
// @Router /stock-batches [get]
func GetStockBatchesHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	q, err := listQuery(r, p)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := catalogService.ListBatches(r.Context(), q)
	if err != nil {
		reqLogger(r).Error("could not list stock batches", zap.Error(err))
		http.Error(w, "could not fetch stock batches", http.StatusInternalServerError)
		return
	}
	respond(w, r, http.StatusOK, result)
}

// batchForCaller loads the batch named in the path and checks shop access.
func batchForCaller(w http.ResponseWriter, r *http.Request) (models.StockBatch, bool) {
	p, ok := principal(w, r)
	if !ok {
		return models.StockBatch{}, false
	}
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return models.StockBatch{}, false
	}
	batch, err := stockRepo.GetBatch(r.Context(), id)
	if err != nil {
		writeRepoError(w, r, err, "could not fetch stock batch")
		return models.StockBatch{}, false
	}
	return batch, authorizeShop(w, p, batch.ShopID)
}

// GetStockBatchHandler godoc
// @Summary Get stock batch by ID
// @Tags stock-batches
// @Produce json
// @Security BearerAuth
// @Param id path string true "Batch ID"
// @Success 200 {object} StockBatchResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 403 {string} string "Forbidden"
// @Failure 404 {string} string "Not found"
// @Router /stock-batches/{id} [get]
func GetStockBatchHandler(w http.ResponseWriter, r *http.Request) {
	batch, ok := batchForCaller(w, r)
	if !ok {
		return
	}
	respond(w, r, http.StatusOK, batchResponse(batch))
}

// AdjustStockBatchHandler godoc
// @Summary Adjust quantity of a batch
// @Tags stock-batches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Batch ID"
// @Param adjustment body QuantityAdjustmentRequest true "Quantity change"
// @Success 200 {object} StockBatchResponse
// @Failure 400 {string} string "Invalid adjustment"
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Quantity cannot be negative"
// @Failure 500 {string} string "Internal error"
// @Router /stock-batches/{id}/adjust [post]
func AdjustStockBatchHandler(w http.ResponseWriter, r *http.Request) {
	batch, ok := batchForCaller(w, r)
	if !ok {
		return
	}

	var req QuantityAdjustmentRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.Delta == 0 {
		http.Error(w, "delta must not be zero", http.StatusBadRequest)
		return
	}

	adjusted, err := stockRepo.AdjustBatchQuantity(r.Context(), batch.ID, req.Delta)
	if err != nil {
		writeRepoError(w, r, err, "could not update quantity")
		return
	}

	err = movementRepo.Log(r.Context(), models.Movement{BatchID: adjusted.ID, ShopID: adjusted.ShopID, Delta: req.Delta})
	if err != nil {
		reqLogger(r).Error("could not log movement", zap.Stringer("batch_id", adjusted.ID), zap.Error(err))
	}

	if adjusted.LowStock() {
		reqLogger(r).Warn("batch is at or below its low-stock threshold",
			zap.Stringer("batch_id", adjusted.ID),
			zap.String("barcode", adjusted.Barcode),
			zap.Int("quantity", adjusted.Quantity),
			zap.Int("threshold", adjusted.LowStockThreshold),
		)
	}

	respond(w, r, http.StatusOK, batchResponse(adjusted))
}

// DeleteStockBatchHandler godoc
// @Summary Retire a stock batch
// @Description Marks the batch inactive; it disappears from listings.
// @Tags stock-batches
// @Security BearerAuth
// @Param id path string true "Batch ID"
// @Success 204 "Retired successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 403 {string} string "Forbidden"
// @Failure 404 {string} string "Not found"
// @Router /stock-batches/{id} [delete]
func DeleteStockBatchHandler(w http.ResponseWriter, r *http.Request) {
	batch, ok := batchForCaller(w, r)
	if !ok {
		return
	}
	if err := stockRepo.DeactivateBatch(r.Context(), batch.ID); err != nil {
		writeRepoError(w, r, err, "could not delete stock batch")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// movementFilter reads since, until, offset and limit from the query string.
func movementFilter(r *http.Request, paged bool) (repo.MovementFilter, error) {
	var mf repo.MovementFilter
	var err error
	if mf.Since, err = timeParam(r, "since"); err != nil {
		return mf, err
	}
	if mf.Until, err = timeParam(r, "until"); err != nil {
		return mf, err
	}
	if !paged {
		return mf, nil
	}
	offset, limit, err := pageParams(r)
	if err != nil {
		return mf, err
	}
	mf.Offset, mf.Limit = &offset, &limit
	return mf, nil
}

// GetBatchMovementsHandler godoc
// @Summary Get batch movement logs
// @Tags movements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Batch ID"
// @Param since query string false "Filter movements from this timestamp (RFC3339)"
// @Param until query string false "Filter movements until this timestamp (RFC3339)"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} MovementsSearchResult
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Batch not found"
// @Failure 500 {string} string "Internal error"
// @Router /stock-batches/{id}/movements [get]
func GetBatchMovementsHandler(w http.ResponseWriter, r *http.Request) {
	batch, ok := batchForCaller(w, r)
	if !ok {
		return
	}
	mf, err := movementFilter(r, true)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	movements, total, err := movementRepo.GetByBatchID(r.Context(), batch.ID, mf)
	if err != nil {
		writeRepoError(w, r, err, "could not retrieve movements")
		return
	}

	response := MovementsSearchResult{
		Data: make([]MovementResponse, len(movements)),
		Meta: Meta{TotalCount: total},
	}
	for i, m := range movements {
		response.Data[i] = MovementResponse{
			ID:        m.ID,
			BatchID:   m.BatchID,
			Delta:     m.Delta,
			CreatedAt: m.CreatedAt,
		}
	}
	respond(w, r, http.StatusOK, response)
}

// ExportBatchMovementsHandler godoc
// @Summary Export batch movement logs
// @Tags movements
// @Produce text/csv, application/json
// @Security BearerAuth
// @Param id path string true "Batch ID"
// @Param format query string true "Export format (csv or json)"
// @Param since query string false "Filter from timestamp (RFC3339)"
// @Param until query string false "Filter until timestamp (RFC3339)"
// @Success 200 {file} file
// @Failure 400 {string} string "Invalid input"
// @Failure 500 {string} string "Internal error"
// @Router /stock-batches/{id}/movements/export [get]
func ExportBatchMovementsHandler(w http.ResponseWriter, r *http.Request) {
	batch, ok := batchForCaller(w, r)
	if !ok {
		return
	}

	format := r.URL.Query().Get("format")
	if format != "csv" && format != "json" {
		http.Error(w, "format must be 'csv' or 'json'", http.StatusBadRequest)
		return
	}
	mf, err := movementFilter(r, false)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	movements, _, err := movementRepo.GetByBatchID(r.Context(), batch.ID, mf)
	if err != nil {
		writeRepoError(w, r, err, "could not retrieve movements")
		return
	}

	switch format {
	case "json":
		respond(w, r, http.StatusOK, movements)

	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="movements.csv"`)

		csvWriter := csv.NewWriter(w)
		_ = csvWriter.Write([]string{"id", "batch_id", "delta", "created_at"})
		for _, m := range movements {
			_ = csvWriter.Write([]string{
				m.ID.String(),
				m.BatchID.String(),
				strconv.Itoa(m.Delta),
				m.CreatedAt.Format(time.RFC3339),
			})
		}
		csvWriter.Flush()
	}
}
