package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/retail-pos/internal/repo"
)

var requiredImportColumns = []string{"barcode", "quantity", "sale_price"}

// parseBatchCSV reads batch rows keyed by header name. Row errors are
// collected per line instead of aborting the whole file.
func parseBatchCSV(src io.Reader) ([]StockBatchRequest, []ValidationError, error) {
	reader := csv.NewReader(src)
	reader.TrimLeadingSpace = true
	headers, err := reader.Read()
	if err != nil {
		return nil, nil, errors.New("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredImportColumns {
		if _, ok := index[col]; !ok {
			return nil, nil, fmt.Errorf("missing CSV column %q", col)
		}
	}

	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []StockBatchRequest
	var rowErrs []ValidationError
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("CSV read error: %v", err)
		}

		row, err := batchFromRecord(func(name string) string { return field(record, name) })
		if err != nil {
			rowErrs = append(rowErrs, ValidationError{Field: "row " + strconv.Itoa(line), Description: err.Error()})
			rows = append(rows, StockBatchRequest{})
			continue
		}
		rows = append(rows, row)
	}
	return rows, rowErrs, nil
}

func batchFromRecord(get func(string) string) (StockBatchRequest, error) {
	var row StockBatchRequest
	var err error

	row.Barcode = get("barcode")
	if row.Quantity, err = strconv.Atoi(get("quantity")); err != nil {
		return row, errors.New("invalid quantity")
	}
	if row.SalePrice, err = decimal.NewFromString(get("sale_price")); err != nil {
		return row, errors.New("invalid sale_price")
	}
	if s := get("purchase_price"); s != "" {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return row, errors.New("invalid purchase_price")
		}
		row.PurchasePrice = decimal.NewNullDecimal(d)
	}
	if s := get("low_stock_threshold"); s != "" {
		t, err := strconv.Atoi(s)
		if err != nil {
			return row, errors.New("invalid low_stock_threshold")
		}
		row.LowStockThreshold = &t
	}
	if s := get("variant_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return row, errors.New("invalid variant_id")
		}
		row.VariantID = &id
	}
	return row, nil
}

// ImportStockBatchesHandler godoc
// @Summary Import stock batches via CSV
// @Description Columns: barcode, variant_id, quantity, purchase_price, sale_price, low_stock_threshold. Existing barcodes are skipped or updated depending on mode.
// @Tags stock-batches
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "CSV file"
// @Param shopId query string true "Shop the batches belong to"
// @Param mode query string false "Import mode (skip|update)"
// @Success 200 {object} ImportBatchesResult
// @Failure 400 {string} string "Invalid file"
// @Failure 403 {string} string "Forbidden"
// @Failure 500 {string} string "Internal error"
// @Router /stock-batches/import [post]
func ImportStockBatchesHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	shopID, err := optionalUUIDQuery(r, "shopId")
	if err != nil || shopID == nil {
		http.Error(w, "shopId is required", http.StatusBadRequest)
		return
	}
	if !authorizeShop(w, p, *shopID) {
		return
	}

	mode := strings.ToLower(r.URL.Query().Get("mode"))
	if mode != "update" {
		mode = "skip" // default
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	records, parseErrs, err := parseBatchCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	failed := map[string]bool{}
	for _, e := range parseErrs {
		failed[e.Field] = true
	}

	result := ImportBatchesResult{Errors: parseErrs}
	addErr := func(rowLabel, format string, args ...any) {
		result.Errors = append(result.Errors, ValidationError{Field: rowLabel, Description: fmt.Sprintf(format, args...)})
	}

	for i, rec := range records {
		rowLabel := "row " + strconv.Itoa(i+2) // header is row 1
		if failed[rowLabel] {
			continue
		}
		rec.ShopID = *shopID

		if errs := validateStockBatch(rec); len(errs) > 0 {
			addErr(rowLabel, "%s", errs[0].Description)
			continue
		}
		if rec.VariantID != nil {
			if _, err := dimensionRepo.GetVariant(r.Context(), *rec.VariantID); err != nil {
				addErr(rowLabel, "variant %s does not exist", rec.VariantID)
				continue
			}
		}

		existing, err := stockRepo.GetBatchByBarcode(r.Context(), *shopID, rec.Barcode)
		switch {
		case err == nil:
			if mode == "skip" {
				addErr(rowLabel, "batch '%s' already exists", rec.Barcode)
				continue
			}
			updated := batchFromRequest(rec)
			updated.ID = existing.ID
			updated.CreatedAt = existing.CreatedAt
			if _, err := stockRepo.UpdateBatch(r.Context(), updated); err != nil {
				addErr(rowLabel, "failed to update '%s'", rec.Barcode)
				continue
			}
		case errors.Is(err, repo.ErrNotFound):
			if _, err := stockRepo.CreateBatch(r.Context(), batchFromRequest(rec)); err != nil {
				addErr(rowLabel, "failed to create '%s': %v", rec.Barcode, err)
				continue
			}
		default:
			addErr(rowLabel, "failed to look up '%s'", rec.Barcode)
			continue
		}
		result.Imported++
	}

	if result.Errors == nil {
		result.Errors = []ValidationError{}
	}
	respond(w, r, http.StatusOK, result)
}
