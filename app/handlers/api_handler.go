package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/naiastudio/storefront/app/helpers"
	"github.com/unrolled/render"
)

// All API errors use the same body shape: {"error": "..."}. Validation
// failures add a per-field message map.

func writeError(rnd *render.Render, w http.ResponseWriter, status int, msg string) {
	_ = rnd.JSON(w, status, map[string]string{"error": msg})
}

func writeValidationError(rnd *render.Render, w http.ResponseWriter, err error) {
	if errs, ok := err.(validator.ValidationErrors); ok {
		_ = rnd.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"fields": helpers.FormatValidationErrors(errs),
		})
		return
	}
	writeError(rnd, w, http.StatusBadRequest, "validation failed")
}

// decodeBody parses the JSON request body into dst. On failure it writes the
// 400 response itself and returns false.
func decodeBody(rnd *render.Render, w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(rnd, w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
