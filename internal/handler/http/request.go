package http

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const maxRequestBodySize = 1 << 20

// decodeAndValidate reads a JSON body into dst and runs the struct's
// validate tags.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodySize))
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	if err := h.validator.Validate(r.Context(), dst); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return nil
}
