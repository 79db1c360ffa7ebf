package api

import (
	"fmt"
	"net/http"
	"strconv"
)

// parsePage returns the 1-indexed page number from the page query parameter.
// It defaults to 1.
func parsePage(r *http.Request) (int, error) {
	p := r.URL.Query().Get("page")
	if p == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(p)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("page must be a positive integer, got %q", p)
	}
	return n, nil
}
