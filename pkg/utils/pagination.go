package utils

import (
	"net/http"
	"strconv"

	"github.com/GlebRadaev/digimarket/internal/domain"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// ParsePage reads page and limit query parameters. Missing or malformed
// values fall back to the first page of DefaultPageLimit items.
func ParsePage(r *http.Request) domain.Page {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return domain.Page{
		Limit:  uint64(limit),
		Offset: uint64((page - 1) * limit),
	}
}
