package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"pulsegym/internal/shared/constants"
)

// Pagination holds normalized pagination parameters.
type Pagination struct {
	Page     int
	PageSize int
}

// ParsePagination reads page/page_size from the query string, applying
// defaults and the global page size cap.
func ParsePagination(c *gin.Context) Pagination {
	page := parseQueryInt(c, "page", constants.DefaultPage)
	pageSize := parseQueryInt(c, "page_size", constants.DefaultPageSize)
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	return Pagination{Page: page, PageSize: pageSize}
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			return n
		}
	}
	return defaultVal
}

// SliceBounds computes [start, end) indices for paging an in-memory slice.
func SliceBounds(total, page, pageSize int) (start, end int) {
	start = (page - 1) * pageSize
	if start > total {
		start = total
	}
	end = start + pageSize
	if end > total {
		end = total
	}
	return start, end
}
