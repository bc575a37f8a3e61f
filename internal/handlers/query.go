package handlers

import (
	"strconv"
	"time"

	"github.com/01moynul/review-seller-golang/internal/models"
	"github.com/01moynul/review-seller-golang/internal/store"
	"github.com/gin-gonic/gin"
)

// paginationFor builds the response pagination block for a listing.
func paginationFor(opts store.ListOptions, total int) models.Pagination {
	return models.NewPagination(opts.Page, opts.Limit, total)
}

// listOptions reads the common listing query params. Absent, non-numeric
// or non-positive page/limit values fall back to the defaults instead of
// erroring.
func listOptions(c *gin.Context) store.ListOptions {
	return store.ListOptions{
		Search: c.Query("search"),
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 10),
	}
}

func queryInt(c *gin.Context, key string, def int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil || n < 1 {
		return def
	}
	return n
}

// queryFilter reads an optional filter param. The frontend sometimes
// serializes missing values literally, so "undefined" and "null" count
// as absent.
func queryFilter(c *gin.Context, key string) string {
	v := c.Query(key)
	if v == "undefined" || v == "null" {
		return ""
	}
	return v
}

// queryDate parses an optional YYYY-MM-DD param; anything unparseable is
// treated as absent.
func queryDate(c *gin.Context, key string) *time.Time {
	v := queryFilter(c, key)
	if v == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil
	}
	return &t
}
