package util

import (
	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// GetPagination reads page and page_size query params, clamping bad values
// to the defaults.
func GetPagination(c *fiber.Ctx) (page int, pageSize int) {
	page = c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	pageSize = c.QueryInt("page_size", DefaultPageSize)
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

func TotalPages(count int64, pageSize int) int {
	if count <= 0 || pageSize <= 0 {
		return 1
	}
	return int((count + int64(pageSize) - 1) / int64(pageSize))
}

func Offset(page int, pageSize int) int {
	return (page - 1) * pageSize
}
