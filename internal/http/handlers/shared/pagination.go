package shared

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// PaginationLimits 分页上限配置
type PaginationLimits struct {
	DefaultPageSize int
	MaxPageSize     int
}

// NormalizePagination 归一化分页参数。
func NormalizePagination(page, pageSize int, limits PaginationLimits) (int, int) {
	defaultSize := limits.DefaultPageSize
	if defaultSize <= 0 {
		defaultSize = 10
	}
	maxSize := limits.MaxPageSize
	if maxSize <= 0 {
		maxSize = 100
	}
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultSize
	}
	if pageSize > maxSize {
		pageSize = maxSize
	}
	return page, pageSize
}

// ParsePagination 从查询参数解析并归一化分页。
func ParsePagination(c *gin.Context, limits PaginationLimits) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "0"))
	return NormalizePagination(page, pageSize, limits)
}

// ParseUintParam 解析路径中的正整数参数。
func ParseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}
