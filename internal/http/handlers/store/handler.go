package store

import (
	handlershared "github.com/storehub/internal/http/handlers/shared"
	"github.com/storehub/internal/provider"

	"github.com/gin-gonic/gin"
)

// Handler 店面接口处理器入口
type Handler struct {
	*provider.Container
}

// New 创建店面处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}

func getUserID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUint(c, "user_id")
}

func (h *Handler) paginationLimits() handlershared.PaginationLimits {
	return handlershared.PaginationLimits{
		DefaultPageSize: h.Config.Store.DefaultPageSize,
		MaxPageSize:     h.Config.Store.MaxPageSize,
	}
}
