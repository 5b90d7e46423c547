package helper_util

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetLimitParam reads ?limit=, defaulting to def. Zero and negative values
// are passed through so the audit service can clamp them.
func GetLimitParam(c *gin.Context, def int) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
