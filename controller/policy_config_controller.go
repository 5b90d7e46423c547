// controller/policy_config_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	lockey_errors "github.com/ZORO77a/Lockey/errors"
	"github.com/ZORO77a/Lockey/service"
	"github.com/ZORO77a/Lockey/util"
)

type PolicyConfigController struct {
	policyConfigService service.IPolicyConfigService
}

func NewPolicyConfigController(policyConfigService service.IPolicyConfigService) *PolicyConfigController {
	return &PolicyConfigController{
		policyConfigService: policyConfigService,
	}
}

// RegisterRoutes registers the admin settings routes
func (pc *PolicyConfigController) RegisterRoutes(admin *gin.RouterGroup) {
	settings := admin.Group("/settings")
	{
		settings.GET("", pc.GetSettings)
		settings.PUT("", pc.UpdateSettings)
	}
}

// GetSettings endpoint
func (pc *PolicyConfigController) GetSettings(c *gin.Context) {
	cfg, err := pc.policyConfigService.GetPolicyConfig(c)
	if err != nil {
		util.RespondWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// UpdateSettings endpoint
func (pc *PolicyConfigController) UpdateSettings(c *gin.Context) {
	identity, err := util.GetIdentityFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	var raw map[string]interface{}
	if err := c.ShouldBindJSON(&raw); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid settings data", lockey_errors.ErrInvalidPolicyData)
		return
	}

	cfg, err := pc.policyConfigService.SetPolicyConfig(c, raw, identity.SubjectID)
	if err != nil {
		util.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "settings updated", "settings": cfg})
}
