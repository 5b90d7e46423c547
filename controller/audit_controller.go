// controller/audit_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ZORO77a/Lockey/audit"
	lockey_errors "github.com/ZORO77a/Lockey/errors"
	"github.com/ZORO77a/Lockey/util"
	helper_util "github.com/ZORO77a/Lockey/util/helper"
)

const defaultLogLimit = 100

type AuditController struct {
	auditService audit.Service
}

func NewAuditController(auditService audit.Service) *AuditController {
	return &AuditController{auditService: auditService}
}

// RegisterRoutes registers the audit log views
func (ac *AuditController) RegisterRoutes(admin, employee *gin.RouterGroup) {
	admin.GET("/logs", ac.ListLogs)
	employee.GET("/my-logs", ac.ListMyLogs)
}

// ListLogs endpoint
func (ac *AuditController) ListLogs(c *gin.Context) {
	limit, err := helper_util.GetLimitParam(c, defaultLogLimit)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid limit", lockey_errors.ErrInvalidPagination)
		return
	}

	entries, err := ac.auditService.Recent(c, limit)
	if err != nil {
		util.RespondWithDomainError(c, err)
		return
	}
	if entries == nil {
		entries = []audit.AuditEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

// ListMyLogs endpoint
func (ac *AuditController) ListMyLogs(c *gin.Context) {
	identity, err := util.GetIdentityFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	limit, err := helper_util.GetLimitParam(c, defaultLogLimit)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid limit", lockey_errors.ErrInvalidPagination)
		return
	}

	entries, err := ac.auditService.RecentForSubject(c, identity.SubjectID, limit)
	if err != nil {
		util.RespondWithDomainError(c, err)
		return
	}
	if entries == nil {
		entries = []audit.AuditEntry{}
	}
	c.JSON(http.StatusOK, entries)
}
