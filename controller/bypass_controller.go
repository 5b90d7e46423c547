// controller/bypass_controller.go
package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	lockey_errors "github.com/ZORO77a/Lockey/errors"
	"github.com/ZORO77a/Lockey/model"
	"github.com/ZORO77a/Lockey/service"
	"github.com/ZORO77a/Lockey/util"
	helper_util "github.com/ZORO77a/Lockey/util/helper"
)

type BypassController struct {
	bypassService service.IBypassService
	// loc is used for submitted times without an offset.
	loc *time.Location
}

func NewBypassController(bypassService service.IBypassService, loc *time.Location) *BypassController {
	if loc == nil {
		loc = time.UTC
	}
	return &BypassController{
		bypassService: bypassService,
		loc:           loc,
	}
}

// RegisterRoutes registers the bypass routes on the admin and employee groups
func (bc *BypassController) RegisterRoutes(admin, employee *gin.RouterGroup) {
	requests := admin.Group("/bypass-requests")
	{
		requests.GET("", bc.ListRequests)
		requests.POST("/:id/approve", bc.ApproveRequest)
		requests.POST("/:id/reject", bc.RejectRequest)
	}
	grants := admin.Group("/bypass")
	{
		grants.POST("/revoke", bc.Revoke)
		grants.PUT("/:subject", bc.Grant)
	}

	employee.POST("/bypass-requests", bc.CreateRequest)
}

type bypassRequestBody struct {
	StartDate string `json:"start_date" form:"start_date"`
	EndDate   string `json:"end_date" form:"end_date"`
	Reason    string `json:"reason" form:"reason"`
}

// CreateRequest endpoint
func (bc *BypassController) CreateRequest(c *gin.Context) {
	identity, err := util.GetIdentityFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	var body bypassRequestBody
	if err := c.ShouldBind(&body); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid bypass request", lockey_errors.ErrInvalidBypassData)
		return
	}
	start, err := helper_util.ParseBypassTime(body.StartDate, bc.loc)
	if err != nil {
		util.RespondWithDomainError(c, lockey_errors.NewBypassValidationError("start_date", err.Error()))
		return
	}
	end, err := helper_util.ParseBypassTime(body.EndDate, bc.loc)
	if err != nil {
		util.RespondWithDomainError(c, lockey_errors.NewBypassValidationError("end_date", err.Error()))
		return
	}

	req, err := bc.bypassService.RequestBypass(c, identity.SubjectID, start, end, body.Reason)
	if err != nil {
		util.RespondWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, req)
}

// ListRequests endpoint
func (bc *BypassController) ListRequests(c *gin.Context) {
	limit, err := helper_util.GetLimitParam(c, 0)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid limit", lockey_errors.ErrInvalidPagination)
		return
	}

	status := model.BypassStatus(c.Query("status"))
	switch status {
	case "", model.BypassPending, model.BypassApproved, model.BypassRejected, model.BypassRevoked:
	default:
		util.RespondWithDomainError(c, lockey_errors.NewBypassValidationError("status", "unknown status"))
		return
	}

	requests, err := bc.bypassService.ListRequests(c, status, limit)
	if err != nil {
		util.RespondWithDomainError(c, err)
		return
	}
	if requests == nil {
		requests = []*model.BypassRequest{}
	}
	c.JSON(http.StatusOK, requests)
}

// ApproveRequest endpoint
func (bc *BypassController) ApproveRequest(c *gin.Context) {
	bc.decide(c, bc.bypassService.Approve)
}

// RejectRequest endpoint
func (bc *BypassController) RejectRequest(c *gin.Context) {
	bc.decide(c, bc.bypassService.Reject)
}

func (bc *BypassController) decide(c *gin.Context, decide func(ctx context.Context, requestID, actorID string) (*model.BypassRequest, error)) {
	identity, err := util.GetIdentityFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	req, err := decide(c, c.Param("id"), identity.SubjectID)
	if err != nil {
		util.RespondWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// Revoke endpoint
func (bc *BypassController) Revoke(c *gin.Context) {
	identity, err := util.GetIdentityFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	count, err := bc.bypassService.Revoke(c, c.PostForm("subject"), identity.SubjectID)
	if err != nil {
		util.RespondWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "revoked", "revoked_count": count})
}

type grantBody struct {
	Until string `json:"until"`
}

// Grant endpoint
func (bc *BypassController) Grant(c *gin.Context) {
	identity, err := util.GetIdentityFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	var body grantBody
	if err := c.ShouldBindJSON(&body); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid grant data", lockey_errors.ErrInvalidBypassData)
		return
	}
	until, err := helper_util.ParseBypassTime(body.Until, bc.loc)
	if err != nil {
		util.RespondWithDomainError(c, lockey_errors.NewBypassValidationError("until", err.Error()))
		return
	}

	subject := c.Param("subject")
	if err := bc.bypassService.Grant(c, subject, until, identity.SubjectID); err != nil {
		util.RespondWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.BypassGrant{SubjectID: subject, Until: until.UTC()})
}
