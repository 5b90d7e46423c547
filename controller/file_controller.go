// controller/file_controller.go
package controller

import (
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	lockey_errors "github.com/ZORO77a/Lockey/errors"
	"github.com/ZORO77a/Lockey/model"
	pdp_model "github.com/ZORO77a/Lockey/pdp/model"
	"github.com/ZORO77a/Lockey/service"
	"github.com/ZORO77a/Lockey/util"
	helper_util "github.com/ZORO77a/Lockey/util/helper"
)

type FileController struct {
	fileService   service.IFileService
	accessService service.IAccessService
}

func NewFileController(fileService service.IFileService, accessService service.IAccessService) *FileController {
	return &FileController{
		fileService:   fileService,
		accessService: accessService,
	}
}

// RegisterRoutes registers the file routes on the admin and employee groups
func (fc *FileController) RegisterRoutes(admin, employee *gin.RouterGroup) {
	files := admin.Group("/files")
	{
		files.POST("", fc.Upload)
		files.GET("", fc.List)
		files.GET("/:id/download", fc.AdminDownload)
	}

	employee.POST("/files/:id/download", fc.Download)
}

// Upload endpoint
func (fc *FileController) Upload(c *gin.Context) {
	identity, err := util.GetIdentityFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "A file is required", lockey_errors.ErrInvalidFileData)
		return
	}
	f, err := header.Open()
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Unreadable upload", err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Unreadable upload", err)
		return
	}

	id, err := fc.fileService.Upload(c, header.Filename, data, identity.SubjectID)
	if err != nil {
		util.RespondWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "filename": header.Filename, "size": len(data)})
}

// List endpoint
func (fc *FileController) List(c *gin.Context) {
	limit, err := helper_util.GetLimitParam(c, 0)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid limit", lockey_errors.ErrInvalidPagination)
		return
	}

	records, err := fc.fileService.List(c, limit)
	if err != nil {
		util.RespondWithDomainError(c, err)
		return
	}
	if records == nil {
		records = []*model.BlobRecord{}
	}
	c.JSON(http.StatusOK, records)
}

// AdminDownload endpoint
func (fc *FileController) AdminDownload(c *gin.Context) {
	identity, err := util.GetIdentityFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	content, err := fc.fileService.AdminDownload(c, c.Param("id"), identity.SubjectID)
	if err != nil {
		util.RespondWithDomainError(c, err)
		return
	}
	writeAttachment(c, content)
}

// Download endpoint. The claimed location and network hint arrive as form
// fields; the decision is made by the access service.
func (fc *FileController) Download(c *gin.Context) {
	identity, err := util.GetIdentityFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	fileID := c.Param("id")
	reqCtx, err := requestContextFromForm(c)
	if err != nil {
		util.RespondWithDomainError(c, fc.accessService.RejectRequest(c, identity, fileID, err))
		return
	}

	content, err := fc.accessService.RetrieveFile(c, identity, fileID, reqCtx)
	if err != nil {
		util.RespondWithDomainError(c, err)
		return
	}
	writeAttachment(c, content)
}

func requestContextFromForm(c *gin.Context) (pdp_model.RequestContext, error) {
	var reqCtx pdp_model.RequestContext

	for _, field := range []struct {
		name string
		dst  *float64
	}{
		{"lat", &reqCtx.Latitude},
		{"lon", &reqCtx.Longitude},
	} {
		raw := strings.TrimSpace(c.PostForm(field.name))
		if raw == "" {
			return reqCtx, lockey_errors.NewPolicyValidationError(field.name, "is required")
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return reqCtx, lockey_errors.NewPolicyValidationError(field.name, "must be a number")
		}
		*field.dst = v
	}

	reqCtx.NetworkHint = c.PostForm("client_network_hint")
	return reqCtx, nil
}

// writeAttachment sends fully decrypted content with its original filename.
func writeAttachment(c *gin.Context, content *model.BlobContent) {
	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": content.Name})
	if disposition == "" {
		disposition = "attachment"
	}
	c.Header("Content-Disposition", disposition)
	c.Data(http.StatusOK, "application/octet-stream", content.Data)
}
