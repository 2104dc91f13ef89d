package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/palepusrinivas/guava-adminpanel-sub002/entity"
	"github.com/palepusrinivas/guava-adminpanel-sub002/form"
	kycpkg "github.com/palepusrinivas/guava-adminpanel-sub002/kyc"
)

type KYCHandler struct {
	service kycpkg.KYCService
}

func NewKYCHandler(svc kycpkg.KYCService) *KYCHandler { return &KYCHandler{service: svc} }

// Search serves GET /kyc?search=&status=&page=&size=. Typing clients use the
// debounced websocket search instead.
func (h *KYCHandler) Search() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := listParams(c)
		ctx, cancel := withTimeout(c)
		defer cancel()
		st, err := h.service.Search(ctx, kycpkg.SearchRequest{
			Query:  p.Search,
			Status: entity.KYCStatus(c.Query("status")),
			Page:   p.Page,
			Size:   p.Size,
		})
		respondList(c, st, err)
	}
}

func (h *KYCHandler) Approve() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := withTimeout(c)
		defer cancel()
		if err := h.service.Approve(ctx, c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": entity.KYCApproved})
	}
}

func (h *KYCHandler) Reject() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req kycpkg.RejectRequest
		if !bindJSON(c, &req) {
			return
		}
		ctx, cancel := withTimeout(c)
		defer cancel()
		if err := h.service.Reject(ctx, c.Param("id"), req); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": entity.KYCRejected})
	}
}

// UploadDocument accepts multipart fields "type" and "file".
func (h *KYCHandler) UploadDocument() gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := fileFromForm(c, "file", form.MaxDocumentSize)
		if err != nil {
			respondError(c, err)
			return
		}
		ctx, cancel := withTimeout(c)
		defer cancel()
		if err := h.service.UploadDocument(ctx, c.Param("id"), c.PostForm("type"), file); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
