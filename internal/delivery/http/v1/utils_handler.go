package v1

import (
	"errors"
	"net/http"

	"hirehub/internal/delivery/http/response"
	"hirehub/internal/domain"
	"hirehub/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UtilsHandler struct {
	utilsUC domain.UtilsUsecase
}

func NewUtilsHandler(protected *gin.RouterGroup, utilsUC domain.UtilsUsecase) {
	handler := &UtilsHandler{utilsUC: utilsUC}

	protected.POST("/upload", handler.Upload)
	protected.POST("/career", handler.Career)
	protected.POST("/resume-analyser", handler.ResumeAnalyser)
}

type UploadRequest struct {
	Data   string `json:"data" binding:"required"`
	Folder string `json:"folder"`
	// Set to overwrite an earlier upload; the old object is deleted first
	PublicID string `json:"public_id"`
}

func (h *UtilsHandler) Upload(c *gin.Context) {
	var req UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.utilsUC.Upload(c, req.Data, req.Folder, req.PublicID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Uploaded", result)
}

type CareerRequest struct {
	Skills []string `json:"skills" binding:"required,min=1"`
}

func (h *UtilsHandler) Career(c *gin.Context) {
	var req CareerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	guidance, err := h.utilsUC.CareerGuidance(c, req.Skills)
	if err != nil {
		h.modelError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "OK", guidance)
}

type ResumeAnalyserRequest struct {
	PDFBase64 string `json:"pdf_base64" binding:"required"`
}

func (h *UtilsHandler) ResumeAnalyser(c *gin.Context) {
	var req ResumeAnalyserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	analysis, err := h.utilsUC.AnalyzeResume(c, req.PDFBase64)
	if err != nil {
		h.modelError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "OK", analysis)
}

// modelError surfaces the model's raw text when it returned something that
// would not parse as JSON, so the client can still show it.
func (h *UtilsHandler) modelError(c *gin.Context, err error) {
	var rawErr *domain.RawModelError
	if errors.As(err, &rawErr) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message":     "Model response was not valid JSON",
			"rawResponse": rawErr.Raw,
		})
		return
	}
	c.Error(err)
}
