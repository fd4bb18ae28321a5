package v1

import (
	"net/http"
	"strconv"

	"hirehub/internal/delivery/http/response"
	"hirehub/internal/domain"
	"hirehub/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	applications := protected.Group("/application")
	{
		applications.POST("/:jobID", handler.Apply)
		applications.GET("/job/:jobID", handler.ListForJob)
		applications.GET("/my", handler.ListMine)
	}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("jobID"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job id"))
		return
	}

	app, err := h.applicationUC.Apply(c, jobID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Application submitted", app)
}

func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("jobID"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job id"))
		return
	}

	applications, err := h.applicationUC.ListForJob(c, jobID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", applications)
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	applications, err := h.applicationUC.ListMine(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", applications)
}
