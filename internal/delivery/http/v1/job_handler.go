package v1

import (
	"net/http"
	"strconv"

	"hirehub/internal/delivery/http/response"
	"hirehub/internal/domain"
	"hirehub/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// Search and detail pages are public; detail carries OptionalAuth so a
	// recruiter can still open their own deactivated posting.
	public.GET("/all", handler.Search)
	public.GET("/:id", handler.Get)

	protected.POST("/new", handler.Create)
	protected.PUT("/:id", handler.Update)
	protected.DELETE("/:id", handler.Delete)
}

type JobRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Role         string `json:"role"`
	Salary       int64  `json:"salary" binding:"min=0"`
	Location     string `json:"location" binding:"required"`
	Openings     int    `json:"openings"`
	JobType      string `json:"job_type"`
	WorkLocation string `json:"work_location"`
	CompanyID    int64  `json:"company_id" binding:"required"`
}

func (h *JobHandler) Create(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job := &domain.Job{
		Title:        req.Title,
		Description:  req.Description,
		Role:         req.Role,
		Salary:       req.Salary,
		Location:     req.Location,
		Openings:     req.Openings,
		JobType:      req.JobType,
		WorkLocation: req.WorkLocation,
	}
	if err := h.jobUC.CreateJob(c, req.CompanyID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

func (h *JobHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job id"))
		return
	}

	job, err := h.jobUC.GetJob(c, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", job)
}

func (h *JobHandler) Search(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	jobs, total, err := h.jobUC.SearchJobs(c, c.Query("title"), c.Query("location"), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "OK", gin.H{
		"jobs":      jobs,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

type UpdateJobRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Role         string `json:"role"`
	Salary       int64  `json:"salary" binding:"min=0"`
	Location     string `json:"location" binding:"required"`
	Openings     int    `json:"openings" binding:"min=1"`
	JobType      string `json:"job_type"`
	WorkLocation string `json:"work_location"`
	IsActive     bool   `json:"is_active"`
}

func (h *JobHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job id"))
		return
	}

	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job, err := h.jobUC.UpdateJob(c, id, domain.JobUpdate{
		Title:        req.Title,
		Description:  req.Description,
		Role:         req.Role,
		Salary:       req.Salary,
		Location:     req.Location,
		Openings:     req.Openings,
		JobType:      req.JobType,
		WorkLocation: req.WorkLocation,
		IsActive:     req.IsActive,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job updated", job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job id"))
		return
	}

	if err := h.jobUC.DeleteJob(c, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job deleted", nil)
}
