package v1

import (
	"net/http"
	"strconv"

	"hirehub/internal/delivery/http/response"
	"hirehub/internal/domain"
	"hirehub/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

func NewCompanyHandler(public *gin.RouterGroup, protected *gin.RouterGroup, companyUC domain.CompanyUsecase) {
	handler := &CompanyHandler{companyUC: companyUC}

	companies := protected.Group("/company")
	{
		companies.POST("", handler.Create)
		companies.GET("/my", handler.ListMine)
		companies.DELETE("/:id", handler.Delete)
	}

	public.GET("/company/:id", handler.Get)
}

type CreateCompanyRequest struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description"`
	Website     string `form:"website"`
}

func (h *CompanyHandler) Create(c *gin.Context) {
	var req CreateCompanyRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	fileName, contentType, data, err := formFile(c, "logo")
	if err != nil {
		c.Error(err)
		return
	}

	toPtr := func(s string) *string {
		if s == "" {
			return nil
		}
		return &s
	}

	company := &domain.Company{
		Name:        req.Name,
		Description: req.Description,
		Website:     toPtr(req.Website),
	}
	if err := h.companyUC.CreateCompany(c, company, fileName, contentType, data); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Company created", company)
}

func (h *CompanyHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid company id"))
		return
	}

	company, err := h.companyUC.GetCompany(c, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", company)
}

func (h *CompanyHandler) ListMine(c *gin.Context) {
	companies, err := h.companyUC.ListMyCompanies(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", companies)
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid company id"))
		return
	}

	if err := h.companyUC.DeleteCompany(c, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company deleted", nil)
}
