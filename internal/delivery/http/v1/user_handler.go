package v1

import (
	"net/http"

	"hirehub/internal/delivery/http/response"
	"hirehub/internal/domain"
	"hirehub/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC domain.UserUsecase
}

func NewUserHandler(public *gin.RouterGroup, protected *gin.RouterGroup, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}

	protected.GET("/me", handler.Me)
	protected.PUT("/update/profile", handler.UpdateProfile)
	protected.PUT("/update/pic", handler.UpdatePic)
	protected.PUT("/update/resume", handler.UpdateResume)
	protected.POST("/skill/add", handler.AddSkill)
	protected.PUT("/skill/delete", handler.RemoveSkill)

	// Registered last so it does not shadow the fixed routes
	public.GET("/:id", handler.GetProfile)
}

func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.userUC.GetMe(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", user)
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.userUC.GetProfile(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", user)
}

type UpdateProfileRequest struct {
	Name  string  `json:"name" binding:"required,valid_name"`
	Phone string  `json:"phone" binding:"required,valid_phone"`
	Bio   *string `json:"bio"`
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.userUC.UpdateProfile(c, domain.ProfileUpdate{
		Name:  req.Name,
		Phone: req.Phone,
		Bio:   req.Bio,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", user)
}

func (h *UserHandler) UpdatePic(c *gin.Context) {
	fileName, contentType, data, err := formFile(c, "pic")
	if err != nil {
		c.Error(err)
		return
	}
	if len(data) == 0 {
		c.Error(apperror.BadRequest("A file is required"))
		return
	}

	user, err := h.userUC.UpdateProfilePic(c, fileName, contentType, data)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile picture updated", user)
}

func (h *UserHandler) UpdateResume(c *gin.Context) {
	fileName, contentType, data, err := formFile(c, "resume")
	if err != nil {
		c.Error(err)
		return
	}
	if len(data) == 0 {
		c.Error(apperror.BadRequest("A file is required"))
		return
	}

	user, err := h.userUC.UpdateResume(c, fileName, contentType, data)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume updated", user)
}

type SkillRequest struct {
	Skill string `json:"skill" binding:"required"`
}

func (h *UserHandler) AddSkill(c *gin.Context) {
	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	skills, err := h.userUC.AddSkill(c, req.Skill)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill added", gin.H{"skills": skills})
}

func (h *UserHandler) RemoveSkill(c *gin.Context) {
	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	skills, err := h.userUC.RemoveSkill(c, req.Skill)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill removed", gin.H{"skills": skills})
}
