package v1

import (
	"net/http"

	"hirehub/internal/delivery/http/response"
	"hirehub/internal/domain"
	"hirehub/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// sessionCookieMaxAge matches the session token lifetime (15 days).
const sessionCookieMaxAge = 15 * 24 * 60 * 60

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	public.POST("/register", handler.Register)
	public.POST("/login", handler.Login)
	public.POST("/forgot", handler.Forgot)
	public.POST("/reset/:token", handler.Reset)

	protected.GET("/me", handler.Me)
	protected.POST("/logout", handler.Logout)
}

type RegisterRequest struct {
	Name     string `form:"name" binding:"required,valid_name"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=8"`
	Phone    string `form:"phone" binding:"required,valid_phone"`
	Role     string `form:"role" binding:"required,user_role"`
	Bio      string `form:"bio"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	fileName, contentType, data, err := formFile(c, "resume")
	if err != nil {
		c.Error(err)
		return
	}

	user, token, err := h.authUC.Register(c, domain.RegisterInput{
		Name:              req.Name,
		Email:             req.Email,
		Password:          req.Password,
		Phone:             req.Phone,
		Role:              req.Role,
		Bio:               req.Bio,
		ResumeFileName:    fileName,
		ResumeContentType: contentType,
		ResumeData:        data,
	})
	if err != nil {
		c.Error(err)
		return
	}

	setSessionCookie(c, token)
	response.Success(c, http.StatusCreated, "Registered", gin.H{
		"user":  user,
		"token": token,
	})
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, token, err := h.authUC.Login(c, req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	setSessionCookie(c, token)
	response.Success(c, http.StatusOK, "Logged in", gin.H{
		"user":  user,
		"token": token,
	})
}

type ForgotRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *AuthHandler) Forgot(c *gin.Context) {
	var req ForgotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.authUC.ForgotPassword(c, req.Email); err != nil {
		c.Error(err)
		return
	}

	// Same reply whether or not the address exists.
	response.Success(c, http.StatusOK, "If that email is registered, a reset link has been sent", nil)
}

type ResetRequest struct {
	Password string `json:"password" binding:"required,min=8"`
}

func (h *AuthHandler) Reset(c *gin.Context) {
	var req ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.authUC.ResetPassword(c, c.Param("token"), req.Password); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Password updated", nil)
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	user, err := h.authUC.GetCurrentUser(c, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "OK", user)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	response.Success(c, http.StatusOK, "Logged out", nil)
}

func setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("token", token, sessionCookieMaxAge, "/", "", false, true)
}
