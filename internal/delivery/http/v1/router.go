package v1

import (
	"net/http"

	"hirehub/config"
	"hirehub/internal/delivery/http/middleware"
	"hirehub/internal/domain"
	"hirehub/pkg/token"
	"hirehub/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// newEngine builds a gin engine with the middleware every service shares.
func newEngine(cfg *config.Config) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	r := gin.New()
	// Usecases read the caller identity through c.Value, which only
	// reaches the values the auth middleware put on the request context
	// when the fallback is on.
	r.ContextWithFallback = true
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware(cfg.FrontendURL))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(
		middleware.GlobalRateLimitConfig(cfg.RateLimitGlobalThreshold, cfg.RateLimitWindowSeconds)))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

func NewAuthRouter(cfg *config.Config, tokens *token.Manager, authUC domain.AuthUsecase) *gin.Engine {
	r := newEngine(cfg)

	api := r.Group("/api/auth")
	public := api.Group("")
	public.Use(middleware.RateLimitMiddleware(
		middleware.LoginRateLimitConfig(cfg.RateLimitLoginThreshold, cfg.RateLimitWindowSeconds)))
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(tokens))

	NewAuthHandler(public, protected, authUC)

	return r
}

func NewUserRouter(cfg *config.Config, tokens *token.Manager, userUC domain.UserUsecase) *gin.Engine {
	r := newEngine(cfg)

	api := r.Group("/api/user")
	public := api.Group("")
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(tokens))

	NewUserHandler(public, protected, userUC)

	return r
}

func NewJobRouter(cfg *config.Config, tokens *token.Manager, jobUC domain.JobUsecase, companyUC domain.CompanyUsecase, applicationUC domain.ApplicationUsecase) *gin.Engine {
	r := newEngine(cfg)

	api := r.Group("/api/job")
	public := api.Group("")
	public.Use(middleware.OptionalAuth(tokens))
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(tokens))

	NewCompanyHandler(public, protected, companyUC)
	NewApplicationHandler(protected, applicationUC)
	NewJobHandler(public, protected, jobUC)

	return r
}

func NewPaymentRouter(cfg *config.Config, tokens *token.Manager, paymentUC domain.PaymentUsecase) *gin.Engine {
	r := newEngine(cfg)

	api := r.Group("/api/payment")
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(tokens))

	NewPaymentHandler(protected, paymentUC)

	return r
}

func NewUtilsRouter(cfg *config.Config, tokens *token.Manager, utilsUC domain.UtilsUsecase) *gin.Engine {
	r := newEngine(cfg)

	api := r.Group("/api/utils")
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(tokens))

	NewUtilsHandler(protected, utilsUC)

	return r
}
