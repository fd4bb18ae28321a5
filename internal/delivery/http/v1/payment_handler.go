package v1

import (
	"net/http"

	"hirehub/internal/delivery/http/response"
	"hirehub/internal/domain"
	"hirehub/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentUC domain.PaymentUsecase
}

func NewPaymentHandler(protected *gin.RouterGroup, paymentUC domain.PaymentUsecase) {
	handler := &PaymentHandler{paymentUC: paymentUC}

	protected.POST("/checkout", handler.Checkout)
	protected.POST("/verify", handler.Verify)
}

func (h *PaymentHandler) Checkout(c *gin.Context) {
	order, err := h.paymentUC.Checkout(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Order created", order)
}

func (h *PaymentHandler) Verify(c *gin.Context) {
	var cb domain.PaymentCallback
	if err := c.ShouldBindJSON(&cb); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.paymentUC.Verify(c, cb)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Payment verified", user)
}
