package customer

import (
	"net/http"

	"gymslot/internal/api"
	"gymslot/internal/apperr"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Signup godoc
// @Summary      Register new customer
// @Description  Creates a customer identity with a credential record and echoes the created identity.
// @Tags         customer
// @Accept       json
// @Produce      json
// @Param        request  body      SignupRequest  true  "Customer registration data"
// @Success      201      {object}  Customer
// @Failure      400      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /customer/signup [post]
func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	cust, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindInternal {
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create customer"})
			return
		}
		c.JSON(apperr.HTTPStatus(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, cust)
}

// Login godoc
// @Summary      Customer login
// @Description  Exchanges email and password for a bearer token.
// @Tags         customer
// @Accept       json
// @Produce      json
// @Param        request  body      LoginRequest  true  "Customer credentials"
// @Success      200      {object}  api.TokenResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      401      {object}  api.ErrorResponse
// @Router       /customer/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, api.TokenResponse{AccessToken: token, TokenType: "bearer"})
}
