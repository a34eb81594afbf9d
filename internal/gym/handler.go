package gym

import (
	"net/http"
	"strconv"

	"gymslot/internal/api"
	"gymslot/internal/apperr"
	"gymslot/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) respondErr(c *gin.Context, err error) {
	if apperr.KindOf(err) == apperr.KindInternal {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Database error"})
		return
	}
	c.JSON(apperr.HTTPStatus(err), api.ErrorResponse{Error: err.Error()})
}

// AddGym godoc
// @Summary      Add gym
// @Description  Creates a gym owned by the authenticated vendor.
// @Tags         gym
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      AddGymRequest  true  "Gym data"
// @Success      201      {object}  Gym
// @Failure      400      {object}  api.ErrorResponse
// @Failure      401      {object}  api.ErrorResponse
// @Router       /gym/add_gym [post]
func (h *Handler) AddGym(c *gin.Context) {
	vendorID, exists := auth.GetPrincipalID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Vendor not authenticated"})
		return
	}

	var req AddGymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	gym, err := h.service.AddGym(c.Request.Context(), vendorID, req)
	if err != nil {
		h.respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, gym)
}

// PauseGym godoc
// @Summary      Pause gym
// @Description  Pauses a gym owned by the authenticated vendor. Existing orders are not reconciled.
// @Tags         gym
// @Security     BearerAuth
// @Produce      json
// @Param        gymID  path      int  true  "Gym ID"
// @Success      200    {object}  api.MessageResponse
// @Failure      403    {object}  api.ErrorResponse
// @Failure      404    {object}  api.ErrorResponse
// @Router       /gym/pause_gym/{gymID} [put]
func (h *Handler) PauseGym(c *gin.Context) {
	vendorID, exists := auth.GetPrincipalID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Vendor not authenticated"})
		return
	}

	gymID, err := strconv.Atoi(c.Param("gymID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid gym ID"})
		return
	}

	if err := h.service.PauseGym(c.Request.Context(), vendorID, gymID); err != nil {
		h.respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Gym paused successfully"})
}

// RemoveGym godoc
// @Summary      Remove gym
// @Description  Soft-stops a gym owned by the authenticated vendor.
// @Tags         gym
// @Security     BearerAuth
// @Produce      json
// @Param        gymID  path      int  true  "Gym ID"
// @Success      200    {object}  api.MessageResponse
// @Failure      403    {object}  api.ErrorResponse
// @Failure      404    {object}  api.ErrorResponse
// @Router       /gym/remove_gym/{gymID} [put]
func (h *Handler) RemoveGym(c *gin.Context) {
	vendorID, exists := auth.GetPrincipalID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Vendor not authenticated"})
		return
	}

	gymID, err := strconv.Atoi(c.Param("gymID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid gym ID"})
		return
	}

	if err := h.service.RemoveGym(c.Request.Context(), vendorID, gymID); err != nil {
		h.respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Gym removed successfully"})
}

// AddSlot godoc
// @Summary      Add slot
// @Description  Creates a bookable slot for a gym, opening with the gym's full capacity.
// @Tags         gym
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        gymID    path      int             true  "Gym ID"
// @Param        request  body      AddSlotRequest  true  "Slot data"
// @Success      201      {object}  Slot
// @Failure      400      {object}  api.ErrorResponse
// @Failure      403      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /gym/{gymID}/slots [post]
func (h *Handler) AddSlot(c *gin.Context) {
	vendorID, exists := auth.GetPrincipalID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Vendor not authenticated"})
		return
	}

	gymID, err := strconv.Atoi(c.Param("gymID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid gym ID"})
		return
	}

	var req AddSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	slot, err := h.service.AddSlot(c.Request.Context(), vendorID, gymID, req)
	if err != nil {
		h.respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, slot)
}

// UpdateSlot godoc
// @Summary      Update slot times
// @Tags         gym
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        slotID   path      int                true  "Slot ID"
// @Param        request  body      UpdateSlotRequest  true  "New slot times"
// @Success      200      {object}  api.MessageResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      403      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /gym/slots/{slotID} [put]
func (h *Handler) UpdateSlot(c *gin.Context) {
	vendorID, exists := auth.GetPrincipalID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Vendor not authenticated"})
		return
	}

	slotID, err := strconv.Atoi(c.Param("slotID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid slot ID"})
		return
	}

	var req UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if _, err := h.service.UpdateSlot(c.Request.Context(), vendorID, slotID, req); err != nil {
		h.respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Slot updated successfully"})
}

// ListGyms godoc
// @Summary      List gyms
// @Tags         gym
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Gym
// @Failure      500  {object}  api.ErrorResponse
// @Router       /gym/list [get]
func (h *Handler) ListGyms(c *gin.Context) {
	gyms, err := h.service.ListGyms(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch gyms"})
		return
	}

	c.JSON(http.StatusOK, gyms)
}

// ListSlots godoc
// @Summary      List slots for a gym
// @Tags         gym
// @Security     BearerAuth
// @Produce      json
// @Param        gymID        path      int     true   "Gym ID"
// @Param        only_future  query     bool    false  "Only future slots"
// @Success      200          {array}   Slot
// @Failure      404          {object}  api.ErrorResponse
// @Router       /gym/{gymID}/slots [get]
func (h *Handler) ListSlots(c *gin.Context) {
	gymID, err := strconv.Atoi(c.Param("gymID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid gym ID"})
		return
	}

	onlyFuture := c.DefaultQuery("only_future", "true") == "true"

	slots, err := h.service.ListSlots(c.Request.Context(), gymID, onlyFuture)
	if err != nil {
		h.respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, slots)
}
