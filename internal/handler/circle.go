package handler

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
	"github.com/what2do/eventsphere/internal/domain"
	"github.com/what2do/eventsphere/internal/handler/dto"
)

func (h *Handler) CreateCircle(c *ginext.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	var req dto.CreateCircleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	circle, err := h.circleService.Create(c.Request.Context(), domain.CreateCircleInput{
		CreatorID:   userID,
		Name:        req.Name,
		Description: req.Description,
		IsPrivate:   req.IsPrivate,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCircleResponse(circle))
}

func (h *Handler) MyCircles(c *ginext.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	circles, err := h.circleService.ListMine(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CircleResponse, 0, len(circles))
	for _, circle := range circles {
		resp = append(resp, dto.ToCircleResponse(circle))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetCircle(c *ginext.Context) {
	circleID, ok := pathID(c, "invalid circle id")
	if !ok {
		return
	}
	userID, ok := principal(c)
	if !ok {
		return
	}

	details, err := h.circleService.Details(c.Request.Context(), circleID, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCircleDetailsResponse(details))
}

func (h *Handler) JoinCircle(c *ginext.Context) {
	circleID, ok := pathID(c, "invalid circle id")
	if !ok {
		return
	}
	userID, ok := principal(c)
	if !ok {
		return
	}

	if err := h.circleService.Join(c.Request.Context(), circleID, userID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "joined"})
}

func (h *Handler) AddCircleMember(c *ginext.Context) {
	circleID, ok := pathID(c, "invalid circle id")
	if !ok {
		return
	}
	userID, ok := principal(c)
	if !ok {
		return
	}

	var req dto.AddCircleMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.circleService.AddMember(c.Request.Context(), circleID, userID, req.UserID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "added"})
}

func (h *Handler) LeaveCircle(c *ginext.Context) {
	circleID, ok := pathID(c, "invalid circle id")
	if !ok {
		return
	}
	userID, ok := principal(c)
	if !ok {
		return
	}

	if err := h.circleService.Leave(c.Request.Context(), circleID, userID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "left"})
}
