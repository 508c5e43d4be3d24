package handler

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
	"github.com/what2do/eventsphere/internal/handler/dto"
)

func (h *Handler) FollowUser(c *ginext.Context) {
	followingID, ok := pathID(c, "invalid user id")
	if !ok {
		return
	}
	userID, ok := principal(c)
	if !ok {
		return
	}

	if err := h.feedService.Follow(c.Request.Context(), userID, followingID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "following"})
}

func (h *Handler) UnfollowUser(c *ginext.Context) {
	followingID, ok := pathID(c, "invalid user id")
	if !ok {
		return
	}
	userID, ok := principal(c)
	if !ok {
		return
	}

	if err := h.feedService.Unfollow(c.Request.Context(), userID, followingID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) MyFeed(c *ginext.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	feed, err := h.feedService.Feed(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFeedResponse(feed))
}
