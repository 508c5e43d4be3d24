package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/what2do/eventsphere/internal/domain"
	"github.com/what2do/eventsphere/internal/handler/dto"
)

// --- Circles ---

func TestHandler_CreateCircle_Success(t *testing.T) {
	env := setupRouter(t)

	userID := uuid.New().String()
	circle := &domain.Circle{
		ID:          uuid.New().String(),
		CreatorID:   userID,
		Name:        "Climbers",
		IsPrivate:   true,
		MemberCount: 1,
		CreatedAt:   time.Now(),
	}
	env.circleSvc.EXPECT().Create(mock.Anything, domain.CreateCircleInput{
		CreatorID: userID,
		Name:      "Climbers",
		IsPrivate: true,
	}).Return(circle, nil)

	w := env.do(http.MethodPost, "/api/circles", userID, []byte(`{"name":"Climbers","is_private":true}`))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CircleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Climbers", resp.Name)
	assert.True(t, resp.IsPrivate)
	assert.Equal(t, 1, resp.MemberCount)
}

func TestHandler_CreateCircle_BadRequest(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodPost, "/api/circles", uuid.New().String(), []byte(`{"description":"no name"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateCircle_NoPrincipal(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodPost, "/api/circles", "", []byte(`{"name":"Climbers"}`))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_MyCircles(t *testing.T) {
	env := setupRouter(t)

	userID := uuid.New().String()
	env.circleSvc.EXPECT().ListMine(mock.Anything, userID).Return([]*domain.Circle{
		{ID: "c1", Name: "Runners", CreatedAt: time.Now()},
		{ID: "c2", Name: "Readers", CreatedAt: time.Now()},
	}, nil)

	w := env.do(http.MethodGet, "/api/me/circles", userID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.CircleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_GetCircle_Success(t *testing.T) {
	env := setupRouter(t)

	circleID := uuid.New().String()
	userID := uuid.New().String()
	details := &domain.CircleDetails{
		Circle: domain.Circle{ID: circleID, Name: "Runners", CreatedAt: time.Now()},
		Members: []domain.CircleMember{
			{CircleID: circleID, UserID: userID, Username: "anna", Role: domain.CircleRoleAdmin, JoinedAt: time.Now()},
		},
		Events: []domain.Event{{ID: "e1", Title: "Morning run", StartsAt: time.Now(), CreatedAt: time.Now()}},
	}
	env.circleSvc.EXPECT().Details(mock.Anything, circleID, userID).Return(details, nil)

	w := env.do(http.MethodGet, "/api/circles/"+circleID, userID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CircleDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Members, 1)
	assert.Equal(t, "admin", resp.Members[0].Role)
	require.Len(t, resp.Events, 1)
	assert.Equal(t, "Morning run", resp.Events[0].Title)
}

func TestHandler_GetCircle_PrivateLooksMissing(t *testing.T) {
	env := setupRouter(t)

	circleID := uuid.New().String()
	userID := uuid.New().String()
	env.circleSvc.EXPECT().Details(mock.Anything, circleID, userID).Return(nil, domain.ErrCircleNotFound)

	w := env.do(http.MethodGet, "/api/circles/"+circleID, userID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetCircle_InvalidID(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodGet, "/api/circles/nope", uuid.New().String(), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_JoinCircle(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"public circle", nil, http.StatusOK},
		{"private circle", domain.ErrCirclePrivate, http.StatusForbidden},
		{"unknown circle", domain.ErrCircleNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupRouter(t)

			circleID := uuid.New().String()
			userID := uuid.New().String()
			env.circleSvc.EXPECT().Join(mock.Anything, circleID, userID).Return(tt.err)

			w := env.do(http.MethodPost, "/api/circles/"+circleID+"/join", userID, nil)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestHandler_AddCircleMember_Success(t *testing.T) {
	env := setupRouter(t)

	circleID := uuid.New().String()
	adminID := uuid.New().String()
	newcomer := uuid.New().String()
	env.circleSvc.EXPECT().AddMember(mock.Anything, circleID, adminID, newcomer).Return(nil)

	body := []byte(fmt.Sprintf(`{"user_id":%q}`, newcomer))
	w := env.do(http.MethodPost, "/api/circles/"+circleID+"/members", adminID, body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"added"}`, w.Body.String())
}

func TestHandler_AddCircleMember_NotAdmin(t *testing.T) {
	env := setupRouter(t)

	circleID := uuid.New().String()
	userID := uuid.New().String()
	newcomer := uuid.New().String()
	env.circleSvc.EXPECT().AddMember(mock.Anything, circleID, userID, newcomer).Return(domain.ErrNotCircleAdmin)

	body := []byte(fmt.Sprintf(`{"user_id":%q}`, newcomer))
	w := env.do(http.MethodPost, "/api/circles/"+circleID+"/members", userID, body)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_AddCircleMember_InvalidUserID(t *testing.T) {
	env := setupRouter(t)

	body := []byte(`{"user_id":"bob"}`)
	w := env.do(http.MethodPost, "/api/circles/"+uuid.New().String()+"/members", uuid.New().String(), body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_LeaveCircle(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"member leaves", nil, http.StatusOK},
		{"creator stays", domain.ErrCreatorCannotLeave, http.StatusConflict},
		{"not a member", domain.ErrNotCircleMember, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupRouter(t)

			circleID := uuid.New().String()
			userID := uuid.New().String()
			env.circleSvc.EXPECT().Leave(mock.Anything, circleID, userID).Return(tt.err)

			w := env.do(http.MethodPost, "/api/circles/"+circleID+"/leave", userID, nil)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

// --- Follows & feed ---

func TestHandler_FollowUser_Success(t *testing.T) {
	env := setupRouter(t)

	userID := uuid.New().String()
	target := uuid.New().String()
	env.feedSvc.EXPECT().Follow(mock.Anything, userID, target).Return(nil)

	w := env.do(http.MethodPost, "/api/users/"+target+"/follow", userID, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"following"}`, w.Body.String())
}

func TestHandler_FollowUser_Self(t *testing.T) {
	env := setupRouter(t)

	userID := uuid.New().String()
	env.feedSvc.EXPECT().Follow(mock.Anything, userID, userID).
		Return(fmt.Errorf("%w: cannot follow yourself", domain.ErrValidation))

	w := env.do(http.MethodPost, "/api/users/"+userID+"/follow", userID, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_FollowUser_UnknownUser(t *testing.T) {
	env := setupRouter(t)

	userID := uuid.New().String()
	target := uuid.New().String()
	env.feedSvc.EXPECT().Follow(mock.Anything, userID, target).Return(fmt.Errorf("get user: %w", domain.ErrUserNotFound))

	w := env.do(http.MethodPost, "/api/users/"+target+"/follow", userID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_UnfollowUser(t *testing.T) {
	env := setupRouter(t)

	userID := uuid.New().String()
	target := uuid.New().String()
	env.feedSvc.EXPECT().Unfollow(mock.Anything, userID, target).Return(nil)

	w := env.do(http.MethodDelete, "/api/users/"+target+"/follow", userID, nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_MyFeed(t *testing.T) {
	env := setupRouter(t)

	userID := uuid.New().String()
	friend := uuid.New().String()
	concert := domain.Event{ID: "e1", OrganizerID: friend, Title: "Concert", StartsAt: time.Now(), CreatedAt: time.Now()}
	feed := &domain.Feed{
		Events: []domain.Event{concert},
		Activity: []domain.FeedActivity{
			{UserID: friend, Username: "boris", Event: concert, UpdatedAt: time.Now()},
		},
		Suggested: []domain.User{{ID: uuid.New().String(), Username: "vera", CreatedAt: time.Now()}},
	}
	env.feedSvc.EXPECT().Feed(mock.Anything, userID).Return(feed, nil)

	w := env.do(http.MethodGet, "/api/me/feed", userID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.FeedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Events, 1)
	require.Len(t, resp.Activity, 1)
	assert.Equal(t, "boris", resp.Activity[0].Username)
	assert.Equal(t, "Concert", resp.Activity[0].Event.Title)
	require.Len(t, resp.Suggested, 1)
	assert.Equal(t, "vera", resp.Suggested[0].Username)
}

func TestHandler_MyFeed_NoPrincipal(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodGet, "/api/me/feed", "not-a-uuid", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
