package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/what2do/eventsphere/internal/clock"
	"github.com/what2do/eventsphere/internal/domain"
	"github.com/what2do/eventsphere/internal/service/ports/mocks"
)

func newCircleService(t *testing.T) (*CircleService, *mocks.MockCircleRepo) {
	t.Helper()
	repo := mocks.NewMockCircleRepo(t)
	return NewCircleService(repo, clock.NewFixed(testNow)), repo
}

func TestCircleService_Create_Success(t *testing.T) {
	svc, repo := newCircleService(t)

	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c *domain.Circle) bool {
		return c.CreatorID == "u1" && c.Name == "Climbers" && c.IsPrivate
	})).Return(nil)

	circle, err := svc.Create(context.Background(), domain.CreateCircleInput{
		CreatorID:   "u1",
		Name:        "  Climbers ",
		Description: " weekend bouldering ",
		IsPrivate:   true,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, circle.ID)
	assert.Equal(t, "Climbers", circle.Name)
	assert.Equal(t, "weekend bouldering", circle.Description)
	assert.Equal(t, testNow, circle.CreatedAt)
}

func TestCircleService_Create_EmptyName(t *testing.T) {
	svc, _ := newCircleService(t)

	_, err := svc.Create(context.Background(), domain.CreateCircleInput{CreatorID: "u1", Name: "   "})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCircleService_Create_UnknownCreator(t *testing.T) {
	svc, repo := newCircleService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrUserNotFound)

	_, err := svc.Create(context.Background(), domain.CreateCircleInput{CreatorID: "ghost", Name: "Climbers"})

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCircleService_Join_Public(t *testing.T) {
	svc, repo := newCircleService(t)

	repo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Circle{ID: "c1"}, nil)
	repo.EXPECT().AddMember(mock.Anything, &domain.CircleMember{
		CircleID: "c1",
		UserID:   "u2",
		Role:     domain.CircleRoleMember,
		JoinedAt: testNow,
	}).Return(nil)

	err := svc.Join(context.Background(), "c1", "u2")

	require.NoError(t, err)
}

func TestCircleService_Join_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		circle  *domain.Circle
		err     error
		wantErr error
	}{
		{"private circle", &domain.Circle{ID: "c1", IsPrivate: true}, nil, domain.ErrCirclePrivate},
		{"unknown circle", nil, domain.ErrCircleNotFound, domain.ErrCircleNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newCircleService(t)
			repo.EXPECT().GetByID(mock.Anything, "c1").Return(tt.circle, tt.err)

			err := svc.Join(context.Background(), "c1", "u2")

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCircleService_AddMember_ByAdmin(t *testing.T) {
	svc, repo := newCircleService(t)

	repo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Circle{ID: "c1", IsPrivate: true}, nil)
	repo.EXPECT().GetMember(mock.Anything, "c1", "admin").
		Return(&domain.CircleMember{CircleID: "c1", UserID: "admin", Role: domain.CircleRoleAdmin}, nil)
	repo.EXPECT().AddMember(mock.Anything, mock.MatchedBy(func(m *domain.CircleMember) bool {
		return m.UserID == "u2" && m.Role == domain.CircleRoleMember
	})).Return(nil)

	err := svc.AddMember(context.Background(), "c1", "admin", "u2")

	require.NoError(t, err)
}

func TestCircleService_AddMember_NotAdmin(t *testing.T) {
	tests := []struct {
		name   string
		member *domain.CircleMember
		err    error
	}{
		{"plain member", &domain.CircleMember{CircleID: "c1", UserID: "u1", Role: domain.CircleRoleMember}, nil},
		{"outsider", nil, domain.ErrNotCircleMember},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newCircleService(t)
			repo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Circle{ID: "c1"}, nil)
			repo.EXPECT().GetMember(mock.Anything, "c1", "u1").Return(tt.member, tt.err)

			err := svc.AddMember(context.Background(), "c1", "u1", "u2")

			assert.ErrorIs(t, err, domain.ErrNotCircleAdmin)
		})
	}
}

func TestCircleService_Leave(t *testing.T) {
	svc, repo := newCircleService(t)

	repo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Circle{ID: "c1", CreatorID: "owner"}, nil)
	repo.EXPECT().RemoveMember(mock.Anything, "c1", "u2").Return(nil)

	err := svc.Leave(context.Background(), "c1", "u2")

	require.NoError(t, err)
}

func TestCircleService_Leave_Creator(t *testing.T) {
	svc, repo := newCircleService(t)

	repo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Circle{ID: "c1", CreatorID: "owner"}, nil)

	err := svc.Leave(context.Background(), "c1", "owner")

	assert.ErrorIs(t, err, domain.ErrCreatorCannotLeave)
}

func TestCircleService_Leave_NotMember(t *testing.T) {
	svc, repo := newCircleService(t)

	repo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Circle{ID: "c1", CreatorID: "owner"}, nil)
	repo.EXPECT().RemoveMember(mock.Anything, "c1", "u2").Return(domain.ErrNotCircleMember)

	err := svc.Leave(context.Background(), "c1", "u2")

	assert.ErrorIs(t, err, domain.ErrNotCircleMember)
}

func TestCircleService_ListMine(t *testing.T) {
	svc, repo := newCircleService(t)

	repo.EXPECT().ListByMember(mock.Anything, "u1").Return([]*domain.Circle{{ID: "c1"}, {ID: "c2"}}, nil)

	circles, err := svc.ListMine(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, circles, 2)
}

func TestCircleService_ListMine_Error(t *testing.T) {
	svc, repo := newCircleService(t)

	repo.EXPECT().ListByMember(mock.Anything, "u1").Return(nil, errors.New("db error"))

	_, err := svc.ListMine(context.Background(), "u1")

	require.Error(t, err)
}

func TestCircleService_Details_Public(t *testing.T) {
	svc, repo := newCircleService(t)

	repo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Circle{ID: "c1", Name: "Runners", MemberCount: 2}, nil)
	repo.EXPECT().ListMembers(mock.Anything, "c1").Return([]domain.CircleMember{
		{UserID: "owner", Role: domain.CircleRoleAdmin},
		{UserID: "u2", Role: domain.CircleRoleMember},
	}, nil)
	repo.EXPECT().ListEvents(mock.Anything, "c1").Return([]*domain.Event{{ID: "e1"}}, nil)

	details, err := svc.Details(context.Background(), "c1", "")

	require.NoError(t, err)
	assert.Equal(t, "Runners", details.Circle.Name)
	assert.Len(t, details.Members, 2)
	require.Len(t, details.Events, 1)
	assert.Equal(t, "e1", details.Events[0].ID)
}

func TestCircleService_Details_PrivateForMember(t *testing.T) {
	svc, repo := newCircleService(t)

	repo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Circle{ID: "c1", IsPrivate: true}, nil)
	repo.EXPECT().GetMember(mock.Anything, "c1", "u2").
		Return(&domain.CircleMember{CircleID: "c1", UserID: "u2", Role: domain.CircleRoleMember}, nil)
	repo.EXPECT().ListMembers(mock.Anything, "c1").Return(nil, nil)
	repo.EXPECT().ListEvents(mock.Anything, "c1").Return(nil, nil)

	details, err := svc.Details(context.Background(), "c1", "u2")

	require.NoError(t, err)
	assert.Empty(t, details.Events)
}

func TestCircleService_Details_PrivateLooksMissing(t *testing.T) {
	svc, repo := newCircleService(t)

	repo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Circle{ID: "c1", IsPrivate: true}, nil)
	repo.EXPECT().GetMember(mock.Anything, "c1", "u9").Return(nil, domain.ErrNotCircleMember)

	_, err := svc.Details(context.Background(), "c1", "u9")

	assert.ErrorIs(t, err, domain.ErrCircleNotFound)
}
