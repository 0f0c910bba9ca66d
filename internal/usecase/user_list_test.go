package usecase_test

import (
	"context"
	"testing"

	"user-directory/internal/domain"
	"user-directory/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserList_InitLoadsUsers(t *testing.T) {
	users := []domain.User{
		{ID: intPtr(1), Name: "Test User 1", Email: "test1@test.com", Designation: "Developer"},
		{ID: intPtr(2), Name: "Test User 2", Email: "test2@test.com", Designation: "Designer"},
	}
	dir := new(MockUserDirectory)
	dir.On("ListUsers", mock.Anything).Return(users, nil).Once()

	c := usecase.NewUserListController(dir)
	assert.False(t, c.Loading())
	assert.Empty(t, c.Users())

	require.NoError(t, c.Init(context.Background()))
	assert.Len(t, c.Users(), 2)
	assert.Equal(t, users, c.Users())
	assert.False(t, c.Loading())
	assert.NoError(t, c.Err())
	dir.AssertExpectations(t)
}

func TestUserList_LoadingDuringFetch(t *testing.T) {
	dir := new(MockUserDirectory)
	c := usecase.NewUserListController(dir)

	var loadingDuringFetch bool
	dir.On("ListUsers", mock.Anything).Run(func(args mock.Arguments) {
		loadingDuringFetch = c.Loading()
	}).Return([]domain.User{}, nil).Once()

	require.NoError(t, c.Init(context.Background()))
	assert.True(t, loadingDuringFetch)
	assert.False(t, c.Loading())
}

func TestUserList_FailureClearsLoading(t *testing.T) {
	previous := []domain.User{{ID: intPtr(1), Name: "Test User", Email: "test@test.com", Designation: "Developer"}}
	dir := new(MockUserDirectory)
	dir.On("ListUsers", mock.Anything).Return(previous, nil).Once()
	dir.On("ListUsers", mock.Anything).Return(nil, domain.ErrBackendUnreachable).Once()

	c := usecase.NewUserListController(dir)
	require.NoError(t, c.Init(context.Background()))

	err := c.Init(context.Background())
	assert.ErrorIs(t, err, domain.ErrBackendUnreachable)
	assert.False(t, c.Loading())
	assert.ErrorIs(t, c.Err(), domain.ErrBackendUnreachable)
	// The last successful fetch stays in place
	assert.Equal(t, previous, c.Users())

	state := c.State()
	assert.False(t, state.Loading)
	assert.Contains(t, state.Error, "unreachable")
}

func TestUserList_RecoversAfterFailure(t *testing.T) {
	dir := new(MockUserDirectory)
	dir.On("ListUsers", mock.Anything).Return(nil, domain.ErrBackendStatus).Once()
	dir.On("ListUsers", mock.Anything).Return([]domain.User{{Name: "Back"}}, nil).Once()

	c := usecase.NewUserListController(dir)
	assert.Error(t, c.Init(context.Background()))
	require.NoError(t, c.Init(context.Background()))
	assert.NoError(t, c.Err())
	assert.Len(t, c.Users(), 1)
}

func TestUserList_UsersIsCopy(t *testing.T) {
	dir := new(MockUserDirectory)
	dir.On("ListUsers", mock.Anything).Return([]domain.User{{Name: "Original"}}, nil).Once()

	c := usecase.NewUserListController(dir)
	require.NoError(t, c.Init(context.Background()))

	got := c.Users()
	got[0].Name = "Changed"
	assert.Equal(t, "Original", c.Users()[0].Name)
}

// blockingFirstFetch makes the first ListUsers call wait for release, returning first;
// every later call returns second immediately.
func blockingFirstFetch(dir *MockUserDirectory, first, second []domain.User, firstErr error) (started, release chan struct{}) {
	started = make(chan struct{})
	release = make(chan struct{})
	dir.On("ListUsers", mock.Anything).Run(func(mock.Arguments) {
		close(started)
		<-release
	}).Return(first, firstErr).Once()
	dir.On("ListUsers", mock.Anything).Return(second, nil)
	return started, release
}

type refreshResult struct {
	state domain.UserListState
	err   error
}

func TestUserList_OverlappingFetches(t *testing.T) {
	stale := []domain.User{{ID: intPtr(1), Name: "Stale"}}
	fresh := []domain.User{{ID: intPtr(1), Name: "Fresh"}}

	dir := new(MockUserDirectory)
	started, release := blockingFirstFetch(dir, stale, fresh, nil)
	c := usecase.NewUserListController(dir)

	done := make(chan refreshResult, 1)
	go func() {
		state, err := c.Refresh(context.Background())
		done <- refreshResult{state, err}
	}()
	<-started

	second, err := c.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fresh, second.Users)
	// The older fetch is still outstanding
	assert.True(t, second.Loading)
	assert.True(t, c.Loading())

	close(release)
	first := <-done
	require.NoError(t, first.err)
	assert.Equal(t, fresh, first.state.Users)
	assert.False(t, first.state.Loading)

	state := c.State()
	assert.Equal(t, fresh, state.Users)
	assert.False(t, state.Loading)
	assert.Empty(t, state.Error)
}

func TestUserList_SupersededFailureIsDiscarded(t *testing.T) {
	fresh := []domain.User{{ID: intPtr(2), Name: "Fresh"}}

	dir := new(MockUserDirectory)
	started, release := blockingFirstFetch(dir, nil, fresh, domain.ErrBackendUnreachable)
	c := usecase.NewUserListController(dir)

	done := make(chan error, 1)
	go func() { done <- c.Init(context.Background()) }()
	<-started

	require.NoError(t, c.Init(context.Background()))
	close(release)
	assert.NoError(t, <-done)

	assert.NoError(t, c.Err())
	state := c.State()
	assert.Equal(t, fresh, state.Users)
	assert.Empty(t, state.Error)
	assert.False(t, state.Loading)
}

func TestUserListUsecase_LoadReturnsOwnFetch(t *testing.T) {
	first := []domain.User{{ID: intPtr(1), Name: "First"}}
	second := []domain.User{{ID: intPtr(1), Name: "First"}, {ID: intPtr(2), Name: "Second"}}

	dir := new(MockUserDirectory)
	dir.On("ListUsers", mock.Anything).Return(first, nil).Once()
	dir.On("ListUsers", mock.Anything).Return(second, nil).Once()
	uc := usecase.NewUserListUsecase(dir)

	s1, err := uc.Load(context.Background())
	require.NoError(t, err)
	s2, err := uc.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, s1.Users)
	assert.Equal(t, second, s2.Users)
	dir.AssertExpectations(t)
}
