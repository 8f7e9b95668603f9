package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gamereviews-backend/internal/domains/user/model"
	"gamereviews-backend/internal/shared/apierr"
	"gamereviews-backend/internal/shared/testutil"
)

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *mockUserService) GetUser(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserService) CreateUser(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserService) UpdateUser(ctx context.Context, username string, req model.UpdateUserRequest) (*model.User, error) {
	args := m.Called(ctx, username, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func setupUserRouter(svc *mockUserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewUserHandler(svc)

	router := gin.New()
	router.GET("/api/users", h.ListUsers)
	router.POST("/api/users", h.CreateUser)
	router.GET("/api/users/:username", h.GetUser)
	router.PATCH("/api/users/:username", h.UpdateUser)
	return router
}

func TestListUsers(t *testing.T) {
	svc := new(mockUserService)
	svc.On("ListUsers", mock.Anything).Return([]model.User{
		{Username: "mallionaire", Name: "haz", AvatarURL: "https://example.com/haz.jpg"},
	}, nil)

	w := testutil.PerformRequest(setupUserRouter(svc), http.MethodGet, "/api/users", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"users":[{"username":"mallionaire","name":"haz","avatar_url":"https://example.com/haz.jpg"}]}`,
		w.Body.String())
}

func TestGetUser(t *testing.T) {
	svc := new(mockUserService)
	svc.On("GetUser", mock.Anything, "mallionaire").Return(&model.User{
		Username: "mallionaire", Name: "haz", AvatarURL: "https://example.com/haz.jpg",
	}, nil)

	w := testutil.PerformRequest(setupUserRouter(svc), http.MethodGet, "/api/users/mallionaire", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"mallionaire"`)
}

func TestGetUserMissing(t *testing.T) {
	svc := new(mockUserService)
	svc.On("GetUser", mock.Anything, "nobody").Return(nil, apierr.NotFound("nobody", "users"))

	w := testutil.PerformRequest(setupUserRouter(svc), http.MethodGet, "/api/users/nobody", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"msg":"input 'nobody' not found in 'users' database"}`, w.Body.String())
}

func TestCreateUser(t *testing.T) {
	svc := new(mockUserService)
	svc.On("CreateUser", mock.Anything, mock.Anything).Return(&model.User{
		Username: "bobross", Name: "Bob Ross", AvatarURL: "https://example.com/bob.png",
	}, nil)

	body := `{"username":"bobross","name":"Bob Ross","avatar_url":"https://example.com/bob.png"}`
	w := testutil.PerformRequest(setupUserRouter(svc), http.MethodPost, "/api/users", body)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"bobross"`)
}

func TestCreateUserMissingKeys(t *testing.T) {
	svc := new(mockUserService)

	w := testutil.PerformRequest(setupUserRouter(svc), http.MethodPost, "/api/users", `{"username":"bobross"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"msg":"Invalid input"}`, w.Body.String())
	svc.AssertNotCalled(t, "CreateUser")
}

func TestCreateUserDuplicate(t *testing.T) {
	svc := new(mockUserService)
	svc.On("CreateUser", mock.Anything, mock.Anything).Return(nil, apierr.DuplicateUsername())

	body := `{"username":"mallionaire","name":"haz","avatar_url":"https://example.com/haz.jpg"}`
	w := testutil.PerformRequest(setupUserRouter(svc), http.MethodPost, "/api/users", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"msg":"Username already exists"}`, w.Body.String())
}

func TestUpdateUser(t *testing.T) {
	svc := new(mockUserService)
	name := "Hazel"
	svc.On("UpdateUser", mock.Anything, "mallionaire", model.UpdateUserRequest{Name: &name}).
		Return(&model.User{Username: "mallionaire", Name: "Hazel", AvatarURL: "https://example.com/haz.jpg"}, nil)

	w := testutil.PerformRequest(setupUserRouter(svc), http.MethodPatch, "/api/users/mallionaire", `{"name":"Hazel"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Hazel"`)
}

func TestUpdateUserChunkedBody(t *testing.T) {
	// A chunked request has no declared length; the body must still be
	// parsed.
	svc := new(mockUserService)
	name := "Hazel"
	svc.On("UpdateUser", mock.Anything, "mallionaire", model.UpdateUserRequest{Name: &name}).
		Return(&model.User{Username: "mallionaire", Name: "Hazel"}, nil)

	router := setupUserRouter(svc)
	req := httptest.NewRequest(http.MethodPatch, "/api/users/mallionaire", strings.NewReader(`{"name":"Hazel"}`))
	req.Header.Set("Content-Type", "application/json")
	req.ContentLength = -1

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestUpdateUserEmptyBody(t *testing.T) {
	svc := new(mockUserService)
	svc.On("UpdateUser", mock.Anything, "mallionaire", model.UpdateUserRequest{}).
		Return(&model.User{Username: "mallionaire", Name: "haz"}, nil)

	w := testutil.PerformRequest(setupUserRouter(svc), http.MethodPatch, "/api/users/mallionaire", "")

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}
