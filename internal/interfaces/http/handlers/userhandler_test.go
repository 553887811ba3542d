package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grievance/internal/application/user/dto"
	"grievance/internal/application/user/usecases"
	"grievance/internal/interfaces/http/handlers/testutil"
	"grievance/internal/shared/authorization"
	"grievance/internal/shared/errors"
)

func newTestUserHandler(
	getProfile *mockGetProfileExecutor,
	updateProfile *mockUpdateProfileExecutor,
	listUsers *mockListUsersExecutor,
	updateUser *mockUpdateUserExecutor,
	deleteUser *mockDeleteUserExecutor,
) *UserHandler {
	if getProfile == nil {
		getProfile = &mockGetProfileExecutor{}
	}
	if updateProfile == nil {
		updateProfile = &mockUpdateProfileExecutor{}
	}
	if listUsers == nil {
		listUsers = &mockListUsersExecutor{}
	}
	if updateUser == nil {
		updateUser = &mockUpdateUserExecutor{}
	}
	if deleteUser == nil {
		deleteUser = &mockDeleteUserExecutor{}
	}
	return NewUserHandler(getProfile, updateProfile, listUsers, updateUser, deleteUser)
}

func TestUserHandler_GetProfile_Success(t *testing.T) {
	handler := newTestUserHandler(&mockGetProfileExecutor{
		executeFn: func(ctx context.Context, userID uint) (*dto.UserDTO, error) {
			return &dto.UserDTO{ID: userID, Email: "juan.delacruz@g.batstate-u.edu.ph"}, nil
		},
	}, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/users/profile", nil)
	testutil.SetAuthContext(c, 3, authorization.RoleStudent)

	handler.GetProfile(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestUserHandler_GetProfile_NotFound(t *testing.T) {
	handler := newTestUserHandler(&mockGetProfileExecutor{
		executeFn: func(ctx context.Context, userID uint) (*dto.UserDTO, error) {
			return nil, errors.NewNotFoundError("user not found")
		},
	}, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/users/profile", nil)
	testutil.SetAuthContext(c, 99, authorization.RoleStudent)

	handler.GetProfile(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserHandler_UpdateProfile_Success(t *testing.T) {
	var captured usecases.UpdateProfileCommand
	handler := newTestUserHandler(nil, &mockUpdateProfileExecutor{
		executeFn: func(ctx context.Context, cmd usecases.UpdateProfileCommand) (*dto.UserDTO, error) {
			captured = cmd
			return &dto.UserDTO{ID: cmd.UserID, FirstName: cmd.FirstName}, nil
		},
	}, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPut, "/users/profile", gin.H{
		"first_name": "Juan",
		"last_name":  "Dela Cruz",
		"program":    "BSCS",
		"year_level": 3,
	})
	testutil.SetAuthContext(c, 3, authorization.RoleStudent)

	handler.UpdateProfile(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(3), captured.UserID)
	assert.Equal(t, "BSCS", captured.Program)
}

func TestUserHandler_UpdateProfile_MissingName(t *testing.T) {
	handler := newTestUserHandler(nil, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPut, "/users/profile", gin.H{
		"program": "BSCS",
	})
	testutil.SetAuthContext(c, 3, authorization.RoleStudent)

	handler.UpdateProfile(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandler_ListUsers_Success(t *testing.T) {
	var captured usecases.ListUsersQuery
	handler := newTestUserHandler(nil, nil, &mockListUsersExecutor{
		executeFn: func(ctx context.Context, query usecases.ListUsersQuery) (*usecases.ListUsersResult, error) {
			captured = query
			return &usecases.ListUsersResult{
				Users:    []*dto.UserDTO{{ID: 1}, {ID: 2}},
				Total:    2,
				Page:     query.Page,
				PageSize: query.PageSize,
			}, nil
		},
	}, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/users", nil)
	testutil.SetAuthContext(c, 1, authorization.RoleAdmin)
	testutil.SetQueryParams(c, map[string]string{"search": "dela", "page": "2", "page_size": "10"})

	handler.ListUsers(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dela", captured.Search)
	assert.Equal(t, 2, captured.Page)
	assert.Equal(t, 10, captured.PageSize)
}

func TestUserHandler_ListStudents_ForcesStudentRole(t *testing.T) {
	var captured usecases.ListUsersQuery
	handler := newTestUserHandler(nil, nil, &mockListUsersExecutor{
		executeFn: func(ctx context.Context, query usecases.ListUsersQuery) (*usecases.ListUsersResult, error) {
			captured = query
			return &usecases.ListUsersResult{Page: 1, PageSize: 20}, nil
		},
	}, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/users/students", nil)
	testutil.SetAuthContext(c, 1, authorization.RoleAdmin)
	testutil.SetQueryParams(c, map[string]string{"role": "admin"})

	handler.ListStudents(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, string(authorization.RoleStudent), captured.Role)
}

func TestUserHandler_UpdateUser_Success(t *testing.T) {
	var captured usecases.UpdateUserCommand
	handler := newTestUserHandler(nil, nil, nil, &mockUpdateUserExecutor{
		executeFn: func(ctx context.Context, cmd usecases.UpdateUserCommand) (*dto.UserDTO, error) {
			captured = cmd
			return &dto.UserDTO{ID: cmd.UserID}, nil
		},
	}, nil)

	role := "admin"
	active := false
	c, w := testutil.NewTestContext(http.MethodPut, "/users/5", gin.H{
		"first_name": "Maria",
		"last_name":  "Santos",
		"role":       role,
		"is_active":  active,
	})
	testutil.SetAuthContext(c, 1, authorization.RoleAdmin)
	testutil.SetURLParam(c, "id", "5")

	handler.UpdateUser(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(5), captured.UserID)
	require.NotNil(t, captured.Role)
	assert.Equal(t, "admin", *captured.Role)
	require.NotNil(t, captured.IsActive)
	assert.False(t, *captured.IsActive)
}

func TestUserHandler_UpdateUser_InvalidRole(t *testing.T) {
	handler := newTestUserHandler(nil, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPut, "/users/5", gin.H{
		"first_name": "Maria",
		"last_name":  "Santos",
		"role":       "superuser",
	})
	testutil.SetAuthContext(c, 1, authorization.RoleAdmin)
	testutil.SetURLParam(c, "id", "5")

	handler.UpdateUser(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandler_DeleteUser_Success(t *testing.T) {
	var captured usecases.DeleteUserCommand
	handler := newTestUserHandler(nil, nil, nil, nil, &mockDeleteUserExecutor{
		executeFn: func(ctx context.Context, cmd usecases.DeleteUserCommand) error {
			captured = cmd
			return nil
		},
	})

	c, w := testutil.NewTestContext(http.MethodDelete, "/users/5", nil)
	testutil.SetAuthContext(c, 1, authorization.RoleAdmin)
	testutil.SetURLParam(c, "id", "5")

	handler.DeleteUser(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, uint(5), captured.UserID)
	assert.Equal(t, uint(1), captured.ActorID)
}

func TestUserHandler_DeleteUser_SelfDeletionRejected(t *testing.T) {
	handler := newTestUserHandler(nil, nil, nil, nil, &mockDeleteUserExecutor{
		executeFn: func(ctx context.Context, cmd usecases.DeleteUserCommand) error {
			return errors.NewForbiddenError("admins cannot delete their own account")
		},
	})

	c, w := testutil.NewTestContext(http.MethodDelete, "/users/1", nil)
	testutil.SetAuthContext(c, 1, authorization.RoleAdmin)
	testutil.SetURLParam(c, "id", "1")

	handler.DeleteUser(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUserHandler_DeleteUser_InvalidID(t *testing.T) {
	handler := newTestUserHandler(nil, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodDelete, "/users/abc", nil)
	testutil.SetAuthContext(c, 1, authorization.RoleAdmin)
	testutil.SetURLParam(c, "id", "abc")

	handler.DeleteUser(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
