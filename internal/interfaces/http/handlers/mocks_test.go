package handlers

import (
	"context"

	catUC "grievance/internal/application/category/usecases"
	notifUC "grievance/internal/application/notification/usecases"
	"grievance/internal/application/user/dto"
	"grievance/internal/application/user/usecases"
)

// =====================================================================
// Auth executor mocks
// =====================================================================

type mockRegisterExecutor struct {
	executeFn func(ctx context.Context, cmd usecases.RegisterCommand) (*usecases.AuthResult, error)
}

func (m *mockRegisterExecutor) Execute(ctx context.Context, cmd usecases.RegisterCommand) (*usecases.AuthResult, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return nil, nil
}

type mockLoginExecutor struct {
	executeFn func(ctx context.Context, cmd usecases.LoginCommand) (*usecases.AuthResult, error)
}

func (m *mockLoginExecutor) Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.AuthResult, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return nil, nil
}

type mockVerifyEmailExecutor struct {
	executeFn func(ctx context.Context, cmd usecases.VerifyEmailCommand) (*dto.UserDTO, error)
}

func (m *mockVerifyEmailExecutor) Execute(ctx context.Context, cmd usecases.VerifyEmailCommand) (*dto.UserDTO, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return nil, nil
}

type mockResendCodeExecutor struct {
	executeFn func(ctx context.Context, cmd usecases.ResendCodeCommand) error
}

func (m *mockResendCodeExecutor) Execute(ctx context.Context, cmd usecases.ResendCodeCommand) error {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return nil
}

type mockInitiateGoogleLoginExecutor struct {
	executeFn func(ctx context.Context) (*usecases.GoogleLoginRedirect, error)
}

func (m *mockInitiateGoogleLoginExecutor) Execute(ctx context.Context) (*usecases.GoogleLoginRedirect, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx)
	}
	return nil, nil
}

type mockHandleGoogleCallbackExecutor struct {
	executeFn func(ctx context.Context, cmd usecases.GoogleCallbackCommand) (*usecases.GoogleCallbackResult, error)
}

func (m *mockHandleGoogleCallbackExecutor) Execute(ctx context.Context, cmd usecases.GoogleCallbackCommand) (*usecases.GoogleCallbackResult, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return nil, nil
}

type mockCompleteGoogleRegistrationExecutor struct {
	executeFn func(ctx context.Context, cmd usecases.CompleteGoogleRegistrationCommand) (*usecases.AuthResult, error)
}

func (m *mockCompleteGoogleRegistrationExecutor) Execute(ctx context.Context, cmd usecases.CompleteGoogleRegistrationCommand) (*usecases.AuthResult, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return nil, nil
}

type mockGetProfileExecutor struct {
	executeFn func(ctx context.Context, userID uint) (*dto.UserDTO, error)
}

func (m *mockGetProfileExecutor) Execute(ctx context.Context, userID uint) (*dto.UserDTO, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, userID)
	}
	return nil, nil
}

// =====================================================================
// User executor mocks
// =====================================================================

type mockUpdateProfileExecutor struct {
	executeFn func(ctx context.Context, cmd usecases.UpdateProfileCommand) (*dto.UserDTO, error)
}

func (m *mockUpdateProfileExecutor) Execute(ctx context.Context, cmd usecases.UpdateProfileCommand) (*dto.UserDTO, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return nil, nil
}

type mockListUsersExecutor struct {
	executeFn func(ctx context.Context, query usecases.ListUsersQuery) (*usecases.ListUsersResult, error)
}

func (m *mockListUsersExecutor) Execute(ctx context.Context, query usecases.ListUsersQuery) (*usecases.ListUsersResult, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, query)
	}
	return nil, nil
}

type mockUpdateUserExecutor struct {
	executeFn func(ctx context.Context, cmd usecases.UpdateUserCommand) (*dto.UserDTO, error)
}

func (m *mockUpdateUserExecutor) Execute(ctx context.Context, cmd usecases.UpdateUserCommand) (*dto.UserDTO, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return nil, nil
}

type mockDeleteUserExecutor struct {
	executeFn func(ctx context.Context, cmd usecases.DeleteUserCommand) error
}

func (m *mockDeleteUserExecutor) Execute(ctx context.Context, cmd usecases.DeleteUserCommand) error {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return nil
}

// =====================================================================
// Notification executor mocks
// =====================================================================

type mockListNotificationsExecutor struct {
	executeFn func(ctx context.Context, userID uint) (*notifUC.ListNotificationsResult, error)
}

func (m *mockListNotificationsExecutor) Execute(ctx context.Context, userID uint) (*notifUC.ListNotificationsResult, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, userID)
	}
	return nil, nil
}

type mockMarkReadExecutor struct {
	executeFn func(ctx context.Context, notificationID, userID uint) error
}

func (m *mockMarkReadExecutor) Execute(ctx context.Context, notificationID, userID uint) error {
	if m.executeFn != nil {
		return m.executeFn(ctx, notificationID, userID)
	}
	return nil
}

type mockMarkAllReadExecutor struct {
	executeFn func(ctx context.Context, userID uint) error
}

func (m *mockMarkAllReadExecutor) Execute(ctx context.Context, userID uint) error {
	if m.executeFn != nil {
		return m.executeFn(ctx, userID)
	}
	return nil
}

// =====================================================================
// Category executor mocks
// =====================================================================

type mockListCategoriesExecutor struct {
	executeFn func(ctx context.Context, includeInactive bool) ([]*catUC.CategoryDTO, error)
}

func (m *mockListCategoriesExecutor) Execute(ctx context.Context, includeInactive bool) ([]*catUC.CategoryDTO, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, includeInactive)
	}
	return nil, nil
}

type mockCreateCategoryExecutor struct {
	executeFn func(ctx context.Context, cmd catUC.CreateCategoryCommand) (*catUC.CategoryDTO, error)
}

func (m *mockCreateCategoryExecutor) Execute(ctx context.Context, cmd catUC.CreateCategoryCommand) (*catUC.CategoryDTO, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return nil, nil
}

type mockUpdateCategoryExecutor struct {
	executeFn func(ctx context.Context, cmd catUC.UpdateCategoryCommand) (*catUC.CategoryDTO, error)
}

func (m *mockUpdateCategoryExecutor) Execute(ctx context.Context, cmd catUC.UpdateCategoryCommand) (*catUC.CategoryDTO, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return nil, nil
}

type mockDeleteCategoryExecutor struct {
	executeFn func(ctx context.Context, categoryID uint) error
}

func (m *mockDeleteCategoryExecutor) Execute(ctx context.Context, categoryID uint) error {
	if m.executeFn != nil {
		return m.executeFn(ctx, categoryID)
	}
	return nil
}

type mockListOfficesExecutor struct {
	executeFn func(ctx context.Context, includeInactive bool) ([]*catUC.OfficeDTO, error)
}

func (m *mockListOfficesExecutor) Execute(ctx context.Context, includeInactive bool) ([]*catUC.OfficeDTO, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, includeInactive)
	}
	return nil, nil
}
