package usecases

import (
	"context"

	"grievance/internal/domain/category"
	"grievance/internal/domain/concern"
	vo "grievance/internal/domain/concern/valueobjects"
	"grievance/internal/domain/user"
	"grievance/internal/shared/logger"
)

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}

type mockConcernRepository struct {
	SaveFunc              func(ctx context.Context, c *concern.Concern) error
	UpdateFunc            func(ctx context.Context, c *concern.Concern) error
	GetByIDFunc           func(ctx context.Context, id uint) (*concern.Concern, error)
	GetByTicketNumberFunc func(ctx context.Context, number string) (*concern.Concern, error)
	GetByStudentFunc      func(ctx context.Context, studentID uint) ([]*concern.Concern, error)
	ListFunc              func(ctx context.Context, filter concern.ConcernFilter) ([]*concern.Concern, int64, error)
	CountByCategoryFunc   func(ctx context.Context, categoryID uint) (int64, error)
	GetStatisticsFunc     func(ctx context.Context) (*concern.Statistics, error)
}

func (m *mockConcernRepository) Save(ctx context.Context, c *concern.Concern) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockConcernRepository) Update(ctx context.Context, c *concern.Concern) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockConcernRepository) GetByID(ctx context.Context, id uint) (*concern.Concern, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockConcernRepository) GetByTicketNumber(ctx context.Context, number string) (*concern.Concern, error) {
	if m.GetByTicketNumberFunc != nil {
		return m.GetByTicketNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockConcernRepository) GetByStudent(ctx context.Context, studentID uint) ([]*concern.Concern, error) {
	if m.GetByStudentFunc != nil {
		return m.GetByStudentFunc(ctx, studentID)
	}
	return nil, nil
}

func (m *mockConcernRepository) List(ctx context.Context, filter concern.ConcernFilter) ([]*concern.Concern, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockConcernRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	if m.CountByCategoryFunc != nil {
		return m.CountByCategoryFunc(ctx, categoryID)
	}
	return 0, nil
}

func (m *mockConcernRepository) GetStatistics(ctx context.Context) (*concern.Statistics, error) {
	if m.GetStatisticsFunc != nil {
		return m.GetStatisticsFunc(ctx)
	}
	return &concern.Statistics{}, nil
}

type mockHistoryRepository struct {
	AppendFunc        func(ctx context.Context, entry *concern.StatusHistoryEntry) error
	ListByConcernFunc func(ctx context.Context, concernID uint) ([]*concern.StatusHistoryEntry, error)
}

func (m *mockHistoryRepository) Append(ctx context.Context, entry *concern.StatusHistoryEntry) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, entry)
	}
	return nil
}

func (m *mockHistoryRepository) ListByConcern(ctx context.Context, concernID uint) ([]*concern.StatusHistoryEntry, error) {
	if m.ListByConcernFunc != nil {
		return m.ListByConcernFunc(ctx, concernID)
	}
	return nil, nil
}

type mockCommentRepository struct {
	SaveFunc          func(ctx context.Context, comment *concern.Comment) error
	ListByConcernFunc func(ctx context.Context, concernID uint, includeInternal bool) ([]*concern.Comment, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, comment *concern.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) ListByConcern(ctx context.Context, concernID uint, includeInternal bool) ([]*concern.Comment, error) {
	if m.ListByConcernFunc != nil {
		return m.ListByConcernFunc(ctx, concernID, includeInternal)
	}
	return nil, nil
}

type mockCategoryRepository struct {
	CreateFunc       func(ctx context.Context, c *category.Category) error
	GetByIDFunc      func(ctx context.Context, id uint) (*category.Category, error)
	ListFunc         func(ctx context.Context, includeInactive bool) ([]*category.Category, error)
	UpdateFunc       func(ctx context.Context, c *category.Category) error
	ExistsByNameFunc func(ctx context.Context, name string) (bool, error)
}

func (m *mockCategoryRepository) Create(ctx context.Context, c *category.Category) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id uint) (*category.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCategoryRepository) List(ctx context.Context, includeInactive bool) ([]*category.Category, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, includeInactive)
	}
	return nil, nil
}

func (m *mockCategoryRepository) Update(ctx context.Context, c *category.Category) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCategoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	if m.ExistsByNameFunc != nil {
		return m.ExistsByNameFunc(ctx, name)
	}
	return false, nil
}

type mockOfficeRepository struct {
	CreateFunc  func(ctx context.Context, o *category.Office) error
	GetByIDFunc func(ctx context.Context, id uint) (*category.Office, error)
	ListFunc    func(ctx context.Context, includeInactive bool) ([]*category.Office, error)
	UpdateFunc  func(ctx context.Context, o *category.Office) error
}

func (m *mockOfficeRepository) Create(ctx context.Context, o *category.Office) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, o)
	}
	return nil
}

func (m *mockOfficeRepository) GetByID(ctx context.Context, id uint) (*category.Office, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockOfficeRepository) List(ctx context.Context, includeInactive bool) ([]*category.Office, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, includeInactive)
	}
	return nil, nil
}

func (m *mockOfficeRepository) Update(ctx context.Context, o *category.Office) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, o)
	}
	return nil
}

type mockUserRepository struct {
	CreateFunc         func(ctx context.Context, u *user.User) error
	GetByIDFunc        func(ctx context.Context, id uint) (*user.User, error)
	GetByEmailFunc     func(ctx context.Context, email string) (*user.User, error)
	GetBySRCodeFunc    func(ctx context.Context, srCode string) (*user.User, error)
	GetByGoogleIDFunc  func(ctx context.Context, googleID string) (*user.User, error)
	UpdateFunc         func(ctx context.Context, u *user.User) error
	DeleteFunc         func(ctx context.Context, id uint) error
	ListFunc           func(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error)
	ExistsByEmailFunc  func(ctx context.Context, email string) (bool, error)
	ExistsBySRCodeFunc func(ctx context.Context, srCode string) (bool, error)
	ListAdminsFunc     func(ctx context.Context) ([]*user.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) GetBySRCode(ctx context.Context, srCode string) (*user.User, error) {
	if m.GetBySRCodeFunc != nil {
		return m.GetBySRCodeFunc(ctx, srCode)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByGoogleID(ctx context.Context, googleID string) (*user.User, error) {
	if m.GetByGoogleIDFunc != nil {
		return m.GetByGoogleIDFunc(ctx, googleID)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepository) ExistsBySRCode(ctx context.Context, srCode string) (bool, error) {
	if m.ExistsBySRCodeFunc != nil {
		return m.ExistsBySRCodeFunc(ctx, srCode)
	}
	return false, nil
}

func (m *mockUserRepository) ListAdmins(ctx context.Context) ([]*user.User, error) {
	if m.ListAdminsFunc != nil {
		return m.ListAdminsFunc(ctx)
	}
	return nil, nil
}

// mockTransactor runs the function directly; there is no real transaction in
// unit tests.
type mockTransactor struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

// mockNotifier counts calls so tests can assert on the fan-out without a
// real notification store or mailer.
type mockNotifier struct {
	CreatedRecorded    int
	StatusRecorded     int
	AssignedRecorded   int
	ResolvedRecorded   int
	CommentRecorded    int
	CommentRecipientID uint
	CreatedEmails      int
	StatusEmails       int
	AssignedEmails     int
	ResolvedEmails     int
	CommentEmails      int
	RecordErr          error
}

func (m *mockNotifier) RecordCreated(ctx context.Context, c *concern.Concern) error {
	m.CreatedRecorded++
	return m.RecordErr
}

func (m *mockNotifier) RecordStatusChanged(ctx context.Context, c *concern.Concern, oldStatus, newStatus vo.ConcernStatus) error {
	m.StatusRecorded++
	return m.RecordErr
}

func (m *mockNotifier) RecordAssigned(ctx context.Context, c *concern.Concern, officeName string) error {
	m.AssignedRecorded++
	return m.RecordErr
}

func (m *mockNotifier) RecordResolved(ctx context.Context, c *concern.Concern) error {
	m.ResolvedRecorded++
	return m.RecordErr
}

func (m *mockNotifier) RecordCommentAdded(ctx context.Context, c *concern.Concern, recipientID uint, authorIsAdmin bool) error {
	m.CommentRecorded++
	m.CommentRecipientID = recipientID
	return m.RecordErr
}

func (m *mockNotifier) EmailCreated(c *concern.Concern) { m.CreatedEmails++ }

func (m *mockNotifier) EmailStatusChanged(c *concern.Concern, oldStatus, newStatus vo.ConcernStatus, remarks string) {
	m.StatusEmails++
}

func (m *mockNotifier) EmailAssigned(c *concern.Concern, officeName string) { m.AssignedEmails++ }

func (m *mockNotifier) EmailResolved(c *concern.Concern) { m.ResolvedEmails++ }

func (m *mockNotifier) EmailComment(c *concern.Concern, commentText string) { m.CommentEmails++ }

type mockEmailSender struct {
	CreatedFunc  func(to, studentName, ticketNumber, title string) error
	StatusFunc   func(to, studentName, ticketNumber, oldStatus, newStatus, remarks string) error
	AssignedFunc func(to, studentName, ticketNumber, officeName string) error
	ResolvedFunc func(to, studentName, ticketNumber, notes string) error
	CommentFunc  func(to, studentName, ticketNumber, commentText string) error
}

func (m *mockEmailSender) SendConcernCreatedEmail(to, studentName, ticketNumber, title string) error {
	if m.CreatedFunc != nil {
		return m.CreatedFunc(to, studentName, ticketNumber, title)
	}
	return nil
}

func (m *mockEmailSender) SendStatusChangedEmail(to, studentName, ticketNumber, oldStatus, newStatus, remarks string) error {
	if m.StatusFunc != nil {
		return m.StatusFunc(to, studentName, ticketNumber, oldStatus, newStatus, remarks)
	}
	return nil
}

func (m *mockEmailSender) SendConcernAssignedEmail(to, studentName, ticketNumber, officeName string) error {
	if m.AssignedFunc != nil {
		return m.AssignedFunc(to, studentName, ticketNumber, officeName)
	}
	return nil
}

func (m *mockEmailSender) SendConcernResolvedEmail(to, studentName, ticketNumber, notes string) error {
	if m.ResolvedFunc != nil {
		return m.ResolvedFunc(to, studentName, ticketNumber, notes)
	}
	return nil
}

func (m *mockEmailSender) SendCommentEmail(to, studentName, ticketNumber, commentText string) error {
	if m.CommentFunc != nil {
		return m.CommentFunc(to, studentName, ticketNumber, commentText)
	}
	return nil
}
