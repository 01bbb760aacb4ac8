package user

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplecore/hrm-backend-go/internal/domain/user"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/validator"
)

type fakeUserRepo struct {
	users      map[string]user.User
	getByIDLog []string
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	u.ID = "created"
	return u, nil
}
func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	f.getByIDLog = append(f.getByIDLog, id)
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}
func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}
func (f *fakeUserRepo) List(ctx context.Context, filter user.ListFilter) ([]user.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) Update(ctx context.Context, u user.User) (user.User, error) { return u, nil }
func (f *fakeUserRepo) SetActive(ctx context.Context, id string, active bool) error {
	return nil
}
func (f *fakeUserRepo) ListStaffIDs(ctx context.Context) ([]string, error) { return nil, nil }
func (f *fakeUserRepo) ListAttendanceEligible(ctx context.Context, date string) ([]user.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) CountInactive(ctx context.Context) (int, error) { return 0, nil }
func (f *fakeUserRepo) ListInactive(ctx context.Context, limit int) ([]user.User, error) {
	return nil, nil
}

const (
	aliceID = "7b51a2c4-3f0e-4d1a-9b6f-2c8e5d4a1f03"
	bobID   = "1c6d9e82-5a47-4c3b-8d01-6f2a9b7c4e15"
)

func newUserFixture() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]user.User{
		aliceID: {ID: aliceID, Name: "Alice", Email: "alice@example.com", Role: user.RoleEmployee, IsActive: true},
		bobID:   {ID: bobID, Name: "Bob", Email: "bob@example.com", Role: user.RoleEmployee, IsActive: true},
	}}
}

func authedCtx(t *testing.T, userID string, role user.Role) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    string(role),
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestGet_SelfAlwaysAllowed(t *testing.T) {
	repo := newUserFixture()
	svc := NewUserService(repo, time.UTC)

	resp, err := svc.Get(authedCtx(t, aliceID, user.RoleEmployee), aliceID)

	require.NoError(t, err)
	assert.Equal(t, "Alice", resp.Name)
}

func TestGet_ViewAllRoleReadsOthers(t *testing.T) {
	repo := newUserFixture()
	svc := NewUserService(repo, time.UTC)

	resp, err := svc.Get(authedCtx(t, aliceID, user.RoleHR), bobID)

	require.NoError(t, err)
	assert.Equal(t, "Bob", resp.Name)
}

func TestGet_OtherUserRejectedWithoutViewAll(t *testing.T) {
	repo := newUserFixture()
	svc := NewUserService(repo, time.UTC)

	_, err := svc.Get(authedCtx(t, aliceID, user.RoleEmployee), bobID)

	assert.ErrorIs(t, err, user.ErrNotResourceOwner)
	assert.Empty(t, repo.getByIDLog, "repository should not be queried on an ownership mismatch")
}

func TestGet_CandidateCannotReadStaff(t *testing.T) {
	repo := newUserFixture()
	svc := NewUserService(repo, time.UTC)

	_, err := svc.Get(authedCtx(t, bobID, user.RoleCandidate), aliceID)

	assert.ErrorIs(t, err, user.ErrNotResourceOwner)
}

func TestCreate_DuplicateEmailRejected(t *testing.T) {
	repo := newUserFixture()
	svc := NewUserService(repo, time.UTC)

	_, err := svc.Create(context.Background(), user.CreateUserRequest{
		Name:     "Alice Again",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
		Role:     "employee",
	})

	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestUpdate_MalformedIDRejected(t *testing.T) {
	repo := newUserFixture()
	svc := NewUserService(repo, time.UTC)

	name := "Renamed"
	_, err := svc.Update(context.Background(), user.UpdateUserRequest{ID: "u-42", Name: &name})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "id")
}
