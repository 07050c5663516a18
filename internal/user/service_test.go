package user

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"cadastro_backend/internal/common"
	"cadastro_backend/internal/config"
	"cadastro_backend/internal/file"
	"cadastro_backend/internal/platform/crypto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// A named in-memory database per test keeps GORM's connection pool on the
	// same underlying store while isolating tests from each other.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&file.File{}, &User{}))
	return db
}

func newTestService(t *testing.T) (*ServiceImplementation, Repository, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	repo := NewGORMRepository(db)
	cfg := &config.Config{BcryptCost: bcrypt.MinCost, AppURL: "http://localhost:3333"}
	svc := NewService(repo, cfg, zap.NewNop())
	return svc, repo, db
}

func createAccount(t *testing.T, svc *ServiceImplementation, email, password string) *User {
	t.Helper()
	u, err := svc.Create(context.Background(), CreateUserRequest{
		Name:     "Ana",
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return u
}

func TestService_Create(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	u, err := svc.Create(ctx, CreateUserRequest{
		Name:     "Ana",
		Email:    "Ana@X.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	assert.NotEqual(t, "", u.ID.String())
	assert.Equal(t, "ana@x.com", u.Email, "email is stored normalized")
	assert.NotEqual(t, "secret1", u.PasswordHash, "plaintext password is never persisted")
	assert.True(t, crypto.CheckPassword(u.PasswordHash, "secret1"))
	assert.False(t, u.Provider)

	stored, err := repo.FindByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, stored.ID)
}

func TestService_Create_duplicateEmail(t *testing.T) {
	svc, _, db := newTestService(t)
	ctx := context.Background()
	createAccount(t, svc, "ana@x.com", "secret1")

	_, err := svc.Create(ctx, CreateUserRequest{Name: "Outra Ana", Email: "ANA@x.com", Password: "secret2"})
	assert.ErrorIs(t, err, ErrEmailInUse)

	var count int64
	require.NoError(t, db.Model(&User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "no second record is created")
}

func TestService_Create_uniqueIndexIsAuthoritative(t *testing.T) {
	// Bypass the service pre-check and hit the repository directly, as a
	// losing racer would: the unique index must still surface the conflict.
	svc, repo, _ := newTestService(t)
	createAccount(t, svc, "ana@x.com", "secret1")

	err := repo.Create(context.Background(), &User{
		Name:         "Racer",
		Email:        "ana@x.com",
		PasswordHash: "irrelevant",
	})
	assert.ErrorIs(t, err, ErrEmailInUse)
}

func TestService_Update_profileOnly(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	u := createAccount(t, svc, "ana@x.com", "secret1")
	originalHash := u.PasswordHash

	updated, err := svc.Update(ctx, u.ID, UpdateUserRequest{
		Name: strPtr("Ana Maria"),
		City: strPtr("Recife"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana Maria", updated.Name)
	require.NotNil(t, updated.City)
	assert.Equal(t, "Recife", *updated.City)
	assert.Equal(t, "ana@x.com", updated.Email, "absent fields stay unchanged")
	assert.Equal(t, originalHash, updated.PasswordHash, "stored secret untouched without a password change")
}

func TestService_Update_passwordRotation(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	u := createAccount(t, svc, "ana@x.com", "secret1")

	_, err := svc.Update(ctx, u.ID, UpdateUserRequest{
		OldPassword:     strPtr("secret1"),
		Password:        strPtr("newpass1"),
		ConfirmPassword: strPtr("newpass1"),
	})
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "ana@x.com", "secret1")
	assert.ErrorIs(t, err, ErrPasswordMismatch, "old password stops working")

	logged, err := svc.Authenticate(ctx, "ana@x.com", "newpass1")
	require.NoError(t, err, "new password works")
	assert.Equal(t, u.ID, logged.ID)
}

func TestService_Update_wrongOldPassword(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()
	u := createAccount(t, svc, "ana@x.com", "secret1")

	_, err := svc.Update(ctx, u.ID, UpdateUserRequest{
		Name:            strPtr("Mallory"),
		OldPassword:     strPtr("wrongpw"),
		Password:        strPtr("newpass1"),
		ConfirmPassword: strPtr("newpass1"),
	})
	assert.ErrorIs(t, err, ErrPasswordMismatch)

	stored, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", stored.Name, "no fields are mutated on failure")
	assert.True(t, crypto.CheckPassword(stored.PasswordHash, "secret1"))
}

func TestService_Update_emailConflict(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()
	createAccount(t, svc, "ana@x.com", "secret1")
	second, err := svc.Create(ctx, CreateUserRequest{Name: "Bia", Email: "bia@x.com", Password: "secret2"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, second.ID, UpdateUserRequest{Email: strPtr("ana@x.com")})
	assert.ErrorIs(t, err, ErrEmailInUse)

	stored, err := repo.FindByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "bia@x.com", stored.Email, "aborts without mutating")
}

func TestService_Update_sameEmailIsNotAConflict(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	u := createAccount(t, svc, "ana@x.com", "secret1")

	updated, err := svc.Update(ctx, u.ID, UpdateUserRequest{Email: strPtr("ANA@x.com")})
	require.NoError(t, err)
	assert.Equal(t, "ana@x.com", updated.Email)
}

func TestService_Update_attachAvatar(t *testing.T) {
	svc, _, db := newTestService(t)
	ctx := context.Background()
	u := createAccount(t, svc, "ana@x.com", "secret1")

	avatar := &file.File{Name: "me.png", Path: "abc123.png"}
	require.NoError(t, db.Create(avatar).Error)

	updated, err := svc.Update(ctx, u.ID, UpdateUserRequest{AvatarID: &avatar.ID})
	require.NoError(t, err)

	require.NotNil(t, updated.Avatar, "reload brings the avatar reference along")
	assert.Equal(t, avatar.ID, updated.Avatar.ID)
	assert.Equal(t, "abc123.png", updated.Avatar.Path)
}

func TestService_Update_unknownAccount(t *testing.T) {
	svc, _, _ := newTestService(t)
	createAccount(t, svc, "ana@x.com", "secret1")

	_, err := svc.Update(context.Background(), uuid.New(), UpdateUserRequest{Name: strPtr("Ghost")})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_Authenticate_unknownEmail(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.Authenticate(context.Background(), "nobody@x.com", "whatever")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRepository_FindByEmail_notFound(t *testing.T) {
	_, repo, _ := newTestService(t)
	_, err := repo.FindByEmail(context.Background(), "missing@x.com")
	assert.ErrorIs(t, err, common.ErrNotFound)
}
