package service

import (
	"testing"

	"github.com/affaneka/portal/database"
	"github.com/affaneka/portal/util/crypto"

	"github.com/stretchr/testify/assert"
)

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := crypto.HashPasswordAsBcrypt(password)
	assert.NoError(t, err)
	return hash
}

func TestAccountCreateAndGet(t *testing.T) {
	setupDB(t)
	service := AccountService{}

	assert.NoError(t, service.Create("alice", mustHash(t, "pw1"), "user"))

	account, err := service.GetByUsername("alice")
	assert.NoError(t, err)
	assert.Equal(t, "user", account.Role)
	assert.True(t, account.Active)

	_, err = service.GetByUsername("nobody")
	assert.True(t, database.IsNotFound(err))
}

func TestAccountCreateDuplicateUsername(t *testing.T) {
	setupDB(t)
	service := AccountService{}

	assert.NoError(t, service.Create("alice", mustHash(t, "pw1"), "user"))
	assert.Error(t, service.Create("alice", mustHash(t, "pw2"), "user"))

	count, err := service.Count()
	assert.NoError(t, err)
	// two seeded accounts plus alice, the duplicate never landed
	assert.Equal(t, int64(3), count)
}

func TestAccountList(t *testing.T) {
	setupDB(t)
	service := AccountService{}

	views, err := service.List()
	assert.NoError(t, err)
	assert.Len(t, views, 2)
	assert.Equal(t, "affan", views[0].Username)
	assert.Equal(t, "admin", views[0].Role)
	assert.Equal(t, "mod", views[1].Username)
}

func TestAccountUpdate(t *testing.T) {
	setupDB(t)
	service := AccountService{}

	assert.NoError(t, service.Update("mod", "", "moderator", false))
	account, err := service.GetByUsername("mod")
	assert.NoError(t, err)
	assert.False(t, account.Active)
	assert.Equal(t, "moderator", account.Role)

	// password overwrite
	newHash := mustHash(t, "rotated")
	assert.NoError(t, service.Update("mod", newHash, "moderator", true))
	account, err = service.GetByUsername("mod")
	assert.NoError(t, err)
	assert.True(t, crypto.CheckPasswordHash(account.PasswordHash, "rotated"))

	// unknown username is a silent no-op
	assert.NoError(t, service.Update("nobody", "", "x", true))
}

func TestAccountSoftDelete(t *testing.T) {
	setupDB(t)
	service := AccountService{}

	assert.NoError(t, service.SoftDelete("mod"))

	_, err := service.GetByUsername("mod")
	assert.True(t, database.IsNotFound(err))

	views, err := service.List()
	assert.NoError(t, err)
	assert.Len(t, views, 1)

	// the row is retained, only hidden
	count, err := service.Count()
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// deleting again is a silent no-op
	assert.NoError(t, service.SoftDelete("mod"))
}

func TestCheckCredentials(t *testing.T) {
	setupDB(t)
	service := AccountService{}

	account := service.CheckCredentials("affan", "affaneka1412")
	assert.NotNil(t, account)
	assert.Equal(t, "admin", account.Role)

	assert.Nil(t, service.CheckCredentials("affan", "wrong"))
	assert.Nil(t, service.CheckCredentials("nobody", "affaneka1412"))

	assert.NoError(t, service.SoftDelete("affan"))
	assert.Nil(t, service.CheckCredentials("affan", "affaneka1412"))
}

func TestChangePassword(t *testing.T) {
	setupDB(t)
	service := AccountService{}

	ok, err := service.ChangePassword("mod", "wrong", "newpass")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NotNil(t, service.CheckCredentials("mod", "mod123"))

	ok, err = service.ChangePassword("mod", "mod123", "newpass")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Nil(t, service.CheckCredentials("mod", "mod123"))
	assert.NotNil(t, service.CheckCredentials("mod", "newpass"))
}

func TestResetPassword(t *testing.T) {
	setupDB(t)
	service := AccountService{}

	assert.Error(t, service.ResetPassword("mod", ""))

	assert.NoError(t, service.ResetPassword("mod", "cli-reset"))
	assert.NotNil(t, service.CheckCredentials("mod", "cli-reset"))

	// unknown username is a silent no-op
	assert.NoError(t, service.ResetPassword("nobody", "whatever"))
}
