package service

import (
	"github.com/affaneka/portal/database"
	"github.com/affaneka/portal/database/model"
	"github.com/affaneka/portal/logger"
	"github.com/affaneka/portal/util/common"
	"github.com/affaneka/portal/util/crypto"
)

type AccountService struct{}

// AccountView is what account reads expose: no password hash, no flags
// beyond active.
type AccountView struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
}

func toView(a *model.Account) AccountView {
	return AccountView{Username: a.Username, Role: a.Role, Active: a.Active}
}

func (s *AccountService) Create(username string, passwordHash string, role string) error {
	db := database.GetDB()
	account := &model.Account{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		Active:       true,
	}
	return db.Create(account).Error
}

// GetByUsername returns the non-deleted account with that username, or
// gorm.ErrRecordNotFound.
func (s *AccountService) GetByUsername(username string) (*model.Account, error) {
	db := database.GetDB()
	account := &model.Account{}
	err := db.Model(model.Account{}).
		Where("username = ? AND deleted = ?", username, false).
		First(account).
		Error
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (s *AccountService) List() ([]AccountView, error) {
	db := database.GetDB()
	var accounts []model.Account
	err := db.Model(model.Account{}).
		Where("deleted = ?", false).
		Order("id ASC").
		Find(&accounts).
		Error
	if err != nil {
		return nil, err
	}
	views := make([]AccountView, 0, len(accounts))
	for i := range accounts {
		views = append(views, toView(&accounts[i]))
	}
	return views, nil
}

// Update overwrites role and active, plus the password hash when one is
// given. A username with no matching row is a silent no-op.
func (s *AccountService) Update(username string, passwordHash string, role string, active bool) error {
	db := database.GetDB()
	values := map[string]any{"role": role, "active": active}
	if passwordHash != "" {
		values["password"] = passwordHash
	}
	return db.Model(model.Account{}).
		Where("username = ? AND deleted = ?", username, false).
		Updates(values).
		Error
}

// SoftDelete hides the account from all reads and from login. The row stays.
func (s *AccountService) SoftDelete(username string) error {
	db := database.GetDB()
	return db.Model(model.Account{}).
		Where("username = ? AND deleted = ?", username, false).
		Update("deleted", true).
		Error
}

// Count counts every row, deleted included. Used for the bootstrap decision
// and the CLI only.
func (s *AccountService) Count() (int64, error) {
	db := database.GetDB()
	var count int64
	err := db.Model(&model.Account{}).Count(&count).Error
	return count, err
}

// CheckCredentials returns the account when the username exists, is not
// deleted and the password verifies; nil otherwise.
func (s *AccountService) CheckCredentials(username string, password string) *model.Account {
	account, err := s.GetByUsername(username)
	if database.IsNotFound(err) {
		return nil
	} else if err != nil {
		logger.Warning("check account err:", err)
		return nil
	}
	if !crypto.CheckPasswordHash(account.PasswordHash, password) {
		return nil
	}
	return account
}

// ResetPassword stores a new hash for the account without checking the old
// password. Missing usernames are a silent no-op.
func (s *AccountService) ResetPassword(username string, newPassword string) error {
	if newPassword == "" {
		return common.NewError("password can not be empty")
	}
	hash, err := crypto.HashPasswordAsBcrypt(newPassword)
	if err != nil {
		return err
	}
	db := database.GetDB()
	return db.Model(model.Account{}).
		Where("username = ? AND deleted = ?", username, false).
		Update("password", hash).
		Error
}

// ChangePassword verifies the old password first. Returns false with a nil
// error when verification fails, mirroring the login contract.
func (s *AccountService) ChangePassword(username string, oldPassword string, newPassword string) (bool, error) {
	account := s.CheckCredentials(username, oldPassword)
	if account == nil {
		return false, nil
	}
	if err := s.ResetPassword(account.Username, newPassword); err != nil {
		return false, err
	}
	return true, nil
}
