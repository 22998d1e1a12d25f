package pg

import (
	"time"

	"github.com/bennett39/stocktrader/biz/model"
)

// CreateAccount inserts a new account with the given starting cash.
func CreateAccount(username, passwordHash, cash string) (*model.Account, error) {
	acct := &model.Account{
		Username:     username,
		PasswordHash: passwordHash,
		Cash:         cash,
		CreatedAt:    time.Now().Unix(),
	}
	if err := GormDB.Create(acct).Error; err != nil {
		return nil, err
	}
	return acct, nil
}

// GetAccountByUsername looks up an account by username.
func GetAccountByUsername(username string) (*model.Account, error) {
	var acct model.Account
	err := GormDB.Where("username = ?", username).First(&acct).Error
	return &acct, err
}

// GetAccount looks up an account by id.
func GetAccount(id uint64) (*model.Account, error) {
	var acct model.Account
	err := GormDB.Where("id = ?", id).First(&acct).Error
	return &acct, err
}
