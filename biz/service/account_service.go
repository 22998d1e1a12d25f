package service

import (
	"errors"

	"github.com/bennett39/stocktrader/biz/dal/pg"
	"github.com/bennett39/stocktrader/biz/model"
	"github.com/bennett39/stocktrader/conf"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// RegisterAccount creates an account with the configured starting cash.
func RegisterAccount(username, password string) (*model.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return pg.CreateAccount(username, string(hash), conf.GetConf().Trading.StartingCash)
}

// Authenticate checks the password for username and returns the account.
func Authenticate(username, password string) (*model.Account, error) {
	acct, err := pg.GetAccountByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return acct, nil
}
