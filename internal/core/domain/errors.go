package domain

import "errors"

var (
	ErrUserExists          = errors.New("username already exists")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPackageNotFound     = errors.New("package not found")
	ErrInvestmentNotFound  = errors.New("investment not found")
	ErrBelowMinimum        = errors.New("amount below package minimum")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidTransaction  = errors.New("invalid transaction type")
	ErrForbidden           = errors.New("access forbidden")
)
