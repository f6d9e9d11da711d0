package core

import "errors"

var (
	ErrNoWallets      = errors.New("wallet list is empty")
	ErrInvalidKey     = errors.New("invalid private key")
	ErrMissingBaseURL = errors.New("base URL is not configured")
)
