package service

import (
	"errors"

	"newsapi/internal/repository"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrInvalidID            = errors.New("invalid id format")
	ErrInvalidCredentials   = errors.New("incorrect username or password")
	ErrUnauthenticated      = errors.New("could not validate credentials")
	ErrReaderNil            = errors.New("reader is nil")
	ErrUnsupportedMediaType = errors.New("only image uploads are accepted")
)

// translate maps repository sentinels onto service sentinels and passes other errors through.
func translate(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrInvalidID):
		return ErrInvalidID
	default:
		return err
	}
}
