package repository

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("repository: not found")
	// ErrSlugTaken indicates another role already owns the slug.
	ErrSlugTaken = errors.New("repository: slug already in use")
	// ErrSystemRole indicates an attempt to delete a protected system role.
	ErrSystemRole = errors.New("repository: system role cannot be deleted")
	// ErrSystemSlug indicates an attempt to change a system role's slug.
	ErrSystemSlug = errors.New("repository: system role slug cannot be modified")
)
