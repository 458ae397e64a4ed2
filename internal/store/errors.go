package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when the requested row does not exist or is
	// owned by another user.
	ErrNotFound = errors.New("record was not found")

	// ErrAlreadyExists is returned when an insert or update violates a unique
	// constraint.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrLoginAlreadyExists is returned when registering a user whose
	// username is taken. It wraps [ErrAlreadyExists].
	ErrLoginAlreadyExists = fmt.Errorf("%w: username is taken", ErrAlreadyExists)

	// ErrNoUserWasFound is returned when a user lookup produces an empty
	// result set. It wraps [ErrNotFound].
	ErrNoUserWasFound = fmt.Errorf("%w: no user was found", ErrNotFound)

	// ErrReferenceNotFound is returned when a foreign key points at a row
	// that does not exist for the owning user.
	ErrReferenceNotFound = errors.New("referenced record was not found")

	// ErrUnsupportedDSN is returned by [NewConnect] for DSNs whose scheme is
	// neither postgres nor sqlite.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are wrapped by repository
// methods when a SQL-level operation fails before any domain logic can be
// applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query with
	// squirrel fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails for a reason
	// the dialect's error classifier does not recognise.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
