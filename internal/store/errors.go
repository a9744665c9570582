package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrClientNotFound is returned when no client is linked to the
	// requested user.
	ErrClientNotFound = errors.New("client was not found")

	// ErrAvatarAlreadyExists is returned when the user already owns an
	// avatar with the same slug.
	ErrAvatarAlreadyExists = errors.New("avatar already exists")

	// ErrAvatarNotSaved is returned when an INSERT completes without
	// returning the stored row.
	ErrAvatarNotSaved = errors.New("avatar was not saved")

	// ErrUnsupportedDSN is returned by [NewDB] for a DSN naming neither
	// PostgreSQL nor SQLite.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning column values during
	// result-set iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
