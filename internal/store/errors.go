package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when a registration collides with
	// an existing username.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrUserNotFound is returned when no user matches the requested username
	// or id.
	ErrUserNotFound = errors.New("user not found")

	ErrTeamMemberNotFound      = errors.New("team member not found")
	ErrNewsArticleNotFound     = errors.New("news article not found")
	ErrAboutSectionNotFound    = errors.New("about section not found")
	ErrContactMessageNotFound  = errors.New("message not found")
	ErrCommentNotFound         = errors.New("comment not found")
	ErrInvestmentGroupNotFound = errors.New("investment group not found")
	ErrInvestmentNotFound      = errors.New("investment not found")

	// ErrParentCommentNotFound is returned when a reply references a comment
	// that does not exist.
	ErrParentCommentNotFound = errors.New("parent comment not found")

	// ErrSlugAlreadyExists is returned when an investment group slug is
	// already taken by another group.
	ErrSlugAlreadyExists = errors.New("slug already exists")

	// ErrInvestmentGroupInUse is returned when deleting a group that still
	// has investments referencing its slug.
	ErrInvestmentGroupInUse = errors.New("cannot delete group with active investments")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrUnsupportedDSN is returned when the DSN scheme names no known driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN scheme")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails for a reason that has no domain meaning.
	ErrExecutingStatement = errors.New("failed to execute statement")

	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails
	// mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
