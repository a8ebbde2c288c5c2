package registry

import "errors"

// Failure classes shared by every synchronizer operation. Callers match
// them with errors.Is; the wrapped message carries the detail.
var (
	// ErrInvalidProject reports a root that is not a generated project:
	// missing or invalid fynemvc.yaml, or a screen registry that cannot
	// be parsed.
	ErrInvalidProject = errors.New("not a fynemvc project")

	// ErrDuplicateView reports an add for a name that is already
	// registered, or whose stub files already exist on disk.
	ErrDuplicateView = errors.New("view already exists")

	// ErrViewNotFound reports a remove for a name that is not registered.
	ErrViewNotFound = errors.New("view not found")
)
