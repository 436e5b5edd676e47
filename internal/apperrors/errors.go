package apperrors

import "fmt"

// ErrProviderUnavailable is returned when a provider's lookup failed or found
// no match. It is never fatal: the provider is simply left out of the merge.
type ErrProviderUnavailable struct {
	Provider string
	Cause    error
}

// Error implements the error interface.
func (e *ErrProviderUnavailable) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider %s unavailable: %v", e.Provider, e.Cause)
	}
	return fmt.Sprintf("provider %s unavailable", e.Provider)
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *ErrProviderUnavailable) Unwrap() error {
	return e.Cause
}

// Is allows for error checking with errors.Is().
func (e *ErrProviderUnavailable) Is(target error) bool {
	_, ok := target.(*ErrProviderUnavailable)
	return ok
}

// ErrMissingDependency is returned when a provider lookup was skipped because
// an id it depends on (e.g. a TVDB id for fanart.tv) was never resolved.
type ErrMissingDependency struct {
	Provider   string
	Dependency string
}

// Error implements the error interface.
func (e *ErrMissingDependency) Error() string {
	return fmt.Sprintf("provider %s skipped: missing %s", e.Provider, e.Dependency)
}

// Is allows for error checking with errors.Is().
func (e *ErrMissingDependency) Is(target error) bool {
	_, ok := target.(*ErrMissingDependency)
	return ok
}

// ErrInvalidSelection is returned when a field selection names a source that
// is not in the current candidate set. The prior field value is kept.
type ErrInvalidSelection struct {
	Field  string
	Source string
}

// Error implements the error interface.
func (e *ErrInvalidSelection) Error() string {
	return fmt.Sprintf("source %s is not a candidate for field %s", e.Source, e.Field)
}

// Is allows for error checking with errors.Is().
func (e *ErrInvalidSelection) Is(target error) bool {
	_, ok := target.(*ErrInvalidSelection)
	return ok
}

// ErrSeasonIndexOutOfRange is returned when a season mutation addresses an
// index outside the current season array.
type ErrSeasonIndexOutOfRange struct {
	Index int
	Count int
}

// Error implements the error interface.
func (e *ErrSeasonIndexOutOfRange) Error() string {
	return fmt.Sprintf("season index %d out of range (have %d seasons)", e.Index, e.Count)
}

// Is allows for error checking with errors.Is().
func (e *ErrSeasonIndexOutOfRange) Is(target error) bool {
	_, ok := target.(*ErrSeasonIndexOutOfRange)
	return ok
}

// ErrAssetFetch is returned when a single artwork download fails during
// packaging. The packager logs it and continues with the remaining assets.
type ErrAssetFetch struct {
	URL    string
	Status int
	Cause  error
}

// Error implements the error interface.
func (e *ErrAssetFetch) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("asset fetch failed with status %d: %s", e.Status, e.URL)
	}
	return fmt.Sprintf("asset fetch failed: %s: %v", e.URL, e.Cause)
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *ErrAssetFetch) Unwrap() error {
	return e.Cause
}

// Is allows for error checking with errors.Is().
func (e *ErrAssetFetch) Is(target error) bool {
	_, ok := target.(*ErrAssetFetch)
	return ok
}

// ErrExportInFlight is returned when an archive build is requested while a
// previous build for the same session is still running.
type ErrExportInFlight struct{}

// Error implements the error interface.
func (e *ErrExportInFlight) Error() string {
	return "an archive export is already in progress"
}

// Is allows for error checking with errors.Is().
func (e *ErrExportInFlight) Is(target error) bool {
	_, ok := target.(*ErrExportInFlight)
	return ok
}
