package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when a referenced entity does not exist
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents a uniqueness violation surfaced to the caller
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in some team"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a generic validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// EmptyValueError is returned when a required field was blank
type EmptyValueError struct {
	Field   string
	Message string
}

func (e *EmptyValueError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s can not be empty", e.Field)
}

// ValueTooShortError is returned when a value is below its minimum length
type ValueTooShortError struct {
	Field  string
	Length int
}

func (e *ValueTooShortError) Error() string {
	return fmt.Sprintf("%s can not be shorter than %d characters", e.Field, e.Length)
}

// InvalidInputError is returned for malformed ids, flags, numbers and oversized fields
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input in %s: %s", e.Field, e.Reason)
}

// StorageError wraps any failure reported by the persistence layer
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("storage failure %s", e.Op)
	}
	return fmt.Sprintf("storage failure %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound    = &NotFoundError{Entity: "User"}
	ErrTeamNotFound    = &NotFoundError{Entity: "Team"}
	ErrLeaderNotFound  = &NotFoundError{Entity: "Team leader"}
	ErrProjectNotFound = &NotFoundError{Entity: "Project"}
	ErrFeatureNotFound = &NotFoundError{Entity: "Feature"}
	ErrTaskNotFound    = &NotFoundError{Entity: "Task"}
	ErrCommentNotFound = &NotFoundError{Entity: "Comment"}
	ErrRoleNotFound    = &NotFoundError{Entity: "Role"}
	ErrStatusNotFound  = &NotFoundError{Entity: "Status"}
	ErrTypeNotFound    = &NotFoundError{Entity: "Type"}
	ErrMemberNotFound  = &NotFoundError{Entity: "Team member"}
	ErrImageNotFound   = &NotFoundError{Entity: "Profile image"}
)

// Already Exists Errors
var (
	ErrUsernameTaken     = &AlreadyExistsError{Entity: "username", Context: "and is already taken"}
	ErrUserAlreadyInTeam = &AlreadyExistsError{Entity: "team membership", Context: "for this user, a user can be in only one team"}
)

// Authentication and Authorization Errors
var (
	ErrLoginFailed      = &AuthenticationError{Message: "login failed"}
	ErrNotAuthenticated = &AuthenticationError{Message: "authentication required"}
	ErrForbidden        = &AuthorizationError{Message: "not enough permissions"}
	ErrInvalidCSRFToken = &AuthorizationError{Message: "invalid csrf token"}
)

// ErrParentRequired is returned when a comment names neither a feature nor a task
var ErrParentRequired = &EmptyValueError{Field: "parent", Message: "either feature or task id needs to be given"}

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsEmptyValue checks if an error is an EmptyValueError
func IsEmptyValue(err error) bool {
	var emptyErr *EmptyValueError
	return errors.As(err, &emptyErr)
}

// IsValueTooShort checks if an error is a ValueTooShortError
func IsValueTooShort(err error) bool {
	var shortErr *ValueTooShortError
	return errors.As(err, &shortErr)
}

// IsInvalidInput checks if an error is an InvalidInputError
func IsInvalidInput(err error) bool {
	var invalidErr *InvalidInputError
	return errors.As(err, &invalidErr)
}

// IsValidation checks if an error is any kind of input validation error
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr) || IsEmptyValue(err) || IsValueTooShort(err) || IsInvalidInput(err)
}

// IsStorage checks if an error is a StorageError
func IsStorage(err error) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewEmptyValueError creates a new EmptyValueError for the given field
func NewEmptyValueError(field string) error {
	return &EmptyValueError{Field: field}
}

// NewValueTooShortError creates a new ValueTooShortError
func NewValueTooShortError(field string, length int) error {
	return &ValueTooShortError{Field: field, Length: length}
}

// NewInvalidInputError creates a new InvalidInputError
func NewInvalidInputError(field, reason string) error {
	return &InvalidInputError{Field: field, Reason: reason}
}

// NewStorageError wraps a persistence failure with the operation that caused it
func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
