package ingestion

import "errors"

var (
	// ErrRepositoryRequired is returned when a Loader is created without a repository.
	ErrRepositoryRequired = errors.New("item repository is required")

	// ErrInvalidBatchSize is returned when the configured batch size is less than 1.
	ErrInvalidBatchSize = errors.New("batch size must be at least 1")

	// ErrExpectedArray is returned when the input does not start with a JSON array.
	ErrExpectedArray = errors.New("expected a JSON array of items")
)
