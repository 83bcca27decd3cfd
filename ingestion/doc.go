// Package ingestion loads catalog items from JSON sources into storage.
package ingestion
