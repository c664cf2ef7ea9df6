package repository

import (
	"github.com/reshetovitsme/podcast-feed/internal/modules/feed/domain"
)

// Repository defines the interface for reading feed definitions
// This abstraction allows easy replacement of storage implementations
type Repository interface {
	GetFeed(feedID string) (*domain.Definition, error)
	ListFeeds() ([]string, error)
}
