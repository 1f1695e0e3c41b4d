// Package storage holds the per-user persistence behind the services:
// a keyed profile store and an ordered drink-event log per user. Both
// backends serialize profiles as JSON-compatible records with string-typed
// dates, so they are interchangeable.
package storage

import "github.com/Invisible042/sip-smart-scan/models"

// ProfileStore keeps one UserProfile per user id.
type ProfileStore interface {
	// Get returns the stored profile, or (nil, nil) when the user is unknown.
	Get(userID string) (*models.UserProfile, error)
	Put(userID string, profile *models.UserProfile) error
}

// EventStore keeps an append-only drink log per user, in insertion order.
type EventStore interface {
	List(userID string) ([]models.DrinkEvent, error)
	Append(userID string, event models.DrinkEvent) error
	// Delete removes the event with the given id and reports whether it existed.
	Delete(userID, eventID string) (bool, error)
}
