// Package savedsearch defines the persisted saved-search record.
//
// Unlike the aggregate value objects, SavedSearch keeps exported fields with
// JSON tags: the whole list is persisted as one JSON blob in the key-value
// store and the struct is its wire format.
package savedsearch

import "time"

// MaxEntries caps the persisted list; insertion prepends and older entries
// fall off the end.
const MaxEntries = 50

// SavedSearch is one saved query configuration.
type SavedSearch struct {
	ID            string    `json:"id"`
	Query         string    `json:"query"`
	Category      string    `json:"category,omitempty"`
	CompetitorIDs []string  `json:"competitor_ids,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
