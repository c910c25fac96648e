// file: model/base.go

package model

import "time"

// Audit holds the author columns shared by managed tables. It is embedded by
// value instead of being a table of its own.
type Audit struct {
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	AuthorTime time.Time `json:"author_time"`
}
