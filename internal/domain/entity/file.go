package entity

import "time"

// StoredFile describes an object in the upload bucket.
type StoredFile struct {
	Key        string
	Size       int64
	ModifiedAt time.Time
	URL        string
}
