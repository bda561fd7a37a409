package domain

import "time"

// AU is a community-submitted Alternate Universe record. CreatedBy references
// the submitting user's id and is what the delete authorization checks.
type AU struct {
	ID        string
	Name      string
	Author    string // display name of the AU's original creator, free text
	Desc      string
	Link      string // optional external link
	CreatedBy string
	CreatedAt time.Time
}

// AUWithCreator is an AU joined with the submitting user's username, used by
// the public listing.
type AUWithCreator struct {
	AU

	CreatorUsername string
}
