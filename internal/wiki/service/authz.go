package service

import (
	"errors"

	"github.com/auswiki/auswiki/pkg/idx"
)

// ErrNotOwner means the caller is authenticated but does not own the record.
var ErrNotOwner = errors.New("service: caller does not own this record")

// AuthorizeOwner checks that callerID and ownerID name the same user.
// Both ids are parsed to canonical form first so encoding quirks in either
// side can't make two renderings of the same id compare unequal.
func AuthorizeOwner(callerID, ownerID string) error {
	caller, err := idx.Parse(callerID)
	if err != nil {
		return ErrNotOwner
	}
	owner, err := idx.Parse(ownerID)
	if err != nil {
		return ErrNotOwner
	}
	if idx.Compare(caller, owner) != 0 {
		return ErrNotOwner
	}
	return nil
}
