// Package ids assigns contract and claim numbers when the caller does not
// supply one. The domain treats these as opaque natural keys.
package ids

import "github.com/google/uuid"

func New() string {
	return uuid.NewString()
}
