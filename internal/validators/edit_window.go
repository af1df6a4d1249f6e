package validators

import (
	"time"

	"github.com/MKhiriev/greenwall/models"
)

// IsMutable reports whether note may still be edited or deleted on the day
// of today. A note is mutable only on its own calendar day; today must
// already be expressed in the configured time zone. Notes whose date cannot
// be parsed are never mutable.
func IsMutable(note models.Note, today time.Time) bool {
	day, err := time.Parse(models.DateLayout, note.Date)
	if err != nil {
		return false
	}

	return day.Format(models.DateLayout) == today.Format(models.DateLayout)
}
