package presenter

import "github.com/accessibilityjobs/jobboard/internal/db"

// LocationNotSpecified is shown when a record carries no location data.
const LocationNotSpecified = "Location not specified"

// DisplayLocation resolves the location line for a record: the most specific
// structured field wins, then the legacy free-text field, then a fixed
// placeholder.
func DisplayLocation(rec *db.JobRecord) string {
	switch {
	case rec.SpecificLocation != "":
		return rec.SpecificLocation
	case rec.City != "" && rec.Country != "":
		return rec.City + ", " + rec.Country
	case rec.City != "":
		return rec.City
	case rec.Country != "":
		return rec.Country
	case rec.Location != "":
		return rec.Location
	default:
		return LocationNotSpecified
	}
}
