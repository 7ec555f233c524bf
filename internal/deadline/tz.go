package deadline

import "time"

// orgZone is the fixed organizational time zone in which all deadline and
// grace boundaries are interpreted. Falls back to a fixed CST offset when
// the zoneinfo database is unavailable.
var orgZone = loadOrgZone()

func loadOrgZone() *time.Location {
	loc, err := time.LoadLocation("America/Chicago")
	if err != nil {
		return time.FixedZone("CST", -6*60*60)
	}
	return loc
}

// OrgZone returns the organizational time zone.
func OrgZone() *time.Location {
	return orgZone
}
