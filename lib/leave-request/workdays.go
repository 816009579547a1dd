package leaverequesthandler

import (
	"time"

	dbmodels "conges-backend/models/db"
)

// CountWorkingDays compte les jours ouvrés de la période bornes incluses,
// week-ends et jours fériés exclus.
func CountWorkingDays(debut, fin time.Time, holidays []dbmodels.Holiday) int {
	if fin.Before(debut) {
		return 0
	}
	ferie := map[string]bool{}
	for _, h := range holidays {
		ferie[h.Jour.Format("2006-01-02")] = true
	}
	count := 0
	for day := debut; !day.After(fin); day = day.AddDate(0, 0, 1) {
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}
		if ferie[day.Format("2006-01-02")] {
			continue
		}
		count++
	}
	return count
}
