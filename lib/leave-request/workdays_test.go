package leaverequesthandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	dbmodels "conges-backend/models/db"
)

func day(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

func TestCountWorkingDays(t *testing.T) {
	t.Run("semaine pleine", func(t *testing.T) {
		// lundi 2 juin -> vendredi 6 juin 2025
		require.Equal(t, 5, CountWorkingDays(day("2025-06-02"), day("2025-06-06"), nil))
	})

	t.Run("week-end exclu", func(t *testing.T) {
		// lundi -> lundi suivant, un week-end au milieu
		require.Equal(t, 6, CountWorkingDays(day("2025-06-02"), day("2025-06-09"), nil))
		// samedi -> dimanche
		require.Equal(t, 0, CountWorkingDays(day("2025-06-07"), day("2025-06-08"), nil))
	})

	t.Run("jour férié exclu", func(t *testing.T) {
		holidays := []dbmodels.Holiday{
			{Jour: day("2025-06-04"), Description: "Fête nationale"},
		}
		require.Equal(t, 4, CountWorkingDays(day("2025-06-02"), day("2025-06-06"), holidays))
	})

	t.Run("férié sur un week-end sans effet", func(t *testing.T) {
		holidays := []dbmodels.Holiday{
			{Jour: day("2025-06-07"), Description: "Férié le samedi"},
		}
		require.Equal(t, 5, CountWorkingDays(day("2025-06-02"), day("2025-06-06"), holidays))
	})

	t.Run("bornes incluses", func(t *testing.T) {
		require.Equal(t, 1, CountWorkingDays(day("2025-06-02"), day("2025-06-02"), nil))
	})

	t.Run("période inversée", func(t *testing.T) {
		require.Equal(t, 0, CountWorkingDays(day("2025-06-06"), day("2025-06-02"), nil))
	})
}
