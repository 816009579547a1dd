package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequestStatus(t *testing.T) {
	t.Run("transitions depuis en attente", func(t *testing.T) {
		require.True(t, StatusEnAttente.IsAllowChange(StatusApprouvee))
		require.True(t, StatusEnAttente.IsAllowChange(StatusRejetee))
		require.True(t, StatusEnAttente.IsAllowChange(StatusAnnulee))
		require.False(t, StatusEnAttente.IsAllowChange(StatusEnAttente))
	})

	t.Run("les statuts terminaux sont figés", func(t *testing.T) {
		for _, from := range []RequestStatus{StatusApprouvee, StatusRejetee, StatusAnnulee} {
			require.True(t, from.IsTerminal())
			for _, to := range AllStatuses {
				require.False(t, from.IsAllowChange(to), "%s -> %s", from, to)
			}
		}
		require.False(t, StatusEnAttente.IsTerminal())
	})

	t.Run("libellés et validité", func(t *testing.T) {
		require.Equal(t, "Approuvée", StatusApprouvee.ToHuman())
		require.Equal(t, "En attente", StatusEnAttente.ToHuman())
		for _, status := range AllStatuses {
			require.True(t, status.IsValid())
		}
		require.False(t, RequestStatus("SUPPRIMEE").IsValid())
	})
}

func TestUserRole(t *testing.T) {
	for _, role := range AllRoles {
		require.True(t, role.IsValid())
	}
	require.False(t, UserRole("invite").IsValid())
	require.Equal(t, "Administrateur", RoleAdmin.ToHuman())
}
