package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"conges-backend/models"
	apimodels "conges-backend/models/api"
)

func newGuardedApp(claims jwt.MapClaims, roles ...models.UserRole) *fiber.App {
	app := fiber.New()
	if claims != nil {
		app.Use(func(ctx *fiber.Ctx) error {
			ctx.Locals("user", jwt.NewWithClaims(jwt.SigningMethodHS256, claims))
			return ctx.Next()
		})
	}
	app.Get("/guarded", RolesRequired(roles...), func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})
	return app
}

func callGuarded(t *testing.T, app *fiber.App) (int, apimodels.AccessDenied) {
	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.Nil(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.Nil(t, err)
	denied := apimodels.AccessDenied{}
	if resp.StatusCode == fiber.StatusForbidden {
		require.Nil(t, json.Unmarshal(body, &denied))
	}
	return resp.StatusCode, denied
}

func claimsFor(role models.UserRole) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":       "user-1",
		"role":      string(role),
		"matricule": "M001",
	}
}

func TestRolesRequired(t *testing.T) {
	t.Run("sans authentification", func(t *testing.T) {
		app := newGuardedApp(nil, models.RoleAdmin)
		status, denied := callGuarded(t, app)
		require.Equal(t, fiber.StatusForbidden, status)
		require.Equal(t, apimodels.ErrUnauthorized, denied.Error)
		require.Empty(t, denied.RequiredRoles)
		require.Empty(t, denied.UserRole)
	})

	t.Run("rôle autorisé", func(t *testing.T) {
		app := newGuardedApp(claimsFor(models.RoleRH), models.RoleAdmin, models.RoleRH)
		status, _ := callGuarded(t, app)
		require.Equal(t, fiber.StatusOK, status)
	})

	t.Run("rôle insuffisant", func(t *testing.T) {
		app := newGuardedApp(claimsFor(models.RoleEmploye), models.RoleAdmin, models.RoleRH)
		status, denied := callGuarded(t, app)
		require.Equal(t, fiber.StatusForbidden, status)
		require.Equal(t, apimodels.ErrInsufficientPermissions, denied.Error)
		require.Equal(t, []string{"admin", "rh"}, denied.RequiredRoles)
		require.Equal(t, "employe", denied.UserRole)
	})

	t.Run("pas de hiérarchie entre rôles", func(t *testing.T) {
		// admin n'hérite pas des accès réservés au supérieur
		app := newGuardedApp(claimsFor(models.RoleAdmin), models.RoleSuperieur)
		status, denied := callGuarded(t, app)
		require.Equal(t, fiber.StatusForbidden, status)
		require.Equal(t, apimodels.ErrInsufficientPermissions, denied.Error)
	})

	t.Run("liste vide refuse tous les rôles", func(t *testing.T) {
		for _, role := range models.AllRoles {
			app := newGuardedApp(claimsFor(role))
			status, denied := callGuarded(t, app)
			require.Equal(t, fiber.StatusForbidden, status)
			require.Equal(t, apimodels.ErrInsufficientPermissions, denied.Error)
			require.Empty(t, denied.RequiredRoles)
		}
	})

	t.Run("claims sans rôle", func(t *testing.T) {
		app := newGuardedApp(jwt.MapClaims{"sub": "user-1"}, models.RoleAdmin)
		status, denied := callGuarded(t, app)
		require.Equal(t, fiber.StatusForbidden, status)
		require.Equal(t, apimodels.ErrUnauthorized, denied.Error)
	})

	t.Run("claims avec sub non textuel", func(t *testing.T) {
		app := newGuardedApp(jwt.MapClaims{"sub": 42, "role": "admin"}, models.RoleAdmin)
		status, denied := callGuarded(t, app)
		require.Equal(t, fiber.StatusForbidden, status)
		require.Equal(t, apimodels.ErrUnauthorized, denied.Error)
	})
}
