package middleware

import (
	"github.com/gofiber/fiber/v2"

	authutils "conges-backend/lib/utils/auth-utils"
	"conges-backend/models"
	apimodels "conges-backend/models/api"
)

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		if stringSub, ok := sub.(string); ok {
			return stringSub
		}
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}

func GetUserMatricule(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if matricule, exist := claims["matricule"]; exist {
		if stringMatricule, ok := matricule.(string); ok {
			return stringMatricule
		}
	}
	return ""
}

// RolesRequired n'autorise que les appelants dont le rôle appartient à la
// liste; une liste vide refuse tout rôle. Pas de hiérarchie de rôles.
func RolesRequired(roles ...models.UserRole) fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		role := GetUserRole(ctx)
		if GetUserID(ctx) == "" || role == "" {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.AccessDenied{
				Message: "authentification requise",
				Error:   apimodels.ErrUnauthorized,
			})
		}
		for _, allowed := range roles {
			if role == allowed {
				return ctx.Next()
			}
		}
		required := make([]string, 0, len(roles))
		for _, allowed := range roles {
			required = append(required, string(allowed))
		}
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.AccessDenied{
			Message:       "droits insuffisants pour cette opération",
			Error:         apimodels.ErrInsufficientPermissions,
			RequiredRoles: required,
			UserRole:      string(role),
		})
	}
}
