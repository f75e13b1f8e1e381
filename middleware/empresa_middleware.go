package middleware

import (
	"github.com/gofiber/fiber/v2"

	authutils "grc-maturity-backend/lib/utils/auth-utils"
	"grc-maturity-backend/models"
	apimodels "grc-maturity-backend/models/api"
)

func GetUserEmpresa(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if empresa, exist := claims["empresa"]; exist {
		if empresaID, ok := empresa.(string); ok {
			return empresaID
		}
	}
	return ""
}

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		if userID, ok := sub.(string); ok {
			return userID
		}
	}
	return ""
}

func GetUserRol(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}

func EsEmpresaAdmin(ctx *fiber.Ctx) bool {
	rol := GetUserRol(ctx)
	return rol == models.EmpresaAdminRole || rol == models.UserRoleSuperAdmin
}

// EmpresaRequired exige que el token pertenezca a un usuario de empresa
func EmpresaRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if GetUserEmpresa(ctx) == "" {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operación no disponible"))
		}
		return ctx.Next()
	}
}

func EmpresaAdminRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if !EsEmpresaAdmin(ctx) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operación no disponible"))
		}
		return ctx.Next()
	}
}

func SuperAdminRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if GetUserRol(ctx) != models.UserRoleSuperAdmin {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operación no disponible"))
		}
		return ctx.Next()
	}
}
