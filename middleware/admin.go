package middleware

import (
	"yafrican/database"
	"yafrican/models"

	"github.com/gofiber/fiber/v2"
)

// AdminIdentity is the authenticated admin capability handed to order
// verification and other privileged operations. Handlers never re-parse
// tokens themselves; they receive this value from AdminMiddleware.
type AdminIdentity struct {
	UserID uint
	Name   string
	Email  string
}

// AdminMiddleware validates the JWT, checks the admin role against the user
// record and injects a typed AdminIdentity into the request context.
// It must run after nothing: it does its own token check.
func AdminMiddleware(c *fiber.Ctx) error {
	tokenString := tokenFromRequest(c)
	if tokenString == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	claims, err := parseToken(tokenString)
	if err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token", nil)
	}

	userID := uint(claims["userId"].(float64))

	// The role claim alone is not trusted; the user row is the source of truth
	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != "admin" {
		return JsonResponse(c, fiber.StatusForbidden, false, "Admin access required!", nil)
	}

	if user.Status == "suspended" {
		return JsonResponse(c, fiber.StatusForbidden, false, "Account suspended!", nil)
	}

	c.Locals("userId", user.ID)
	c.Locals("admin", AdminIdentity{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
	})

	return c.Next()
}

// AdminFromContext returns the typed admin capability set by AdminMiddleware
func AdminFromContext(c *fiber.Ctx) (AdminIdentity, bool) {
	admin, ok := c.Locals("admin").(AdminIdentity)
	return admin, ok
}
