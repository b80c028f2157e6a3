package controllers

import (
	"net/http"

	"civicreport-be/models"
	"civicreport-be/supabase"
	authUtils "civicreport-be/utils"

	"github.com/gin-gonic/gin"
)

// Signup registers a new citizen account. Email uniqueness is enforced by
// the store; a conflict on insert is the duplicate-email rejection.
func Signup(sb *supabase.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			FullName string  `json:"full_name" binding:"required,max=100"`
			Email    string  `json:"email" binding:"required,email"`
			Password string  `json:"password" binding:"required,min=6"`
			Phone    *string `json:"phone"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()

		var roles []models.Role
		if err := sb.Select(ctx, "role", "role_id", supabase.Filters{"role_name": "citizen"}, &roles); err != nil {
			respondUpstreamError(c, err)
			return
		}
		if len(roles) == 0 {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Citizen role not found."})
			return
		}

		hashed, err := authUtils.HashPassword(input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
			return
		}

		var created []models.User
		err = sb.Insert(ctx, "app_user", models.User{
			FullName:           input.FullName,
			Email:              input.Email,
			Phone:              input.Phone,
			Password:           hashed,
			RoleID:             roles[0].RoleID,
			IsAnonymousAllowed: true,
		}, &created)
		if supabase.IsConflict(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered."})
			return
		}
		if err != nil {
			respondUpstreamError(c, err)
			return
		}
		if len(created) == 0 {
			c.JSON(http.StatusBadGateway, gin.H{"error": "no row returned for new user"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"ok":      true,
			"user_id": created[0].UserID,
			"name":    created[0].FullName,
			"email":   created[0].Email,
		})
	}
}

// Login checks an email/password pair and returns the account identity.
// No token or session is issued.
func Login(sb *supabase.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var users []models.User
		if err := sb.Select(c.Request.Context(), "app_user", "*", supabase.Filters{"email": input.Email}, &users); err != nil {
			respondUpstreamError(c, err)
			return
		}
		if len(users) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "No account found with this email."})
			return
		}

		user := users[0]
		if !authUtils.VerifyPassword(input.Password, user.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect password."})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"ok":      true,
			"user_id": user.UserID,
			"name":    user.FullName,
			"email":   user.Email,
		})
	}
}
