package auth

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/kavienanj/single-vendor-ecommerce/apperrors"
	"github.com/kavienanj/single-vendor-ecommerce/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterInput struct {
	IsGuest     bool   `json:"is_guest"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterUser creates a customer account, or a credential-less guest account
// when input.IsGuest is set. Guests share the same cart/order pipeline as
// registered customers.
func RegisterUser(db *gorm.DB, input RegisterInput) (*models.User, error) {
	if input.IsGuest {
		user := models.User{
			FirstName: "Guest",
			LastName:  "User",
			IsGuest:   true,
			RoleID:    models.RoleGuest,
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, apperrors.Storage(err)
		}
		return &user, nil
	}

	if input.FirstName == "" || input.LastName == "" || input.Email == "" ||
		input.Password == "" || input.PhoneNumber == "" {
		return nil, apperrors.Validation("please fill in all fields")
	}

	var existing models.User
	err := db.Where("email = ?", input.Email).First(&existing).Error
	if err == nil {
		return nil, apperrors.Validation("user already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Storage(err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	hash := string(hashed)

	user := models.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        &input.Email,
		PasswordHash: &hash,
		PhoneNumber:  &input.PhoneNumber,
		RoleID:       models.RoleCustomer,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, apperrors.Storage(err)
	}
	return &user, nil
}

// LoginUser verifies the credentials and returns the matching user.
func LoginUser(db *gorm.DB, email, password string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Validation("invalid email or password")
		}
		return nil, apperrors.Storage(err)
	}
	if user.PasswordHash == nil ||
		bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.Validation("invalid email or password")
	}
	return &user, nil
}

// IssueToken signs an HMAC JWT carrying the claims the middleware expects.
func IssueToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    user.UserID,
		"role_id":    user.RoleID,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"exp":        time.Now().Add(72 * time.Hour).Unix(),
	}
	if user.Email != nil {
		claims["email"] = *user.Email
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// POST /auth/register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input: " + err.Error()})
			return
		}

		user, err := RegisterUser(db, input)
		if err != nil {
			apperrors.Respond(c, err)
			return
		}

		token, err := IssueToken(user)
		if err != nil {
			apperrors.Respond(c, fmt.Errorf("token generation failed: %w", err))
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "User registered successfully!",
			"token":   token,
			"user":    user,
		})
	}
}

// POST /auth/login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input: " + err.Error()})
			return
		}

		user, err := LoginUser(db, input.Email, input.Password)
		if err != nil {
			if apperrors.IsValidation(err) {
				c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
				return
			}
			apperrors.Respond(c, err)
			return
		}

		token, err := IssueToken(user)
		if err != nil {
			apperrors.Respond(c, fmt.Errorf("token generation failed: %w", err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
	}
}
