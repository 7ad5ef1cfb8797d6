package auth

import (
	"os"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/kavienanj/single-vendor-ecommerce/apperrors"
	"github.com/kavienanj/single-vendor-ecommerce/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	return db
}

func customerInput() RegisterInput {
	return RegisterInput{
		FirstName:   "Jamie",
		LastName:    "Perera",
		Email:       "jamie@example.com",
		Password:    "hunter22",
		PhoneNumber: "+94771234567",
	}
}

func TestRegisterGuest(t *testing.T) {
	db := openTestDB(t)

	user, err := RegisterUser(db, RegisterInput{IsGuest: true})
	require.NoError(t, err)
	assert.True(t, user.IsGuest)
	assert.Equal(t, models.RoleGuest, user.RoleID)
	assert.Nil(t, user.Email)
	assert.Nil(t, user.PasswordHash)
}

func TestRegisterValidatesRequiredFields(t *testing.T) {
	db := openTestDB(t)

	input := customerInput()
	input.Email = ""
	_, err := RegisterUser(db, input)
	assert.True(t, apperrors.IsValidation(err))
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := openTestDB(t)

	_, err := RegisterUser(db, customerInput())
	require.NoError(t, err)

	_, err = RegisterUser(db, customerInput())
	assert.True(t, apperrors.IsValidation(err))
}

func TestRegisterHashesPassword(t *testing.T) {
	db := openTestDB(t)

	user, err := RegisterUser(db, customerInput())
	require.NoError(t, err)
	require.NotNil(t, user.PasswordHash)
	assert.NotEqual(t, "hunter22", *user.PasswordHash)
	assert.Equal(t, models.RoleCustomer, user.RoleID)
}

func TestLogin(t *testing.T) {
	db := openTestDB(t)
	registered, err := RegisterUser(db, customerInput())
	require.NoError(t, err)

	user, err := LoginUser(db, "jamie@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, user.UserID)

	_, err = LoginUser(db, "jamie@example.com", "wrong")
	assert.True(t, apperrors.IsValidation(err))
	_, err = LoginUser(db, "nobody@example.com", "hunter22")
	assert.True(t, apperrors.IsValidation(err))
}

func TestIssueTokenCarriesIdentityClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	email := "jamie@example.com"
	user := &models.User{UserID: 42, RoleID: models.RoleCustomer, FirstName: "Jamie", Email: &email}

	tokenString, err := IssueToken(user)
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.EqualValues(t, 42, claims["user_id"])
	assert.EqualValues(t, models.RoleCustomer, claims["role_id"])
	assert.Equal(t, email, claims["email"])
}
