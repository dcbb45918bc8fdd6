package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stagingcourse/apperror"
	"stagingcourse/models"
)

func TestRegisterUser(t *testing.T) {
	db := testDB(t)

	user, appErr := RegisterUser(db, RegisterInput{
		Name:     "New Student",
		Email:    "new@example.com",
		Password: "password123",
	})
	require.Nil(t, appErr)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "password123", user.HashedPassword)

	_, appErr = RegisterUser(db, RegisterInput{
		Name:     "Copycat",
		Email:    "new@example.com",
		Password: "password123",
	})
	require.NotNil(t, appErr)
	assert.Equal(t, apperror.CodeConflict, appErr.Code)
}

func TestAuthenticateUser(t *testing.T) {
	db := testDB(t)
	createStudent(t, db, "student@example.com")

	user, appErr := AuthenticateUser(db, "student@example.com", "student-password")
	require.Nil(t, appErr)
	require.NotNil(t, user.LastLogin)

	// unknown email and wrong password fail with the same message
	_, wrongPass := AuthenticateUser(db, "student@example.com", "nope")
	require.NotNil(t, wrongPass)
	_, unknown := AuthenticateUser(db, "ghost@example.com", "student-password")
	require.NotNil(t, unknown)
	assert.Equal(t, wrongPass.Message, unknown.Message)
	assert.Equal(t, apperror.CodeUnauthenticated, wrongPass.Code)
}

func TestAuthenticateUserRejectsDeactivated(t *testing.T) {
	db := testDB(t)
	student := createStudent(t, db, "student@example.com")

	require.NoError(t, db.Model(&student).Update("is_active", false).Error)

	_, appErr := AuthenticateUser(db, "student@example.com", "student-password")
	require.NotNil(t, appErr)
	assert.Equal(t, apperror.CodeForbidden, appErr.Code)
}
