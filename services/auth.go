package services

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"stagingcourse/apperror"
	"stagingcourse/config"
	"stagingcourse/models"
	"stagingcourse/utils"
)

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterUser is the public self-service signup; new accounts always get
// the USER role.
func RegisterUser(db *gorm.DB, in RegisterInput) (*models.User, *apperror.Error) {
	var existing models.User
	if err := db.Where("email = ?", in.Email).First(&existing).Error; err == nil {
		return nil, apperror.Conflict("An account with this email already exists!")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), config.AppConfig.BcryptCost)
	if err != nil {
		return nil, apperror.Internal("Failed to process password!", err)
	}

	user := models.User{
		Name:           in.Name,
		Email:          in.Email,
		HashedPassword: string(hashed),
		Role:           models.RoleUser,
		IsActive:       true,
	}
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("An account with this email already exists!")
		}
		return nil, apperror.Internal("Failed to register user!", err)
	}

	go utils.SendWelcomeEmail(user.Email, user.Name)

	return &user, nil
}

// AuthenticateUser verifies credentials and records the login time. The same
// message covers unknown email and wrong password.
func AuthenticateUser(db *gorm.DB, email, password string) (*models.User, *apperror.Error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, apperror.Unauthenticated("Invalid email or password!")
	}

	if !user.IsActive {
		return nil, apperror.Forbidden("Account is deactivated!")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, apperror.Unauthenticated("Invalid email or password!")
	}

	now := time.Now()
	if err := db.Model(&user).Update("last_login", &now).Error; err != nil {
		return nil, apperror.Internal("Failed to record login!", err)
	}
	user.LastLogin = &now

	return &user, nil
}
