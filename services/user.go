package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"stagingcourse/apperror"
	"stagingcourse/config"
	"stagingcourse/models"
	courseModels "stagingcourse/models/course"
)

type CreateUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Notes    string `json:"notes"`
	Role     string `json:"role"`
}

type UpdateUserInput struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Notes    *string `json:"notes"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"is_active"`
}

type UpdateProfileInput struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

type ResetPasswordInput struct {
	Password string `json:"password"`
}

func validRole(role string) bool {
	return role == models.RoleUser || role == models.RoleAdmin
}

// CreateUser is the admin-side student creation (the self-service path is
// RegisterUser in auth.go).
func CreateUser(db *gorm.DB, actor models.User, in CreateUserInput) (*models.User, *apperror.Error) {
	if gateErr := requireAdmin(actor); gateErr != nil {
		return nil, gateErr
	}

	role := in.Role
	if role == "" {
		role = models.RoleUser
	}
	if !validRole(role) {
		return nil, apperror.Validation("Invalid role!")
	}

	var existing models.User
	if err := db.Where("email = ?", in.Email).First(&existing).Error; err == nil {
		return nil, apperror.Conflict("A user with this email already exists!")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), config.AppConfig.BcryptCost)
	if err != nil {
		return nil, apperror.Internal("Failed to process password!", err)
	}

	user := models.User{
		Name:           in.Name,
		Email:          in.Email,
		HashedPassword: string(hashed),
		Phone:          in.Phone,
		Notes:          in.Notes,
		Role:           role,
		IsActive:       true,
	}
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("A user with this email already exists!")
		}
		return nil, apperror.Internal("Failed to create user!", err)
	}

	return &user, nil
}

func UpdateUser(db *gorm.DB, actor models.User, userID uint, in UpdateUserInput) (*models.User, *apperror.Error) {
	if gateErr := requireAdmin(actor); gateErr != nil {
		return nil, gateErr
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return nil, apperror.NotFound("User not found!")
	}

	if in.Email != nil && *in.Email != user.Email {
		var existing models.User
		if err := db.Where("email = ? AND id <> ?", *in.Email, user.ID).First(&existing).Error; err == nil {
			return nil, apperror.Conflict("A user with this email already exists!")
		}
		user.Email = *in.Email
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Notes != nil {
		user.Notes = *in.Notes
	}
	if in.Role != nil {
		if !validRole(*in.Role) {
			return nil, apperror.Validation("Invalid role!")
		}
		user.Role = *in.Role
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}

	if err := db.Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("A user with this email already exists!")
		}
		return nil, apperror.Internal("Failed to update user!", err)
	}

	return &user, nil
}

// ResetUserPassword sets a new password for a student. Too-short passwords
// are rejected before any storage write.
func ResetUserPassword(db *gorm.DB, actor models.User, userID uint, newPassword string) *apperror.Error {
	if gateErr := requireAdmin(actor); gateErr != nil {
		return gateErr
	}

	if len(newPassword) < 8 {
		return apperror.Validation("Password must be at least 8 characters!")
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return apperror.NotFound("User not found!")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), config.AppConfig.BcryptCost)
	if err != nil {
		return apperror.Internal("Failed to process password!", err)
	}

	if err := db.Model(&user).Update("hashed_password", string(hashed)).Error; err != nil {
		return apperror.Internal("Failed to reset password!", err)
	}

	return nil
}

// DeleteUser removes a student and their enrollments/progress. An admin may
// not delete their own account.
func DeleteUser(db *gorm.DB, actor models.User, userID uint) *apperror.Error {
	if gateErr := requireAdmin(actor); gateErr != nil {
		return gateErr
	}

	if actor.ID == userID {
		return apperror.Forbidden("You cannot delete your own account!")
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return apperror.NotFound("User not found!")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("user_id = ?", user.ID).Delete(&courseModels.Enrollment{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("user_id = ?", user.ID).Delete(&courseModels.LessonProgress{}).Error; err != nil {
			return err
		}
		// hard delete so the email can be registered again
		return tx.Unscoped().Delete(&models.User{}, user.ID).Error
	})
	if err != nil {
		return apperror.Internal("Failed to delete user!", err)
	}

	return nil
}

func ListUsers(db *gorm.DB, actor models.User) ([]models.User, *apperror.Error) {
	if gateErr := requireAdmin(actor); gateErr != nil {
		return nil, gateErr
	}

	var users []models.User
	if err := db.Order("created_at desc").Find(&users).Error; err != nil {
		return nil, apperror.Internal("Failed to fetch users!", err)
	}
	return users, nil
}

func GetUser(db *gorm.DB, actor models.User, userID uint) (*models.User, *apperror.Error) {
	if gateErr := requireAdmin(actor); gateErr != nil {
		return nil, gateErr
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return nil, apperror.NotFound("User not found!")
	}
	return &user, nil
}

// UpdateProfile lets a user edit their own name and phone. Role and email
// changes stay admin-only.
func UpdateProfile(db *gorm.DB, actor models.User, in UpdateProfileInput) (*models.User, *apperror.Error) {
	if gateErr := requireActor(actor); gateErr != nil {
		return nil, gateErr
	}

	if in.Name != nil {
		actor.Name = *in.Name
	}
	if in.Phone != nil {
		actor.Phone = *in.Phone
	}

	if err := db.Save(&actor).Error; err != nil {
		return nil, apperror.Internal("Failed to update profile!", err)
	}
	return &actor, nil
}
