package repository

import (
	"errors"
	"fmt"

	"github.com/probuild/bidding-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

var (
	// ErrCreateUser is returned when creating a user fails inside the signup transaction.
	ErrCreateUser = errors.New("user repository: create user failed")
	// ErrCreateRoleRow is returned when creating the role-specific row fails inside the signup transaction.
	ErrCreateRoleRow = errors.New("user repository: create role row failed")
)

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// CreateWithRole creates the user and their customer or contractor row atomically.
func (r *GormUserRepository) CreateWithRole(user *models.User, customer *models.Customer, contractor *models.Contractor) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateUser, err)
		}

		switch user.Role {
		case models.RoleCustomer:
			customer.UserID = user.ID
			if err := tx.Create(customer).Error; err != nil {
				return fmt.Errorf("%w: %v", ErrCreateRoleRow, err)
			}
		case models.RoleContractor:
			contractor.UserID = user.ID
			if err := tx.Create(contractor).Error; err != nil {
				return fmt.Errorf("%w: %v", ErrCreateRoleRow, err)
			}
		default:
			return fmt.Errorf("%w: unknown role %q", ErrCreateRoleRow, user.Role)
		}

		return nil
	})
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername finds a user by username
func (r *GormUserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Update persists profile changes
func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}
