package auth

import (
	"errors"

	"github.com/DhavalSuthar-24/crease/internal/user"
	"gorm.io/gorm"
)

// AuthRepository reads and writes scorer accounts. Lookups of a missing
// user return gorm.ErrRecordNotFound.
type AuthRepository interface {
	CreateUser(u *user.User) error
	GetUserByID(id uint) (*user.User, error)
	GetUserByUsername(username string) (*user.User, error)
	UpdateUser(u *user.User) error
	UserExists(id uint) (bool, error)
}

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) CreateUser(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *authRepository) GetUserByID(id uint) (*user.User, error) {
	var u user.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *authRepository) GetUserByUsername(username string) (*user.User, error) {
	var u user.User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *authRepository) UpdateUser(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *authRepository) UserExists(id uint) (bool, error) {
	_, err := r.GetUserByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}
