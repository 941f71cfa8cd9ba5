package repository

import (
	"context"
	"errors"

	"tourism_backend/internal/domain"

	gomysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrDuplicateKey signals a unique-constraint violation on insert. The
// username uniqueness guarantee lives in the database index, so a concurrent
// duplicate signup surfaces here rather than racing a prior existence check.
var ErrDuplicateKey = errors.New("duplicate key")

// UserRepository is the data-access contract for user rows.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdatePassword(ctx context.Context, username, passwordHash string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	var mysqlErr *gomysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 { // ER_DUP_ENTRY
		return ErrDuplicateKey
	}
	return err
}

// FindByUsername looks a user up by exact, case-sensitive username match.
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("username = ?", username).
		Update("password", passwordHash).Error
}
