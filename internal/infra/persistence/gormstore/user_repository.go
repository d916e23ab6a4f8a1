package gormstore

import (
	"context"

	"postboard/internal/domain/entity"
	domainerrors "postboard/internal/domain/errors"
	"postboard/internal/domain/repository"
	"postboard/internal/errors"
	"postboard/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainStoreError("find user by id", err)
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainStoreError("find user by email", err)
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	var userMs []*model.UserModel
	if err := repo.db.WithContext(ctx).Order("id ASC").Find(&userMs).Error; err != nil {
		return nil, domainStoreError("list users", err)
	}

	users := make([]*entity.User, 0, len(userMs))
	for _, userM := range userMs {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// Create inserts the user. The unique index on email is the source of truth
// for duplicates, so a concurrent registration that slipped past the
// existence check still fails here.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.WithStack(domainerrors.ErrDuplicateIdentity.WithMessage("User with email already existed: %s", user.Email))
		}

		return domainStoreError("create user", err)
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt

	return nil
}

func (repo *userRepository) MarkConfirmed(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("confirmed", true)
	if result.Error != nil {
		return domainStoreError("confirm user", result.Error)
	}

	// Both drivers count matched rows, so zero means the user is gone.
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.Password,
		Confirmed:    data.Confirmed,
		CreatedAt:    data.CreatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:        data.ID,
		Email:     data.Email,
		Password:  data.PasswordHash,
		Confirmed: data.Confirmed,
		CreatedAt: data.CreatedAt,
	}
}

func domainStoreError(op string, err error) error {
	return domainerrors.NewStoreError(op, err)
}
