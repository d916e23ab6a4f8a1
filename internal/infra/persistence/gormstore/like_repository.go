package gormstore

import (
	"context"

	"postboard/internal/domain/entity"
	"postboard/internal/domain/repository"
	"postboard/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository is the constructor for likeRepository.
func NewLikeRepository(db *gorm.DB) repository.LikeRepository {
	return &likeRepository{db: db}
}

func (repo *likeRepository) Create(ctx context.Context, like *entity.Like) error {
	likeM := &model.LikeModel{
		PostID: like.PostID,
		UserID: like.UserID,
	}

	if err := repo.db.WithContext(ctx).Create(likeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPostNotFound
		}

		return domainStoreError("create like", err)
	}

	like.ID = likeM.ID
	like.CreatedAt = likeM.CreatedAt

	return nil
}
