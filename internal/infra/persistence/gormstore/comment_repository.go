package gormstore

import (
	"context"

	"postboard/internal/domain/entity"
	"postboard/internal/domain/repository"
	"postboard/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := &model.CommentModel{
		Body:   comment.Body,
		PostID: comment.PostID,
		UserID: comment.UserID,
	}

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPostNotFound
		}

		return domainStoreError("create comment", err)
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt

	return nil
}

func (repo *commentRepository) List(ctx context.Context) ([]*entity.Comment, error) {
	var commentMs []*model.CommentModel
	if err := repo.db.WithContext(ctx).Order("id ASC").Find(&commentMs).Error; err != nil {
		return nil, domainStoreError("list comments", err)
	}

	return toCommentsDomain(commentMs), nil
}

func (repo *commentRepository) ListByPost(ctx context.Context, postID int64) ([]*entity.Comment, error) {
	var commentMs []*model.CommentModel
	if err := repo.db.WithContext(ctx).Where("post_id = ?", postID).Order("id ASC").Find(&commentMs).Error; err != nil {
		return nil, domainStoreError("list post comments", err)
	}

	return toCommentsDomain(commentMs), nil
}

func toCommentsDomain(data []*model.CommentModel) []*entity.Comment {
	comments := make([]*entity.Comment, 0, len(data))
	for _, commentM := range data {
		comments = append(comments, &entity.Comment{
			ID:        commentM.ID,
			Body:      commentM.Body,
			PostID:    commentM.PostID,
			UserID:    commentM.UserID,
			CreatedAt: commentM.CreatedAt,
		})
	}

	return comments
}
