package gormstore

import (
	"context"

	"postboard/internal/domain/entity"
	"postboard/internal/domain/repository"
	"postboard/internal/errors"
	"postboard/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := &model.PostModel{
		Body:     post.Body,
		UserID:   post.UserID,
		ImageURL: post.ImageURL,
	}

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		return domainStoreError("create post", err)
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt

	return nil
}

func (repo *postRepository) FindByID(ctx context.Context, id int64) (*entity.Post, error) {
	var rows []model.PostWithLikesRow
	if err := repo.withLikes(ctx).Where("posts.id = ?", id).Scan(&rows).Error; err != nil {
		return nil, domainStoreError("find post", err)
	}
	if len(rows) == 0 {
		return nil, repository.ErrPostNotFound
	}

	return toPostDomain(&rows[0]), nil
}

func (repo *postRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.PostModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, domainStoreError("check post", err)
	}

	return count > 0, nil
}

func (repo *postRepository) List(ctx context.Context, sorting entity.PostSorting) ([]*entity.Post, error) {
	query := repo.withLikes(ctx)
	switch sorting {
	case entity.SortNew:
		query = query.Order("posts.id DESC")
	case entity.SortOld:
		query = query.Order("posts.id ASC")
	case entity.SortMostLikes:
		query = query.Order("likes DESC").Order("posts.id DESC")
	default:
		return nil, errors.Errorf("unsupported post sorting %q", sorting)
	}

	var rows []model.PostWithLikesRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, domainStoreError("list posts", err)
	}

	posts := make([]*entity.Post, 0, len(rows))
	for i := range rows {
		posts = append(posts, toPostDomain(&rows[i]))
	}

	return posts, nil
}

// withLikes selects every post column plus its like count.
func (repo *postRepository) withLikes(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Select("posts.*, COUNT(likes.id) AS likes").
		Joins("LEFT JOIN likes ON likes.post_id = posts.id").
		Group("posts.id")
}

func toPostDomain(row *model.PostWithLikesRow) *entity.Post {
	return &entity.Post{
		ID:        row.ID,
		Body:      row.Body,
		UserID:    row.UserID,
		ImageURL:  row.ImageURL,
		Likes:     row.Likes,
		CreatedAt: row.CreatedAt,
	}
}
