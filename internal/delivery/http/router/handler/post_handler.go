package handler

import (
	"net/http"

	deliverycontext "postboard/internal/delivery/context"
	"postboard/internal/delivery/http/response"
	"postboard/internal/domain/entity"
	domainerrors "postboard/internal/domain/errors"
	"postboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PostHandler serves posts, comments and likes.
type PostHandler struct {
	posts usecase.PostUsecase
}

// NewPostHandler is the constructor for PostHandler.
func NewPostHandler(posts usecase.PostUsecase) *PostHandler {
	return &PostHandler{posts: posts}
}

type createPostRequest struct {
	Body     string  `json:"body"`
	ImageURL *string `json:"image_url" validate:"omitempty,url"`
}

type createCommentRequest struct {
	Body   string `json:"body"`
	PostID int64  `json:"post_id" validate:"gt=0"`
}

type likeRequest struct {
	PostID int64 `json:"post_id" validate:"gt=0"`
}

type postResponse struct {
	ID       int64   `json:"id"`
	Body     string  `json:"body"`
	UserID   int64   `json:"user_id"`
	ImageURL *string `json:"image_url"`
	Likes    int64   `json:"likes"`
}

type commentResponse struct {
	ID     int64  `json:"id"`
	Body   string `json:"body"`
	PostID int64  `json:"post_id"`
	UserID int64  `json:"user_id"`
}

type likeResponse struct {
	ID     int64 `json:"id"`
	PostID int64 `json:"post_id"`
	UserID int64 `json:"user_id"`
}

type postWithCommentsResponse struct {
	Post     postResponse      `json:"post"`
	Comments []commentResponse `json:"comments"`
}

func newPostResponse(post *entity.Post) postResponse {
	return postResponse{
		ID:       post.ID,
		Body:     post.Body,
		UserID:   post.UserID,
		ImageURL: post.ImageURL,
		Likes:    post.Likes,
	}
}

func newCommentResponses(comments []*entity.Comment) []commentResponse {
	out := make([]commentResponse, 0, len(comments))
	for _, comment := range comments {
		out = append(out, commentResponse{
			ID:     comment.ID,
			Body:   comment.Body,
			PostID: comment.PostID,
			UserID: comment.UserID,
		})
	}

	return out
}

// currentUser returns the user set by the auth middleware.
func currentUser(c echo.Context) (*entity.User, error) {
	user, ok := deliverycontext.GetUser(c)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	return user, nil
}

// CreatePost handles POST /post.
func (h *PostHandler) CreatePost(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := h.posts.CreatePost(c.Request().Context(), user, &usecase.CreatePostInput{
		Body:     req.Body,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newPostResponse(post))
}

// ListPosts handles GET /posts?sorting=.
func (h *PostHandler) ListPosts(c echo.Context) error {
	posts, err := h.posts.ListPosts(c.Request().Context(), c.QueryParam("sorting"))
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]postResponse, 0, len(posts))
	for _, post := range posts {
		out = append(out, newPostResponse(post))
	}

	return response.Success(c, http.StatusOK, out)
}

// GetPost handles GET /posts/:post_id.
func (h *PostHandler) GetPost(c echo.Context) error {
	postID, err := pathID(c, "post_id")
	if err != nil {
		return err
	}

	result, err := h.posts.GetPostWithComments(c.Request().Context(), postID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, postWithCommentsResponse{
		Post:     newPostResponse(result.Post),
		Comments: newCommentResponses(result.Comments),
	})
}

// ListCommentsOnPost handles GET /posts/:post_id/comments.
func (h *PostHandler) ListCommentsOnPost(c echo.Context) error {
	postID, err := pathID(c, "post_id")
	if err != nil {
		return err
	}

	comments, err := h.posts.ListCommentsOnPost(c.Request().Context(), postID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCommentResponses(comments))
}

// PostQRCode handles GET /posts/:post_id/qrcode.
func (h *PostHandler) PostQRCode(c echo.Context) error {
	postID, err := pathID(c, "post_id")
	if err != nil {
		return err
	}

	png, err := h.posts.PostShareQR(c.Request().Context(), postID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListComments handles GET /comments.
func (h *PostHandler) ListComments(c echo.Context) error {
	comments, err := h.posts.ListComments(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCommentResponses(comments))
}

// CreateComment handles POST /comment.
func (h *PostHandler) CreateComment(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.posts.CreateComment(c.Request().Context(), user, &usecase.CreateCommentInput{
		PostID: req.PostID,
		Body:   req.Body,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newCommentResponses([]*entity.Comment{comment})[0])
}

// LikePost handles POST /like.
func (h *PostHandler) LikePost(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req likeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	like, err := h.posts.LikePost(c.Request().Context(), user, req.PostID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, likeResponse{
		ID:     like.ID,
		PostID: like.PostID,
		UserID: like.UserID,
	})
}
