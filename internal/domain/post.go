package domain

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Pratyush-Px/Gatherly/internal/entity"
	"github.com/Pratyush-Px/Gatherly/internal/model"
	"github.com/Pratyush-Px/Gatherly/internal/repository"
	"github.com/Pratyush-Px/Gatherly/pkg/errorx"
	"github.com/Pratyush-Px/Gatherly/pkg/xcontext"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const feedPageSize = 20

type PostDomain interface {
	Create(ctx context.Context, req *model.CreatePostRequest) (*model.CreatePostResponse, error)
	GetFeed(ctx context.Context, req *model.GetFeedRequest) (*model.GetFeedResponse, error)
	ToggleLike(ctx context.Context, req *model.ToggleLikeRequest) (*model.ToggleLikeResponse, error)
	Delete(ctx context.Context, req *model.DeletePostRequest) (*model.DeletePostResponse, error)
	Update(ctx context.Context, req *model.UpdatePostRequest) (*model.UpdatePostResponse, error)
	Get(ctx context.Context, req *model.GetPostRequest) (*model.GetPostResponse, error)
}

type postDomain struct {
	postRepo         repository.PostRepository
	postLikeRepo     repository.PostLikeRepository
	commentRepo      repository.CommentRepository
	notificationRepo repository.NotificationRepository
}

func NewPostDomain(
	postRepo repository.PostRepository,
	postLikeRepo repository.PostLikeRepository,
	commentRepo repository.CommentRepository,
	notificationRepo repository.NotificationRepository,
) *postDomain {
	return &postDomain{
		postRepo:         postRepo,
		postLikeRepo:     postLikeRepo,
		commentRepo:      commentRepo,
		notificationRepo: notificationRepo,
	}
}

func (d *postDomain) Create(
	ctx context.Context, req *model.CreatePostRequest,
) (*model.CreatePostResponse, error) {
	post := &entity.Post{
		Base:     entity.Base{ID: uuid.NewString()},
		UserID:   xcontext.RequestUserID(ctx),
		Content:  req.Content,
		ImageURL: req.ImageURL,
	}

	if err := d.postRepo.Create(ctx, post); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create post: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreatePostResponse{
		Message: "Post created!",
		Post:    model.ConvertPost(post),
	}, nil
}

// GetFeed assembles pages of 20 posts newest-first, each carrying its full
// comment list. The end of the feed is signaled by a short page, there is no
// total count.
func (d *postDomain) GetFeed(
	ctx context.Context, req *model.GetFeedRequest,
) (*model.GetFeedResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * feedPageSize

	posts, err := d.postRepo.GetList(ctx, offset, feedPageSize)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get feed posts: %v", err)
		return nil, errorx.Unknown
	}

	clientPosts := []model.FeedPost{}
	for _, post := range posts {
		comments, err := d.commentRepo.GetListByPostID(ctx, post.ID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get comments of post %s: %v", post.ID, err)
			return nil, errorx.Unknown
		}

		clientComments := []model.FeedComment{}
		for _, comment := range comments {
			clientComments = append(clientComments, model.FeedComment{
				ID:       comment.ID,
				Content:  comment.Content,
				Username: comment.Username,
			})
		}

		clientPosts = append(clientPosts, model.FeedPost{
			ID:        post.ID,
			Content:   post.Content,
			ImageURL:  post.ImageURL,
			Likes:     post.Likes,
			CreatedAt: post.CreatedAt,
			UserID:    post.UserID,
			Name:      post.Name,
			Username:  post.Username,
			Comments:  clientComments,
		})
	}

	return &model.GetFeedResponse{Posts: clientPosts}, nil
}

// ToggleLike likes the post when no edge exists and unlikes it otherwise.
// The edge mutation, the counter update and the notification insert are three
// independent statements; interleavings under concurrency can drift the
// counter or duplicate notifications, which is accepted behavior here.
func (d *postDomain) ToggleLike(
	ctx context.Context, req *model.ToggleLikeRequest,
) (*model.ToggleLikeResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	_, err := d.postLikeRepo.Get(ctx, userID, req.PostID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get like edge: %v", err)
		return nil, errorx.Unknown
	}

	liked := err == nil
	if liked {
		if err := d.postLikeRepo.Delete(ctx, userID, req.PostID); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot delete like edge: %v", err)
			return nil, errorx.Unknown
		}

		if err := d.postRepo.DecreaseLikes(ctx, req.PostID); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot decrease like counter: %v", err)
			return nil, errorx.Unknown
		}

		post, err := d.postRepo.GetByID(ctx, req.PostID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get post: %v", err)
			return nil, errorx.Unknown
		}

		return &model.ToggleLikeResponse{Message: "Unliked", Likes: post.Likes}, nil
	}

	err = d.postLikeRepo.Create(ctx, &entity.PostLike{UserID: userID, PostID: req.PostID})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create like edge: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.postRepo.IncreaseLikes(ctx, req.PostID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot increase like counter: %v", err)
		return nil, errorx.Unknown
	}

	post, err := d.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get post: %v", err)
		return nil, errorx.Unknown
	}

	if post.UserID != userID {
		err := d.notificationRepo.Create(ctx, &entity.Notification{
			RecipientID: post.UserID,
			SenderID:    userID,
			Type:        entity.LikeNotification,
			PostID:      sql.NullString{String: req.PostID, Valid: true},
		})
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot create like notification: %v", err)
			return nil, errorx.Unknown
		}
	}

	return &model.ToggleLikeResponse{Message: "Liked", Likes: post.Likes}, nil
}

func (d *postDomain) Delete(
	ctx context.Context, req *model.DeletePostRequest,
) (*model.DeletePostResponse, error) {
	err := d.postRepo.DeleteByOwner(ctx, req.PostID, xcontext.RequestUserID(ctx))
	if err != nil {
		// A foreign post and a missing post both land here.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.PermissionDenied, "Cannot delete this post")
		}

		xcontext.Logger(ctx).Errorf("Cannot delete post: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeletePostResponse{Message: "Post deleted!"}, nil
}

func (d *postDomain) Update(
	ctx context.Context, req *model.UpdatePostRequest,
) (*model.UpdatePostResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	err := d.postRepo.UpdateContentByOwner(ctx, req.PostID, userID, req.Content)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.PermissionDenied, "Cannot edit this post")
		}

		xcontext.Logger(ctx).Errorf("Cannot update post: %v", err)
		return nil, errorx.Unknown
	}

	post, err := d.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get post after update: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdatePostResponse{
		Message: "Post updated",
		Post:    model.ConvertPost(post),
	}, nil
}

func (d *postDomain) Get(
	ctx context.Context, req *model.GetPostRequest,
) (*model.GetPostResponse, error) {
	post, err := d.postRepo.GetWithAuthor(ctx, req.PostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Post not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get post: %v", err)
		return nil, errorx.Unknown
	}

	comments, err := d.commentRepo.GetListByPostID(ctx, req.PostID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get comments: %v", err)
		return nil, errorx.Unknown
	}

	clientComments := []model.Comment{}
	for _, comment := range comments {
		clientComments = append(clientComments, model.Comment{
			ID:        comment.ID,
			PostID:    comment.PostID,
			Content:   comment.Content,
			CreatedAt: comment.CreatedAt,
			UserID:    comment.UserID,
			Username:  comment.Username,
			Name:      comment.Name,
		})
	}

	return &model.GetPostResponse{
		Post: model.PostDetail{
			ID:        post.ID,
			Content:   post.Content,
			ImageURL:  post.ImageURL,
			Likes:     post.Likes,
			CreatedAt: post.CreatedAt,
			UserID:    post.UserID,
			Username:  post.Username,
			Name:      post.Name,
		},
		Comments: clientComments,
	}, nil
}
