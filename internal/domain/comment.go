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

type CommentDomain interface {
	Add(ctx context.Context, req *model.AddCommentRequest) (*model.AddCommentResponse, error)
	GetList(ctx context.Context, req *model.ListCommentsRequest) (*model.ListCommentsResponse, error)
	Delete(ctx context.Context, req *model.DeleteCommentRequest) (*model.DeleteCommentResponse, error)
}

type commentDomain struct {
	commentRepo      repository.CommentRepository
	postRepo         repository.PostRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
}

func NewCommentDomain(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
) *commentDomain {
	return &commentDomain{
		commentRepo:      commentRepo,
		postRepo:         postRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
	}
}

// Add inserts the comment before looking up the post's author, mirroring the
// original write order. Commenting on a nonexistent post therefore leaves an
// orphan comment row behind and then fails with NotFound.
func (d *commentDomain) Add(
	ctx context.Context, req *model.AddCommentRequest,
) (*model.AddCommentResponse, error) {
	senderID := xcontext.RequestUserID(ctx)

	comment := &entity.Comment{
		Base:    entity.Base{ID: uuid.NewString()},
		PostID:  req.PostID,
		UserID:  senderID,
		Content: req.Content,
	}

	if err := d.commentRepo.Create(ctx, comment); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create comment: %v", err)
		return nil, errorx.Unknown
	}

	post, err := d.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Post not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get commented post: %v", err)
		return nil, errorx.Unknown
	}

	if post.UserID != senderID {
		err := d.notificationRepo.Create(ctx, &entity.Notification{
			RecipientID: post.UserID,
			SenderID:    senderID,
			Type:        entity.CommentNotification,
			PostID:      sql.NullString{String: req.PostID, Valid: true},
		})
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot create comment notification: %v", err)
			return nil, errorx.Unknown
		}
	}

	sender, err := d.userRepo.GetByID(ctx, senderID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get comment author: %v", err)
		return nil, errorx.Unknown
	}

	return &model.AddCommentResponse{
		Message: "Comment added!",
		Comment: model.Comment{
			ID:        comment.ID,
			PostID:    comment.PostID,
			Content:   comment.Content,
			CreatedAt: comment.CreatedAt,
			UserID:    sender.ID,
			Username:  sender.Username,
			Name:      sender.Name,
		},
	}, nil
}

func (d *commentDomain) GetList(
	ctx context.Context, req *model.ListCommentsRequest,
) (*model.ListCommentsResponse, error) {
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

	return &model.ListCommentsResponse{Comments: clientComments}, nil
}

func (d *commentDomain) Delete(
	ctx context.Context, req *model.DeleteCommentRequest,
) (*model.DeleteCommentResponse, error) {
	err := d.commentRepo.DeleteByOwner(ctx, req.CommentID, xcontext.RequestUserID(ctx))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.PermissionDenied, "Cannot delete this comment")
		}

		xcontext.Logger(ctx).Errorf("Cannot delete comment: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteCommentResponse{Message: "Comment deleted"}, nil
}
