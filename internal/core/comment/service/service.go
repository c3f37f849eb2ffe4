package commentapp

import (
	"context"
	"strings"

	"yatube/internal/config"
	"yatube/internal/core/access"
	"yatube/internal/core/apperr"
	commentEntity "yatube/internal/core/comment"
	commentPort "yatube/internal/ports/comment"
	postPort "yatube/internal/ports/post"
	userPort "yatube/internal/ports/user"

	"go.uber.org/zap"
)

// CommentService نظرها بلافاصله بعد از ثبت دیده می‌شوند
type CommentService struct {
	CommentRepository commentPort.CommentRepository
	PostRepository    postPort.PostRepository
}

func NewCommentService(commentRepo commentPort.CommentRepository, postRepo postPort.PostRepository) *CommentService {
	return &CommentService{
		CommentRepository: commentRepo,
		PostRepository:    postRepo,
	}
}

func (s *CommentService) AddComment(ctx context.Context, actor access.Actor, postID uint, text string) (*commentPort.CommentDTO, error) {
	if d := access.RequireAuth(actor, access.PostCommentPath(postID)); !d.Allowed() {
		return nil, apperr.NewAuthenticationRequired(d.Target)
	}
	if _, err := s.PostRepository.FindByID(ctx, postID); err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperr.NewValidationError("text", "This field is required.")
	}

	c, err := s.CommentRepository.Create(ctx, &commentEntity.Comment{
		PostID:   postID,
		AuthorID: actor.ID,
		Text:     text,
	})
	if err != nil {
		return nil, err
	}
	config.Logger.Info("Comment added", zap.Uint("postID", postID), zap.Uint("commentID", c.ID), zap.String("author", actor.Username))
	dto := commentPort.ToDTO(c)
	dto.Author = &userPort.UserDTO{ID: actor.ID.String(), Username: actor.Username}
	return dto, nil
}

// ListForPost oldest first.
func (s *CommentService) ListForPost(ctx context.Context, postID uint) ([]*commentPort.CommentDTO, error) {
	comments, err := s.CommentRepository.FindByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	dtos := make([]*commentPort.CommentDTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, commentPort.ToDTO(c))
	}
	return dtos, nil
}
