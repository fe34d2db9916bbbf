package commentapp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"inkwell/internal/core/apperr"
	commentEntity "inkwell/internal/core/comment"
	commentPort "inkwell/internal/ports/comment"
	postPort "inkwell/internal/ports/post"
	userPort "inkwell/internal/ports/user"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

type CommentService struct {
	CommentRepository commentPort.CommentRepository
	PostRepository    postPort.PostRepository
	UserRepository    userPort.UserRepository
	logger            *zap.Logger
	now               func() time.Time
}

func NewCommentService(
	commentRepo commentPort.CommentRepository,
	postRepo postPort.PostRepository,
	userRepo userPort.UserRepository,
	logger *zap.Logger,
) *CommentService {
	return &CommentService{
		CommentRepository: commentRepo,
		PostRepository:    postRepo,
		UserRepository:    userRepo,
		logger:            logger,
		now:               time.Now,
	}
}

func (s *CommentService) WithClock(now func() time.Time) *CommentService {
	s.now = now
	return s
}

type commentText struct {
	Text string `json:"text" validate:"required,max=10000"`
}

// CreateComment attaches a comment to an existing post
func (s *CommentService) CreateComment(ctx context.Context, postID uint64, authorID, text string) (*commentPort.CommentDTO, error) {
	uid, err := uuid.FromString(authorID)
	if err != nil {
		return nil, fmt.Errorf("invalid author id: %w", err)
	}
	if _, err := s.PostRepository.FindByID(ctx, postID); err != nil {
		return nil, fmt.Errorf("post %d: %w", postID, err)
	}

	text = strings.TrimSpace(text)
	if err := apperr.Validate(commentText{Text: text}); err != nil {
		return nil, err
	}

	c := &commentEntity.Comment{
		PostID:  postID,
		UserID:  uid,
		Text:    text,
		PubDate: s.now(),
	}
	if _, err := s.CommentRepository.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	s.logger.Info("comment created", zap.Uint64("commentID", c.ID), zap.Uint64("postID", postID))

	author, err := s.UserRepository.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	c.User = *author
	return commentPort.NewCommentDTO(c), nil
}
