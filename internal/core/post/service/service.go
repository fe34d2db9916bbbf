package postapp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"inkwell/internal/core/apperr"
	commentEntity "inkwell/internal/core/comment"
	postEntity "inkwell/internal/core/post"
	attachmentPort "inkwell/internal/ports/attachment"
	commentPort "inkwell/internal/ports/comment"
	groupPort "inkwell/internal/ports/group"
	postPort "inkwell/internal/ports/post"

	"github.com/gofrs/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type PostService struct {
	PostRepository    postPort.PostRepository
	GroupRepository   groupPort.GroupRepository
	CommentRepository commentPort.CommentRepository
	Attachments       attachmentPort.Store
	logger            *zap.Logger
	now               func() time.Time
}

func NewPostService(
	postRepo postPort.PostRepository,
	groupRepo groupPort.GroupRepository,
	commentRepo commentPort.CommentRepository,
	attachments attachmentPort.Store,
	logger *zap.Logger,
) *PostService {
	return &PostService{
		PostRepository:    postRepo,
		GroupRepository:   groupRepo,
		CommentRepository: commentRepo,
		Attachments:       attachments,
		logger:            logger,
		now:               time.Now,
	}
}

// WithClock replaces the source of publication dates
func (s *PostService) WithClock(now func() time.Time) *PostService {
	s.now = now
	return s
}

type postText struct {
	Text string `json:"text" validate:"required,max=15000"`
}

// CreatePost publishes a post; the publication date is taken here and never changes
func (s *PostService) CreatePost(ctx context.Context, in postPort.CreatePostInput) (*postPort.PostDTO, error) {
	uid, err := uuid.FromString(in.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("invalid author id: %w", err)
	}

	text := strings.TrimSpace(in.Text)
	if err := apperr.Validate(postText{Text: text}); err != nil {
		return nil, err
	}
	if err := s.checkGroup(ctx, in.GroupID); err != nil {
		return nil, err
	}

	post := &postEntity.Post{
		Text:    text,
		PubDate: s.now(),
		UserID:  uid,
		GroupID: in.GroupID,
	}
	if in.Image != nil {
		ref, err := s.Attachments.Save(ctx, in.Image.Filename, in.Image.Content)
		if err != nil {
			return nil, fmt.Errorf("save image: %w", err)
		}
		post.Image = ref
	}

	if _, err := s.PostRepository.Create(ctx, post); err != nil {
		s.logger.Error("failed to create post", zap.String("userID", in.AuthorID), zap.Error(err))
		s.discard(ctx, post.Image)
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	s.logger.Info("post created", zap.Uint64("postID", post.ID), zap.String("userID", in.AuthorID))

	created, err := s.PostRepository.FindByID(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	return postPort.NewPostDTO(created, s.Attachments.URL), nil
}

// EditPost only the author may edit; existence is checked before ownership
func (s *PostService) EditPost(ctx context.Context, postID uint64, editorID string, in postPort.EditPostInput) (*postPort.PostDTO, error) {
	post, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("post %d: %w", postID, err)
	}
	if post.UserID.String() != editorID {
		s.logger.Warn("edit by non-author", zap.Uint64("postID", postID), zap.String("userID", editorID))
		return nil, fmt.Errorf("post %d: %w", postID, apperr.ErrForbidden)
	}

	if in.Text != nil {
		text := strings.TrimSpace(*in.Text)
		if err := apperr.Validate(postText{Text: text}); err != nil {
			return nil, err
		}
		post.Text = text
	}
	switch {
	case in.ClearGroup:
		post.GroupID = nil
	case in.GroupID != nil:
		if err := s.checkGroup(ctx, in.GroupID); err != nil {
			return nil, err
		}
		post.GroupID = in.GroupID
	}
	var saved string
	if in.Image != nil {
		ref, err := s.Attachments.Save(ctx, in.Image.Filename, in.Image.Content)
		if err != nil {
			return nil, fmt.Errorf("save image: %w", err)
		}
		saved, post.Image = ref, ref
	}

	if err := s.PostRepository.Update(ctx, post); err != nil {
		s.discard(ctx, saved)
		return nil, fmt.Errorf("update post %d: %w", postID, err)
	}
	s.logger.Info("post edited", zap.Uint64("postID", postID))

	updated, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return postPort.NewPostDTO(updated, s.Attachments.URL), nil
}

// GetPost a post with its comments and the number of posts its author has published
func (s *PostService) GetPost(ctx context.Context, postID uint64) (*postPort.PostDetailDTO, error) {
	post, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("post %d: %w", postID, err)
	}
	comments, err := s.CommentRepository.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	count, err := s.PostRepository.Count(ctx, postPort.Filter{AuthorID: &post.UserID})
	if err != nil {
		return nil, err
	}

	return &postPort.PostDetailDTO{
		Post:            postPort.NewPostDTO(post, s.Attachments.URL),
		Comments: lo.Map(comments, func(c *commentEntity.Comment, _ int) *commentPort.CommentDTO {
			return commentPort.NewCommentDTO(c)
		}),
		AuthorPostCount: count,
	}, nil
}

func (s *PostService) checkGroup(ctx context.Context, groupID *uint) error {
	if groupID == nil {
		return nil
	}
	_, err := s.GroupRepository.FindByID(ctx, *groupID)
	if errors.Is(err, apperr.ErrNotFound) {
		return apperr.NewValidationError("group", "select a valid group")
	}
	return err
}

// discard drops an image whose post never got written
func (s *PostService) discard(ctx context.Context, ref string) {
	if ref == "" {
		return
	}
	if err := s.Attachments.Delete(context.WithoutCancel(ctx), ref); err != nil {
		s.logger.Warn("failed to remove orphaned image", zap.String("ref", ref), zap.Error(err))
	}
}
