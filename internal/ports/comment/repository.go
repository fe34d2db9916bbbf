package comment

import (
	"context"
	"time"

	"inkwell/internal/core/comment"
	userPort "inkwell/internal/ports/user"
)

// CommentRepository storage port for comments
type CommentRepository interface {
	Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error)
	// ListByPost newest first, authors loaded
	ListByPost(ctx context.Context, postID uint64) ([]*comment.Comment, error)
}

type CommentDTO struct {
	ID      uint64            `json:"id"`
	PostID  uint64            `json:"post_id"`
	Text    string            `json:"text"`
	PubDate time.Time         `json:"pub_date"`
	Author  *userPort.UserDTO `json:"author,omitempty"`
}

func NewCommentDTO(c *comment.Comment) *CommentDTO {
	return &CommentDTO{
		ID:      c.ID,
		PostID:  c.PostID,
		Text:    c.Text,
		PubDate: c.PubDate,
		Author:  userPort.NewUserDTO(&c.User),
	}
}
