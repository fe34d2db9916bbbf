package post

import (
	"context"
	"time"

	"inkwell/internal/core/post"
	attachmentPort "inkwell/internal/ports/attachment"
	commentPort "inkwell/internal/ports/comment"
	groupPort "inkwell/internal/ports/group"
	userPort "inkwell/internal/ports/user"

	"github.com/gofrs/uuid"
)

// Filter selects posts for a feed; zero value means every post.
// At most one field is expected to be set.
type Filter struct {
	GroupID    *uint
	AuthorID   *uuid.UUID
	FollowedBy *uuid.UUID
}

// PostRepository storage port for posts
type PostRepository interface {
	Create(ctx context.Context, post *post.Post) (*post.Post, error)
	FindByID(ctx context.Context, id uint64) (*post.Post, error)
	// Update writes text, group and image only; the publication date never changes
	Update(ctx context.Context, post *post.Post) error
	// List returns posts newest first, ties broken by id, with author and group loaded
	List(ctx context.Context, filter Filter, offset, limit int) ([]*post.Post, error)
	Count(ctx context.Context, filter Filter) (int64, error)
}

// Inputs and DTOs for the use cases
type CreatePostInput struct {
	AuthorID string
	Text     string
	GroupID  *uint
	Image    *attachmentPort.Upload
}

// EditPostInput nil fields are left untouched; ClearGroup detaches the post from its group
type EditPostInput struct {
	Text       *string
	GroupID    *uint
	ClearGroup bool
	Image      *attachmentPort.Upload
}

type PostDTO struct {
	ID       uint64              `json:"id"`
	Text     string              `json:"text"`
	PubDate  time.Time           `json:"pub_date"`
	Author   *userPort.UserDTO   `json:"author,omitempty"`
	Group    *groupPort.GroupDTO `json:"group,omitempty"`
	Image    string              `json:"image,omitempty"`
	ImageURL string              `json:"image_url,omitempty"`
}

type PostDetailDTO struct {
	Post            *PostDTO                  `json:"post"`
	Comments        []*commentPort.CommentDTO `json:"comments"`
	AuthorPostCount int64                     `json:"author_post_count"`
}

// NewPostDTO maps an entity; imageURL turns the stored reference into a public URL
func NewPostDTO(p *post.Post, imageURL func(ref string) string) *PostDTO {
	dto := &PostDTO{
		ID:      p.ID,
		Text:    p.Text,
		PubDate: p.PubDate,
		Author:  userPort.NewUserDTO(&p.User),
		Group:   groupPort.NewGroupDTO(p.Group),
		Image:   p.Image,
	}
	if p.Image != "" && imageURL != nil {
		dto.ImageURL = imageURL(p.Image)
	}
	return dto
}
