package feed

import (
	"inkwell/internal/core/feed"
	groupPort "inkwell/internal/ports/group"
	postPort "inkwell/internal/ports/post"
	userPort "inkwell/internal/ports/user"
)

// FeedDTO one page of a feed plus the context its kind carries
type FeedDTO struct {
	Kind string `json:"kind"`
	feed.Page[*postPort.PostDTO]

	Group           *groupPort.GroupDTO `json:"group,omitempty"`
	Author          *userPort.UserDTO   `json:"author,omitempty"`
	AuthorPostCount *int64              `json:"author_post_count,omitempty"`
	Following       *bool               `json:"following,omitempty"`
}
