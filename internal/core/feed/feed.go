// Package feed describes the four post feeds and the paginator they all share.
package feed

import "fmt"

// Kind selects which filter is applied before pagination
type Kind int

const (
	Global Kind = iota
	ByGroup
	ByAuthor
	Following
)

var kindNames = map[Kind]string{
	Global:    "global",
	ByGroup:   "group",
	ByAuthor:  "author",
	Following: "following",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Query one feed request. Scope is the group slug for ByGroup and the
// username for ByAuthor; Viewer is the authenticated user id or empty.
type Query struct {
	Kind   Kind
	Scope  string
	Viewer string
	Page   string
}

func GlobalQuery(viewer, page string) Query {
	return Query{Kind: Global, Viewer: viewer, Page: page}
}

func GroupQuery(slug, viewer, page string) Query {
	return Query{Kind: ByGroup, Scope: slug, Viewer: viewer, Page: page}
}

func AuthorQuery(username, viewer, page string) Query {
	return Query{Kind: ByAuthor, Scope: username, Viewer: viewer, Page: page}
}

func FollowingQuery(viewer, page string) Query {
	return Query{Kind: Following, Viewer: viewer, Page: page}
}
