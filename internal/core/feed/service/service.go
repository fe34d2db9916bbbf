package feedapp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"inkwell/internal/core/apperr"
	"inkwell/internal/core/feed"
	postEntity "inkwell/internal/core/post"
	"inkwell/internal/metrics"
	attachmentPort "inkwell/internal/ports/attachment"
	feedPort "inkwell/internal/ports/feed"
	"inkwell/internal/ports/feedcache"
	followerPort "inkwell/internal/ports/follower"
	groupPort "inkwell/internal/ports/group"
	postPort "inkwell/internal/ports/post"
	userPort "inkwell/internal/ports/user"

	"github.com/gofrs/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// FeedService composes every feed kind through one pipeline:
// resolve scope, count, pick the page window, list, map.
type FeedService struct {
	PostRepository     postPort.PostRepository
	GroupRepository    groupPort.GroupRepository
	UserRepository     userPort.UserRepository
	FollowerRepository followerPort.FollowerRepository
	Cache              feedcache.PageCache
	Attachments        attachmentPort.Store
	pageSize           int
	logger             *zap.Logger
}

func NewFeedService(
	posts postPort.PostRepository,
	groups groupPort.GroupRepository,
	users userPort.UserRepository,
	follows followerPort.FollowerRepository,
	cache feedcache.PageCache,
	attachments attachmentPort.Store,
	pageSize int,
	logger *zap.Logger,
) *FeedService {
	if pageSize <= 0 {
		pageSize = feed.DefaultPageSize
	}
	return &FeedService{
		PostRepository:     posts,
		GroupRepository:    groups,
		UserRepository:     users,
		FollowerRepository: follows,
		Cache:              cache,
		Attachments:        attachments,
		pageSize:           pageSize,
		logger:             logger,
	}
}

// GetFeed returns one page of the feed q names. A missing group or user is
// apperr.ErrNotFound; the following feed without a viewer is apperr.ErrAuthRequired.
func (s *FeedService) GetFeed(ctx context.Context, q feed.Query) (*feedPort.FeedDTO, error) {
	metrics.FeedRequests.WithLabelValues(q.Kind.String()).Inc()

	if q.Kind == feed.Global && s.Cache != nil {
		// out of range numbers are never stored, so they miss and get resolved below
		if dto, ok := s.cached(ctx, feed.PageNumber(q.Page, math.MaxInt)); ok {
			return dto, nil
		}
	}

	dto := &feedPort.FeedDTO{Kind: q.Kind.String()}
	var filter postPort.Filter
	var author *uuid.UUID

	switch q.Kind {
	case feed.Global:
	case feed.ByGroup:
		g, err := s.GroupRepository.FindBySlug(ctx, q.Scope)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", q.Scope, err)
		}
		filter.GroupID = &g.ID
		dto.Group = groupPort.NewGroupDTO(g)
	case feed.ByAuthor:
		u, err := s.UserRepository.FindByUsername(ctx, q.Scope)
		if err != nil {
			return nil, fmt.Errorf("user %q: %w", q.Scope, err)
		}
		filter.AuthorID = &u.ID
		author = &u.ID
		dto.Author = userPort.NewUserDTO(u)
	case feed.Following:
		viewer, ok := parseViewer(q.Viewer)
		if !ok {
			return nil, fmt.Errorf("following feed: %w", apperr.ErrAuthRequired)
		}
		filter.FollowedBy = &viewer
	default:
		return nil, fmt.Errorf("unknown feed kind %s", q.Kind)
	}

	total, err := s.PostRepository.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count %s feed: %w", q.Kind, err)
	}
	w := feed.Resolve(total, s.pageSize, q.Page)

	posts, err := s.PostRepository.List(ctx, filter, w.Offset, w.Limit)
	if err != nil {
		return nil, fmt.Errorf("list %s feed: %w", q.Kind, err)
	}
	items := lo.Map(posts, func(p *postEntity.Post, _ int) *postPort.PostDTO {
		return postPort.NewPostDTO(p, s.imageURL)
	})
	dto.Page = feed.NewPage(items, w)

	if author != nil {
		dto.AuthorPostCount = &total
		if viewer, ok := parseViewer(q.Viewer); ok {
			following, err := s.FollowerRepository.IsFollowing(ctx, viewer, *author)
			if err != nil {
				return nil, fmt.Errorf("follow state: %w", err)
			}
			dto.Following = &following
		}
	}

	if q.Kind == feed.Global && s.Cache != nil {
		s.store(ctx, w.Number, dto)
	}
	return dto, nil
}

// InvalidateCache drops every cached global feed page
func (s *FeedService) InvalidateCache(ctx context.Context) error {
	if s.Cache == nil {
		return nil
	}
	if err := s.Cache.Invalidate(ctx); err != nil {
		return fmt.Errorf("invalidate feed cache: %w", err)
	}
	s.logger.Info("feed cache cleared")
	return nil
}

// cacheKey one entry per real page; junk page values collapse onto page 1
func cacheKey(page int) string {
	return "page:" + strconv.Itoa(page)
}

func (s *FeedService) cached(ctx context.Context, page int) (*feedPort.FeedDTO, bool) {
	data, ok, err := s.Cache.Get(ctx, cacheKey(page))
	if err != nil {
		metrics.FeedCache.WithLabelValues("error").Inc()
		s.logger.Warn("feed cache read failed", zap.Error(err))
		return nil, false
	}
	if !ok {
		metrics.FeedCache.WithLabelValues("miss").Inc()
		return nil, false
	}

	var dto feedPort.FeedDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		metrics.FeedCache.WithLabelValues("error").Inc()
		s.logger.Warn("dropping undecodable feed cache entry", zap.Error(err))
		return nil, false
	}
	metrics.FeedCache.WithLabelValues("hit").Inc()
	return &dto, true
}

func (s *FeedService) store(ctx context.Context, page int, dto *feedPort.FeedDTO) {
	data, err := json.Marshal(dto)
	if err != nil {
		s.logger.Warn("feed page not cacheable", zap.Error(err))
		return
	}
	if err := s.Cache.Set(ctx, cacheKey(page), data); err != nil {
		s.logger.Warn("feed cache write failed", zap.Error(err))
	}
}

func (s *FeedService) imageURL(ref string) string {
	if s.Attachments == nil {
		return ""
	}
	return s.Attachments.URL(ref)
}

func parseViewer(viewer string) (uuid.UUID, bool) {
	if viewer == "" {
		return uuid.Nil, false
	}
	id, err := uuid.FromString(viewer)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
