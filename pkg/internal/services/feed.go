package services

import (
	"context"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/spf13/viper"
	"gorm.io/gorm"

	localCache "github.com/veladine/chronicle/pkg/internal/cache"
	"github.com/veladine/chronicle/pkg/internal/database"
	"github.com/veladine/chronicle/pkg/internal/models"
)

type FeedPage struct {
	Page      int            `json:"page"`
	PageCount int            `json:"page_count"`
	Total     int64          `json:"total"`
	Posts     []*models.Post `json:"posts"`
}

func FeedPageSize() int {
	size := viper.GetInt("paginator.page_size")
	if size <= 0 {
		size = 10
	}
	return size
}

// PaginatePost slices the already-filtered query into one feed page.
// Out-of-range page numbers clamp to the nearest valid page, the way
// readers expect when a feed shrinks under them.
func PaginatePost(tx *gorm.DB, page int) (FeedPage, error) {
	size := FeedPageSize()

	countTx := tx.Session(&gorm.Session{})
	total, err := CountPost(countTx)
	if err != nil {
		return FeedPage{}, fmt.Errorf("unable to count feed posts: %v", err)
	}

	pageCount := int((total + int64(size) - 1) / int64(size))
	if pageCount < 1 {
		pageCount = 1
	}
	if page < 1 {
		page = 1
	} else if page > pageCount {
		page = pageCount
	}

	posts, err := ListPost(tx, size, (page-1)*size, "posts.created_at DESC")
	if err != nil {
		return FeedPage{}, fmt.Errorf("unable to list feed posts: %v", err)
	}

	return FeedPage{
		Page:      page,
		PageCount: pageCount,
		Total:     total,
		Posts:     posts,
	}, nil
}

func GetGlobalFeed(page int) (FeedPage, error) {
	return PaginatePost(database.C, page)
}

func GetGroupFeed(group models.Group, page int) (FeedPage, error) {
	return PaginatePost(FilterPostWithGroup(database.C, group.Slug), page)
}

func GetAuthorFeed(author models.Account, page int) (FeedPage, error) {
	return PaginatePost(FilterPostWithAuthor(database.C, author.ID), page)
}

func GetFollowedFeed(user models.Account, page int) (FeedPage, error) {
	return PaginatePost(FilterPostWithFollowed(database.C, user), page)
}

const feedCacheTag = "index_page"

func feedCacheKey(page int) string {
	return fmt.Sprintf("index_page#%d", page)
}

func feedCacheTTL() time.Duration {
	seconds := viper.GetInt("cache.index_ttl")
	if seconds <= 0 {
		seconds = 20
	}
	return time.Duration(seconds) * time.Second
}

// GetCachedGlobalFeed serves the global feed out of the shared page cache.
// The cached page is viewer-independent, so it carries no follow flags.
func GetCachedGlobalFeed(page int) (FeedPage, error) {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	ctx := context.Background()

	if val, err := marshal.Get(ctx, feedCacheKey(page), new(FeedPage)); err == nil {
		return *val.(*FeedPage), nil
	}

	out, err := GetGlobalFeed(page)
	if err != nil {
		return out, err
	}

	_ = marshal.Set(
		ctx,
		feedCacheKey(page),
		out,
		store.WithExpiration(feedCacheTTL()),
		store.WithTags([]string{feedCacheTag}),
	)

	return out, nil
}

// FlushGlobalFeedCache drops every cached feed page. Writes do not
// invalidate the cache on their own; stale pages simply age out.
func FlushGlobalFeedCache() {
	cacheManager := cache.New[any](localCache.S)
	_ = cacheManager.Invalidate(
		context.Background(),
		store.WithInvalidateTags([]string{feedCacheTag}),
	)
}
