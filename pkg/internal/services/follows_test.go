package services_test

import (
	"errors"
	"testing"

	"github.com/veladine/chronicle/pkg/internal/database"
	"github.com/veladine/chronicle/pkg/internal/models"
	"github.com/veladine/chronicle/pkg/internal/services"
)

func countFollows(t *testing.T) int64 {
	t.Helper()

	var count int64
	if err := database.C.Model(&models.Follow{}).Count(&count).Error; err != nil {
		t.Fatalf("unable to count follows: %v", err)
	}
	return count
}

func TestFollowIdempotence(t *testing.T) {
	useTestDatabase(t)
	viewer := seedAccount(t, "viewer")
	author := seedAccount(t, "author")

	for i := 0; i < 2; i++ {
		if _, err := services.FollowAccount(viewer, author); err != nil {
			t.Fatalf("follow attempt %d failed: %v", i+1, err)
		}
	}

	if n := countFollows(t); n != 1 {
		t.Errorf("expected exactly one follow edge, got %d", n)
	}
}

func TestSelfFollowRejected(t *testing.T) {
	useTestDatabase(t)
	viewer := seedAccount(t, "viewer")

	_, err := services.FollowAccount(viewer, viewer)
	if !errors.Is(err, services.ErrSelfFollow) {
		t.Fatalf("expected ErrSelfFollow, got %v", err)
	}

	if n := countFollows(t); n != 0 {
		t.Errorf("expected no follow edges, got %d", n)
	}
}

func TestUnfollowIsNoopWhenNotFollowing(t *testing.T) {
	useTestDatabase(t)
	viewer := seedAccount(t, "viewer")
	author := seedAccount(t, "author")

	if err := services.UnfollowAccount(viewer, author); err != nil {
		t.Fatalf("unfollow of a non-followed author should not error: %v", err)
	}

	if n := countFollows(t); n != 0 {
		t.Errorf("expected no follow edges, got %d", n)
	}
}

func TestUnfollowRemovesEdgeAndAllowsRefollow(t *testing.T) {
	useTestDatabase(t)
	viewer := seedAccount(t, "viewer")
	author := seedAccount(t, "author")

	if _, err := services.FollowAccount(viewer, author); err != nil {
		t.Fatalf("unable to follow: %v", err)
	}
	if err := services.UnfollowAccount(viewer, author); err != nil {
		t.Fatalf("unable to unfollow: %v", err)
	}
	if n := countFollows(t); n != 0 {
		t.Fatalf("expected edge removed, got %d", n)
	}

	if _, err := services.FollowAccount(viewer, author); err != nil {
		t.Fatalf("unable to follow again after unfollow: %v", err)
	}
	if n := countFollows(t); n != 1 {
		t.Errorf("expected one edge after re-follow, got %d", n)
	}
}

func TestIsAccountFollowing(t *testing.T) {
	useTestDatabase(t)
	viewer := seedAccount(t, "viewer")
	author := seedAccount(t, "author")

	if services.IsAccountFollowing(nil, author) {
		t.Error("anonymous viewers never follow anyone")
	}
	if services.IsAccountFollowing(&viewer, author) {
		t.Error("expected not following before the edge exists")
	}

	if _, err := services.FollowAccount(viewer, author); err != nil {
		t.Fatalf("unable to follow: %v", err)
	}

	if !services.IsAccountFollowing(&viewer, author) {
		t.Error("expected following after the edge exists")
	}
}
