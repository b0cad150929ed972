package services_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/veladine/chronicle/pkg/internal/database"
	"github.com/veladine/chronicle/pkg/internal/models"
	"github.com/veladine/chronicle/pkg/internal/services"
)

// useTestDatabase points database.C at a fresh in-memory store for one test.
func useTestDatabase(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	source, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("unable to open test database: %v", err)
	}

	if err := database.RunMigration(source); err != nil {
		t.Fatalf("unable to migrate test database: %v", err)
	}

	database.C = source
}

func seedAccount(t *testing.T, name string) models.Account {
	t.Helper()

	account, err := services.NewAccount(name, name, name+"@example.com", "secret123")
	if err != nil {
		t.Fatalf("unable to seed account %s: %v", name, err)
	}
	return account
}

func seedGroup(t *testing.T, slug string) models.Group {
	t.Helper()

	group, err := services.NewGroup(slug, "The "+slug+" group", "")
	if err != nil {
		t.Fatalf("unable to seed group %s: %v", slug, err)
	}
	return group
}

func seedPost(t *testing.T, author models.Account, text string, groupId *uint, createdAt time.Time) models.Post {
	t.Helper()

	item := models.Post{
		Text:    text,
		GroupID: groupId,
	}
	item.CreatedAt = createdAt

	post, err := services.NewPost(author, item)
	if err != nil {
		t.Fatalf("unable to seed post: %v", err)
	}
	return post
}
