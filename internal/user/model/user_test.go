package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestUser_TableName(t *testing.T) {
	t.Run("returns correct table name", func(t *testing.T) {
		assert.Equal(t, "users", User{}.TableName())
	})
}

func TestUser_BeforeUpdate(t *testing.T) {
	t.Run("updates timestamp before update", func(t *testing.T) {
		user := &User{
			UserID:    "alice",
			UpdatedAt: time.Now().Add(-1 * time.Hour),
		}

		oldUpdatedAt := user.UpdatedAt
		require.NoError(t, user.BeforeUpdate(nil))
		assert.True(t, user.UpdatedAt.After(oldUpdatedAt))
	})
}

func TestUser_SkillsRoundTrip(t *testing.T) {
	t.Run("skills serialize through the database", func(t *testing.T) {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		require.NoError(t, err)
		require.NoError(t, db.AutoMigrate(&User{}))

		user := &User{
			UserID:      "alice",
			DisplayName: "Alice",
			Skills:      []string{"go", "postgres"},
		}
		require.NoError(t, db.Create(user).Error)

		var got User
		require.NoError(t, db.Where("user_id = ?", "alice").First(&got).Error)
		assert.Equal(t, []string{"go", "postgres"}, got.Skills)
	})
}
