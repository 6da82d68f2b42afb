package test

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"camp-signup-system/config"
	"camp-signup-system/internal/global/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var seq atomic.Int64

// NewDB 为每个测试打开一个独立的内存 sqlite 库并完成迁移
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	uri := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, seq.Add(1))
	db, err := database.Open(uri, config.ModeRelease)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 内存库随最后一个连接关闭而销毁，固定单连接
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}
