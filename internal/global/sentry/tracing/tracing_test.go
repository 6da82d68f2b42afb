package tracing

import (
	"context"
	"testing"

	"camp-signup-system/config"

	"github.com/getsentry/sentry-go"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type row struct {
	ID   uint
	Name string
}

func TestIsEnabled(t *testing.T) {
	config.Set(&config.Config{})
	require.False(t, IsEnabled())
	config.Set(&config.Config{Sentry: config.Sentry{Dsn: "https://key@example.invalid/1"}})
	require.True(t, IsEnabled())
	config.Set(&config.Config{})
}

func TestStartSpanWithoutParentIsNoop(t *testing.T) {
	ctx := context.Background()
	got, finish := StartSpan(ctx, "op", "desc")
	require.Equal(t, ctx, got)
	finish()
}

func TestGormPluginWithAndWithoutSpan(t *testing.T) {
	config.Set(&config.Config{Sentry: config.Sentry{DBSlowThresholdMs: 0}})

	db, err := gorm.Open(sqlite.Open("file:tracing?mode=memory&cache=shared"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.Use(NewGormTracingPlugin()))
	require.NoError(t, db.AutoMigrate(&row{}))

	require.NoError(t, db.Create(&row{Name: "plain"}).Error)

	hub := sentry.NewHub(nil, sentry.NewScope())
	ctx := sentry.SetHubOnContext(context.Background(), hub)
	tx := sentry.StartTransaction(ctx, "test")
	defer tx.Finish()

	spanCtx, finish := StartSpan(tx.Context(), "store.op", "rows")
	require.NotNil(t, sentry.SpanFromContext(spanCtx))
	require.NoError(t, db.WithContext(spanCtx).Create(&row{Name: "traced"}).Error)
	finish()

	var n int64
	require.NoError(t, db.WithContext(tx.Context()).Model(&row{}).Count(&n).Error)
	require.EqualValues(t, 2, n)
}
