package database

import (
	"path/filepath"
	"testing"

	"camp-signup-system/config"
	"camp-signup-system/internal/model"

	drivermysql "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/require"
)

func TestDialector(t *testing.T) {
	cases := map[string]string{
		"mysql://root:pw@127.0.0.1:3306/camp":         "mysql",
		"postgres://camp@localhost:5432/camp":         "postgres",
		"postgresql://camp@localhost/camp":            "postgres",
		"sqlite:///app.db":                            "sqlite",
		"app.db":                                      "sqlite",
		"file:camp?mode=memory&cache=shared":          "sqlite",
	}
	for uri, want := range cases {
		d, err := Dialector(uri)
		require.NoError(t, err, uri)
		require.Equal(t, want, d.Name(), uri)
	}

	_, err := Dialector("")
	require.Error(t, err)
	_, err = Dialector("redis://localhost:6379")
	require.Error(t, err)
}

func TestMysqlDSN(t *testing.T) {
	dsn, err := mysqlDSN("mysql://camp:s3cret@db:3306/campdb?timeout=5s")
	require.NoError(t, err)

	c, err := drivermysql.ParseDSN(dsn)
	require.NoError(t, err)
	require.Equal(t, "camp", c.User)
	require.Equal(t, "s3cret", c.Passwd)
	require.Equal(t, "db:3306", c.Addr)
	require.Equal(t, "campdb", c.DBName)
	require.True(t, c.ParseTime)
}

func TestSqlitePath(t *testing.T) {
	require.Equal(t, "app.db", sqlitePath("sqlite:///app.db"))
	require.Equal(t, "app.db", sqlitePath("sqlite://app.db"))
	require.Equal(t, "/var/lib/app.db", sqlitePath("sqlite:////var/lib/app.db"))
	require.Equal(t, "app.db?_pragma=foreign_keys(1)", sqliteDSN("app.db"))
	require.Equal(t, "file:x?mode=memory&_pragma=foreign_keys(1)", sqliteDSN("file:x?mode=memory"))
}

func TestOpenMigratesSqlite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camp.db")
	db, err := Open("sqlite:///"+path, config.ModeRelease)
	require.NoError(t, err)

	for _, m := range model.All() {
		require.True(t, db.Migrator().HasTable(m))
	}
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}
