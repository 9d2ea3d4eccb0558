package meta

import (
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseURL(t *testing.T) {
	driver, dsn, err := parseURL("mysql://root:secret@(127.0.0.1:3306)/sortdemo")
	require.NoError(t, err)
	assert.Equal(t, "mysql", driver)

	cfg, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "root", cfg.User)
	assert.Equal(t, "secret", cfg.Passwd)
	assert.Equal(t, "127.0.0.1:3306", cfg.Addr)
	assert.Equal(t, "sortdemo", cfg.DBName)
	assert.True(t, cfg.ParseTime)
}

func TestParseURLPasswordFromEnv(t *testing.T) {
	t.Setenv("META_PASSWORD", "fromenv")

	_, dsn, err := parseURL("mysql://root:@(127.0.0.1:3306)/sortdemo")
	require.NoError(t, err)

	cfg, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "fromenv", cfg.Passwd)
}

func TestParseURLErrors(t *testing.T) {
	_, _, err := parseURL("root@(127.0.0.1:3306)/sortdemo")
	assert.Error(t, err)

	_, _, err = parseURL("redis://127.0.0.1:6379/1")
	assert.EqualError(t, err, `unsupported meta driver "redis"`)

	_, _, err = parseURL("sqlite3://")
	assert.Error(t, err)
}

func TestParseURLSqlite(t *testing.T) {
	driver, dsn, err := parseURL("sqlite3:///tmp/runs.db")
	require.NoError(t, err)
	assert.Equal(t, "sqlite3", driver)
	assert.Equal(t, "/tmp/runs.db", dsn)
}

func TestRunDuration(t *testing.T) {
	r := Run{Elapsed: int64(3 * time.Millisecond)}
	assert.Equal(t, 3*time.Millisecond, r.Duration())
}

func TestStoreSqlite(t *testing.T) {
	s, err := Open("sqlite3://" + filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer s.Close()

	testStore(t, s)
}

func TestStoreMysql(t *testing.T) {
	uri := os.Getenv("SORTDEMO_TEST_META_URL")
	if uri == "" {
		t.Skip("SORTDEMO_TEST_META_URL not set")
	}

	s, err := Open(uri)
	require.NoError(t, err)
	defer s.Close()

	testStore(t, s)
}

func testStore(t *testing.T, s *Store) {
	first := &Run{Algorithm: "bubble", Input: []int{2, 1}, Output: []int{1, 2}, Comparisons: 2, Swaps: 1}
	second := &Run{Algorithm: "selection", Input: []int{3, 1, 2}, Output: []int{1, 2, 3}, Comparisons: 3, Swaps: 3}
	third := &Run{Algorithm: "insertion", Input: []int{1}, Output: []int{1}}
	require.NoError(t, s.Save(first))
	require.NoError(t, s.Save(second))
	require.NoError(t, s.Save(third))
	assert.Equal(t, 2, first.Length)
	assert.Less(t, first.Id, second.Id)

	runs, err := s.Recent(2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, third.Id, runs[0].Id)
	assert.Equal(t, second.Id, runs[1].Id)
	assert.Equal(t, []int{1, 2, 3}, runs[1].Output)
	assert.Equal(t, []int{3, 1, 2}, runs[1].Input)
	assert.False(t, runs[1].Created.IsZero())

	all, err := s.Recent(0)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(all), 3)
	assert.Equal(t, "bubble", all[2].Algorithm)
}
