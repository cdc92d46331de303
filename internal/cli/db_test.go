package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDBInfo(t *testing.T) {
	env := newTestEnv(t, history()...)
	out, err := env.run(t, "--format", "json", "db", "info")
	require.NoError(t, err)
	info := decode[DBInfo](t, out)
	assert.Equal(t, env.dbPath, info.Path)
	assert.Equal(t, 2, info.Records)
	assert.Equal(t, "2024-01-02", info.LatestDate)
	assert.Positive(t, info.SchemaVersion)
}

func TestDBInfoEmpty(t *testing.T) {
	env := newTestEnv(t)
	out, err := env.run(t, "db", "info")
	require.NoError(t, err)
	assert.Contains(t, out, "records  0")
	assert.NotContains(t, out, "latest")
}

func TestDBDelete(t *testing.T) {
	env := newTestEnv(t, history()...)

	_, err := env.run(t, "db", "delete", "2024-01-01")
	assert.Equal(t, ExitCommandError, GetExitCode(err), "needs --yes")
	require.NotNil(t, env.stored(t, "2024-01-01"))

	out, err := env.run(t, "db", "delete", "2024-01-01", "--yes")
	require.NoError(t, err)
	assert.Equal(t, "Deleted 2024-01-01\n", out)
	assert.Nil(t, env.stored(t, "2024-01-01"))

	_, err = env.run(t, "db", "delete", "2024-01-01", "--yes")
	assert.Equal(t, ExitCommandError, GetExitCode(err), "already gone")

	_, err = env.run(t, "db", "delete", "yesterday", "--yes")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestDBClear(t *testing.T) {
	env := newTestEnv(t, history()...)
	_, err := env.run(t, "db", "clear")
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	out, err := env.run(t, "db", "clear", "--yes")
	require.NoError(t, err)
	assert.Equal(t, "Removed 2 record(s)\n", out)
	assert.Nil(t, env.stored(t, "2024-01-02"))
}
