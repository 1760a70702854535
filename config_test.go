package duckext

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marcboeker/duckext/mapping"
)

func TestConfig(t *testing.T) {
	defer mapping.VerifyAllocationCounters()

	t.Run("flags", func(t *testing.T) {
		config, err := NewConfig()
		require.NoError(t, err)
		defer config.Close()

		require.NoError(t, config.SetFlag("threads", "4"))
		require.NoError(t, config.SetFlags(map[string]any{"access_mode": "read_write"}))

		db, err := Open("", config)
		require.NoError(t, err)
		defer db.Close()
		conn, err := db.Connect()
		require.NoError(t, err)
		defer conn.Close()

		threads, err := conn.QueryInt64(`SELECT current_setting('threads')`)
		require.NoError(t, err)
		require.Equal(t, int64(4), threads)
	})

	t.Run("options", func(t *testing.T) {
		config, err := NewConfig()
		require.NoError(t, err)
		defer config.Close()

		require.NoError(t, config.SetFlags(Options{Threads: 2, MaxMemory: "1GB"}))

		db, err := Open(":memory:", config)
		require.NoError(t, err)
		defer db.Close()
		conn, err := db.Connect()
		require.NoError(t, err)
		defer conn.Close()

		threads, err := conn.QueryInt64(`SELECT current_setting('threads')`)
		require.NoError(t, err)
		require.Equal(t, int64(2), threads)
	})
}

func TestConfigFlags(t *testing.T) {
	defer mapping.VerifyAllocationCounters()

	flags, err := ConfigFlags()
	require.NoError(t, err)
	require.NotEmpty(t, flags)

	names := map[string]string{}
	for _, f := range flags {
		names[f.Name] = f.Description
	}
	require.Contains(t, names, "threads")
	require.Contains(t, names, "access_mode")
	require.NotEmpty(t, names["threads"])
}

func TestErrConfig(t *testing.T) {
	defer mapping.VerifyAllocationCounters()

	config, err := NewConfig()
	require.NoError(t, err)
	defer config.Close()

	t.Run(errSetConfig.Error(), func(t *testing.T) {
		err := config.SetFlag("threads", "NaN")
		testError(t, err, errSetConfig.Error(), "threads=NaN")
	})

	t.Run("local config option", func(t *testing.T) {
		err := config.SetFlags(map[string]any{"schema": "main"})
		testError(t, err, errSetConfig.Error(), "schema=main")
	})

	t.Run("decode", func(t *testing.T) {
		err := config.SetFlags(42)
		testError(t, err, errSetConfig.Error())
	})
}
