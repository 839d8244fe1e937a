package infra

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := InitRedis("redis://" + mr.Addr() + "/0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	assert.NoError(t, client.Ping(context.Background()).Err())

	_, err = InitRedis("not a url")
	assert.Error(t, err)
}

func TestInitPostgresql_RequiresDSN(t *testing.T) {
	_, err := InitPostgresql("", nil)
	assert.Error(t, err)
}
