package database_test

import (
	"context"
	"testing"

	"github.com/Baaaki/trainergo/internal/database"
	"github.com/Baaaki/trainergo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectRedis_Success(t *testing.T) {
	tr := testutil.SetupTestRedis(t)
	defer tr.Teardown(t)

	client, err := database.ConnectRedis(context.Background(), tr.URL)
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	got, err := tr.Server.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestConnectRedis_InvalidURL(t *testing.T) {
	_, err := database.ConnectRedis(context.Background(), "not-a-url")
	assert.Error(t, err)
}

func TestConnectRedis_Unreachable(t *testing.T) {
	tr := testutil.SetupTestRedis(t)
	url := tr.URL
	tr.Teardown(t)

	_, err := database.ConnectRedis(context.Background(), url)
	assert.Error(t, err)
}
