package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func TestClientOptions(t *testing.T) {
	opts := clientOptions("mongodb://localhost:27017")
	require.NotNil(t, opts.ReadPreference)
	assert.Equal(t, readpref.SecondaryPreferredMode, opts.ReadPreference.Mode())
	assert.Equal(t, "teamsync", *opts.AppName)
}

func TestPing(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("ping", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		require.NoError(mt, ping(context.Background(), mt.Client))

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "ping", started.CommandName)
		assert.Equal(mt, "admin", started.DatabaseName)
	})
}
