package ddbclient

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_OnlineRequiresRegion(t *testing.T) {
	_, err := New(context.Background(), Options{Online: true})
	assert.ErrorIs(t, err, ErrRegionRequired)
}

func TestNew_LocalDefaults(t *testing.T) {
	client, err := New(context.Background(), Options{})
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestOptions_Endpoint(t *testing.T) {
	assert.Equal(t, "http://localhost:8000", Options{}.Endpoint())
	assert.Equal(t, "http://0.0.0.0:8123", Options{Host: "0.0.0.0", Port: 8123}.Endpoint())
}
