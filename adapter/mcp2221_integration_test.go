//go:build integration

package adapter

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mklimuk/aw9523"
)

func TestMCP2221_Hardware(t *testing.T) {
	idx, ok := os.LookupEnv("AW9523_MCP2221")
	if !ok {
		t.Skip("AW9523_MCP2221 not set")
	}
	id, err := strconv.Atoi(idx)
	require.NoError(t, err)
	bridge := NewMCP2221(id)
	require.NoError(t, bridge.Init())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	dev := aw9523.New(aw9523.NewI2C(bridge))
	require.NoError(t, dev.Verify(ctx))
	require.NoError(t, dev.Init(ctx))
	status, err := bridge.Status(ctx)
	require.NoError(t, err)
	t.Logf("bridge status after init: %+v", status)
}
