package rpc

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zissis-pap/zipper"
)

func runClientServerCycle(t *testing.T, fn func(client *Client)) {
	address := "localhost:20321"
	server := NewServer(address)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = server.Serve()
	}()
	defer func() {
		server.Stop()
		wg.Wait()
	}()
	time.Sleep(50 * time.Millisecond) // give the listener a moment to bind

	client := NewClient(address)
	require.NoError(t, client.Dial())
	defer client.Close()

	fn(client)
}

func TestPatchService_EncodeThenDecodeRoundTrips(t *testing.T) {
	reference := make([]byte, 256)
	target := make([]byte, 256)
	for i := range target {
		target[i] = byte(i)
	}

	runClientServerCycle(t, func(client *Client) {
		patch, err := client.Encode(reference, target, 64)
		require.NoError(t, err)
		assert.NotEmpty(t, patch)

		rebuilt, err := client.Decode(reference, patch)
		require.NoError(t, err)
		assert.Equal(t, target, rebuilt)
	})
}

func TestPatchService_MatchesLocalEncodeDecode(t *testing.T) {
	reference := make([]byte, 128)
	target := make([]byte, 128)
	for i := range target {
		target[i] = byte(255 - i)
	}

	localPatch, err := zipper.Encode(reference, target, 64)
	require.NoError(t, err)

	runClientServerCycle(t, func(client *Client) {
		remotePatch, err := client.Encode(reference, target, 64)
		require.NoError(t, err)
		assert.Equal(t, localPatch, remotePatch)
	})
}

func TestPatchService_PropagatesDecodeErrors(t *testing.T) {
	runClientServerCycle(t, func(client *Client) {
		_, err := client.Decode(make([]byte, 8), []byte{8, 0x99, 0, 0, 0, 0})
		assert.Error(t, err)
	})
}
