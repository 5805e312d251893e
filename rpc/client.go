package rpc

import (
	"context"
	"log"

	"github.com/pkg/errors"
	"google.golang.org/grpc"
)

// Client is a thin wrapper over PatchServiceClient for callers that want
// a remote zipperd to do the encoding/decoding work.
type Client struct {
	address    string
	connection *grpc.ClientConn
	client     PatchServiceClient
}

// NewClient builds a Client targeting address. Call Dial before using it.
func NewClient(address string) *Client {
	return &Client{address: address}
}

// Dial opens the underlying gRPC connection.
func (c *Client) Dial() error {
	connection, err := grpc.Dial(c.address, grpc.WithInsecure())
	if err != nil {
		log.Printf("rpc: dial error: %v\n", err)
		return errors.Wrap(err, "rpc: dial")
	}
	c.connection = connection
	c.client = NewPatchServiceClient(connection)
	return nil
}

// Close tears down the underlying gRPC connection.
func (c *Client) Close() error {
	return c.connection.Close()
}

// Encode asks the remote server to produce a patch from reference to
// target at the given block size.
func (c *Client) Encode(reference, target []byte, blockSize int) ([]byte, error) {
	reply, err := c.client.Encode(context.Background(), &EncodeRequest{
		Reference: reference,
		Target:    target,
		BlockSize: uint32(blockSize),
	})
	if err != nil {
		return nil, err
	}
	return reply.GetPatch(), nil
}

// Decode asks the remote server to replay patch against reference.
func (c *Client) Decode(reference, patch []byte) ([]byte, error) {
	reply, err := c.client.Decode(context.Background(), &DecodeRequest{
		Reference: reference,
		Patch:     patch,
	})
	if err != nil {
		return nil, err
	}
	return reply.GetTarget(), nil
}
