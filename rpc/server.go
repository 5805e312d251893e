package rpc

import (
	"context"
	"log"
	"net"

	"google.golang.org/grpc"

	"github.com/zissis-pap/zipper"
)

// Server hosts PatchService: it runs the encoder/decoder on behalf of a
// caller that would rather ship reference/target/patch blobs over the
// wire than carry the block-indexing pass itself (a thin update agent
// on constrained hardware, say).
type Server struct {
	address string

	rpcServer *grpc.Server
}

// NewServer builds a Server that will listen on address once Serve is
// called.
func NewServer(address string) *Server {
	return &Server{address: address}
}

func (s *Server) Encode(_ context.Context, req *EncodeRequest) (*EncodeReply, error) {
	patch, err := zipper.Encode(req.GetReference(), req.GetTarget(), int(req.GetBlockSize()))
	if err != nil {
		return nil, err
	}
	return &EncodeReply{Patch: patch}, nil
}

func (s *Server) Decode(_ context.Context, req *DecodeRequest) (*DecodeReply, error) {
	target, err := zipper.Decode(req.GetReference(), req.GetPatch())
	if err != nil {
		return nil, err
	}
	return &DecodeReply{Target: target}, nil
}

// Serve starts listening and blocks until the server stops.
func (s *Server) Serve() error {
	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		log.Printf("rpc: cannot listen on %v: %v\n", s.address, err)
		return err
	}
	log.Printf("rpc: listening on %v\n", s.address)

	s.rpcServer = grpc.NewServer()
	RegisterPatchServiceServer(s.rpcServer, s)
	if err := s.rpcServer.Serve(listener); err != nil {
		log.Printf("rpc: serve error: %v\n", err)
		return err
	}

	log.Println("rpc: server done")
	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop() {
	if s.rpcServer != nil {
		s.rpcServer.GracefulStop()
	}
}
