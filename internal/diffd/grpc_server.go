package diffd

import (
	"context"
	"errors"

	diffusionv1 "github.com/recmem-lab/diffusion-core/gen/go/diffusion/v1"
	"github.com/recmem-lab/diffusion-core/pkg/logger"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DiffusionGRPCServer implements the gRPC DiffusionServiceServer using a RunStore backend.
type DiffusionGRPCServer struct {
	diffusionv1.UnimplementedDiffusionServiceServer
	store    *RunStore
	Executor *RunExecutor
}

// NewDiffusionGRPCServer creates a new DiffusionGRPCServer with the provided RunStore and RunExecutor.
func NewDiffusionGRPCServer(store *RunStore, executor *RunExecutor) *DiffusionGRPCServer {
	return &DiffusionGRPCServer{
		store:    store,
		Executor: executor,
	}
}

func (s *DiffusionGRPCServer) CreateRun(ctx context.Context, req *diffusionv1.CreateRunRequest) (*diffusionv1.CreateRunResponse, error) {
	if req == nil || req.Input == nil {
		return nil, status.Error(codes.InvalidArgument, "input is required")
	}
	if _, err := paramsFromProto(req.Input); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	rec, err := s.store.Create(req.RunId, req.Input)
	if err != nil {
		return nil, status.Error(codes.AlreadyExists, err.Error())
	}

	logger.Info("run created", "run_id", rec.Run.Id)
	return &diffusionv1.CreateRunResponse{Run: rec.Run}, nil
}

func (s *DiffusionGRPCServer) StartRun(ctx context.Context, req *diffusionv1.StartRunRequest) (*diffusionv1.StartRunResponse, error) {
	if req == nil || req.RunId == "" {
		return nil, status.Error(codes.InvalidArgument, "run_id is required")
	}

	updated, err := s.Executor.Start(req.RunId)
	if err != nil {
		if errors.Is(err, ErrRunNotFound) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		if errors.Is(err, ErrRunTerminal) {
			return nil, status.Error(codes.FailedPrecondition, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}

	logger.Info("run started (executor)", "run_id", req.RunId)
	return &diffusionv1.StartRunResponse{Run: updated.Run}, nil
}

func (s *DiffusionGRPCServer) StopRun(ctx context.Context, req *diffusionv1.StopRunRequest) (*diffusionv1.StopRunResponse, error) {
	if req == nil || req.RunId == "" {
		return nil, status.Error(codes.InvalidArgument, "run_id is required")
	}

	updated, err := s.Executor.Stop(req.RunId)
	if err != nil {
		if errors.Is(err, ErrRunNotFound) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		if errors.Is(err, ErrRunIDMissing) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	logger.Info("run cancelled", "run_id", req.RunId)
	return &diffusionv1.StopRunResponse{Run: updated.Run}, nil
}

func (s *DiffusionGRPCServer) GetRun(ctx context.Context, req *diffusionv1.GetRunRequest) (*diffusionv1.GetRunResponse, error) {
	if req == nil || req.RunId == "" {
		return nil, status.Error(codes.InvalidArgument, "run_id is required")
	}
	rec, ok := s.store.Get(req.RunId)
	if !ok {
		return nil, status.Error(codes.NotFound, "run not found")
	}
	return &diffusionv1.GetRunResponse{
		Run:     rec.Run,
		Input:   rec.Input,
		Summary: rec.Summary,
	}, nil
}

func (s *DiffusionGRPCServer) SetSeed(ctx context.Context, req *diffusionv1.SetSeedRequest) (*diffusionv1.SetSeedResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	s.Executor.SetSeed(req.Seed)
	logger.Info("default seed updated", "seed", req.Seed)
	return &diffusionv1.SetSeedResponse{}, nil
}
