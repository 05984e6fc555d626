package diffd

import (
	"context"
	"testing"
	"time"

	diffusionv1 "github.com/recmem-lab/diffusion-core/gen/go/diffusion/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func newTestGRPCServer() (*DiffusionGRPCServer, *RunStore) {
	store := NewRunStore()
	exec := NewRunExecutor(store)
	return NewDiffusionGRPCServer(store, exec), store
}

func TestGRPCServerCreateStartGetLifecycle(t *testing.T) {
	srv, _ := newTestGRPCServer()
	ctx := context.Background()

	createResp, err := srv.CreateRun(ctx, &diffusionv1.CreateRunRequest{Input: validInput()})
	if err != nil {
		t.Fatalf("CreateRun error: %v", err)
	}
	if createResp.Run.Id == "" {
		t.Fatalf("expected run id")
	}

	// Summary is not available before the run completes.
	getResp, err := srv.GetRun(ctx, &diffusionv1.GetRunRequest{RunId: createResp.Run.Id})
	if err != nil {
		t.Fatalf("GetRun error: %v", err)
	}
	if getResp.Summary != nil {
		t.Fatalf("did not expect summary before start")
	}

	if _, err := srv.StartRun(ctx, &diffusionv1.StartRunRequest{RunId: createResp.Run.Id}); err != nil {
		t.Fatalf("StartRun error: %v", err)
	}

	// Wait for the run to complete.
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		getResp, err = srv.GetRun(ctx, &diffusionv1.GetRunRequest{RunId: createResp.Run.Id})
		if err != nil {
			t.Fatalf("GetRun error: %v", err)
		}
		if getResp.Run.Status == diffusionv1.RunStatus_RUN_STATUS_COMPLETED {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	if getResp.Run.Status != diffusionv1.RunStatus_RUN_STATUS_COMPLETED {
		t.Fatalf("run did not complete, status %v (error: %s)", getResp.Run.Status, getResp.Run.Error)
	}
	if getResp.Summary == nil {
		t.Fatalf("expected summary on completed run")
	}
	if getResp.Summary.Trials != 200 {
		t.Fatalf("expected 200 trials, got %d", getResp.Summary.Trials)
	}
	if getResp.Input == nil {
		t.Fatalf("expected input echoed back")
	}

	// A completed run cannot be restarted.
	_, err = srv.StartRun(ctx, &diffusionv1.StartRunRequest{RunId: createResp.Run.Id})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition, got %v", err)
	}
}

func TestGRPCServerCreateRunValidation(t *testing.T) {
	srv, _ := newTestGRPCServer()
	ctx := context.Background()

	tests := []struct {
		name string
		req  *diffusionv1.CreateRunRequest
	}{
		{"nil input", &diffusionv1.CreateRunRequest{}},
		{"nil params", &diffusionv1.CreateRunRequest{Input: &diffusionv1.RunInput{}}},
		{"bad boundary", &diffusionv1.CreateRunRequest{Input: &diffusionv1.RunInput{
			Params: &diffusionv1.DiffusionParams{N: 10, A: -1, Z: 0.5, S: 1},
		}}},
		{"bad start point", &diffusionv1.CreateRunRequest{Input: &diffusionv1.RunInput{
			Params: &diffusionv1.DiffusionParams{N: 10, A: 1, Z: 1.5, S: 1},
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := srv.CreateRun(ctx, tt.req)
			if status.Code(err) != codes.InvalidArgument {
				t.Fatalf("expected InvalidArgument, got %v", err)
			}
		})
	}
}

func TestGRPCServerCreateRunDuplicate(t *testing.T) {
	srv, _ := newTestGRPCServer()
	ctx := context.Background()

	if _, err := srv.CreateRun(ctx, &diffusionv1.CreateRunRequest{RunId: "run-1", Input: validInput()}); err != nil {
		t.Fatalf("CreateRun error: %v", err)
	}
	_, err := srv.CreateRun(ctx, &diffusionv1.CreateRunRequest{RunId: "run-1", Input: validInput()})
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("expected AlreadyExists, got %v", err)
	}
}

func TestGRPCServerStartRunNotFound(t *testing.T) {
	srv, _ := newTestGRPCServer()
	_, err := srv.StartRun(context.Background(), &diffusionv1.StartRunRequest{RunId: "missing"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestGRPCServerStopRun(t *testing.T) {
	srv, _ := newTestGRPCServer()
	ctx := context.Background()

	createResp, err := srv.CreateRun(ctx, &diffusionv1.CreateRunRequest{Input: validInput()})
	if err != nil {
		t.Fatalf("CreateRun error: %v", err)
	}

	stopResp, err := srv.StopRun(ctx, &diffusionv1.StopRunRequest{RunId: createResp.Run.Id})
	if err != nil {
		t.Fatalf("StopRun error: %v", err)
	}
	if stopResp.Run.Status != diffusionv1.RunStatus_RUN_STATUS_CANCELLED {
		t.Fatalf("expected cancelled, got %v", stopResp.Run.Status)
	}
}

func TestGRPCServerGetRunNotFound(t *testing.T) {
	srv, _ := newTestGRPCServer()
	_, err := srv.GetRun(context.Background(), &diffusionv1.GetRunRequest{RunId: "missing"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestGRPCServerSetSeed(t *testing.T) {
	srv, _ := newTestGRPCServer()

	if _, err := srv.SetSeed(context.Background(), &diffusionv1.SetSeedRequest{Seed: 1234}); err != nil {
		t.Fatalf("SetSeed error: %v", err)
	}
	if srv.Executor.DefaultSeed() != 1234 {
		t.Fatalf("expected default seed 1234, got %d", srv.Executor.DefaultSeed())
	}
}
