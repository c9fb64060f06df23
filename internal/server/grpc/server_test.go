package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/duetdiary/internal/common"
	"github.com/dmitrijs2005/duetdiary/internal/logging"
	pb "github.com/dmitrijs2005/duetdiary/internal/proto"
	"github.com/dmitrijs2005/duetdiary/internal/server/auth"
	"github.com/dmitrijs2005/duetdiary/internal/server/gate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:0", nopLogger{}, &fakeReveals{}, &fakeCheckpoints{}, "secret")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", nopLogger{}, &fakeReveals{}, &fakeCheckpoints{}, "secret")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := srv.Run(ctx); err == nil {
		t.Fatal("expected error for invalid listen address, got nil")
	}
}

// startBufconn serves srv over an in-memory listener and returns a client.
func startBufconn(t *testing.T, srv *GRPCServer) pb.DisclosureServiceClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	cc, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = cc.Close()
		cancel()
		<-done
	})
	return pb.NewDisclosureServiceClient(cc)
}

func TestServe_EndToEnd(t *testing.T) {
	rs := &fakeReveals{members: map[string][]string{coupleID: {"a", "b"}}, state: gate.ReadyToOpen}
	srv := NewGRPCServer("", nopLogger{}, rs, &fakeCheckpoints{}, "secret")
	client := startBufconn(t, srv)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ping, err := client.Ping(ctx, &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", ping.GetStatus())

	_, err = client.IsReadyToReveal(ctx, &pb.CoupleRequest{CoupleId: coupleID})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	token, err := auth.GenerateToken("b", []byte("secret"), time.Minute)
	require.NoError(t, err)
	authed := metadata.AppendToOutgoingContext(ctx, common.AccessTokenHeaderName, token)

	resp, err := client.IsReadyToReveal(authed, &pb.CoupleRequest{CoupleId: coupleID})
	require.NoError(t, err)
	assert.True(t, resp.GetReady())
	assert.Equal(t, "ready_to_open", resp.GetState())

	_, err = client.GetStats(authed, &pb.GetStatsRequest{CoupleId: otherID})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.GetStats(authed, &pb.GetStatsRequest{CoupleId: "abc"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
