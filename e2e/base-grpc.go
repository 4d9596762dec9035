package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"testing"
	"time"

	"chappy/api"
	"chappy/auth"
	"chappy/domain"
	"chappy/infrastructure/grpc/server"
	"chappy/moderation"
	"chappy/repositories"
	"chappy/services"
	"chappy/storage"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type BaseGrpcSuite struct {
	suite.Suite
	Config Config
	dial   []grpc.DialOption
	target string
}

// SetupSuite loads the environment configuration and, without a target
// address, starts an in-process server seeded with a public and a private channel.
func (s *BaseGrpcSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)

	if s.Config.ChappyAddr != "" {
		s.target = s.Config.ChappyAddr
		return
	}
	listener := s.startInProcess()
	s.target = "passthrough:///bufnet"
	s.dial = []grpc.DialOption{grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return listener.DialContext(ctx)
	})}
}

func (s *BaseGrpcSuite) startInProcess() *bufconn.Listener {
	log := logs.GetLoggerFromLevel(slog.LevelInfo)
	db, err := badger.Open(badger.DefaultOptions(s.T().TempDir()).WithLoggingLevel(badger.ERROR))
	s.Require().NoError(err)
	store := storage.NewBadgerStore(db, log)

	channelRepository := repositories.NewChannelRepository(store, log)
	userRepository := repositories.NewUserRepository(store, log)
	s.Require().NoError(services.SeedChannels(log, channelRepository, []domain.Channel{
		{Name: "general"},
		{Name: "staff", IsPrivate: true},
	}))
	moderator, err := moderation.NewModerator([]string{"badger"}, '*')
	s.Require().NoError(err)

	tokenManager := auth.NewTokenManager(s.Config.JWTSecret, time.Hour)
	chatService := services.NewChatService(log, channelRepository,
		repositories.NewMessageRepository(store, log),
		repositories.NewDirectMessageRepository(store, log),
		userRepository,
		moderator,
		services.ChatServiceConfig{MaxContentLength: 500},
	)
	grpcServer := server.NewGRPCServer(log, chatService, services.NewAuthService(log, userRepository, tokenManager), tokenManager)

	listener := bufconn.Listen(1024 * 1024)
	go func() { _ = grpcServer.Serve(listener) }()
	s.T().Cleanup(func() {
		grpcServer.Stop()
		_ = db.Close()
	})
	return listener
}

// GrpcConn initializes a gRPC connection with logging, colors, and JSON debugging
func (s *BaseGrpcSuite) GrpcConn(t *testing.T, name string) *grpc.ClientConn {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)

	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
			start := time.Now()
			err := invoker(ctx, method, req, reply, cc, opts...)

			logBuilder := strings.Builder{}
			fmt.Fprintf(&logBuilder, "GRPC %s [%s] in %v", method, status.Code(err), time.Since(start))

			if s.Config.DebugJSON {
				fmt.Fprintln(&logBuilder, "\nREQUEST:")
				fmt.Fprintln(&logBuilder, indent(req))
				if err != nil {
					fmt.Fprintln(&logBuilder, "ERROR:", err)
				} else {
					fmt.Fprintln(&logBuilder, "RESPONSE:")
					fmt.Fprintln(&logBuilder, indent(reply))
				}
			}
			t.Log(logBuilder.String())
			return err
		}),
	}, s.dial...)

	conn, err := grpc.NewClient(s.target, opts...)
	s.Require().NoError(err, "Failed to connect to gRPC server at "+s.target)
	return conn
}

// WithChappy provides chat and auth clients within a contextual test step
func (s *BaseGrpcSuite) WithChappy(name string, fn func(ctx context.Context, chat *api.ChatServiceClient, account *api.AuthServiceClient)) {
	conn := s.GrpcConn(s.T(), name)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fn(ctx, api.NewChatServiceClient(conn), api.NewAuthServiceClient(conn))
}

func indent(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(b)
}
