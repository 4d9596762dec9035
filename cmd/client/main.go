package main

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"chappy/api"
	"chappy/errors"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the client-side environment variables.
type Config struct {
	ServerAddress string        `env:"CHAPPY_SERVER_ADDR,default=localhost:8080"`
	Token         string        `env:"CHAPPY_TOKEN"`
	Guest         bool          `env:"CHAPPY_GUEST,default=false"`
	Timeout       time.Duration `env:"CHAPPY_TIMEOUT,default=10s"`
	LogLevel      string        `env:"LOG_LEVEL,default=WARN"`
}

const usage = `usage: client <command> [args]

  register <username> <password>   print a session token
  login <username> <password>      print a session token
  channels                         list visible channels
  read <channel>                   print a channel history
  post <channel> <content...>      post in a channel
  dm <receiver> <content...>       send a direct message
  conversation <userA> <userB>     print a direct conversation
  partners [username]              list direct message partners
  users                            list users
  delete-user <username>           delete a profile

CHAPPY_TOKEN authenticates the calls, CHAPPY_GUEST=true marks them as guest.`

func main() {
	code, err := run(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

func run(args []string) (int, error) {
	flags := flag.NewFlagSet("client", flag.ContinueOnError)
	flags.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	if err := flags.Parse(args); err != nil {
		return exitConfig, err
	}
	if flags.NArg() == 0 {
		flags.Usage()
		return exitConfig, nil
	}

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, config.Timeout)
	defer cancel()

	conn, err := grpc.NewClient(config.ServerAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return exitRuntime, fmt.Errorf("could not connect to server at %s: %w", config.ServerAddress, err)
	}
	defer func() {
		log.Debug("Closing connection...")
		_ = conn.Close()
	}()

	switch {
	case config.Token != "":
		ctx = api.WithToken(ctx, config.Token)
	case config.Guest:
		ctx = api.AsGuest(ctx)
	}

	c := commands{chat: api.NewChatServiceClient(conn), account: api.NewAuthServiceClient(conn)}
	if err := c.dispatch(ctx, flags.Arg(0), flags.Args()[1:]); err != nil {
		return exitRuntime, describe(err)
	}
	return exitOK, nil
}

type commands struct {
	chat    *api.ChatServiceClient
	account *api.AuthServiceClient
}

func (c commands) dispatch(ctx context.Context, name string, args []string) error {
	switch name {
	case "register", "login":
		if len(args) != 2 {
			return fmt.Errorf("%s needs a username and a password", name)
		}
		var resp *api.TokenResponse
		var err error
		if name == "register" {
			resp, err = c.account.Register(ctx, &api.RegisterRequest{Username: args[0], Password: args[1]})
		} else {
			resp, err = c.account.Login(ctx, &api.LoginRequest{Username: args[0], Password: args[1]})
		}
		if err != nil {
			return err
		}
		fmt.Println(resp.Token)
	case "channels":
		resp, err := c.chat.ListChannels(ctx, &api.ListChannelsRequest{})
		if err != nil {
			return err
		}
		for _, channel := range resp.Channels {
			if channel.IsPrivate {
				fmt.Println(channel.Name, color.Yellow.Render("(private)"))
				continue
			}
			fmt.Println(channel.Name)
		}
	case "read":
		if len(args) != 1 {
			return fmt.Errorf("read needs a channel")
		}
		resp, err := c.chat.ListChannelMessages(ctx, &api.ListChannelMessagesRequest{Channel: args[0]})
		if err != nil {
			return err
		}
		for _, m := range resp.Messages {
			printLine(m.CreatedAt, m.Sender, m.Content)
		}
	case "post":
		if len(args) < 2 {
			return fmt.Errorf("post needs a channel and some content")
		}
		resp, err := c.chat.PostChannelMessage(ctx, &api.PostChannelMessageRequest{Channel: args[0], Content: strings.Join(args[1:], " ")})
		if err != nil {
			return err
		}
		printLine(resp.Message.CreatedAt, resp.Message.Sender, resp.Message.Content)
	case "dm":
		if len(args) < 2 {
			return fmt.Errorf("dm needs a receiver and some content")
		}
		resp, err := c.chat.PostDirectMessage(ctx, &api.PostDirectMessageRequest{Receiver: args[0], Content: strings.Join(args[1:], " ")})
		if err != nil {
			return err
		}
		printLine(resp.Message.CreatedAt, resp.Message.Sender, resp.Message.Content)
	case "conversation":
		if len(args) != 2 {
			return fmt.Errorf("conversation needs two usernames")
		}
		resp, err := c.chat.ListConversation(ctx, &api.ListConversationRequest{UserA: args[0], UserB: args[1]})
		if err != nil {
			return err
		}
		for _, m := range resp.Messages {
			printLine(m.CreatedAt, m.Sender, m.Content)
		}
	case "partners":
		req := &api.ListDMPartnersRequest{}
		if len(args) > 0 {
			req.Username = args[0]
		}
		resp, err := c.chat.ListDMPartners(ctx, req)
		if err != nil {
			return err
		}
		for _, p := range resp.Partners {
			fmt.Printf("%-20s last message %s\n", p.Username, p.LastMessageAt.Local().Format(time.DateTime))
		}
	case "users":
		resp, err := c.chat.ListUsers(ctx, &api.ListUsersRequest{})
		if err != nil {
			return err
		}
		for _, u := range resp.Users {
			fmt.Println(u.Username)
		}
	case "delete-user":
		if len(args) != 1 {
			return fmt.Errorf("delete-user needs a username")
		}
		if _, err := c.chat.DeleteUser(ctx, &api.DeleteUserRequest{Username: args[0]}); err != nil {
			return err
		}
		fmt.Println("deleted", args[0])
	default:
		return fmt.Errorf("unknown command %q\n%s", name, usage)
	}
	return nil
}

func printLine(at time.Time, sender, content string) {
	fmt.Printf("[%s] %s: %s\n", at.Local().Format(time.TimeOnly), color.Cyan.Render(sender), content)
}

// describe turns a status carrying an application error back into it,
// so the reason or the field is printed.
func describe(err error) error {
	var appErr *errors.AppError
	if stderrors.As(errors.FromGRPCError(err), &appErr) {
		switch {
		case appErr.Reason != "":
			return fmt.Errorf("%s (%s)", appErr.Kind, appErr.Reason)
		case appErr.Field != "":
			return fmt.Errorf("%s (field %s)", appErr.Kind, appErr.Field)
		default:
			return fmt.Errorf("%s: %s", appErr.Kind, appErr.Message)
		}
	}
	return err
}
