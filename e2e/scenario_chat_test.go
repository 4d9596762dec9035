package e2e

import (
	"context"
	"fmt"
	"testing"

	"chappy/api"
	"chappy/errors"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const password = "E2e-Password-2024!"

type testChatSuite struct {
	BaseGrpcSuite
}

func TestChatSuite(t *testing.T) {
	suite.Run(t, &testChatSuite{})
}

// unique keeps scenarios independent when they run against a shared server.
func unique(name string) string {
	return fmt.Sprintf("%s%s", name, uuid.NewString()[:8])
}

func (s *testChatSuite) register(ctx context.Context, account *api.AuthServiceClient, username string) context.Context {
	resp, err := account.Register(ctx, &api.RegisterRequest{Username: username, Password: password})
	s.Require().NoError(err)
	s.Require().NotEmpty(resp.Token)
	return api.WithToken(ctx, resp.Token)
}

func (s *testChatSuite) TestDirectMessageConversation() {
	bob, alice := unique("Bob"), unique("alice")

	s.WithChappy("Register Bob and alice, exchange messages", func(ctx context.Context, chat *api.ChatServiceClient, account *api.AuthServiceClient) {
		bobCtx := s.register(ctx, account, bob)
		aliceCtx := s.register(ctx, account, alice)

		_, err := chat.PostDirectMessage(bobCtx, &api.PostDirectMessageRequest{Receiver: alice, Content: "hi"})
		s.Require().NoError(err)
		_, err = chat.PostDirectMessage(aliceCtx, &api.PostDirectMessageRequest{Receiver: bob, Content: "hey"})
		s.Require().NoError(err)
		_, err = chat.PostDirectMessage(bobCtx, &api.PostDirectMessageRequest{Receiver: alice, Content: "sup"})
		s.Require().NoError(err)

		fromBob, err := chat.ListConversation(bobCtx, &api.ListConversationRequest{UserA: bob, UserB: alice})
		s.Require().NoError(err)
		fromAlice, err := chat.ListConversation(aliceCtx, &api.ListConversationRequest{UserA: alice, UserB: bob})
		s.Require().NoError(err)

		s.Equal([]string{"hi", "hey", "sup"}, lo.Map(fromBob.Messages, func(m api.DirectMessage, _ int) string { return m.Content }))
		s.Equal(fromBob.Messages, fromAlice.Messages)
	})

	s.WithChappy("Login again and list partners", func(ctx context.Context, chat *api.ChatServiceClient, account *api.AuthServiceClient) {
		resp, err := account.Login(ctx, &api.LoginRequest{Username: bob, Password: password})
		s.Require().NoError(err)

		partners, err := chat.ListDMPartners(api.WithToken(ctx, resp.Token), &api.ListDMPartnersRequest{})
		s.Require().NoError(err)
		s.Equal([]string{alice}, lo.Map(partners.Partners, func(p api.Partner, _ int) string { return p.Username }))
	})
}

func (s *testChatSuite) TestGuestCannotReachPrivateResources() {
	s.WithChappy("Guest browses channels", func(ctx context.Context, chat *api.ChatServiceClient, _ *api.AuthServiceClient) {
		guest := api.AsGuest(ctx)

		channels, err := chat.ListChannels(guest, &api.ListChannelsRequest{})
		s.Require().NoError(err)
		for _, channel := range channels.Channels {
			s.False(channel.IsPrivate, channel.Name)
		}

		_, err = chat.PostChannelMessage(guest, &api.PostChannelMessageRequest{Channel: "staff", Content: "let me in"})
		s.Equal(codes.PermissionDenied, status.Code(err))

		_, err = chat.ListConversation(guest, &api.ListConversationRequest{UserA: "Bob", UserB: "alice"})
		s.ErrorIs(errors.FromGRPCError(err), errors.ErrForbidden)

		posted, err := chat.PostChannelMessage(guest, &api.PostChannelMessageRequest{Channel: "general", Sender: "visitor", Content: "hello"})
		s.Require().NoError(err)
		s.Equal("visitor", posted.Message.Sender)
	})
}

func (s *testChatSuite) TestChannelHistoryIsChronological() {
	s.WithChappy("Post three messages and read them back", func(ctx context.Context, chat *api.ChatServiceClient, account *api.AuthServiceClient) {
		author := s.register(ctx, account, unique("carol"))
		before, err := chat.ListChannelMessages(ctx, &api.ListChannelMessagesRequest{Channel: "general"})
		s.Require().NoError(err)

		for _, content := range []string{"one", "two", "three"} {
			_, err := chat.PostChannelMessage(author, &api.PostChannelMessageRequest{Channel: "general", Content: content})
			s.Require().NoError(err)
		}

		after, err := chat.ListChannelMessages(ctx, &api.ListChannelMessagesRequest{Channel: "general"})
		s.Require().NoError(err)
		s.Require().Len(after.Messages, len(before.Messages)+3)
		for i := 1; i < len(after.Messages); i++ {
			s.False(after.Messages[i].CreatedAt.Before(after.Messages[i-1].CreatedAt))
		}
		tail := after.Messages[len(after.Messages)-3:]
		s.Equal([]string{"one", "two", "three"}, lo.Map(tail, func(m api.ChannelMessage, _ int) string { return m.Content }))
	})
}
