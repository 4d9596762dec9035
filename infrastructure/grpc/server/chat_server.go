package server

import (
	"context"
	"log/slog"

	"chappy/api"
	"chappy/auth"
	"chappy/domain"
	"chappy/errors"
	"chappy/projection"
	"chappy/services"

	"github.com/samber/lo"
)

type ChatServer struct {
	log         *slog.Logger
	chatService services.IChatService
}

func NewChatServer(log *slog.Logger, chatService services.IChatService) *ChatServer {
	return &ChatServer{log: log, chatService: chatService}
}

func (s *ChatServer) ListChannels(ctx context.Context, _ *api.ListChannelsRequest) (*api.ListChannelsResponse, error) {
	channels, err := s.chatService.ListChannels(ctx, auth.IdentityFromContext(ctx))
	if err != nil {
		return nil, s.fail(ctx, "ListChannels", err)
	}
	return &api.ListChannelsResponse{Channels: lo.Map(channels, func(c domain.Channel, _ int) api.Channel {
		return api.Channel{Name: c.Name, IsPrivate: c.IsPrivate}
	})}, nil
}

func (s *ChatServer) ListChannelMessages(ctx context.Context, req *api.ListChannelMessagesRequest) (*api.ListChannelMessagesResponse, error) {
	messages, err := s.chatService.ListChannelMessages(ctx, auth.IdentityFromContext(ctx), req.Channel)
	if err != nil {
		return nil, s.fail(ctx, "ListChannelMessages", err)
	}
	return &api.ListChannelMessagesResponse{Messages: lo.Map(messages, func(m domain.ChannelMessage, _ int) api.ChannelMessage {
		return toChannelMessage(m)
	})}, nil
}

// PostChannelMessage posts under the caller's username. Guests choose
// their display name, "guest" when they give none.
func (s *ChatServer) PostChannelMessage(ctx context.Context, req *api.PostChannelMessageRequest) (*api.PostChannelMessageResponse, error) {
	identity := auth.IdentityFromContext(ctx)
	sender := req.Sender
	if identity.IsAuthenticated() {
		sender = identity.Username
	}
	if sender == "" {
		sender = "guest"
	}

	message, err := s.chatService.PostChannelMessage(ctx, identity, domain.PostChannelMessageCommand{
		Channel: req.Channel,
		Sender:  sender,
		Content: req.Content,
	})
	if err != nil {
		return nil, s.fail(ctx, "PostChannelMessage", err)
	}
	return &api.PostChannelMessageResponse{Message: toChannelMessage(message)}, nil
}

func (s *ChatServer) ListDMPartners(ctx context.Context, req *api.ListDMPartnersRequest) (*api.ListDMPartnersResponse, error) {
	identity := auth.IdentityFromContext(ctx)
	username := lo.Ternary(req.Username != "", req.Username, identity.Username)

	partners, err := s.chatService.ListRecentPartners(ctx, identity, username)
	if err != nil {
		return nil, s.fail(ctx, "ListDMPartners", err)
	}
	return &api.ListDMPartnersResponse{Partners: lo.Map(partners, func(p projection.Partner, _ int) api.Partner {
		return api.Partner{Username: p.Username, LastMessageAt: p.LastMessageAt}
	})}, nil
}

func (s *ChatServer) ListConversation(ctx context.Context, req *api.ListConversationRequest) (*api.ListConversationResponse, error) {
	messages, err := s.chatService.ListConversation(ctx, auth.IdentityFromContext(ctx), domain.ConversationQuery{
		UserA: req.UserA,
		UserB: req.UserB,
	})
	if err != nil {
		return nil, s.fail(ctx, "ListConversation", err)
	}
	return &api.ListConversationResponse{Messages: lo.Map(messages, func(m domain.DirectMessage, _ int) api.DirectMessage {
		return toDirectMessage(m)
	})}, nil
}

func (s *ChatServer) PostDirectMessage(ctx context.Context, req *api.PostDirectMessageRequest) (*api.PostDirectMessageResponse, error) {
	identity := auth.IdentityFromContext(ctx)
	message, err := s.chatService.PostDirectMessage(ctx, identity, domain.PostDirectMessageCommand{
		Sender:   identity.Username,
		Receiver: req.Receiver,
		Content:  req.Content,
	})
	if err != nil {
		return nil, s.fail(ctx, "PostDirectMessage", err)
	}
	return &api.PostDirectMessageResponse{Message: toDirectMessage(message)}, nil
}

func (s *ChatServer) ListUsers(ctx context.Context, _ *api.ListUsersRequest) (*api.ListUsersResponse, error) {
	users, err := s.chatService.ListUsers(ctx)
	if err != nil {
		return nil, s.fail(ctx, "ListUsers", err)
	}
	return &api.ListUsersResponse{Users: lo.Map(users, func(u domain.User, _ int) api.User {
		return api.User{Username: u.Username}
	})}, nil
}

func (s *ChatServer) DeleteUser(ctx context.Context, req *api.DeleteUserRequest) (*api.DeleteUserResponse, error) {
	if err := s.chatService.DeleteUser(ctx, auth.IdentityFromContext(ctx), req.Username); err != nil {
		return nil, s.fail(ctx, "DeleteUser", err)
	}
	return &api.DeleteUserResponse{}, nil
}

// fail logs what the client cannot act upon and maps err to a gRPC status.
// Denials and bad input are the caller's concern and stay at debug level.
func (s *ChatServer) fail(ctx context.Context, method string, err error) error {
	switch errors.KindOf(err) {
	case errors.KindStorageUnavailable, errors.KindInternal:
		s.log.ErrorContext(ctx, "request failed", "method", method, "error", err)
	default:
		s.log.DebugContext(ctx, "request rejected", "method", method, "error", err)
	}
	return errors.MapToGRPCError(err)
}

func toChannelMessage(m domain.ChannelMessage) api.ChannelMessage {
	return api.ChannelMessage{
		ID:        m.ID.String(),
		Channel:   m.Channel,
		Sender:    m.Sender,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

func toDirectMessage(m domain.DirectMessage) api.DirectMessage {
	return api.DirectMessage{
		ID:        m.ID.String(),
		Sender:    m.Sender,
		Receiver:  m.Receiver,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}
