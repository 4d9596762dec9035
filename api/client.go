package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

type ChatServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewChatServiceClient(cc grpc.ClientConnInterface) *ChatServiceClient {
	return &ChatServiceClient{cc: cc}
}

func (c *ChatServiceClient) ListChannels(ctx context.Context, in *ListChannelsRequest, opts ...grpc.CallOption) (*ListChannelsResponse, error) {
	return invoke[ListChannelsResponse](ctx, c.cc, fullMethod(ChatServiceName, "ListChannels"), in, opts)
}

func (c *ChatServiceClient) ListChannelMessages(ctx context.Context, in *ListChannelMessagesRequest, opts ...grpc.CallOption) (*ListChannelMessagesResponse, error) {
	return invoke[ListChannelMessagesResponse](ctx, c.cc, fullMethod(ChatServiceName, "ListChannelMessages"), in, opts)
}

func (c *ChatServiceClient) PostChannelMessage(ctx context.Context, in *PostChannelMessageRequest, opts ...grpc.CallOption) (*PostChannelMessageResponse, error) {
	return invoke[PostChannelMessageResponse](ctx, c.cc, fullMethod(ChatServiceName, "PostChannelMessage"), in, opts)
}

func (c *ChatServiceClient) ListDMPartners(ctx context.Context, in *ListDMPartnersRequest, opts ...grpc.CallOption) (*ListDMPartnersResponse, error) {
	return invoke[ListDMPartnersResponse](ctx, c.cc, fullMethod(ChatServiceName, "ListDMPartners"), in, opts)
}

func (c *ChatServiceClient) ListConversation(ctx context.Context, in *ListConversationRequest, opts ...grpc.CallOption) (*ListConversationResponse, error) {
	return invoke[ListConversationResponse](ctx, c.cc, fullMethod(ChatServiceName, "ListConversation"), in, opts)
}

func (c *ChatServiceClient) PostDirectMessage(ctx context.Context, in *PostDirectMessageRequest, opts ...grpc.CallOption) (*PostDirectMessageResponse, error) {
	return invoke[PostDirectMessageResponse](ctx, c.cc, fullMethod(ChatServiceName, "PostDirectMessage"), in, opts)
}

func (c *ChatServiceClient) ListUsers(ctx context.Context, in *ListUsersRequest, opts ...grpc.CallOption) (*ListUsersResponse, error) {
	return invoke[ListUsersResponse](ctx, c.cc, fullMethod(ChatServiceName, "ListUsers"), in, opts)
}

func (c *ChatServiceClient) DeleteUser(ctx context.Context, in *DeleteUserRequest, opts ...grpc.CallOption) (*DeleteUserResponse, error) {
	return invoke[DeleteUserResponse](ctx, c.cc, fullMethod(ChatServiceName, "DeleteUser"), in, opts)
}

type AuthServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAuthServiceClient(cc grpc.ClientConnInterface) *AuthServiceClient {
	return &AuthServiceClient{cc: cc}
}

func (c *AuthServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*TokenResponse, error) {
	return invoke[TokenResponse](ctx, c.cc, fullMethod(AuthServiceName, "Register"), in, opts)
}

func (c *AuthServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*TokenResponse, error) {
	return invoke[TokenResponse](ctx, c.cc, fullMethod(AuthServiceName, "Login"), in, opts)
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	if err := cc.Invoke(ctx, method, in, out, append([]grpc.CallOption{CallJSON()}, opts...)...); err != nil {
		return nil, err
	}
	return out, nil
}

// WithToken authenticates the outgoing calls of ctx.
func WithToken(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, AuthorizationHeader, BearerPrefix+token)
}

// AsGuest marks the outgoing calls of ctx as coming from a guest.
func AsGuest(ctx context.Context) context.Context {
	return metadata.AppendToOutgoingContext(ctx, GuestHeader, "true")
}
