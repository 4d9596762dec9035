package api

import (
	"context"

	"google.golang.org/grpc"
)

const (
	ChatServiceName = "chappy.v1.ChatService"
	AuthServiceName = "chappy.v1.AuthService"
)

// Request metadata resolved into a caller identity by the server.
const (
	AuthorizationHeader = "authorization"
	GuestHeader         = "x-chappy-guest"
	BearerPrefix        = "Bearer "
)

type ChatServiceServer interface {
	ListChannels(context.Context, *ListChannelsRequest) (*ListChannelsResponse, error)
	ListChannelMessages(context.Context, *ListChannelMessagesRequest) (*ListChannelMessagesResponse, error)
	PostChannelMessage(context.Context, *PostChannelMessageRequest) (*PostChannelMessageResponse, error)
	ListDMPartners(context.Context, *ListDMPartnersRequest) (*ListDMPartnersResponse, error)
	ListConversation(context.Context, *ListConversationRequest) (*ListConversationResponse, error)
	PostDirectMessage(context.Context, *PostDirectMessageRequest) (*PostDirectMessageResponse, error)
	ListUsers(context.Context, *ListUsersRequest) (*ListUsersResponse, error)
	DeleteUser(context.Context, *DeleteUserRequest) (*DeleteUserResponse, error)
}

type AuthServiceServer interface {
	Register(context.Context, *RegisterRequest) (*TokenResponse, error)
	Login(context.Context, *LoginRequest) (*TokenResponse, error)
}

var ChatService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ChatServiceName,
	HandlerType: (*ChatServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(ChatServiceName, "ListChannels", ChatServiceServer.ListChannels),
		unary(ChatServiceName, "ListChannelMessages", ChatServiceServer.ListChannelMessages),
		unary(ChatServiceName, "PostChannelMessage", ChatServiceServer.PostChannelMessage),
		unary(ChatServiceName, "ListDMPartners", ChatServiceServer.ListDMPartners),
		unary(ChatServiceName, "ListConversation", ChatServiceServer.ListConversation),
		unary(ChatServiceName, "PostDirectMessage", ChatServiceServer.PostDirectMessage),
		unary(ChatServiceName, "ListUsers", ChatServiceServer.ListUsers),
		unary(ChatServiceName, "DeleteUser", ChatServiceServer.DeleteUser),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "chappy/v1/chat.proto",
}

var AuthService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: AuthServiceName,
	HandlerType: (*AuthServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(AuthServiceName, "Register", AuthServiceServer.Register),
		unary(AuthServiceName, "Login", AuthServiceServer.Login),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "chappy/v1/auth.proto",
}

func RegisterChatServiceServer(s grpc.ServiceRegistrar, srv ChatServiceServer) {
	s.RegisterService(&ChatService_ServiceDesc, srv)
}

func RegisterAuthServiceServer(s grpc.ServiceRegistrar, srv AuthServiceServer) {
	s.RegisterService(&AuthService_ServiceDesc, srv)
}

func fullMethod(service, method string) string {
	return "/" + service + "/" + method
}

// unary builds the method descriptor of a request/response call,
// running the server interceptor chain when one is installed.
func unary[S any, Req any, Resp any](service, method string, call func(S, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(S), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(service, method)}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(S), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
