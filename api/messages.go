package api

import "time"

type Channel struct {
	Name      string `json:"name"`
	IsPrivate bool   `json:"is_private"`
}

type ChannelMessage struct {
	ID        string    `json:"id"`
	Channel   string    `json:"channel"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type DirectMessage struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Receiver  string    `json:"receiver"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type Partner struct {
	Username      string    `json:"username"`
	LastMessageAt time.Time `json:"last_message_at"`
}

type User struct {
	Username string `json:"username"`
}

type ListChannelsRequest struct{}

type ListChannelsResponse struct {
	Channels []Channel `json:"channels"`
}

type ListChannelMessagesRequest struct {
	Channel string `json:"channel"`
}

type ListChannelMessagesResponse struct {
	Messages []ChannelMessage `json:"messages"`
}

// PostChannelMessageRequest.Sender is only read for guests,
// an authenticated caller always posts under its username.
type PostChannelMessageRequest struct {
	Channel string `json:"channel"`
	Sender  string `json:"sender,omitempty"`
	Content string `json:"content"`
}

type PostChannelMessageResponse struct {
	Message ChannelMessage `json:"message"`
}

type ListDMPartnersRequest struct {
	Username string `json:"username"`
}

type ListDMPartnersResponse struct {
	Partners []Partner `json:"partners"`
}

type ListConversationRequest struct {
	UserA string `json:"user_a"`
	UserB string `json:"user_b"`
}

type ListConversationResponse struct {
	Messages []DirectMessage `json:"messages"`
}

// PostDirectMessageRequest has no sender, the caller is the sender.
type PostDirectMessageRequest struct {
	Receiver string `json:"receiver"`
	Content  string `json:"content"`
}

type PostDirectMessageResponse struct {
	Message DirectMessage `json:"message"`
}

type ListUsersRequest struct{}

type ListUsersResponse struct {
	Users []User `json:"users"`
}

type DeleteUserRequest struct {
	Username string `json:"username"`
}

type DeleteUserResponse struct{}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
