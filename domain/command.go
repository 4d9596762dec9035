package domain

// Commands carry the caller-supplied fields of a write and are validated
// before any storage access. Json tags name the fields in validation errors,
// the content tag bounds the message length.

type PostChannelMessageCommand struct {
	Channel string `json:"channel" validate:"required"`
	Sender  string `json:"sender" validate:"required"`
	Content string `json:"content" validate:"required,content"`
}

type PostDirectMessageCommand struct {
	Sender   string `json:"sender" validate:"required"`
	Receiver string `json:"receiver" validate:"required"`
	Content  string `json:"content" validate:"required,content"`
}

type ConversationQuery struct {
	UserA string `json:"user_a" validate:"required"`
	UserB string `json:"user_b" validate:"required"`
}
