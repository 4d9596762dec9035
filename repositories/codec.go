package repositories

import (
	"fmt"
	"time"

	"chappy/domain"

	"github.com/google/uuid"
	"google.golang.org/protobuf/encoding/protowire"
)

// Records are stored in protobuf wire format. Field numbers are part of the
// on-disk format and must never be reused:
//
//	message Channel        { string name = 1; bool is_private = 2; }
//	message ChannelMessage { string id = 1; string channel = 2; string sender = 3; string content = 4; int64 created_at = 5; }
//	message DirectMessage  { string id = 1; string sender = 2; string receiver = 3; string content = 4; int64 created_at = 5; }
//	message User           { string username = 1; string password_hash = 2; int64 created_at = 3; repeated string roles = 4; }
//
// created_at is in unix nanoseconds for messages and unix seconds for users.

type recordWriter struct {
	buf []byte
}

func (w *recordWriter) string(num protowire.Number, value string) {
	if value == "" {
		return
	}
	w.buf = protowire.AppendTag(w.buf, num, protowire.BytesType)
	w.buf = protowire.AppendString(w.buf, value)
}

func (w *recordWriter) int64(num protowire.Number, value int64) {
	if value == 0 {
		return
	}
	w.buf = protowire.AppendTag(w.buf, num, protowire.VarintType)
	w.buf = protowire.AppendVarint(w.buf, uint64(value))
}

func (w *recordWriter) bool(num protowire.Number, value bool) {
	if !value {
		return
	}
	w.buf = protowire.AppendTag(w.buf, num, protowire.VarintType)
	w.buf = protowire.AppendVarint(w.buf, protowire.EncodeBool(value))
}

// wireValue holds the payload of one decoded field.
type wireValue struct {
	varint uint64
	bytes  []byte
}

func (v wireValue) string() string { return string(v.bytes) }
func (v wireValue) int64() int64   { return int64(v.varint) }
func (v wireValue) bool() bool     { return protowire.DecodeBool(v.varint) }

// readFields walks a record and hands every known-typed field to visit.
// Fields of other wire types are skipped so older readers survive newer records.
func readFields(b []byte, visit func(num protowire.Number, value wireValue)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		var value wireValue
		switch typ {
		case protowire.VarintType:
			value.varint, n = protowire.ConsumeVarint(b)
		case protowire.BytesType:
			value.bytes, n = protowire.ConsumeBytes(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			b = b[n:]
			continue
		}
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		visit(num, value)
	}
	return nil
}

func encodeChannel(channel domain.Channel) []byte {
	var w recordWriter
	w.string(1, channel.Name)
	w.bool(2, channel.IsPrivate)
	return w.buf
}

func decodeChannel(b []byte) (domain.Channel, error) {
	var channel domain.Channel
	err := readFields(b, func(num protowire.Number, value wireValue) {
		switch num {
		case 1:
			channel.Name = value.string()
		case 2:
			channel.IsPrivate = value.bool()
		}
	})
	if err != nil {
		return domain.Channel{}, fmt.Errorf("decode channel: %w", err)
	}
	return channel, nil
}

func encodeChannelMessage(message domain.ChannelMessage) []byte {
	var w recordWriter
	w.string(1, message.ID.String())
	w.string(2, message.Channel)
	w.string(3, message.Sender)
	w.string(4, message.Content)
	w.int64(5, message.CreatedAt.UnixNano())
	return w.buf
}

func decodeChannelMessage(b []byte) (domain.ChannelMessage, error) {
	var (
		message domain.ChannelMessage
		id      string
	)
	err := readFields(b, func(num protowire.Number, value wireValue) {
		switch num {
		case 1:
			id = value.string()
		case 2:
			message.Channel = value.string()
		case 3:
			message.Sender = value.string()
		case 4:
			message.Content = value.string()
		case 5:
			message.CreatedAt = time.Unix(0, value.int64()).UTC()
		}
	})
	if err != nil {
		return domain.ChannelMessage{}, fmt.Errorf("decode channel message: %w", err)
	}
	if message.ID, err = uuid.Parse(id); err != nil {
		return domain.ChannelMessage{}, fmt.Errorf("decode channel message id: %w", err)
	}
	return message, nil
}

func encodeDirectMessage(message domain.DirectMessage) []byte {
	var w recordWriter
	w.string(1, message.ID.String())
	w.string(2, message.Sender)
	w.string(3, message.Receiver)
	w.string(4, message.Content)
	w.int64(5, message.CreatedAt.UnixNano())
	return w.buf
}

func decodeDirectMessage(b []byte) (domain.DirectMessage, error) {
	var (
		message domain.DirectMessage
		id      string
	)
	err := readFields(b, func(num protowire.Number, value wireValue) {
		switch num {
		case 1:
			id = value.string()
		case 2:
			message.Sender = value.string()
		case 3:
			message.Receiver = value.string()
		case 4:
			message.Content = value.string()
		case 5:
			message.CreatedAt = time.Unix(0, value.int64()).UTC()
		}
	})
	if err != nil {
		return domain.DirectMessage{}, fmt.Errorf("decode direct message: %w", err)
	}
	if message.ID, err = uuid.Parse(id); err != nil {
		return domain.DirectMessage{}, fmt.Errorf("decode direct message id: %w", err)
	}
	return message, nil
}

func encodeUser(user User) []byte {
	var w recordWriter
	w.string(1, user.Username)
	w.string(2, user.PasswordHash)
	w.int64(3, user.CreatedAt.Unix())
	for _, role := range user.Roles {
		w.buf = protowire.AppendTag(w.buf, 4, protowire.BytesType)
		w.buf = protowire.AppendString(w.buf, role)
	}
	return w.buf
}

func decodeUser(b []byte) (User, error) {
	var user User
	err := readFields(b, func(num protowire.Number, value wireValue) {
		switch num {
		case 1:
			user.Username = value.string()
		case 2:
			user.PasswordHash = value.string()
		case 3:
			user.CreatedAt = time.Unix(value.int64(), 0).UTC()
		case 4:
			user.Roles = append(user.Roles, value.string())
		}
	})
	if err != nil {
		return User{}, fmt.Errorf("decode user: %w", err)
	}
	return user, nil
}
