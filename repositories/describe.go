package repositories

import (
	"fmt"
	"strings"

	"chappy/keys"
	"chappy/storage"
)

// Record is a decoded, human readable view of a stored item.
type Record struct {
	Kind    string
	Author  string
	Detail  string
	Created string
}

// Describe decodes item according to its key layout. Password hashes are
// never part of the description.
func Describe(item storage.Item) (Record, error) {
	pk, sk := string(item.Partition), string(item.Sort)
	switch {
	case strings.HasPrefix(pk, string(keys.ChannelPartitionPrefix())) && sk == string(keys.ChannelMetaKey()):
		channel, err := decodeChannel(item.Value)
		if err != nil {
			return Record{}, err
		}
		return Record{Kind: "CHANNEL", Detail: fmt.Sprintf("%s private=%t", channel.Name, channel.IsPrivate)}, nil
	case strings.HasPrefix(pk, string(keys.ChannelPartitionPrefix())) && strings.HasPrefix(sk, string(keys.MessagePrefix())):
		message, err := decodeChannelMessage(item.Value)
		if err != nil {
			return Record{}, err
		}
		return Record{Kind: "CHANNEL_MESSAGE", Author: message.Sender, Detail: message.Content, Created: message.CreatedAt.Format("2006-01-02 15:04:05.000")}, nil
	case strings.HasPrefix(pk, string(keys.DMPartitionPrefix())):
		message, err := decodeDirectMessage(item.Value)
		if err != nil {
			return Record{}, err
		}
		return Record{Kind: "DM", Author: message.Sender, Detail: "to " + message.Receiver + ": " + message.Content, Created: message.CreatedAt.Format("2006-01-02 15:04:05.000")}, nil
	case strings.HasPrefix(pk, string(keys.UserPartitionPrefix())):
		user, err := decodeUser(item.Value)
		if err != nil {
			return Record{}, err
		}
		return Record{Kind: "USER", Author: user.Username, Detail: strings.Join(user.Roles, ","), Created: user.CreatedAt.Format("2006-01-02 15:04:05")}, nil
	default:
		return Record{Kind: "UNKNOWN", Detail: fmt.Sprintf("%d bytes", len(item.Value))}, nil
	}
}
