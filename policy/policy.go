// Package policy decides what an identity may read or write.
// It is a pure decision function: no storage, no network, no error path.
package policy

import (
	"chappy/domain"
	"chappy/keys"
)

type Action int

const (
	ListChannels Action = iota
	ReadChannelMessages
	PostChannelMessage
	ReadDM
	PostDM
	ListDMPartners
	DeleteUser
)

func (a Action) String() string {
	switch a {
	case ListChannels:
		return "list_channels"
	case ReadChannelMessages:
		return "read_channel_messages"
	case PostChannelMessage:
		return "post_channel_message"
	case ReadDM:
		return "read_dm"
	case PostDM:
		return "post_dm"
	case ListDMPartners:
		return "list_dm_partners"
	case DeleteUser:
		return "delete_user"
	default:
		return "unknown"
	}
}

type Reason string

const (
	PrivateChannelForbidden Reason = "private_channel_forbidden"
	GuestForbidden          Reason = "guest_forbidden"
	NotOwner                Reason = "not_owner"
)

// Resource describes what the action targets.
// Owner is only meaningful for user-owned resources (DeleteUser).
type Resource struct {
	IsPrivate bool
	Owner     string
}

func PublicChannel() Resource {
	return Resource{}
}

func ChannelResource(channel domain.Channel) Resource {
	return Resource{IsPrivate: channel.IsPrivate}
}

func UserResource(username string) Resource {
	return Resource{Owner: username}
}

type Decision struct {
	Allowed bool
	Reason  Reason
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason Reason) Decision {
	return Decision{Reason: reason}
}

// Evaluate applies the rules in order, the first match wins.
func Evaluate(identity domain.Identity, action Action, resource Resource) Decision {
	authenticated := identity.IsAuthenticated()

	switch {
	case (action == ReadChannelMessages || action == ListChannels) && !resource.IsPrivate:
		return allow()
	case (action == ReadChannelMessages || action == PostChannelMessage) && resource.IsPrivate && !authenticated:
		return deny(PrivateChannelForbidden)
	case isPersonal(action) && !authenticated:
		return deny(GuestForbidden)
	case action == PostChannelMessage && !resource.IsPrivate:
		return allow()
	case action == DeleteUser && !keys.SameUser(identity.Username, resource.Owner):
		return deny(NotOwner)
	case authenticated:
		return allow()
	case resource.IsPrivate:
		return deny(PrivateChannelForbidden)
	default:
		return deny(GuestForbidden)
	}
}

func isPersonal(action Action) bool {
	switch action {
	case ReadDM, PostDM, ListDMPartners, DeleteUser:
		return true
	default:
		return false
	}
}
