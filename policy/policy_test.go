package policy

import (
	"testing"

	"chappy/domain"

	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	alice := domain.AuthenticatedAs("alice")
	guest := domain.GuestIdentity()
	anonymous := domain.AnonymousIdentity()
	private := Resource{IsPrivate: true}
	public := PublicChannel()

	tests := []struct {
		name     string
		identity domain.Identity
		action   Action
		resource Resource
		want     Decision
	}{
		{"anonymous lists public channels", anonymous, ListChannels, public, allow()},
		{"guest reads public channel", guest, ReadChannelMessages, public, allow()},
		{"guest reads private channel", guest, ReadChannelMessages, private, deny(PrivateChannelForbidden)},
		{"anonymous posts in private channel", anonymous, PostChannelMessage, private, deny(PrivateChannelForbidden)},
		{"guest lists a private channel entry", guest, ListChannels, private, deny(PrivateChannelForbidden)},
		{"guest reads DM", guest, ReadDM, Resource{}, deny(GuestForbidden)},
		{"anonymous posts DM", anonymous, PostDM, Resource{}, deny(GuestForbidden)},
		{"guest lists DM partners", guest, ListDMPartners, Resource{}, deny(GuestForbidden)},
		{"guest deletes a user", guest, DeleteUser, UserResource("alice"), deny(GuestForbidden)},
		{"guest posts in public channel", guest, PostChannelMessage, public, allow()},
		{"anonymous posts in public channel", anonymous, PostChannelMessage, public, allow()},
		{"member reads private channel", alice, ReadChannelMessages, private, allow()},
		{"member posts in private channel", alice, PostChannelMessage, private, allow()},
		{"member lists private channel", alice, ListChannels, private, allow()},
		{"member reads DM", alice, ReadDM, Resource{}, allow()},
		{"member posts DM", alice, PostDM, Resource{}, allow()},
		{"member lists DM partners", alice, ListDMPartners, Resource{}, allow()},
		{"member deletes own profile", alice, DeleteUser, UserResource("Alice"), allow()},
		{"member deletes someone else", alice, DeleteUser, UserResource("bob"), deny(NotOwner)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Evaluate(tt.identity, tt.action, tt.resource))
		})
	}
}

func TestEvaluate_GuestNeverReachesPrivateOrPersonalData(t *testing.T) {
	req := require.New(t)
	for _, identity := range []domain.Identity{domain.GuestIdentity(), domain.AnonymousIdentity()} {
		for _, action := range []Action{ReadChannelMessages, PostChannelMessage, ListChannels} {
			req.False(Evaluate(identity, action, Resource{IsPrivate: true}).Allowed, "%s %s", identity.Kind, action)
		}
		for _, action := range []Action{ReadDM, PostDM, ListDMPartners} {
			req.False(Evaluate(identity, action, Resource{}).Allowed, "%s %s", identity.Kind, action)
		}
	}
}
