package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"time"
	"unicode/utf8"

	"chappy/domain"
	"chappy/errors"
	"chappy/keys"
	"chappy/moderation"
	"chappy/policy"
	"chappy/projection"
	"chappy/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IChatService interface {
	ListChannels(ctx context.Context, identity domain.Identity) ([]domain.Channel, error)
	ListChannelMessages(ctx context.Context, identity domain.Identity, channel string) ([]domain.ChannelMessage, error)
	PostChannelMessage(ctx context.Context, identity domain.Identity, cmd domain.PostChannelMessageCommand) (domain.ChannelMessage, error)
	ListDMPartners(ctx context.Context, identity domain.Identity, username string) ([]string, error)
	ListRecentPartners(ctx context.Context, identity domain.Identity, username string) ([]projection.Partner, error)
	ListConversation(ctx context.Context, identity domain.Identity, query domain.ConversationQuery) ([]domain.DirectMessage, error)
	PostDirectMessage(ctx context.Context, identity domain.Identity, cmd domain.PostDirectMessageCommand) (domain.DirectMessage, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	DeleteUser(ctx context.Context, identity domain.Identity, username string) error
}

type ChatServiceConfig struct {
	// AutoCreateChannels makes a post to an unknown channel create it as public.
	AutoCreateChannels bool
	MaxContentLength   int
}

// ChatService is the message store API. Every call carries the caller
// identity and goes through the access policy before touching storage,
// except ListUsers.
type ChatService struct {
	log                     *slog.Logger
	channelRepository       repositories.IChannelRepository
	messageRepository       repositories.IMessageRepository
	directMessageRepository repositories.IDirectMessageRepository
	userRepository          repositories.IUserRepository
	moderator               moderation.Moderator
	validate                *validator.Validate
	autoCreateChannels      bool
	now                     func() time.Time
}

func NewChatService(
	log *slog.Logger,
	channelRepository repositories.IChannelRepository,
	messageRepository repositories.IMessageRepository,
	directMessageRepository repositories.IDirectMessageRepository,
	userRepository repositories.IUserRepository,
	moderator moderation.Moderator,
	config ChatServiceConfig,
) *ChatService {
	return &ChatService{
		log:                     log,
		channelRepository:       channelRepository,
		messageRepository:       messageRepository,
		directMessageRepository: directMessageRepository,
		userRepository:          userRepository,
		moderator:               moderator,
		validate:                newValidator(config.MaxContentLength),
		autoCreateChannels:      config.AutoCreateChannels,
		now:                     time.Now,
	}
}

// newValidator reports fields by their json name and bounds content length
// in runes. maxContentLength <= 0 disables the bound.
func newValidator(maxContentLength int) *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	_ = v.RegisterValidation("content", func(fl validator.FieldLevel) bool {
		return maxContentLength <= 0 || utf8.RuneCountInString(fl.Field().String()) <= maxContentLength
	})
	return v
}

func (s *ChatService) ListChannels(_ context.Context, identity domain.Identity) ([]domain.Channel, error) {
	channels, err := s.channelRepository.ListChannels()
	if err != nil {
		return nil, err
	}
	return lo.Filter(channels, func(channel domain.Channel, _ int) bool {
		return policy.Evaluate(identity, policy.ListChannels, policy.ChannelResource(channel)).Allowed
	}), nil
}

func (s *ChatService) ListChannelMessages(_ context.Context, identity domain.Identity, channelName string) ([]domain.ChannelMessage, error) {
	if strings.TrimSpace(channelName) == "" {
		return nil, errors.ValidationFailed("channel")
	}
	channel, found, err := s.channelRepository.GetChannel(channelName)
	if err != nil {
		return nil, err
	}
	if !found {
		// An unknown channel holds no message and is treated as public.
		channel = domain.Channel{Name: channelName}
	}
	if err := s.authorize(identity, policy.ReadChannelMessages, policy.ChannelResource(channel)); err != nil {
		return nil, err
	}

	messages, err := s.messageRepository.GetChannelMessages(channelName)
	if err != nil {
		return nil, err
	}
	return projection.ChannelTimeline(messages), nil
}

func (s *ChatService) PostChannelMessage(_ context.Context, identity domain.Identity, cmd domain.PostChannelMessageCommand) (domain.ChannelMessage, error) {
	cmd.Content = strings.TrimSpace(cmd.Content)
	if err := s.validateStruct(cmd); err != nil {
		return domain.ChannelMessage{}, err
	}
	if !keys.ValidName(cmd.Channel) {
		return domain.ChannelMessage{}, errors.ValidationFailed("channel")
	}

	channel, found, err := s.channelRepository.GetChannel(cmd.Channel)
	if err != nil {
		return domain.ChannelMessage{}, err
	}
	if !found && !s.autoCreateChannels {
		return domain.ChannelMessage{}, errors.NotFound("channel " + cmd.Channel)
	}
	if !found {
		channel = domain.Channel{Name: cmd.Channel}
	}
	if err := s.authorize(identity, policy.PostChannelMessage, policy.ChannelResource(channel)); err != nil {
		return domain.ChannelMessage{}, err
	}
	if !found {
		if err := s.channelRepository.SaveChannel(channel); err != nil {
			return domain.ChannelMessage{}, err
		}
		s.log.Info("channel created on first post", "channel", channel.Name)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return domain.ChannelMessage{}, fmt.Errorf("message id: %w", err)
	}
	message := domain.ChannelMessage{
		ID:        id,
		Channel:   channel.Name,
		Sender:    cmd.Sender,
		Content:   s.moderator.Censor(cmd.Content),
		CreatedAt: s.now().UTC(),
	}
	if err := s.messageRepository.StoreChannelMessage(message); err != nil {
		return domain.ChannelMessage{}, err
	}
	s.log.Debug("channel message stored", "channel", message.Channel, "sender", message.Sender, "id", message.ID)
	return message, nil
}

// ListDMPartners returns the distinct partners of username, most recent first.
func (s *ChatService) ListDMPartners(ctx context.Context, identity domain.Identity, username string) ([]string, error) {
	partners, err := s.ListRecentPartners(ctx, identity, username)
	if err != nil {
		return nil, err
	}
	return lo.Map(partners, func(partner projection.Partner, _ int) string {
		return partner.Username
	}), nil
}

func (s *ChatService) ListRecentPartners(_ context.Context, identity domain.Identity, username string) ([]projection.Partner, error) {
	if err := s.authorize(identity, policy.ListDMPartners, policy.UserResource(username)); err != nil {
		return nil, err
	}
	if strings.TrimSpace(username) == "" {
		return nil, errors.ValidationFailed("username")
	}
	messages, err := s.directMessageRepository.GetDirectMessagesFor(username)
	if err != nil {
		return nil, err
	}
	return projection.RecentPartners(username, messages), nil
}

func (s *ChatService) ListConversation(_ context.Context, identity domain.Identity, query domain.ConversationQuery) ([]domain.DirectMessage, error) {
	if err := s.validateStruct(query); err != nil {
		return nil, err
	}
	if keys.SameUser(query.UserA, query.UserB) {
		return nil, errors.ErrSelfConversation
	}
	if err := s.authorize(identity, policy.ReadDM, policy.UserResource(query.UserA)); err != nil {
		return nil, err
	}

	messages, err := s.directMessageRepository.GetConversation(query.UserA, query.UserB)
	if err != nil {
		return nil, err
	}
	return projection.Conversation(messages), nil
}

func (s *ChatService) PostDirectMessage(_ context.Context, identity domain.Identity, cmd domain.PostDirectMessageCommand) (domain.DirectMessage, error) {
	cmd.Content = strings.TrimSpace(cmd.Content)
	if cmd.Sender != "" && keys.SameUser(cmd.Sender, cmd.Receiver) {
		return domain.DirectMessage{}, errors.ErrSelfConversation
	}
	if err := s.authorize(identity, policy.PostDM, policy.UserResource(cmd.Sender)); err != nil {
		return domain.DirectMessage{}, err
	}
	if err := s.validateStruct(cmd); err != nil {
		return domain.DirectMessage{}, err
	}
	if !keys.ValidName(cmd.Sender) {
		return domain.DirectMessage{}, errors.ValidationFailed("sender")
	}
	if !keys.ValidName(cmd.Receiver) {
		return domain.DirectMessage{}, errors.ValidationFailed("receiver")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return domain.DirectMessage{}, fmt.Errorf("message id: %w", err)
	}
	message := domain.DirectMessage{
		ID:        id,
		Sender:    cmd.Sender,
		Receiver:  cmd.Receiver,
		Content:   s.moderator.Censor(cmd.Content),
		CreatedAt: s.now().UTC(),
	}
	if err := s.directMessageRepository.StoreDirectMessage(message); err != nil {
		return domain.DirectMessage{}, err
	}
	s.log.Debug("direct message stored", "sender", message.Sender, "receiver", message.Receiver, "id", message.ID)
	return message, nil
}

// ListUsers is ungated, usernames are public.
func (s *ChatService) ListUsers(_ context.Context) ([]domain.User, error) {
	return s.userRepository.ListUsers()
}

// DeleteUser removes the profile only. Messages sent by the user stay in place.
func (s *ChatService) DeleteUser(_ context.Context, identity domain.Identity, username string) error {
	if strings.TrimSpace(username) == "" {
		return errors.ValidationFailed("username")
	}
	if err := s.authorize(identity, policy.DeleteUser, policy.UserResource(username)); err != nil {
		return err
	}
	return s.userRepository.DeleteUser(username)
}

func (s *ChatService) authorize(identity domain.Identity, action policy.Action, resource policy.Resource) error {
	decision := policy.Evaluate(identity, action, resource)
	if decision.Allowed {
		return nil
	}
	s.log.Debug("access denied",
		"identity", identity.Kind.String(),
		"username", identity.Username,
		"action", action.String(),
		"reason", string(decision.Reason))
	return errors.Forbidden(string(decision.Reason))
}

// validateStruct reports the first failing field.
func (s *ChatService) validateStruct(value any) error {
	err := s.validate.Struct(value)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if stderrors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return errors.ValidationFailed(validationErrors[0].Field())
	}
	return fmt.Errorf("validate %T: %w", value, err)
}
