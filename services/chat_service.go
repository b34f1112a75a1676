package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/lior88844/bandly/models"
	"github.com/lior88844/bandly/realtime"
	"github.com/lior88844/bandly/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// ErrInvalidParticipant is returned when a conversation is keyed with a
// missing participant id.
var ErrInvalidParticipant = errors.New("both participants must have valid IDs")

// conversationKeyDelimiter joins the sorted participant pair into one key
const conversationKeyDelimiter = "_"

// ChatService owns conversations and their messages. Hub is optional; when
// set, stored messages are fanned out to realtime subscribers.
type ChatService struct {
	Dynamo *DynamoService
	Hub    *realtime.Hub
}

// ConversationKey derives the deterministic conversation id for a pair of
// participants. The pair is sorted first, so key(a,b) == key(b,a).
func ConversationKey(a, b string) (string, error) {
	if a == "" || b == "" {
		return "", ErrInvalidParticipant
	}
	if b < a {
		a, b = b, a
	}
	return a + conversationKeyDelimiter + b, nil
}

// GetOrCreateConversation returns the conversation between the two users,
// lazily creating it with denormalized participant snapshots and an empty
// last-message summary. Creation is idempotent: a concurrent first call by
// the other participant wins the conditional write and this call reads the
// existing record back instead of overwriting it.
func (s *ChatService) GetOrCreateConversation(ctx context.Context, me, other models.UserProfile) (*models.Conversation, error) {
	conversationID, err := ConversationKey(me.UserID, other.UserID)
	if err != nil {
		return nil, err
	}

	existing, err := s.getConversation(ctx, conversationID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrItemNotFound) {
		return nil, fmt.Errorf("failed to check conversation %s: %w", conversationID, err)
	}

	participants := []string{me.UserID, other.UserID}
	sort.Strings(participants)

	conversation := models.Conversation{
		ConversationID: conversationID,
		Participants:   participants,
		ParticipantInfo: map[string]models.ParticipantSnapshot{
			me.UserID:    {Username: me.Username, Instrument: me.Instrument},
			other.UserID: {Username: other.Username, Instrument: other.Instrument},
		},
		LastMessage: models.LastMessage{},
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	created, err := s.Dynamo.PutItemIfAbsent(ctx, models.ConversationsTable, "conversationId", conversation)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation %s: %w", conversationID, err)
	}
	if !created {
		// Lost the race; the other participant's record is authoritative.
		return s.getConversation(ctx, conversationID)
	}

	log.Printf("Created conversation %s", conversationID)
	return &conversation, nil
}

func (s *ChatService) getConversation(ctx context.Context, conversationID string) (*models.Conversation, error) {
	key := map[string]types.AttributeValue{
		"conversationId": &types.AttributeValueMemberS{Value: conversationID},
	}
	item, err := s.Dynamo.GetItem(ctx, models.ConversationsTable, key)
	if err != nil {
		return nil, err
	}

	var conversation models.Conversation
	if err := attributevalue.UnmarshalMap(item, &conversation); err != nil {
		return nil, fmt.Errorf("failed to unmarshal conversation: %w", err)
	}
	return &conversation, nil
}

// ListConversations returns every conversation the user participates in,
// newest last-message first.
func (s *ChatService) ListConversations(ctx context.Context, userID string) ([]models.Conversation, error) {
	if userID == "" {
		return nil, ErrInvalidParticipant
	}

	var conversations []models.Conversation
	err := s.Dynamo.ScanWithFilter(ctx, models.ConversationsTable, func(item map[string]types.AttributeValue) bool {
		participants := utils.ExtractStringList(item, "participants")
		for _, p := range participants {
			if p == userID {
				return true
			}
		}
		return false
	}, nil, &conversations)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations for %s: %w", userID, err)
	}

	sort.SliceStable(conversations, func(i, j int) bool {
		return conversations[i].LastMessage.CreatedAt > conversations[j].LastMessage.CreatedAt
	})

	return conversations, nil
}

// SendMessage stores a new message with a server-assigned timestamp and
// merges the conversation's last-message summary. The summary is
// last-write-wins between participants.
func (s *ChatService) SendMessage(ctx context.Context, conversationID, senderID, senderName, text string) (*models.Message, error) {
	if conversationID == "" || senderID == "" {
		return nil, ErrInvalidParticipant
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("message text cannot be empty")
	}

	message := models.Message{
		ConversationID: conversationID,
		CreatedAt:      models.FormatMessageTime(time.Now()),
		MessageID:      uuid.New().String(),
		SenderID:       senderID,
		SenderName:     senderName,
		Text:           text,
	}
	message.MessageSort = models.MessageSortKey(message.CreatedAt, message.MessageID)

	if err := s.Dynamo.PutItem(ctx, models.MessagesTable, message); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	key := map[string]types.AttributeValue{
		"conversationId": &types.AttributeValueMemberS{Value: conversationID},
	}
	updateExpression := "SET lastMessage = :lastMessage"
	expressionValues := map[string]types.AttributeValue{
		":lastMessage": &types.AttributeValueMemberM{
			Value: map[string]types.AttributeValue{
				"text":      &types.AttributeValueMemberS{Value: message.Text},
				"senderId":  &types.AttributeValueMemberS{Value: message.SenderID},
				"createdAt": &types.AttributeValueMemberS{Value: message.CreatedAt},
			},
		},
	}
	if _, err := s.Dynamo.UpdateItem(ctx, models.ConversationsTable, updateExpression, key, expressionValues, nil); err != nil {
		// The message itself is durable; a stale summary heals on the next send.
		log.Printf("Failed to update last message for conversation %s: %v", conversationID, err)
	}

	if s.Hub != nil {
		s.Hub.Publish(conversationID, message)
	}

	return &message, nil
}

// LatestMessages fetches the newest limit messages in ascending display
// order. This is the MessageSource initial page.
func (s *ChatService) LatestMessages(ctx context.Context, conversationID string, limit int) ([]models.Message, error) {
	keyCondition := "conversationId = :conversationId"
	expressionValues := map[string]types.AttributeValue{
		":conversationId": &types.AttributeValueMemberS{Value: conversationID},
	}

	items, err := s.Dynamo.QueryItemsWithOptions(ctx, models.MessagesTable, keyCondition, expressionValues, nil, int32(limit), true)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	return unmarshalAscending(items)
}

// MessagesBefore fetches up to limit messages strictly older than the
// cursor sort key, ascending. This is the MessageSource backward page.
func (s *ChatService) MessagesBefore(ctx context.Context, conversationID, before string, limit int) ([]models.Message, error) {
	keyCondition := "conversationId = :conversationId AND messageSort < :before"
	expressionValues := map[string]types.AttributeValue{
		":conversationId": &types.AttributeValueMemberS{Value: conversationID},
		":before":         &types.AttributeValueMemberS{Value: before},
	}

	items, err := s.Dynamo.QueryItemsWithOptions(ctx, models.MessagesTable, keyCondition, expressionValues, nil, int32(limit), true)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch older messages: %w", err)
	}

	return unmarshalAscending(items)
}

// unmarshalAscending converts a newest-first query result into ascending
// display order.
func unmarshalAscending(items []map[string]types.AttributeValue) ([]models.Message, error) {
	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse messages: %w", err)
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
