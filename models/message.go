package models

import "time"

type Message struct {
	ConversationID string `dynamodbav:"conversationId" json:"conversationId"`
	CreatedAt      string `dynamodbav:"createdAt" json:"createdAt"`
	MessageID      string `dynamodbav:"messageId" json:"messageId"`
	SenderID       string `dynamodbav:"senderId" json:"senderId"`
	SenderName     string `dynamodbav:"senderName" json:"senderName"`
	Text           string `dynamodbav:"text" json:"text"`

	// MessageSort is the table sort key: the timestamp suffixed with the
	// message id, so two messages written in the same nanosecond cannot
	// collide onto one item.
	MessageSort string `dynamodbav:"messageSort" json:"-"`
}

// SortKey returns the message's sort-key value, deriving it when the
// stored attribute is absent.
func (m Message) SortKey() string {
	if m.MessageSort != "" {
		return m.MessageSort
	}
	return MessageSortKey(m.CreatedAt, m.MessageID)
}

// MessageSortKey builds the composite Messages sort key. Timestamps are
// fixed width, so lexicographic order on the composite stays chronological
// with ties broken by message id.
func MessageSortKey(createdAt, messageID string) string {
	return createdAt + "#" + messageID
}

// MessagesTable is the DynamoDB table name for chat messages
const MessagesTable = "Messages"

// MessageTimeLayout is a fixed-width RFC3339 variant. The sort key must
// order lexicographically the same way it orders chronologically, which
// RFC3339Nano breaks by trimming trailing zeros.
const MessageTimeLayout = "2006-01-02T15:04:05.000000000Z"

// FormatMessageTime renders t as a Messages sort-key value in UTC.
func FormatMessageTime(t time.Time) string {
	return t.UTC().Format(MessageTimeLayout)
}
