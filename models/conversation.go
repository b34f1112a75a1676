package models

// ParticipantSnapshot is the denormalized display info for one participant,
// captured when the conversation is created and not kept in sync afterwards.
type ParticipantSnapshot struct {
	Username   string `dynamodbav:"username" json:"username"`
	Instrument string `dynamodbav:"instrument,omitempty" json:"instrument,omitempty"`
}

// LastMessage is the denormalized summary of the newest message in a
// conversation. Last-write-wins: whichever participant sends most recently
// overwrites it.
type LastMessage struct {
	Text      string `dynamodbav:"text" json:"text"`
	SenderID  string `dynamodbav:"senderId" json:"senderId"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}

// Conversation is a 1:1 chat between two users. ConversationID is derived
// from the sorted participant pair, so the same pair always maps to the
// same record no matter who initiates.
type Conversation struct {
	ConversationID  string                         `dynamodbav:"conversationId" json:"conversationId"`
	Participants    []string                       `dynamodbav:"participants" json:"participants"`
	ParticipantInfo map[string]ParticipantSnapshot `dynamodbav:"participantInfo" json:"participantInfo"`
	LastMessage     LastMessage                    `dynamodbav:"lastMessage" json:"lastMessage"`
	CreatedAt       string                         `dynamodbav:"createdAt" json:"createdAt"`
}

// ConversationsTable is the DynamoDB table name for conversations
const ConversationsTable = "Conversations"
