package domain

import "time"

// Role identifies the author of a conversation entry
type Role string

// conversation roles
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// SummaryMode selects the length of a requested article summary
type SummaryMode string

// summary modes
const (
	SummaryShort  SummaryMode = "short"
	SummaryMedium SummaryMode = "medium"
	SummaryLong   SummaryMode = "long"
)

// Valid reports whether m is a known summary mode
func (m SummaryMode) Valid() bool {
	return m == SummaryShort || m == SummaryMedium || m == SummaryLong
}

// ConversationEntry is one message in a per-(user, article) conversation.
// Entries are append-only and ordered by timestamp ascending.
type ConversationEntry struct {
	ID        int64
	UserID    string
	ArticleID int64
	Role      Role
	Message   string
	Summary   bool // set for assistant entries produced by a summarize request
	CreatedAt time.Time
}
