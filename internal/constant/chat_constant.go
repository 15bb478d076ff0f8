package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"

	// DefaultSessionTitle is rewritten from the first user message once.
	DefaultSessionTitle = "New Conversation"

	// SessionTitleMaxLength caps the derived title before the "..." suffix.
	SessionTitleMaxLength = 50

	// ChatHistoryWindowSize bounds how many recent turns reach the model.
	ChatHistoryWindowSize = 10

	SystemPrompt = "You are a helpful AI assistant. Provide thoughtful and accurate responses."

	AttachmentTextMarker    = "[Attachment Text]"
	AttachmentPdfTextMarker = "[Attachment PDF Text]"
)
