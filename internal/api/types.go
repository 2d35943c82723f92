package api

import "encoding/json"

// Recipient is the wire shape of a signer.
type Recipient struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	SigningOrder int    `json:"signingOrder"`
}

// Size is a width/height pair used inside anchor configurations.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Offset shifts an anchored field from its computed position.
type Offset struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// TemplateAnchor positions a field by matching document text instead of
// pixel coordinates. Exactly one of Anchor or SearchText is set.
type TemplateAnchor struct {
	Anchor        string  `json:"anchor,omitempty"`
	SearchText    string  `json:"searchText,omitempty"`
	Placement     string  `json:"placement,omitempty"`
	Size          *Size   `json:"size,omitempty"`
	Offset        *Offset `json:"offset,omitempty"`
	CaseSensitive bool    `json:"caseSensitive,omitempty"`
	UseRegex      bool    `json:"useRegex,omitempty"`
}

// Field is the wire shape of a form field. Coordinate fields carry
// page/x/y/width/height; anchor fields carry Template instead. Pointers
// keep explicit zeroes on the wire while omitting genuinely unset values.
type Field struct {
	Type            string          `json:"type"`
	Page            *int            `json:"page,omitempty"`
	X               *int            `json:"x,omitempty"`
	Y               *int            `json:"y,omitempty"`
	Width           *int            `json:"width,omitempty"`
	Height          *int            `json:"height,omitempty"`
	RecipientEmail  string          `json:"recipientEmail"`
	DefaultValue    string          `json:"defaultValue,omitempty"`
	IsMultiline     bool            `json:"isMultiline,omitempty"`
	IsReadonly      bool            `json:"isReadonly,omitempty"`
	Required        bool            `json:"required,omitempty"`
	BackgroundColor string          `json:"backgroundColor,omitempty"`
	Template        *TemplateAnchor `json:"template,omitempty"`
}

// SignaturePayload is the assembled outbound payload for the review and
// signing operations. Exactly one file source is populated; the endpoint
// methods choose multipart or JSON encoding from it.
type SignaturePayload struct {
	File            []byte
	FileName        string
	FileContentType string

	FileLink      string
	DeliverableID string
	TemplateID    string

	Recipients []Recipient
	Fields     []Field

	DocumentName        string
	DocumentDescription string
	SenderName          string
	SenderEmail         string
	CCEmails            []string
}

// signatureJSONBody is the flat JSON encoding of a SignaturePayload when
// the document comes from a link, deliverable, or template.
type signatureJSONBody struct {
	FileLink            string      `json:"fileLink,omitempty"`
	DeliverableID       string      `json:"deliverableId,omitempty"`
	TemplateID          string      `json:"templateId,omitempty"`
	Recipients          []Recipient `json:"recipients"`
	Fields              []Field     `json:"fields"`
	DocumentName        string      `json:"documentName,omitempty"`
	DocumentDescription string      `json:"documentDescription,omitempty"`
	SenderName          string      `json:"senderName,omitempty"`
	SenderEmail         string      `json:"senderEmail,omitempty"`
	CCEmails            []string    `json:"ccEmails,omitempty"`
}

// ReviewRecipient appears in the review response with preview metadata.
type ReviewRecipient struct {
	ID       string                 `json:"id"`
	Name     string                 `json:"name"`
	Email    string                 `json:"email"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// ReviewResponse is the prepare-for-review result.
type ReviewResponse struct {
	Success    bool              `json:"success"`
	DocumentID string            `json:"documentId"`
	Status     string            `json:"status"`
	PreviewURL string            `json:"previewUrl,omitempty"`
	Message    string            `json:"message"`
	Recipients []ReviewRecipient `json:"recipients,omitempty"`
}

// RecipientResult describes a recipient after a signing request was sent.
type RecipientResult struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	SignURL  string `json:"signUrl,omitempty"`
	SignedAt string `json:"signedAt,omitempty"`
}

// SendResponse is the prepare-for-signing result.
type SendResponse struct {
	Success    bool              `json:"success"`
	DocumentID string            `json:"documentId"`
	Message    string            `json:"message"`
	Recipients []RecipientResult `json:"recipients,omitempty"`
}

// StatusResponse is the document status result.
type StatusResponse struct {
	Status string `json:"status"`
}

// VoidResponse is the void-document result.
type VoidResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	VoidReason string `json:"voidReason,omitempty"`
	VoidedAt   string `json:"voidedAt,omitempty"`
}

// ResendResponse is the resend-email result.
type ResendResponse struct {
	Success        bool `json:"success"`
	RecipientCount int  `json:"recipientCount"`
}

// AuditActor identifies a user or recipient in the audit trail.
type AuditActor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuditEntry is one hash-chained audit trail event.
type AuditEntry struct {
	ID           string                 `json:"id"`
	DocumentID   string                 `json:"documentId"`
	ActionType   string                 `json:"actionType"`
	Timestamp    string                 `json:"timestamp"`
	PreviousHash string                 `json:"previousHash,omitempty"`
	CurrentHash  string                 `json:"currentHash,omitempty"`
	Details      map[string]interface{} `json:"details,omitempty"`
	User         *AuditActor            `json:"user,omitempty"`
	Recipient    *AuditActor            `json:"recipient,omitempty"`
}

// AuditDocument identifies the document an audit trail belongs to.
type AuditDocument struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AuditTrailResponse is the audit-trail result.
type AuditTrailResponse struct {
	Document   AuditDocument `json:"document"`
	AuditTrail []AuditEntry  `json:"auditTrail"`
}

// TemplateVariable is a variable injected during template generation.
// Value is raw JSON so an explicit null survives to the wire: a nil Value
// omits the key, while json.RawMessage("null") sends a literal null.
type TemplateVariable struct {
	Placeholder string          `json:"placeholder"`
	Name        string          `json:"name"`
	Value       json.RawMessage `json:"value,omitempty"`
	MimeType    string          `json:"mimeType"`
	Description string          `json:"description,omitempty"`
}

// GenerateRequest is the template generation request body.
type GenerateRequest struct {
	TemplateID   string                 `json:"templateId"`
	Variables    []TemplateVariable     `json:"variables"`
	Name         string                 `json:"name,omitempty"`
	Description  string                 `json:"description,omitempty"`
	OutputFormat string                 `json:"outputFormat,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
}

// GenerateResponse is the template generation result.
type GenerateResponse struct {
	Success       bool   `json:"success"`
	DeliverableID string `json:"deliverableId,omitempty"`
	DownloadURL   string `json:"downloadUrl,omitempty"`
	Message       string `json:"message,omitempty"`
}
