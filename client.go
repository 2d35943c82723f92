package turbosign

import (
	"context"

	"github.com/turbodocx/turbosign-go/internal/api"
)

// Client talks to the TurboSign API. It stores no per-call state beyond
// the shared HTTP transport and is safe for concurrent use by multiple
// goroutines.
type Client struct {
	api         *api.Client
	senderName  string
	senderEmail string
}

// New creates a client. Credentials come from WithAPIKey or
// WithAccessToken; when both are set the access token wins.
func New(opts ...Option) (*Client, error) {
	cfg := clientConfig{
		baseURL: api.DefaultBaseURL,
		timeout: api.DefaultTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.apiKey == "" && cfg.accessToken == "" {
		return nil, ErrMissingCredentials
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:     cfg.baseURL,
		APIKey:      cfg.apiKey,
		AccessToken: cfg.accessToken,
		OrgID:       cfg.orgID,
		HTTPClient:  cfg.httpClient,
		Timeout:     cfg.timeout,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		api:         apiClient,
		senderName:  cfg.senderName,
		senderEmail: cfg.senderEmail,
	}, nil
}

// Review is the result of preparing a document for review.
type Review struct {
	DocumentID string
	Status     string
	PreviewURL string
	Message    string
	Recipients []ReviewRecipient
}

// ReviewRecipient is a recipient with the server-assigned ID from a
// review response.
type ReviewRecipient struct {
	ID       string
	Name     string
	Email    string
	Metadata map[string]interface{}
}

// PrepareForReview uploads the document, recipients, and fields without
// sending signature emails. Use it to preview field placement.
func (c *Client) PrepareForReview(ctx context.Context, req *SignatureRequest) (*Review, error) {
	payload, err := req.buildPayload(c.senderName, c.senderEmail)
	if err != nil {
		return nil, err
	}

	resp, err := c.api.PrepareForReview(ctx, payload)
	if err != nil {
		return nil, wrapError(err)
	}

	review := &Review{
		DocumentID: resp.DocumentID,
		Status:     resp.Status,
		PreviewURL: resp.PreviewURL,
		Message:    resp.Message,
	}
	for _, r := range resp.Recipients {
		review.Recipients = append(review.Recipients, ReviewRecipient{
			ID:       r.ID,
			Name:     r.Name,
			Email:    r.Email,
			Metadata: r.Metadata,
		})
	}
	return review, nil
}

// SendResult is the result of sending a signing request.
type SendResult struct {
	DocumentID string
	Message    string
	Recipients []SendRecipient
}

// SendRecipient is a recipient after the signing request was sent,
// including the signing URL when the server returns one.
type SendRecipient struct {
	ID       string
	Name     string
	Email    string
	SignURL  string
	SignedAt string
}

// PrepareForSigning uploads the document and sends signature request
// emails to every recipient in one call.
func (c *Client) PrepareForSigning(ctx context.Context, req *SignatureRequest) (*SendResult, error) {
	payload, err := req.buildPayload(c.senderName, c.senderEmail)
	if err != nil {
		return nil, err
	}

	resp, err := c.api.PrepareForSigning(ctx, payload)
	if err != nil {
		return nil, wrapError(err)
	}

	result := &SendResult{
		DocumentID: resp.DocumentID,
		Message:    resp.Message,
	}
	for _, r := range resp.Recipients {
		result.Recipients = append(result.Recipients, SendRecipient{
			ID:       r.ID,
			Name:     r.Name,
			Email:    r.Email,
			SignURL:  r.SignURL,
			SignedAt: r.SignedAt,
		})
	}
	return result, nil
}

// Status returns the signing status of a document.
func (c *Client) Status(ctx context.Context, documentID string) (string, error) {
	resp, err := c.api.DocumentStatus(ctx, documentID)
	if err != nil {
		return "", wrapError(err)
	}
	return resp.Status, nil
}

// Download fetches the signed document. The returned bytes are exactly
// what the server sent, undecoded.
func (c *Client) Download(ctx context.Context, documentID string) ([]byte, error) {
	data, err := c.api.DownloadDocument(ctx, documentID)
	if err != nil {
		return nil, wrapError(err)
	}
	return data, nil
}

// VoidResult describes a voided document.
type VoidResult struct {
	DocumentID string
	Name       string
	Status     string
	VoidReason string
	VoidedAt   string
}

// Void cancels a signature request. The reason is recorded in the
// document's audit trail.
func (c *Client) Void(ctx context.Context, documentID, reason string) (*VoidResult, error) {
	resp, err := c.api.VoidDocument(ctx, documentID, reason)
	if err != nil {
		return nil, wrapError(err)
	}
	return &VoidResult{
		DocumentID: resp.ID,
		Name:       resp.Name,
		Status:     resp.Status,
		VoidReason: resp.VoidReason,
		VoidedAt:   resp.VoidedAt,
	}, nil
}

// ResendEmail resends the signature request email to the given recipient
// IDs and reports how many recipients were notified.
func (c *Client) ResendEmail(ctx context.Context, documentID string, recipientIDs []string) (int, error) {
	resp, err := c.api.ResendEmail(ctx, documentID, recipientIDs)
	if err != nil {
		return 0, wrapError(err)
	}
	return resp.RecipientCount, nil
}

// AuditTrail returns the hash-chained audit trail for a document.
func (c *Client) AuditTrail(ctx context.Context, documentID string) (*AuditTrail, error) {
	resp, err := c.api.AuditTrail(ctx, documentID)
	if err != nil {
		return nil, wrapError(err)
	}

	trail := &AuditTrail{
		DocumentID:   resp.Document.ID,
		DocumentName: resp.Document.Name,
	}
	for _, e := range resp.AuditTrail {
		entry := AuditEntry{
			ID:           e.ID,
			ActionType:   e.ActionType,
			Timestamp:    e.Timestamp,
			PreviousHash: e.PreviousHash,
			CurrentHash:  e.CurrentHash,
			Details:      e.Details,
		}
		if e.User != nil {
			entry.User = &AuditActor{Name: e.User.Name, Email: e.User.Email}
		}
		if e.Recipient != nil {
			entry.Recipient = &AuditActor{Name: e.Recipient.Name, Email: e.Recipient.Email}
		}
		trail.Entries = append(trail.Entries, entry)
	}
	return trail, nil
}

// AuditTrail is a document's tamper-evident event history.
type AuditTrail struct {
	DocumentID   string
	DocumentName string
	Entries      []AuditEntry
}

// AuditEntry is one audit trail event. CurrentHash chains to the next
// entry's PreviousHash.
type AuditEntry struct {
	ID           string
	ActionType   string
	Timestamp    string
	PreviousHash string
	CurrentHash  string
	Details      map[string]interface{}
	User         *AuditActor
	Recipient    *AuditActor
}

// AuditActor identifies a user or recipient in the audit trail.
type AuditActor struct {
	Name  string
	Email string
}
