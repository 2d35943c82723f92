package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// PrepareForReview uploads a document with fields and recipients without
// sending signature emails.
func (c *Client) PrepareForReview(ctx context.Context, payload *SignaturePayload) (*ReviewResponse, error) {
	var result ReviewResponse
	if err := c.submitSignature(ctx, "/turbosign/single/prepare-for-review", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PrepareForSigning uploads a document and sends signature request emails
// in a single call.
func (c *Client) PrepareForSigning(ctx context.Context, payload *SignaturePayload) (*SendResponse, error) {
	var result SendResponse
	if err := c.submitSignature(ctx, "/turbosign/single/prepare-for-signing", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// submitSignature encodes the payload as multipart when inline file bytes
// are present and as flat JSON otherwise.
func (c *Client) submitSignature(ctx context.Context, path string, payload *SignaturePayload, result interface{}) error {
	if len(payload.File) > 0 {
		fields, err := payload.formFields()
		if err != nil {
			return err
		}
		return c.Upload(ctx, path, payload.File, payload.FileName, payload.FileContentType, fields, result)
	}

	body := signatureJSONBody{
		FileLink:            payload.FileLink,
		DeliverableID:       payload.DeliverableID,
		TemplateID:          payload.TemplateID,
		Recipients:          payload.Recipients,
		Fields:              payload.Fields,
		DocumentName:        payload.DocumentName,
		DocumentDescription: payload.DocumentDescription,
		SenderName:          payload.SenderName,
		SenderEmail:         payload.SenderEmail,
		CCEmails:            payload.CCEmails,
	}
	return c.Do(ctx, http.MethodPost, path, body, result)
}

// formFields renders the payload as multipart string parts. Recipients and
// fields travel as JSON-encoded strings; ccEmails is comma-joined, which is
// the form encoding the service accepts (the JSON body uses an array).
func (p *SignaturePayload) formFields() (map[string]string, error) {
	recipientsJSON, err := json.Marshal(p.Recipients)
	if err != nil {
		return nil, fmt.Errorf("marshal recipients: %w", err)
	}
	fieldsJSON, err := json.Marshal(p.Fields)
	if err != nil {
		return nil, fmt.Errorf("marshal fields: %w", err)
	}

	fields := map[string]string{
		"recipients": string(recipientsJSON),
		"fields":     string(fieldsJSON),
	}
	if p.DocumentName != "" {
		fields["documentName"] = p.DocumentName
	}
	if p.DocumentDescription != "" {
		fields["documentDescription"] = p.DocumentDescription
	}
	if p.SenderName != "" {
		fields["senderName"] = p.SenderName
	}
	if p.SenderEmail != "" {
		fields["senderEmail"] = p.SenderEmail
	}
	if len(p.CCEmails) > 0 {
		fields["ccEmails"] = strings.Join(p.CCEmails, ",")
	}
	return fields, nil
}

// DocumentStatus returns the signing status of a document.
func (c *Client) DocumentStatus(ctx context.Context, documentID string) (*StatusResponse, error) {
	path := fmt.Sprintf("/turbosign/documents/%s/status", url.PathEscape(documentID))
	var result StatusResponse
	if err := c.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DownloadDocument fetches the signed document bytes unaltered.
func (c *Client) DownloadDocument(ctx context.Context, documentID string) ([]byte, error) {
	path := fmt.Sprintf("/turbosign/documents/%s/download", url.PathEscape(documentID))
	return c.DoRaw(ctx, path)
}

// VoidDocument cancels a signature request.
func (c *Client) VoidDocument(ctx context.Context, documentID, reason string) (*VoidResponse, error) {
	path := fmt.Sprintf("/turbosign/documents/%s/void", url.PathEscape(documentID))
	var result VoidResponse
	if err := c.Do(ctx, http.MethodPost, path, map[string]string{"reason": reason}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ResendEmail resends the signature request email to the given recipients.
func (c *Client) ResendEmail(ctx context.Context, documentID string, recipientIDs []string) (*ResendResponse, error) {
	path := fmt.Sprintf("/turbosign/documents/%s/resend-email", url.PathEscape(documentID))
	var result ResendResponse
	body := map[string][]string{"recipientIds": recipientIDs}
	if err := c.Do(ctx, http.MethodPost, path, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AuditTrail returns the hash-chained audit trail for a document.
func (c *Client) AuditTrail(ctx context.Context, documentID string) (*AuditTrailResponse, error) {
	path := fmt.Sprintf("/turbosign/documents/%s/audit-trail", url.PathEscape(documentID))
	var result AuditTrailResponse
	if err := c.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GenerateDeliverable generates a document from a template.
func (c *Client) GenerateDeliverable(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	var result GenerateResponse
	if err := c.Do(ctx, http.MethodPost, "/v1/deliverable", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
