package turbosign

import (
	"github.com/turbodocx/turbosign-go/internal/api"
)

// Recipient is a person who signs the document. SigningOrder defines the
// sequence in which recipients must complete signing; the server is
// authoritative about order uniqueness.
type Recipient struct {
	Name         string
	Email        string
	SigningOrder int
}

// FileSource is the document to sign: exactly one of InlineFile,
// RemoteURL, DeliverableRef, or TemplateRef. Modeling the source as a
// closed set of variants removes the "which field wins" ambiguity of four
// nullable fields.
type FileSource interface {
	fileSource()
}

// InlineFile uploads raw document bytes. FileName is optional; when empty
// a name is derived from the detected content type.
type InlineFile struct {
	Data     []byte
	FileName string
}

// RemoteURL points at a document the service fetches itself.
type RemoteURL string

// DeliverableRef references a previously generated deliverable by ID.
type DeliverableRef string

// TemplateRef references a stored template by ID.
type TemplateRef string

func (InlineFile) fileSource()     {}
func (RemoteURL) fileSource()      {}
func (DeliverableRef) fileSource() {}
func (TemplateRef) fileSource()    {}

// SignatureRequest describes one signing request: a document source, the
// recipients in signing order, and the form fields placed on the document.
type SignatureRequest struct {
	Source     FileSource
	Recipients []Recipient
	Fields     []Field

	// Optional metadata; empty strings are left off the wire.
	DocumentName        string
	DocumentDescription string
	SenderName          string
	SenderEmail         string
	CCEmails            []string
}

// buildPayload validates the request and assembles the transport payload.
// All construction errors surface here, before any network I/O.
func (r *SignatureRequest) buildPayload(senderName, senderEmail string) (*api.SignaturePayload, error) {
	if r.Source == nil {
		return nil, buildErr(ErrNoFileSource, "set Source to an InlineFile, RemoteURL, DeliverableRef, or TemplateRef")
	}
	if len(r.Recipients) == 0 {
		return nil, &BuildError{Reason: ErrNoRecipients}
	}

	payload := &api.SignaturePayload{
		DocumentName:        r.DocumentName,
		DocumentDescription: r.DocumentDescription,
		SenderName:          r.SenderName,
		SenderEmail:         r.SenderEmail,
		CCEmails:            r.CCEmails,
	}

	// Request-level sender wins over the client-level fallback.
	if payload.SenderEmail == "" {
		payload.SenderEmail = senderEmail
	}
	if payload.SenderName == "" {
		payload.SenderName = senderName
	}

	switch src := r.Source.(type) {
	case InlineFile:
		if len(src.Data) == 0 {
			return nil, buildErr(ErrNoFileSource, "inline file has no data")
		}
		info := detectFileType(src.Data)
		payload.File = src.Data
		payload.FileContentType = info.MimeType
		payload.FileName = src.FileName
		if payload.FileName == "" {
			payload.FileName = "document." + info.Extension
		}
	case RemoteURL:
		if src == "" {
			return nil, buildErr(ErrNoFileSource, "remote URL is empty")
		}
		payload.FileLink = string(src)
	case DeliverableRef:
		if src == "" {
			return nil, buildErr(ErrNoFileSource, "deliverable ID is empty")
		}
		payload.DeliverableID = string(src)
	case TemplateRef:
		if src == "" {
			return nil, buildErr(ErrNoFileSource, "template ID is empty")
		}
		payload.TemplateID = string(src)
	default:
		return nil, buildErr(ErrNoFileSource, "unsupported file source %T", r.Source)
	}

	payload.Recipients = make([]api.Recipient, len(r.Recipients))
	for i, rec := range r.Recipients {
		payload.Recipients[i] = api.Recipient{
			Name:         rec.Name,
			Email:        rec.Email,
			SigningOrder: rec.SigningOrder,
		}
	}

	res := newResolver(r.Recipients)
	payload.Fields = make([]api.Field, len(r.Fields))
	for i, f := range r.Fields {
		wire, err := f.resolve(res)
		if err != nil {
			return nil, err
		}
		payload.Fields[i] = wire
	}

	return payload, nil
}
