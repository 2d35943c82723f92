package turbosign

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/turbodocx/turbosign-go/internal/api"
)

// VariableMimeType is the content type of a template variable.
type VariableMimeType string

// Template variable MIME types.
const (
	MimeText     VariableMimeType = "text"
	MimeHTML     VariableMimeType = "html"
	MimeImage    VariableMimeType = "image"
	MimeMarkdown VariableMimeType = "markdown"
	MimeJSON     VariableMimeType = "json"
)

// NullValue marshals as a literal JSON null. Assign it to a
// TemplateVariable's Value when the variable must be explicitly null on
// the wire; leaving Value nil omits the key instead. The two are
// semantically distinct to the templating engine.
var NullValue = json.RawMessage("null")

// TemplateVariable is a value injected into a template placeholder during
// generation. Value accepts strings, numbers, booleans, objects, and
// arrays; nested objects enable dot-notation lookups in the template.
type TemplateVariable struct {
	// Placeholder is the token in the template, e.g. "{customer_name}".
	Placeholder string
	// Name labels the variable; defaults to Placeholder when empty.
	Name string
	// Value is the injected value. nil omits it; NullValue sends null.
	Value interface{}
	// MimeType defaults to MimeText when empty.
	MimeType VariableMimeType
	// Description is optional documentation for the variable.
	Description string
}

// GenerateRequest asks the service to generate a document from a stored
// template.
type GenerateRequest struct {
	TemplateID string
	Variables  []TemplateVariable

	Name         string
	Description  string
	OutputFormat string
	Metadata     map[string]interface{}
}

// Deliverable is a generated document artifact.
type Deliverable struct {
	ID          string
	DownloadURL string
	Message     string
}

// GenerateFromTemplate generates a document from a template, substituting
// the given variables. The resulting deliverable ID can be used as a
// DeliverableRef file source in a signing request.
func (c *Client) GenerateFromTemplate(ctx context.Context, req *GenerateRequest) (*Deliverable, error) {
	wire, err := req.buildPayload()
	if err != nil {
		return nil, err
	}

	resp, err := c.api.GenerateDeliverable(ctx, wire)
	if err != nil {
		return nil, wrapError(err)
	}
	return &Deliverable{
		ID:          resp.DeliverableID,
		DownloadURL: resp.DownloadURL,
		Message:     resp.Message,
	}, nil
}

func (r *GenerateRequest) buildPayload() (*api.GenerateRequest, error) {
	if r.TemplateID == "" {
		return nil, &BuildError{Reason: ErrMissingTemplateID}
	}

	wire := &api.GenerateRequest{
		TemplateID:   r.TemplateID,
		Name:         r.Name,
		Description:  r.Description,
		OutputFormat: r.OutputFormat,
		Metadata:     r.Metadata,
	}

	for i, v := range r.Variables {
		if v.Placeholder == "" {
			return nil, buildErr(ErrInvalidVariable, "variable %d has no placeholder", i)
		}

		name := v.Name
		if name == "" {
			name = v.Placeholder
		}
		mimeType := v.MimeType
		if mimeType == "" {
			mimeType = MimeText
		}

		var raw json.RawMessage
		if v.Value != nil {
			data, err := json.Marshal(v.Value)
			if err != nil {
				return nil, fmt.Errorf("marshal variable %s: %w", v.Placeholder, err)
			}
			raw = data
		}

		wire.Variables = append(wire.Variables, api.TemplateVariable{
			Placeholder: v.Placeholder,
			Name:        name,
			Value:       raw,
			MimeType:    string(mimeType),
			Description: v.Description,
		})
	}

	return wire, nil
}
