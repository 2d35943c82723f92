package turbosign

import (
	"github.com/turbodocx/turbosign-go/internal/api"
)

// FieldType identifies the kind of form field placed on a document.
type FieldType string

// Supported field types.
const (
	FieldSignature FieldType = "signature"
	FieldInitial   FieldType = "initial"
	FieldDate      FieldType = "date"
	FieldText      FieldType = "text"
	FieldFullName  FieldType = "full_name"
	FieldFirstName FieldType = "first_name"
	FieldLastName  FieldType = "last_name"
	FieldTitle     FieldType = "title"
	FieldCompany   FieldType = "company"
	FieldEmail     FieldType = "email"
	FieldCheckbox  FieldType = "checkbox"
)

// defaultSizes maps each field type to the width/height applied when the
// caller does not size a field explicitly. An explicit zero is kept.
var defaultSizes = map[FieldType]Size{
	FieldSignature: {Width: 200, Height: 50},
	FieldInitial:   {Width: 100, Height: 40},
	FieldDate:      {Width: 150, Height: 30},
	FieldText:      {Width: 200, Height: 30},
	FieldFullName:  {Width: 200, Height: 30},
	FieldFirstName: {Width: 150, Height: 30},
	FieldLastName:  {Width: 150, Height: 30},
	FieldTitle:     {Width: 200, Height: 30},
	FieldCompany:   {Width: 200, Height: 30},
	FieldEmail:     {Width: 200, Height: 30},
	FieldCheckbox:  {Width: 20, Height: 20},
}

// Placement positions an anchored field relative to its matched text.
type Placement string

// Anchor placements.
const (
	PlaceReplace Placement = "replace"
	PlaceBefore  Placement = "before"
	PlaceAfter   Placement = "after"
	PlaceAbove   Placement = "above"
	PlaceBelow   Placement = "below"
)

// Size is a field width/height in document pixels.
type Size struct {
	Width  int
	Height int
}

// Offset shifts an anchored field from its computed position.
type Offset struct {
	X int
	Y int
}

// RecipientRef identifies which recipient fills a field, either by email
// address or by position in the request's recipient list. Construct one
// with ByEmail or ByIndex.
type RecipientRef struct {
	email   string
	index   int
	byIndex bool
}

// ByEmail references a recipient by email address.
func ByEmail(email string) RecipientRef {
	return RecipientRef{email: email}
}

// ByIndex references a recipient by zero-based position in the request's
// recipient list.
func ByIndex(index int) RecipientRef {
	return RecipientRef{index: index, byIndex: true}
}

// Field is a form field placed on the document, either a CoordinateField
// or an AnchorField. A field is exactly one of the two; the type system
// rules out carrying both positioning modes at once.
type Field interface {
	// resolve produces the wire field, applying default sizing and
	// recipient lookup.
	resolve(r *resolver) (api.Field, error)
}

// FieldOptions are the attributes shared by both positioning modes.
type FieldOptions struct {
	// DefaultValue pre-fills the field. For checkboxes use "true"/"false".
	DefaultValue string
	// Multiline renders a text field across multiple lines.
	Multiline bool
	// Readonly makes the field non-editable.
	Readonly bool
	// Required forces the recipient to complete the field.
	Required bool
	// BackgroundColor is a CSS color for the field background.
	BackgroundColor string
}

// CoordinateField positions a field by page number and pixel coordinates.
// Width and Height default from the per-type size table when nil; a
// pointer to zero is sent as-is.
type CoordinateField struct {
	Type      FieldType
	Page      int // 1-indexed
	X         int
	Y         int
	Width     *int
	Height    *int
	Recipient RecipientRef
	Options   FieldOptions
}

// AnchorField positions a field by matching text in the document. The
// server computes the position; the client supplies the anchor text,
// placement, and an optional explicit size.
type AnchorField struct {
	Type FieldType
	// Anchor is a placeholder pattern such as "{Signature1}".
	Anchor string
	// SearchText matches arbitrary document text instead of a placeholder.
	SearchText string
	Placement  Placement
	Size       *Size
	Offset     *Offset
	// CaseSensitive makes the text match case sensitive.
	CaseSensitive bool
	// UseRegex treats Anchor/SearchText as a regular expression.
	UseRegex  bool
	Recipient RecipientRef
	Options   FieldOptions
}

// resolver resolves recipient references against one request's recipient
// list. Lookup is by email first, then by index.
type resolver struct {
	recipients []Recipient
	byEmail    map[string]string
}

func newResolver(recipients []Recipient) *resolver {
	byEmail := make(map[string]string, len(recipients))
	for _, r := range recipients {
		byEmail[r.Email] = r.Email
	}
	return &resolver{recipients: recipients, byEmail: byEmail}
}

func (r *resolver) recipientEmail(ref RecipientRef) (string, error) {
	if ref.email != "" {
		if email, ok := r.byEmail[ref.email]; ok {
			return email, nil
		}
		return "", buildErr(ErrRecipientNotFound, "no recipient with email %q", ref.email)
	}
	if ref.byIndex {
		if ref.index >= 0 && ref.index < len(r.recipients) {
			return r.recipients[ref.index].Email, nil
		}
		return "", buildErr(ErrRecipientNotFound, "recipient index %d out of range", ref.index)
	}
	return "", buildErr(ErrRecipientNotFound, "field has no recipient reference")
}

func validFieldType(t FieldType) bool {
	_, ok := defaultSizes[t]
	return ok
}

// sizeOrDefault fills unset dimensions from the per-type table. Explicit
// zeroes pass through untouched.
func sizeOrDefault(t FieldType, width, height *int) (int, int) {
	def := defaultSizes[t]
	w, h := def.Width, def.Height
	if width != nil {
		w = *width
	}
	if height != nil {
		h = *height
	}
	return w, h
}

func (f CoordinateField) resolve(r *resolver) (api.Field, error) {
	if !validFieldType(f.Type) {
		return api.Field{}, buildErr(ErrInvalidFieldType, "%q", f.Type)
	}
	if f.Page < 1 {
		return api.Field{}, buildErr(ErrInvalidField, "page must be >= 1, got %d", f.Page)
	}
	if f.X < 0 || f.Y < 0 {
		return api.Field{}, buildErr(ErrInvalidField, "coordinates must be non-negative, got (%d,%d)", f.X, f.Y)
	}
	if f.Width != nil && *f.Width < 0 {
		return api.Field{}, buildErr(ErrInvalidField, "width must be non-negative, got %d", *f.Width)
	}
	if f.Height != nil && *f.Height < 0 {
		return api.Field{}, buildErr(ErrInvalidField, "height must be non-negative, got %d", *f.Height)
	}

	email, err := r.recipientEmail(f.Recipient)
	if err != nil {
		return api.Field{}, err
	}

	w, h := sizeOrDefault(f.Type, f.Width, f.Height)
	page, x, y := f.Page, f.X, f.Y
	wire := api.Field{
		Type:           string(f.Type),
		Page:           &page,
		X:              &x,
		Y:              &y,
		Width:          &w,
		Height:         &h,
		RecipientEmail: email,
	}
	f.Options.apply(&wire)
	return wire, nil
}

func (f AnchorField) resolve(r *resolver) (api.Field, error) {
	if !validFieldType(f.Type) {
		return api.Field{}, buildErr(ErrInvalidFieldType, "%q", f.Type)
	}
	if f.Anchor == "" && f.SearchText == "" {
		return api.Field{}, buildErr(ErrInvalidField, "anchor field needs Anchor or SearchText")
	}
	if f.Anchor != "" && f.SearchText != "" {
		return api.Field{}, buildErr(ErrMixedPositioning, "set Anchor or SearchText, not both")
	}

	email, err := r.recipientEmail(f.Recipient)
	if err != nil {
		return api.Field{}, err
	}

	placement := f.Placement
	if placement == "" {
		placement = PlaceReplace
	}

	var size Size
	if f.Size != nil {
		size = *f.Size
	} else {
		size = defaultSizes[f.Type]
	}

	anchor := &api.TemplateAnchor{
		Anchor:        f.Anchor,
		SearchText:    f.SearchText,
		Placement:     string(placement),
		Size:          &api.Size{Width: size.Width, Height: size.Height},
		CaseSensitive: f.CaseSensitive,
		UseRegex:      f.UseRegex,
	}
	if f.Offset != nil {
		anchor.Offset = &api.Offset{X: f.Offset.X, Y: f.Offset.Y}
	}

	wire := api.Field{
		Type:           string(f.Type),
		RecipientEmail: email,
		Template:       anchor,
	}
	f.Options.apply(&wire)
	return wire, nil
}

func (o FieldOptions) apply(wire *api.Field) {
	wire.DefaultValue = o.DefaultValue
	wire.IsMultiline = o.Multiline
	wire.IsReadonly = o.Readonly
	wire.Required = o.Required
	wire.BackgroundColor = o.BackgroundColor
}

// Int returns a pointer to v, for explicitly sizing a field. Int(0) is an
// explicit zero, not "use the default".
func Int(v int) *int {
	return &v
}
