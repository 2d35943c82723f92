package turbosign

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRecipients = []Recipient{
	{Name: "John Doe", Email: "john@example.com", SigningOrder: 1},
	{Name: "Jane Roe", Email: "jane@example.com", SigningOrder: 2},
}

func TestCoordinateField_DefaultSizes(t *testing.T) {
	tests := []struct {
		fieldType  FieldType
		wantWidth  int
		wantHeight int
	}{
		{FieldSignature, 200, 50},
		{FieldInitial, 100, 40},
		{FieldDate, 150, 30},
		{FieldText, 200, 30},
		{FieldFullName, 200, 30},
		{FieldFirstName, 150, 30},
		{FieldLastName, 150, 30},
		{FieldTitle, 200, 30},
		{FieldCompany, 200, 30},
		{FieldEmail, 200, 30},
		{FieldCheckbox, 20, 20},
	}

	res := newResolver(testRecipients)
	for _, tt := range tests {
		t.Run(string(tt.fieldType), func(t *testing.T) {
			field := CoordinateField{
				Type:      tt.fieldType,
				Page:      1,
				X:         100,
				Y:         500,
				Recipient: ByEmail("john@example.com"),
			}
			wire, err := field.resolve(res)
			require.NoError(t, err)
			require.NotNil(t, wire.Width)
			require.NotNil(t, wire.Height)
			assert.Equal(t, tt.wantWidth, *wire.Width)
			assert.Equal(t, tt.wantHeight, *wire.Height)
		})
	}
}

func TestCoordinateField_ExplicitZeroHonored(t *testing.T) {
	res := newResolver(testRecipients)
	field := CoordinateField{
		Type:      FieldSignature,
		Page:      1,
		X:         100,
		Y:         500,
		Width:     Int(0),
		Recipient: ByEmail("john@example.com"),
	}
	wire, err := field.resolve(res)
	require.NoError(t, err)
	assert.Equal(t, 0, *wire.Width, "explicit zero width must not be replaced by the default")
	assert.Equal(t, 50, *wire.Height, "unset height still defaults")
}

func TestCoordinateField_Validation(t *testing.T) {
	res := newResolver(testRecipients)
	tests := []struct {
		name     string
		field    CoordinateField
		sentinel error
	}{
		{
			name:     "unknown type",
			field:    CoordinateField{Type: "stamp", Page: 1, Recipient: ByEmail("john@example.com")},
			sentinel: ErrInvalidFieldType,
		},
		{
			name:     "page zero",
			field:    CoordinateField{Type: FieldDate, Page: 0, Recipient: ByEmail("john@example.com")},
			sentinel: ErrInvalidField,
		},
		{
			name:     "negative coordinate",
			field:    CoordinateField{Type: FieldDate, Page: 1, X: -5, Recipient: ByEmail("john@example.com")},
			sentinel: ErrInvalidField,
		},
		{
			name:     "negative width",
			field:    CoordinateField{Type: FieldDate, Page: 1, Width: Int(-1), Recipient: ByEmail("john@example.com")},
			sentinel: ErrInvalidField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.field.resolve(res)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel), "want %v, got %v", tt.sentinel, err)
			assert.True(t, IsBuildError(err))
		})
	}
}

func TestRecipientRef_Resolution(t *testing.T) {
	res := newResolver(testRecipients)

	t.Run("by email", func(t *testing.T) {
		email, err := res.recipientEmail(ByEmail("jane@example.com"))
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", email)
	})

	t.Run("by index", func(t *testing.T) {
		email, err := res.recipientEmail(ByIndex(0))
		require.NoError(t, err)
		assert.Equal(t, "john@example.com", email)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := res.recipientEmail(ByEmail("ghost@example.com"))
		assert.ErrorIs(t, err, ErrRecipientNotFound)
	})

	t.Run("index out of range", func(t *testing.T) {
		_, err := res.recipientEmail(ByIndex(7))
		assert.ErrorIs(t, err, ErrRecipientNotFound)
	})

	t.Run("zero value ref", func(t *testing.T) {
		_, err := res.recipientEmail(RecipientRef{})
		assert.ErrorIs(t, err, ErrRecipientNotFound)
	})
}

func TestAnchorField_Resolve(t *testing.T) {
	res := newResolver(testRecipients)

	t.Run("defaults", func(t *testing.T) {
		field := AnchorField{
			Type:      FieldSignature,
			Anchor:    "{Signature1}",
			Recipient: ByIndex(1),
		}
		wire, err := field.resolve(res)
		require.NoError(t, err)

		assert.Equal(t, "jane@example.com", wire.RecipientEmail)
		assert.Nil(t, wire.Page, "anchor fields carry no coordinates")
		require.NotNil(t, wire.Template)
		assert.Equal(t, "{Signature1}", wire.Template.Anchor)
		assert.Equal(t, "replace", wire.Template.Placement)
		require.NotNil(t, wire.Template.Size)
		assert.Equal(t, 200, wire.Template.Size.Width)
		assert.Equal(t, 50, wire.Template.Size.Height)
	})

	t.Run("explicit size and placement", func(t *testing.T) {
		field := AnchorField{
			Type:       FieldDate,
			SearchText: "Signed on:",
			Placement:  PlaceAfter,
			Size:       &Size{Width: 90, Height: 25},
			Offset:     &Offset{X: 10, Y: 0},
			Recipient:  ByEmail("john@example.com"),
		}
		wire, err := field.resolve(res)
		require.NoError(t, err)
		assert.Equal(t, "Signed on:", wire.Template.SearchText)
		assert.Equal(t, "after", wire.Template.Placement)
		assert.Equal(t, 90, wire.Template.Size.Width)
		assert.Equal(t, 25, wire.Template.Size.Height)
		require.NotNil(t, wire.Template.Offset)
		assert.Equal(t, 10, wire.Template.Offset.X)
	})

	t.Run("anchor and search text together", func(t *testing.T) {
		field := AnchorField{
			Type:       FieldDate,
			Anchor:     "{Date}",
			SearchText: "Signed on:",
			Recipient:  ByEmail("john@example.com"),
		}
		_, err := field.resolve(res)
		assert.ErrorIs(t, err, ErrMixedPositioning)
	})

	t.Run("neither anchor nor search text", func(t *testing.T) {
		field := AnchorField{
			Type:      FieldDate,
			Recipient: ByEmail("john@example.com"),
		}
		_, err := field.resolve(res)
		assert.ErrorIs(t, err, ErrInvalidField)
	})
}

func TestFieldOptions_Applied(t *testing.T) {
	res := newResolver(testRecipients)
	field := CoordinateField{
		Type:      FieldCheckbox,
		Page:      2,
		X:         40,
		Y:         60,
		Recipient: ByIndex(0),
		Options: FieldOptions{
			DefaultValue:    "true",
			Readonly:        true,
			Required:        true,
			BackgroundColor: "#ffffcc",
		},
	}
	wire, err := field.resolve(res)
	require.NoError(t, err)
	assert.Equal(t, "true", wire.DefaultValue)
	assert.True(t, wire.IsReadonly)
	assert.True(t, wire.Required)
	assert.Equal(t, "#ffffcc", wire.BackgroundColor)
	assert.False(t, wire.IsMultiline)
}
