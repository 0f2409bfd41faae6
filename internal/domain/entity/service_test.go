package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestService_ShortDescription_TruncatesLongText(t *testing.T) {
	service := &Service{Description: "Cuidado de ancianos a domicilio"}

	assert.Equal(t, "Cuidado de anci", service.ShortDescription())
}

func TestService_ShortDescription_KeepsShortText(t *testing.T) {
	service := &Service{Description: "Recados"}

	assert.Equal(t, "Recados", service.ShortDescription())
}

func TestService_ShortDescription_CountsRunes(t *testing.T) {
	// 16 runes with multi-byte characters; the cut must not split one.
	service := &Service{Description: "Atención añosaaa"}

	assert.Equal(t, "Atención añosaa", service.ShortDescription())
}

func TestService_DiscountedPrice(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		want  string
	}{
		{name: "round price", price: 100, want: "80.00"},
		{name: "zero price", price: 0, want: "0.00"},
		{name: "cents", price: 12.5, want: "10.00"},
		{name: "repeating decimals", price: 9.99, want: "7.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &Service{Price: tt.price}
			assert.Equal(t, tt.want, service.DiscountedPrice())
		})
	}
}

func TestService_LabelAndPath(t *testing.T) {
	id := uuid.New()
	service := &Service{ID: id, Name: "Cuidado nocturno"}

	assert.Equal(t, "Cuidado nocturno", service.Label())
	assert.Equal(t, "/services/"+id.String(), service.Path())
}

func TestCategory_IsValid(t *testing.T) {
	for _, category := range Categories() {
		assert.True(t, category.IsValid(), "category %q should be valid", category)
	}

	assert.False(t, Category("Jardinería").IsValid())
	assert.False(t, Category("").IsValid())
}
