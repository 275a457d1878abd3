package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotienda/internal/domain"
	apperror "gotienda/internal/errors"
	"gotienda/internal/pkg/validation"
)

func TestStruct_Valid(t *testing.T) {
	in := domain.SaleInput{
		ProductID:     "6f1c1d4e-6a53-4f1e-9d8e-1f2a3b4c5d6e",
		Quantity:      2,
		UnitPrice:     1500,
		PaymentMethod: domain.PaymentMercadoPago,
	}
	assert.NoError(t, validation.Struct(in))
}

func TestStruct_ReportsJSONFieldNames(t *testing.T) {
	err := validation.Struct(domain.SaleInput{PaymentMethod: "cheque"})

	var vErr *apperror.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "product_id")
	assert.Contains(t, vErr.Fields, "quantity")
	assert.Contains(t, vErr.Fields, "unit_price")
	assert.Contains(t, vErr.Fields["payment_method"], "efectivo")
}

func TestStruct_SellerLinks(t *testing.T) {
	in := domain.SellerInput{
		Name:      "Proveedor",
		Specialty: "Zapatillas",
		Links: []domain.SellerLinkInput{
			{Name: "Catálogo", URL: "https://catalogo.example/zapas"},
			{Name: "Insta", URL: "no es url"},
			{Name: "", URL: "https://sin-nombre.example"},
		},
	}

	err := validation.Struct(in)

	var vErr *apperror.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "URL inválida", vErr.Fields["links[1].url"])
	assert.Equal(t, "campo obrigatório", vErr.Fields["links[2].name"])
	assert.NotContains(t, vErr.Fields, "links[0].url")
}
