package fiscal_test

import (
	"testing"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/utils/fiscal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCPF(t *testing.T) {
	tests := []struct {
		name  string
		cpf   string
		valid bool
	}{
		{"valid plain", "52998224725", true},
		{"valid formatted", "529.982.247-25", true},
		{"valid second sample", "11144477735", true},
		{"wrong first check digit", "52998224715", false},
		{"wrong second check digit", "52998224724", false},
		{"all same digits", "11111111111", false},
		{"all zeros", "00000000000", false},
		{"too short", "5299822472", false},
		{"too long", "529982247250", false},
		{"empty", "", false},
		{"letters only", "abc.def.ghi-jk", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, fiscal.ValidateCPF(tt.cpf))
		})
	}
}

func TestValidateCNPJ(t *testing.T) {
	tests := []struct {
		name  string
		cnpj  string
		valid bool
	}{
		{"valid formatted", "11.222.333/0001-81", true},
		{"valid plain", "11222333000181", true},
		{"last digit altered", "11.222.333/0001-82", false},
		{"first check digit altered", "11.222.333/0001-71", false},
		{"all same digits", "11111111111111", false},
		{"too short", "1122233300018", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, fiscal.ValidateCNPJ(tt.cnpj))
		})
	}
}

func TestValidateTaxID(t *testing.T) {
	require.NoError(t, fiscal.ValidateTaxID("529.982.247-25", domain.Individual))
	require.NoError(t, fiscal.ValidateTaxID("11.222.333/0001-81", domain.Organization))

	// Empty tax IDs are allowed; uniqueness only applies when present.
	require.NoError(t, fiscal.ValidateTaxID("", domain.Individual))
	require.NoError(t, fiscal.ValidateTaxID("  ", domain.Organization))

	// A CPF offered for an organization must fail as a CNPJ.
	err := fiscal.ValidateTaxID("529.982.247-25", domain.Organization)
	require.ErrorIs(t, err, fiscal.ErrInvalidTaxID)

	err = fiscal.ValidateTaxID("11111111111", domain.Individual)
	require.ErrorIs(t, err, fiscal.ErrInvalidTaxID)

	err = fiscal.ValidateTaxID("52998224725", "X")
	require.ErrorIs(t, err, fiscal.ErrInvalidTaxID)
}
