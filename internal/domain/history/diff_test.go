package history

import (
	"testing"

	"github.com/rafaelredel/sglc-prefeituras/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffNoChanges(t *testing.T) {
	snapshot := Fields{
		"objeto":      Text("Aquisição de merenda escolar"),
		"valor_total": Money(decimal.RequireFromString("1500.5")),
	}
	assert.Empty(t, Diff(snapshot, snapshot))
	assert.Empty(t, Diff(Fields{}, Fields{}))
}

func TestDiffDescriptions(t *testing.T) {
	previous := Fields{
		"valor_total":   Money(decimal.RequireFromString("1000")),
		"fornecedor":    Text("Alimentos Bom Preço LTDA"),
		"data_abertura": Absent,
	}
	next := Fields{
		"valor_total":   Money(decimal.RequireFromString("1500.5")),
		"fornecedor":    Absent,
		"data_abertura": Date(types.NewDate(2025, 3, 14)),
	}

	changes := Diff(previous, next)
	require.Len(t, changes, 3)

	byField := map[string]Change{}
	for _, c := range changes {
		byField[c.Field] = c
	}

	assert.Equal(t, "Changed valor total from R$ 1.000,00 to R$ 1.500,50", byField["valor_total"].Description())
	assert.Equal(t, "Removed fornecedor (was Alimentos Bom Preço LTDA)", byField["fornecedor"].Description())
	assert.Equal(t, "Set data de abertura to 14/03/2025", byField["data_abertura"].Description())

	assert.Equal(t, "1500.50", byField["valor_total"].Next.Raw)
	assert.Equal(t, "2025-03-14", byField["data_abertura"].Next.Raw)
}

func TestDiffRestrictedFields(t *testing.T) {
	previous := Fields{"status": Text("em_aberto"), "objeto": Text("A")}
	next := Fields{"status": Text("homologada"), "objeto": Text("B")}

	changes := Diff(previous, next, "status")
	require.Len(t, changes, 1)
	assert.Equal(t, "status", changes[0].Field)
}

func TestDiffIgnoresBlankText(t *testing.T) {
	previous := Fields{"observacoes": OptionalText(nil)}
	blank := "   "
	next := Fields{"observacoes": OptionalText(&blank)}
	assert.Empty(t, Diff(previous, next))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "número do processo", Label("numero_processo"))
	assert.Equal(t, "forma pagamento", Label("forma_pagamento"))
}
