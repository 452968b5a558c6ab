package history

import (
	"fmt"
	"sort"
	"strings"
)

var fieldLabels = map[string]string{
	"numero_processo":   "número do processo",
	"tipo":              "tipo",
	"status":            "status",
	"descricao":         "descrição",
	"data_abertura":     "data de abertura",
	"data_encerramento": "data de encerramento",
	"valor_total":       "valor total",
	"valor_estimado":    "valor estimado",
	"valor_pago":        "valor pago",
	"numero_nota":       "número da nota",
	"data_emissao":      "data de emissão",
	"data_vencimento":   "data de vencimento",
	"valor":             "valor",
	"status_pagamento":  "status do pagamento",
	"data_inicio":       "data de início",
	"data_fim":          "data de término",
	"fonte_recursos":    "fonte de recursos",
	"cnpj_fornecedor":   "CNPJ do fornecedor",
	"observacoes":       "observações",
	"secretaria":        "secretaria",
	"responsavel":       "responsável",
	"tipo_fiscal":       "tipo de fiscal",
	"matricula":         "matrícula",
}

// Label is the human readable name of a field. Unknown fields have underscores replaced by spaces.
func Label(field string) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}
	return strings.ReplaceAll(field, "_", " ")
}

// Change is a single field difference between two snapshots
type Change struct {
	Field    string
	Previous Value
	Next     Value
}

// Description renders the change for the audit trail
func (c Change) Description() string {
	label := Label(c.Field)
	switch {
	case !c.Previous.Present:
		return fmt.Sprintf("Set %s to %s", label, c.Next.Display)
	case !c.Next.Present:
		return fmt.Sprintf("Removed %s (was %s)", label, c.Previous.Display)
	default:
		return fmt.Sprintf("Changed %s from %s to %s", label, c.Previous.Display, c.Next.Display)
	}
}

// Diff compares the given fields of two snapshots. When fields is empty every
// field present in either snapshot is compared. Changes come out sorted by field name.
func Diff(previous, next Fields, fields ...string) []Change {
	if len(fields) == 0 {
		seen := make(map[string]struct{}, len(previous)+len(next))
		for f := range previous {
			seen[f] = struct{}{}
		}
		for f := range next {
			seen[f] = struct{}{}
		}
		fields = make([]string, 0, len(seen))
		for f := range seen {
			fields = append(fields, f)
		}
	}

	fields = append([]string(nil), fields...)
	sort.Strings(fields)

	changes := make([]Change, 0)
	for _, f := range fields {
		p, n := previous[f], next[f]
		if p.Equal(n) {
			continue
		}
		changes = append(changes, Change{Field: f, Previous: p, Next: n})
	}
	return changes
}
