package history

import (
	"strconv"
	"strings"

	"github.com/rafaelredel/sglc-prefeituras/internal/types"
	"github.com/shopspring/decimal"
)

// Value is a field value as stored in history: Raw goes to previous_value/new_value,
// Display is used in the description. A Value that is not Present is absent.
type Value struct {
	Raw     string
	Display string
	Present bool
}

// Fields is a snapshot of the auditable fields of a record, keyed by field name
type Fields map[string]Value

// Absent is the empty value
var Absent = Value{}

func Text(s string) Value {
	s = strings.TrimSpace(s)
	if s == "" {
		return Absent
	}
	return Value{Raw: s, Display: s, Present: true}
}

func OptionalText(s *string) Value {
	if s == nil {
		return Absent
	}
	return Text(*s)
}

// Money stores the amount with two decimals and displays it as reais
func Money(d decimal.Decimal) Value {
	return Value{Raw: types.FormatAmount(d), Display: types.FormatCurrency(d), Present: true}
}

func OptionalMoney(d *decimal.Decimal) Value {
	if d == nil {
		return Absent
	}
	return Money(*d)
}

// Date stores YYYY-MM-DD and displays dd/mm/yyyy
func Date(d types.Date) Value {
	if d.IsZero() {
		return Absent
	}
	return Value{Raw: d.String(), Display: d.Display(), Present: true}
}

func OptionalDate(d *types.Date) Value {
	if d == nil {
		return Absent
	}
	return Date(*d)
}

func Int(n int64) Value {
	s := strconv.FormatInt(n, 10)
	return Value{Raw: s, Display: s, Present: true}
}

func OptionalInt(n *int64) Value {
	if n == nil {
		return Absent
	}
	return Int(*n)
}

func (v Value) Equal(o Value) bool {
	if !v.Present && !o.Present {
		return true
	}
	return v.Present == o.Present && v.Raw == o.Raw
}

// RawPtr is the stored form, nil when absent
func (v Value) RawPtr() *string {
	if !v.Present {
		return nil
	}
	raw := v.Raw
	return &raw
}
