package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "plain date", input: "2025-03-14", want: NewDate(2025, time.March, 14)},
		{name: "timestamp is truncated", input: "2025-03-14T22:10:00Z", want: NewDate(2025, time.March, 14)},
		{name: "surrounding spaces", input: " 2025-01-02 ", want: NewDate(2025, time.January, 2)},
		{name: "brazilian layout is rejected", input: "14/03/2025", wantErr: true},
		{name: "garbage", input: "amanha", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got.Time), "got %s", got)
		})
	}
}

func TestDateJSON(t *testing.T) {
	type payload struct {
		Opening Date  `json:"data_abertura"`
		End     *Date `json:"data_fim,omitempty"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"data_abertura":"2025-03-14"}`), &p))
	assert.Equal(t, "2025-03-14", p.Opening.String())
	assert.Nil(t, p.End)

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data_abertura":"2025-03-14"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"data_abertura":20250314}`), &p))
}

func TestDateDisplay(t *testing.T) {
	assert.Equal(t, "05/03/2025", NewDate(2025, time.March, 5).Display())
	assert.Equal(t, "", Date{}.Display())
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, time.December, 31, 15, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-12-31", d.String())

	require.NoError(t, d.Scan([]byte("2024-02-29")))
	assert.Equal(t, "2024-02-29", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))

	v, err := NewDate(2024, time.July, 1).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-07-01", v)
}
