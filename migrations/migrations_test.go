package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(Postgres, PostgresDir+"/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	var previous int64
	for _, name := range files {
		version, err := goose.NumericComponent(name)
		require.NoError(t, err, name)
		assert.Greater(t, version, previous, "versions must increase: %s", name)
		previous = version

		content, err := fs.ReadFile(Postgres, name)
		require.NoError(t, err)
		assert.True(t, strings.Contains(string(content), "-- +goose Up"), "missing up section: %s", name)
		assert.True(t, strings.Contains(string(content), "-- +goose Down"), "missing down section: %s", name)
	}
}

func TestEmbeddedMigrationsCreateRequiredTables(t *testing.T) {
	var all strings.Builder
	files, err := fs.Glob(Postgres, PostgresDir+"/*.sql")
	require.NoError(t, err)
	for _, name := range files {
		content, err := fs.ReadFile(Postgres, name)
		require.NoError(t, err)
		all.Write(content)
	}

	for _, table := range []string{
		"tenants",
		"users",
		"processos_administrativos",
		"process_sequences",
		"processo_historico",
		"processo_financeiro",
		"processo_notas_fiscais",
		"processo_pagamentos",
		"processo_documentos",
		"processo_fiscais",
		"processo_fiscalizacao",
		"processo_observacoes",
	} {
		assert.Contains(t, all.String(), "CREATE TABLE IF NOT EXISTS "+table+" ", table)
	}
}
