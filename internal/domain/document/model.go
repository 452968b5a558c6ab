package document

import (
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
)

const (
	DefaultType        = "geral"
	DefaultContentType = "application/octet-stream"
)

// Document is a file attached to a process. The file itself lives in object storage.
type Document struct {
	ID          string  `db:"id" json:"id"`
	ProcessID   string  `db:"processo_id" json:"processo_id"`
	Type        string  `db:"tipo_documento" json:"tipo_documento"`
	FileName    string  `db:"nome_arquivo" json:"nome_arquivo"`
	ContentType string  `db:"tipo_arquivo" json:"tipo_arquivo"`
	SizeBytes   *int64  `db:"tamanho_bytes" json:"tamanho_bytes,omitempty"`
	FileURL     *string `db:"url_arquivo" json:"url_arquivo,omitempty"`
	StorageKey  *string `db:"storage_key" json:"storage_key,omitempty"`
	Note        *string `db:"observacao" json:"observacao,omitempty"`
	UserName    *string `db:"usuario_nome" json:"usuario_nome,omitempty"`
	types.BaseModel
}
