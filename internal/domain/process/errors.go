package process

import (
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
)

func NewNotFoundError(id string) error {
	return ierr.NewError("process not found").
		WithHintf("Process not found for id: %s", id).
		WithReportableDetails(map[string]any{"process_id": id}).
		Mark(ierr.ErrNotFound)
}
