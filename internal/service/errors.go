package service

import (
	"errors"
	"fmt"
)

// ErrCredencialesInvalidas maps to 401 in the error handler. The message is
// identical for unknown user and wrong password.
var ErrCredencialesInvalidas = errors.New("credenciales invalidas")

// NoEncontradoError maps to 404 in the error handler.
type NoEncontradoError struct {
	Recurso string
	ID      int64
}

func (e *NoEncontradoError) Error() string {
	return fmt.Sprintf("%s con id %d no encontrado", e.Recurso, e.ID)
}

func noEncontrado(recurso string, id int64) error {
	return &NoEncontradoError{Recurso: recurso, ID: id}
}
