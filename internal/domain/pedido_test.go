package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidarTransicion_Permitidas(t *testing.T) {
	assert.NoError(t, ValidarTransicion(EstadoPendiente, EstadoEnviado))
	assert.NoError(t, ValidarTransicion(EstadoEnviado, EstadoRecibido))
}

func TestValidarTransicion_Rechazadas(t *testing.T) {
	casos := []struct {
		desde, hacia EstadoPedido
	}{
		{EstadoPendiente, EstadoRecibido}, // skipping ENVIADO
		{EstadoPendiente, EstadoPendiente},
		{EstadoEnviado, EstadoPendiente}, // backwards
		{EstadoEnviado, EstadoEnviado},
		{EstadoRecibido, EstadoPendiente}, // RECIBIDO is terminal
		{EstadoRecibido, EstadoEnviado},
		{EstadoRecibido, EstadoRecibido},
	}
	for _, c := range casos {
		err := ValidarTransicion(c.desde, c.hacia)
		var invalida *TransicionInvalidaError
		require.ErrorAs(t, err, &invalida, "%s → %s debe rechazarse", c.desde, c.hacia)
		assert.Equal(t, c.desde, invalida.Desde)
		assert.Equal(t, c.hacia, invalida.Hacia)
	}
}

func TestParseEstadoPedido(t *testing.T) {
	e, err := ParseEstadoPedido("ENVIADO")
	require.NoError(t, err)
	assert.Equal(t, EstadoEnviado, e)

	_, err = ParseEstadoPedido("CANCELADO")
	assert.Error(t, err)
}
