package nats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClient_InvalidAddress(t *testing.T) {
	client, err := NewClient("nats://127.0.0.1:1")

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to NATS server")
}

func TestClose_NilConn(t *testing.T) {
	c := &Client{}
	assert.NotPanics(t, c.Close)
}
