package storage_test

import (
	"encoding/base64"
	"testing"

	"hirehub/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDataURI(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 fake"))

	ct, data, err := storage.ParseDataURI("data:application/pdf;base64," + payload)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", ct)
	assert.Equal(t, []byte("%PDF-1.4 fake"), data)
}

func TestParseDataURIBarePayload(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("hello"))

	ct, data, err := storage.ParseDataURI(payload)
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", ct)
	assert.Equal(t, []byte("hello"), data)
}

func TestParseDataURIRejectsGarbage(t *testing.T) {
	_, _, err := storage.ParseDataURI("data:application/pdf;base64")
	assert.Error(t, err)

	_, _, err = storage.ParseDataURI("data:application/pdf;base64,!!!not-base64!!!")
	assert.Error(t, err)
}
