package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Key_isDeterministicAndDistinguishesInputs(t *testing.T) {
	assert := assert.New(t)

	k1, err := Key([]byte("source a"), "fingerprint")
	assert.NoError(err)
	k2, err := Key([]byte("source a"), "fingerprint")
	assert.NoError(err)
	assert.Equal(k1, k2, "same source+config must hash identically")

	k3, err := Key([]byte("source b"), "fingerprint")
	assert.NoError(err)
	assert.NotEqual(k1, k3, "different source must hash differently")

	k4, err := Key([]byte("source a"), "other-fingerprint")
	assert.NoError(err)
	assert.NotEqual(k1, k4, "different config fingerprint must hash differently")
}
