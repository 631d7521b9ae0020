package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wheely/backend/internal/apperr"
	"wheely/backend/internal/password"
)

func TestHashAndVerify_RoundTrip(t *testing.T) {
	digest, err := password.Hash("secret1")
	assert.NoError(t, err)
	assert.NotEmpty(t, digest)
	assert.NotEqual(t, "secret1", digest, "digest must never equal the plaintext")

	assert.True(t, password.Verify("secret1", digest))
	assert.False(t, password.Verify("secret2", digest))
}

func TestHash_ProducesDistinctDigests(t *testing.T) {
	// bcrypt self-salts, so hashing the same input twice must differ.
	first, err := password.Hash("secret1")
	assert.NoError(t, err)
	second, err := password.Hash("secret1")
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestHash_RejectsBlank(t *testing.T) {
	for _, plain := range []string{"", "   ", "\t"} {
		_, err := password.Hash(plain)
		assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	}
}

func TestVerify_FailsClosed(t *testing.T) {
	digest, err := password.Hash("secret1")
	assert.NoError(t, err)

	assert.False(t, password.Verify("", digest))
	assert.False(t, password.Verify("secret1", ""))
	assert.False(t, password.Verify("secret1", "not-a-bcrypt-digest"))
}

func TestMeetsPolicy(t *testing.T) {
	assert.True(t, password.MeetsPolicy("secret"))
	assert.True(t, password.MeetsPolicy("123456"))
	assert.False(t, password.MeetsPolicy("12345"))
	assert.False(t, password.MeetsPolicy(""))
}
