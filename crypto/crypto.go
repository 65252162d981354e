package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"

	"github.com/corpix/sigli/errors"
	"github.com/corpix/sigli/reflect"
)

type (
	// Algorithm seals and opens short messages with a symmetric key.
	// Cipher text layout is the sealed body (with authentication tag)
	// followed by the NonceSize bytes long nonce.
	Algorithm interface {
		KeySize() int
		GenerateKey() ([]byte, error)
		Encrypt(key []byte, plaintext []byte) ([]byte, error)
		Decrypt(key []byte, ciphertext []byte) ([]byte, error)
	}
	AlgorithmType string

	KeyWrongLengthError struct {
		Expected int
		Actual   int
	}
)

const (
	AlgorithmTypeAes128Gcm        AlgorithmType = "aes128gcm"
	AlgorithmTypeAes256Gcm        AlgorithmType = "aes256gcm"
	AlgorithmTypeChaCha20Poly1305 AlgorithmType = "chacha20poly1305"

	DefaultAlgorithm = AlgorithmTypeAes256Gcm

	NonceSize = 12
)

var (
	DefaultRand io.Reader = rand.Reader

	ErrKeyWrongLength   = errors.New("key wrong length")
	ErrEncryptionFailed = errors.New("encryption failed")
	ErrDecryptionFailed = errors.New("decryption failed")
	ErrInvalidAlgorithm = errors.New("invalid algorithm")

	keySizes = map[AlgorithmType]int{
		AlgorithmTypeAes128Gcm:        Aes128GcmKeySize,
		AlgorithmTypeAes256Gcm:        Aes256GcmKeySize,
		AlgorithmTypeChaCha20Poly1305: ChaCha20Poly1305KeySize,
	}
)

//

func (e *KeyWrongLengthError) Error() string {
	return fmt.Sprintf("key wrong length, expected %d bytes, got %d", e.Expected, e.Actual)
}

func NewKeyWrongLengthError(expected, actual int) error {
	return errors.Mark(&KeyWrongLengthError{Expected: expected, Actual: actual}, ErrKeyWrongLength)
}

//

func NewAlgorithm(name string) (Algorithm, error) {
	switch AlgorithmType(strings.ToLower(name)) {
	case AlgorithmTypeAes128Gcm:
		return NewAes128Gcm(DefaultRand), nil
	case AlgorithmTypeAes256Gcm:
		return NewAes256Gcm(DefaultRand), nil
	case AlgorithmTypeChaCha20Poly1305:
		return NewChaCha20Poly1305(DefaultRand), nil
	default:
		return nil, errors.Wrapf(ErrInvalidAlgorithm, "unsupported algorithm %q", name)
	}
}

func MustNewAlgorithm(name string) Algorithm {
	a, err := NewAlgorithm(name)
	if err != nil {
		panic(err)
	}
	return a
}

func AlgorithmNames() []string {
	return reflect.MapSortedKeys(reflect.ValueOf(keySizes))
}

// KeySize reports key length in bytes for the named algorithm, zero if unknown.
func KeySize(name string) int {
	return keySizes[AlgorithmType(strings.ToLower(name))]
}
