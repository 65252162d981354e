package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"io"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/corpix/sigli/errors"
)

const (
	Aes128GcmKeySize        = 16
	Aes256GcmKeySize        = 32
	ChaCha20Poly1305KeySize = chacha20poly1305.KeySize
)

type AEAD struct {
	Rand io.Reader

	keySize int
	newAEAD func(key []byte) (cipher.AEAD, error)
}

var _ Algorithm = new(AEAD)

//

func (a *AEAD) KeySize() int { return a.keySize }

func (a *AEAD) GenerateKey() ([]byte, error) {
	key := make([]byte, a.keySize)
	_, err := io.ReadFull(a.Rand, key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read key material")
	}
	return key, nil
}

func (a *AEAD) Nonce() ([]byte, error) {
	nonce := make([]byte, NonceSize)
	_, err := io.ReadFull(a.Rand, nonce)
	if err != nil {
		return nil, errors.Wrapf(ErrEncryptionFailed, "failed to read nonce: %s", err)
	}
	return nonce, nil
}

func (a *AEAD) Encrypt(key []byte, plaintext []byte) ([]byte, error) {
	aead, err := a.cipherFor(key)
	if err != nil {
		return nil, err
	}
	nonce, err := a.Nonce()
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(plaintext)+aead.Overhead()+NonceSize)
	out = aead.Seal(out, nonce, plaintext, nil)
	return append(out, nonce...), nil
}

func (a *AEAD) Decrypt(key []byte, ciphertext []byte) ([]byte, error) {
	aead, err := a.cipherFor(key)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < NonceSize+aead.Overhead() {
		return nil, errors.Wrapf(
			ErrDecryptionFailed,
			"cipher text is %d bytes, at least %d expected",
			len(ciphertext), NonceSize+aead.Overhead(),
		)
	}

	body, nonce := ciphertext[:len(ciphertext)-NonceSize], ciphertext[len(ciphertext)-NonceSize:]
	plaintext, err := aead.Open(make([]byte, 0, len(body)), nonce, body, nil)
	if err != nil {
		return nil, errors.Wrap(ErrDecryptionFailed, err.Error())
	}
	return plaintext, nil
}

func (a *AEAD) cipherFor(key []byte) (cipher.AEAD, error) {
	if len(key) != a.keySize {
		return nil, NewKeyWrongLengthError(a.keySize, len(key))
	}
	aead, err := a.newAEAD(key)
	if err != nil {
		return nil, errors.Wrap(ErrEncryptionFailed, err.Error())
	}
	if aead.NonceSize() != NonceSize {
		return nil, errors.Errorf("unexpected nonce size %d", aead.NonceSize())
	}
	return aead, nil
}

//

func newAesGcm(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

func NewAes128Gcm(rand io.Reader) *AEAD {
	return &AEAD{Rand: rand, keySize: Aes128GcmKeySize, newAEAD: newAesGcm}
}

func NewAes256Gcm(rand io.Reader) *AEAD {
	return &AEAD{Rand: rand, keySize: Aes256GcmKeySize, newAEAD: newAesGcm}
}

func NewChaCha20Poly1305(rand io.Reader) *AEAD {
	return &AEAD{Rand: rand, keySize: ChaCha20Poly1305KeySize, newAEAD: chacha20poly1305.New}
}
