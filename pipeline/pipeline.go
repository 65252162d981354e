// Package pipeline composes an encryption algorithm with key, input and output
// formats.
//
// Every stage works on a whole buffer and the first failing stage aborts the
// operation, no partial output is produced. Errors keep their kind, so
// errors.Is(err, encoding.ErrMalformedInput) holds for an unreadable key as
// well as for an unreadable message, the wrapping message tells them apart.
package pipeline

import (
	"github.com/corpix/sigli/crypto"
	"github.com/corpix/sigli/encoding"
	"github.com/corpix/sigli/errors"
	"github.com/corpix/sigli/log"
)

type (
	Config struct {
		Algorithm    string
		KeyFormat    string
		InputFormat  string
		OutputFormat string
	}
	Pipeline struct {
		Algorithm    crypto.Algorithm
		KeyFormat    encoding.EncodeDecoder
		InputFormat  encoding.EncodeDecoder
		OutputFormat encoding.EncodeDecoder
	}
)

//

func GenerateKey(algorithm crypto.Algorithm, keyFormat encoding.EncodeDecoder) ([]byte, error) {
	key, err := algorithm.GenerateKey()
	if err != nil {
		return nil, errors.Wrap(err, "generate key")
	}
	log.Debug().Int("bytes", len(key)).Msg("generated key")

	rawKey, err := keyFormat.Encode(key)
	if err != nil {
		return nil, errors.Wrap(err, "pack key")
	}
	return rawKey, nil
}

func Encrypt(
	algorithm crypto.Algorithm,
	keyFormat encoding.EncodeDecoder,
	inputFormat encoding.EncodeDecoder,
	outputFormat encoding.EncodeDecoder,
	rawKey []byte,
	rawInput []byte,
) ([]byte, error) {
	key, err := keyFormat.Decode(rawKey)
	if err != nil {
		return nil, errors.Wrap(err, "unpack key")
	}
	plaintext, err := inputFormat.Decode(rawInput)
	if err != nil {
		return nil, errors.Wrap(err, "unpack input")
	}
	log.Debug().
		Int("input-bytes", len(rawInput)).
		Int("plaintext-bytes", len(plaintext)).
		Msg("unpacked plain text")

	ciphertext, err := algorithm.Encrypt(key, plaintext)
	if err != nil {
		return nil, errors.Wrap(err, "encrypt")
	}
	log.Debug().Int("ciphertext-bytes", len(ciphertext)).Msg("encrypted")

	rawOutput, err := outputFormat.Encode(ciphertext)
	if err != nil {
		return nil, errors.Wrap(err, "pack output")
	}
	return rawOutput, nil
}

func Decrypt(
	algorithm crypto.Algorithm,
	keyFormat encoding.EncodeDecoder,
	inputFormat encoding.EncodeDecoder,
	outputFormat encoding.EncodeDecoder,
	rawKey []byte,
	rawInput []byte,
) ([]byte, error) {
	key, err := keyFormat.Decode(rawKey)
	if err != nil {
		return nil, errors.Wrap(err, "unpack key")
	}
	ciphertext, err := inputFormat.Decode(rawInput)
	if err != nil {
		return nil, errors.Wrap(err, "unpack input")
	}
	log.Debug().
		Int("input-bytes", len(rawInput)).
		Int("ciphertext-bytes", len(ciphertext)).
		Msg("unpacked cipher text")

	plaintext, err := algorithm.Decrypt(key, ciphertext)
	if err != nil {
		return nil, errors.Wrap(err, "decrypt")
	}
	log.Debug().Int("plaintext-bytes", len(plaintext)).Msg("decrypted")

	rawOutput, err := outputFormat.Encode(plaintext)
	if err != nil {
		return nil, errors.Wrap(err, "pack output")
	}
	return rawOutput, nil
}

// Transcode rewrites raw input from one format into another without encryption.
func Transcode(inputFormat encoding.EncodeDecoder, outputFormat encoding.EncodeDecoder, rawInput []byte) ([]byte, error) {
	buf, err := inputFormat.Decode(rawInput)
	if err != nil {
		return nil, errors.Wrap(err, "unpack input")
	}
	log.Debug().Int("bytes", len(buf)).Msg("unpacked input")

	rawOutput, err := outputFormat.Encode(buf)
	if err != nil {
		return nil, errors.Wrap(err, "pack output")
	}
	return rawOutput, nil
}

//

func (p *Pipeline) GenerateKey() ([]byte, error) {
	return GenerateKey(p.Algorithm, p.KeyFormat)
}

func (p *Pipeline) Encrypt(rawKey []byte, rawInput []byte) ([]byte, error) {
	return Encrypt(p.Algorithm, p.KeyFormat, p.InputFormat, p.OutputFormat, rawKey, rawInput)
}

func (p *Pipeline) Decrypt(rawKey []byte, rawInput []byte) ([]byte, error) {
	return Decrypt(p.Algorithm, p.KeyFormat, p.InputFormat, p.OutputFormat, rawKey, rawInput)
}

func (p *Pipeline) Transcode(rawInput []byte) ([]byte, error) {
	return Transcode(p.InputFormat, p.OutputFormat, rawInput)
}

// New resolves the configured names, empty names fall back to the defaults
// of an encrypt operation.
func New(c Config) (*Pipeline, error) {
	var (
		p   = &Pipeline{}
		err error
	)

	if c.Algorithm == "" {
		c.Algorithm = string(crypto.DefaultAlgorithm)
	}
	if c.KeyFormat == "" {
		c.KeyFormat = string(encoding.DefaultKeyFormat)
	}
	if c.InputFormat == "" {
		c.InputFormat = string(encoding.DefaultPlainFormat)
	}
	if c.OutputFormat == "" {
		c.OutputFormat = string(encoding.DefaultCipherFormat)
	}

	p.Algorithm, err = crypto.NewAlgorithm(c.Algorithm)
	if err != nil {
		return nil, errors.Wrap(err, "algorithm")
	}
	p.KeyFormat, err = encoding.NewEncodeDecoder(c.KeyFormat)
	if err != nil {
		return nil, errors.Wrap(err, "key format")
	}
	p.InputFormat, err = encoding.NewEncodeDecoder(c.InputFormat)
	if err != nil {
		return nil, errors.Wrap(err, "input format")
	}
	p.OutputFormat, err = encoding.NewEncodeDecoder(c.OutputFormat)
	if err != nil {
		return nil, errors.Wrap(err, "output format")
	}

	log.Debug().
		Str("algorithm", c.Algorithm).
		Str("key-format", c.KeyFormat).
		Str("input-format", c.InputFormat).
		Str("output-format", c.OutputFormat).
		Msg("pipeline")

	return p, nil
}
