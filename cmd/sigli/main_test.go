package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpix/sigli/cli"
	"github.com/corpix/sigli/crypto"
	"github.com/corpix/sigli/encoding"
	"github.com/corpix/sigli/errors"
)

const (
	hex128BitPattern = `^([A-F0-9]{4}-){7}[A-F0-9]{4}\n$`
	hex256BitPattern = `^([A-F0-9]{4}-){15}[A-F0-9]{4}\n$`
)

func run(stdin string, args ...string) (string, error) {
	stdout := bytes.NewBuffer(nil)
	stderr := bytes.NewBuffer(nil)

	err := newCli(
		&Config{},
		cli.WithIO(strings.NewReader(stdin), stdout, stderr),
	).Run(append([]string{"sigli"}, args...))

	return stdout.String(), err
}

func writeFile(t *testing.T, dir string, name string, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func readFileString(t *testing.T, path string) string {
	buf, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(buf)
}

//

func TestGenkeyHex(t *testing.T) {
	out, err := run("", "genkey")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(hex256BitPattern), out)

	out, err = run("", "-a", "aes128gcm", "genkey")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(hex128BitPattern), out)
}

func TestGenkeyToFile(t *testing.T) {
	dir := t.TempDir()

	signal1 := filepath.Join(dir, "signal1.key")
	_, err := run("", "-K", "signal1", "genkey", "-o", signal1)
	require.NoError(t, err)
	assert.Len(t, readFileString(t, signal1), 66)

	raw := filepath.Join(dir, "raw.key")
	_, err = run("", "--key-format", "raw", "genkey", "--output", raw)
	require.NoError(t, err)
	assert.Len(t, readFileString(t, raw), 32)

	stat, err := os.Stat(raw)
	require.NoError(t, err)
	assert.Equal(t, keyFileMode, stat.Mode().Perm())
}

func TestGenkeyRejectsPlain1Keys(t *testing.T) {
	_, err := run("", "-K", "plain1", "genkey")
	require.Error(t, err)
	assert.True(t, errors.Is(err, encoding.ErrInvalidFormat))

	_, err = run("", "-a", "rot13", "genkey")
	require.Error(t, err)
	assert.True(t, errors.Is(err, crypto.ErrInvalidAlgorithm))
}

func TestEncryptDecryptFiles(t *testing.T) {
	var (
		dir     = t.TempDir()
		key     = filepath.Join(dir, "key.txt")
		message = writeFile(t, dir, "message.txt", "meet at the bridge, 0600.")
		sealed  = filepath.Join(dir, "cipher.txt")
		opened  = filepath.Join(dir, "opened.txt")
	)

	_, err := run("", "genkey", "-o", key)
	require.NoError(t, err)

	_, err = run("", "encrypt", "-i", message, "-I", "raw", "-o", sealed, key)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^([A-Z]{5}[ \n])*[A-Z]{1,5}\n$`), readFileString(t, sealed))

	_, err = run("", "decrypt", "-i", sealed, "-O", "raw", "-o", opened, key)
	require.NoError(t, err)
	assert.Equal(t, "meet at the bridge, 0600.", readFileString(t, opened))
}

func TestEncryptDecryptStdio(t *testing.T) {
	dir := t.TempDir()
	key := filepath.Join(dir, "key.txt")

	_, err := run("", "-a", "chacha20poly1305", "-K", "signal1", "genkey", "-o", key)
	require.NoError(t, err)

	sealed, err := run("hello world", "-a", "chacha20poly1305", "-K", "signal1", "encrypt", "-O", "hex", key)
	require.NoError(t, err)

	opened, err := run(sealed, "-a", "chacha20poly1305", "-K", "signal1", "decrypt", "-I", "hex", key)
	require.NoError(t, err)
	assert.Equal(t, "hello world", opened)

	sealed, err = run("Attack At Dawn!\n", "-a", "chacha20poly1305", "-K", "signal1", "encrypt", key)
	require.NoError(t, err)
	opened, err = run(sealed, "-a", "chacha20poly1305", "-K", "signal1", "decrypt", key)
	require.NoError(t, err)
	assert.Equal(t, "attack at dawn ", opened)

	_, err = run(sealed, "-K", "signal1", "decrypt", key)
	assert.True(t, errors.Is(err, crypto.ErrDecryptionFailed))
}

func TestEncryptWrongKeyLength(t *testing.T) {
	dir := t.TempDir()
	key := writeFile(t, dir, "key.txt", "AB01-0222-2343\n")

	_, err := run("message", "encrypt", key)
	require.Error(t, err)
	assert.True(t, errors.Is(err, crypto.ErrKeyWrongLength))
}

func TestEncryptKeyFileRequired(t *testing.T) {
	_, err := run("message", "encrypt")
	assert.True(t, errors.Is(err, ErrKeyFileRequired))

	_, err = run("message", "encrypt", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestEncryptQR(t *testing.T) {
	var (
		dir = t.TempDir()
		key = filepath.Join(dir, "key.txt")
		qr  = filepath.Join(dir, "key.png")
	)

	_, err := run("", "genkey", "-o", key, "--qr", qr)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(readFileString(t, qr), "\x89PNG"))

	qr = filepath.Join(dir, "cipher.png")
	_, err = run("short", "encrypt", "--qr", qr, key)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(readFileString(t, qr), "\x89PNG"))
}

func TestTranscode(t *testing.T) {
	out, err := run("ab01-0222-2343", "transcode", "-I", "hex", "-O", "signal1")
	require.NoError(t, err)
	assert.Equal(t, "BIQJN NJMRU H\n", out)

	_, err = run("ab01", "transcode", "-I", "hex", "-O", "base64")
	assert.True(t, errors.Is(err, encoding.ErrInvalidFormat))
}

func TestInfo(t *testing.T) {
	out, err := run("", "info")
	require.NoError(t, err)
	assert.Contains(t, out, "name: plain1")
	assert.Contains(t, out, "name: aes256gcm")
	assert.Contains(t, out, "key-size: 16")
	assert.Contains(t, out, "default: true")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	conf := writeFile(t, dir, "config.yml", "algorithm: aes128gcm\nkey-format: signal1\n")

	out, err := run("", "-c", conf, "genkey")
	require.NoError(t, err)
	assert.Len(t, out, 34)

	out, err = run("", "-c", conf, "-K", "hex", "genkey")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(hex128BitPattern), out)

	out, err = run("", "-c", conf, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "key-format: signal1")

	bad := writeFile(t, dir, "bad.yml", "key-format: plain1\n")
	_, err = run("", "-c", bad, "config", "validate")
	assert.Error(t, err)
}

func TestConfigShowDefault(t *testing.T) {
	out, err := run("", "config", "show-default")
	require.NoError(t, err)
	assert.Contains(t, out, "algorithm: aes256gcm")
	assert.Contains(t, out, "cipher-format: signal1")
}

func TestCommandRequired(t *testing.T) {
	_, err := run("")
	assert.True(t, errors.Is(err, cli.ErrCommandRequired))

	_, err = run("", "shout")
	assert.True(t, errors.Is(err, cli.ErrCommandRequired))
}

func TestVersion(t *testing.T) {
	out, err := run("", "-V")
	require.NoError(t, err)
	assert.Contains(t, out, version)
}
