package main

import (
	"io"
	"os"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/corpix/sigli/cli"
	"github.com/corpix/sigli/errors"
	"github.com/corpix/sigli/log"
)

const (
	keyFileMode    os.FileMode = 0o600
	outputFileMode os.FileMode = 0o644

	qrSize = 256
)

func readFile(path string) ([]byte, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %q", path)
	}
	return buf, nil
}

// readInput reads the whole file or, for an empty path, the whole stdin.
func readInput(ctx *cli.Context, path string) ([]byte, error) {
	if path != "" {
		return readFile(path)
	}
	buf, err := io.ReadAll(ctx.App.Reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read stdin")
	}
	log.Debug().Int("bytes", len(buf)).Msg("read stdin")
	return buf, nil
}

func writeOutput(ctx *cli.Context, path string, buf []byte, mode os.FileMode) error {
	if path == "" {
		_, err := ctx.App.Writer.Write(buf)
		return err
	}
	err := os.WriteFile(path, buf, mode)
	if err != nil {
		return errors.Wrapf(err, "failed to write %q", path)
	}
	log.Debug().Str("path", path).Int("bytes", len(buf)).Msg("wrote output")
	return nil
}

func writeQR(path string, buf []byte) error {
	if path == "" {
		return nil
	}
	err := qrcode.WriteFile(string(buf), qrcode.Medium, qrSize, path)
	if err != nil {
		return errors.Wrapf(err, "failed to write qr code %q", path)
	}
	return nil
}
