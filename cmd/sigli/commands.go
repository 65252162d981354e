package main

import (
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/corpix/sigli/cli"
	"github.com/corpix/sigli/crypto"
	"github.com/corpix/sigli/encoding"
	"github.com/corpix/sigli/errors"
	"github.com/corpix/sigli/pipeline"
)

type (
	formatInfo struct {
		Name        string `yaml:"name"`
		Key         bool   `yaml:"key"`
		Description string `yaml:"description"`
	}
	algorithmInfo struct {
		Name    string `yaml:"name"`
		KeySize int    `yaml:"key-size"`
		Default bool   `yaml:"default,omitempty"`
	}
	info struct {
		Formats    []formatInfo    `yaml:"formats"`
		Algorithms []algorithmInfo `yaml:"algorithms"`
	}
)

var ErrKeyFileRequired = errors.New("key file required")

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}

func formatFlags(inputDefault, outputDefault encoding.EncodeDecoderType) cli.Flags {
	return cli.Flags{
		&cli.PathFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Usage:   "read input from file instead of stdin",
		},
		&cli.StringFlag{
			Name:        "input-format",
			Aliases:     []string{"I"},
			Usage:       "input format, one of " + joinNames(encoding.Names()),
			DefaultText: string(inputDefault),
		},
		&cli.PathFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "write output to file instead of stdout",
		},
		&cli.StringFlag{
			Name:        "output-format",
			Aliases:     []string{"O"},
			Usage:       "output format, one of " + joinNames(encoding.Names()),
			DefaultText: string(outputDefault),
		},
	}
}

func qrFlag() cli.Flag {
	return &cli.PathFlag{
		Name:  "qr",
		Usage: "also write the output as a QR code PNG image to file",
	}
}

func stringOr(ctx *cli.Context, name string, fallback string) string {
	if ctx.IsSet(name) {
		return ctx.String(name)
	}
	return fallback
}

// newPipeline resolves command flags over configuration values.
func newPipeline(ctx *cli.Context, conf *Config, inputDefault, outputDefault string) (*pipeline.Pipeline, error) {
	return pipeline.New(pipeline.Config{
		Algorithm:    conf.Algorithm,
		KeyFormat:    conf.KeyFormat,
		InputFormat:  stringOr(ctx, "input-format", inputDefault),
		OutputFormat: stringOr(ctx, "output-format", outputDefault),
	})
}

func readKeyFile(ctx *cli.Context) ([]byte, error) {
	path := ctx.Args().First()
	if path == "" {
		return nil, ErrKeyFileRequired
	}
	return readFile(path)
}

//

func genkeyCommand(conf *Config) *cli.Command {
	return &cli.Command{
		Name:    "genkey",
		Aliases: []string{"g"},
		Usage:   "Generate a random key for the selected algorithm",
		Flags: cli.Flags{
			&cli.PathFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write key to file instead of stdout",
			},
			qrFlag(),
		},
		Action: func(ctx *cli.Context) error {
			p, err := pipeline.New(pipeline.Config{
				Algorithm: conf.Algorithm,
				KeyFormat: conf.KeyFormat,
			})
			if err != nil {
				return err
			}

			key, err := p.GenerateKey()
			if err != nil {
				return err
			}

			err = writeOutput(ctx, ctx.Path("output"), key, keyFileMode)
			if err != nil {
				return err
			}
			return writeQR(ctx.Path("qr"), key)
		},
	}
}

func encryptCommand(conf *Config) *cli.Command {
	return &cli.Command{
		Name:      "encrypt",
		Aliases:   []string{"e"},
		Usage:     "Encrypt plain text with a key from KEY_FILE",
		ArgsUsage: "KEY_FILE",
		Flags:     append(formatFlags(encoding.DefaultPlainFormat, encoding.DefaultCipherFormat), qrFlag()),
		Action: func(ctx *cli.Context) error {
			p, err := newPipeline(ctx, conf, conf.PlainFormat, conf.CipherFormat)
			if err != nil {
				return err
			}
			key, err := readKeyFile(ctx)
			if err != nil {
				return err
			}
			input, err := readInput(ctx, ctx.Path("input"))
			if err != nil {
				return err
			}

			output, err := p.Encrypt(key, input)
			if err != nil {
				return err
			}

			err = writeOutput(ctx, ctx.Path("output"), output, outputFileMode)
			if err != nil {
				return err
			}
			return writeQR(ctx.Path("qr"), output)
		},
	}
}

func decryptCommand(conf *Config) *cli.Command {
	return &cli.Command{
		Name:      "decrypt",
		Aliases:   []string{"d"},
		Usage:     "Decrypt cipher text with a key from KEY_FILE",
		ArgsUsage: "KEY_FILE",
		Flags:     formatFlags(encoding.DefaultCipherFormat, encoding.DefaultPlainFormat),
		Action: func(ctx *cli.Context) error {
			p, err := newPipeline(ctx, conf, conf.CipherFormat, conf.PlainFormat)
			if err != nil {
				return err
			}
			key, err := readKeyFile(ctx)
			if err != nil {
				return err
			}
			input, err := readInput(ctx, ctx.Path("input"))
			if err != nil {
				return err
			}

			output, err := p.Decrypt(key, input)
			if err != nil {
				return err
			}
			return writeOutput(ctx, ctx.Path("output"), output, outputFileMode)
		},
	}
}

func transcodeCommand(conf *Config) *cli.Command {
	return &cli.Command{
		Name:    "transcode",
		Aliases: []string{"t"},
		Usage:   "Convert input between formats without encryption",
		Flags:   formatFlags(encoding.DefaultPlainFormat, encoding.DefaultCipherFormat),
		Action: func(ctx *cli.Context) error {
			p, err := newPipeline(ctx, conf, conf.PlainFormat, conf.CipherFormat)
			if err != nil {
				return err
			}
			input, err := readInput(ctx, ctx.Path("input"))
			if err != nil {
				return err
			}

			output, err := p.Transcode(input)
			if err != nil {
				return err
			}
			return writeOutput(ctx, ctx.Path("output"), output, outputFileMode)
		},
	}
}

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:  "info",
		Usage: "List supported formats and algorithms",
		Action: func(ctx *cli.Context) error {
			i := info{}
			for _, name := range encoding.Names() {
				i.Formats = append(i.Formats, formatInfo{
					Name:        name,
					Key:         encoding.IsKeyFormat(name),
					Description: encoding.Describe(name),
				})
			}
			for _, name := range crypto.AlgorithmNames() {
				i.Algorithms = append(i.Algorithms, algorithmInfo{
					Name:    name,
					KeySize: crypto.KeySize(name),
					Default: name == string(crypto.DefaultAlgorithm),
				})
			}

			buf, err := yaml.Marshal(i)
			if err != nil {
				return errors.Wrap(err, "failed to marshal info")
			}
			_, err = ctx.App.Writer.Write(buf)
			return err
		},
	}
}
