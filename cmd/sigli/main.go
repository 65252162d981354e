package main

import (
	"github.com/corpix/sigli/cli"
	"github.com/corpix/sigli/config"
	"github.com/corpix/sigli/crypto"
	"github.com/corpix/sigli/encoding"
	"github.com/corpix/sigli/errors"
)

const envPrefix = "sigli"

var version = "development"

type Config struct {
	config.BaseConfig `yaml:",inline"`

	Algorithm    string `yaml:"algorithm"`
	KeyFormat    string `yaml:"key-format"`
	PlainFormat  string `yaml:"plain-format"`
	CipherFormat string `yaml:"cipher-format"`
}

func (c *Config) Default() {
	c.BaseConfig.Default()
	if c.Algorithm == "" {
		c.Algorithm = string(crypto.DefaultAlgorithm)
	}
	if c.KeyFormat == "" {
		c.KeyFormat = string(encoding.DefaultKeyFormat)
	}
	if c.PlainFormat == "" {
		c.PlainFormat = string(encoding.DefaultPlainFormat)
	}
	if c.CipherFormat == "" {
		c.CipherFormat = string(encoding.DefaultCipherFormat)
	}
}

func (c *Config) Validate() error {
	_, err := crypto.NewAlgorithm(c.Algorithm)
	if err != nil {
		return err
	}
	if !encoding.IsKeyFormat(c.KeyFormat) {
		return errors.Wrapf(
			encoding.ErrInvalidFormat,
			"key format %q is not one of %v",
			c.KeyFormat, encoding.KeyNames(),
		)
	}
	_, err = encoding.NewEncodeDecoder(c.PlainFormat)
	if err != nil {
		return errors.Wrap(err, "plain format")
	}
	_, err = encoding.NewEncodeDecoder(c.CipherFormat)
	if err != nil {
		return errors.Wrap(err, "cipher format")
	}
	if c.Log != nil {
		return c.Log.Validate()
	}
	return nil
}

//

func newCli(conf *Config, options ...cli.Option) *cli.Cli {
	return cli.New(
		cli.WithName("sigli"),
		cli.WithUsage("encrypt short messages into text that survives hand copying"),
		cli.WithDescription(
			"Generates keys and encrypts or decrypts messages, rendering keys and\n"+
				"cipher text in formats meant to be read aloud, typed or written down.",
		),
		cli.WithVersion(version),
		cli.WithFlags(cli.Flags{
			&cli.StringFlag{
				Name:        "algo",
				Aliases:     []string{"a"},
				Usage:       "encryption algorithm, one of " + joinNames(crypto.AlgorithmNames()),
				DefaultText: string(crypto.DefaultAlgorithm),
			},
			&cli.StringFlag{
				Name:        "key-format",
				Aliases:     []string{"K"},
				Usage:       "key format, one of " + joinNames(encoding.KeyNames()),
				DefaultText: string(encoding.DefaultKeyFormat),
			},
		}),
		cli.WithConfigTools(
			conf,
			envPrefix,
			config.YamlUnmarshaler,
			config.YamlMarshaler,
		),
		cli.WithBefore(func(ctx *cli.Context) error {
			if ctx.IsSet("algo") {
				conf.Algorithm = ctx.String("algo")
			}
			if ctx.IsSet("key-format") {
				conf.KeyFormat = ctx.String("key-format")
			}
			if ctx.Args().First() == "config" {
				return nil
			}
			return conf.Validate()
		}),
		cli.WithLogTools(conf.LogConfig),
		cli.WithCommands(cli.Commands{
			genkeyCommand(conf),
			encryptCommand(conf),
			decryptCommand(conf),
			transcodeCommand(conf),
			infoCommand(),
		}),
		cli.WithCommandRequired(),
		cli.WithComposition(options...),
	)
}

func main() {
	newCli(&Config{}).RunAndExitOnError()
}
