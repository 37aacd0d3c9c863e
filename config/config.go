/*
File    : impyc/config/config.go
Package config loads the handful of knobs the compiler exposes beyond the
spec's hardcoded defaults: the emitter's indent step, the default output
path, and the reader-keyword map whose keys the lexer consults when
classifying readInt/readFloat/readStr/readBool. The semantic analyzer and
the emitter do not read this map; they map reader spellings to types and
wrapper calls on their own.
*/
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Options is the resolved (default-merged) compiler configuration.
type Options struct {
	IndentStep    int               `yaml:"indent_step"`
	DefaultOutput string            `yaml:"default_output"`
	Readers       map[string]string `yaml:"readers"`
}

// Default returns the configuration spec.md's §4.4/§6 assume when no
// config file is supplied: a 4-space indent step, "./out.py" as the
// default output path, and the four reader keywords mapped to the
// element type each pins (empty string for readStr, meaning "no reader
// wrapper call").
func Default() Options {
	return Options{
		IndentStep:    4,
		DefaultOutput: "./out.py",
		Readers: map[string]string{
			"readInt":   "int",
			"readFloat": "float",
			"readStr":   "",
			"readBool":  "bool",
		},
	}
}

// Load reads a YAML config file at path and merges it over Default(), so
// a partial file (e.g. only indent_step) never leaves the other fields
// zero-valued.
func Load(path string) (Options, error) {
	opts := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, err
	}

	var overlay Options
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return opts, err
	}

	if overlay.IndentStep > 0 {
		opts.IndentStep = overlay.IndentStep
	}
	if overlay.DefaultOutput != "" {
		opts.DefaultOutput = overlay.DefaultOutput
	}
	if len(overlay.Readers) > 0 {
		for k, v := range overlay.Readers {
			opts.Readers[k] = v
		}
	}
	return opts, nil
}
