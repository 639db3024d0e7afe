package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/cil-codec/cil"
	"github.com/wippyai/cil-codec/errors"
)

// input is a decoded body together with the bytes it came from.
type input struct {
	body *cil.MethodBody
	// original holds exactly the bytes the body occupies.
	original []byte
}

func (a *app) readInput() ([]byte, error) {
	switch {
	case a.opts.hex != "":
		clean := strings.Map(func(r rune) rune {
			switch r {
			case ' ', '\t', '\n', '\r', ',':
				return -1
			}
			return r
		}, a.opts.hex)
		clean = strings.TrimPrefix(strings.ToLower(clean), "0x")
		data, err := hex.DecodeString(clean)
		if err != nil {
			return nil, errors.Wrap(errors.PhaseDecode, errors.KindInvalidInput, err, "--hex")
		}
		return data, nil
	case a.opts.file != "":
		data, err := os.ReadFile(a.opts.file)
		if err != nil {
			return nil, errors.Wrap(errors.PhaseDecode, errors.KindInvalidInput, err, fmt.Sprintf("cannot read %s", a.opts.file))
		}
		return data, nil
	}
	return nil, errors.InvalidInput(errors.PhaseDecode, "no input: pass --hex or --file")
}

// loadBody reads and fully decodes the input.
func (a *app) loadBody() (*input, error) {
	data, err := a.readInput()
	if err != nil {
		return nil, err
	}

	if a.opts.rawCode {
		body := cil.NewMethodBody()
		instructions, err := cil.DecodeInstructions(data, cil.NewOperandResolver(a.table, body))
		if err != nil {
			return nil, err
		}
		body.Instructions = cil.NewSequence(body, instructions...)
		a.log.Debug("decoded raw code", zap.Int("bytes", len(data)), zap.Int("instructions", len(instructions)))
		return &input{body: body, original: data}, nil
	}

	size, err := cil.MethodBodySize(data)
	if err != nil {
		return nil, err
	}
	if size < len(data) {
		a.log.Debug("ignoring bytes after the method body", zap.Int("body", size), zap.Int("input", len(data)))
	}

	body, err := cil.ReadMethodBody(data[:size], a.table)
	if err != nil {
		return nil, err
	}
	if err := body.EnsureDecoded(); err != nil {
		return nil, err
	}
	return &input{body: body, original: data[:size]}, nil
}

// encode re-encodes the body in the same shape it was read in.
func (a *app) encode(in *input) ([]byte, error) {
	if a.opts.rawCode {
		in.body.Instructions.CalculateOffsets()
		return cil.EncodeInstructions(in.body.Instructions.Items(), cil.NewOperandBuilder(a.table, in.body))
	}
	return in.body.Bytes(a.table)
}
