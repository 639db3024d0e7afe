// Package listing turns decoded method bodies into serialisable listings.
package listing

import (
	"encoding/hex"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/cil-codec/cil"
	"github.com/wippyai/cil-codec/errors"
)

// Listing is a flat view of a method body.
type Listing struct {
	Header       Header    `yaml:"header"`
	Instructions []Line    `yaml:"instructions"`
	Handlers     []Handler `yaml:"handlers,omitempty"`
}

// Header holds the body's header facts.
type Header struct {
	Format         string `yaml:"format"`
	LocalSignature string `yaml:"local_signature,omitempty"`
	CodeSize       int    `yaml:"code_size"`
	Size           int    `yaml:"size"`
	Locals         int    `yaml:"locals"`
	MaxStack       uint16 `yaml:"max_stack"`
	InitLocals     bool   `yaml:"init_locals"`
}

// Line is one instruction.
type Line struct {
	Label   string `yaml:"label"`
	Bytes   string `yaml:"bytes"`
	OpCode  string `yaml:"opcode"`
	Operand string `yaml:"operand,omitempty"`
	Error   string `yaml:"error,omitempty"`
	Offset  int    `yaml:"offset"`
	Raw     bool   `yaml:"raw,omitempty"`
}

// Handler is one exception handling clause.
type Handler struct {
	Type         string `yaml:"type"`
	TryStart     string `yaml:"try_start"`
	TryEnd       string `yaml:"try_end"`
	HandlerStart string `yaml:"handler_start"`
	HandlerEnd   string `yaml:"handler_end"`
	FilterStart  string `yaml:"filter_start,omitempty"`
	CatchType    string `yaml:"catch_type,omitempty"`
}

// Build lists a decoded body. Offsets are recomputed first. An instruction
// that cannot be encoded keeps its line with Error set instead of Bytes.
func Build(body *cil.MethodBody, mb cil.MetadataBuilder) (*Listing, error) {
	if !body.Decoded() {
		return nil, errors.NotDecoded("method body")
	}
	body.Instructions.CalculateOffsets()

	l := &Listing{
		Header: Header{
			Format:     "tiny",
			CodeSize:   body.CodeSize(),
			Size:       body.PhysicalLength(),
			MaxStack:   body.MaxStack,
			InitLocals: body.InitLocals,
		},
	}
	if body.IsFat() {
		l.Header.Format = "fat"
	}
	if sig := body.LocalVariables; sig != nil {
		l.Header.Locals = len(sig.Variables)
		if sig.Token != 0 {
			l.Header.LocalSignature = sig.Token.String()
		}
	}

	builder := cil.NewOperandBuilder(mb, body)
	for _, ins := range body.Instructions.Items() {
		line := Line{
			Label:   Label(ins),
			Offset:  ins.Offset,
			OpCode:  ins.OpCode.Name,
			Operand: operandText(body, ins.Operand),
			Raw:     cil.IsRaw(ins.Operand),
		}
		code, err := cil.EncodeInstructions([]*cil.Instruction{ins}, builder)
		if err != nil {
			line.Error = err.Error()
		} else {
			line.Bytes = hex.EncodeToString(code)
		}
		l.Instructions = append(l.Instructions, line)
	}

	for _, h := range body.ExceptionHandlers {
		entry := Handler{
			Type:         h.Type.String(),
			TryStart:     Label(h.TryStart),
			TryEnd:       Label(h.TryEnd),
			HandlerStart: Label(h.HandlerStart),
			HandlerEnd:   Label(h.HandlerEnd),
		}
		if h.Type == cil.HandlerFilter {
			entry.FilterStart = Label(h.FilterStart)
		}
		if h.CatchType != nil {
			entry.CatchType = h.CatchType.String()
		}
		l.Handlers = append(l.Handlers, entry)
	}
	return l, nil
}

// Label names an instruction by offset.
func Label(ins *cil.Instruction) string {
	if ins == nil {
		return "?"
	}
	return fmt.Sprintf("IL_%04X", ins.Offset)
}

func operandText(body *cil.MethodBody, operand cil.Operand) string {
	switch o := operand.(type) {
	case *cil.Variable:
		if o.Name == "" {
			if i := body.VariableIndex(o); i >= 0 {
				return fmt.Sprintf("V_%d", i)
			}
		}
	case *cil.Parameter:
		if o.Name == "" {
			if i := body.ParameterIndex(o); i >= 0 {
				return fmt.Sprintf("A_%d", i)
			}
		}
	}
	return cil.FormatOperand(operand)
}

// WriteYAML writes l as a YAML document.
func WriteYAML(w io.Writer, l *Listing) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return err
	}
	return enc.Close()
}

// ReadYAML parses a listing written by WriteYAML.
func ReadYAML(r io.Reader) (*Listing, error) {
	var l Listing
	if err := yaml.NewDecoder(r).Decode(&l); err != nil {
		return nil, err
	}
	return &l, nil
}
