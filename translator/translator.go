// Package translator wires extraction and generation into one end-to-end
// translation of a SAIL specification file into a CGEN description file.
package translator

import (
	"context"
	"os"
	"strings"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/yashodipmore/sail2cgen/translator/cgen"
	"github.com/yashodipmore/sail2cgen/translator/sail"
)

// TranslateFile reads the SAIL spec at input and writes the generated CGEN
// description to output. Any failure is fatal for the invocation; partial
// output is not cleaned up.
func TranslateFile(ctx context.Context, input, output string) error {
	text, err := os.ReadFile(input)
	if err != nil {
		return errors.Wrap(err, "read spec")
	}

	tlog.SpanFromContext(ctx).Printw("read spec", "size", len(text), "name", input)

	doc, err := Translate(ctx, input, text)
	if err != nil {
		return errors.Wrap(err, "translate")
	}

	err = os.WriteFile(output, doc, 0o644)
	if err != nil {
		return errors.Wrap(err, "write cgen")
	}

	tlog.SpanFromContext(ctx).Printw("wrote cgen", "size", len(doc), "name", output)

	return nil
}

// Translate extracts records from text and assembles the CGEN document:
// header comment, opcode enumeration, field definitions, and an instruction
// block when the spec declares an instruction. name only annotates the header.
func Translate(ctx context.Context, name string, text []byte) ([]byte, error) {
	s := sail.Extract(ctx, text)

	blocks := []string{
		";; Auto-generated CGEN description",
		";; Source: " + name,
		"",
		cgen.RenderOpcodes(),
		cgen.RenderFields(),
	}

	if !s.Instruction.Empty() {
		blocks = append(blocks, cgen.RenderInsn(s.Instruction, s.Encoding, s.Semantics))
	}

	tlog.SpanFromContext(ctx).Printw("generated", "instruction", s.Instruction.Name, "blocks", len(blocks))

	return []byte(strings.Join(blocks, "\n")), nil
}

// ValidateFile runs the structural validator over an already written CGEN
// document. The verdict is advisory: callers report it but translation does
// not roll back on failure.
func ValidateFile(ctx context.Context, name string) error {
	doc, err := os.ReadFile(name)
	if err != nil {
		return errors.Wrap(err, "read cgen")
	}

	err = cgen.Validate(doc)
	if err != nil {
		return errors.Wrap(err, "validate %v", name)
	}

	tlog.SpanFromContext(ctx).Printw("validated", "name", name)

	return nil
}
