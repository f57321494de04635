// Package sail extracts instruction metadata from SAIL-style specification text.
//
// Extraction is pattern based, not a grammar parse: each operation scans the
// whole text for the first (or, for semantics, every) occurrence of its shape
// and captures the interesting pieces verbatim. A missing shape is a normal
// empty result, never an error.
package sail

import (
	"context"
	"regexp"
	"strings"

	"tlog.app/go/loc"
	"tlog.app/go/tlog"
)

type (
	// Instruction is the field layout declared by a struct NAME_instruction block.
	Instruction struct {
		Name   string
		Fields []Field
	}

	Field struct {
		Name string
		Type string
	}

	// Encoding relates an instruction name to the raw text of its bit encoding.
	Encoding struct {
		Instruction string
		Encoding    string
	}

	// Semantics maps semantic function names to their raw body text.
	Semantics map[string]string

	// Spec bundles everything extracted from one input text.
	Spec struct {
		Instruction Instruction
		Encoding    Encoding
		Semantics   Semantics
	}
)

// Capture groups stop at the first closing brace, so a nested block inside
// struct fields or a function body truncates the captured text early.
var (
	instRe  = regexp.MustCompile(`struct\s+(\w+)_instruction\s*\{([^}]+)\}`)
	fieldRe = regexp.MustCompile(`(\w+):\s*([^,\n]+)`)
	encRe   = regexp.MustCompile(`mapping\s+clause\s+encdec\s*=\s*(\w+)\([^)]+\)\s*<->\s*([^\n]+)`)
	funcRe  = regexp.MustCompile(`function\s+(\w+)\([^)]*\)\s*->\s*[^=]*=\s*\{([^}]+)\}`)
)

// Extract runs all three extractors over one input text.
func Extract(ctx context.Context, text []byte) Spec {
	s := Spec{
		Instruction: ExtractInstruction(text),
		Encoding:    ExtractEncoding(text),
		Semantics:   ExtractSemantics(text),
	}

	if tr := tlog.SpanFromContext(ctx); tr.If("extract") {
		tr.Printw("extracted", "name", s.Instruction.Name, "fields", len(s.Instruction.Fields), "semantics", len(s.Semantics), "from", loc.Callers(1, 2))
	}

	return s
}

func (i Instruction) Empty() bool { return i.Name == "" }

// ExtractInstruction finds the first struct NAME_instruction block and its
// name: type field pairs. Field lines without a colon are skipped. The type
// text is kept verbatim apart from surrounding space.
func ExtractInstruction(text []byte) (inst Instruction) {
	m := instRe.FindSubmatch(text)
	if m == nil {
		return inst
	}

	inst.Name = string(m[1])

	for _, f := range fieldRe.FindAllSubmatch(m[2], -1) {
		inst.Fields = append(inst.Fields, Field{
			Name: string(f[1]),
			Type: strings.TrimSpace(string(f[2])),
		})
	}

	return inst
}

func (e Encoding) Empty() bool { return e.Instruction == "" }

// ExtractEncoding finds the first mapping clause encdec line. The parameter
// list is discarded; the encoding is the rest of the line after <->, trimmed.
func ExtractEncoding(text []byte) (enc Encoding) {
	m := encRe.FindSubmatch(text)
	if m == nil {
		return enc
	}

	enc.Instruction = string(m[1])
	enc.Encoding = strings.TrimSpace(string(m[2]))

	return enc
}

// ExtractSemantics collects every function NAME(...) -> ... = { BODY } block.
// A repeated name overwrites the earlier body.
func ExtractSemantics(text []byte) Semantics {
	sem := Semantics{}

	for _, m := range funcRe.FindAllSubmatch(text, -1) {
		sem[string(m[1])] = strings.TrimSpace(string(m[2]))
	}

	return sem
}
