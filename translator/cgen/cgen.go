// Package cgen renders CGEN description text from extracted SAIL records.
package cgen

import (
	"fmt"
	"strings"

	"github.com/yashodipmore/sail2cgen/translator/sail"
)

// Field layout and opcode blocks are fixed for the custom-0 encoding space.
// The bit positions, widths and the #x2B opcode value are load bearing for
// downstream consumers of the generated description, keep them byte for byte.

const fieldDefs = `
;; Instruction field definitions
(define-ifield f-func7 "7-bit function code" 31 7)
(define-ifield f-func3 "3-bit function code" 14 3)
(define-ifield f-rs2   "source register 2"  24 5)
(define-ifield f-rs1   "source register 1"  19 5)
(define-ifield f-rd    "destination register" 11 5)
(define-ifield f-opcode "7-bit opcode"       6 7)
`

const opcodeEnum = `
;; Custom opcode definitions
(define-normal-insn-enum insn-op-custom "custom instruction opcodes" () OP_CUSTOM_
  (("CUSTOM_1" #x2B)))
`

// RenderFields returns the field definition block.
func RenderFields() string { return fieldDefs }

// RenderOpcodes returns the opcode enumeration block.
func RenderOpcodes() string { return opcodeEnum }

// RenderInsn renders the instruction definition block for inst. Only the
// instruction name feeds the template: enc and sem are accepted for future
// use but do not affect the output, and starting to consume them would change
// the generated document shape for every downstream consumer.
func RenderInsn(inst sail.Instruction, enc sail.Encoding, sem sail.Semantics) string {
	name := inst.Name
	if name == "" {
		name = "unknown"
	}

	lower := strings.ToLower(name)

	return fmt.Sprintf(`
;; Generated CGEN description for %s instruction
(define-insn "%s"
  "%s instruction - auto-generated from SAIL"
  (+ OP_CUSTOM_1 (f-rd register) (f-func3 #b111) (f-rs1 register) (f-rs2 register) (f-func7 #b0000001))
  "%s $rd,$rs1,$rs2"
  (sequence ()
    ;; Semantic implementation
    (set rd (execute-%s rs1 rs2)))
  ())
`, strings.ToUpper(name), lower, title(name), lower, lower)
}

// title upper-cases the first letter of every word and lower-cases the rest,
// where a word starts after any non-letter. So "mat_mul" becomes "Mat_Mul".
func title(s string) string {
	b := []byte(s)
	word := false

	for i, c := range b {
		switch {
		case c >= 'a' && c <= 'z':
			if !word {
				b[i] = c - 'a' + 'A'
			}
			word = true
		case c >= 'A' && c <= 'Z':
			if word {
				b[i] = c - 'A' + 'a'
			}
			word = true
		default:
			word = false
		}
	}

	return string(b)
}
