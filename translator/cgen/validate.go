package cgen

import (
	"bytes"

	"tlog.app/go/errors"
)

// Constructs every generated document must declare. Checked in this order;
// the first missing one is reported.
var required = []string{
	"define-insn",
	"define-ifield",
	"define-normal-insn-enum",
}

// Validate runs structural checks over a generated document: aggregate
// parenthesis counts must match and each required construct must appear at
// least once. It does not parse the s-expression grammar, so nesting order is
// not verified. A nil result means the document passed.
func Validate(doc []byte) error {
	if o, c := bytes.Count(doc, []byte("(")), bytes.Count(doc, []byte(")")); o != c {
		return errors.New("parentheses mismatch: %d open, %d close", o, c)
	}

	for _, tok := range required {
		if !bytes.Contains(doc, []byte(tok)) {
			return errors.New("missing required construct: %s", tok)
		}
	}

	return nil
}
