package translator

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yashodipmore/sail2cgen/translator/cgen"
)

func TestTranslateMatmul(t *testing.T) {
	text, err := os.ReadFile(filepath.Join("testdata", "matmul.sail"))
	require.NoError(t, err)

	ctx := context.Background()

	doc, err := Translate(ctx, "matmul.sail", text)
	require.NoError(t, err)

	out := string(doc)

	assert.True(t, strings.HasPrefix(out, ";; Auto-generated CGEN description\n;; Source: matmul.sail\n"))
	assert.Contains(t, out, "define-normal-insn-enum")
	assert.Equal(t, 6, strings.Count(out, "define-ifield"))
	assert.Contains(t, out, `(define-insn "matmul"`)
	assert.Contains(t, out, "Matmul instruction")

	assert.NoError(t, cgen.Validate(doc))

	t.Logf("generated:\n%s", out)
}

// Without an instruction struct the document still carries the opcode and
// field blocks, but the validator rejects it: define-insn is required
// unconditionally.
func TestTranslateNoInstruction(t *testing.T) {
	text := []byte("// no instruction declared here\nmapping clause encdec = add(x) <-> 0b0110011\n")

	ctx := context.Background()

	doc, err := Translate(ctx, "empty.sail", text)
	require.NoError(t, err)

	out := string(doc)

	assert.Contains(t, out, "define-normal-insn-enum")
	assert.Contains(t, out, "define-ifield")
	assert.NotContains(t, out, "define-insn")

	err = cgen.Validate(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "define-insn")
}

func TestTranslateFile(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "matmul.cgen")

	ctx := context.Background()

	err := TranslateFile(ctx, filepath.Join("testdata", "matmul.sail"), output)
	require.NoError(t, err)

	require.NoError(t, ValidateFile(ctx, output))

	doc, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(doc), `(define-insn "matmul"`)
}

func TestTranslateFileMissingInput(t *testing.T) {
	dir := t.TempDir()

	err := TranslateFile(context.Background(), filepath.Join(dir, "nope.sail"), filepath.Join(dir, "out.cgen"))
	assert.Error(t, err)
}

func TestValidateFileMissing(t *testing.T) {
	err := ValidateFile(context.Background(), filepath.Join(t.TempDir(), "nope.cgen"))
	assert.Error(t, err)
}
