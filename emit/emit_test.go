package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/folidity/folidity/config"
	"github.com/folidity/folidity/diag"
	"github.com/folidity/folidity/internal/parser"
	"github.com/folidity/folidity/sema"
)

const addSource = "fn add(a: int, b: int) -> int { return a + b; }"

func Test_Emit_digestIsDeterministic(t *testing.T) {
	assert := assert.New(t)

	tree := parser.Parse("test.fol", addSource)
	assert.Empty(tree.Errors)

	sink1 := diag.NewSink()
	c1 := sema.Analyze(tree, sink1)
	p1, err := Emit(c1, sink1, config.Config{}.FillDefaults())
	assert.NoError(err)

	sink2 := diag.NewSink()
	c2 := sema.Analyze(tree, sink2)
	p2, err := Emit(c2, sink2, config.Config{}.FillDefaults())
	assert.NoError(err)

	assert.Equal(p1.Digest, p2.Digest, "emitting the same IR twice must produce the same digest")
	assert.Equal(p1.Approval, p2.Approval)
}

func Test_Emit_approvalContainsFunctionSubroutine(t *testing.T) {
	assert := assert.New(t)

	tree := parser.Parse("test.fol", addSource)
	sink := diag.NewSink()
	c := sema.Analyze(tree, sink)

	p, err := Emit(c, sink, config.Config{}.FillDefaults())
	assert.NoError(err)
	assert.Contains(p.Approval, "fn_add_0:")
	assert.Contains(p.Approval, "retsub")
}

func Test_Emit_clearProgramIsNoOp(t *testing.T) {
	assert := assert.New(t)

	tree := parser.Parse("test.fol", addSource)
	sink := diag.NewSink()
	c := sema.Analyze(tree, sink)

	p, err := Emit(c, sink, config.Config{}.FillDefaults())
	assert.NoError(err)
	assert.Contains(p.Clear, "pushint 0")
	assert.Contains(p.Clear, "return")
}

func Test_Emit_signsManifestWhenKeyConfigured(t *testing.T) {
	assert := assert.New(t)

	tree := parser.Parse("test.fol", addSource)
	sink := diag.NewSink()
	c := sema.Analyze(tree, sink)

	cfg := config.Config{SigningKey: []byte("test-signing-key")}.FillDefaults()
	p, err := Emit(c, sink, cfg)
	assert.NoError(err)
	assert.NotEmpty(p.Manifest)
	assert.NoError(VerifyManifest(p.Manifest, cfg.SigningKey, p.Digest))
}

func Test_Emit_noManifestWithoutSigningKey(t *testing.T) {
	assert := assert.New(t)

	tree := parser.Parse("test.fol", addSource)
	sink := diag.NewSink()
	c := sema.Analyze(tree, sink)

	p, err := Emit(c, sink, config.Config{}.FillDefaults())
	assert.NoError(err)
	assert.Empty(p.Manifest)
}
