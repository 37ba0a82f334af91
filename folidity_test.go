package folidity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/folidity/folidity/cache/inmem"
	"github.com/folidity/folidity/config"
	"github.com/folidity/folidity/diag"
)

const addSource = "fn add(a: int, b: int) -> int { return a + b; }"

func Test_Pipeline_Run_stageCheckStopsAfterAnalysis(t *testing.T) {
	assert := assert.New(t)

	p := Pipeline{}
	result, err := p.Run(context.Background(), "test.fol", addSource, StageCheck)
	assert.NoError(err)
	assert.NotNil(result.Contract)
	assert.Empty(result.Program.Approval, "stage check must not run emission")
	assert.False(result.Sink.HasSeverity(diag.Error))
}

func Test_Pipeline_Run_stageCompileProducesProgram(t *testing.T) {
	assert := assert.New(t)

	p := Pipeline{}
	result, err := p.Run(context.Background(), "test.fol", addSource, StageCompile)
	assert.NoError(err)
	assert.NotEmpty(result.Program.Approval)
	assert.NotEmpty(result.Program.Clear)
}

func Test_Pipeline_Run_compileErrorsSkipEmission(t *testing.T) {
	assert := assert.New(t)

	p := Pipeline{}
	result, err := p.Run(context.Background(), "test.fol", "struct Foo { b: NoSuchType }", StageCompile)
	assert.NoError(err)
	assert.True(result.Sink.HasSeverity(diag.Error))
	assert.Empty(result.Program.Approval, "emission must be skipped once an earlier stage reported an error")
}

func Test_Pipeline_Run_cachesCompiledPrograms(t *testing.T) {
	assert := assert.New(t)

	p := Pipeline{Cache: inmem.NewStore()}

	first, err := p.Run(context.Background(), "test.fol", addSource, StageCompile)
	assert.NoError(err)
	assert.False(first.FromCache)
	assert.NotEmpty(first.Program.Approval)

	second, err := p.Run(context.Background(), "test.fol", addSource, StageCompile)
	assert.NoError(err)
	assert.True(second.FromCache)
	assert.Equal(first.Program.Approval, second.Program.Approval)
}

func Test_Pipeline_Run_rejectsInvalidConfig(t *testing.T) {
	assert := assert.New(t)

	p := Pipeline{Config: config.Config{Workers: -1}}
	_, err := p.Run(context.Background(), "test.fol", addSource, StageCheck)
	assert.Error(err)
}
