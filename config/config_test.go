package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Config_FillDefaults(t *testing.T) {
	assert := assert.New(t)

	cfg := Config{}.FillDefaults()
	assert.Equal(defaultSolverTimeoutMS, cfg.SolverTimeoutMS)
	assert.Equal(defaultBoxNamePrefix, cfg.BoxNamePrefix)
	assert.Equal(1, cfg.Workers)

	// Set values survive untouched.
	cfg2 := Config{SolverTimeoutMS: 500, BoxNamePrefix: "x_", Workers: 4}.FillDefaults()
	assert.Equal(500, cfg2.SolverTimeoutMS)
	assert.Equal("x_", cfg2.BoxNamePrefix)
	assert.Equal(4, cfg2.Workers)
}

func Test_Config_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "defaults are valid", cfg: Config{}.FillDefaults(), wantErr: false},
		{name: "timeout too low", cfg: Config{SolverTimeoutMS: 1, BoxNamePrefix: "__", Workers: 1}, wantErr: true},
		{name: "timeout too high", cfg: Config{SolverTimeoutMS: MaxSolverTimeoutMS + 1, BoxNamePrefix: "__", Workers: 1}, wantErr: true},
		{name: "empty box prefix", cfg: Config{SolverTimeoutMS: MinSolverTimeoutMS, BoxNamePrefix: "", Workers: 1}, wantErr: true},
		{name: "zero workers", cfg: Config{SolverTimeoutMS: MinSolverTimeoutMS, BoxNamePrefix: "__", Workers: 0}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			err := tc.cfg.Validate()
			if tc.wantErr {
				assert.Error(err)
			} else {
				assert.NoError(err)
			}
		})
	}
}

func Test_LoadOrDefault_missingFileReturnsDefaults(t *testing.T) {
	assert := assert.New(t)

	cfg, err := LoadOrDefault("/nonexistent/folidity.toml")
	assert.NoError(err)
	assert.Equal(Config{}.FillDefaults(), cfg)
}
