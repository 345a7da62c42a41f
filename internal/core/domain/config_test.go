package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/rosbrew/internal/core/domain"
)

func TestConfig_Prefix(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Distro = "noetic"
	assert.Equal(t, "/opt/ros/noetic", cfg.Prefix())

	cfg.InstallationPrefix = "/usr/local"
	assert.Equal(t, "/usr/local", cfg.Prefix())
}

func TestConfig_Validate(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.NoError(t, cfg.Validate())

	cfg.DebIncrement = -1
	assert.ErrorContains(t, cfg.Validate(), domain.ErrInvalidDebIncrement.Error())
}

func TestSubstitutions_Map(t *testing.T) {
	subs := &domain.Substitutions{ClassName: "RosHydroFoo", Version: "1.0.0-0"}
	m := subs.Map()
	assert.Equal(t, "RosHydroFoo", m["ClassName"])
	assert.Equal(t, "1.0.0-0", m["Version"])
	assert.Equal(t, []string{}, m["RunDepends"])
	assert.Equal(t, []string{}, m["BuildDepends"])
}

func TestLayoutPaths(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "DefaultTemplateDir",
			got:      domain.DefaultTemplateDir("/src/foo"),
			expected: filepath.Join("/src/foo", "homebrew"),
		},
		{
			name:     "FormulaTemplateName",
			got:      domain.FormulaTemplateName,
			expected: "formula.rb.tmpl",
		},
		{
			name:     "DefaultCachePath",
			got:      filepath.Base(domain.DefaultCachePath()),
			expected: "rosbrew",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}
}
