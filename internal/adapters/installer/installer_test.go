package installer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rosbrew/internal/adapters/installer"
	"go.trai.ch/rosbrew/internal/core/domain"
)

func TestHomebrew_Resolve(t *testing.T) {
	tests := []struct {
		name    string
		rule    any
		want    []string
		wantErr bool
	}{
		{name: "list", rule: []any{"boost", "eigen"}, want: []string{"boost", "eigen"}},
		{name: "string", rule: "boost  eigen", want: []string{"boost", "eigen"}},
		{name: "packages list", rule: map[string]any{"packages": []any{"qt"}, "options": []any{"--with-x"}}, want: []string{"qt"}},
		{name: "packages string", rule: map[string]any{"packages": "qt"}, want: []string{"qt"}},
		{name: "packages definition", rule: domain.Definition{"packages": []any{"qt"}}, want: []string{"qt"}},
		{name: "empty list", rule: []any{}, want: []string{}},
		{name: "mapping without packages", rule: map[string]any{"source": "x"}, wantErr: true},
		{name: "nested mapping", rule: map[string]any{"packages": map[string]any{"a": "b"}}, wantErr: true},
		{name: "nested definition", rule: map[string]any{"packages": domain.Definition{"a": "b"}}, wantErr: true},
		{name: "non string entry", rule: []any{42}, wantErr: true},
		{name: "number", rule: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := installer.Homebrew{}.Resolve(tt.rule)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorContains(t, err, domain.ErrInvalidRule.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPip_Resolve(t *testing.T) {
	got, err := installer.Pip{}.Resolve(map[string]any{"packages": []any{"PyYAML"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"PyYAML"}, got)
}

func TestRegistry_Get(t *testing.T) {
	r := installer.NewRegistry()

	inst, ok := r.Get("homebrew")
	require.True(t, ok)
	assert.IsType(t, installer.Homebrew{}, inst)

	inst, ok = r.Get("pip")
	require.True(t, ok)
	assert.IsType(t, installer.Pip{}, inst)

	_, ok = r.Get("macports")
	assert.False(t, ok, "only installers a formula can express are registered")
}
