package detector_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rosbrew/internal/adapters/detector"
)

func TestIsCI(t *testing.T) {
	tests := []struct {
		name    string
		ciValue string
		want    bool
	}{
		{name: "CI=true", ciValue: "true", want: true},
		{name: "CI=1", ciValue: "1", want: true},
		{name: "CI=false", ciValue: "false", want: false},
		{name: "unset", ciValue: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CI", tt.ciValue)
			assert.Equal(t, tt.want, detector.IsCI())
		})
	}
}

func TestDetectEnvironment_NonTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "stdin"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.Equal(t, detector.ModeBatch, detector.DetectEnvironment(f))
	assert.Equal(t, detector.ModeBatch, detector.DetectEnvironment(nil))
}
