package raster

import (
	"compress/gzip"
	"context"
	stderrors "errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/globe-engine/internal/pkg/errors"
)

const gridFixture = `{"width": 2, "height": 2, "bbox": [-180, -90, 180, 90], "samples": [1, null, 3, 4]}`

func TestDecode(t *testing.T) {
	grid, err := Decode(strings.NewReader(gridFixture))
	require.NoError(t, err)

	assert.Equal(t, 2, grid.Width)
	assert.Equal(t, 360.0, grid.BBox.Width())
	assert.Equal(t, 1.0, grid.At(0, 0))
	assert.True(t, math.IsNaN(grid.At(1, 0)), "null is no-data")
	assert.Equal(t, 4.0, grid.At(1, 1))
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{`},
		{"short bbox", `{"width":1,"height":1,"bbox":[0,0,1],"samples":[1]}`},
		{"sample count", `{"width":2,"height":2,"bbox":[0,0,1,1],"samples":[1,2,3]}`},
		{"zero width", `{"width":0,"height":1,"bbox":[0,0,1,1],"samples":[]}`},
		{"inverted bbox", `{"width":1,"height":1,"bbox":[1,0,0,1],"samples":[1]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			assert.True(t, stderrors.Is(err, errors.ErrMalformedRaster), "got %v", err)
		})
	}
}

func TestFileRepository_Load(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "grid.json")
	require.NoError(t, os.WriteFile(plain, []byte(gridFixture), 0o600))

	compressed := filepath.Join(dir, "grid.json.gz")
	f, err := os.Create(compressed)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(gridFixture))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	for _, path := range []string{plain, compressed} {
		grid, err := NewFileRepository(path, zap.NewNop()).Load(context.Background())
		require.NoError(t, err, path)
		assert.Len(t, grid.Samples, 4)
	}

	_, err = NewFileRepository(filepath.Join(dir, "missing.json"), zap.NewNop()).Load(context.Background())
	assert.Error(t, err)
}
