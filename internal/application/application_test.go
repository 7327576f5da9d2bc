package application

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetApplicationDirectory(t *testing.T) {
	dir, err := GetApplicationDirectory()
	require.NoError(t, err)

	assert.Equal(t, AppName, filepath.Base(dir))
	assert.True(t, filepath.IsAbs(dir))

	again, err := GetApplicationDirectory()
	require.NoError(t, err)
	assert.Equal(t, dir, again)
}
