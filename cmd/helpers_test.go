package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inovacc/wspace/internal/model"
)

func TestStoredPath(t *testing.T) {
	dirs := []model.DirEntry{{ID: 1, Path: "/src/a"}, {ID: 2, Path: "/src/b"}}

	assert.Equal(t, "/src/b", storedPath(dirs, 2))
	assert.Empty(t, storedPath(dirs, 3))
	assert.Empty(t, storedPath(nil, 1))
}

func TestParseID(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{input: "1", want: 1},
		{input: "42", want: 42},
		{input: "0", wantErr: true},
		{input: "-3", wantErr: true},
		{input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseID(tt.input)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
