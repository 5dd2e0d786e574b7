package mapper

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSlice(t *testing.T) {
	got := MapSlice([]int{1, 2, 3}, strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "3"}, got)

	empty := MapSlice[int, string](nil, strconv.Itoa)
	require.NotNil(t, empty)
	assert.Len(t, empty, 0)
}

func TestMapSliceWithError(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		want    []int
		wantErr bool
	}{
		{name: "nil input", input: nil, want: []int{}},
		{name: "all valid", input: []string{"1", "20"}, want: []int{1, 20}},
		{name: "stops on error", input: []string{"1", "x", "3"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MapSliceWithError(tt.input, strconv.Atoi)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapSliceWithError_PropagatesError(t *testing.T) {
	sentinel := errors.New("bad item")
	_, err := MapSliceWithError([]int{1}, func(int) (int, error) { return 0, sentinel })
	assert.ErrorIs(t, err, sentinel)
}
