package fusedl2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatrix(t *testing.T) {
	tests := []struct {
		name    string
		data    []float32
		rows    int
		cols    int
		wantErr bool
	}{
		{"Valid", []float32{1, 2, 3, 4, 5, 6}, 2, 3, false},
		{"EmptyRows", []float32{}, 0, 3, false},
		{"ExtraCapacity", make([]float32, 10), 2, 3, false},
		{"NegativeRows", []float32{1, 2, 3}, -1, 3, true},
		{"ZeroCols", []float32{1, 2, 3}, 3, 0, true},
		{"ShortData", []float32{1, 2, 3}, 2, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMatrix(tt.data, tt.rows, tt.cols)
			if tt.wantErr {
				var is *ErrInvalidShape
				require.ErrorAs(t, err, &is)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.rows, m.Rows())
			assert.Equal(t, tt.cols, m.Cols())
		})
	}
}

func TestMatrixRow(t *testing.T) {
	m, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 3}, m.Row(0))
	assert.Equal(t, []float64{4, 5, 6}, m.Row(1))
}
