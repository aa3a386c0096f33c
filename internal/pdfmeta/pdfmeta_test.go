package pdfmeta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePageCount(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    int
		wantErr bool
	}{
		{
			name: "typical pdfinfo output",
			output: "Title:          Sample\n" +
				"Producer:       pdfTeX\n" +
				"Pages:          42\n" +
				"Page size:      612 x 792 pts\n",
			want: 42,
		},
		{
			name:   "single page",
			output: "Pages:          1\n",
			want:   1,
		},
		{
			name:    "missing Pages line",
			output:  "Title: no page count here\n",
			wantErr: true,
		},
		{
			name:    "malformed Pages value",
			output:  "Pages:          many\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePageCount([]byte(tt.output))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPageCountInputMissing(t *testing.T) {
	_, err := PageCount("/nonexistent/path/does-not-exist.pdf")
	require.Error(t, err)
}
