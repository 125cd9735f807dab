package stream

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadFrame(t *testing.T) {
	testCases := []struct {
		name   string
		in     string
		expect []string
	}{
		{
			name:   "single frame",
			in:     ";01,MV,8C,1000;",
			expect: []string{"01,MV,8C,1000"},
		},
		{
			name:   "back to back",
			in:     ";01,MV,8C,1000;;02,SP;",
			expect: []string{"01,MV,8C,1000", "02,SP"},
		},
		{
			name:   "noise between frames",
			in:     "\r\n;01,SP;garbage;02,SP;",
			expect: []string{"\r\n", "01,SP", "garbage", "02,SP"},
		},
		{
			name:   "empty segments skipped",
			in:     ";;;;01,EC;;",
			expect: []string{"01,EC"},
		},
		{
			name: "unterminated tail dropped",
			in:   ";01,SP",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rw := New(struct {
				io.Reader
				io.Writer
			}{strings.NewReader(tc.in), &bytes.Buffer{}})
			for _, expect := range tc.expect {
				frame, err := rw.ReadFrame()
				require.NoError(t, err)
				require.Equal(t, expect, frame)
			}
			_, err := rw.ReadFrame()
			require.Equal(t, io.EOF, err)
		})
	}
}

func TestWriteFrame(t *testing.T) {
	var buf bytes.Buffer
	rw := New(struct {
		io.Reader
		io.Writer
	}{strings.NewReader(""), &buf})
	require.NoError(t, rw.WriteFrame("#TRK,3\n"))
	require.NoError(t, rw.WriteFrame("#ERROR,PARSE_FAIL\n"))
	require.Equal(t, "#TRK,3\n#ERROR,PARSE_FAIL\n", buf.String())
}
