package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/charstream/internal/langdetect"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		content  string
		expected string
	}{
		{
			name:     "go by extension",
			filename: "main.go",
			content:  "package main\n\nfunc main() {}\n",
			expected: "Go",
		},
		{
			name:     "shebang wins without extension",
			filename: "deploy",
			content:  "#!/bin/bash\necho hi\n",
			expected: "Shell",
		},
		{
			name:     "shebang from stdin",
			filename: "-",
			content:  "#!/usr/bin/env python3\nprint('hi')\n",
			expected: "Python",
		},
		{
			name:     "json by extension",
			filename: "data.json",
			content:  `{"key": "value"}`,
			expected: "JSON",
		},
		{
			name:     "empty content",
			filename: "empty.go",
			content:  "",
			expected: "",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := langdetect.Detect(testCase.filename, []byte(testCase.content))
			assert.Equal(t, testCase.expected, got)
		})
	}
}

func TestDetect_PathIsReducedToBase(t *testing.T) {
	t.Parallel()

	got := langdetect.Detect("/some/deep/dir/script.rb", []byte("puts 'hi'\n"))
	assert.Equal(t, "Ruby", got)
}
