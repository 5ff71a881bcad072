package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		want    map[string]string
		wantErr bool
	}{
		{
			name:  "empty input",
			lines: nil,
			want:  map[string]string{},
		},
		{
			name:  "skips blank lines and comments",
			lines: []string{"", "   ", "# comment", "  # indented", "color=never"},
			want:  map[string]string{"color": "never"},
		},
		{
			name:  "trims whitespace around key and value",
			lines: []string{"  pager   =   less -R  "},
			want:  map[string]string{"pager": "less -R"},
		},
		{
			name:  "keeps equals sign in value",
			lines: []string{"pager=env X=1 less"},
			want:  map[string]string{"pager": "env X=1 less"},
		},
		{
			name:  "empty value is allowed",
			lines: []string{"pager="},
			want:  map[string]string{"pager": ""},
		},
		{
			name:  "strips surrounding quotes",
			lines: []string{`pager="less -FRSX"`},
			want:  map[string]string{"pager": "less -FRSX"},
		},
		{
			name:  "drops inline comment",
			lines: []string{"color=never # no ansi please"},
			want:  map[string]string{"color": "never"},
		},
		{
			name:  "strips byte order mark",
			lines: []string{bom + "theme=mono"},
			want:  map[string]string{"theme": "mono"},
		},
		{
			name:  "strips byte order mark written by editors",
			lines: []string{"\xEF\xBB\xBFcolor=never", "pager=cat"},
			want:  map[string]string{"color": "never", "pager": "cat"},
		},
		{
			name:  "last assignment wins",
			lines: []string{"theme=mono", "theme=contrast"},
			want:  map[string]string{"theme": "contrast"},
		},
		{
			name:    "line without equals",
			lines:   []string{"color"},
			wantErr: true,
		},
		{
			name:    "empty key",
			lines:   []string{"=never"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.lines)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
