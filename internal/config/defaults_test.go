package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	d := Defaults()

	require.Equal(t, "auto", d["color"])
	require.Equal(t, "debug", d["log_level"])
	require.Equal(t, "false", d["enable_log"])

	_, ok := d["color_error"]
	require.False(t, ok, "keys without a default are omitted")
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		key     string
		want    string
		wantErr bool
	}{
		{name: "default when file missing", key: "color", want: "auto"},
		{name: "file overrides default", content: "color=never\n", key: "color", want: "never"},
		{name: "unknown keys pass through", content: "custom=1\n", key: "custom", want: "1"},
		{name: "malformed file keeps defaults", content: "garbage\n", key: "color", want: "auto", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(tempRC(t, tt.content))
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.want, cfg[tt.key])
		})
	}
}
