package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "short flag with separate value",
			args:    []string{"-d", "xshare.db", "-v", "debug"},
			allowed: []string{"-d"},
			want:    []string{"-d", "xshare.db"},
		},
		{
			name:    "equals form",
			args:    []string{"-d=board.db", "-v", "debug"},
			allowed: []string{"-d"},
			want:    []string{"-d=board.db"},
		},
		{
			name:    "unknown flags and positionals ignored",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: []string{"-c", "-config"},
			want:    []string{},
		},
		{
			name:    "flag without value at end",
			args:    []string{"-c"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "next dash token is not a value",
			args:    []string{"-j", "-v", "warn"},
			allowed: []string{"-j", "-v"},
			want:    []string{"-j", "-v", "warn"},
		},
		{
			name:    "equals value that looks like a flag",
			args:    []string{"-p=-secret"},
			allowed: []string{"-p"},
			want:    []string{"-p=-secret"},
		},
		{
			name:    "repeated flag keeps order",
			args:    []string{"-c", "one.yaml", "-c", "two.json"},
			allowed: []string{"-c"},
			want:    []string{"-c", "one.yaml", "-c", "two.json"},
		},
		{
			name:    "empty args",
			args:    []string{},
			allowed: []string{"-c"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigFile(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "short", args: []string{"-c", "/etc/xshare.yaml"}, want: "/etc/xshare.yaml"},
		{name: "long", args: []string{"-config", "/etc/xshare.json"}, want: "/etc/xshare.json"},
		{name: "other flags ignored", args: []string{"-d", "x.db", "-v", "debug"}, want: ""},
		{name: "last wins", args: []string{"-c", "/a.json", "-config", "/b.json"}, want: "/b.json"},
		{name: "none", args: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigFile(tt.args))
		})
	}
}
