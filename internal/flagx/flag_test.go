package flagx

import (
	"os"
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
			name:    "separate value",
			args:    []string{"-d", "engine.db", "-x", "junk"},
			allowed: []string{"-d"},
			want:    []string{"-d", "engine.db"},
		},
		{
			name:    "combined form",
			args:    []string{"--config=conf.json", "-v"},
			allowed: []string{"--config"},
			want:    []string{"--config=conf.json"},
		},
		{
			name:    "flag without value",
			args:    []string{"-q", "-d", "engine.db"},
			allowed: []string{"-q"},
			want:    []string{"-q"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "b"},
			allowed: nil,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigFileFlags(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"engine", "-c", "conf.json", "-other", "x"}
	assert.Equal(t, "conf.json", ConfigFileFlags())

	os.Args = []string{"engine", "-config=alt.json"}
	assert.Equal(t, "alt.json", ConfigFileFlags())

	os.Args = []string{"engine"}
	assert.Equal(t, "", ConfigFileFlags())
}
