package preset

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/inqluet/file-analyzer/internal/types"
)

func TestParse_KeepsDefaults(t *testing.T) {
	base := types.DefaultConfiguration("/data")

	cfg, err := Parse([]byte("includeDirectories: true\n"), base)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if !cfg.IncludeDirectories {
		t.Error("IncludeDirectories = false, want true")
	}
	if cfg.Directory != "/data" {
		t.Errorf("Directory = %q, want /data", cfg.Directory)
	}
	if cfg.OutputFileName != types.DefaultOutputFileName {
		t.Errorf("OutputFileName = %q, want %q", cfg.OutputFileName, types.DefaultOutputFileName)
	}
	if !cfg.KeepExtensions {
		t.Error("KeepExtensions = false, want default true")
	}
}

func TestParse_AllFields(t *testing.T) {
	content := `directory: /tmp/photos
output: photos
keepExtensions: false
includeDirectories: true
whitelist: [.JPG, .png]
blacklist:
  - ".tmp, .BAK"
limitEnabled: true
limit: 10
selfName: ""
`

	cfg, err := Parse([]byte(content), types.DefaultConfiguration("."))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := types.Configuration{
		Directory:          "/tmp/photos",
		OutputFileName:     "photos",
		KeepExtensions:     false,
		IncludeDirectories: true,
		Whitelist:          []string{".jpg", ".png"},
		Blacklist:          []string{".tmp", ".bak"},
		LimitEnabled:       true,
		LimitCount:         10,
		SelfName:           "",
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("Parse() = %+v, want %+v", cfg, want)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{"bad yaml", "keepExtensions: [", "failed to parse preset"},
		{"negative limit", "limit: -3", "must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content), types.DefaultConfiguration("."))
			if err == nil {
				t.Fatal("Parse() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.errPart)
			}
		})
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.yaml")

	cfg := types.DefaultConfiguration("/srv/share")
	cfg.Whitelist = []string{".txt", ".md"}
	cfg.LimitEnabled = true
	cfg.LimitCount = 5

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path, types.Configuration{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(loaded, cfg) {
		t.Errorf("Load() = %+v, want %+v", loaded, cfg)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), types.Configuration{})
	if err == nil {
		t.Fatal("Load() error = nil, want error")
	}
}
