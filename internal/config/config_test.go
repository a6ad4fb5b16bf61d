package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}
	if cfg != DefaultBallGameConfig() {
		t.Errorf("embedded YAML and DefaultBallGameConfig differ:\n%+v\n%+v", cfg, DefaultBallGameConfig())
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("enemy:\n  initial_count: 7\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Enemy.InitialCount != 7 {
		t.Errorf("initial_count = %d, expected 7", cfg.Enemy.InitialCount)
	}
	if cfg.Enemy.Size != 64 || cfg.Star.InitialCount != 10 {
		t.Error("values not named in the file should keep their defaults")
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero width", "window:\n  width: 0\n"},
		{"negative star count", "star:\n  initial_count: -1\n"},
		{"zero spawn period", "enemy:\n  spawn_period: 0\n"},
		{"zero retries", "enemy:\n  spawn_retries: 0\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Parse(%q) error = %v, expected ErrInvalidConfig", tc.yaml, err)
			}
		})
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("window: [")); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("player:\n  speed: 321\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Player.Speed != 321 {
		t.Errorf("player.speed = %v, expected 321", cfg.Player.Speed)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	dir := filepath.Join(home, ".ballgame", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "ballgame.yaml"), []byte("star:\n  size: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Star.Size != 9 {
		t.Errorf("star.size = %v, expected 9", cfg.Star.Size)
	}
}

func TestLoadRejectsMalformedUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	dir := filepath.Join(home, ".ballgame", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "ballgame.yaml")
	if err := os.WriteFile(path, []byte("player: [speed\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load("")
	if err == nil {
		t.Fatal("malformed user config should be an error")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q should name %s", err, path)
	}
}

func TestLoadRejectsMalformedLocalConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	work := t.TempDir()
	t.Chdir(work)

	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, "configs", "ballgame.yaml"), []byte("enemy:\n  speed: -5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(""); err == nil {
		t.Error("invalid local config should be an error")
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != DefaultBallGameConfig() {
		t.Error("with no config files Load should return the defaults")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultBallGameConfig())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse of marshalled config failed: %v", err)
	}
	if cfg != DefaultBallGameConfig() {
		t.Error("marshalled defaults should parse back unchanged")
	}
}

func TestPresets(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("empty preset = %q, %v; expected normal", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}

	base := DefaultBallGameConfig()

	normal := base
	ApplyPreset(&normal, DifficultyNormal)
	if normal != base {
		t.Error("normal preset should not change the config")
	}

	easy := base
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Enemy.Speed >= base.Enemy.Speed || easy.Enemy.SpawnPeriod <= base.Enemy.SpawnPeriod {
		t.Errorf("easy should slow enemies and their spawns: %+v", easy.Enemy)
	}

	for _, n := range []int{0, 1} {
		few := base
		few.Enemy.InitialCount = n
		ApplyPreset(&few, DifficultyEasy)
		if few.Enemy.InitialCount != n {
			t.Errorf("easy preset changed initial_count %d to %d", n, few.Enemy.InitialCount)
		}
	}
	easy3 := base
	easy3.Enemy.InitialCount = 3
	ApplyPreset(&easy3, DifficultyEasy)
	if easy3.Enemy.InitialCount != 2 {
		t.Errorf("easy preset should drop one enemy: initial_count = %d, expected 2", easy3.Enemy.InitialCount)
	}

	hard := base
	ApplyPreset(&hard, DifficultyHard)
	if hard.Enemy.InitialCount != base.Enemy.InitialCount+2 || hard.Enemy.SpawnPeriod >= base.Enemy.SpawnPeriod {
		t.Errorf("hard should add enemies and spawn faster: %+v", hard.Enemy)
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset produced invalid config: %v", err)
	}
}
