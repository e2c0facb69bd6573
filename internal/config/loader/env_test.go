package loader

import "testing"

func TestEnvLoader_Load(t *testing.T) {
	t.Setenv("CUTLINE_LOG_LEVEL", "debug")
	t.Setenv("CUTLINE_VIEW_HEIGHT", "2")
	t.Setenv("CUTLINE_CLIPBOARD_SYSTEM", "off")

	config, err := NewEnvLoader("CUTLINE_").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if val, ok := getByPath(config, "log.level"); !ok || val != "debug" {
		t.Errorf("log.level = %v, want 'debug'", val)
	}
	if val, ok := getByPath(config, "view.height"); !ok || val != int64(2) {
		t.Errorf("view.height = %v (%T), want 2", val, val)
	}
	if val, ok := getByPath(config, "clipboard.system"); !ok || val != false {
		t.Errorf("clipboard.system = %v, want false", val)
	}
	if _, ok := getByPath(config, "search.case_insensitive"); ok {
		t.Error("unset variables should not appear")
	}
}

func TestEnvLoader_AddMapping(t *testing.T) {
	t.Setenv("MY_LEVEL", "warn")

	l := NewEnvLoaderWithMapping("MY_", nil)
	l.AddMapping("MY_LEVEL", "log.level")

	config, err := l.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if val, _ := getByPath(config, "log.level"); val != "warn" {
		t.Errorf("log.level = %v, want warn", val)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"", ""},
		{"true", true},
		{"Yes", true},
		{"off", false},
		{"1", int64(1)},
		{"0", int64(0)},
		{"-12", int64(-12)},
		{"1.5", 1.5},
		{"info", "info"},
	}
	for _, tt := range tests {
		if got := parseValue(tt.in); got != tt.want {
			t.Errorf("parseValue(%q) = %v (%T), want %v (%T)", tt.in, got, got, tt.want, tt.want)
		}
	}
}
