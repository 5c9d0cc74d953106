package config

import (
	"flag"
	"io"
	"testing"
)

func TestAttrFlags_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		wantKey string
		wantVal string
	}{
		{"普通属性", "wave-count=6", false, AttrWaveCount, "6"},
		{"值中包含等号", "wave-color=rgb(1,2,3)", false, AttrWaveColor, "rgb(1,2,3)"},
		{"空值", "height=", false, AttrHeight, ""},
		{"缺少等号", "speed", true, "", ""},
		{"空名称", "=1", true, "", ""},
		{"未知属性", "wave-colour=red", true, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := AttrFlags{}
			err := attrs.Set(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Set(%q) error = %v, 期望错误 %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got, ok := attrs[tt.wantKey]; !ok || got != tt.wantVal {
				t.Errorf("attrs[%q] = %q, 期望 %q", tt.wantKey, got, tt.wantVal)
			}
		})
	}
}

func TestAttrFlags_FlagSet(t *testing.T) {
	attrs := AttrFlags{}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Var(attrs, "attr", "")

	err := fs.Parse([]string{"-attr", "speed=2", "-attr", "position=both", "-attr", "speed=3"})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if attrs[AttrSpeed] != "3" {
		t.Errorf("speed = %q, 期望后出现的值 3", attrs[AttrSpeed])
	}
	if got := attrs.String(); got != "position=both,speed=3" {
		t.Errorf("String() = %q", got)
	}
}

func TestAttrFlags_SetNil(t *testing.T) {
	var attrs AttrFlags
	if err := attrs.Set("speed=2"); err == nil {
		t.Error("Set() on nil AttrFlags should return an error")
	}
}
