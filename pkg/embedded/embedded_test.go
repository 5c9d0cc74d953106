package embedded

import (
	"reflect"
	"testing"
	"testing/fstest"
)

// 测试用的内存文件系统
// 真正的数据嵌入在项目根目录的 embed.go 中
func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/presets/ocean.yaml": {Data: []byte(`name: ocean
description: deep blue
attributes:
  wave-color: "#1e90ff"
  wave-count: "5"
`)},
		"data/presets/calm.yaml": {Data: []byte(`name: calm
attributes:
  speed: "0.5"
`)},
		"data/presets/broken.yaml": {Data: []byte(`name: broken
attributes:
  wave-colour: red
`)},
		"data/presets/README.txt": {Data: []byte("not a preset")},
	}
}

func withTestFS(t *testing.T) {
	t.Helper()
	Init(testFS())
	t.Cleanup(func() {
		dataFS = nil
		initialized = false
	})
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	initialized = false
	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	withTestFS(t)
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestNotInitialized 测试未初始化时的错误
func TestNotInitialized(t *testing.T) {
	initialized = false

	if _, err := ReadFile("data/presets/ocean.yaml"); err != errNotInitialized {
		t.Errorf("ReadFile() error = %v, 期望 %v", err, errNotInitialized)
	}
	if _, err := Glob("data/*"); err != errNotInitialized {
		t.Errorf("Glob() error = %v, 期望 %v", err, errNotInitialized)
	}
	if Exists("data/presets/ocean.yaml") {
		t.Error("Exists() should be false before Init()")
	}
}

// TestPathNormalization 测试路径标准化
func TestPathNormalization(t *testing.T) {
	withTestFS(t)

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"标准路径", "data/presets/ocean.yaml", false},
		{"带 ./ 前缀", "./data/presets/ocean.yaml", false},
		{"未知前缀", "assets/ocean.yaml", true},
		{"文件不存在", "data/presets/none.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ReadFile(%q) error = %v, 期望错误 %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestListPresets(t *testing.T) {
	withTestFS(t)

	names, err := ListPresets()
	if err != nil {
		t.Fatalf("ListPresets() error: %v", err)
	}
	want := []string{"broken", "calm", "ocean"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("ListPresets() = %v, 期望 %v", names, want)
	}
}

func TestLoadPreset(t *testing.T) {
	withTestFS(t)

	tests := []struct {
		name      string
		preset    string
		wantErr   bool
		wantColor string
	}{
		{"正常预设", "ocean", false, "#1e90ff"},
		{"缺省属性", "calm", false, ""},
		{"未知属性名", "broken", true, ""},
		{"不存在", "missing", true, ""},
		{"路径穿越", "../ocean", true, ""},
		{"空名称", "", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preset, err := LoadPreset(tt.preset)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadPreset(%q) error = %v, 期望错误 %v", tt.preset, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if preset.Name != tt.preset {
				t.Errorf("Name = %q, 期望 %q", preset.Name, tt.preset)
			}
			if got := preset.Attributes["wave-color"]; got != tt.wantColor {
				t.Errorf("wave-color = %q, 期望 %q", got, tt.wantColor)
			}
		})
	}
}
