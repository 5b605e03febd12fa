package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wordfield/wordfield/pkg/engine"
	"github.com/wordfield/wordfield/pkg/errors"
)

func TestReadJSON(t *testing.T) {
	in := `[{"text": "go", "weight": 12}, {"text": "rust", "weight": 7.5}]`
	list, err := ReadJSON(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}
	want := []engine.Word{{Text: "go", Weight: 12}, {Text: "rust", Weight: 7.5}}
	if len(list) != len(want) {
		t.Fatalf("got %d words, want %d", len(list), len(want))
	}
	for i := range want {
		if list[i] != want[i] {
			t.Errorf("word %d = %+v, want %+v", i, list[i], want[i])
		}
	}
}

func TestReadJSONInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"malformed", `[{"text": "go"`},
		{"empty text", `[{"text": "", "weight": 1}]`},
		{"negative weight", `[{"text": "go", "weight": -1}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.in))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidWordList) {
				t.Errorf("error code = %v, want INVALID_WORD_LIST", errors.GetCode(err))
			}
		})
	}
}

func TestReadTOML(t *testing.T) {
	in := `
[[words]]
text = "go"
weight = 12.0

[[words]]
text = "gopher"
weight = 3.0
`
	list, err := ReadTOML(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadTOML() error: %v", err)
	}
	if len(list) != 2 || list[0].Text != "go" || list[1].Weight != 3 {
		t.Errorf("unexpected list: %+v", list)
	}
}

func TestReadFileDispatch(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "words.json")
	if err := os.WriteFile(jsonPath, []byte(`[{"text": "a", "weight": 1}]`), 0644); err != nil {
		t.Fatal(err)
	}
	tomlPath := filepath.Join(dir, "words.toml")
	if err := os.WriteFile(tomlPath, []byte("[[words]]\ntext = \"b\"\nweight = 2.0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if list, err := ReadFile(jsonPath); err != nil || list[0].Text != "a" {
		t.Errorf("json dispatch: list=%v err=%v", list, err)
	}
	if list, err := ReadFile(tomlPath); err != nil || list[0].Text != "b" {
		t.Errorf("toml dispatch: list=%v err=%v", list, err)
	}
}

func TestReadFileNotFound(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	in := []engine.Word{{Text: "round", Weight: 2}, {Text: "trip", Weight: 1}}

	if err := WriteFile(path, in); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	out, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if len(out) != 2 || out[0] != in[0] || out[1] != in[1] {
		t.Errorf("round trip mismatch: %+v", out)
	}
}
