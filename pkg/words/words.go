// Package words loads and produces the weighted word lists consumed by
// the layout engine.
//
// Lists can come from three places:
//   - JSON files: [{"text": "go", "weight": 12}, ...]
//   - TOML files: repeated [[words]] tables
//   - plain text, counted into frequencies (see [Count])
package words

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/wordfield/wordfield/pkg/engine"
	"github.com/wordfield/wordfield/pkg/errors"
)

// ReadFile loads a word list, dispatching on the file extension:
// .toml is parsed as TOML, everything else as JSON.
func ReadFile(path string) ([]engine.Word, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "word list %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ReadTOML(f)
	}
	return ReadJSON(f)
}

// ReadJSON decodes a JSON word list and validates it.
func ReadJSON(r io.Reader) ([]engine.Word, error) {
	var list []engine.Word
	if err := json.NewDecoder(r).Decode(&list); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidWordList, err, "decode JSON word list")
	}
	if err := validate(list); err != nil {
		return nil, err
	}
	return list, nil
}

// tomlList is the file shape for TOML word lists:
//
//	[[words]]
//	text = "go"
//	weight = 12
type tomlList struct {
	Words []engine.Word `toml:"words"`
}

// ReadTOML decodes a TOML word list and validates it.
func ReadTOML(r io.Reader) ([]engine.Word, error) {
	var doc tomlList
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidWordList, err, "decode TOML word list")
	}
	if err := validate(doc.Words); err != nil {
		return nil, err
	}
	return doc.Words, nil
}

// WriteFile writes a word list as pretty-printed JSON.
func WriteFile(path string, list []engine.Word) error {
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

func validate(list []engine.Word) error {
	for i, w := range list {
		if err := errors.ValidateWordText(w.Text); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidWordList, err, "word %d", i)
		}
		if w.Weight < 0 {
			return errors.New(errors.ErrCodeInvalidWordList,
				"word %d (%q) has negative weight %g", i, w.Text, w.Weight)
		}
	}
	return nil
}
