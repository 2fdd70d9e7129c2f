package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/san-kum/algoviz/internal/trace"
)

// WriteJSON encodes lg as indented JSON.
func WriteJSON(w io.Writer, lg *trace.Log) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(lg)
}

// ReadJSON decodes a log written by WriteJSON and validates it.
func ReadJSON(r io.Reader) (*trace.Log, error) {
	var lg trace.Log
	if err := json.NewDecoder(r).Decode(&lg); err != nil {
		return nil, fmt.Errorf("decode trace: %w", err)
	}
	if err := lg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid trace: %w", err)
	}
	return &lg, nil
}

// LoadJSON reads a trace file.
func LoadJSON(path string) (*trace.Log, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadJSON(f)
}

// ToFile creates path and hands it to write. Use "-" for stdout.
func ToFile(path string, write func(io.Writer) error) error {
	if path == "-" {
		return write(os.Stdout)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
