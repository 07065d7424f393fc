package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// encode renders v as json or yaml. ok is false for any other format.
func encode(format string, v any) (out string, ok bool, err error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", true, fmt.Errorf("failed to marshal output: %w", err)
		}
		return string(data) + "\n", true, nil
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return "", true, fmt.Errorf("failed to marshal output: %w", err)
		}
		return string(data), true, nil
	}
	return "", false, nil
}

// emit writes output to outPath when set, otherwise to w.
func emit(w io.Writer, outPath, output string) error {
	if outPath != "" {
		if err := os.WriteFile(outPath, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err := io.WriteString(w, output)
	return err
}
