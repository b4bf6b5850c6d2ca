// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glapp

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// LoadParams decodes the parameter file at path into v, which should
// already hold the default values. The format is chosen by extension:
// .toml, or .yaml / .yml. Fields missing from the file keep their
// defaults. An empty path does nothing.
func LoadParams(path string, v any) error {
	if path == "" {
		return nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("glapp: reading params: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(b, v)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, v)
	default:
		return fmt.Errorf("glapp: params file %q: unsupported extension %q", path, ext)
	}
	if err != nil {
		return fmt.Errorf("glapp: decoding params %q: %w", path, err)
	}
	return nil
}
