package cgen

import (
	"fmt"
	"os"
	"strings"
)

// DefaultLicense is the comment block placed at the top of generated files.
const DefaultLicense = `/******************************************************************************
 *    SPDX-License-Identifier: Apache-2.0
 *
 *    All rights reserved. This program and the accompanying materials are
 *    made available under the terms of the Apache License, Version 2.0
 *    which accompanies this distribution, and is available at
 *    http://www.apache.org/licenses/LICENSE-2.0
 ******************************************************************************/`

// LoadLicense returns the preamble stored in path, or DefaultLicense when path
// is empty.
func LoadLicense(path string) (string, error) {
	if path == "" {
		return DefaultLicense, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read license preamble: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
