// Copyright 2026 The cpp-lox Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parser

import "strconv"

// parseFloat converts a NUMBER token's literal text to a float64. The
// scanner only ever hands it a digit run with at most one embedded
// dot, so the conversion cannot fail.
func parseFloat(lit string) float64 {
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		// Unreachable for well-formed scanner output; treat as 0
		// rather than panicking the parser over a scanner bug.
		return 0
	}
	return f
}
