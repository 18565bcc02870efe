/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package naming

import "strings"

// Suffix is the marker removed from exception names.
const Suffix = "Exception"

// Title derives a problem title from an exception name.
func Title(name string) string {
	return strings.TrimSpace(SplitWords(StripSuffix(name)))
}

// StripSuffix removes the first occurrence of Suffix from name.
func StripSuffix(name string) string {
	return strings.Replace(name, Suffix, "", 1)
}

// SplitWords inserts a space at every lowercase→uppercase boundary.
func SplitWords(s string) string {
	if len(s) < 2 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		b.WriteByte(s[i])
		if i+1 < len(s) && isLower(s[i]) && isUpper(s[i+1]) {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
