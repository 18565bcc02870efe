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

// Package naming turns exception type names into human-readable problem
// titles.
//
// Web frameworks name their HTTP exceptions after the status phrase, e.g.
// "NotFoundException" or "BadRequestException". When an exception does not
// carry an explicit title, the title is derived from that name:
//
//  1. the first occurrence of "Exception" is removed (anywhere in the
//     string, not only as a suffix);
//  2. a single space is inserted wherever an ASCII lowercase letter is
//     immediately followed by an ASCII uppercase letter;
//  3. surrounding whitespace is trimmed.
//
// So "NotFoundException" becomes "Not Found".
package naming
