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

// Package category names the closed set of shapes an error handler sorts
// every error into.
//
// A category is derived, never stored: the handler computes it from the
// error value each time. Categories are evaluated in a fixed priority
// order and exactly one applies:
//
//  1. Structured: the error is (or wraps) a problem.Error;
//  2. Validation: a "bad request" exception carrying one or more messages;
//  3. FrameworkHTTP: any other exception exposing a status and a name;
//  4. Unclassified: everything else, always surfaced as a 500.
//
// The canonical string forms are lowercase and underscore-separated so they
// are suitable for log fields and metric labels.
package category
