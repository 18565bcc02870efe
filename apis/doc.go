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

// Package apis defines the public Go-level contracts of the problem details
// engine.
//
// The goal of this package is to provide *small, composable* interfaces that
// transport adapters (net/http, gin, echo, gRPC), framework exception types,
// and the classifier itself can depend on without importing each other.
//
// In other words: this package is the "surface" between the engine and its
// collaborators:
//
//   - Context is what a web framework hands the engine for one request:
//     the request path to read and a response to write exactly once;
//   - HTTPException and ValidationException are what framework-style errors
//     implement to be recognized;
//   - TypeResolver / TitledTypeResolver, Logger and Observer are the
//     optional capabilities configured when the engine is built.
//
// This package must remain lightweight, so it only contains interfaces and
// function types.
package apis
