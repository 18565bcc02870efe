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

package handler

import (
	"errors"

	"dirpx.dev/problem"
	"dirpx.dev/problem/apis"
	"dirpx.dev/problem/category"
)

// match is the result of classifying one error. Exactly one of the error
// fields matching cat is set.
type match struct {
	cat        category.Category
	structured *problem.Error
	validation apis.ValidationException
	exception  apis.HTTPException
}

// Classify returns the category of err. The rules are evaluated in a fixed
// order and the first one that matches wins:
//
//  1. err is or wraps a *problem.Error → category.Structured;
//  2. err is or wraps an apis.ValidationException → category.Validation;
//  3. err is or wraps an apis.HTTPException → category.FrameworkHTTP;
//  4. anything else, nil included → category.Unclassified.
func Classify(err error) category.Category {
	return classify(err).cat
}

func classify(err error) match {
	if pe, ok := problem.As(err); ok {
		return match{cat: category.Structured, structured: pe}
	}
	var ve apis.ValidationException
	if errors.As(err, &ve) && ve != nil {
		return match{cat: category.Validation, validation: ve}
	}
	var he apis.HTTPException
	if errors.As(err, &he) && he != nil {
		return match{cat: category.FrameworkHTTP, exception: he}
	}
	return match{cat: category.Unclassified}
}
