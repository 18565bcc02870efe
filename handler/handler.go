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
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"dirpx.dev/problem"
	"dirpx.dev/problem/apis"
	"dirpx.dev/problem/category"
	"dirpx.dev/problem/naming"
	"dirpx.dev/problem/typeuri"
)

// InternalTitle is the title of every unclassified problem.
const InternalTitle = "Internal Server Error"

// Handler classifies errors and writes problem details responses.
type Handler struct {
	resolver apis.TitledTypeResolver
	logger   apis.Logger
	observer apis.Observer
}

// New builds an immutable Handler. With no options the handler uses the
// default type URI scheme and does not log.
func New(opts ...Option) *Handler {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return &Handler{
		resolver: c.resolver,
		logger:   c.logger,
		observer: c.observer,
	}
}

// Handle writes the problem for err to c. It never panics and never
// returns an error: it is the last step of request processing.
func (h *Handler) Handle(err error, c apis.Context) {
	h.HandleContext(context.Background(), err, c)
}

// HandleContext is Handle with a context passed through to the logger.
func (h *Handler) HandleContext(ctx context.Context, err error, c apis.Context) {
	_, body := h.Emit(ctx, err, c.RequestPath())

	c.SetStatus(body.Status)
	c.SetHeader("Content-Type", problem.MediaType)
	if werr := c.SendJSON(body); werr != nil {
		slog.Default().ErrorContext(ctx, "problem: write response",
			slog.Int("status", body.Status),
			slog.String("instance", body.Instance),
			slog.Any("error", werr),
		)
	}
}

// Emit builds the problem for err, reports it to the logger and the
// observer, and returns it without writing anything. Transports that do not
// speak HTTP use it directly.
func (h *Handler) Emit(ctx context.Context, err error, instance string) (category.Category, problem.Detail) {
	cat, body := h.build(err, instance)
	h.report(ctx, cat, body)
	return cat, body
}

// Build returns the problem for err as it would be written for a request to
// instance. It has no side effects.
func (h *Handler) Build(err error, instance string) problem.Detail {
	_, body := h.build(err, instance)
	return body
}

func (h *Handler) build(err error, instance string) (cat category.Category, body problem.Detail) {
	defer func() {
		if r := recover(); r != nil {
			cat, body = category.Unclassified, h.internal(safeMessage(err), instance)
		}
	}()

	m := classify(err)
	switch m.cat {
	case category.Structured:
		body = h.structured(m.structured, instance)
	case category.Validation:
		body = h.validation(m.validation, instance)
	case category.FrameworkHTTP:
		body = h.exception(m.exception, instance)
	default:
		body = h.internal(safeMessage(err), instance)
	}
	return m.cat, encodable(body)
}

// encodable drops extension members that cannot be encoded as JSON, such as
// NaN or infinite floats. The canonical members always encode.
func encodable(body problem.Detail) problem.Detail {
	if len(body.Extensions) == 0 {
		return body
	}
	if _, err := json.Marshal(body); err == nil {
		return body
	}
	kept := make(map[string]any, len(body.Extensions))
	for k, v := range body.Extensions {
		if _, err := json.Marshal(v); err == nil {
			kept[k] = v
		}
	}
	if len(kept) == 0 {
		kept = nil
	}
	body.Extensions = kept
	return body
}

func (h *Handler) structured(e *problem.Error, instance string) problem.Detail {
	p := e.Payload
	out := problem.Detail{
		Status:   e.Status,
		Type:     p.Type,
		Title:    p.Title,
		Detail:   p.Detail,
		Instance: p.Instance,
	}
	if out.Type == "" {
		out.Type = h.resolveType(out.Status, out.Title)
	}
	if out.Instance == "" {
		out.Instance = instance
	}
	for k, v := range p.Extensions {
		if problem.IsReserved(k) {
			continue
		}
		if out.Extensions == nil {
			out.Extensions = make(map[string]any, len(p.Extensions))
		}
		out.Extensions[k] = v
	}
	return out
}

func (h *Handler) validation(e apis.ValidationException, instance string) problem.Detail {
	detail := e.Error()
	if msgs := e.Messages(); len(msgs) > 0 {
		detail = msgs[0]
	}
	return h.fromException(e, detail, instance)
}

func (h *Handler) exception(e apis.HTTPException, instance string) problem.Detail {
	return h.fromException(e, e.Error(), instance)
}

func (h *Handler) fromException(e apis.HTTPException, detail, instance string) problem.Detail {
	status := e.HTTPStatus()
	title := exceptionTitle(e)
	return problem.Detail{
		Status:   status,
		Type:     h.resolveType(status, title),
		Title:    title,
		Detail:   detail,
		Instance: instance,
	}
}

func (h *Handler) internal(detail, instance string) problem.Detail {
	return problem.Detail{
		Status:   http.StatusInternalServerError,
		Type:     h.resolveType(http.StatusInternalServerError, InternalTitle),
		Title:    InternalTitle,
		Detail:   detail,
		Instance: instance,
	}
}

// resolveType falls back to the default scheme when no resolver is set, or
// when it panics or returns "".
func (h *Handler) resolveType(status int, title string) (uri string) {
	if h.resolver == nil {
		return typeuri.Default(status)
	}
	defer func() {
		if r := recover(); r != nil {
			uri = typeuri.Default(status)
		}
	}()
	if uri = h.resolver(status, title); uri == "" {
		uri = typeuri.Default(status)
	}
	return uri
}

func (h *Handler) report(ctx context.Context, cat category.Category, body problem.Detail) {
	defer func() {
		if r := recover(); r != nil {
			slog.Default().ErrorContext(ctx, "problem: report hook panicked", slog.Any("panic", r))
		}
	}()
	if h.logger != nil {
		h.logger.Error(ctx, body)
	}
	if h.observer != nil {
		h.observer.Observe(cat, body.Status)
	}
}

// exceptionTitle prefers an explicit title over one derived from the name.
func exceptionTitle(e apis.HTTPException) string {
	if te, ok := e.(apis.TitledException); ok {
		if t := te.ExceptionTitle(); t != "" {
			return t
		}
	}
	return naming.Title(e.ExceptionName())
}

// safeMessage returns err.Error(), or "" for a nil error. A panicking
// Error method yields a generic message.
func safeMessage(err error) (msg string) {
	if err == nil {
		return ""
	}
	defer func() {
		if r := recover(); r != nil {
			msg = fmt.Sprintf("%T", err)
		}
	}()
	return err.Error()
}
