package handler

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-openapi/spec"
	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"
	"github.com/swaggo/swag"

	"github.com/joestump/counters/internal/api"
	"github.com/joestump/counters/web"
)

// RapiDocTitle is the page title of the /docs2/ viewer.
const RapiDocTitle = "My special documentation | RapiDoc"

var rapidocTmpl = template.Must(template.ParseFS(web.TemplateFS, "templates/rapidoc.html"))

// DocsHandler serves the generated API description in several shapes.
type DocsHandler struct {
	// instance is the swag registry name of the document.
	instance string
}

func NewDocsHandler() *DocsHandler {
	return &DocsHandler{instance: swag.Name}
}

func (h *DocsHandler) read() ([]byte, error) {
	doc, err := swag.ReadDoc(h.instance)
	if err != nil {
		return nil, fmt.Errorf("read api doc: %w", err)
	}
	return []byte(doc), nil
}

// OpenAPIJSON serves the full document.
func (h *DocsHandler) OpenAPIJSON(w http.ResponseWriter, r *http.Request) {
	doc, err := h.read()
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(doc)
}

// OpenAPIYAML serves the full document as YAML.
func (h *DocsHandler) OpenAPIYAML(w http.ResponseWriter, r *http.Request) {
	doc, err := h.read()
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out, err := yaml.JSONToYAML(doc)
	if err != nil {
		h.fail(w, r, fmt.Errorf("convert api doc to yaml: %w", err))
		return
	}
	w.Header().Set("Content-Type", "application/x-yaml")
	_, _ = w.Write(out)
}

// GroupOpenAPIJSON serves the document restricted to operations tagged
// {group} (case-insensitive). Unknown groups are 404.
func (h *DocsHandler) GroupOpenAPIJSON(w http.ResponseWriter, r *http.Request) {
	doc, err := h.read()
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var sw spec.Swagger
	if err := json.Unmarshal(doc, &sw); err != nil {
		h.fail(w, r, fmt.Errorf("parse api doc: %w", err))
		return
	}
	if !filterByTag(&sw, chi.URLParam(r, "group")) {
		api.WriteError(w, http.StatusNotFound, "api group not found", "NOT_FOUND")
		return
	}
	out, err := json.Marshal(&sw)
	if err != nil {
		h.fail(w, r, fmt.Errorf("encode api doc: %w", err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(out)
}

// RapiDoc renders the RapiDoc viewer pointed at the full document.
func (h *DocsHandler) RapiDoc(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := rapidocTmpl.Execute(w, struct {
		Title   string
		SpecURL string
	}{Title: RapiDocTitle, SpecURL: "../openapi.json"})
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("render rapidoc")
	}
}

func (h *DocsHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	zerolog.Ctx(r.Context()).Error().Err(err).Msg("serve api doc")
	api.WriteError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
}

// filterByTag drops every operation not tagged tag, then every path left
// without operations. It reports whether any operation matched.
func filterByTag(sw *spec.Swagger, tag string) bool {
	if sw.Paths == nil {
		return false
	}
	matched := false
	for path, item := range sw.Paths.Paths {
		ops := []**spec.Operation{
			&item.Get, &item.Put, &item.Post, &item.Delete,
			&item.Options, &item.Head, &item.Patch,
		}
		kept := 0
		for _, op := range ops {
			if *op == nil {
				continue
			}
			if hasTag(*op, tag) {
				kept++
				continue
			}
			*op = nil
		}
		if kept == 0 {
			delete(sw.Paths.Paths, path)
			continue
		}
		matched = true
		sw.Paths.Paths[path] = item
	}

	tags := sw.Tags[:0]
	for _, t := range sw.Tags {
		if strings.EqualFold(t.Name, tag) {
			tags = append(tags, t)
		}
	}
	sw.Tags = tags
	return matched
}

func hasTag(op *spec.Operation, tag string) bool {
	for _, t := range op.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
