package spellscan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Alfex4936/spellscan/internal/model"
	"github.com/Alfex4936/spellscan/internal/util"
)

// AnalyzeRequest is the HTTP request body for /v1/analyze.
type AnalyzeRequest struct {
	Text    string   `json:"text"`              // text to analyze (required)
	Tags    bool     `json:"tags,omitempty"`    // include dominant POS tags
	Words   []string `json:"words,omitempty"`   // inline protected words (optional)
	Timeout int      `json:"timeout,omitempty"` // seconds, default 30
}

// AnalyzeResponse pairs the analysis with the corrected rendition of
// the input.
type AnalyzeResponse struct {
	*model.Analysis
	Corrected    string `json:"corrected"`
	EditDistance int    `json:"editDistance"` // Levenshtein(input, corrected)
}

// Routes registers every handler on mux.
func (c *Checker) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/analyze", c.AnalyzeHandler)
	mux.HandleFunc("/v1/batch", c.BatchHandler)
	mux.HandleFunc("/health", HealthHandler)
	mux.HandleFunc("/openapi.json", OpenAPIHandler)
	mux.HandleFunc("/", DocsHandler)
}

// AnalyzeHandler handles POST /v1/analyze requests.
func (c *Checker) AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()
	if req.Text == "" {
		http.Error(w, "text is required", http.StatusBadRequest)
		return
	}

	timeout := 30 * time.Second
	if req.Timeout > 0 {
		timeout = time.Duration(req.Timeout) * time.Second
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	ck := c.withWords(req.Words)

	var (
		an  *model.Analysis
		err error
	)
	if req.Tags {
		an, err = ck.AnalyzeTagged(ctx, req.Text)
	} else {
		an, err = ck.Analyze(ctx, req.Text)
	}
	if err != nil {
		http.Error(w, fmt.Sprintf("Analyze failed: %v", err), http.StatusInternalServerError)
		return
	}

	corrected, err := ck.Correct(ctx, req.Text)
	if err != nil {
		http.Error(w, fmt.Sprintf("Correct failed: %v", err), http.StatusInternalServerError)
		return
	}

	res := AnalyzeResponse{
		Analysis:     an,
		Corrected:    corrected,
		EditDistance: util.Levenshtein(req.Text, corrected),
	}
	w.Header().Set("Content-Type", "application/json")
	out, _ := util.MarshalNoEscape(res, true)
	fmt.Fprint(w, string(out))
}

// BatchHandler handles POST /v1/batch: a multipart upload under the
// "files" field. Form values: tags=1 to include POS tags, words for
// inline protected terms, format=json|csv|zip for the response body.
// csv and zip answer 204 when the batch produced no findings.
func (c *Checker) BatchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseMultipartForm(64 << 20); err != nil {
		http.Error(w, fmt.Sprintf("Invalid upload: %v", err), http.StatusBadRequest)
		return
	}

	fhs := r.MultipartForm.File["files"]
	if len(fhs) == 0 {
		http.Error(w, "upload at least one file under the 'files' field", http.StatusBadRequest)
		return
	}

	files := make([]model.File, 0, len(fhs))
	for _, fh := range fhs {
		f, err := fh.Open()
		if err != nil {
			http.Error(w, fmt.Sprintf("Read %s: %v", fh.Filename, err), http.StatusBadRequest)
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			http.Error(w, fmt.Sprintf("Read %s: %v", fh.Filename, err), http.StatusBadRequest)
			return
		}
		files = append(files, model.File{Name: fh.Filename, Data: data})
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Minute)
	defer cancel()

	ck := c.withWords(r.Form["words"])
	tags := r.FormValue("tags") == "1" || r.FormValue("tags") == "true"

	res, err := ck.Batch(ctx, files, BatchOptions{Tags: tags})
	if err != nil {
		http.Error(w, fmt.Sprintf("Batch failed: %v", err), http.StatusInternalServerError)
		return
	}

	switch r.FormValue("format") {
	case "csv":
		if res.TotalUnknown == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="spelling_errors.csv"`)
		if err := WriteCSV(w, res); err != nil {
			c.logger.Warn("csv write failed", "err", err)
		}
	case "zip":
		if res.TotalUnknown == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.Header().Set("Content-Type", "application/zip")
		w.Header().Set("Content-Disposition", `attachment; filename="corrected_files.zip"`)
		if err := WriteZIP(w, res); err != nil {
			c.logger.Warn("zip write failed", "err", err)
		}
	default:
		w.Header().Set("Content-Type", "application/json")
		out, _ := util.MarshalNoEscape(res, true)
		fmt.Fprint(w, string(out))
	}
}

// HealthHandler handles GET /health requests.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "spellscan",
	})
}

// OpenAPIHandler serves the OpenAPI 3.0 spec at GET /openapi.json.
func OpenAPIHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, openAPISpec)
}

// DocsHandler serves the Redoc UI at GET /.
func DocsHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, redocHTML)
}

const openAPISpec = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Spellscan API",
    "description": "Batch English spelling detection and correction",
    "version": "1.0.0"
  },
  "paths": {
    "/v1/analyze": {
      "post": {
        "summary": "Analyze",
        "description": "Detects unknown words in one text, suggesting a correction per word, optionally with the dominant part-of-speech tag.",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": { "$ref": "#/components/schemas/AnalyzeRequest" },
              "examples": {
                "basic": { "value": { "text": "Tihs is a tset." } },
                "with tags": { "value": { "text": "Tihs is a tset.", "tags": true } },
                "protected words": { "value": { "text": "Yonsei campus", "words": ["Yonsei"] } }
              }
            }
          }
        },
        "responses": {
          "200": {
            "description": "Analysis result",
            "content": {
              "application/json": {
                "schema": { "$ref": "#/components/schemas/AnalyzeResponse" },
                "example": {
                  "findings": [
                    { "word": "tihs", "tag": "NN", "suggest": "this", "distance": 2 },
                    { "word": "tset", "tag": "NN", "suggest": "test", "distance": 2 }
                  ],
                  "unknownCount": 2,
                  "wordCount": 4,
                  "charCount": 15,
                  "corrected": "This is a test.",
                  "editDistance": 4
                }
              }
            }
          },
          "400": { "description": "Invalid request (missing text, bad JSON)" },
          "500": { "description": "Analysis failed" }
        }
      }
    },
    "/v1/batch": {
      "post": {
        "summary": "Batch",
        "description": "Uploads text files under the multipart 'files' field and returns the aggregated report. format=csv downloads the deduplicated findings as UTF-8 (BOM) CSV; format=zip downloads corrected files as an archive; both answer 204 when nothing was found.",
        "requestBody": {
          "required": true,
          "content": {
            "multipart/form-data": {
              "schema": {
                "type": "object",
                "required": ["files"],
                "properties": {
                  "files":  { "type": "array", "items": { "type": "string", "format": "binary" } },
                  "tags":   { "type": "string", "enum": ["1", "true"] },
                  "words":  { "type": "array", "items": { "type": "string" } },
                  "format": { "type": "string", "enum": ["json", "csv", "zip"] }
                }
              }
            }
          }
        },
        "responses": {
          "200": {
            "description": "Batch report",
            "content": {
              "application/json": { "schema": { "$ref": "#/components/schemas/BatchResult" } },
              "text/csv": {},
              "application/zip": {}
            }
          },
          "204": { "description": "No findings; no artifact produced" },
          "400": { "description": "No files uploaded or unreadable upload" }
        }
      }
    },
    "/health": {
      "get": {
        "summary": "Health",
        "responses": {
          "200": {
            "description": "Service is up",
            "content": {
              "application/json": { "example": { "status": "ok", "service": "spellscan" } }
            }
          }
        }
      }
    }
  },
  "components": {
    "schemas": {
      "AnalyzeRequest": {
        "type": "object",
        "required": ["text"],
        "properties": {
          "text":    { "type": "string", "example": "Tihs is a tset." },
          "tags":    { "type": "boolean", "description": "include dominant part-of-speech tags" },
          "words":   { "type": "array", "items": { "type": "string" }, "description": "protected words, never flagged" },
          "timeout": { "type": "integer", "description": "seconds, default 30" }
        }
      },
      "Finding": {
        "type": "object",
        "properties": {
          "word":     { "type": "string", "description": "lower-cased unknown word" },
          "tag":      { "type": "string", "description": "dominant POS tag, empty when untagged" },
          "suggest":  { "type": "string", "description": "best correction, empty when none" },
          "distance": { "type": "integer", "description": "Levenshtein(word, suggest)" }
        }
      },
      "AnalyzeResponse": {
        "type": "object",
        "properties": {
          "findings":     { "type": "array", "items": { "$ref": "#/components/schemas/Finding" } },
          "unknownCount": { "type": "integer" },
          "wordCount":    { "type": "integer" },
          "charCount":    { "type": "integer" },
          "corrected":    { "type": "string" },
          "editDistance": { "type": "integer" }
        }
      },
      "Row": {
        "type": "object",
        "properties": {
          "file":           { "type": "string" },
          "spelling_error": { "type": "string" },
          "word_class":     { "type": "string" },
          "correction":     { "type": "string" }
        }
      },
      "BatchResult": {
        "type": "object",
        "properties": {
          "rows":         { "type": "array", "items": { "$ref": "#/components/schemas/Row" }, "description": "discovery order across files" },
          "unique":       { "type": "array", "items": { "$ref": "#/components/schemas/Row" }, "description": "deduplicated by word, first occurrence wins" },
          "skipped":      { "type": "array", "items": { "type": "string" } },
          "files":        { "type": "integer" },
          "totalUnknown": { "type": "integer" }
        }
      }
    }
  }
}`

const redocHTML = `<!DOCTYPE html>
<html>
<head>
  <title>Spellscan API Docs</title>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <link href="https://fonts.googleapis.com/css?family=Montserrat:300,400,700|Roboto:300,400,700" rel="stylesheet">
  <style>body { margin: 0; padding: 0; }</style>
</head>
<body>
  <redoc spec-url="/openapi.json" expand-responses="200" hide-download-button></redoc>
  <script src="https://cdn.jsdelivr.net/npm/redoc@latest/bundles/redoc.standalone.js"></script>
</body>
</html>`
