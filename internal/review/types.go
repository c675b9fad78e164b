package review

import (
	"encoding/json"

	"github.com/abrforms/docreview/internal/classify"
	"github.com/abrforms/docreview/internal/validation"
)

// FormValidateFileRequest asks for a PDF file to be extracted, classified,
// and validated against its form template.
type FormValidateFileRequest struct {
	Path    string `json:"path"`
	DocType string `json:"doc_type,omitempty"` // skip classification when set
}

// FormValidateFileResult is the outcome of validating one PDF file.
type FormValidateFileResult struct {
	Path           string             `json:"path"`
	DocType        string             `json:"doc_type"`
	Classification *classify.Result   `json:"classification,omitempty"`
	Report         *validation.Report `json:"report"`
}

// FormValidateDetectionsRequest carries pre-extracted detection records, as
// produced by an external detector, keyed by page. Page keys accept both the
// bare number ("1") and the prefixed form ("page_1").
type FormValidateDetectionsRequest struct {
	DocType string                     `json:"doc_type"`
	Pages   map[string]json.RawMessage `json:"pages"`
}

// FormValidateDetectionsResult is the outcome of validating detection input.
type FormValidateDetectionsResult struct {
	DocType string             `json:"doc_type"`
	Report  *validation.Report `json:"report"`
}

// FormListTypesRequest asks for the registered document types.
type FormListTypesRequest struct{}

// FormListTypesResult lists the registered document types.
type FormListTypesResult struct {
	DocumentTypes []string `json:"document_types"`
	Count         int      `json:"count"`
}

// FormSearchDirectoryRequest asks for PDF files in a directory, optionally
// filtered by a case-insensitive substring query on the filename.
type FormSearchDirectoryRequest struct {
	Directory string `json:"directory,omitempty"`
	Query     string `json:"query,omitempty"`
}

// FileInfo describes one PDF file found by a directory search.
type FileInfo struct {
	Path         string `json:"path"`
	Name         string `json:"name"`
	Size         int64  `json:"size"`
	ModifiedTime string `json:"modified_time"`
}

// FormSearchDirectoryResult lists the PDF files found by a directory search.
type FormSearchDirectoryResult struct {
	Directory  string     `json:"directory"`
	Files      []FileInfo `json:"files"`
	TotalCount int        `json:"total_count"`
}

// FormServerInfoRequest asks for server information and usage guidance.
type FormServerInfoRequest struct{}

// ToolInfo describes one available tool for server info responses.
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Usage       string `json:"usage"`
	Parameters  string `json:"parameters"`
}

// FormServerInfoResult describes the server and its tools.
type FormServerInfoResult struct {
	ServerName     string     `json:"server_name"`
	Version        string     `json:"version"`
	FormsDirectory string     `json:"forms_directory"`
	DocumentTypes  []string   `json:"document_types"`
	AvailableTools []ToolInfo `json:"available_tools"`
	UsageGuidance  string     `json:"usage_guidance"`
}
