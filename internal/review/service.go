// Package review is the orchestration layer: it wires PDF field extraction,
// template classification, and schema validation into the operations exposed
// over MCP and the batch CLI.
package review

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/abrforms/docreview/internal/classify"
	"github.com/abrforms/docreview/internal/detect"
	"github.com/abrforms/docreview/internal/validation"
	"github.com/abrforms/docreview/internal/validation/templates"
)

// Service handles form validation operations by orchestrating extraction,
// classification, and validation components.
type Service struct {
	maxFileSize    int64
	formsDirectory string
	registry       *validation.Registry
	classifier     *classify.Classifier
	extractor      *detect.Extractor
}

// NewService creates a new review service with every supported form template
// registered.
func NewService(maxFileSize int64, formsDirectory string) (*Service, error) {
	registry, err := templates.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to build template registry: %w", err)
	}

	return &Service{
		maxFileSize:    maxFileSize,
		formsDirectory: formsDirectory,
		registry:       registry,
		classifier:     classify.NewClassifier(),
		extractor:      detect.NewExtractor(false),
	}, nil
}

// Registry exposes the template registry, mainly for the CLI listing path.
func (s *Service) Registry() *validation.Registry {
	return s.registry
}

// FormValidateFile extracts the form fields of a PDF file, classifies it
// when no document type is given, and validates it against its template.
func (s *Service) FormValidateFile(req FormValidateFileRequest) (*FormValidateFileResult, error) {
	if req.Path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}
	if err := s.validatePDFPath(req.Path); err != nil {
		return nil, err
	}

	fields, err := s.extractor.ExtractFile(req.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to extract form fields: %w", err)
	}
	records := detect.Records(fields)

	result := &FormValidateFileResult{Path: req.Path, DocType: req.DocType}

	if result.DocType == "" {
		classification := s.classify(req.Path, records)
		result.Classification = &classification
		if classification.DocType == "" {
			return nil, fmt.Errorf("could not classify document: %s", filepath.Base(req.Path))
		}
		result.DocType = classification.DocType
	}

	report, err := validation.ValidateDocument(s.registry, result.DocType, records)
	if err != nil {
		return nil, err
	}
	result.Report = report

	return result, nil
}

// FormValidateDetections validates pre-extracted detection records against a
// named template. The document type is required since there is no PDF to
// classify.
func (s *Service) FormValidateDetections(req FormValidateDetectionsRequest) (*FormValidateDetectionsResult, error) {
	if req.DocType == "" {
		return nil, fmt.Errorf("doc_type cannot be empty")
	}

	pages := make(map[int]validation.RawDetectionRecord, len(req.Pages))
	for key, raw := range req.Pages {
		pageNum, err := parsePageKey(key)
		if err != nil {
			return nil, err
		}
		rec, err := validation.ParseRawRecord(raw)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", pageNum, err)
		}
		pages[pageNum] = rec
	}

	report, err := validation.ValidateDocument(s.registry, req.DocType, pages)
	if err != nil {
		return nil, err
	}

	return &FormValidateDetectionsResult{DocType: req.DocType, Report: report}, nil
}

// FormListTypes lists the registered document types.
func (s *Service) FormListTypes(req FormListTypesRequest) (*FormListTypesResult, error) {
	types := s.registry.DocumentTypes()
	return &FormListTypesResult{DocumentTypes: types, Count: len(types)}, nil
}

// FormSearchDirectory finds PDF files in a directory, filtered by an
// optional case-insensitive filename query. An empty directory falls back to
// the configured forms directory.
func (s *Service) FormSearchDirectory(req FormSearchDirectoryRequest) (*FormSearchDirectoryResult, error) {
	directory := req.Directory
	if directory == "" {
		directory = s.formsDirectory
	}

	info, err := os.Stat(directory)
	if err != nil {
		return nil, fmt.Errorf("cannot access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", directory)
	}

	query := strings.ToLower(req.Query)
	var files []FileInfo
	err = filepath.WalkDir(directory, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		if !strings.HasSuffix(strings.ToLower(d.Name()), ".pdf") {
			return nil
		}
		if query != "" && !strings.Contains(strings.ToLower(d.Name()), query) {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return nil
		}
		files = append(files, FileInfo{
			Path:         path,
			Name:         d.Name(),
			Size:         fi.Size(),
			ModifiedTime: fi.ModTime().Format("2006-01-02 15:04:05"),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search directory: %w", err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	return &FormSearchDirectoryResult{
		Directory:  directory,
		Files:      files,
		TotalCount: len(files),
	}, nil
}

// FormServerInfo returns server information and usage guidance.
func (s *Service) FormServerInfo(req FormServerInfoRequest, serverName, version string) (*FormServerInfoResult, error) {
	availableTools := []ToolInfo{
		{
			Name:        "form_validate_file",
			Description: "Extract, classify, and validate a real-estate form PDF",
			Usage: "Use this tool to run the full validation pipeline on a PDF file. " +
				"Pass doc_type to skip classification when the form type is already known.",
			Parameters: "path (required): Full absolute path to the PDF file, " +
				"doc_type (optional): Document type code such as SPQ or AVID",
		},
		{
			Name:        "form_validate_detections",
			Description: "Validate pre-extracted detection records against a form template",
			Usage: "Use this tool when field detection already happened elsewhere and you have " +
				"per-page JSON records with text_fields, checkboxes, and signatures.",
			Parameters: "doc_type (required): Document type code, " +
				"pages (required): Mapping of page key (\"1\" or \"page_1\") to detection record",
		},
		{
			Name:        "form_list_types",
			Description: "List the supported document type codes",
			Usage:       "Use this tool to discover which form templates can be validated.",
			Parameters:  "none",
		},
		{
			Name:        "form_search_directory",
			Description: "Search for PDF files in a directory",
			Usage:       "Use this tool to find candidate form PDFs before validating them.",
			Parameters: "directory (optional): Directory to search (uses the configured forms " +
				"directory if empty), query (optional): Case-insensitive filename filter",
		},
		{
			Name:        "form_server_info",
			Description: "Get server information and usage guidance",
			Usage:       "Use this tool to learn about the server configuration and workflow.",
			Parameters:  "none",
		},
	}

	usageGuidance := `Form Validation Server Usage Guide:

1. DISCOVER INPUTS:
   - Use 'form_search_directory' to find candidate form PDFs
   - Use 'form_list_types' to see which form templates are supported

2. VALIDATE:
   - Use 'form_validate_file' for PDFs with interactive form fields;
     classification is automatic but doc_type can be forced
   - Use 'form_validate_detections' when an external detector already
     produced per-page records

3. READ REPORTS:
   - 'page_errors' lists schema violations per page (missing required
     fields, wrong checkbox states)
   - 'document_errors' lists cross-field rule violations (missing
     signatures, mismatched names, out-of-order dates)
   - 'skipped_pages' lists input pages the template declares no schema for
   - A document passes when both error lists are empty

IMPORTANT NOTES:
- Always use absolute file paths
- Validation reports are exhaustive: every violation is listed, not just
  the first one`

	return &FormServerInfoResult{
		ServerName:     serverName,
		Version:        version,
		FormsDirectory: s.formsDirectory,
		DocumentTypes:  s.registry.DocumentTypes(),
		AvailableTools: availableTools,
		UsageGuidance:  usageGuidance,
	}, nil
}

// classify gathers classification evidence from the file and its extracted
// records. Text extraction failures are tolerated since classification can
// fall back on filename and field keys alone.
func (s *Service) classify(path string, records map[int]validation.RawDetectionRecord) classify.Result {
	var keys []string
	for _, rec := range records {
		normalized, _ := validation.Normalize(rec)
		for key := range normalized {
			keys = append(keys, key)
		}
	}

	text, err := classify.FirstPageText(path)
	if err != nil {
		text = ""
	}

	return s.classifier.Classify(classify.Input{
		Filename:      filepath.Base(path),
		FirstPageText: text,
		FieldKeys:     keys,
	})
}

// validatePDFPath performs basic checks before handing a path to the
// extractor.
func (s *Service) validatePDFPath(path string) error {
	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}
	if fileInfo.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}
	if !strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return fmt.Errorf("file is not a PDF: %s", path)
	}
	if fileInfo.Size() > s.maxFileSize {
		return fmt.Errorf("file too large: %d bytes (max: %d bytes)", fileInfo.Size(), s.maxFileSize)
	}
	return nil
}

// parsePageKey accepts "page_N" and bare "N" page keys.
func parsePageKey(key string) (int, error) {
	trimmed := strings.TrimPrefix(key, "page_")
	pageNum, err := strconv.Atoi(trimmed)
	if err != nil || pageNum < 1 {
		return 0, fmt.Errorf("invalid page key %q: expected \"page_N\" or \"N\" with N >= 1", key)
	}
	return pageNum, nil
}
