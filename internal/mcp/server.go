package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"

	"github.com/abrforms/docreview/internal/config"
	"github.com/abrforms/docreview/internal/review"
	"github.com/abrforms/docreview/internal/validation"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server represents the MCP server instance
type Server struct {
	config        *config.Config
	reviewService *review.Service
	mcpServer     *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, reviewService *review.Service) (*Server, error) {
	if reviewService == nil {
		return nil, fmt.Errorf("reviewService cannot be nil")
	}

	// Create MCP server
	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false), // We don't support dynamic tool capabilities
	)

	s := &Server{
		config:        cfg,
		reviewService: reviewService,
		mcpServer:     mcpServer,
	}

	// Register tools
	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	// Register form validate file tool
	formValidateFileTool := mcp.NewTool(
		"form_validate_file",
		mcp.WithDescription("Extract, classify, and validate a real-estate form PDF"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
		mcp.WithString("doc_type",
			mcp.Description("Document type code (e.g. SPQ, AVID); classified automatically if empty"),
		),
	)
	s.mcpServer.AddTool(formValidateFileTool, s.handleFormValidateFile)

	// Register form validate detections tool
	formValidateDetectionsTool := mcp.NewTool(
		"form_validate_detections",
		mcp.WithDescription("Validate pre-extracted per-page detection records against a form template"),
		mcp.WithString("doc_type",
			mcp.Required(),
			mcp.Description("Document type code (e.g. SPQ, AVID)"),
		),
		mcp.WithObject("pages",
			mcp.Required(),
			mcp.Description("Mapping of page key (\"1\" or \"page_1\") to a detection record with "+
				"text_fields, checkboxes, and signatures"),
		),
	)
	s.mcpServer.AddTool(formValidateDetectionsTool, s.handleFormValidateDetections)

	// Register form list types tool
	formListTypesTool := mcp.NewTool(
		"form_list_types",
		mcp.WithDescription("List the supported document type codes"),
	)
	s.mcpServer.AddTool(formListTypesTool, s.handleFormListTypes)

	// Register form search directory tool
	formSearchDirectoryTool := mcp.NewTool(
		"form_search_directory",
		mcp.WithDescription("Search for PDF files in a directory"),
		mcp.WithString("directory",
			mcp.Description("Directory path to search (uses default if empty)"),
		),
		mcp.WithString("query",
			mcp.Description("Optional case-insensitive filename filter"),
		),
	)
	s.mcpServer.AddTool(formSearchDirectoryTool, s.handleFormSearchDirectory)

	// Register form server info tool
	formServerInfoTool := mcp.NewTool(
		"form_server_info",
		mcp.WithDescription("Get server information, available tools, supported form types, and usage guidance"),
	)
	s.mcpServer.AddTool(formServerInfoTool, s.handleFormServerInfo)
}

// Handler functions
func (s *Server) handleFormValidateFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := request.GetArguments()
	docType := ""
	if dt, ok := args["doc_type"].(string); ok {
		docType = dt
	}

	req := review.FormValidateFileRequest{Path: path, DocType: docType}
	result, err := s.reviewService.FormValidateFile(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := fmt.Sprintf("Validated: %s\n", result.Path)
	responseText += fmt.Sprintf("Document type: %s", result.DocType)
	if result.Classification != nil {
		responseText += fmt.Sprintf(" (classified, confidence %.2f)", result.Classification.Confidence)
	}
	responseText += "\n\n"
	responseText += s.formatReport(result.Report)

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleFormValidateDetections(ctx context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error,
) {
	docType, err := request.RequireString("doc_type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := request.GetArguments()
	pagesArg, ok := args["pages"].(map[string]any)
	if !ok {
		return mcp.NewToolResultError("pages must be an object mapping page keys to detection records"), nil
	}

	pages := make(map[string]json.RawMessage, len(pagesArg))
	for key, value := range pagesArg {
		raw, err := json.Marshal(value)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("page %s: %v", key, err)), nil
		}
		pages[key] = raw
	}

	req := review.FormValidateDetectionsRequest{DocType: docType, Pages: pages}
	result, err := s.reviewService.FormValidateDetections(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := fmt.Sprintf("Document type: %s\n\n", result.DocType)
	responseText += s.formatReport(result.Report)

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleFormListTypes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := s.reviewService.FormListTypes(review.FormListTypesRequest{})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := fmt.Sprintf("Supported document types (%d):\n", result.Count)
	for _, docType := range result.DocumentTypes {
		responseText += fmt.Sprintf("  • %s\n", docType)
	}

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleFormSearchDirectory(ctx context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error,
) {
	args := request.GetArguments()

	directory := ""
	if dir, ok := args["directory"].(string); ok {
		directory = dir
	}
	query := ""
	if q, ok := args["query"].(string); ok {
		query = q
	}

	req := review.FormSearchDirectoryRequest{Directory: directory, Query: query}
	result, err := s.reviewService.FormSearchDirectory(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var responseText string
	if result.TotalCount == 0 {
		responseText = fmt.Sprintf("No PDF files found in directory: %s", result.Directory)
	} else {
		responseText = s.formatSearchDirectoryResult(result)
	}

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleFormServerInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := s.reviewService.FormServerInfo(review.FormServerInfoRequest{},
		s.config.ServerName, s.config.Version)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := s.formatServerInfoResult(result)
	return mcp.NewToolResultText(responseText), nil
}

// Formatting methods
func (s *Server) formatReport(report *validation.Report) string {
	if report.Passed() {
		text := "✅ PASSED: every page schema and cross-field rule is satisfied\n"
		if len(report.SkippedPages) > 0 {
			text += fmt.Sprintf("Skipped pages (no schema): %v\n", report.SkippedPages)
		}
		return text
	}

	text := fmt.Sprintf("❌ FAILED: %d error(s)\n", report.TotalErrors())

	pageNums := make([]int, 0, len(report.PageErrors))
	for pageNum := range report.PageErrors {
		pageNums = append(pageNums, pageNum)
	}
	sort.Ints(pageNums)

	for _, pageNum := range pageNums {
		text += fmt.Sprintf("\nPage %d:\n", pageNum)
		for _, fieldErr := range report.PageErrors[pageNum] {
			text += fmt.Sprintf("  • %s\n", fieldErr.String())
		}
	}

	if len(report.DocumentErrors) > 0 {
		text += "\nDocument rules:\n"
		for _, docErr := range report.DocumentErrors {
			text += fmt.Sprintf("  • %s\n", docErr.Message)
		}
	}

	if len(report.SkippedPages) > 0 {
		text += fmt.Sprintf("\nSkipped pages (no schema): %v\n", report.SkippedPages)
	}

	return text
}

func (s *Server) formatSearchDirectoryResult(result *review.FormSearchDirectoryResult) string {
	text := fmt.Sprintf("Found %d PDF file(s) in directory: %s\n", result.TotalCount, result.Directory)
	text += "\nFiles:\n"

	for i, file := range result.Files {
		text += fmt.Sprintf("%d. %s\n", i+1, file.Name)
		text += fmt.Sprintf("   Path: %s\n", file.Path)
		text += fmt.Sprintf("   Size: %d bytes\n", file.Size)
		text += fmt.Sprintf("   Modified: %s\n", file.ModifiedTime)
		if i < len(result.Files)-1 {
			text += "\n"
		}
	}

	return text
}

func (s *Server) formatServerInfoResult(result *review.FormServerInfoResult) string {
	text := fmt.Sprintf("📋 %s v%s - Server Information\n", result.ServerName, result.Version)
	text += fmt.Sprintf("📁 Forms Directory: %s\n\n", result.FormsDirectory)

	text += fmt.Sprintf("📄 Supported Document Types (%d):\n", len(result.DocumentTypes))
	for _, docType := range result.DocumentTypes {
		text += fmt.Sprintf("  • %s\n", docType)
	}
	text += "\n"

	text += "🛠️  Available Tools:\n"
	for _, tool := range result.AvailableTools {
		text += fmt.Sprintf("\n• %s\n", tool.Name)
		text += fmt.Sprintf("  Description: %s\n", tool.Description)
		text += fmt.Sprintf("  Usage: %s\n", tool.Usage)
		text += fmt.Sprintf("  Parameters: %s\n", tool.Parameters)
	}

	text += "\n" + result.UsageGuidance

	return text
}

// Run starts the MCP server in the configured mode
func (s *Server) Run(ctx context.Context) error {
	if s.config.IsServerMode() {
		return s.runServerMode(ctx)
	}
	return s.runStdioMode(ctx)
}

// runStdioMode runs the server in stdio mode
func (s *Server) runStdioMode(_ context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting form validation MCP server in stdio mode")
		log.Printf("Forms directory: %s", s.config.FormsDirectory)
	}

	// Use the mark3labs/mcp-go server.ServeStdio function
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}

// runServerMode runs the server in HTTP server mode
func (s *Server) runServerMode(ctx context.Context) error {
	// The mark3labs library handles transports differently; stdio is the
	// only supported transport for now.
	log.Printf("Server mode not yet implemented with mark3labs/mcp-go")
	log.Printf("Falling back to stdio mode")
	return s.runStdioMode(ctx)
}
