package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/abrforms/docreview/internal/review"
	"github.com/abrforms/docreview/internal/validation"
)

var (
	docType      = flag.String("type", "", "Document type code (e.g. SPQ, AVID); classified automatically if empty")
	outputFormat = flag.String("format", "text", "Output format: text, json")
	detections   = flag.Bool("detections", false, "Treat inputs as detection JSON files instead of PDFs (requires -type)")
	maxFileSize  = flag.Int64("maxfilesize", 100*1024*1024, "Maximum PDF file size in bytes")
	help         = flag.Bool("help", false, "Show help message")
)

// Exit codes: 0 all documents passed, 1 structural failure (unreadable input,
// unknown type), 2 at least one document failed validation.
const (
	exitOK         = 0
	exitStructural = 1
	exitFailed     = 2
)

// validationOutcome is the JSON output shape for one input file.
type validationOutcome struct {
	FilePath string             `json:"file_path"`
	DocType  string             `json:"doc_type,omitempty"`
	Passed   bool               `json:"passed"`
	Report   *validation.Report `json:"report,omitempty"`
	Error    string             `json:"error,omitempty"`
}

func main() {
	flag.Parse()

	if *help {
		printHelp()
		return
	}

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: at least one input file required\n\n")
		printUsage()
		os.Exit(exitStructural)
	}

	if *detections && *docType == "" {
		fmt.Fprintf(os.Stderr, "Error: -detections requires -type\n")
		os.Exit(exitStructural)
	}

	svc, err := review.NewService(*maxFileSize, ".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitStructural)
	}

	exitCode := exitOK
	var outcomes []validationOutcome

	for _, path := range flag.Args() {
		outcome := validateOne(svc, path)
		outcomes = append(outcomes, outcome)

		switch {
		case outcome.Error != "":
			exitCode = exitStructural
		case !outcome.Passed && exitCode == exitOK:
			exitCode = exitFailed
		}
	}

	if err := outputResults(outcomes); err != nil {
		fmt.Fprintf(os.Stderr, "Error outputting results: %v\n", err)
		os.Exit(exitStructural)
	}

	os.Exit(exitCode)
}

func validateOne(svc *review.Service, path string) validationOutcome {
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}
	outcome := validationOutcome{FilePath: absPath}

	var report *validation.Report
	if *detections {
		report, err = validateDetectionsFile(svc, absPath)
		outcome.DocType = *docType
	} else {
		var result *review.FormValidateFileResult
		result, err = svc.FormValidateFile(review.FormValidateFileRequest{Path: absPath, DocType: *docType})
		if err == nil {
			outcome.DocType = result.DocType
			report = result.Report
		}
	}

	if err != nil {
		outcome.Error = err.Error()
		return outcome
	}

	outcome.Report = report
	outcome.Passed = report.Passed()
	return outcome
}

func validateDetectionsFile(svc *review.Service, path string) (*validation.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read detections file: %w", err)
	}

	var pages map[string]json.RawMessage
	if err := json.Unmarshal(data, &pages); err != nil {
		return nil, fmt.Errorf("detections file is not a JSON object of pages: %w", err)
	}

	result, err := svc.FormValidateDetections(review.FormValidateDetectionsRequest{
		DocType: *docType,
		Pages:   pages,
	})
	if err != nil {
		return nil, err
	}
	return result.Report, nil
}

func outputResults(outcomes []validationOutcome) error {
	switch *outputFormat {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(outcomes)
	case "text":
		for i, outcome := range outcomes {
			if i > 0 {
				fmt.Println()
			}
			printTextOutcome(outcome)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", *outputFormat)
	}
}

func printTextOutcome(outcome validationOutcome) {
	fmt.Printf("%s\n", outcome.FilePath)

	if outcome.Error != "" {
		fmt.Printf("  ❌ ERROR: %s\n", outcome.Error)
		return
	}

	fmt.Printf("  Document type: %s\n", outcome.DocType)

	if outcome.Passed {
		fmt.Println("  ✅ PASSED")
	} else {
		fmt.Printf("  ❌ FAILED (%d errors)\n", outcome.Report.TotalErrors())
	}

	for _, pageNum := range sortedPageNumbers(outcome.Report) {
		for _, fieldErr := range outcome.Report.PageErrors[pageNum] {
			fmt.Printf("    • %s\n", fieldErr.String())
		}
	}
	for _, docErr := range outcome.Report.DocumentErrors {
		fmt.Printf("    • %s\n", docErr.Message)
	}
	if len(outcome.Report.SkippedPages) > 0 {
		fmt.Printf("  Skipped pages (no schema): %v\n", outcome.Report.SkippedPages)
	}
}

func sortedPageNumbers(report *validation.Report) []int {
	nums := make([]int, 0, len(report.PageErrors))
	for n := range report.PageErrors {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

func printHelp() {
	fmt.Println("Validate Forms - Batch validation of real-estate form PDFs")
	fmt.Println()
	fmt.Println("Extracts the interactive form fields of each input PDF, classifies the")
	fmt.Println("form template, and validates every page against the template's schema")
	fmt.Println("and cross-field rules.")
	fmt.Println()
	printUsage()
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -type          Document type code (skips classification)")
	fmt.Println("  -format        Output format: text (default), json")
	fmt.Println("  -detections    Inputs are detection JSON files, not PDFs (requires -type)")
	fmt.Println("  -maxfilesize   Maximum PDF file size in bytes")
	fmt.Println("  -help          Show this help message")
	fmt.Println()
	fmt.Println("EXIT CODES:")
	fmt.Println("  0  every document passed validation")
	fmt.Println("  1  structural failure (unreadable input, unknown document type)")
	fmt.Println("  2  at least one document failed validation")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  validate_forms disclosure.pdf")
	fmt.Println("  validate_forms -type SPQ questionnaire.pdf")
	fmt.Println("  validate_forms -format json forms/*.pdf")
	fmt.Println("  validate_forms -detections -type MORTGAGE_ABA detections.json")
}

func printUsage() {
	fmt.Println("USAGE:")
	fmt.Println("  validate_forms [OPTIONS] <file> [<file>...]")
}

func init() {
	// Custom flag usage
	flag.Usage = func() {
		printHelp()
	}
}
