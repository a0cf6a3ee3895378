package internal

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"

	"github.com/glitchlab/faultdeck/config"
	"github.com/glitchlab/faultdeck/logging"
	"github.com/glitchlab/faultdeck/models"
)

// Exporter writes error history snapshots to disk
type Exporter struct {
	config *config.Config
	logger logging.LoggerInterface
}

// ExportOptions contains export configuration
type ExportOptions struct {
	Format     string
	OutputFile string
	Overwrite  bool
}

// ExportResult contains the results of an export operation
type ExportResult struct {
	OutputFile  string
	Format      string
	RecordCount int
	FileSize    int64
	Duration    time.Duration
	Error       error
}

// NewExporter creates a new exporter instance
func NewExporter(cfg *config.Config) (*Exporter, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}

	return &Exporter{
		config: cfg,
		logger: logging.NewLogger(cfg.App.LogLevel, cfg.App.LogFile),
	}, nil
}

// Export writes the snapshot based on the provided options
func (e *Exporter) Export(snapshot models.ErrorExport, options ExportOptions) (*ExportResult, error) {
	startTime := time.Now()

	if options.Format == "" {
		options.Format = e.config.Export.Format
	}
	if options.OutputFile == "" {
		options.OutputFile = e.defaultOutputFile(options.Format)
	}

	result := &ExportResult{
		OutputFile: options.OutputFile,
		Format:     options.Format,
	}

	if !options.Overwrite {
		if _, err := os.Stat(options.OutputFile); err == nil {
			result.Error = fmt.Errorf("output file already exists: %s", options.OutputFile)
			return result, result.Error
		}
	}

	var err error
	switch options.Format {
	case "csv":
		err = e.exportCSV(snapshot, options.OutputFile)
	case "json":
		err = e.exportJSON(snapshot, options.OutputFile)
	case "yaml":
		err = e.exportYAML(snapshot, options.OutputFile)
	default:
		err = fmt.Errorf("unsupported export format: %s", options.Format)
	}

	if err != nil {
		result.Error = err
		return result, err
	}

	fileInfo, err := os.Stat(options.OutputFile)
	if err != nil {
		result.Error = fmt.Errorf("failed to stat output file: %w", err)
		return result, result.Error
	}

	result.RecordCount = len(snapshot.Errors)
	result.FileSize = fileInfo.Size()
	result.Duration = time.Since(startTime)

	e.logger.Infof("Export completed: %d records, %d bytes, %v",
		result.RecordCount, result.FileSize, result.Duration)

	return result, nil
}

// defaultOutputFile builds a timestamped filename in the configured directory
func (e *Exporter) defaultOutputFile(format string) string {
	name := fmt.Sprintf("faultdeck-export-%s.%s", time.Now().Format("20060102-150405"), format)
	return filepath.Join(e.config.Export.OutputDir, name)
}

// exportJSON exports the snapshot as pretty-printed JSON
func (e *Exporter) exportJSON(snapshot models.ErrorExport, outputFile string) error {
	data, err := sonic.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	if err := e.writeOutputFile(outputFile, data); err != nil {
		return err
	}
	return nil
}

// exportYAML exports the snapshot as a YAML document
func (e *Exporter) exportYAML(snapshot models.ErrorExport, outputFile string) error {
	data, err := yaml.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	if err := e.writeOutputFile(outputFile, data); err != nil {
		return err
	}
	return nil
}

// exportCSV exports the snapshot as one row per error
func (e *Exporter) exportCSV(snapshot models.ErrorExport, outputFile string) error {
	file, err := e.createOutputFile(outputFile)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"ID", "Created At", "Category", "Subtype", "Severity",
		"Title", "Message", "Retryable", "Recovery Actions",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, item := range snapshot.Errors {
		actions := make([]string, len(item.RecoveryActions))
		for i, action := range item.RecoveryActions {
			actions[i] = string(action)
		}

		record := []string{
			item.ID,
			item.CreatedAt.Format("2006-01-02 15:04:05"),
			string(item.Category),
			item.Subtype,
			item.Severity.String(),
			item.Title,
			item.Message,
			strconv.FormatBool(item.IsRetryable),
			strings.Join(actions, "|"),
		}

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	return nil
}

// writeOutputFile writes data to the output file, creating parent directories
func (e *Exporter) writeOutputFile(filename string, data []byte) error {
	if err := e.ensureDir(filename); err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// createOutputFile creates the output file, creating parent directories
func (e *Exporter) createOutputFile(filename string) (*os.File, error) {
	if err := e.ensureDir(filename); err != nil {
		return nil, err
	}

	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	return file, nil
}

func (e *Exporter) ensureDir(filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return nil
}
