package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glitchlab/faultdeck/models"
	"github.com/glitchlab/faultdeck/orchestrator"
)

// tickCmd returns a command that sends a tick message after the refresh interval
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// executeActionCmd runs a recovery action off the UI loop. Recovery steps
// carry simulated latency, so this must not block Update.
func executeActionCmd(coordinator *orchestrator.Coordinator, action models.RecoveryActionKind) tea.Cmd {
	return func() tea.Msg {
		result, ok := coordinator.ExecuteRecoveryAction(context.Background(), action)
		return RecoveryResultMsg{Result: result, Handled: ok}
	}
}

// exportCmd writes the current error history snapshot to the export directory
func exportCmd(coordinator *orchestrator.Coordinator, outputDir string) tea.Cmd {
	return func() tea.Msg {
		snapshot := coordinator.Export()

		data, err := sonic.MarshalIndent(snapshot, "", "  ")
		if err != nil {
			return ErrorMsg{Error: fmt.Errorf("failed to encode export: %w", err)}
		}

		name := fmt.Sprintf("faultdeck-export-%s.json", time.Now().Format(models.FileTimeFormat))
		path := filepath.Join(outputDir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return ErrorMsg{Error: fmt.Errorf("failed to write export: %w", err)}
		}

		return ExportedMsg{Path: path, RecordCount: len(snapshot.Errors)}
	}
}
