package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/glitchlab/faultdeck/generator"
	"github.com/glitchlab/faultdeck/logging"
	"github.com/glitchlab/faultdeck/models"
	"github.com/glitchlab/faultdeck/orchestrator"
	"github.com/glitchlab/faultdeck/output"
	"github.com/glitchlab/faultdeck/recovery"
)

var (
	demoDelay   time.Duration
	demoRecover bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the scripted error tour headless",
	Long: `Walk the built-in demo script once, printing each error as it is
displayed. With --recover, a recovery flow is also executed against every
retryable error. A statistics and insight summary is printed at the end.

Examples:
  faultdeck demo                        # tour with default pacing
  faultdeck demo --delay 0 --seed 42    # instant, reproducible run
  faultdeck demo --recover              # also exercise recovery flows`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfiguration(cmd)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logging.InitLogger(cfg.App.LogLevel, cfg.App.LogFile)

		coordinator := newHeadlessCoordinator(cfg.Engine.Seed, true)

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		formatter := output.NewConsoleFormatter(cfg.UI.TimeFormat)
		coordinator.RegisterUpdateCallback(func(snapshot orchestrator.StateSnapshot) {
			if snapshot.CurrentError == nil {
				return
			}
			fmt.Println(formatter.FormatError(*snapshot.CurrentError))
		})

		if demoRecover {
			runDemoWithRecoveries(ctx, coordinator, demoDelay)
		} else {
			coordinator.RunDemo(ctx, demoDelay)
		}

		fmt.Println()
		fmt.Println(formatter.FormatSummary(coordinator.Statistics(), coordinator.RecoveryCounts(), coordinator.Insights()))
		return nil
	},
}

func init() {
	demoCmd.Flags().DurationVar(&demoDelay, "delay", models.DefaultDemoStepDelay, "pause between demo steps")
	demoCmd.Flags().BoolVar(&demoRecover, "recover", false, "execute a recovery flow on each displayed error")

	rootCmd.AddCommand(demoCmd)
}

// newHeadlessCoordinator builds an engine without a UI attached
func newHeadlessCoordinator(seed int64, instantRecovery bool) *orchestrator.Coordinator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gen := generator.New(generator.WithRand(rand.New(rand.NewSource(seed))))

	recOpts := []recovery.ManagerOption{
		recovery.WithRand(rand.New(rand.NewSource(seed))),
	}
	if instantRecovery || noLatency {
		recOpts = append(recOpts, recovery.WithLatency(recovery.NoLatency()))
	}

	return orchestrator.NewCoordinator(gen, recovery.NewManager(recOpts...))
}

// runDemoWithRecoveries walks the demo script itself so each error is
// displayed exactly once before its recovery flow runs.
func runDemoWithRecoveries(ctx context.Context, coordinator *orchestrator.Coordinator, stepDelay time.Duration) {
	for i, category := range coordinator.DemoScript() {
		if i > 0 && stepDelay > 0 {
			timer := time.NewTimer(stepDelay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}

		e := coordinator.DisplayErrorForCategory(category)
		if _, ok := coordinator.BeginRecovery(); !ok {
			coordinator.DismissCurrentError()
			continue
		}

		for {
			current := coordinator.CurrentError()
			if current == nil {
				break
			}
			action := current.RecoveryActions[0]
			result, ok := coordinator.ExecuteRecoveryAction(ctx, action)
			if !ok {
				break
			}

			progress, active := coordinator.RecoveryManager().Progress()
			if !active || progress.IsComplete {
				outcome := "failed"
				if progress.HasSucceeded {
					outcome = "recovered"
				}
				fmt.Printf("  %s → %s (%s)\n", e.Title, outcome, result.Message)
				break
			}
		}

		coordinator.DismissCurrentError()
	}
}
