// Package main provides the CLI entrypoint for epu.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/trevsky25/easypayuniversity-sub001/internal/config"
	"github.com/trevsky25/easypayuniversity-sub001/internal/course"
	"github.com/trevsky25/easypayuniversity-sub001/internal/ledger"
	"github.com/trevsky25/easypayuniversity-sub001/internal/model"
	"github.com/trevsky25/easypayuniversity-sub001/internal/quizbank"
	"github.com/trevsky25/easypayuniversity-sub001/internal/store"
	"github.com/trevsky25/easypayuniversity-sub001/internal/tui"
	"github.com/trevsky25/easypayuniversity-sub001/internal/walletui"
)

var (
	quizUnit      int
	quizBankPath  string
	quizPassScore int
	quizTimeLimit int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "epu",
		Short:         "EasyPay University merchant training",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(newQuizCmd())
	rootCmd.AddCommand(newWalletCmd())
	rootCmd.AddCommand(newChallengesCmd())
	rootCmd.AddCommand(newUnitsCmd())
	rootCmd.AddCommand(newRedeemCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// newLogger builds a file logger under the XDG data dir. Logging is
// best-effort: any setup failure falls back to a nop logger so the TUIs
// never lose their terminal to log output.
func newLogger() *zap.Logger {
	path := config.DefaultLogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zap.NewNop()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// openLedger opens the persistent store and constructs the process
// ledger. When the on-disk database is unavailable the app degrades to
// an in-memory store instead of failing.
func openLedger(log *zap.Logger) (*ledger.Ledger, func(), error) {
	st, err := store.Open(config.DefaultDBPath(), log)
	if err != nil {
		log.Warn("falling back to in-memory store", zap.Error(err))
		st, err = store.OpenMemory(log)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open store: %w", err)
		}
	}
	cleanup := func() {
		if cerr := st.Close(); cerr != nil {
			// Best-effort close.
			_ = cerr
		}
		_ = log.Sync()
	}
	return ledger.New(st, ledger.WithLogger(log)), cleanup, nil
}

func newQuizCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Take a unit quiz",
		Args:  cobra.NoArgs,
		RunE:  runQuizCmd,
	}
	cmd.Flags().IntVar(&quizUnit, "unit", 1, "training unit to quiz on")
	cmd.Flags().StringVar(&quizBankPath, "bank", "", "path to a custom TOML question bank")
	cmd.Flags().IntVar(&quizPassScore, "passing-score", course.DefaultPassingScore, "passing score percentage")
	cmd.Flags().IntVar(&quizTimeLimit, "time-limit", course.DefaultTimeLimitMinutes, "time limit in minutes")
	return cmd
}

func runQuizCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "passing-score", &quizPassScore, fileCfg.Quiz.PassingScore)
	applyIntConfig(cmd, "time-limit", &quizTimeLimit, fileCfg.Quiz.TimeLimitMinutes)

	unit, err := resolveUnit()
	if err != nil {
		return err
	}

	log := newLogger()
	led, cleanup, err := openLedger(log)
	if err != nil {
		return err
	}
	defer cleanup()

	program := tea.NewProgram(tui.NewModel(unit, led), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run quiz TUI: %w", err)
	}
	return nil
}

// resolveUnit picks the quiz content: a custom TOML bank when given,
// otherwise a catalog unit. Flag and file overrides apply to both.
func resolveUnit() (course.Unit, error) {
	quiz := model.QuizConfig{
		TimeLimitMinutes: quizTimeLimit,
		PassingScore:     quizPassScore,
	}
	if quizBankPath != "" {
		bank, err := quizbank.Load(quizBankPath, quiz)
		if err != nil {
			return course.Unit{}, fmt.Errorf("failed to load question bank: %w", err)
		}
		title := bank.Title
		if title == "" {
			title = filepath.Base(quizBankPath)
		}
		return course.Unit{
			ID:        quizUnit,
			Title:     title,
			Questions: bank.Questions,
			Quiz:      bank.Quiz,
		}, nil
	}
	unit, ok := course.UnitByID(quizUnit)
	if !ok {
		return course.Unit{}, fmt.Errorf("unknown unit %d (see 'epu units')", quizUnit)
	}
	unit.Quiz = quiz
	return unit, nil
}

func newWalletCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wallet",
		Short: "Show balance, history, challenges and rewards",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			log := newLogger()
			led, cleanup, err := openLedger(log)
			if err != nil {
				return err
			}
			defer cleanup()
			program := tea.NewProgram(walletui.NewModel(led), tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("failed to run wallet TUI: %w", err)
			}
			return nil
		},
	}
}

func newChallengesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "challenges",
		Short: "List today's challenges",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			log := newLogger()
			led, cleanup, err := openLedger(log)
			if err != nil {
				return err
			}
			defer cleanup()

			width := terminalWidth()
			challenges := led.DailyChallenges()
			if len(challenges) == 0 {
				fmt.Println("All of today's challenges are complete.")
				return nil
			}
			for _, ch := range challenges {
				fmt.Printf("%-16s +%-4d %s\n", ch.Title, ch.Reward, truncate(ch.Description, width-24))
			}
			return nil
		},
	}
}

func newUnitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List training units and completion state",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			log := newLogger()
			led, cleanup, err := openLedger(log)
			if err != nil {
				return err
			}
			defer cleanup()

			width := terminalWidth()
			for _, u := range course.Units() {
				mark := " "
				if led.UnitCompleted(u.ID) {
					mark = "✓"
				}
				fmt.Printf("%s %d. %-28s %s\n", mark, u.ID, u.Title, truncate(u.Description, width-36))
			}
			return nil
		},
	}
}

func newRedeemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "redeem [gift-card-id]",
		Short: "Redeem bucks for a gift card",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			log := newLogger()
			led, cleanup, err := openLedger(log)
			if err != nil {
				return err
			}
			defer cleanup()

			if len(args) == 0 {
				balance := led.State().Balance
				fmt.Printf("Balance: %d bucks\n\n", balance)
				for _, card := range ledger.GiftCards() {
					note := ""
					if balance < card.BucksRequired {
						note = "  (insufficient balance)"
					}
					fmt.Printf("%-10s %-24s %6d bucks%s\n", card.ID, card.Name, card.BucksRequired, note)
				}
				return nil
			}

			card, ok := ledger.GiftCardByID(args[0])
			if !ok {
				return fmt.Errorf("unknown gift card %q", args[0])
			}
			if !led.Spend(card.BucksRequired, "Redeemed "+card.Name) {
				fmt.Printf("Not enough bucks for %s (need %d, have %d)\n",
					card.Name, card.BucksRequired, led.State().Balance)
				return nil
			}
			fmt.Printf("Redeemed %s. New balance: %d bucks\n", card.Name, led.State().Balance)
			return nil
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Println(config.DefaultConfigPath())
			return nil
		},
	}
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

func truncate(s string, width int) string {
	if width <= 3 || len(s) <= width {
		return s
	}
	return strings.TrimSpace(s[:width-3]) + "..."
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}
