package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"CreditPathAI/internal/config"
	"CreditPathAI/internal/model"
	"CreditPathAI/internal/training"
)

var (
	cfg       *config.Config
	outPath   string
	trainOpts = training.DefaultOptions()
)

var rootCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the loan default model and write its artifact",
	Long:  "Generates a synthetic borrower dataset, balances the classes, fits the scaler and logistic regression, and saves the artifact the API serves from.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return eris.Wrap(err, "train: load config")
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return eris.Wrap(err, "train: init logger")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := outPath
		if out == "" {
			out = cfg.Model.Path
		}

		start := time.Now()
		m, err := training.Train(trainOpts)
		if err != nil {
			return err
		}
		if err := model.Save(out, m, time.Now().UTC()); err != nil {
			return err
		}

		zap.L().Info("model artifact written",
			zap.String("path", out),
			zap.Float64("accuracy", m.Metrics.Accuracy),
			zap.Float64("roc_auc", m.Metrics.ROCAUC),
			zap.Duration("elapsed", time.Since(start)),
		)
		fmt.Fprintf(cmd.OutOrStdout(), "Model saved to %s (accuracy %.4f, ROC-AUC %.4f)\n", out, m.Metrics.Accuracy, m.Metrics.ROCAUC)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&outPath, "out", "", "artifact path (defaults to model.path)")
	f.IntVar(&trainOpts.Samples, "samples", trainOpts.Samples, "synthetic borrowers to generate")
	f.Uint64Var(&trainOpts.Seed, "seed", trainOpts.Seed, "random seed")
	f.IntVar(&trainOpts.Epochs, "epochs", trainOpts.Epochs, "gradient descent epochs")
	f.Float64Var(&trainOpts.LearningRate, "learning-rate", trainOpts.LearningRate, "gradient descent step size")
	f.Float64Var(&trainOpts.TestSize, "test-size", trainOpts.TestSize, "holdout fraction")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
