package main

import (
	"errors"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/dividend-expander/src/eventmodels"
	"github.com/jiaming2012/dividend-expander/src/eventservices"
	"github.com/jiaming2012/dividend-expander/src/utils"
)

type RunArgs struct {
	Src           string
	Dst           string
	PredictFuture bool
}

type RunResults struct {
	DailyDividendCount int
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/expand_dividends/main.go --src dividends.csv --dst daily_dividends.csv",
	Short: "Expand a list of dividend payment dates and payment percents to a list of every day and the dividend payment for that day.",
	Run: func(cmd *cobra.Command, args []string) {
		src, err := cmd.Flags().GetString("src")
		if err != nil {
			log.Fatalf("error getting src: %v", err)
		}

		dst, err := cmd.Flags().GetString("dst")
		if err != nil {
			log.Fatalf("error getting dst: %v", err)
		}

		predictFuture, err := cmd.Flags().GetBool("predict-future")
		if err != nil {
			log.Fatalf("error getting predict-future: %v", err)
		}

		result, err := Run(RunArgs{
			Src:           src,
			Dst:           dst,
			PredictFuture: predictFuture,
		})

		if err != nil {
			if errors.Is(err, eventmodels.SourceNotFoundErr) {
				log.Errorf("Error: %v", err)
				os.Exit(1)
			}

			log.Fatalf("Error: %v", err)
		}

		log.Infof("Wrote %d daily dividends to %s", result.DailyDividendCount, dst)
	},
}

func Run(args RunArgs) (RunResults, error) {
	dividends, err := utils.ImportDividends(args.Src)
	if err != nil {
		return RunResults{}, err
	}

	days, err := eventservices.DailyDividends(dividends, args.PredictFuture)
	if err != nil {
		return RunResults{}, err
	}

	if err := utils.ExportDailyDividends(args.Dst, days); err != nil {
		return RunResults{}, err
	}

	return RunResults{
		DailyDividendCount: len(days),
	}, nil
}

func main() {
	if err := utils.InitEnvironmentVariables(); err != nil {
		log.Fatalf("error initializing environment variables: %v", err)
	}

	runCmd.PersistentFlags().String("src", "", "CSV file from Yahoo containing the dividend payment dates.")
	runCmd.MarkPersistentFlagRequired("src")
	runCmd.PersistentFlags().String("dst", "", "CSV file to write the daily dividends into.")
	runCmd.MarkPersistentFlagRequired("dst")
	runCmd.PersistentFlags().Bool("predict-future", true, "Predict when the next dividend payment will occur and generate the daily dividends until that future date.")
	runCmd.Execute()
}
