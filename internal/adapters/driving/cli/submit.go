package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/teampulse/internal/core/domain"
	"github.com/custodia-labs/teampulse/internal/core/ports/driving"
)

var (
	submitName   string
	submitRating int
	submitReason string
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit today's culture rating",
	RunE:  runSubmit,
}

func init() {
	submitCmd.Flags().StringVarP(&submitName, "name", "n", "", "your name (required)")
	submitCmd.Flags().IntVarP(&submitRating, "rating", "r", 0, "rating from 1 to 5 (required)")
	submitCmd.Flags().StringVar(&submitReason, "reason", "", "optional reason")
	submitCmd.MarkFlagRequired("name")
	submitCmd.MarkFlagRequired("rating")
	rootCmd.AddCommand(submitCmd)
}

func runSubmit(cmd *cobra.Command, _ []string) error {
	st, err := buildStack(cmd.Context())
	if err != nil {
		return err
	}
	defer st.close()

	err = st.submit.Submit(cmd.Context(), driving.Submission{
		Name:   submitName,
		Rating: submitRating,
		Reason: submitReason,
	})
	switch {
	case err == nil:
		cmd.Printf("Recorded rating %d for %s\n", submitRating, submitName)
		return nil
	case errors.Is(err, domain.ErrAlreadySubmitted):
		return fmt.Errorf("%s has already submitted a rating today", submitName)
	case errors.Is(err, domain.ErrVersionConflict):
		return errors.New("a concurrent submission won the write, please retry")
	default:
		return err
	}
}
