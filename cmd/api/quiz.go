package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	mem "vahis-pet-care-hub/internal/adapters/storage/memory"
	"vahis-pet-care-hub/internal/adapters/storage/postgres"
	"vahis-pet-care-hub/internal/domain/matching"
	"vahis-pet-care-hub/internal/domain/pets"
	"vahis-pet-care-hub/internal/domain/products"
	"vahis-pet-care-hub/internal/domain/quiz"

	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Corre el quiz de matching en la terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var petRepo pets.Repository
		if cfg.DB.DSN != "" {
			db, err := postgres.Open(ctx, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer db.Close()
			petRepo = postgres.NewPetsRepo(db)
		} else {
			petRepo = mem.NewPetRepo()
		}
		petsSvc := pets.NewService(petRepo)
		if cfg.DB.DSN == "" {
			if _, _, err := mem.SeedCatalog(ctx, petsSvc, products.NewService(mem.NewProductRepo())); err != nil {
				return err
			}
		}

		o, err := newOracle(ctx)
		if err != nil {
			return err
		}
		questions, err := quiz.DefaultQuestions()
		if err != nil {
			return err
		}

		engine := matching.NewEngine(petsSvc, o, matching.Config{OracleTimeout: cfg.Match.OracleTimeout}, log)
		return runQuiz(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), quiz.NewFlow(questions, engine))
	},
}

// runQuiz hace las preguntas una por una. Acepta el número de opción o el texto.
// Al terminar ofrece reiniciar; EOF corta sin error.
func runQuiz(ctx context.Context, in io.Reader, out io.Writer, flow *quiz.Flow) error {
	sc := bufio.NewScanner(in)

	for {
		if flow.State().Terminal() {
			printOutcome(out, flow)
			fmt.Fprint(out, "\nStart over? [y/N] ")
			if !sc.Scan() {
				return sc.Err()
			}
			if !strings.EqualFold(strings.TrimSpace(sc.Text()), "y") {
				return nil
			}
			if err := flow.Restart(); err != nil {
				return err
			}
			continue
		}

		q, ok := flow.Current()
		if !ok {
			return errors.New("quiz: no current question")
		}
		fmt.Fprintf(out, "\n[%d/%d] %s\n", flow.Step()+1, flow.Total(), q.Text)
		for i, opt := range q.Options {
			fmt.Fprintf(out, "  %d) %s\n", i+1, opt)
		}
		fmt.Fprint(out, "> ")

		if !sc.Scan() {
			return sc.Err()
		}
		answer := strings.TrimSpace(sc.Text())
		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(q.Options) {
			answer = q.Options[n-1]
		}

		if err := flow.Answer(ctx, answer); err != nil {
			if errors.Is(err, quiz.ErrInvalidAnswer) {
				fmt.Fprintln(out, "Please pick one of the options.")
				continue
			}
			return err
		}
	}
}

func printOutcome(out io.Writer, flow *quiz.Flow) {
	switch flow.State() {
	case quiz.StateMatched:
		res, _ := flow.Result()
		fmt.Fprintf(out, "\nYour match: %s (%s)\n", res.Pet.Name, res.Pet.Breed)
		fmt.Fprintf(out, "%s\n", res.MatchReason)
		fmt.Fprintln(out, "Care tips:")
		for _, tip := range res.CareTips {
			fmt.Fprintf(out, "  - %s\n", tip)
		}
	case quiz.StateUnsupported:
		fmt.Fprintln(out, "\nWe only match dogs and cats for now. Visit the store to see other pets!")
	case quiz.StateFailed:
		reason, _ := flow.Failure()
		switch reason {
		case quiz.FailureNoCandidates:
			fmt.Fprintf(out, "\n%v\n", flow.Err())
		case quiz.FailureRateLimited:
			fmt.Fprintln(out, "\nDaily AI limit reached. Please try again tomorrow!")
		default:
			fmt.Fprintln(out, "\nFailed to generate match. Please try again later.")
		}
	}
}
