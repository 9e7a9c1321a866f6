package main

import (
	"errors"
	"fmt"
	"strings"

	"moodlens/internal/model"
	"moodlens/internal/mood"

	"github.com/spf13/cobra"
)

var checkInQuestions = mood.QuestionIDs

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Detect emotions in a piece of text and summarize it",
	Long:  `Classifies the emotions in the text and produces a short summary. With --save the result is stored as a journal entry.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		save, _ := cmd.Flags().GetBool("save")
		text := strings.Join(args, " ")

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		res, err := a.analysis.AnalyzeText(cmd.Context(), text)
		if err != nil {
			return explain(err)
		}

		if !save {
			return printJSON(cmd.OutOrStdout(), res)
		}
		e := model.NewJournalEntry(text, res.Emotions, res.DominantEmotion, res.Summary)
		if err := a.records.AppendEntry(cmd.Context(), e); err != nil {
			return fmt.Errorf("failed to save entry: %w", err)
		}
		return printJSON(cmd.OutOrStdout(), e)
	},
}

var checkinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Answer the mood questions and get advice",
	Long: `Scores the answered questions, classifies the resulting narrative and
prints advice. Each question takes a value from 1 (worst) to 5 (best):

  moodlens checkin --sleep 2 --energy 3 --stress 4 --social 5 --satisfaction 3`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		values := map[mood.QuestionID]int{}
		for _, id := range checkInQuestions {
			if cmd.Flags().Changed(string(id)) {
				v, _ := cmd.Flags().GetInt(string(id))
				values[id] = v
			}
		}
		if len(values) == 0 {
			return errors.New("answer at least one question, see --help")
		}
		answers, err := mood.AnswersFromValues(values)
		if err != nil {
			return err
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		score := mood.ComputeMoodScore(answers)
		details := mood.FormatAnswers(answers)
		res, err := a.analysis.AnalyzeCheckIn(cmd.Context(), model.CheckInRequest{
			Text:      mood.BuildAnalysisText(answers),
			MoodScore: &score,
			Answers:   details,
		})
		if err != nil {
			return explain(err)
		}

		if save, _ := cmd.Flags().GetBool("save"); save {
			ci := model.NewCheckInEntry(res.MoodScore, details, res.Emotions, res.DominantEmotion, res.Advice)
			if err := a.records.AppendCheckIn(cmd.Context(), ci); err != nil {
				return fmt.Errorf("failed to save check-in: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), ci)
		}
		return printJSON(cmd.OutOrStdout(), res)
	},
}

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the check-in questions and their answers",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, q := range mood.Questions() {
			fmt.Fprintf(out, "%s: %s\n", q.ID, q.Question)
			for _, ans := range q.Answers {
				fmt.Fprintf(out, "  %d %s %s\n", ans.Value, ans.Emoji, ans.Text)
			}
		}
	},
}
