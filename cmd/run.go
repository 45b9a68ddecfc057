package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/manifoldco/promptui"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mkravets/talentscout/internal/ai/gemini"
	"github.com/mkravets/talentscout/internal/candidate"
	"github.com/mkravets/talentscout/internal/interview"
	"github.com/mkravets/talentscout/internal/logger"
	"github.com/mkravets/talentscout/internal/store"
)

const (
	PromptStart = "Start the technical interview"
	PromptExit  = "Exit"
	PromptYes   = "Yes"
	PromptNo    = "No"

	welcomeMessage = "Welcome! I will conduct an interactive technical interview. Type 'exit' anytime to leave."
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an interactive interview session",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("auto-save", "y", false, "save the candidate record without asking when the interview completes")
	runCmd.Flags().StringP("data-file", "o", "", "JSON file for candidate records. Default is data/candidates.json.")

	viper.BindPFlag("data-file", runCmd.Flags().Lookup("data-file"))
}

// run drives one full session: intake, confirmation, interview, summary.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	apiKey, err := resolveAPIKey(config)
	if err != nil {
		logger.Fatal("loading gemini api key", zap.Error(err))
	}

	client, err := gemini.NewClient(ctx, apiKey, geminiModel(config), logger)
	if err != nil {
		logger.Fatal("creating gemini client", zap.Error(err))
	}

	sessionID := uuid.NewString()
	logger = logger.With(zap.String("session_id", sessionID))
	logger.Info("starting the talentscout session", zap.String("version", version))

	fmt.Println(welcomeMessage)

	session := interview.New()
	fmt.Println(session.Prompt())

	session = collectInfo(session, logger)
	session = confirmAndGenerate(ctx, session, client, logger)
	session = conductInterview(ctx, session, client, logger)

	finish(cmd, session, config, logger)
}

// collectInfo walks the intake fields one input at a time until the session
// leaves the collecting phase.
func collectInfo(session interview.Session, logger *zap.Logger) interview.Session {
	for session.Phase == interview.PhaseCollectingInfo {
		input, err := askLine("Your response")
		if err != nil {
			session, _ = session.Quit()
			return session
		}

		next, reply := session.SubmitField(input)
		if next.FieldIndex == session.FieldIndex && next.Phase == session.Phase {
			logger.Debug("field input rejected", zap.String("field", candidate.Fields[session.FieldIndex].Key))
		}
		session = next
		show(reply)
	}
	return session
}

// confirmAndGenerate holds the session in the confirming phase until
// question generation succeeds or the candidate leaves.
func confirmAndGenerate(ctx context.Context, session interview.Session, client *gemini.Client, logger *zap.Logger) interview.Session {
	for session.Phase == interview.PhaseConfirming {
		prompt := promptui.Select{
			Label: "Proceed?",
			Items: []string{PromptStart, PromptExit},
		}

		_, action, err := prompt.Run()
		if err != nil || action == PromptExit {
			var reply interview.Reply
			session, reply = session.Quit()
			show(reply)
			return session
		}

		var reply interview.Reply
		session, reply = session.Confirm(ctx, client)
		show(reply)

		if session.Phase == interview.PhaseInterviewing {
			logger.Info("interview started", zap.Int("question_count", len(session.Questions)))
		}
	}
	return session
}

// conductInterview loops over the generated questions, one answer each.
func conductInterview(ctx context.Context, session interview.Session, client *gemini.Client, logger *zap.Logger) interview.Session {
	for session.Phase == interview.PhaseInterviewing {
		answer, err := askLine("Your answer")
		if err != nil {
			session, _ = session.Quit()
			return session
		}

		next, reply := session.SubmitAnswer(ctx, client, answer)
		if len(next.Results) > len(session.Results) {
			logger.Info("answer evaluated",
				zap.Int("question_index", session.QuestionIndex),
				zap.Int("score", next.Results[len(next.Results)-1].Score),
			)
		}
		session = next
		show(reply)
	}
	return session
}

// finish optionally persists the completed session.
func finish(cmd *cobra.Command, session interview.Session, config *Config, logger *zap.Logger) {
	if len(session.Results) == 0 {
		logger.Info("exiting", zap.String("reason", "no interview results to save"))
		return
	}

	if cmd.Flag("auto-save").Value.String() != "true" {
		prompt := promptui.Select{
			Label: "Save the candidate record?",
			Items: []string{PromptYes, PromptNo},
		}
		_, action, err := prompt.Run()
		if err != nil || action == PromptNo {
			logger.Info("exiting", zap.String("reason", "candidate record not saved"))
			return
		}
	}

	path := dataFile(config)
	if path == "" {
		path = store.DefaultPath
	}

	record := store.Record{}
	if err := mapstructure.Decode(session.Candidate, &record); err != nil {
		logger.Fatal("encoding candidate record", zap.Error(err))
	}

	summary := session.Summary()
	record["questions"] = session.Questions
	record["results"] = session.Results
	record["average_score"] = summary.Average
	record["performance"] = summary.Label

	if err := store.Append(path, record); err != nil {
		logger.Fatal("saving candidate record", zap.Error(err))
	}

	logger.Info("candidate record saved",
		zap.String("path", path),
		zap.Int("questions", summary.Questions),
		zap.Float64("average_score", summary.Average),
	)
}

// askLine reads one line of free-text input. An interrupted prompt comes
// back as an error; callers treat it as an exit request.
func askLine(label string) (string, error) {
	prompt := promptui.Prompt{Label: label}
	return prompt.Run()
}

func show(reply interview.Reply) {
	for _, message := range reply.Messages {
		fmt.Println(message)
	}
}
