package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ersonp/thanepark/internal/application/commands"
	"github.com/ersonp/thanepark/internal/application/parser"
	"github.com/ersonp/thanepark/internal/domain/entities"
	"github.com/ersonp/thanepark/internal/domain/ports"
)

// HistoryReportLimit caps the entries included in a history report.
const HistoryReportLimit = 500

// SessionModel is the model a Logic drives.
type SessionModel interface {
	commands.Model
	Subscribe(observer ports.ChangeObserver)
}

// HistoryReporter renders the command log into a report file.
type HistoryReporter interface {
	WriteHistoryReport(ctx context.Context, entries []entities.CommandEntry) (string, error)
}

// Logic runs commands against a model for one session and keeps the
// persistence layer in step with it.
type Logic struct {
	model     SessionModel
	history   *commands.CommandHistory
	store     ports.Store
	reporter  HistoryReporter
	logger    *slog.Logger
	sessionID string
	now       func() time.Time

	dirty bool // a persistent change happened during the current command
}

// NewLogic creates a Logic for a new session. reporter may be nil, in which
// case "history more" fails.
func NewLogic(model SessionModel, store ports.Store, reporter HistoryReporter, logger *slog.Logger) *Logic {
	if logger == nil {
		logger = slog.Default()
	}
	l := &Logic{
		model:     model,
		history:   commands.NewCommandHistory(),
		store:     store,
		reporter:  reporter,
		logger:    logger,
		sessionID: uuid.NewString(),
		now:       time.Now,
	}
	model.Subscribe(ports.ChangeObserverFunc(func(c entities.Change) {
		if c.Persistent() {
			l.dirty = true
		}
	}))
	return l
}

// SessionID identifies this session in the command log.
func (l *Logic) SessionID() string {
	return l.sessionID
}

// History returns the commands entered in this session.
func (l *Logic) History() *commands.CommandHistory {
	return l.history
}

// Model returns the model the session operates on.
func (l *Logic) Model() SessionModel {
	return l.model
}

// Execute parses and runs one line of input. Blank input is ignored.
func (l *Logic) Execute(ctx context.Context, input string) (commands.Result, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return commands.Result{}, nil
	}

	cmd, err := parser.Parse(input)
	if err != nil {
		l.record(ctx, input, commands.Result{}, err, l.now())
		return commands.Result{}, err
	}
	return l.run(ctx, input, cmd)
}

// ExecuteCommand runs a command that was built without the parser.
// input is what gets recorded in the history.
func (l *Logic) ExecuteCommand(ctx context.Context, input string, cmd commands.Command) (commands.Result, error) {
	return l.run(ctx, input, cmd)
}

func (l *Logic) run(ctx context.Context, input string, cmd commands.Command) (commands.Result, error) {
	start := l.now()
	l.dirty = false

	result, err := cmd.Execute(l.model, l.history)
	result.Command = cmd.Word()
	if err == nil && result.ShowHistoryReport {
		result, err = l.writeHistoryReport(ctx, result)
	}

	var saveErr error
	if l.dirty {
		if serr := l.store.SaveRides(ctx, l.model.Rides()); serr != nil {
			saveErr = fmt.Errorf("saving rides: %w", serr)
		}
		l.dirty = false
	}

	l.record(ctx, input, result, err, start)
	l.logger.Debug("command executed",
		"command", cmd.Word(),
		"succeeded", err == nil,
		"duration", l.now().Sub(start),
	)

	if err != nil {
		return commands.Result{Command: cmd.Word()}, err
	}
	if saveErr != nil {
		return result, saveErr
	}
	return result, nil
}

func (l *Logic) writeHistoryReport(ctx context.Context, result commands.Result) (commands.Result, error) {
	if l.reporter == nil {
		return result, errors.New("history report is not available")
	}
	entries, err := l.store.ListCommands(ctx, HistoryReportLimit)
	if err != nil {
		return result, fmt.Errorf("listing commands: %w", err)
	}
	path, err := l.reporter.WriteHistoryReport(ctx, entries)
	if err != nil {
		return result, fmt.Errorf("writing history report: %w", err)
	}
	result.ReportPath = path
	result.Feedback = fmt.Sprintf("History report written to %s", path)
	return result, nil
}

// record appends the input and its outcome to the session history and the
// command log. It runs after the command, so a command never sees its own
// input. A failure to log is reported but never fails the command.
func (l *Logic) record(ctx context.Context, input string, result commands.Result, cmdErr error, at time.Time) {
	entry := entities.CommandEntry{
		ID:         uuid.NewString(),
		SessionID:  l.sessionID,
		Input:      input,
		Feedback:   result.Feedback,
		Succeeded:  cmdErr == nil,
		ExecutedAt: at,
	}
	if cmdErr != nil {
		entry.Feedback = cmdErr.Error()
	}
	l.history.Add(input)
	l.history.Record(entry)

	if err := l.store.LogCommand(ctx, entry); err != nil {
		l.logger.Warn("failed to log command", "input", input, "error", err)
	}
}
