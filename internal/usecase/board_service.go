package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/riskibarqy/draftboard/internal/domain/board"
	"github.com/riskibarqy/draftboard/internal/platform/logging"
	"github.com/riskibarqy/draftboard/internal/platform/namematch"
)

const (
	msgNoMatches     = "No matching players found."
	msgUndoDone      = "Undo successful!"
	msgNothingToUndo = "Nothing to undo."
)

// BoardView is a point-in-time copy of the draft board.
type BoardView struct {
	Columns   []string
	Rows      [][]string
	Remaining int
	UndoDepth int
}

// RemovalResult reports one removal attempt. Removed counts rows actually
// taken off the board; Message mirrors what the board page shows the user.
type RemovalResult struct {
	Removed int
	Names   []string
	Message string
}

// UndoResult reports one undo attempt.
type UndoResult struct {
	Restored bool
	Message  string
}

// BoardService serializes access to a single in-memory draft session.
// Draft night is one person at one keyboard, so a mutex is the whole
// concurrency story.
type BoardService struct {
	mu      sync.Mutex
	session *board.Session
	parser  board.Parser
	logger  *logging.Logger
}

func NewBoardService(session *board.Session, parser board.Parser, logger *logging.Logger) (*BoardService, error) {
	if session == nil {
		return nil, fmt.Errorf("%w: board session is required", ErrInvalidInput)
	}
	if parser == nil {
		parser = board.SlashParser{}
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &BoardService{session: session, parser: parser, logger: logger}, nil
}

func (s *BoardService) View(ctx context.Context) BoardView {
	_, span := startUsecaseSpan(ctx, "usecase.BoardService.View")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.session.Rows()
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = row.Cells
	}
	return BoardView{
		Columns:   s.session.Columns(),
		Rows:      cells,
		Remaining: len(rows),
		UndoDepth: s.session.UndoDepth(),
	}
}

// RemoveByText parses a pasted draft-room block and removes every player
// it names. Either every named row leaves the board or none do.
func (s *BoardService) RemoveByText(ctx context.Context, text string) (RemovalResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BoardService.RemoveByText")
	defer span.End()

	names := s.parser.Names(text)
	for i := range names {
		names[i] = namematch.StripSuffix(names[i])
	}
	if len(names) == 0 {
		return RemovalResult{Message: msgNoMatches}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.session.Remove(names)
	if len(removed) == 0 {
		s.logger.InfoContext(ctx, "removal matched nothing", "names", strings.Join(names, ", "))
		return RemovalResult{Names: names, Message: msgNoMatches}, nil
	}

	display := make([]string, len(names))
	for i, name := range names {
		display[i] = titleCase(name)
	}
	s.logger.InfoContext(ctx, "players removed",
		"requested", len(names),
		"removed", len(removed),
		"remaining", len(s.session.Rows()),
	)
	return RemovalResult{
		Removed: len(removed),
		Names:   names,
		Message: "Removed: " + strings.Join(display, ", "),
	}, nil
}

// Undo restores the most recent removal batch in original board order.
func (s *BoardService) Undo(ctx context.Context) UndoResult {
	ctx, span := startUsecaseSpan(ctx, "usecase.BoardService.Undo")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.session.Undo() {
		return UndoResult{Message: msgNothingToUndo}
	}
	s.logger.InfoContext(ctx, "removal undone", "remaining", len(s.session.Rows()))
	return UndoResult{Restored: true, Message: msgUndoDone}
}

// titleCase uppercases the first letter of every word, including after
// apostrophes and hyphens, so "ja'marr chase" renders as "Ja'Marr Chase".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r):
			b.WriteRune(r)
			prevLetter = false
		case prevLetter:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(unicode.ToUpper(r))
			prevLetter = true
		}
	}
	return b.String()
}
