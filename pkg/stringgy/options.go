package stringgy

import (
	"log/slog"

	"github.com/honeybugserial/stringgeryhtiger/internal/backup"
	"github.com/honeybugserial/stringgeryhtiger/pkg/types"
)

// SearchOptions controls how a search term is matched.
type SearchOptions struct {
	// IgnoreCase folds ASCII letters before comparing.
	IgnoreCase bool

	// IncludeUTF16BE adds UTF-16BE to the always-searched UTF-8 and UTF-16LE.
	IncludeUTF16BE bool

	// Limit keeps only the first Limit matches by offset (0 = all).
	// SearchResult.Total still reports the unlimited count.
	Limit int

	// Logger receives debug records. Nil discards.
	Logger *slog.Logger
}

// Encodings returns the encodings searched under these options.
func (o *SearchOptions) Encodings() []types.Encoding {
	encs := []types.Encoding{types.UTF8, types.UTF16LE}
	if o != nil && o.IncludeUTF16BE {
		encs = append(encs, types.UTF16BE)
	}
	return encs
}

// ReplaceOptions controls how a replacement is fitted to a match.
type ReplaceOptions struct {
	// Mode selects the length reconciliation policy.
	Mode types.Mode

	// PadChar is the single character used by types.ModePadChar.
	// Callers usually set it to types.DefaultPadChar.
	PadChar string
}

// SessionOptions controls an editing session.
type SessionOptions struct {
	// Confirm is asked before every physical write. Nil declines all writes.
	Confirm Confirmer

	// Logger receives session records. Nil discards.
	Logger *slog.Logger

	// Clock supplies backup timestamps. Nil uses the system clock.
	Clock backup.Clock
}

func loggerOrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l
}
