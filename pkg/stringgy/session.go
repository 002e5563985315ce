package stringgy

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/oklog/ulid/v2"

	"github.com/honeybugserial/stringgeryhtiger/internal/backup"
	"github.com/honeybugserial/stringgeryhtiger/internal/patch"
	"github.com/honeybugserial/stringgeryhtiger/pkg/types"
)

// ErrBackup indicates the session could not secure a backup; nothing is written.
var ErrBackup = &types.Error{Kind: types.ErrKindBackup, Msg: "backup failed"}

// ErrCanceled indicates the confirmer aborted the session.
var ErrCanceled = errors.New("stringgy: session canceled")

// Session is one editing run against a single file. It takes exactly one
// backup, just before its first write. Sessions are not safe for concurrent use.
type Session struct {
	id      string
	path    string
	confirm Confirmer
	log     *slog.Logger

	// createBackup and verify are the backup and read-back steps of Apply.
	createBackup func(path string) (string, error)
	verify       func(path string, off int, want []byte) (bool, error)

	backupPath string
}

// OpenSession starts an editing session for path. No file access happens
// until the first write is confirmed.
func OpenSession(path string, opts *SessionOptions) *Session {
	if opts == nil {
		opts = &SessionOptions{}
	}
	confirm := opts.Confirm
	if confirm == nil {
		confirm = NeverConfirm
	}
	id := ulid.Make().String()
	return &Session{
		id:           id,
		path:         path,
		confirm:      confirm,
		log:          loggerOrDiscard(opts.Logger).With("session", id, "path", path),
		createBackup: backup.NewWriter(opts.Clock).Create,
		verify:       patch.Verify,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Backup returns the backup path, or "" when nothing has been written yet.
func (s *Session) Backup() string { return s.backupPath }

// EnsureBackup creates the session backup if it does not exist yet.
func (s *Session) EnsureBackup() (string, error) {
	if s.backupPath != "" {
		return s.backupPath, nil
	}
	p, err := s.createBackup(s.path)
	if err != nil {
		return "", ErrBackup.Wrap(err)
	}
	s.backupPath = p
	s.log.Info("backup created", "backup", p)
	return p, nil
}

// Apply reconciles replacement against m, shows the preview to the
// confirmer, and on approval backs up (once), writes and verifies.
//
// Per-match problems (rejection, declined confirmation, verification
// mismatch) are reported in the outcome and return a nil error. A non-nil
// error means the session must stop: the backup failed, the file could not
// be written, or the confirmer canceled.
func (s *Session) Apply(m types.Match, replacement string, opts ReplaceOptions) (types.WriteOutcome, error) {
	out := types.WriteOutcome{Offset: m.Offset, Encoding: m.Encoding}
	log := s.log.With("offset", m.Offset, "encoding", m.Encoding.String())

	res, err := reconcileMatch(m, replacement, opts)
	if err != nil {
		out.Status, out.Err = types.StatusRejected, err
		log.Warn("replacement rejected", "mode", opts.Mode.String(), "error", err)
		return out, nil
	}

	preview, err := patch.Preview(s.path, m, res.Payload, opts.Mode, res.InputLen)
	if err != nil {
		return s.failed(log, out, err)
	}

	ok, err := s.confirm.ConfirmWrite(preview)
	if err != nil {
		out.Status, out.Err = types.StatusSkipped, err
		return out, fmt.Errorf("%w: %w", ErrCanceled, err)
	}
	if !ok {
		out.Status = types.StatusSkipped
		log.Info("write declined")
		return out, nil
	}

	if _, err := s.EnsureBackup(); err != nil {
		out.Status, out.Err = types.StatusFailed, err
		log.Error("backup failed", "error", err)
		return out, err
	}

	if err := patch.Write(s.path, m.Offset, res.Payload); err != nil {
		return s.failed(log, out, err)
	}
	out.BytesWritten = len(res.Payload)

	verified, err := s.verify(s.path, m.Offset, res.Payload)
	if err != nil {
		return s.failed(log, out, err)
	}
	out.Verified = verified
	if !verified {
		out.Status, out.Err = types.StatusVerifyFailed, patch.ErrMismatch
		log.Error("verification failed", "bytes", out.BytesWritten)
		return out, nil
	}
	out.Status = types.StatusWritten
	log.Info("write verified", "bytes", out.BytesWritten, "mode", opts.Mode.String())
	return out, nil
}

// failed classifies err: fatal errors end the session, anything else only
// rejects this match.
func (s *Session) failed(log *slog.Logger, out types.WriteOutcome, err error) (types.WriteOutcome, error) {
	out.Err = err
	if types.IsFatal(err) {
		out.Status = types.StatusFailed
		log.Error("write failed", "error", err)
		return out, err
	}
	out.Status = types.StatusRejected
	log.Warn("write rejected", "error", err)
	return out, nil
}

// Replace applies replacement to the matches at the given 1-based indices in
// ascending order. Duplicate indices are applied once; indices outside res
// are rejected. A fatal error stops the batch and is returned with the
// outcomes gathered so far.
func (s *Session) Replace(res *types.SearchResult, indices []int, replacement string, opts ReplaceOptions) (types.Summary, error) {
	sum := types.Summary{SessionID: s.id}
	ordered := slices.Clone(indices)
	slices.Sort(ordered)
	ordered = slices.Compact(ordered)

	for _, idx := range ordered {
		m, err := res.At(idx)
		if err != nil {
			sum.Add(types.WriteOutcome{Index: idx, Status: types.StatusRejected, Err: err})
			continue
		}
		out, err := s.Apply(m, replacement, opts)
		out.Index = idx
		sum.Add(out)
		if err != nil {
			sum.Backup = s.backupPath
			return sum, err
		}
	}
	sum.Backup = s.backupPath
	s.log.Info("batch complete",
		"requested", sum.Requested(),
		"written", sum.Written,
		"skipped", sum.Skipped,
		"rejected", sum.Rejected,
		"failed", sum.Failed,
	)
	return sum, nil
}
