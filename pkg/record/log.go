package record

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/message"
)

// LogRecorder writes one text file per game: a header line with the board
// size, a line per move and a closing line with the result. The file is
// closed when the game ends or is abandoned.
type LogRecorder struct {
	dir   string
	mu    sync.Mutex
	files map[message.GameUid]*os.File
}

func NewLogRecorder(dir string) (*LogRecorder, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create record dir: %w", err)
	}
	return &LogRecorder{dir: dir, files: make(map[message.GameUid]*os.File)}, nil
}

// Path is where the game's log is written.
func (r *LogRecorder) Path(uid message.GameUid) string {
	return filepath.Join(r.dir, fmt.Sprintf("game-%s.log", uid))
}

func (r *LogRecorder) Record(_ context.Context, e message.Event) error {
	if !recorded(e.Type) {
		return nil
	}

	line, ok := logLine(e)
	if !ok {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := r.open(e.GameUid)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("write game log: %w", err)
	}

	if e.Type.Ends() {
		delete(r.files, e.GameUid)
		return f.Close()
	}
	return nil
}

func (r *LogRecorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var firstErr error
	for uid, f := range r.files {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(r.files, uid)
	}
	return firstErr
}

func (r *LogRecorder) open(uid message.GameUid) (*os.File, error) {
	if f, ok := r.files[uid]; ok {
		return f, nil
	}
	f, err := os.OpenFile(r.Path(uid), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open game log: %w", err)
	}
	r.files[uid] = f
	return f, nil
}

func logLine(e message.Event) (string, bool) {
	switch e.Type {
	case message.GameStarted:
		if e.Snapshot == nil {
			return "", false
		}
		return fmt.Sprintf("%s BoardSize: %d Opponent: %s", e.TimeStamp, e.Snapshot.BoardSize, e.Snapshot.Opponent), true
	case message.MoveApplied, message.OpponentMoved, message.MoveUndone, message.MoveRedone:
		if e.Result == nil {
			return "", false
		}
		res := e.Result
		return fmt.Sprintf("%s %s %s %s boxes=%d score=%d-%d",
			e.TimeStamp, e.Type, res.Player, res.Line, res.BoxesCompleted, res.FirstScore, res.SecondScore), true
	case message.TimeUp:
		return fmt.Sprintf("%s Time's up!", e.TimeStamp), true
	case message.GameOver:
		if e.Snapshot == nil {
			return "", false
		}
		return fmt.Sprintf("%s %s", e.TimeStamp, e.Snapshot.Outcome.Message()), true
	case message.GameAbandoned:
		return fmt.Sprintf("%s Game abandoned", e.TimeStamp), true
	}
	return "", false
}
