package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pacplan/internal/ports"
	"pacplan/internal/types"
)

// FileFailureLog appends one tab-separated record per failed step:
// timestamp, step name, reason.
type FileFailureLog struct {
	Path string
}

func NewFileFailureLog(path string) FileFailureLog {
	return FileFailureLog{Path: path}
}

func (l FileFailureLog) Append(record types.FailureRecord) error {
	if dir := filepath.Dir(l.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create failure log directory").
				WithCause(err)
		}
	}
	file, err := os.OpenFile(l.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to open failure log").
			WithCause(err)
	}
	defer file.Close()

	line := fmt.Sprintf("%s\t%s\t%s\n",
		record.Timestamp.Format(time.RFC3339), record.Step, record.Reason)
	if _, err := file.WriteString(line); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to append failure record").
			WithCause(err)
	}
	return nil
}

var _ ports.FailureSinkPort = FileFailureLog{}
