package oplog

import (
	"encoding/json"
	"os"
	"time"

	"github.com/facebookgo/atomicfile"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// ExportedFileMode is the permission of files written by Export.
const ExportedFileMode os.FileMode = 0644

// dump is the on disk form of an exported log. It is only written, never read back by the simulator.
type dump struct {
	Session    uuid.UUID `json:"session"`
	ExportedAt time.Time `json:"exportedAt"`
	Records    []Record  `json:"records"`
}

// Export writes all records of l as json to path. The file is replaced atomically, either the whole log is written or
// the previous content of path is kept.
func Export(l *Log, session uuid.UUID, path string) error {
	f, err := atomicfile.New(path, ExportedFileMode)
	if err != nil {
		return errors.Wrapf(err, "failed to create %v", path)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if encErr := enc.Encode(dump{Session: session, ExportedAt: time.Now().UTC(), Records: l.Records()}); encErr != nil {
		var result *multierror.Error
		result = multierror.Append(result, errors.Wrap(encErr, "failed to encode log"))
		if abortErr := f.Abort(); abortErr != nil {
			result = multierror.Append(result, errors.Wrap(abortErr, "failed to abort export"))
		}
		return result.ErrorOrNil()
	}

	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "failed to commit %v", path)
	}

	return nil
}
