package question

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ApplicationNamePattern: a letter followed by one or more letters or digits.
const ApplicationNamePattern = `^[a-zA-Z][\da-zA-Z]+$`

const (
	// MsgAppNamePattern is returned when a name does not match ApplicationNamePattern.
	MsgAppNamePattern = "Application name must start with a letter and can only contain letters and digits."
	// MsgPathExists is formatted with the conflicting project path.
	MsgPathExists = "Path exists: %s. Select a different application name."
)

// ErrProbe is returned when the filesystem check behind a validator fails
// for a reason other than the path not existing.
var ErrProbe = errors.New("filesystem probe failed")

// ValidatorFunc accepts or rejects a candidate answer. A non-empty message
// rejects the answer and asks the runner to prompt again; an error aborts
// the question.
type ValidatorFunc func(ctx context.Context, candidate string, prior Inputs) (string, error)

var (
	appNameSchemaOnce sync.Once
	appNameSchemaErr  error
	appNameSchema     *jsonschema.Schema
)

func loadAppNameSchema() (*jsonschema.Schema, error) {
	appNameSchemaOnce.Do(func() {
		doc, err := json.Marshal(map[string]string{
			"type":    "string",
			"pattern": ApplicationNamePattern,
		})
		if err != nil {
			appNameSchemaErr = err
			return
		}
		appNameSchema, appNameSchemaErr = jsonschema.CompileString("app-name.schema.json", string(doc))
	})
	return appNameSchema, appNameSchemaErr
}

// MatchesAppNamePattern reports whether name is a syntactically valid
// application name.
func MatchesAppNamePattern(name string) (bool, error) {
	sch, err := loadAppNameSchema()
	if err != nil {
		return false, fmt.Errorf("compile app name schema: %w", err)
	}
	return sch.Validate(name) == nil, nil
}

// ValidateAppName checks the application name against the pattern and
// makes sure <folder>/<name> does not exist yet. Without a folder answer
// there is nothing to check against, so every name is accepted.
func ValidateAppName(ctx context.Context, candidate string, prior Inputs) (string, error) {
	folder := prior.String(Folder)
	if folder == "" {
		return "", nil
	}

	ok, err := MatchesAppNamePattern(candidate)
	if err != nil {
		return "", err
	}
	if !ok {
		return MsgAppNamePattern, nil
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	projectPath, err := filepath.Abs(filepath.Join(folder, candidate))
	if err != nil {
		return "", fmt.Errorf("%w: resolve %s: %v", ErrProbe, candidate, err)
	}

	exists, err := pathExists(projectPath)
	if err != nil {
		return "", err
	}
	if exists {
		return fmt.Sprintf(MsgPathExists, projectPath), nil
	}
	return "", nil
}

// pathExists treats a missing path, or a parent that is not a directory,
// as "does not exist". Any other stat failure is reported.
func pathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTDIR):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %s: %w", ErrProbe, path, err)
	}
}
