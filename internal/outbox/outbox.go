// Package outbox is a filesystem archive of the transactional email the
// system sends. The dev/admin UI lists and inspects these files.
package outbox

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"luxadmin/internal/domain"
)

type Archive struct {
	Dir string
}

// List returns archived email filenames, newest first.
func (a Archive) List() ([]string, error) {
	entries, err := os.ReadDir(a.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	type named struct {
		name string
		mod  time.Time
	}
	files := make([]named, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, named{name: e.Name(), mod: info.ModTime()})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].mod.After(files[j].mod) })

	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.name
	}
	return out, nil
}

// Read returns the raw content of one archived email. Filenames with path
// separators are rejected so callers cannot escape the archive directory.
func (a Archive) Read(filename string) ([]byte, error) {
	if err := checkFilename(filename); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(filepath.Join(a.Dir, filename))
	if os.IsNotExist(err) {
		return nil, domain.NotFoundError{Resource: "email", Err: err}
	}
	return raw, err
}

// Write archives a new outgoing email and returns its filename.
func (a Archive) Write(prefix, subject, body string) (string, error) {
	if err := os.MkdirAll(a.Dir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s_%s.eml", time.Now().UTC().Format("20060102T150405"), sanitize(prefix))
	content := "Subject: " + subject + "\n\n" + body
	if err := os.WriteFile(filepath.Join(a.Dir, name), []byte(content), 0o644); err != nil {
		return "", err
	}
	return name, nil
}

func checkFilename(name string) error {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return domain.ValidationError{Field: "file", Msg: "invalid filename"}
	}
	return nil
}

func sanitize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
