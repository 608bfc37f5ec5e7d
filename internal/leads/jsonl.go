package leads

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileStore appends leads to a JSONL file, one lead per line. Suited to
// single-host deployments; the file is human-greppable and trivially
// merged.
type FileStore struct {
	Dir string
}

func (s FileStore) path() string {
	return filepath.Join(s.Dir, "leads.jsonl")
}

func (s FileStore) Append(ctx context.Context, l Lead) (Lead, error) {
	l = normalize(l, time.Now())

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return Lead{}, err
	}
	f, err := os.OpenFile(s.path(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return Lead{}, err
	}
	defer f.Close()

	line, err := json.Marshal(l)
	if err != nil {
		return Lead{}, err
	}
	if _, err := f.Write(append(line, '\n')); err != nil {
		return Lead{}, err
	}
	return l, nil
}

// All returns every recorded lead in append order. A missing file reads
// as an empty store.
func (s FileStore) All(ctx context.Context) ([]Lead, error) {
	f, err := os.Open(s.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Lead{}, nil
		}
		return nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	out := []Lead{}
	lineNo := 0
	for sc.Scan() {
		lineNo++
		b := bytes.TrimSpace(sc.Bytes())
		if len(b) == 0 {
			continue
		}
		var l Lead
		if err := json.Unmarshal(b, &l); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", s.path(), lineNo, err)
		}
		out = append(out, l)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
