package harness

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// DiscoverScripts walks root and returns every script file matching ext, in
// the deterministic lexical order of the walk. A non-nil filter narrows the
// selection; filter errors abort discovery rather than silently dropping
// cases.
func DiscoverScripts(root, ext string, filter *CaseFilter) ([]string, error) {
	if ext == "" {
		ext = DefaultScriptExt
	}

	var scripts []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ext) {
			return nil
		}
		ok, err := filter.Matches(path)
		if err != nil {
			return err
		}
		if ok {
			scripts = append(scripts, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to discover scripts under %s: %w", root, err)
	}
	return scripts, nil
}
