// Package logfinder discovers and reads build log files under a log root.
package logfinder

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/bitrise-io/go-utils/v2/log"
)

// System logs never describe a build job, so they are skipped regardless of
// letter case.
const systemLogName = "system.txt"

// Finder locates eligible build log files and reads their content.
type Finder interface {
	FindLogs(root string, excludePatterns []string) ([]string, error)
	ReadLog(pth string) (string, error)
}

type finder struct {
	logger log.Logger
}

// NewFinder ...
func NewFinder(logger log.Logger) Finder {
	return finder{logger: logger}
}

// FindLogs returns the sorted paths of every .txt file under root, except
// system logs and files matching one of the exclude patterns. A missing root
// is not an error and yields no files.
func (f finder) FindLogs(root string, excludePatterns []string) ([]string, error) {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		f.logger.Debugf("Log directory (%s) does not exist", root)
		return nil, nil
	}

	var files []string
	err := filepath.WalkDir(root, func(pth string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || filepath.Ext(pth) != ".txt" {
			return nil
		}

		base := filepath.Base(pth)
		if strings.EqualFold(base, systemLogName) {
			return nil
		}
		if f.isExcluded(base, excludePatterns) {
			return nil
		}

		files = append(files, pth)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk log directory (%s): %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}

// ReadLog reads a log file permissively: malformed byte sequences are
// replaced rather than reported.
func (f finder) ReadLog(pth string) (string, error) {
	content, err := os.ReadFile(pth)
	if err != nil {
		return "", fmt.Errorf("failed to read log file (%s): %w", pth, err)
	}
	return strings.ToValidUTF8(string(content), string(utf8.RuneError)), nil
}

func (f finder) isExcluded(base string, excludePatterns []string) bool {
	for _, pattern := range excludePatterns {
		matched, err := filepath.Match(pattern, base)
		if err != nil {
			f.logger.Warnf("Invalid exclude pattern (%s): %s", pattern, err)
			continue
		}
		if matched {
			return true
		}
	}
	return false
}
