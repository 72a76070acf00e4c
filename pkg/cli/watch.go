package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/ossa-dev/ossa/pkg/console"
	"github.com/ossa-dev/ossa/pkg/logger"
	"github.com/ossa-dev/ossa/pkg/validation"
)

var watchLog = logger.New("cli:watch")

// debounceWindow coalesces the bursts of write events editors produce for a
// single save.
const debounceWindow = 200 * time.Millisecond

// watchAndValidate validates the given files, then re-validates whenever one
// of them changes, until the command's context is cancelled. Watches are
// registered on the parent directories because many editors replace files on
// save, which drops a watch registered on the file itself.
func watchAndValidate(cmd *cobra.Command, engine *validation.Engine, files []string, opts validation.Options, jsonOutput, strict bool) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer watcher.Close()

	watched := make(map[string]bool, len(files))
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return err
		}
		watched[abs] = true
		dir := filepath.Dir(abs)
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	runOnce := func() {
		results, err := validateInputs(engine, files, cmd.InOrStdin(), opts)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), console.FormatErrorMessage(err.Error()))
			return
		}
		// In watch mode a failed validation is information, not a fatal exit.
		if err := reportResults(cmd.OutOrStdout(), results, jsonOutput, strict); err != nil {
			watchLog.Printf("validation round failed: %v", err)
		}
	}

	fmt.Fprintln(cmd.ErrOrStderr(), console.FormatInfoMessage(fmt.Sprintf("watching %d files, press Ctrl+C to stop", len(files))))
	runOnce()

	var pending <-chan time.Time
	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !watched[abs] {
				continue
			}
			watchLog.Printf("change detected: %s", event.Name)
			pending = time.After(debounceWindow)
		case <-pending:
			pending = nil
			runOnce()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			watchLog.Printf("watcher error: %v", err)
		}
	}
}
