// Package open shells out to $EDITOR for direct inspection of a transcript
// file.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// EditorCommand builds the command that opens filePath in $EDITOR (less
// when unset).
func EditorCommand(filePath string) *exec.Cmd {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "less"
	}

	if strings.Contains(editor, "code") {
		return exec.Command(editor, "--wait", filePath)
	}
	return exec.Command(editor, filePath)
}

// Session opens the session's transcript in $EDITOR and waits for it.
func Session(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file not found: %s", filePath)
	}

	cmd := EditorCommand(filePath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
