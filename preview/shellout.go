package preview

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// runAndCaptureOutput runs cmd in the user's shell and returns its stdout as
// a string. Stderr is discarded, matching the rest of the codebase's
// treatment of preview/filter subprocesses the operator never watches
// directly. An error is returned if the command fails or its output is not
// valid UTF-8 text.
func runAndCaptureOutput(ctx context.Context, cmdText string, env []string) (string, error) {
	prog := shellProg()
	arg := commandArgForShellProg(prog)

	cmd := exec.CommandContext(ctx, prog, arg, cmdText)
	cmd.Env = env

	var buf bytes.Buffer
	cmd.Stdout = &buf

	if err := cmd.Run(); err != nil {
		return "", errors.Wrap(err, "preview: run")
	}
	if !utf8.Valid(buf.Bytes()) {
		return "", errors.New("preview: command output is not valid UTF-8")
	}
	return buf.String(), nil
}

func shellProg() string {
	if s := os.Getenv("SKIM_SHELL"); s != "" {
		return s
	} else if s := os.Getenv("SHELL"); s != "" {
		return s
	} else if runtime.GOOS == "windows" {
		return "powershell.exe"
	}
	return "sh"
}

func commandArgForShellProg(s string) string {
	switch s {
	case "powershell.exe":
		return "-Command"
	case "cmd.exe":
		return "/c"
	default:
		return "-c"
	}
}

// fileLocation is a single grep -n / ripgrep --vimgrep style match:
// "path:line:snippet" or "path:line:col:snippet".
type fileLocation struct {
	path    string
	lineNum int
	snippet string
}

// fileLocationsFromLines parses each non-empty line of r as a fileLocation.
// If any line cannot be parsed, it aborts and returns an error.
func fileLocationsFromLines(r io.Reader) ([]fileLocation, error) {
	var locs []fileLocation
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		loc, err := parseFileLocation(line)
		if err != nil {
			return nil, err
		}
		locs = append(locs, loc)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "preview: scan file location")
	}
	return locs, nil
}

func parseFileLocation(s string) (fileLocation, error) {
	parts := strings.SplitN(s, ":", 4)
	var pathPart, lineNumPart, snippetPart string
	switch len(parts) {
	case 4: // <file>:<line>:<col>:<snippet>
		pathPart, lineNumPart, snippetPart = parts[0], parts[1], parts[3]
	case 3: // <file>:<line>:<snippet>
		pathPart, lineNumPart, snippetPart = parts[0], parts[1], parts[2]
	default:
		return fileLocation{}, errors.Errorf("preview: unsupported file location format: %q", s)
	}

	lineNum, err := strconv.Atoi(lineNumPart)
	if err != nil {
		return fileLocation{}, errors.Errorf("preview: invalid line number in file location %q", s)
	}

	return fileLocation{
		path:    pathPart,
		lineNum: lineNum,
		snippet: strings.TrimSpace(snippetPart),
	}, nil
}
