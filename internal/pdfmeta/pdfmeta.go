// Package pdfmeta wraps the pdfinfo collaborator (spec §6) to answer the one
// question the core needs before it can drive the fusion pipeline: how many
// pages does this PDF have.
package pdfmeta

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	docerrors "github.com/fulmenhq/docstruct/errors"
)

// PageCount shells out to pdfinfo and parses its "Pages:" line. path must
// exist and be a regular file; pdfinfo itself must be on PATH.
func PageCount(path string) (int, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return 0, docerrors.InputMissing(path, err)
	}

	if _, err := exec.LookPath("pdfinfo"); err != nil {
		return 0, docerrors.CollaboratorFailed("pdfinfo", err)
	}

	cmd := exec.Command("pdfinfo", path)
	out, err := cmd.Output()
	if err != nil {
		return 0, docerrors.CollaboratorFailed("pdfinfo", err)
	}

	pages, err := parsePageCount(out)
	if err != nil {
		return 0, docerrors.CollaboratorFailed("pdfinfo", err)
	}
	return pages, nil
}

func parsePageCount(output []byte) (int, error) {
	scanner := bufio.NewScanner(strings.NewReader(string(output)))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "Pages:") {
			continue
		}
		field := strings.TrimSpace(strings.TrimPrefix(line, "Pages:"))
		n, err := strconv.Atoi(field)
		if err != nil {
			return 0, fmt.Errorf("pdfmeta: malformed Pages line %q: %w", line, err)
		}
		if n < 0 {
			return 0, fmt.Errorf("pdfmeta: negative page count %d", n)
		}
		return n, nil
	}
	return 0, fmt.Errorf("pdfmeta: no Pages line in pdfinfo output")
}
