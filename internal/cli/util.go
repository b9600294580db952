package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/imgkeeper/internal/common"
	"github.com/dmitrijs2005/imgkeeper/internal/models"
)

// parsePosition converts a 1-based record number typed by the user into a
// 0-based index. Range checks are left to the caller.
func parsePosition(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a record number", s)
	}
	return n - 1, nil
}

// currentRecords returns the records of the current folder.
func (a *App) currentRecords(ctx context.Context) (models.HistoryList, error) {
	return a.history.List(ctx, a.session.CurrentFolder)
}

// recordAt resolves a 1-based record number of the current folder.
func (a *App) recordAt(ctx context.Context, s string) (models.HistoryList, int, error) {
	i, err := parsePosition(s)
	if err != nil {
		return nil, 0, err
	}
	list, err := a.currentRecords(ctx)
	if err != nil {
		return nil, 0, err
	}
	if i < 0 || i >= len(list) {
		return nil, 0, &common.InvalidOperationError{
			Op:     "select record",
			Reason: fmt.Sprintf("no record %s in folder %q", s, a.session.CurrentFolder),
		}
	}
	return list, i, nil
}

// argOrPrompt joins args into one value or, when there are none, asks for it.
func (a *App) argOrPrompt(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	return GetSimpleText(a.reader, prompt, a.out)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
