package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/imgkeeper/internal/models"
)

func (a *App) List(ctx context.Context, args []string) error {
	folder := a.session.CurrentFolder
	if len(args) > 0 {
		folder = strings.Join(args, " ")
	}

	list, err := a.history.List(ctx, folder)
	if err != nil {
		return err
	}

	if len(list) == 0 {
		a.printf("No uploads in %q.\n", folder)
		return nil
	}

	a.printf("%s (%d):\n", folder, len(list))
	for i, r := range list {
		a.printf("%3d. %s\n", i+1, describeRecord(r))
	}
	return nil
}

func describeRecord(r models.UploadRecord) string {
	if r.IsVideo() {
		return r.Link + " [video]"
	}
	return r.Link
}

// Show prints one record with its neighbours, the way the image viewer
// steps through a folder.
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("show <n>")
	}

	list, i, err := a.recordAt(ctx, args[0])
	if err != nil {
		return err
	}
	r := list[i]

	a.printf("#%d of %d in %q\n", i+1, len(list), r.Folder)
	a.printf("  link:       %s\n", r.Link)
	if !r.IsVideo() {
		a.printf("  thumbnail:  %s\n", r.ThumbnailURL(models.ThumbnailLarge))
	}
	a.printf("  deletehash: %s\n", r.Deletehash)
	a.printf("  size:       %dpx\n", a.session.ThumbnailSize)

	prev, next := "-", "-"
	if i > 0 {
		prev = list[i-1].Link
	}
	if i < len(list)-1 {
		next = list[i+1].Link
	}
	a.printf("  prev:       %s\n", prev)
	a.printf("  next:       %s\n", next)
	return nil
}

func (a *App) Move(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return usage("move <n> <folder>")
	}

	list, i, err := a.recordAt(ctx, args[0])
	if err != nil {
		return err
	}
	target := strings.Join(args[1:], " ")

	moved, err := a.history.Move(ctx, list[i], target)
	if err != nil {
		return err
	}
	if !moved {
		a.printf("Record is no longer in %q.\n", list[i].Folder)
		return nil
	}

	a.printf("Moved to %q.\n", target)
	return nil
}

func (a *App) Reorder(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage("reorder <from> <to>")
	}

	from, err := parsePosition(args[0])
	if err != nil {
		return err
	}
	to, err := parsePosition(args[1])
	if err != nil {
		return err
	}

	if err := a.history.Reorder(ctx, a.session.CurrentFolder, from, to); err != nil {
		return err
	}
	return a.List(ctx, nil)
}

func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("delete <n>")
	}

	list, i, err := a.recordAt(ctx, args[0])
	if err != nil {
		return err
	}

	if err := a.uploads.Delete(ctx, a.session, list[i]); err != nil {
		return err
	}

	a.printf("Deleted %s.\n", list[i].Link)
	return nil
}

func (a *App) Clear(ctx context.Context, _ []string) error {
	folder := a.session.CurrentFolder

	ok, err := Confirm(a.reader, "Remove every record of \""+folder+"\" from the history?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		a.printf("Cancelled.\n")
		return nil
	}

	n, err := a.history.Clear(ctx, folder)
	if err != nil {
		return err
	}

	a.printf("Removed %d record(s).\n", n)
	return nil
}
