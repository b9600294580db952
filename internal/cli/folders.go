package cli

import (
	"context"
)

func (a *App) Folders(ctx context.Context, _ []string) error {
	list, err := a.folders.List(ctx)
	if err != nil {
		return err
	}

	for _, f := range list {
		marker := " "
		if f == a.session.CurrentFolder {
			marker = "*"
		}
		a.printf("%s %s\n", marker, f)
	}
	return nil
}

func (a *App) Mkdir(ctx context.Context, args []string) error {
	name, err := a.argOrPrompt(args, "Folder name")
	if err != nil {
		return err
	}

	created, err := a.folders.Create(ctx, a.session, name)
	if err != nil {
		return err
	}

	a.printf("Folder %q created.\n", created)
	return nil
}

// Rename takes two single-word names as arguments. Without arguments it
// asks for both, which allows names containing spaces.
func (a *App) Rename(ctx context.Context, args []string) error {
	var oldName, newName string
	switch len(args) {
	case 2:
		oldName, newName = args[0], args[1]
	case 0:
		var err error
		if oldName, err = GetSimpleText(a.reader, "Folder to rename", a.out); err != nil {
			return err
		}
		if newName, err = GetSimpleText(a.reader, "New name", a.out); err != nil {
			return err
		}
	default:
		return usage("rename <old> <new>")
	}

	if err := a.folders.Rename(ctx, a.session, oldName, newName); err != nil {
		return err
	}

	a.printf("Folder %q renamed to %q.\n", oldName, newName)
	return nil
}

func (a *App) Rmdir(ctx context.Context, args []string) error {
	name, err := a.argOrPrompt(args, "Folder to delete")
	if err != nil {
		return err
	}

	if err := a.folders.Delete(ctx, a.session, name); err != nil {
		return err
	}

	a.printf("Folder %q deleted.\n", name)
	return nil
}

func (a *App) Select(ctx context.Context, args []string) error {
	name, err := a.argOrPrompt(args, "Folder to select")
	if err != nil {
		return err
	}

	selected, err := a.folders.Select(ctx, a.session, name)
	if err != nil {
		return err
	}

	if selected != name {
		a.printf("Folder %q not found, using %q.\n", name, selected)
		return nil
	}
	a.printf("Current folder: %q.\n", selected)
	return nil
}
