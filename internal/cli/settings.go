package cli

import (
	"context"
	"strconv"
)

func (a *App) SetID(ctx context.Context, args []string) error {
	var id string
	if len(args) > 0 {
		id = args[0]
	} else {
		var err error
		if id, err = GetSecret("Imgur client id", a.out); err != nil {
			return err
		}
	}

	if err := a.settings.SetClientID(ctx, a.session, id); err != nil {
		return err
	}

	a.printf("Client id saved.\n")
	return nil
}

func (a *App) Size(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printf("Thumbnail size: %dpx\n", a.session.ThumbnailSize)
		return nil
	}

	px, err := strconv.Atoi(args[0])
	if err != nil {
		return usage("size <px>")
	}

	if err := a.settings.SetThumbnailSize(ctx, a.session, px); err != nil {
		return err
	}

	a.printf("Thumbnail size set to %dpx.\n", px)
	return nil
}
