package cli

import (
	"context"

	"github.com/dmitrijs2005/imgkeeper/internal/upload"
)

func (a *App) Upload(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usage("upload <path>...")
	}

	sources := make([]upload.Source, 0, len(args))
	for _, p := range args {
		src, err := upload.FromFile(p)
		if err != nil {
			a.printf("Skipping %s: %v\n", p, err)
			continue
		}
		sources = append(sources, src)
	}

	report, err := a.uploads.UploadBatch(ctx, a.session, sources, func(n, total int) {
		a.printf("Uploading %d/%d...\n", n, total)
	})
	if err != nil {
		return err
	}

	for _, e := range report.Errors {
		a.printf("  %v\n", e)
	}
	for _, r := range report.Records {
		a.printf("  %s\n", r.Link)
	}
	a.printf("Uploaded %d of %d image(s) to %q.\n", report.Uploaded, report.Total, a.session.CurrentFolder)
	if report.Skipped > 0 {
		a.printf("Skipped %d non-image file(s).\n", report.Skipped)
	}
	return nil
}

func (a *App) UploadURL(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("uploadurl <url>")
	}

	src, err := upload.FromURL(args[0])
	if err != nil {
		return err
	}

	rec, err := a.uploads.Upload(ctx, a.session, src)
	if err != nil {
		return err
	}

	a.printf("Uploaded to %q: %s\n", rec.Folder, rec.Link)
	return nil
}
