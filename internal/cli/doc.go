// Package cli provides the interactive ImgKeeper command-line client.
//
// It wires the Record Store, the upload provider and the application
// services behind a small REPL. The session (client id, current folder,
// folder list, thumbnail size) is loaded once at start and kept up to date
// by the commands that change it.
//
// Commands:
//   - upload <path>...        upload image files (non-images are skipped)
//   - uploadurl <url>         upload an image by its address
//   - list [folder]           list records, newest first
//   - show <n>                show one record of the current folder
//   - move <n> <folder>       move a record to another folder
//   - reorder <from> <to>     reorder records of the current folder
//   - delete <n>              delete remotely, then from the history
//   - clear                   drop every record of the current folder
//   - folders, mkdir, rename, rmdir, select
//   - setid [id], size [px]
//
// Record numbers are 1-based and refer to the current folder.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or input ends.
package cli
