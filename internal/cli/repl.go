package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests provide a lightweight stub.
type execIface interface {
	Upload(ctx context.Context, args []string) error
	UploadURL(ctx context.Context, args []string) error
	List(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Move(ctx context.Context, args []string) error
	Reorder(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Clear(ctx context.Context, args []string) error
	Folders(ctx context.Context, args []string) error
	Mkdir(ctx context.Context, args []string) error
	Rename(ctx context.Context, args []string) error
	Rmdir(ctx context.Context, args []string) error
	Select(ctx context.Context, args []string) error
	SetID(ctx context.Context, args []string) error
	Size(ctx context.Context, args []string) error
}

const helpText = `Available commands:
  upload <path>...       upload image files
  uploadurl <url>        upload an image by url
  (l)ist [folder]        list records, newest first
  show <n>               show record n of the current folder
  move <n> <folder>      move record n to another folder
  reorder <from> <to>    reorder records of the current folder
  delete <n>             delete record n remotely and locally
  clear                  remove every record of the current folder
  folders                list folders
  mkdir <name>           create a folder
  rename <old> <new>     rename a folder
  rmdir <name>           delete a folder, its records go to Unclassified
  select <name>          switch the current folder
  setid [id]             set the Imgur client id
  size [px]              show or set the thumbnail size
  exit | quit            leave the program`

// runREPL reads commands line by line from reader and dispatches them to a.
// Command errors are printed and the loop continues. It returns on EOF or
// on "exit"/"quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ik %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			printlnFn(helpText)
		case "upload":
			cmdErr = a.Upload(ctx, args)
		case "uploadurl":
			cmdErr = a.UploadURL(ctx, args)
		case "l", "list":
			cmdErr = a.List(ctx, args)
		case "show":
			cmdErr = a.Show(ctx, args)
		case "move":
			cmdErr = a.Move(ctx, args)
		case "reorder":
			cmdErr = a.Reorder(ctx, args)
		case "delete":
			cmdErr = a.Delete(ctx, args)
		case "clear":
			cmdErr = a.Clear(ctx, args)
		case "folders":
			cmdErr = a.Folders(ctx, args)
		case "mkdir":
			cmdErr = a.Mkdir(ctx, args)
		case "rename":
			cmdErr = a.Rename(ctx, args)
		case "rmdir":
			cmdErr = a.Rmdir(ctx, args)
		case "select":
			cmdErr = a.Select(ctx, args)
		case "setid":
			cmdErr = a.SetID(ctx, args)
		case "size":
			cmdErr = a.Size(ctx, args)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn(describeError(cmdErr))
		}
	}
}
