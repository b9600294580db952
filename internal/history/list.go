package history

import (
	"fmt"

	"github.com/dmitrijs2005/imgkeeper/internal/common"
	"github.com/dmitrijs2005/imgkeeper/internal/models"
)

// FilterByFolder returns the records of folder in their stored order.
func FilterByFolder(list models.HistoryList, folder string) models.HistoryList {
	out := models.HistoryList{}
	for _, r := range list {
		if r.Folder == folder {
			out = append(out, r)
		}
	}
	return out
}

func excludeFolder(list models.HistoryList, folder string) models.HistoryList {
	out := models.HistoryList{}
	for _, r := range list {
		if r.Folder != folder {
			out = append(out, r)
		}
	}
	return out
}

// Prepend puts rec at index 0.
func Prepend(list models.HistoryList, rec models.UploadRecord) models.HistoryList {
	out := make(models.HistoryList, 0, len(list)+1)
	out = append(out, rec)
	return append(out, list...)
}

// ReorderWithinFolder moves the from-th record of folder so that it ends at
// index to of the folder, then rebuilds the list as the other folders'
// records followed by the reordered folder. A from outside the folder is
// rejected. A to outside the folder is clamped; the index actually used is
// returned.
func ReorderWithinFolder(list models.HistoryList, folder string, from, to int) (models.HistoryList, int, error) {
	sub := FilterByFolder(list, folder)
	n := len(sub)

	if from < 0 || from >= n {
		return nil, 0, &common.InvalidOperationError{
			Op:     "reorder",
			Reason: fmt.Sprintf("index %d is out of range for folder %q with %d items", from, folder, n),
		}
	}

	switch {
	case to < 0:
		to = 0
	case to >= n:
		to = n - 1
	}

	moved := sub[from]
	sub = append(sub[:from], sub[from+1:]...)
	sub = append(sub[:to], append(models.HistoryList{moved}, sub[to:]...)...)

	return append(excludeFolder(list, folder), sub...), to, nil
}

// MoveToFolder sets newFolder on the first record matching the tuple,
// keeping its position. It reports whether a record was found. newFolder is
// not checked against the folder registry.
func MoveToFolder(list models.HistoryList, link, deletehash, oldFolder, newFolder string) (models.HistoryList, bool) {
	out := list.Clone()
	for i := range out {
		if out[i].Matches(link, deletehash, oldFolder) {
			out[i].Folder = newFolder
			return out, true
		}
	}
	return out, false
}

// RemoveByRemoteID drops every record of folder with the given deletehash
// and returns how many were removed.
func RemoveByRemoteID(list models.HistoryList, deletehash, folder string) (models.HistoryList, int) {
	out := models.HistoryList{}
	for _, r := range list {
		if r.Deletehash == deletehash && r.Folder == folder {
			continue
		}
		out = append(out, r)
	}
	return out, len(list) - len(out)
}

// ClearFolder drops every record of folder.
func ClearFolder(list models.HistoryList, folder string) (models.HistoryList, int) {
	out := excludeFolder(list, folder)
	return out, len(list) - len(out)
}

// RenameFolder relabels every record of oldName as newName in place.
func RenameFolder(list models.HistoryList, oldName, newName string) (models.HistoryList, int) {
	out := list.Clone()
	n := 0
	for i := range out {
		if out[i].Folder == oldName {
			out[i].Folder = newName
			n++
		}
	}
	return out, n
}

// Migrate assigns the default folder to records that have no folder or
// whose folder is not registered. It reports whether anything changed.
// Running it on its own output changes nothing.
func Migrate(list models.HistoryList, folders models.Folders) (models.HistoryList, bool) {
	out := list.Clone()
	changed := false
	for i := range out {
		f := out[i].Folder
		if f == "" || (f != common.DefaultFolder && !folders.Contains(f)) {
			out[i].Folder = common.DefaultFolder
			changed = true
		}
	}
	return out, changed
}
