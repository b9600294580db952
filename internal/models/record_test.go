package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUploadRecord_ThumbnailURL(t *testing.T) {
	tests := []struct {
		name string
		link string
		size string
		want string
	}{
		{"large png", "https://i.imgur.com/abc.png", ThumbnailLarge, "https://i.imgur.com/abcl.png"},
		{"small jpg", "https://i.imgur.com/xyz.jpg", ThumbnailSmall, "https://i.imgur.com/xyzs.jpg"},
		{"no extension", "https://i.imgur.com/abc", ThumbnailLarge, "https://i.imgur.com/abc"},
		{"dot in host only", "https://example.com/images/abc", ThumbnailSmall, "https://example.com/images/abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := UploadRecord{Link: tt.link}
			assert.Equal(t, tt.want, r.ThumbnailURL(tt.size))
		})
	}
}

func TestUploadRecord_IsVideo(t *testing.T) {
	assert.True(t, UploadRecord{Link: "https://i.imgur.com/a.mp4"}.IsVideo())
	assert.True(t, UploadRecord{Link: "https://i.imgur.com/a.gifv"}.IsVideo())
	assert.True(t, UploadRecord{Link: "https://i.imgur.com/a.webm"}.IsVideo())
	assert.False(t, UploadRecord{Link: "https://i.imgur.com/a.gif"}.IsVideo())
}

func TestUploadRecord_Matches(t *testing.T) {
	r := UploadRecord{Link: "A", Deletehash: "d1", Folder: "Work"}
	assert.True(t, r.Matches("A", "d1", "Work"))
	assert.False(t, r.Matches("A", "d1", "Unclassified"))
	assert.False(t, r.Matches("A", "d2", "Work"))
}

func TestFolders_IndexAndClone(t *testing.T) {
	f := Folders{"Unclassified", "Work"}
	assert.Equal(t, 1, f.Index("Work"))
	assert.Equal(t, -1, f.Index("work"), "lookup is case-sensitive")
	assert.True(t, f.Contains("Unclassified"))

	c := f.Clone()
	c[1] = "Projects"
	assert.Equal(t, "Work", f[1])
}

func TestHistoryList_Clone(t *testing.T) {
	var empty HistoryList
	assert.Nil(t, empty.Clone())

	l := HistoryList{{Link: "A"}}
	c := l.Clone()
	c[0].Folder = "Work"
	assert.Equal(t, "", l[0].Folder)
}
